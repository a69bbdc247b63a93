package service

import (
	"fmt"
	"time"

	"viral-daily/metrics"
	"viral-daily/model"
)

// adSlotInterval reserves one sponsored slot per this many requested videos.
const adSlotInterval = 6

var houseAdTitles = []string{
	"Upgrade to Viral Daily Pro - No Ads, 100 Videos a Day",
	"Get the Viral Daily API - Build on Trending Content",
	"Viral Daily Business - Analytics for Your Brand",
}

// House-account deep links per platform. Sponsored records must satisfy the
// same platform/URL shape invariants as organic ones.
var houseAdURLs = map[model.Platform]string{
	model.PlatformYouTube: "https://www.youtube.com/watch?v=viralad%04d",
	model.PlatformTikTok:  "https://www.tiktok.com/@viraldaily/video/700000000000000%04d",
	model.PlatformTwitter: "https://twitter.com/ViralDaily/status/180000000000000%04d",
}

// ThumbnailGenerator builds placeholder imagery for records without a real
// thumbnail. Satisfied by fetcher.MockSource.
type ThumbnailGenerator interface {
	PlatformThumbnail(platform model.Platform, viralScore float64, title string) string
}

// AdService fills sponsored slots in listings served to ad-supported tiers.
// Sponsored records carry viral score zero and sit at the tail of the list,
// so score ordering and the response cap stay intact.
type AdService struct {
	thumbnails ThumbnailGenerator
}

func NewAdService(thumbs ThumbnailGenerator) *AdService {
	return &AdService{thumbnails: thumbs}
}

// SlotCount is how many of limit response slots go to sponsored content for
// an ad-supported caller.
func SlotCount(limit int) int {
	if limit < adSlotInterval {
		return 0
	}
	return limit / adSlotInterval
}

// AppendSponsored appends count sponsored records scoped to platform.
// platform's zero value scopes ads to YouTube, the default house channel.
func (s *AdService) AppendSponsored(videos []model.Video, platform model.Platform, count int) []model.Video {
	if count <= 0 {
		return videos
	}
	if _, ok := houseAdURLs[platform]; !ok {
		platform = model.PlatformYouTube
	}

	now := time.Now().UTC()
	for n := 0; n < count; n++ {
		title := houseAdTitles[n%len(houseAdTitles)]
		videos = append(videos, model.Video{
			ID:          fmt.Sprintf("ad_%d_%d", now.Unix(), n),
			Title:       title,
			URL:         fmt.Sprintf(houseAdURLs[platform], n),
			Thumbnail:   s.thumbnails.PlatformThumbnail(platform, 0, title),
			Platform:    platform,
			Author:      "@ViralDaily",
			Duration:    "0:30",
			ViralScore:  0,
			PublishedAt: now,
			FetchedAt:   now,
			IsSponsored: true,
		})
		metrics.AdsInjected.Inc()
	}
	return videos
}
