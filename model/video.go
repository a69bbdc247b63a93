package model

import (
	"fmt"
	"time"
)

// Platform identifies the source network of a viral video.
type Platform string

const (
	PlatformYouTube Platform = "youtube"
	PlatformTikTok  Platform = "tiktok"
	PlatformTwitter Platform = "twitter"
)

// AllPlatforms lists every platform the aggregator serves.
var AllPlatforms = []Platform{PlatformYouTube, PlatformTikTok, PlatformTwitter}

// ParsePlatform validates a platform query value.
func ParsePlatform(s string) (Platform, error) {
	switch Platform(s) {
	case PlatformYouTube, PlatformTikTok, PlatformTwitter:
		return Platform(s), nil
	}
	return "", fmt.Errorf("unknown platform %q, must be one of youtube, tiktok, twitter", s)
}

// Video represents one viral video surfaced to a caller.
type Video struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Title       string    `json:"title" bson:"title"`
	URL         string    `json:"url" bson:"url"`
	Thumbnail   string    `json:"thumbnail" bson:"thumbnail"`
	Platform    Platform  `json:"platform" bson:"platform"`
	Views       int64     `json:"views" bson:"views"`
	Likes       int64     `json:"likes" bson:"likes"`
	Shares      int64     `json:"shares" bson:"shares"`
	Author      string    `json:"author" bson:"author"`
	Duration    string    `json:"duration" bson:"duration"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	ViralScore  float64   `json:"viral_score" bson:"viral_score"`
	PublishedAt time.Time `json:"published_at" bson:"published_at"`
	FetchedAt   time.Time `json:"fetched_at" bson:"fetched_at"`
	IsSponsored bool      `json:"is_sponsored" bson:"is_sponsored"`
}

// VideoResponse is the payload of GET /api/videos.
type VideoResponse struct {
	Videos   []Video   `json:"videos"`
	Total    int       `json:"total"`
	Platform *Platform `json:"platform"`
	Date     time.Time `json:"date"`
	HasAds   bool      `json:"has_ads"`
	UserTier Tier      `json:"user_tier"`
	Status   string    `json:"status"`
}

// Response status values. FallbackSuccess marks the bulletproof degraded
// path: the endpoint answered 200 with placeholder content instead of an
// error.
const (
	StatusSuccess         = "success"
	StatusFallbackSuccess = "fallback_success"
)
