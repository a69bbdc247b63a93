package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"viral-daily/model"
)

const youtubeTrendingURL = "https://www.googleapis.com/youtube/v3/videos?part=snippet,statistics,contentDetails&chart=mostPopular&regionCode=US&maxResults=%d&key=%s"

// YouTubeFetcher pulls trending videos from the YouTube Data API v3.
type YouTubeFetcher struct {
	apiKey string
	client *http.Client
}

func NewYouTubeFetcher(apiKey string, timeout time.Duration) *YouTubeFetcher {
	return &YouTubeFetcher{
		apiKey: apiKey,
		client: newHTTPClient(timeout),
	}
}

func (f *YouTubeFetcher) Platform() model.Platform {
	return model.PlatformYouTube
}

func (f *YouTubeFetcher) Fetch(ctx context.Context, limit int) ([]model.Video, error) {
	if f.apiKey == "" {
		return nil, ErrNoCredentials
	}
	limit = clampLimit(limit)

	url := fmt.Sprintf(youtubeTrendingURL, limit, f.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("YouTube API HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	var apiResp model.YouTubeVideoResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, err
	}
	if len(apiResp.Items) == 0 {
		return nil, ErrEmptyResult
	}

	now := time.Now().UTC()
	videos := make([]model.Video, 0, len(apiResp.Items))

	for _, item := range apiResp.Items {
		if item.ID == "" {
			continue
		}

		publishedAt, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt)
		if err != nil {
			log.Printf("[WARN] Skipping YouTube video %s: bad publishedAt %q", item.ID, item.Snippet.PublishedAt)
			continue
		}

		views, _ := strconv.ParseInt(item.Statistics.ViewCount, 10, 64)
		likes, _ := strconv.ParseInt(item.Statistics.LikeCount, 10, 64)
		daysOld := int(now.Sub(publishedAt).Hours() / 24)

		thumbnail := item.Snippet.Thumbnails.BestThumbnailURL()
		if thumbnail == "" {
			thumbnail = fmt.Sprintf("https://i.ytimg.com/vi/%s/hqdefault.jpg", item.ID)
		}

		videos = append(videos, model.Video{
			ID:          "yt_" + item.ID,
			Title:       item.Snippet.Title,
			URL:         fmt.Sprintf("https://www.youtube.com/watch?v=%s", item.ID),
			Thumbnail:   thumbnail,
			Platform:    model.PlatformYouTube,
			Views:       views,
			Likes:       likes,
			Author:      item.Snippet.ChannelTitle,
			Duration:    ParseISODuration(item.ContentDetails.Duration),
			Description: truncateText(item.Snippet.Description, 200),
			ViralScore:  ViralScore(views, likes, daysOld),
			PublishedAt: publishedAt,
			FetchedAt:   now,
		})
	}

	if len(videos) == 0 {
		return nil, ErrEmptyResult
	}
	if len(videos) > limit {
		videos = videos[:limit]
	}

	log.Printf("[INFO] Fetched %d trending videos from YouTube", len(videos))
	return videos, nil
}
