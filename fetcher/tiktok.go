package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"viral-daily/model"
)

const tiktokTrendingURL = "https://www.tiktok.com/api/recommend/item_list/?count=%d"

// TikTokFetcher pulls trending videos from the TikTok feed API. TikTok has
// no sanctioned trending endpoint, so this path requires an access token and
// degrades to fallback data without one.
type TikTokFetcher struct {
	accessToken string
	client      *http.Client
	thumbnails  ThumbnailGenerator
}

func NewTikTokFetcher(accessToken string, timeout time.Duration, thumbs ThumbnailGenerator) *TikTokFetcher {
	return &TikTokFetcher{
		accessToken: accessToken,
		client:      newHTTPClient(timeout),
		thumbnails:  thumbs,
	}
}

func (f *TikTokFetcher) Platform() model.Platform {
	return model.PlatformTikTok
}

func (f *TikTokFetcher) Fetch(ctx context.Context, limit int) ([]model.Video, error) {
	if f.accessToken == "" {
		return nil, ErrNoCredentials
	}
	limit = clampLimit(limit)

	url := fmt.Sprintf(tiktokTrendingURL, limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+f.accessToken)
	req.Header.Set("User-Agent", "ViralDaily/1.0")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("TikTok API HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	var apiResp model.TikTokTrendingResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, err
	}
	if len(apiResp.ItemList) == 0 {
		return nil, ErrEmptyResult
	}

	now := time.Now().UTC()
	videos := make([]model.Video, 0, limit)

	for _, item := range apiResp.ItemList {
		if len(videos) >= limit {
			break
		}
		if item.ID == "" || item.Author.UniqueID == "" {
			continue
		}

		publishedAt := time.Unix(item.CreateTime, 0).UTC()
		daysOld := int(now.Sub(publishedAt).Hours() / 24)
		score := TikTokViralScore(item.Stats.PlayCount, item.Stats.DiggCount,
			item.Stats.ShareCount, item.Stats.CommentCount, daysOld)

		thumbnail := item.Video.Cover
		if thumbnail == "" {
			thumbnail = f.thumbnails.PlatformThumbnail(model.PlatformTikTok, score, item.Desc)
		}

		videos = append(videos, model.Video{
			ID:          "tt_" + item.ID,
			Title:       item.Desc,
			URL:         fmt.Sprintf("https://www.tiktok.com/@%s/video/%s", item.Author.UniqueID, item.ID),
			Thumbnail:   thumbnail,
			Platform:    model.PlatformTikTok,
			Views:       item.Stats.PlayCount,
			Likes:       item.Stats.DiggCount,
			Shares:      item.Stats.ShareCount,
			Author:      "@" + item.Author.UniqueID,
			Duration:    FormatSeconds(item.Video.Duration),
			ViralScore:  score,
			PublishedAt: publishedAt,
			FetchedAt:   now,
		})
	}

	if len(videos) == 0 {
		return nil, ErrEmptyResult
	}

	log.Printf("[INFO] Fetched %d trending videos from TikTok", len(videos))
	return videos, nil
}
