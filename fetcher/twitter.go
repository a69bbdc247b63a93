package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"viral-daily/model"
)

const twitterSearchURL = "https://api.twitter.com/2/tweets/search/recent"

// twitterSearchQuery targets high-engagement English tweets carrying video.
const twitterSearchQuery = "(has:videos OR has:media) -is:retweet min_faves:1000 lang:en"

// TwitterFetcher pulls viral video tweets via the recent search API v2.
type TwitterFetcher struct {
	bearerToken string
	client      *http.Client
	thumbnails  ThumbnailGenerator
}

// ThumbnailGenerator builds a placeholder image for platforms that expose no
// usable thumbnail over their API.
type ThumbnailGenerator interface {
	PlatformThumbnail(platform model.Platform, viralScore float64, title string) string
}

func NewTwitterFetcher(bearerToken string, timeout time.Duration, thumbs ThumbnailGenerator) *TwitterFetcher {
	return &TwitterFetcher{
		bearerToken: bearerToken,
		client:      newHTTPClient(timeout),
		thumbnails:  thumbs,
	}
}

func (f *TwitterFetcher) Platform() model.Platform {
	return model.PlatformTwitter
}

func (f *TwitterFetcher) Fetch(ctx context.Context, limit int) ([]model.Video, error) {
	if f.bearerToken == "" {
		return nil, ErrNoCredentials
	}
	limit = clampLimit(limit)

	// The search endpoint requires max_results in [10, 100].
	maxResults := limit
	if maxResults < 10 {
		maxResults = 10
	}

	q := url.Values{}
	q.Set("query", twitterSearchQuery)
	q.Set("max_results", fmt.Sprintf("%d", maxResults))
	q.Set("tweet.fields", "created_at,public_metrics,author_id")
	q.Set("expansions", "author_id")
	q.Set("user.fields", "username,name")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, twitterSearchURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+f.bearerToken)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Twitter API HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	var apiResp model.TwitterSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, err
	}
	if len(apiResp.Data) == 0 {
		return nil, ErrEmptyResult
	}

	usernames := make(map[string]string, len(apiResp.Includes.Users))
	for _, u := range apiResp.Includes.Users {
		usernames[u.ID] = u.Username
	}

	now := time.Now().UTC()
	videos := make([]model.Video, 0, limit)

	for _, tweet := range apiResp.Data {
		if len(videos) >= limit {
			break
		}

		metrics := tweet.PublicMetrics
		score := TwitterViralScore(metrics.LikeCount, metrics.RetweetCount, metrics.ReplyCount)

		author := "Unknown"
		if username, ok := usernames[tweet.AuthorID]; ok {
			author = "@" + username
		}

		publishedAt := now
		if t, err := time.Parse(time.RFC3339, tweet.CreatedAt); err == nil {
			publishedAt = t
		}

		title := truncateText(tweet.Text, 100)

		videos = append(videos, model.Video{
			ID:          "tw_" + tweet.ID,
			Title:       title,
			URL:         fmt.Sprintf("https://twitter.com/i/status/%s", tweet.ID),
			Thumbnail:   f.thumbnails.PlatformThumbnail(model.PlatformTwitter, score, title),
			Platform:    model.PlatformTwitter,
			Views:       metrics.ImpressionCount,
			Likes:       metrics.LikeCount,
			Shares:      metrics.RetweetCount,
			Author:      author,
			Duration:    FormatSeconds(0),
			ViralScore:  score,
			PublishedAt: publishedAt,
			FetchedAt:   now,
		})
	}

	if len(videos) == 0 {
		return nil, ErrEmptyResult
	}

	log.Printf("[INFO] Fetched %d viral video tweets from Twitter", len(videos))
	return videos, nil
}
