package fetcher

import (
	"context"
	"errors"
	"net/http"
	"time"

	"viral-daily/model"
)

// PlatformFetcher produces up to limit normalized videos for one platform.
// A fetcher reports upstream problems as errors; it never substitutes
// fallback data itself. The aggregator owns that decision.
type PlatformFetcher interface {
	Platform() model.Platform
	Fetch(ctx context.Context, limit int) ([]model.Video, error)
}

// ErrNoCredentials marks a platform whose live API cannot be reached because
// no API key or token is configured. Treated like any other upstream failure.
var ErrNoCredentials = errors.New("platform API credentials not configured")

// ErrEmptyResult marks a live call that succeeded but returned no usable
// items.
var ErrEmptyResult = errors.New("platform API returned no items")

// MaxFetchLimit caps a single platform fetch.
const MaxFetchLimit = 100

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

func clampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > MaxFetchLimit {
		return MaxFetchLimit
	}
	return limit
}
