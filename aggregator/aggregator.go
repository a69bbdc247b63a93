// Package aggregator combines per-platform fetchers into one ranked,
// tier-capped listing.
package aggregator

import (
	"context"
	"log"
	"sort"
	"sync"

	"viral-daily/fetcher"
	"viral-daily/metrics"
	"viral-daily/model"
)

// minPerPlatform is the floor each platform gets when a limit is split
// across all three fetchers.
const minPerPlatform = 5

// PlanLookup resolves a tier to its plan. Satisfied by service.PlanService.
type PlanLookup interface {
	Plan(tier model.Tier) model.SubscriptionPlan
}

// MockProvider produces local fallback data for a platform. Satisfied by
// fetcher.MockSource.
type MockProvider interface {
	Videos(platform model.Platform, limit int) []model.Video
}

// Aggregator fans requests out to the platform fetchers, substitutes
// fallback data for any platform that fails, and merges the results into a
// single score-ranked list. It never returns an error for valid input.
type Aggregator struct {
	fetchers map[model.Platform]fetcher.PlatformFetcher
	mocks    MockProvider
	plans    PlanLookup
	mockOnly bool
}

func New(fetchers []fetcher.PlatformFetcher, mocks MockProvider, plans PlanLookup, mockOnly bool) *Aggregator {
	byPlatform := make(map[model.Platform]fetcher.PlatformFetcher, len(fetchers))
	for _, f := range fetchers {
		byPlatform[f.Platform()] = f
	}
	return &Aggregator{
		fetchers: byPlatform,
		mocks:    mocks,
		plans:    plans,
		mockOnly: mockOnly,
	}
}

// Aggregate fetches from every platform concurrently and returns up to limit
// videos sorted by viral score descending. tier caps the limit according to
// the caller's plan.
func (a *Aggregator) Aggregate(ctx context.Context, limit int, tier model.Tier) []model.Video {
	limit = a.applyTierCap(limit, tier)

	perPlatform := limit / len(model.AllPlatforms)
	if perPlatform < minPerPlatform {
		perPlatform = minPerPlatform
	}

	results := make([][]model.Video, len(model.AllPlatforms))
	var wg sync.WaitGroup

	for i, platform := range model.AllPlatforms {
		wg.Add(1)
		go func(i int, platform model.Platform) {
			defer wg.Done()
			results[i] = a.fetchOne(ctx, platform, perPlatform)
		}(i, platform)
	}
	wg.Wait()

	var all []model.Video
	for _, batch := range results {
		all = append(all, batch...)
	}

	sortByScore(all)
	if len(all) > limit {
		all = all[:limit]
	}
	return all
}

// FetchPlatform returns up to limit videos from a single platform, sorted by
// viral score descending, with the same fallback substitution as Aggregate.
func (a *Aggregator) FetchPlatform(ctx context.Context, platform model.Platform, limit int, tier model.Tier) []model.Video {
	limit = a.applyTierCap(limit, tier)

	videos := a.fetchOne(ctx, platform, limit)
	sortByScore(videos)
	if len(videos) > limit {
		videos = videos[:limit]
	}
	return videos
}

// fetchOne attempts a live fetch and substitutes mock data on any failure.
// Upstream errors stop here: the caller always receives usable records.
func (a *Aggregator) fetchOne(ctx context.Context, platform model.Platform, limit int) []model.Video {
	f, ok := a.fetchers[platform]
	if a.mockOnly || !ok {
		metrics.VideosFetched.WithLabelValues(string(platform), "mock").Add(float64(limit))
		return a.mocks.Videos(platform, limit)
	}

	videos, err := f.Fetch(ctx, limit)
	if err != nil {
		log.Printf("[WARN] Live fetch failed for %s, using fallback data: %v", platform, err)
		metrics.VideosFetched.WithLabelValues(string(platform), "fallback").Add(float64(limit))
		return a.mocks.Videos(platform, limit)
	}

	metrics.VideosFetched.WithLabelValues(string(platform), "live").Add(float64(len(videos)))
	return videos
}

func (a *Aggregator) applyTierCap(limit int, tier model.Tier) int {
	if limit < 1 {
		limit = 1
	}
	if a.plans == nil {
		return limit
	}
	plan := a.plans.Plan(tier)
	if plan.MaxVideosPerDay > 0 && limit > plan.MaxVideosPerDay {
		limit = plan.MaxVideosPerDay
	}
	return limit
}

func sortByScore(videos []model.Video) {
	sort.SliceStable(videos, func(i, j int) bool {
		return videos[i].ViralScore > videos[j].ViralScore
	})
}
