package fetcher

import (
	"math"
	"testing"
)

func TestViralScoreBounds(t *testing.T) {
	tests := []struct {
		name    string
		views   int64
		likes   int64
		daysOld int
	}{
		{"zero everything", 0, 0, 0},
		{"zero views with likes", 0, 500, 1},
		{"small video", 100, 10, 3},
		{"typical viral video", 5000000, 400000, 1},
		{"old video", 1000000, 50000, 365},
		{"huge view count", math.MaxInt64, math.MaxInt64, 0},
		{"likes exceed views", 10, 1000000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := ViralScore(tt.views, tt.likes, tt.daysOld)
			if score < 0 || score > 100 {
				t.Errorf("ViralScore(%d, %d, %d) = %f, want in [0, 100]", tt.views, tt.likes, tt.daysOld, score)
			}
			if math.IsNaN(score) || math.IsInf(score, 0) {
				t.Errorf("ViralScore(%d, %d, %d) = %f, want finite", tt.views, tt.likes, tt.daysOld, score)
			}
		})
	}
}

func TestViralScoreZeroViews(t *testing.T) {
	for _, days := range []int{0, 1, 100} {
		if got := ViralScore(0, 0, days); got != 0 {
			t.Errorf("ViralScore(0, 0, %d) = %f, want 0", days, got)
		}
	}
}

func TestViralScoreMonotonicInViews(t *testing.T) {
	prev := ViralScore(1, 50, 2)
	for _, views := range []int64{10, 100, 10000, 1000000, 100000000} {
		score := ViralScore(views, 50, 2)
		if score < prev {
			t.Errorf("score decreased from %f to %f when views rose to %d", prev, score, views)
		}
		prev = score
	}
}

func TestViralScoreMonotonicInAge(t *testing.T) {
	prev := ViralScore(1000000, 50000, 0)
	for _, days := range []int{1, 2, 5, 10, 30, 100} {
		score := ViralScore(1000000, 50000, days)
		if score > prev {
			t.Errorf("score increased from %f to %f when age rose to %d days", prev, score, days)
		}
		prev = score
	}
}

func TestViralScoreRecencyBoost(t *testing.T) {
	fresh := ViralScore(100000, 5000, 0)
	stale := ViralScore(100000, 5000, 30)
	if fresh <= stale {
		t.Errorf("fresh video scored %f, stale scored %f, want fresh > stale", fresh, stale)
	}
}

func TestTwitterViralScore(t *testing.T) {
	tests := []struct {
		name     string
		likes    int64
		retweets int64
		replies  int64
		want     float64
	}{
		{"no engagement floors at 10", 0, 0, 0, 10.0},
		{"massive engagement caps at 90", 10000000, 5000000, 1000000, 90.0},
		{"mid engagement", 20000, 5000, 2500, 40.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TwitterViralScore(tt.likes, tt.retweets, tt.replies)
			if got != tt.want {
				t.Errorf("TwitterViralScore(%d, %d, %d) = %f, want %f", tt.likes, tt.retweets, tt.replies, got, tt.want)
			}
		})
	}
}

func TestTwitterViralScoreRetweetsOutweighLikes(t *testing.T) {
	byLikes := TwitterViralScore(30000, 0, 0)
	byRetweets := TwitterViralScore(0, 30000, 0)
	if byRetweets <= byLikes {
		t.Errorf("retweets scored %f, likes scored %f, want retweets higher", byRetweets, byLikes)
	}
}

func TestTikTokViralScore(t *testing.T) {
	if got := TikTokViralScore(0, 0, 0, 0, 0); got != 0 {
		t.Errorf("TikTokViralScore with zero views = %f, want 0", got)
	}

	score := TikTokViralScore(5000000, 400000, 50000, 20000, 1)
	if score < 0 || score > 100 {
		t.Errorf("TikTokViralScore = %f, want in [0, 100]", score)
	}

	// Shares count double: same totals with more shares must not score lower.
	base := TikTokViralScore(1000000, 50000, 0, 0, 2)
	shared := TikTokViralScore(1000000, 0, 50000, 0, 2)
	if shared < base {
		t.Errorf("share-heavy engagement scored %f, like-heavy scored %f, want shares >= likes", shared, base)
	}
}
