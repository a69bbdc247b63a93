package fetcher

import "math"

// Viral score tuning. The binding contract is the shape of the formula
// (monotonic in views and engagement, decaying with age, clamped to
// [0,100]), not these exact values.
const (
	viewScoreMultiplier  = 10.0
	engagementMultiplier = 100.0
	recencyBase          = 10.0
	recencyDecayPerDay   = 0.5
)

// ViralScore turns raw engagement signals into a comparable 0-100 figure so
// heterogeneous platforms can be ranked together. Views contribute on a
// logarithmic scale, likes-per-view measures engagement, and a recency
// multiplier boosts fresh content.
func ViralScore(views, likes int64, daysOld int) float64 {
	if views <= 0 {
		return 0.0
	}

	viewScore := math.Log10(math.Max(float64(views), 1)) * viewScoreMultiplier

	engagementScore := 0.0
	if likes > 0 {
		engagementScore = float64(likes) / float64(views) * engagementMultiplier
	}

	recency := math.Max(1.0, recencyBase-float64(daysOld)*recencyDecayPerDay)

	return clampScore((viewScore + engagementScore) * recency)
}

// TwitterViralScore ranks a tweet by weighted engagement: retweets carry the
// most signal, replies less, plain likes the least. The result stays inside
// the shared 0-100 range but never reaches the ceiling reserved for
// platform-native video virality.
func TwitterViralScore(likes, retweets, replies int64) float64 {
	engagement := float64(likes + retweets*3 + replies*2)
	score := engagement / 1000.0
	if score < 10.0 {
		score = 10.0
	}
	if score > 90.0 {
		score = 90.0
	}
	return score
}

// TikTokViralScore folds shares and comments into the engagement signal
// before applying the shared view/recency formula.
func TikTokViralScore(views, likes, shares, comments int64, daysOld int) float64 {
	if views <= 0 {
		return 0.0
	}

	viewScore := math.Log10(math.Max(float64(views), 1)) * viewScoreMultiplier

	interactions := likes + shares*2 + comments
	engagementScore := 0.0
	if interactions > 0 {
		engagementScore = float64(interactions) / float64(views) * engagementMultiplier
	}

	recency := math.Max(1.0, recencyBase-float64(daysOld)*recencyDecayPerDay)

	return clampScore((viewScore + engagementScore) * recency)
}

func clampScore(score float64) float64 {
	if math.IsNaN(score) || score < 0 {
		return 0.0
	}
	if score > 100.0 {
		return 100.0
	}
	return score
}
