package model

// Tier classifies a caller and bounds what an aggregation request may return.
type Tier string

const (
	TierFree     Tier = "free"
	TierPro      Tier = "pro"
	TierBusiness Tier = "business"
)

// SubscriptionPlan describes one tier of the service.
// MaxVideosPerDay < 0 means unlimited.
type SubscriptionPlan struct {
	Tier            Tier     `json:"tier" bson:"tier"`
	Name            string   `json:"name" bson:"name"`
	PriceMonthly    float64  `json:"price_monthly" bson:"price_monthly"`
	PriceYearly     float64  `json:"price_yearly" bson:"price_yearly"`
	MaxVideosPerDay int      `json:"max_videos_per_day" bson:"max_videos_per_day"`
	HasAds          bool     `json:"has_ads" bson:"has_ads"`
	Features        []string `json:"features" bson:"features"`
	Popular         bool     `json:"popular" bson:"popular"`
}
