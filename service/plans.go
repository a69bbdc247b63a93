package service

import "viral-daily/model"

var subscriptionPlans = map[model.Tier]model.SubscriptionPlan{
	model.TierFree: {
		Tier:            model.TierFree,
		Name:            "Free",
		PriceMonthly:    0.0,
		PriceYearly:     0.0,
		MaxVideosPerDay: 40,
		HasAds:          true,
		Features:        []string{"40 videos per day", "All platforms", "Ads included"},
	},
	model.TierPro: {
		Tier:            model.TierPro,
		Name:            "Pro",
		PriceMonthly:    9.99,
		PriceYearly:     99.99,
		MaxVideosPerDay: 100,
		HasAds:          false,
		Features:        []string{"100 videos per day", "No ads", "API access", "Priority support"},
		Popular:         true,
	},
	model.TierBusiness: {
		Tier:            model.TierBusiness,
		Name:            "Business",
		PriceMonthly:    29.99,
		PriceYearly:     299.99,
		MaxVideosPerDay: -1,
		HasAds:          false,
		Features:        []string{"Unlimited videos", "Everything in Pro", "Analytics", "Custom integrations"},
	},
}

// PlanService resolves subscription tiers to plans. Unknown tiers resolve to
// the free plan so a bad stored value can never widen a caller's limits.
type PlanService struct{}

func NewPlanService() *PlanService {
	return &PlanService{}
}

func (s *PlanService) Plan(tier model.Tier) model.SubscriptionPlan {
	if plan, ok := subscriptionPlans[tier]; ok {
		return plan
	}
	return subscriptionPlans[model.TierFree]
}

// Plans lists every plan in display order.
func (s *PlanService) Plans() []model.SubscriptionPlan {
	return []model.SubscriptionPlan{
		subscriptionPlans[model.TierFree],
		subscriptionPlans[model.TierPro],
		subscriptionPlans[model.TierBusiness],
	}
}

// SavingsPercentage is the yearly-billing discount for a plan, rounded to
// one decimal.
func SavingsPercentage(plan model.SubscriptionPlan) float64 {
	if plan.PriceMonthly <= 0 {
		return 0
	}
	annual := plan.PriceMonthly * 12
	pct := (annual - plan.PriceYearly) / annual * 100
	return float64(int(pct*10+0.5)) / 10
}
