package handler

import (
	"net/http"

	"viral-daily/service"

	"github.com/gin-gonic/gin"
)

// GetSubscriptionPlans serves GET /api/subscription/plans.
func (h *Handler) GetSubscriptionPlans(c *gin.Context) {
	plans := h.Plans.Plans()

	out := make([]gin.H, 0, len(plans))
	for _, plan := range plans {
		out = append(out, gin.H{
			"tier":               plan.Tier,
			"name":               plan.Name,
			"price_monthly":      plan.PriceMonthly,
			"price_yearly":       plan.PriceYearly,
			"max_videos_per_day": plan.MaxVideosPerDay,
			"has_ads":            plan.HasAds,
			"features":           plan.Features,
			"popular":            plan.Popular,
			"savings_percentage": service.SavingsPercentage(plan),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"plans":       out,
		"total_plans": len(out),
	})
}
