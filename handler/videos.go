package handler

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"viral-daily/metrics"
	"viral-daily/model"
	"viral-daily/service"

	"github.com/gin-gonic/gin"
)

const (
	defaultLimit = 10
	maxLimit     = 50
)

// GetVideos serves GET /api/videos: ranked viral videos across platforms,
// tier-capped, with sponsored slots for ad-supported tiers. The endpoint
// never answers 5xx: any internal failure degrades to a single placeholder
// video with status "fallback_success". The only 4xx is an unknown platform
// value.
func (h *Handler) GetVideos(c *gin.Context) {
	var platform *model.Platform
	if raw := c.Query("platform"); raw != "" {
		p, err := model.ParsePlatform(raw)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		platform = &p
	}

	limit := defaultLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	_, tier := h.currentUser(c.Request.Context(), c.GetHeader(apiKeyHeader))
	plan := h.Plans.Plan(tier)
	if plan.MaxVideosPerDay > 0 && limit > plan.MaxVideosPerDay {
		limit = plan.MaxVideosPerDay
	}

	// Internal failures must not reach the caller as errors.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[ERROR] Recovered in GetVideos: %v", r)
			h.serveFallback(c, platform, tier, limit)
		}
	}()

	adSlots := 0
	if plan.HasAds {
		adSlots = service.SlotCount(limit)
	}
	organicLimit := limit - adSlots

	var videos []model.Video
	if platform != nil {
		videos = h.Aggregator.FetchPlatform(c.Request.Context(), *platform, organicLimit, tier)
	} else {
		videos = h.Aggregator.Aggregate(c.Request.Context(), organicLimit, tier)
	}

	if len(videos) == 0 {
		h.serveFallback(c, platform, tier, limit)
		return
	}

	if adSlots > 0 {
		adPlatform := model.PlatformYouTube
		if platform != nil {
			adPlatform = *platform
		}
		videos = h.Ads.AppendSponsored(videos, adPlatform, adSlots)
	}
	if len(videos) > limit {
		videos = videos[:limit]
	}

	h.recordServed(videos, tier, model.StatusSuccess)
	h.Analytics.RecordVideoRequest(platform, tier, limit, len(videos), model.StatusSuccess)

	c.JSON(http.StatusOK, model.VideoResponse{
		Videos:   videos,
		Total:    len(videos),
		Platform: platform,
		Date:     time.Now().UTC(),
		HasAds:   plan.HasAds,
		UserTier: tier,
		Status:   model.StatusSuccess,
	})
}

// serveFallback answers with the single hardcoded placeholder video. The
// caller can detect the degraded path through the status flag.
func (h *Handler) serveFallback(c *gin.Context, platform *model.Platform, tier model.Tier, limit int) {
	now := time.Now().UTC()
	fallback := model.Video{
		ID:          "fallback_video_1",
		Title:       "Your Viral Daily feed is warming up",
		URL:         "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		Thumbnail:   "https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg",
		Platform:    model.PlatformYouTube,
		Views:       1000000,
		Likes:       50000,
		Shares:      5000,
		Author:      "@ViralDaily",
		Duration:    "3:32",
		Description: "Fresh viral videos are on the way. Check back in a moment.",
		ViralScore:  100.0,
		PublishedAt: now,
		FetchedAt:   now,
	}

	videos := []model.Video{fallback}
	h.recordServed(videos, tier, model.StatusFallbackSuccess)
	h.Analytics.RecordVideoRequest(platform, tier, limit, len(videos), model.StatusFallbackSuccess)

	c.JSON(http.StatusOK, model.VideoResponse{
		Videos:   videos,
		Total:    len(videos),
		Platform: platform,
		Date:     now,
		HasAds:   false,
		UserTier: tier,
		Status:   model.StatusFallbackSuccess,
	})
}

func (h *Handler) recordServed(videos []model.Video, tier model.Tier, status string) {
	for _, v := range videos {
		metrics.VideosServed.WithLabelValues(string(v.Platform), string(tier), status).Inc()
	}
}
