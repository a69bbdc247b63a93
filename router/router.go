package router

import (
	"net/http"
	"time"

	"viral-daily/handler"
	"viral-daily/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const serviceName = "viral-daily"

// Setup builds the gin engine with middleware and all routes.
func Setup(h *handler.Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.Prometheus(serviceName))

	api := r.Group("/api")
	{
		api.GET("/", h.Root)
		api.GET("/health", h.Health)
		api.GET("/videos", h.GetVideos)
		api.GET("/subscription/plans", h.GetSubscriptionPlans)
		api.POST("/users/register", h.RegisterUser)
		api.POST("/emails/subscribe", h.SubscribeEmails)
		api.GET("/notifications/daily", h.GetDailyDigest)
		api.POST("/payments/checkout", h.CreateCheckout)
		api.GET("/payments/transactions", h.GetTransactions)
	}

	// Bare probes for orchestration
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "timestamp": time.Now().UTC()})
	})
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready", "timestamp": time.Now().UTC()})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
