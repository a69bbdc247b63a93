package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code", "service"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "service"},
	)

	// Business metrics
	VideosFetched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "videos_fetched_total",
			Help: "Total number of videos fetched per platform and source mode",
		},
		[]string{"platform", "mode"},
	)

	VideosServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "videos_served_total",
			Help: "Total number of videos served to clients",
		},
		[]string{"platform", "tier", "status"},
	)

	AdsInjected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ads_injected_total",
			Help: "Total number of sponsored videos injected into responses",
		},
	)

	// Database metrics
	MongoOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mongo_operations_total",
			Help: "Total number of MongoDB operations",
		},
		[]string{"operation", "collection", "status"},
	)

	// NATS metrics
	NatsMessagesPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nats_messages_published_total",
			Help: "Total number of NATS messages published",
		},
		[]string{"subject", "status"},
	)

	// Application health metrics
	ApplicationInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "application_info",
			Help: "Application information",
		},
		[]string{"service", "version", "environment"},
	)
)

// Init records static application metadata.
func Init(serviceName, version, environment string) {
	ApplicationInfo.WithLabelValues(serviceName, version, environment).Set(1)
}
