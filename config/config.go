package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port     string
	DBName   string
	MongoURI string
	NATSUrl  string

	YouTubeAPIKey      string
	TwitterBearerToken string
	TikTokAccessToken  string

	// MockOnly forces every platform fetcher onto local fallback data,
	// even when API credentials are present.
	MockOnly bool

	FetchInterval time.Duration
	HTTPTimeout   time.Duration
}

// Load reads configuration from the environment. Every key is optional:
// without a Mongo URI the service runs stateless, without platform
// credentials the fetchers serve fallback data.
func Load() *Config {
	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		DBName:             getEnv("DB_NAME", "viral_daily"),
		MongoURI:           getEnv("MONGO_URI", ""),
		NATSUrl:            getEnv("NATS_URL", ""),
		YouTubeAPIKey:      getEnv("YOUTUBE_API_KEY", ""),
		TwitterBearerToken: getEnv("TWITTER_BEARER_TOKEN", ""),
		TikTokAccessToken:  getEnv("TIKTOK_ACCESS_TOKEN", ""),
		MockOnly:           getBoolEnv("MOCK_ONLY", false),
		FetchInterval:      getDurationEnv("FETCH_INTERVAL", "20m"),
		HTTPTimeout:        getDurationEnv("HTTP_TIMEOUT", "10s"),
	}

	log.Printf("[INFO] Config loaded - port: %s, mongo: %v, nats: %v, mockOnly: %v",
		cfg.Port, cfg.MongoURI != "", cfg.NATSUrl != "", cfg.MockOnly)

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue string) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
