package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"viral-daily/aggregator"
	"viral-daily/config"
	"viral-daily/fetcher"
	"viral-daily/handler"
	"viral-daily/metrics"
	"viral-daily/router"
	"viral-daily/service"
	"viral-daily/worker"

	"github.com/nats-io/nats.go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func main() {
	cfg := config.Load()
	metrics.Init("viral-daily", handler.Version, getEnv("ENVIRONMENT", "production"))

	// MongoDB is optional: without it the service runs stateless.
	var db *mongo.Database
	var mongoClient *mongo.Client
	if cfg.MongoURI != "" {
		client, err := mongo.Connect(context.Background(),
			options.Client().ApplyURI(cfg.MongoURI).SetServerSelectionTimeout(5*time.Second))
		if err != nil {
			log.Printf("[WARN] MongoDB connect failed, running without database: %v", err)
		} else {
			mongoClient = client
			db = client.Database(cfg.DBName)
			log.Println("[INFO] MongoDB client initialized")
		}
	} else {
		log.Println("[INFO] No MONGO_URI set - running without database")
	}
	if mongoClient != nil {
		defer mongoClient.Disconnect(context.Background())
	}

	// NATS is optional: without it the snapshot worker runs on its ticker
	// only.
	var natsConn *nats.Conn
	if cfg.NATSUrl != "" {
		nc, err := nats.Connect(cfg.NATSUrl)
		if err != nil {
			log.Printf("[WARN] NATS connect failed, refresh requests disabled: %v", err)
		} else {
			natsConn = nc
			defer natsConn.Close()
			log.Println("[INFO] NATS connected")
		}
	}

	mocks := fetcher.NewMockSource(time.Now().UnixNano())
	fetchers := []fetcher.PlatformFetcher{
		fetcher.NewYouTubeFetcher(cfg.YouTubeAPIKey, cfg.HTTPTimeout),
		fetcher.NewTikTokFetcher(cfg.TikTokAccessToken, cfg.HTTPTimeout, mocks),
		fetcher.NewTwitterFetcher(cfg.TwitterBearerToken, cfg.HTTPTimeout, mocks),
	}

	plans := service.NewPlanService()
	agg := aggregator.New(fetchers, mocks, plans, cfg.MockOnly)

	h := &handler.Handler{
		Aggregator: agg,
		Plans:      plans,
		Ads:        service.NewAdService(mocks),
		Users:      service.NewUserService(db),
		Payments:   service.NewPaymentService(db, plans),
		Analytics:  service.NewAnalyticsService(db),
	}
	if mongoClient != nil {
		h.DBConnected = func(ctx context.Context) bool {
			pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
			defer cancel()
			return mongoClient.Ping(pingCtx, readpref.Primary()) == nil
		}
	}

	r := router.Setup(h)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	snapshotWorker := worker.New(agg, natsConn, db, cfg.FetchInterval)
	if err := snapshotWorker.Start(ctx); err != nil {
		log.Printf("[WARN] Snapshot worker failed to start: %v", err)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Printf("[INFO] Viral Daily API starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[INFO] Shutting down...")

	snapshotWorker.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("[INFO] Viral Daily API stopped")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
