package service

import (
	"context"
	"log"
	"time"

	"viral-daily/metrics"
	"viral-daily/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

type apiCallRecord struct {
	ID        string    `bson:"_id"`
	Endpoint  string    `bson:"endpoint"`
	Platform  string    `bson:"platform,omitempty"`
	Tier      string    `bson:"tier"`
	Limit     int       `bson:"limit"`
	Served    int       `bson:"served"`
	Status    string    `bson:"status"`
	CreatedAt time.Time `bson:"created_at"`
}

// AnalyticsService logs API usage. Writes are fire-and-forget: they run on
// their own goroutine with a short timeout and never block or fail the
// response path.
type AnalyticsService struct {
	calls *mongo.Collection
}

func NewAnalyticsService(db *mongo.Database) *AnalyticsService {
	s := &AnalyticsService{}
	if db != nil {
		s.calls = db.Collection("api_calls")
	}
	return s
}

// RecordVideoRequest logs a videos-endpoint call in the background.
func (s *AnalyticsService) RecordVideoRequest(platform *model.Platform, tier model.Tier, limit, served int, status string) {
	if s.calls == nil {
		return
	}

	rec := apiCallRecord{
		ID:        uuid.NewString(),
		Endpoint:  "/api/videos",
		Tier:      string(tier),
		Limit:     limit,
		Served:    served,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}
	if platform != nil {
		rec.Platform = string(*platform)
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()

		if _, err := s.calls.InsertOne(ctx, rec); err != nil {
			metrics.MongoOperationsTotal.WithLabelValues("insert", "api_calls", "error").Inc()
			log.Printf("[WARN] Failed to record api call: %v", err)
			return
		}
		metrics.MongoOperationsTotal.WithLabelValues("insert", "api_calls", "ok").Inc()
	}()
}
