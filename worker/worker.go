// Package worker refreshes a trending snapshot in the background. Snapshots
// feed analytics and the daily email digest; the request path never waits on
// them.
package worker

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"viral-daily/aggregator"
	"viral-daily/metrics"
	"viral-daily/model"

	"github.com/nats-io/nats.go"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	refreshSubject       = "videos.refresh"
	refreshResultSubject = "videos.refresh.result"
	snapshotLimit        = 60
)

// RefreshRequest asks the worker for an immediate snapshot refresh.
type RefreshRequest struct {
	RequestID string `json:"request_id"`
	Limit     int    `json:"limit"`
}

// RefreshResult reports a completed refresh.
type RefreshResult struct {
	RequestID   string    `json:"request_id"`
	Success     bool      `json:"success"`
	VideosCount int       `json:"videos_count"`
	Error       string    `json:"error,omitempty"`
	ProcessedAt time.Time `json:"processed_at"`
}

// Worker periodically aggregates a trending snapshot and stores it in the
// trending collection. It also listens for on-demand refresh requests over
// NATS. Both NATS and Mongo are optional: without NATS only the ticker
// runs, without Mongo snapshots are computed but not stored.
type Worker struct {
	agg      *aggregator.Aggregator
	natsConn *nats.Conn
	trending *mongo.Collection
	interval time.Duration
	sub      *nats.Subscription
	cancel   context.CancelFunc
}

func New(agg *aggregator.Aggregator, nc *nats.Conn, db *mongo.Database, interval time.Duration) *Worker {
	w := &Worker{
		agg:      agg,
		natsConn: nc,
		interval: interval,
	}
	if db != nil {
		w.trending = db.Collection("trending")
	}
	return w
}

func (w *Worker) Start(ctx context.Context) error {
	workerCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	if w.natsConn != nil {
		sub, err := w.natsConn.Subscribe(refreshSubject, func(msg *nats.Msg) {
			w.handleRefreshRequest(workerCtx, msg)
		})
		if err != nil {
			cancel()
			return err
		}
		w.sub = sub
		log.Printf("[INFO] Subscribed to %s", refreshSubject)
	}

	go w.runScheduler(workerCtx)

	log.Println("[INFO] Trending snapshot worker started")
	return nil
}

func (w *Worker) Stop() {
	log.Println("[INFO] Stopping trending snapshot worker...")
	if w.cancel != nil {
		w.cancel()
	}
	if w.sub != nil {
		w.sub.Unsubscribe()
	}
}

func (w *Worker) runScheduler(ctx context.Context) {
	// Initial snapshot on startup
	w.refresh(ctx, RefreshRequest{RequestID: "startup", Limit: snapshotLimit})

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.refresh(ctx, RefreshRequest{RequestID: "scheduled", Limit: snapshotLimit})
		case <-ctx.Done():
			log.Println("[INFO] Snapshot scheduler stopped")
			return
		}
	}
}

func (w *Worker) handleRefreshRequest(ctx context.Context, msg *nats.Msg) {
	var req RefreshRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		log.Printf("[WARN] Bad refresh request: %v", err)
		return
	}
	if req.Limit <= 0 {
		req.Limit = snapshotLimit
	}
	w.refresh(ctx, req)
}

// refresh aggregates a fresh snapshot and replaces the stored one. Failures
// are logged and reported over NATS, never propagated.
func (w *Worker) refresh(ctx context.Context, req RefreshRequest) {
	log.Printf("[INFO] Refreshing trending snapshot (request %s)", req.RequestID)

	videos := w.agg.Aggregate(ctx, req.Limit, model.TierBusiness)

	result := RefreshResult{
		RequestID:   req.RequestID,
		Success:     true,
		VideosCount: len(videos),
		ProcessedAt: time.Now().UTC(),
	}

	if err := w.storeSnapshot(ctx, videos); err != nil {
		log.Printf("[WARN] Failed to store trending snapshot: %v", err)
		result.Success = false
		result.Error = err.Error()
	}

	w.publishResult(result)
}

// storeSnapshot replaces the trending collection contents, mirroring the
// regenerate-on-every-refresh lifecycle of the video records themselves.
func (w *Worker) storeSnapshot(ctx context.Context, videos []model.Video) error {
	if w.trending == nil || len(videos) == 0 {
		return nil
	}

	opCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	if _, err := w.trending.DeleteMany(opCtx, bson.M{}); err != nil {
		metrics.MongoOperationsTotal.WithLabelValues("delete", "trending", "error").Inc()
		return err
	}

	docs := make([]interface{}, 0, len(videos))
	for _, v := range videos {
		docs = append(docs, v)
	}

	if _, err := w.trending.InsertMany(opCtx, docs); err != nil {
		metrics.MongoOperationsTotal.WithLabelValues("insert", "trending", "error").Inc()
		return err
	}

	metrics.MongoOperationsTotal.WithLabelValues("insert", "trending", "ok").Inc()
	log.Printf("[INFO] Stored %d videos in trending snapshot", len(videos))
	return nil
}

func (w *Worker) publishResult(result RefreshResult) {
	if w.natsConn == nil {
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		return
	}

	if err := w.natsConn.Publish(refreshResultSubject, data); err != nil {
		metrics.NatsMessagesPublished.WithLabelValues(refreshResultSubject, "error").Inc()
		log.Printf("[WARN] Failed to publish refresh result: %v", err)
		return
	}
	metrics.NatsMessagesPublished.WithLabelValues(refreshResultSubject, "ok").Inc()
}
