package worker

import (
	"context"
	"testing"
	"time"

	"viral-daily/aggregator"
	"viral-daily/fetcher"
	"viral-daily/service"
)

func newTestWorker() *Worker {
	mocks := fetcher.NewMockSource(7)
	agg := aggregator.New(nil, mocks, service.NewPlanService(), true)
	return New(agg, nil, nil, time.Hour)
}

func TestRefreshWithoutDependencies(t *testing.T) {
	w := newTestWorker()

	// No NATS connection and no database: the refresh must still complete
	// without panicking.
	w.refresh(context.Background(), RefreshRequest{RequestID: "test", Limit: 30})
}

func TestStoreSnapshotWithoutDatabase(t *testing.T) {
	w := newTestWorker()

	if err := w.storeSnapshot(context.Background(), nil); err != nil {
		t.Fatalf("storeSnapshot() = %v, want nil", err)
	}
}

func TestStartStopWithoutNATS(t *testing.T) {
	w := newTestWorker()

	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start() = %v, want nil", err)
	}
	w.Stop()
}

func TestStopBeforeStart(t *testing.T) {
	w := newTestWorker()
	w.Stop()
}
