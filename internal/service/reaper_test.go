package service

import (
	"context"
	"testing"
	"time"

	"github.com/tesseralabs/tessera/internal/domain"
	"github.com/tesseralabs/tessera/internal/ent"
	entjob "github.com/tesseralabs/tessera/internal/ent/job"
	"github.com/tesseralabs/tessera/internal/worker"
)

func newReaper(t *testing.T) (*Reaper, *ent.Client, *Registry) {
	t.Helper()
	client := openTestDB(t)
	registry := NewRegistry(testLogger())
	completion := NewCompletionService(client, registry, &Notifier{}, testLogger())
	r := NewReaper(client, registry, completion, testLogger(), 10*time.Second)
	return r, client, registry
}

func heartbeatWorker(r *Registry, id string) {
	r.Upsert(&worker.Heartbeat{
		WorkerID:     id,
		URL:          "http://" + id,
		Status:       "busy",
		Capabilities: []string{"image"},
	})
	r.MarkVerified(id)
}

func TestReaper_DeadWorkerRequeuesThenFails(t *testing.T) {
	r, client, registry := newReaper(t)
	ctx := context.Background()

	u := createTestUser(t, client, "telegram", "123", domain.TierFree)
	j := enqueueTestJob(t, client, u.ID, 0, "image", time.Now(), imageParamsFor("sdxl"))
	j = runTestJob(t, client, j, "w1", time.Now())

	// First death: requeue with retry_count=1.
	heartbeatWorker(registry, "w1")
	rewindHeartbeat(registry, "w1", domain.WorkerDeadAfter+time.Second)
	r.Sweep(ctx)

	got, _ := client.Job.Get(ctx, j.ID)
	if got.Status != entjob.StatusQUEUED {
		t.Fatalf("status after first death = %s, want QUEUED", got.Status)
	}
	if got.RetryCount != 1 {
		t.Fatalf("retry_count = %d, want 1", got.RetryCount)
	}

	// Second death with retries exhausted: WORKER_ERROR.
	j, _ = got.Update().
		SetStatus(entjob.StatusRUNNING).
		SetWorkerID("w1").
		SetStartedAt(time.Now()).
		SetRetryCount(domain.MaxRetries).
		Save(ctx)
	heartbeatWorker(registry, "w1")
	rewindHeartbeat(registry, "w1", domain.WorkerDeadAfter+time.Second)
	r.Sweep(ctx)

	got, _ = client.Job.Get(ctx, j.ID)
	if got.Status != entjob.StatusFAILED {
		t.Fatalf("status after retries exhausted = %s, want FAILED", got.Status)
	}
	if code := got.Error["code"]; code != "WORKER_ERROR" {
		t.Errorf("error code = %v, want WORKER_ERROR", code)
	}
}

func TestReaper_DeadWorkerLeavesIdlePool(t *testing.T) {
	r, _, registry := newReaper(t)

	heartbeatWorker(registry, "w1")
	rewindHeartbeat(registry, "w1", domain.WorkerDeadAfter+time.Second)
	r.Sweep(context.Background())

	if handles := registry.IdleHealthy(); len(handles) != 0 {
		t.Errorf("dead worker still dispatchable: %v", handles)
	}
	// Kept for forensic visibility.
	if snap := registry.Snapshot(); len(snap) != 1 || snap[0].State != WorkerDead {
		t.Errorf("dead worker not visible in snapshot: %+v", snap)
	}
}

func TestReaper_DeadlineExpiredTimesOut(t *testing.T) {
	r, client, _ := newReaper(t)
	ctx := context.Background()

	u := createTestUser(t, client, "telegram", "123", domain.TierFree)
	params := imageParamsFor("sdxl")
	params["timeout_seconds"] = 60
	j := enqueueTestJob(t, client, u.ID, 0, "image", time.Now().Add(-3*time.Minute), params)
	j = runTestJob(t, client, j, "w1", time.Now().Add(-2*time.Minute))

	r.Sweep(ctx)

	got, _ := client.Job.Get(ctx, j.ID)
	if got.Status != entjob.StatusQUEUED {
		t.Fatalf("status = %s, want QUEUED (TIMEOUT retries)", got.Status)
	}
	if got.RetryCount != 1 {
		t.Errorf("retry_count = %d, want 1", got.RetryCount)
	}
}

func TestReaper_WithinDeadlineUntouched(t *testing.T) {
	r, client, _ := newReaper(t)
	ctx := context.Background()

	u := createTestUser(t, client, "telegram", "123", domain.TierFree)
	j := enqueueTestJob(t, client, u.ID, 0, "image", time.Now(), imageParamsFor("sdxl"))
	j = runTestJob(t, client, j, "w1", time.Now().Add(-time.Minute))

	r.Sweep(ctx)

	got, _ := client.Job.Get(ctx, j.ID)
	if got.Status != entjob.StatusRUNNING {
		t.Fatalf("status = %s, want RUNNING (default 300s timeout not reached)", got.Status)
	}
}
