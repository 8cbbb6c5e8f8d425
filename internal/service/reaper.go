package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/tesseralabs/tessera/internal/domain"
	"github.com/tesseralabs/tessera/internal/ent"
	entjob "github.com/tesseralabs/tessera/internal/ent/job"
)

var reaperTracer = otel.Tracer("tessera/service/reaper")

// Reaper periodically detects workers whose heartbeat went stale past the
// dead threshold and jobs stuck in RUNNING beyond their deadline. Affected
// jobs go through the normal failure path, so retry accounting is shared
// with worker-reported failures.
type Reaper struct {
	db         *ent.Client
	registry   *Registry
	completion *CompletionService
	logger     *slog.Logger
	interval   time.Duration
	stopCh     chan struct{}

	reaped metric.Int64Counter
}

// NewReaper creates a Reaper sweeping at the given interval.
func NewReaper(db *ent.Client, registry *Registry, completion *CompletionService, logger *slog.Logger, interval time.Duration) *Reaper {
	meter := otel.Meter("tessera/service/reaper")
	reaped, _ := meter.Int64Counter("tessera.reaper.jobs_reaped")
	return &Reaper{
		db:         db,
		registry:   registry,
		completion: completion,
		logger:     logger,
		interval:   interval,
		stopCh:     make(chan struct{}),
		reaped:     reaped,
	}
}

// Start begins the periodic sweep loop in a goroutine.
func (r *Reaper) Start() {
	go r.run()
	r.logger.Info("reaper started", "interval", r.interval)
}

// Stop signals the sweep loop to stop.
func (r *Reaper) Stop() {
	close(r.stopCh)
	r.logger.Info("reaper stopped")
}

func (r *Reaper) run() {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopCh:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			r.Sweep(ctx)
			cancel()
		}
	}
}

// Sweep runs one pass: dead workers first, then deadline-expired jobs.
// Exported for tests.
func (r *Reaper) Sweep(ctx context.Context) {
	ctx, span := reaperTracer.Start(ctx, "reaper.sweep")
	defer span.End()

	dead := r.registry.SweepDead()
	for _, workerID := range dead {
		r.reapDeadWorker(ctx, workerID)
	}
	r.reapExpired(ctx)
	span.SetAttributes(attribute.Int("dead_workers", len(dead)))
}

// reapDeadWorker requeues (or fails, when retries are exhausted) every job
// still attributed to a worker that stopped heartbeating.
func (r *Reaper) reapDeadWorker(ctx context.Context, workerID string) {
	jobs, err := r.db.Job.Query().
		Where(entjob.StatusEQ(entjob.StatusRUNNING), entjob.WorkerIDEQ(workerID)).
		All(ctx)
	if err != nil {
		r.logger.Error("query orphaned jobs", "worker_id", workerID, "error", err)
		return
	}
	for _, j := range jobs {
		r.logger.Warn("requeueing orphaned job", "job_id", j.ID, "worker_id", workerID)
		r.completion.FailJob(ctx, j.ID, domain.CodeWorkerError,
			fmt.Sprintf("worker %s declared dead", workerID))
		r.reaped.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", "worker_dead")))
	}
}

// reapExpired fails RUNNING jobs past started_at + timeout + grace.
func (r *Reaper) reapExpired(ctx context.Context) {
	now := time.Now().UTC()

	// The oldest possible live deadline bounds the query; the precise
	// per-job timeout lives in params and is checked in process.
	horizon := now.Add(-domain.ReapGrace)
	jobs, err := r.db.Job.Query().
		Where(
			entjob.StatusEQ(entjob.StatusRUNNING),
			entjob.StartedAtLT(horizon),
		).
		All(ctx)
	if err != nil {
		r.logger.Error("query running jobs", "error", err)
		return
	}

	for _, j := range jobs {
		if j.StartedAt == nil {
			continue
		}
		deadline := j.StartedAt.Add(domain.TimeoutOf(j.Params) + domain.ReapGrace)
		if now.Before(deadline) {
			continue
		}
		r.logger.Warn("job exceeded deadline",
			"job_id", j.ID, "worker_id", j.WorkerID, "started_at", j.StartedAt)
		if j.WorkerID != "" {
			r.registry.RecordFailure(j.WorkerID)
		}
		r.completion.FailJob(ctx, j.ID, domain.CodeTimeout, "execution deadline exceeded")
		r.reaped.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", "timeout")))
	}
}
