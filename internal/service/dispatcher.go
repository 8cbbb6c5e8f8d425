package service

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/tesseralabs/tessera/internal/domain"
	"github.com/tesseralabs/tessera/internal/ent"
	entjob "github.com/tesseralabs/tessera/internal/ent/job"
	"github.com/tesseralabs/tessera/internal/worker"
)

var dispatchTracer = otel.Tracer("tessera/service/dispatcher")

// queueScanLimit bounds how many queued jobs one tick considers. The queue
// is ordered, so the head is always in view.
const queueScanLimit = 128

// Dispatcher is the single coordination loop pairing idle workers with
// queued jobs. Exactly one runs per control-plane instance; the status CAS
// keeps a second instance safe, at the cost of contention.
type Dispatcher struct {
	db         *ent.Client
	registry   *Registry
	completion *CompletionService
	catalog    *ModelCatalog
	logger     *slog.Logger
	idleSleep  time.Duration
	stopCh     chan struct{}
	wg         sync.WaitGroup

	// Affinity starvation counters, touched only by the loop goroutine.
	skips map[uuid.UUID]int

	dispatches metric.Int64Counter
	queueDepth metric.Int64Gauge
}

// NewDispatcher creates the dispatcher.
func NewDispatcher(db *ent.Client, registry *Registry, completion *CompletionService, catalog *ModelCatalog, logger *slog.Logger, idleSleep time.Duration) *Dispatcher {
	meter := otel.Meter("tessera/service/dispatcher")
	dispatches, _ := meter.Int64Counter("tessera.dispatch.total")
	queueDepth, _ := meter.Int64Gauge("tessera.queue.depth")
	return &Dispatcher{
		db:         db,
		registry:   registry,
		completion: completion,
		catalog:    catalog,
		logger:     logger,
		idleSleep:  idleSleep,
		stopCh:     make(chan struct{}),
		skips:      make(map[uuid.UUID]int),
		dispatches: dispatches,
		queueDepth: queueDepth,
	}
}

// Start begins the dispatch loop in a goroutine.
func (d *Dispatcher) Start() {
	go d.run()
	d.logger.Info("dispatcher started", "idle_sleep", d.idleSleep)
}

// Stop signals the loop to stop and waits for in-flight dispatches.
func (d *Dispatcher) Stop() {
	close(d.stopCh)
	d.wg.Wait()
	d.logger.Info("dispatcher stopped")
}

func (d *Dispatcher) run() {
	for {
		select {
		case <-d.stopCh:
			return
		default:
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		dispatched := d.Tick(ctx)
		cancel()

		if !dispatched {
			select {
			case <-d.stopCh:
				return
			case <-time.After(d.idleSleep):
			}
		}
	}
}

// Tick runs one pass of worker and job selection. Returns true when at
// least one dispatch was launched. Exported for tests; production only
// calls it from the loop goroutine.
func (d *Dispatcher) Tick(ctx context.Context) bool {
	ctx, span := dispatchTracer.Start(ctx, "dispatcher.tick")
	defer span.End()

	workers := d.registry.IdleHealthy()
	if len(workers) == 0 {
		return false
	}

	queued, err := d.db.Job.Query().
		Where(entjob.StatusEQ(entjob.StatusQUEUED)).
		Order(ent.Desc(entjob.FieldPriority), ent.Asc(entjob.FieldQueuedAt), ent.Asc(entjob.FieldID)).
		Limit(queueScanLimit).
		All(ctx)
	if err != nil {
		d.logger.Error("query queue", "error", err)
		return false
	}
	d.queueDepth.Record(ctx, int64(len(queued)))
	d.pruneSkips(queued)
	if len(queued) == 0 {
		return false
	}
	span.SetAttributes(
		attribute.Int("queued", len(queued)),
		attribute.Int("idle_workers", len(workers)),
	)

	claimed := make(map[uuid.UUID]bool)
	launched := false
	for _, w := range workers {
		candidates := eligibleJobs(queued, w, claimed)
		if len(candidates) == 0 {
			continue
		}
		chosen := d.selectJob(w, candidates)
		batch := d.assembleBatch(chosen, candidates)
		for _, j := range batch {
			claimed[j.ID] = true
		}

		started := d.claim(ctx, w.ID, batch)
		if len(started) == 0 {
			continue
		}

		ids := make([]string, len(started))
		for i, j := range started {
			ids[i] = j.ID.String()
			delete(d.skips, j.ID)
		}
		if !d.registry.MarkDispatching(w.ID, ids) {
			// The worker went busy or dead between the snapshot and now.
			d.revert(ctx, w.ID, started)
			continue
		}

		d.dispatches.Add(ctx, int64(len(started)), metric.WithAttributes(
			attribute.String("capability", string(started[0].Capability)),
			attribute.Bool("batch", len(started) > 1),
		))
		d.logger.Info("dispatching",
			"worker_id", w.ID, "jobs", ids, "capability", started[0].Capability)

		d.wg.Add(1)
		go d.dispatch(w, started)
		launched = true
	}
	return launched
}

// eligibleJobs filters the ordered queue to jobs this worker can execute.
func eligibleJobs(queued []*ent.Job, w WorkerHandle, claimed map[uuid.UUID]bool) []*ent.Job {
	var out []*ent.Job
	for _, j := range queued {
		if claimed[j.ID] {
			continue
		}
		if slices.Contains(w.Capabilities, string(j.Capability)) {
			out = append(out, j)
		}
	}
	return out
}

// selectJob applies the affinity pass, bounded by the starvation counter,
// then falls back to strict (priority desc, queued_at asc) order.
// candidates are already in queue order.
func (d *Dispatcher) selectJob(w WorkerHandle, candidates []*ent.Job) *ent.Job {
	affIdx := -1
	for i, j := range candidates {
		if m := domain.ModelOf(j.Params); m != "" && slices.Contains(w.LoadedModels, m) {
			affIdx = i
			break
		}
	}
	if affIdx <= 0 {
		// No affinity match, or it is already first in line.
		return candidates[0]
	}

	// Jobs the affinity pick would displace. If any has hit the
	// starvation limit, it wins instead; otherwise they each accrue a
	// skip and affinity prevails.
	displaced := candidates[:affIdx]
	for _, j := range displaced {
		if d.skips[j.ID] >= domain.AffinityStarvationLimit {
			return j
		}
	}
	for _, j := range displaced {
		d.skips[j.ID]++
	}
	return candidates[affIdx]
}

// assembleBatch collects up to MaxBatchSize jobs sharing the chosen job's
// batch key. Fewer than two matches means a single dispatch.
func (d *Dispatcher) assembleBatch(chosen *ent.Job, candidates []*ent.Job) []*ent.Job {
	key := domain.BatchKeyOf(chosen.Params)
	if key.Model == "" {
		return []*ent.Job{chosen}
	}
	batch := []*ent.Job{chosen}
	for _, j := range candidates {
		if j.ID == chosen.ID {
			continue
		}
		if domain.BatchKeyOf(j.Params) == key {
			batch = append(batch, j)
			if len(batch) == domain.MaxBatchSize {
				break
			}
		}
	}
	if len(batch) < 2 {
		return []*ent.Job{chosen}
	}
	slices.SortFunc(batch, func(a, b *ent.Job) int {
		if a.Priority != b.Priority {
			return b.Priority - a.Priority
		}
		if c := a.QueuedAt.Compare(*b.QueuedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})
	return batch
}

// claim transitions batch members QUEUED→RUNNING atomically. Members stolen
// by a cancel (or another dispatcher) are dropped.
func (d *Dispatcher) claim(ctx context.Context, workerID string, batch []*ent.Job) []*ent.Job {
	now := time.Now().UTC()
	var started []*ent.Job
	for _, j := range batch {
		n, err := d.db.Job.Update().
			Where(entjob.IDEQ(j.ID), entjob.StatusEQ(entjob.StatusQUEUED)).
			SetStatus(entjob.StatusRUNNING).
			SetWorkerID(workerID).
			SetStartedAt(now).
			Save(ctx)
		if err != nil {
			d.logger.Error("claim job", "job_id", j.ID, "error", err)
			continue
		}
		if n == 0 {
			d.logger.Info("job stolen before dispatch", "job_id", j.ID)
			continue
		}
		started = append(started, j)
	}
	return started
}

// revert undoes a claim when the worker could not be reserved. The retry
// counter is untouched: the job never left the control plane.
func (d *Dispatcher) revert(ctx context.Context, workerID string, jobs []*ent.Job) {
	now := time.Now().UTC()
	for _, j := range jobs {
		_, err := d.db.Job.Update().
			Where(
				entjob.IDEQ(j.ID),
				entjob.StatusEQ(entjob.StatusRUNNING),
				entjob.WorkerIDEQ(workerID),
			).
			SetStatus(entjob.StatusQUEUED).
			ClearWorkerID().
			ClearStartedAt().
			SetQueuedAt(now).
			Save(ctx)
		if err != nil {
			d.logger.Error("revert claim", "job_id", j.ID, "error", err)
		}
	}
}

// dispatch sends the batch to the worker and hands the reply to the
// completion handler. No storage transaction is held across the call.
func (d *Dispatcher) dispatch(w WorkerHandle, jobs []*ent.Job) {
	defer d.wg.Done()
	defer d.registry.ClearDispatching(w.ID)

	lead := jobs[0]
	req := &worker.RunJobRequest{
		JobID:          lead.ID.String(),
		Engine:         d.engineOf(lead),
		WorkflowID:     lead.WorkflowID,
		ModelID:        domain.ModelOf(lead.Params),
		Params:         lead.Params,
		TimeoutSeconds: int(domain.TimeoutOf(lead.Params).Seconds()),
	}
	for _, j := range jobs[1:] {
		req.Batch = append(req.Batch, worker.BatchMember{
			JobID:  j.ID.String(),
			Params: j.Params,
		})
	}

	ctx := context.Background()
	resp, err := w.Runner.RunJob(ctx, req)
	d.completion.HandleResponse(ctx, w.ID, jobs, resp, err)
}

// engineOf resolves the inference engine from params or the model catalog.
func (d *Dispatcher) engineOf(j *ent.Job) string {
	if engine := domain.BatchKeyOf(j.Params).Engine; engine != "" {
		return engine
	}
	if info, ok := d.catalog.Lookup(domain.ModelOf(j.Params)); ok {
		return info.Engine
	}
	return ""
}

// pruneSkips drops starvation counters for jobs no longer queued.
func (d *Dispatcher) pruneSkips(queued []*ent.Job) {
	if len(d.skips) == 0 {
		return
	}
	live := make(map[uuid.UUID]bool, len(queued))
	for _, j := range queued {
		live[j.ID] = true
	}
	for id := range d.skips {
		if !live[id] {
			delete(d.skips, id)
		}
	}
}
