package service

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/tesseralabs/tessera/internal/domain"
	"github.com/tesseralabs/tessera/internal/worker"
)

// WorkerState classifies a worker's liveness from its heartbeat age.
type WorkerState string

const (
	WorkerHealthy     WorkerState = "healthy"
	WorkerStale       WorkerState = "stale"
	WorkerDead        WorkerState = "dead"
	WorkerQuarantined WorkerState = "quarantined"
)

// Runner is the outbound transport to a single worker. *worker.Client is
// the production implementation; tests substitute fakes.
type Runner interface {
	RunJob(ctx context.Context, req *worker.RunJobRequest) (*worker.RunJobResponse, error)
	Abort(ctx context.Context, jobID string) error
	Health(ctx context.Context) error
	Capabilities(ctx context.Context) (*worker.Capabilities, error)
}

// WorkerHandle is a dispatch-ready view of one registry entry.
type WorkerHandle struct {
	ID           string
	Capabilities []string
	LoadedModels []string
	Runner       Runner
}

// WorkerInfo is the observable state of one worker, for operators and the
// models endpoint.
type WorkerInfo struct {
	ID            string      `json:"worker_id"`
	URL           string      `json:"url"`
	Status        string      `json:"status"`
	State         WorkerState `json:"state"`
	Capabilities  []string    `json:"capabilities"`
	LoadedModels  []string    `json:"loaded_models"`
	GPUMemoryUsed int64       `json:"gpu_memory_used"`
	UptimeSeconds float64     `json:"uptime"`
	JobsCompleted int         `json:"jobs_completed"`
	CurrentJobs   []string    `json:"current_jobs,omitempty"`
	LastHeartbeat time.Time   `json:"last_heartbeat"`
}

type workerEntry struct {
	info        WorkerInfo
	runner      Runner
	lastBeat    time.Time // monotonic
	dispatching bool      // set by the dispatcher between heartbeats
	verified    bool      // reachability confirmed via the capabilities probe
	currentJobs []string
	failures    []time.Time
	quarantined bool
	deadSince   time.Time // zero until declared dead
}

// Registry tracks the known worker fleet in memory. The canonical store
// never shadows it: workers exist only as long as they heartbeat.
type Registry struct {
	mu      sync.Mutex
	workers map[string]*workerEntry
	logger  *slog.Logger

	// newRunner builds the transport for a worker URL. Tests override it.
	newRunner func(url string) Runner
}

// NewRegistry creates an empty worker registry.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		workers: make(map[string]*workerEntry),
		logger:  logger,
		newRunner: func(url string) Runner {
			return worker.NewClient(url)
		},
	}
}

// SetRunnerFactory overrides the worker transport constructor (tests).
func (r *Registry) SetRunnerFactory(fn func(url string) Runner) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.newRunner = fn
}

// Upsert records a heartbeat. Returns true when the worker was previously
// unknown (callers probe new workers before trusting them with dispatch).
// Re-delivering an identical heartbeat leaves the registry equivalent.
func (r *Registry) Upsert(hb *worker.Heartbeat) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, known := r.workers[hb.WorkerID]
	if !known {
		e = &workerEntry{runner: r.newRunner(hb.URL)}
		r.workers[hb.WorkerID] = e
	} else if e.info.URL != hb.URL {
		e.runner = r.newRunner(hb.URL)
		e.verified = false
	}

	e.info = WorkerInfo{
		ID:            hb.WorkerID,
		URL:           hb.URL,
		Status:        hb.Status,
		Capabilities:  hb.Capabilities,
		LoadedModels:  hb.LoadedModels,
		GPUMemoryUsed: hb.GPUMemoryUsed,
		UptimeSeconds: hb.UptimeSeconds,
		JobsCompleted: hb.JobsCompleted,
	}
	e.lastBeat = time.Now()
	e.deadSince = time.Time{}
	return !known
}

// Runner returns the transport for a known worker, or nil.
func (r *Registry) Runner(workerID string) Runner {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.workers[workerID]; ok {
		return e.runner
	}
	return nil
}

func (e *workerEntry) state(now time.Time) WorkerState {
	if e.quarantined {
		return WorkerQuarantined
	}
	since := now.Sub(e.lastBeat)
	switch {
	case since > domain.WorkerDeadAfter:
		return WorkerDead
	case since > domain.WorkerStaleAfter:
		return WorkerStale
	default:
		return WorkerHealthy
	}
}

// IdleHealthy returns dispatch candidates in deterministic order (stable by
// worker id): healthy, reporting idle, not mid-dispatch, not quarantined.
func (r *Registry) IdleHealthy() []WorkerHandle {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	var out []WorkerHandle
	for id, e := range r.workers {
		if e.state(now) != WorkerHealthy || e.info.Status != "idle" || e.dispatching || !e.verified {
			continue
		}
		out = append(out, WorkerHandle{
			ID:           id,
			Capabilities: slices.Clone(e.info.Capabilities),
			LoadedModels: slices.Clone(e.info.LoadedModels),
			Runner:       e.runner,
		})
	}
	slices.SortFunc(out, func(a, b WorkerHandle) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// MarkDispatching claims a worker for a dispatch in flight. Returns false
// if the worker is already claimed or gone.
func (r *Registry) MarkDispatching(workerID string, jobIDs []string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.workers[workerID]
	if !ok || e.dispatching {
		return false
	}
	e.dispatching = true
	e.currentJobs = jobIDs
	e.info.Status = "busy"
	return true
}

// ClearDispatching releases a worker after its dispatch resolves.
func (r *Registry) ClearDispatching(workerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.workers[workerID]; ok {
		e.dispatching = false
		e.currentJobs = nil
		// The next heartbeat is authoritative; until then the worker is
		// assumed idle again.
		e.info.Status = "idle"
	}
}

// ModelResident reports whether any idle healthy worker has the model
// loaded (the cold-start heuristic for time estimates).
func (r *Registry) ModelResident(model string) bool {
	if model == "" {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	for _, e := range r.workers {
		if e.state(now) != WorkerHealthy || e.info.Status != "idle" {
			continue
		}
		if slices.Contains(e.info.LoadedModels, model) {
			return true
		}
	}
	return false
}

// RecordFailure notes a runtime failure attributed to the worker. More than
// domain.QuarantineFailures inside domain.QuarantineWindow quarantines it
// until an operator-triggered health probe succeeds.
func (r *Registry) RecordFailure(workerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.workers[workerID]
	if !ok {
		return
	}
	now := time.Now()
	cutoff := now.Add(-domain.QuarantineWindow)
	kept := e.failures[:0]
	for _, t := range e.failures {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	e.failures = append(kept, now)
	if len(e.failures) > domain.QuarantineFailures && !e.quarantined {
		e.quarantined = true
		r.logger.Warn("worker quarantined", "worker_id", workerID, "failures", len(e.failures))
	}
}

// Verify confirms a newly registered worker is reachable by fetching its
// capabilities, then admits it to the idle pool. Unreachable workers are
// forgotten; their next heartbeat re-registers them.
func (r *Registry) Verify(ctx context.Context, workerID string) error {
	r.mu.Lock()
	e, ok := r.workers[workerID]
	if !ok {
		r.mu.Unlock()
		return domain.Errorf(domain.CodeNotFound, "unknown worker %q", workerID)
	}
	runner := e.runner
	r.mu.Unlock()

	if _, err := runner.Capabilities(ctx); err != nil {
		r.mu.Lock()
		delete(r.workers, workerID)
		r.mu.Unlock()
		r.logger.Warn("worker failed registration probe", "worker_id", workerID, "error", err)
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.workers[workerID]; ok {
		e.verified = true
	}
	r.logger.Info("worker registered", "worker_id", workerID)
	return nil
}

// MarkVerified admits a worker without probing (tests).
func (r *Registry) MarkVerified(workerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.workers[workerID]; ok {
		e.verified = true
	}
}

// Probe runs a health check against a quarantined worker and clears the
// quarantine when it succeeds.
func (r *Registry) Probe(ctx context.Context, workerID string) error {
	r.mu.Lock()
	e, ok := r.workers[workerID]
	if !ok {
		r.mu.Unlock()
		return domain.Errorf(domain.CodeNotFound, "unknown worker %q", workerID)
	}
	runner := e.runner
	r.mu.Unlock()

	if err := runner.Health(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.workers[workerID]; ok {
		e.quarantined = false
		e.failures = nil
	}
	r.logger.Info("worker quarantine cleared", "worker_id", workerID)
	return nil
}

// SweepDead declares workers dead and expires old corpses. It returns the
// ids newly declared dead this sweep; the reaper requeues their jobs. Dead
// entries stay visible for domain.DeadWorkerRetention.
func (r *Registry) SweepDead() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	var newlyDead []string
	for id, e := range r.workers {
		since := now.Sub(e.lastBeat)
		if since <= domain.WorkerDeadAfter {
			continue
		}
		if e.deadSince.IsZero() {
			e.deadSince = now
			e.dispatching = false
			newlyDead = append(newlyDead, id)
			r.logger.Warn("worker declared dead", "worker_id", id, "heartbeat_age", since.Round(time.Second))
			continue
		}
		if now.Sub(e.deadSince) > domain.DeadWorkerRetention {
			delete(r.workers, id)
		}
	}
	slices.Sort(newlyDead)
	return newlyDead
}

// Snapshot returns the observable state of every known worker, sorted by id.
func (r *Registry) Snapshot() []WorkerInfo {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	out := make([]WorkerInfo, 0, len(r.workers))
	for _, e := range r.workers {
		info := e.info
		info.State = e.state(now)
		info.CurrentJobs = slices.Clone(e.currentJobs)
		info.LastHeartbeat = e.lastBeat
		out = append(out, info)
	}
	slices.SortFunc(out, func(a, b WorkerInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// State reports a single worker's liveness.
func (r *Registry) State(workerID string) (WorkerState, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.workers[workerID]
	if !ok {
		return "", false
	}
	return e.state(time.Now()), true
}
