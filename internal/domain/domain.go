package domain

import (
	"fmt"
	"time"
)

// Scheduling and retry constants. These are deliberately not configurable:
// changing them changes observable queue semantics.
const (
	// MaxRetries bounds requeues after TIMEOUT or WORKER_ERROR failures.
	MaxRetries = 2

	// AffinityStarvationLimit is how many times a queued job may be passed
	// over in favor of a model-affinity match at equal priority before the
	// affinity rule is suspended for it.
	AffinityStarvationLimit = 10

	// MaxBatchSize caps how many jobs with an identical batch key are
	// co-dispatched to one worker.
	MaxBatchSize = 4

	// DefaultJobTimeout and MaxJobTimeout bound params.timeout_seconds.
	DefaultJobTimeout = 300 * time.Second
	MaxJobTimeout     = 600 * time.Second

	// ReapGrace is added on top of the job timeout before the reaper fails
	// a RUNNING job with TIMEOUT.
	ReapGrace = 30 * time.Second

	// Worker liveness thresholds measured from the last heartbeat.
	WorkerStaleAfter = 60 * time.Second
	WorkerDeadAfter  = 180 * time.Second

	// DeadWorkerRetention keeps dead worker entries visible for forensics.
	DeadWorkerRetention = 10 * time.Minute

	// Quarantine: more than QuarantineFailures runtime failures within
	// QuarantineWindow excludes a worker from dispatch.
	QuarantineFailures = 3
	QuarantineWindow   = 10 * time.Minute
)

// Plan tiers in canonical priority order admin>pro>starter>free.
const (
	TierFree    = "free"
	TierStarter = "starter"
	TierPro     = "pro"
	TierAdmin   = "admin"
)

// AvgSeconds returns the tuned per-capability average execution time used
// for queue-time estimates.
func AvgSeconds(capability string) int {
	switch capability {
	case "image":
		return 20
	case "video":
		return 30
	case "text":
		return 5
	case "audio":
		return 10
	default:
		return 20
	}
}

// Cold-start adjustments for the time estimate: warm when an idle worker
// already reports the model loaded, cold otherwise.
const (
	WarmStartSeconds = 5
	ColdStartSeconds = 30
)

// BatchKey groups queued jobs that can execute together on one worker.
type BatchKey struct {
	Engine     string
	Model      string
	Resolution string
	Steps      int
	Precision  string
}

// BatchKeyOf derives the batch key from a job's params. Jobs whose params
// lack a model never batch: two such jobs can share an identical key, so the
// dispatcher sends a job whose key has an empty Model on its own.
func BatchKeyOf(params map[string]any) BatchKey {
	return BatchKey{
		Engine:     stringParam(params, "engine"),
		Model:      stringParam(params, "model"),
		Resolution: stringParam(params, "resolution"),
		Steps:      intParam(params, "steps"),
		Precision:  stringParam(params, "precision"),
	}
}

func (k BatchKey) String() string {
	return fmt.Sprintf("%s/%s/%s/%d/%s", k.Engine, k.Model, k.Resolution, k.Steps, k.Precision)
}

func stringParam(params map[string]any, key string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return ""
}

func intParam(params map[string]any, key string) int {
	switch v := params[key].(type) {
	case int:
		return v
	case float64:
		// JSON numbers decode as float64.
		return int(v)
	}
	return 0
}

// TimeoutOf reads params.timeout_seconds, clamped to [1s, MaxJobTimeout],
// defaulting to DefaultJobTimeout.
func TimeoutOf(params map[string]any) time.Duration {
	secs := intParam(params, "timeout_seconds")
	if secs <= 0 {
		return DefaultJobTimeout
	}
	d := time.Duration(secs) * time.Second
	if d > MaxJobTimeout {
		return MaxJobTimeout
	}
	return d
}

// ModelOf reads params.model.
func ModelOf(params map[string]any) string {
	return stringParam(params, "model")
}

// Day formats t as the UTC calendar-day key used by daily usage rows.
func Day(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
