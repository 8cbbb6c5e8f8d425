// Package worker holds the wire types and the outbound HTTP client for the
// GPU worker fleet.
package worker

import "fmt"

// Heartbeat is the payload workers POST to /api/internal/heartbeat every 30s.
type Heartbeat struct {
	WorkerID      string   `json:"worker_id"`
	URL           string   `json:"url"`
	Status        string   `json:"status"` // "idle" or "busy"
	Capabilities  []string `json:"capabilities"`
	LoadedModels  []string `json:"loaded_models"`
	GPUMemoryUsed int64    `json:"gpu_memory_used"`
	UptimeSeconds float64  `json:"uptime"`
	JobsCompleted int      `json:"jobs_completed"`
}

// RunJobRequest is the dispatch payload sent to {worker}/run_job. Batch
// dispatches carry the members alongside the lead job.
type RunJobRequest struct {
	JobID          string         `json:"job_id"`
	Engine         string         `json:"engine,omitempty"`
	WorkflowID     string         `json:"workflow_id,omitempty"`
	ModelID        string         `json:"model_id,omitempty"`
	Params         map[string]any `json:"params"`
	TimeoutSeconds int            `json:"timeout_seconds"`
	Batch          []BatchMember  `json:"batch,omitempty"`
}

// BatchMember is one co-dispatched job in a batch request.
type BatchMember struct {
	JobID  string         `json:"job_id"`
	Params map[string]any `json:"params"`
}

// ArtifactPayload is one output reported by a worker.
type ArtifactPayload struct {
	Type            string         `json:"type"`
	Format          string         `json:"format,omitempty"`
	Path            string         `json:"path,omitempty"`
	URL             string         `json:"url,omitempty"`
	Width           int            `json:"width,omitempty"`
	Height          int            `json:"height,omitempty"`
	DurationSeconds float64        `json:"duration_seconds,omitempty"`
	FileSizeBytes   int64          `json:"file_size_bytes,omitempty"`
	Metadata        map[string]any `json:"metadata,omitempty"`
}

// RunJobResponse is the worker's reply to a dispatch.
type RunJobResponse struct {
	Status               string            `json:"status"` // "completed" or "failed"
	JobID                string            `json:"job_id"`
	ExecutionTimeSeconds float64           `json:"execution_time_seconds"`
	Artifacts            []ArtifactPayload `json:"artifacts,omitempty"`
	Error                *RunJobError      `json:"error,omitempty"`
	// Per-member results for batch dispatches; members fail independently.
	Members []RunJobResponse `json:"members,omitempty"`
}

// RunJobError is the structured failure a worker reports.
type RunJobError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Capabilities is the reply to GET {worker}/capabilities.
type Capabilities struct {
	WorkerID     string   `json:"worker_id"`
	Capabilities []string `json:"capabilities"`
	LoadedModels []string `json:"loaded_models"`
	Engines      []string `json:"engines,omitempty"`
}

// APIError is a non-2xx reply from a worker endpoint.
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("worker API error (status %d): %s", e.StatusCode, e.Message)
}
