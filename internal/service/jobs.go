package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tesseralabs/tessera/internal/domain"
	"github.com/tesseralabs/tessera/internal/ent"
	entartifact "github.com/tesseralabs/tessera/internal/ent/artifact"
	entjob "github.com/tesseralabs/tessera/internal/ent/job"
	entuser "github.com/tesseralabs/tessera/internal/ent/user"
)

// ArtifactView is the API representation of an artifact.
type ArtifactView struct {
	ID              string         `json:"id"`
	Type            string         `json:"type"`
	Format          string         `json:"format,omitempty"`
	URL             string         `json:"url,omitempty"`
	Width           int            `json:"width,omitempty"`
	Height          int            `json:"height,omitempty"`
	DurationSeconds float64        `json:"duration_seconds,omitempty"`
	FileSizeBytes   int64          `json:"file_size_bytes,omitempty"`
	Metadata        map[string]any `json:"metadata,omitempty"`
	ExpiresAt       *time.Time     `json:"expires_at,omitempty"`
}

// JobErrorView is the structured error on a failed job.
type JobErrorView struct {
	Code           string         `json:"code"`
	Message        string         `json:"message"`
	Details        map[string]any `json:"details,omitempty"`
	RetryAvailable bool           `json:"retry_available"`
}

// JobView is the API representation of a job.
type JobView struct {
	JobID                string          `json:"job_id"`
	Status               string          `json:"status"`
	Frontend             string          `json:"frontend"`
	Capability           string          `json:"capability"`
	Priority             int             `json:"priority"`
	Params               map[string]any  `json:"params"`
	WorkflowID           string          `json:"workflow_id,omitempty"`
	CostTokens           decimal.Decimal `json:"cost_tokens"`
	WorkerID             string          `json:"worker_id,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
	QueuedAt             *time.Time      `json:"queued_at,omitempty"`
	StartedAt            *time.Time      `json:"started_at,omitempty"`
	EndedAt              *time.Time      `json:"ended_at,omitempty"`
	ExecutionTimeSeconds float64         `json:"execution_time_seconds,omitempty"`
	Artifacts            []ArtifactView  `json:"artifacts,omitempty"`
	Error                *JobErrorView   `json:"error,omitempty"`
	Metadata             map[string]any  `json:"metadata"`
}

// ListFilter narrows GET /api/v1/jobs.
type ListFilter struct {
	Status     string
	Capability string
	Limit      int
	Offset     int
	Since      *time.Time
}

// JobService serves job status, listing, and cancellation.
type JobService struct {
	db       *ent.Client
	registry *Registry
	notifier *Notifier
	logger   *slog.Logger
}

// NewJobService creates a JobService.
func NewJobService(db *ent.Client, registry *Registry, notifier *Notifier, logger *slog.Logger) *JobService {
	return &JobService{db: db, registry: registry, notifier: notifier, logger: logger}
}

// Get returns one of the user's jobs with artifacts when terminal.
func (s *JobService) Get(ctx context.Context, userID int, jobID uuid.UUID) (*JobView, error) {
	j, err := s.db.Job.Query().
		Where(entjob.IDEQ(jobID), entjob.HasOwnerWith(entuser.IDEQ(userID))).
		WithArtifacts(func(q *ent.ArtifactQuery) {
			q.Order(ent.Asc(entartifact.FieldCreatedAt))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.Errorf(domain.CodeNotFound, "job %s not found", jobID)
		}
		return nil, fmt.Errorf("query job: %w", err)
	}
	return jobView(j), nil
}

// List returns the user's jobs, newest first.
func (s *JobService) List(ctx context.Context, userID int, f ListFilter) ([]*JobView, error) {
	q := s.db.Job.Query().
		Where(entjob.HasOwnerWith(entuser.IDEQ(userID)))
	if f.Status != "" {
		q = q.Where(entjob.StatusEQ(entjob.Status(f.Status)))
	}
	if f.Capability != "" {
		q = q.Where(entjob.CapabilityEQ(entjob.Capability(f.Capability)))
	}
	if f.Since != nil {
		q = q.Where(entjob.CreatedAtGTE(*f.Since))
	}
	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	jobs, err := q.
		WithArtifacts().
		Order(ent.Desc(entjob.FieldCreatedAt)).
		Limit(limit).
		Offset(f.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	out := make([]*JobView, len(jobs))
	for i, j := range jobs {
		out[i] = jobView(j)
	}
	return out, nil
}

// Cancel cancels a job in any non-terminal state. Cancelling an
// already-terminal job is a no-op that returns the existing state. A
// RUNNING job gets a best-effort abort; the authoritative record is
// cancelled regardless, and the worker's eventual reply is discarded.
func (s *JobService) Cancel(ctx context.Context, userID int, jobID uuid.UUID) (*JobView, error) {
	for {
		j, err := s.db.Job.Query().
			Where(entjob.IDEQ(jobID), entjob.HasOwnerWith(entuser.IDEQ(userID))).
			WithArtifacts().
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, domain.Errorf(domain.CodeNotFound, "job %s not found", jobID)
			}
			return nil, fmt.Errorf("query job: %w", err)
		}

		switch j.Status {
		case entjob.StatusCOMPLETED, entjob.StatusFAILED, entjob.StatusCANCELLED:
			return jobView(j), nil
		}

		now := time.Now().UTC()
		n, err := s.db.Job.Update().
			Where(entjob.IDEQ(jobID), entjob.StatusEQ(j.Status)).
			SetStatus(entjob.StatusCANCELLED).
			SetEndedAt(now).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("cancel job: %w", err)
		}
		if n == 0 {
			// Lost the CAS to a dispatch, completion, or another cancel;
			// re-read and resolve from the new state.
			continue
		}

		if j.Status == entjob.StatusRUNNING && j.WorkerID != "" {
			s.abortOnWorker(j.WorkerID, jobID)
		}
		s.logger.Info("job cancelled", "job_id", jobID, "was", j.Status)

		cancelled, err := s.Get(ctx, userID, jobID)
		if err != nil {
			return nil, err
		}
		s.notifier.Terminal(cancelled, "job.cancelled")
		return cancelled, nil
	}
}

// abortOnWorker fires the best-effort abort without blocking the cancel.
func (s *JobService) abortOnWorker(workerID string, jobID uuid.UUID) {
	runner := s.registry.Runner(workerID)
	if runner == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := runner.Abort(ctx, jobID.String()); err != nil {
			s.logger.Warn("abort failed", "job_id", jobID, "worker_id", workerID, "error", err)
		}
	}()
}

// jobView maps an ent job (with loaded artifacts) to its API shape.
func jobView(j *ent.Job) *JobView {
	v := &JobView{
		JobID:                j.ID.String(),
		Status:               string(j.Status),
		Frontend:             string(j.Frontend),
		Capability:           string(j.Capability),
		Priority:             j.Priority,
		Params:               j.Params,
		WorkflowID:           j.WorkflowID,
		CostTokens:           j.CostTokens,
		WorkerID:             j.WorkerID,
		CreatedAt:            j.CreatedAt,
		QueuedAt:             j.QueuedAt,
		StartedAt:            j.StartedAt,
		EndedAt:              j.EndedAt,
		ExecutionTimeSeconds: j.ExecutionTimeSeconds,
		Metadata: map[string]any{
			"retry_count": j.RetryCount,
		},
	}
	if j.ReplyContext != nil {
		v.Metadata["reply_context"] = j.ReplyContext
	}
	if j.WebhookURL != "" {
		v.Metadata["webhook_url"] = j.WebhookURL
	}
	if j.BotID != "" {
		v.Metadata["bot_id"] = j.BotID
	}

	// Artifacts are publicly visible only on COMPLETED jobs.
	if j.Status == entjob.StatusCOMPLETED {
		ids := make([]string, 0, len(j.Edges.Artifacts))
		for _, a := range j.Edges.Artifacts {
			v.Artifacts = append(v.Artifacts, artifactView(a))
			ids = append(ids, a.ID.String())
		}
		v.Metadata["artifact_ids"] = ids
	}

	if j.Error != nil {
		code, _ := j.Error["code"].(string)
		message, _ := j.Error["message"].(string)
		details, _ := j.Error["details"].(map[string]any)
		v.Error = &JobErrorView{
			Code:           code,
			Message:        message,
			Details:        details,
			RetryAvailable: domain.Code(code).Retryable() && j.RetryCount < domain.MaxRetries,
		}
	}
	return v
}

func artifactView(a *ent.Artifact) ArtifactView {
	return ArtifactView{
		ID:              a.ID.String(),
		Type:            string(a.Type),
		Format:          a.Format,
		URL:             a.PublicURL,
		Width:           a.Width,
		Height:          a.Height,
		DurationSeconds: a.DurationSeconds,
		FileSizeBytes:   a.FileSizeBytes,
		Metadata:        a.Metadata,
		ExpiresAt:       a.ExpiresAt,
	}
}
