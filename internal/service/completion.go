package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tesseralabs/tessera/internal/domain"
	"github.com/tesseralabs/tessera/internal/ent"
	entartifact "github.com/tesseralabs/tessera/internal/ent/artifact"
	entjob "github.com/tesseralabs/tessera/internal/ent/job"
	"github.com/tesseralabs/tessera/internal/worker"
)

// CompletionService processes worker replies and dispatch failures: it
// writes artifacts, debits usage, applies terminal or requeue transitions,
// and publishes completion events. All transitions are CAS on status, so a
// cancel that interleaves a completion wins or loses atomically and the
// loser is a no-op.
type CompletionService struct {
	db       *ent.Client
	registry *Registry
	notifier *Notifier
	logger   *slog.Logger
}

// NewCompletionService creates a CompletionService.
func NewCompletionService(db *ent.Client, registry *Registry, notifier *Notifier, logger *slog.Logger) *CompletionService {
	return &CompletionService{db: db, registry: registry, notifier: notifier, logger: logger}
}

// HandleResponse resolves a dispatch for every member job. transportErr is
// the dispatch exception, if any; it counts as WORKER_ERROR with retry.
func (s *CompletionService) HandleResponse(ctx context.Context, workerID string, jobs []*ent.Job, resp *worker.RunJobResponse, transportErr error) {
	if transportErr != nil {
		s.registry.RecordFailure(workerID)
		for _, j := range jobs {
			s.failJob(ctx, j.ID, domain.CodeWorkerError, fmt.Sprintf("dispatch failed: %v", transportErr))
		}
		return
	}

	// Batch dispatches report per-member results; members fail
	// independently. A member the worker did not report counts as failed.
	if len(resp.Members) > 0 {
		byID := make(map[string]*worker.RunJobResponse, len(resp.Members))
		for i := range resp.Members {
			byID[resp.Members[i].JobID] = &resp.Members[i]
		}
		for _, j := range jobs {
			member, ok := byID[j.ID.String()]
			if !ok {
				s.failJob(ctx, j.ID, domain.CodeWorkerError, "no result for batch member")
				continue
			}
			s.resolveOne(ctx, workerID, j.ID, member)
		}
		return
	}

	for _, j := range jobs {
		s.resolveOne(ctx, workerID, j.ID, resp)
	}
}

func (s *CompletionService) resolveOne(ctx context.Context, workerID string, jobID uuid.UUID, resp *worker.RunJobResponse) {
	if resp.Status == "completed" {
		s.completeJob(ctx, jobID, resp.ExecutionTimeSeconds, resp.Artifacts)
		return
	}
	code := domain.CodeWorkerError
	message := "worker reported failure"
	if resp.Error != nil {
		if resp.Error.Code != "" {
			code = domain.Code(resp.Error.Code)
		}
		if resp.Error.Message != "" {
			message = resp.Error.Message
		}
	}
	s.registry.RecordFailure(workerID)
	s.failJob(ctx, jobID, code, message)
}

// completeJob applies RUNNING→COMPLETED: artifacts, usage debit, and the
// completion event, all but the event inside one transaction.
func (s *CompletionService) completeJob(ctx context.Context, jobID uuid.UUID, execSeconds float64, artifacts []worker.ArtifactPayload) {
	var won bool
	err := withStorageRetry(ctx, s.logger, "complete job", func() error {
		var err error
		won, err = s.completeOnce(ctx, jobID, execSeconds, artifacts)
		return err
	})
	if err != nil {
		s.logger.Error("complete job", "job_id", jobID, "error", err)
		return
	}
	if !won {
		s.logger.Info("completion discarded, job no longer running", "job_id", jobID)
		return
	}

	view, err := s.view(ctx, jobID)
	if err != nil {
		s.logger.Error("load completed job", "job_id", jobID, "error", err)
		return
	}
	s.logger.Info("job completed",
		"job_id", jobID, "execution_seconds", execSeconds, "artifacts", len(artifacts))
	s.notifier.Terminal(view, "job.completed")
}

func (s *CompletionService) completeOnce(ctx context.Context, jobID uuid.UUID, execSeconds float64, artifacts []worker.ArtifactPayload) (bool, error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	client := tx.Client()

	now := time.Now().UTC()
	n, err := client.Job.Update().
		Where(entjob.IDEQ(jobID), entjob.StatusEQ(entjob.StatusRUNNING)).
		SetStatus(entjob.StatusCOMPLETED).
		SetEndedAt(now).
		SetExecutionTimeSeconds(execSeconds).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("transition to completed: %w", err)
	}
	if n == 0 {
		// Lost the CAS: cancelled or reaped while the reply was in flight.
		return false, nil
	}

	j, err := client.Job.Get(ctx, jobID)
	if err != nil {
		return false, fmt.Errorf("load job: %w", err)
	}
	ownerID, err := j.QueryOwner().OnlyID(ctx)
	if err != nil {
		return false, fmt.Errorf("load owner: %w", err)
	}

	for _, a := range artifacts {
		typ := a.Type
		if typ == "" {
			typ = string(j.Capability)
		}
		create := client.Artifact.Create().
			SetJob(j).
			SetType(entartifact.Type(typ)).
			SetFormat(a.Format)
		if a.Path != "" {
			create.SetLocalPath(a.Path)
		}
		if a.URL != "" {
			create.SetPublicURL(a.URL)
		}
		if a.Width > 0 {
			create.SetWidth(a.Width)
		}
		if a.Height > 0 {
			create.SetHeight(a.Height)
		}
		if a.DurationSeconds > 0 {
			create.SetDurationSeconds(a.DurationSeconds)
		}
		if a.FileSizeBytes > 0 {
			create.SetFileSizeBytes(a.FileSizeBytes)
		}
		if a.Metadata != nil {
			create.SetMetadata(a.Metadata)
		}
		if _, err := create.Save(ctx); err != nil {
			return false, fmt.Errorf("save artifact: %w", err)
		}
	}

	// Tokens are debited exactly once, here, on COMPLETED.
	if err := addCompletedUsage(ctx, client, ownerID, domain.Day(now), string(j.Capability), j.CostTokens); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit completion: %w", err)
	}
	committed = true
	return true, nil
}

// failJob applies the failure path: requeue when the code is retryable and
// retries remain, otherwise RUNNING→FAILED with the structured error.
func (s *CompletionService) failJob(ctx context.Context, jobID uuid.UUID, code domain.Code, message string) {
	var outcome string
	err := withStorageRetry(ctx, s.logger, "fail job", func() error {
		var err error
		outcome, err = s.failOnce(ctx, jobID, code, message)
		return err
	})
	if err != nil {
		s.logger.Error("fail job", "job_id", jobID, "code", code, "error", err)
		return
	}

	switch outcome {
	case "requeued":
		s.logger.Info("job requeued", "job_id", jobID, "code", code)
	case "failed":
		s.logger.Warn("job failed", "job_id", jobID, "code", code, "message", message)
		view, err := s.view(ctx, jobID)
		if err != nil {
			s.logger.Error("load failed job", "job_id", jobID, "error", err)
			return
		}
		s.notifier.Terminal(view, "job.failed")
	default:
		s.logger.Info("failure discarded, job no longer running", "job_id", jobID)
	}
}

func (s *CompletionService) failOnce(ctx context.Context, jobID uuid.UUID, code domain.Code, message string) (string, error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	client := tx.Client()

	j, err := client.Job.Get(ctx, jobID)
	if err != nil {
		return "", fmt.Errorf("load job: %w", err)
	}
	if j.Status != entjob.StatusRUNNING {
		return "discarded", nil
	}

	now := time.Now().UTC()

	if code.Retryable() && j.RetryCount < domain.MaxRetries {
		n, err := client.Job.Update().
			Where(entjob.IDEQ(jobID), entjob.StatusEQ(entjob.StatusRUNNING)).
			SetStatus(entjob.StatusQUEUED).
			AddRetryCount(1).
			ClearWorkerID().
			ClearStartedAt().
			SetQueuedAt(now).
			Save(ctx)
		if err != nil {
			return "", fmt.Errorf("requeue job: %w", err)
		}
		if n == 0 {
			return "discarded", nil
		}
		if err := tx.Commit(); err != nil {
			return "", fmt.Errorf("commit requeue: %w", err)
		}
		committed = true
		return "requeued", nil
	}

	n, err := client.Job.Update().
		Where(entjob.IDEQ(jobID), entjob.StatusEQ(entjob.StatusRUNNING)).
		SetStatus(entjob.StatusFAILED).
		SetEndedAt(now).
		SetError(map[string]any{
			"code":      string(code),
			"message":   message,
			"timestamp": now.Format(time.RFC3339),
		}).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("transition to failed: %w", err)
	}
	if n == 0 {
		return "discarded", nil
	}

	ownerID, err := j.QueryOwner().OnlyID(ctx)
	if err != nil {
		return "", fmt.Errorf("load owner: %w", err)
	}
	if err := addFailedUsage(ctx, client, ownerID, domain.Day(now)); err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit failure: %w", err)
	}
	committed = true
	return "failed", nil
}

// FailJob is the exported failure path used by the reaper.
func (s *CompletionService) FailJob(ctx context.Context, jobID uuid.UUID, code domain.Code, message string) {
	s.failJob(ctx, jobID, code, message)
}

func (s *CompletionService) view(ctx context.Context, jobID uuid.UUID) (*JobView, error) {
	j, err := s.db.Job.Query().
		Where(entjob.IDEQ(jobID)).
		WithArtifacts().
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("query job: %w", err)
	}
	return jobView(j), nil
}
