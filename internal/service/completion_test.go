package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tesseralabs/tessera/internal/domain"
	"github.com/tesseralabs/tessera/internal/ent"
	entdailyusage "github.com/tesseralabs/tessera/internal/ent/dailyusage"
	entjob "github.com/tesseralabs/tessera/internal/ent/job"
	entuser "github.com/tesseralabs/tessera/internal/ent/user"
	"github.com/tesseralabs/tessera/internal/worker"
)

func newCompletion(t *testing.T) (*CompletionService, *ent.Client, *Registry) {
	t.Helper()
	client := openTestDB(t)
	registry := NewRegistry(testLogger())
	svc := NewCompletionService(client, registry, &Notifier{}, testLogger())
	return svc, client, registry
}

func usageOf(t *testing.T, client *ent.Client, userID int) *ent.DailyUsage {
	t.Helper()
	row, err := client.DailyUsage.Query().
		Where(entdailyusage.HasOwnerWith(entuser.IDEQ(userID))).
		Only(context.Background())
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		t.Fatalf("query usage: %v", err)
	}
	return row
}

func TestCompletion_SuccessDebitsExactlyOnce(t *testing.T) {
	svc, client, _ := newCompletion(t)
	ctx := context.Background()

	u := createTestUser(t, client, "telegram", "123", domain.TierFree)
	j := enqueueTestJob(t, client, u.ID, 0, "image", time.Now(), imageParamsFor("sdxl"))
	j = runTestJob(t, client, j, "w1", time.Now())

	resp := &worker.RunJobResponse{
		Status:               "completed",
		JobID:                j.ID.String(),
		ExecutionTimeSeconds: 12.5,
		Artifacts:            []worker.ArtifactPayload{{Type: "image", Format: "png", Path: "/o/1.png"}},
	}
	svc.HandleResponse(ctx, "w1", []*ent.Job{j}, resp, nil)

	got, _ := client.Job.Get(ctx, j.ID)
	if got.Status != entjob.StatusCOMPLETED {
		t.Fatalf("status = %s, want COMPLETED", got.Status)
	}
	if got.EndedAt == nil || got.StartedAt == nil || got.EndedAt.Before(*got.StartedAt) {
		t.Errorf("ended_at %v must be set and >= started_at %v", got.EndedAt, got.StartedAt)
	}
	if got.ExecutionTimeSeconds != 12.5 {
		t.Errorf("execution_time = %v, want 12.5", got.ExecutionTimeSeconds)
	}

	arts, _ := got.QueryArtifacts().All(ctx)
	if len(arts) != 1 {
		t.Fatalf("artifacts = %d, want 1", len(arts))
	}
	if arts[0].LocalPath != "/o/1.png" {
		t.Errorf("artifact path = %q", arts[0].LocalPath)
	}

	usage := usageOf(t, client, u.ID)
	if usage == nil {
		t.Fatal("usage row not created")
	}
	if !usage.TokensUsed.Equal(decimal.NewFromInt(1)) {
		t.Errorf("tokens_used = %s, want 1.00", usage.TokensUsed)
	}
	if !usage.TokensImage.Equal(decimal.NewFromInt(1)) {
		t.Errorf("tokens_image = %s, want 1.00", usage.TokensImage)
	}
	if usage.JobsCompleted != 1 {
		t.Errorf("jobs_completed = %d, want 1", usage.JobsCompleted)
	}

	// A duplicate delivery of the same reply must not debit again.
	svc.HandleResponse(ctx, "w1", []*ent.Job{j}, resp, nil)
	usage = usageOf(t, client, u.ID)
	if !usage.TokensUsed.Equal(decimal.NewFromInt(1)) {
		t.Errorf("tokens_used after duplicate = %s, want 1.00", usage.TokensUsed)
	}
}

func TestCompletion_RetryableFailureRequeues(t *testing.T) {
	svc, client, _ := newCompletion(t)
	ctx := context.Background()

	u := createTestUser(t, client, "telegram", "123", domain.TierFree)
	j := enqueueTestJob(t, client, u.ID, 0, "image", time.Now(), imageParamsFor("sdxl"))
	j = runTestJob(t, client, j, "w1", time.Now())

	resp := &worker.RunJobResponse{
		Status: "failed",
		JobID:  j.ID.String(),
		Error:  &worker.RunJobError{Code: "TIMEOUT", Message: "generation timed out"},
	}
	svc.HandleResponse(ctx, "w1", []*ent.Job{j}, resp, nil)

	got, _ := client.Job.Get(ctx, j.ID)
	if got.Status != entjob.StatusQUEUED {
		t.Fatalf("status = %s, want QUEUED (retry)", got.Status)
	}
	if got.RetryCount != 1 {
		t.Errorf("retry_count = %d, want 1", got.RetryCount)
	}
	if got.WorkerID != "" {
		t.Errorf("worker_id = %q, want cleared", got.WorkerID)
	}
	if got.StartedAt != nil {
		t.Errorf("started_at = %v, want cleared", got.StartedAt)
	}
}

func TestCompletion_RetriesExhaustedFails(t *testing.T) {
	svc, client, _ := newCompletion(t)
	ctx := context.Background()

	u := createTestUser(t, client, "telegram", "123", domain.TierFree)
	j := enqueueTestJob(t, client, u.ID, 0, "image", time.Now(), imageParamsFor("sdxl"))
	j = runTestJob(t, client, j, "w1", time.Now())
	j, _ = j.Update().SetRetryCount(domain.MaxRetries).Save(ctx)

	svc.FailJob(ctx, j.ID, domain.CodeWorkerError, "worker w1 declared dead")

	got, _ := client.Job.Get(ctx, j.ID)
	if got.Status != entjob.StatusFAILED {
		t.Fatalf("status = %s, want FAILED", got.Status)
	}
	if code := got.Error["code"]; code != "WORKER_ERROR" {
		t.Errorf("error code = %v, want WORKER_ERROR", code)
	}

	usage := usageOf(t, client, u.ID)
	if usage == nil {
		t.Fatal("usage row not created")
	}
	if !usage.TokensUsed.IsZero() {
		t.Errorf("tokens_used = %s, failed jobs must not be charged", usage.TokensUsed)
	}
	if usage.JobsFailed != 1 {
		t.Errorf("jobs_failed = %d, want 1", usage.JobsFailed)
	}
}

func TestCompletion_NonRetryableCodeFailsImmediately(t *testing.T) {
	svc, client, _ := newCompletion(t)
	ctx := context.Background()

	u := createTestUser(t, client, "telegram", "123", domain.TierFree)
	j := enqueueTestJob(t, client, u.ID, 0, "image", time.Now(), imageParamsFor("sdxl"))
	j = runTestJob(t, client, j, "w1", time.Now())

	resp := &worker.RunJobResponse{
		Status: "failed",
		JobID:  j.ID.String(),
		Error:  &worker.RunJobError{Code: "OOM", Message: "CUDA out of memory"},
	}
	svc.HandleResponse(ctx, "w1", []*ent.Job{j}, resp, nil)

	got, _ := client.Job.Get(ctx, j.ID)
	if got.Status != entjob.StatusFAILED {
		t.Fatalf("status = %s, want FAILED (OOM is not retryable)", got.Status)
	}
}

func TestCompletion_DispatchErrorRetries(t *testing.T) {
	svc, client, _ := newCompletion(t)
	ctx := context.Background()

	u := createTestUser(t, client, "telegram", "123", domain.TierFree)
	j := enqueueTestJob(t, client, u.ID, 0, "image", time.Now(), imageParamsFor("sdxl"))
	j = runTestJob(t, client, j, "w1", time.Now())

	svc.HandleResponse(ctx, "w1", []*ent.Job{j}, nil, errors.New("connection refused"))

	got, _ := client.Job.Get(ctx, j.ID)
	if got.Status != entjob.StatusQUEUED {
		t.Fatalf("status = %s, want QUEUED (network errors retry)", got.Status)
	}
}

func TestCompletion_CancelledReplyDiscarded(t *testing.T) {
	svc, client, _ := newCompletion(t)
	ctx := context.Background()

	u := createTestUser(t, client, "telegram", "123", domain.TierFree)
	j := enqueueTestJob(t, client, u.ID, 0, "image", time.Now(), imageParamsFor("sdxl"))
	j = runTestJob(t, client, j, "w1", time.Now())
	j, _ = j.Update().SetStatus(entjob.StatusCANCELLED).SetEndedAt(time.Now()).Save(ctx)

	resp := &worker.RunJobResponse{
		Status:    "completed",
		JobID:     j.ID.String(),
		Artifacts: []worker.ArtifactPayload{{Type: "image", Path: "/o/late.png"}},
	}
	svc.HandleResponse(ctx, "w1", []*ent.Job{j}, resp, nil)

	got, _ := client.Job.Get(ctx, j.ID)
	if got.Status != entjob.StatusCANCELLED {
		t.Fatalf("status = %s, want CANCELLED (late reply discarded)", got.Status)
	}
	if usage := usageOf(t, client, u.ID); usage != nil && !usage.TokensUsed.IsZero() {
		t.Errorf("tokens_used = %s, cancelled job must not be charged", usage.TokensUsed)
	}
}

func TestCompletion_BatchMembersFailIndependently(t *testing.T) {
	svc, client, _ := newCompletion(t)
	ctx := context.Background()

	u := createTestUser(t, client, "telegram", "123", domain.TierPro)
	j1 := enqueueTestJob(t, client, u.ID, 2, "image", time.Now(), imageParamsFor("sdxl"))
	j2 := enqueueTestJob(t, client, u.ID, 2, "image", time.Now(), imageParamsFor("sdxl"))
	j1 = runTestJob(t, client, j1, "w1", time.Now())
	j2 = runTestJob(t, client, j2, "w1", time.Now())

	resp := &worker.RunJobResponse{
		Status: "completed",
		JobID:  j1.ID.String(),
		Members: []worker.RunJobResponse{
			{Status: "completed", JobID: j1.ID.String(), Artifacts: []worker.ArtifactPayload{{Type: "image", Path: "/o/1.png"}}},
			{Status: "failed", JobID: j2.ID.String(), Error: &worker.RunJobError{Code: "OOM", Message: "out of memory"}},
		},
	}
	svc.HandleResponse(ctx, "w1", []*ent.Job{j1, j2}, resp, nil)

	if got := jobStatus(t, client, j1); got != entjob.StatusCOMPLETED {
		t.Errorf("member 1 status = %s, want COMPLETED", got)
	}
	if got := jobStatus(t, client, j2); got != entjob.StatusFAILED {
		t.Errorf("member 2 status = %s, want FAILED", got)
	}
}
