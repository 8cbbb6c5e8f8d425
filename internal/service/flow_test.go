package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	entjob "github.com/tesseralabs/tessera/internal/ent/job"
)

// End-to-end flow over real services with a fake worker transport:
// admission → dispatch → completion → usage debit.
func TestFlow_ImageJobLifecycle(t *testing.T) {
	client := openTestDB(t)
	ctx := context.Background()

	registry := NewRegistry(testLogger())
	fake := &fakeRunner{}
	addTestWorker(registry, fake, "w1", []string{"image"}, []string{"sdxl"})

	admission := NewAdmissionService(client, registry, NewUserLimiter(), NewParamsValidator(DefaultCatalog()), testLogger())
	completion := NewCompletionService(client, registry, &Notifier{}, testLogger())
	dispatcher := NewDispatcher(client, registry, completion, DefaultCatalog(), testLogger(), 10*time.Millisecond)

	ack, err := admission.Admit(ctx, imageRequest(), 0, "")
	if err != nil {
		t.Fatalf("admit: %v", err)
	}
	if !ack.CostTokens.Equal(decimal.NewFromInt(1)) {
		t.Fatalf("cost = %s, want 1.00", ack.CostTokens)
	}

	// Model is resident on an idle worker, so the estimate is warm.
	if ack.EstimatedTimeSeconds != 5 {
		t.Errorf("estimate = %d, want 5 (position 0, warm start)", ack.EstimatedTimeSeconds)
	}

	if !dispatcher.Tick(ctx) {
		t.Fatal("dispatcher did not pick up the job")
	}

	jobID := uuid.MustParse(ack.JobID)
	waitFor(t, "job completion", func() bool {
		j, err := client.Job.Get(ctx, jobID)
		return err == nil && j.Status == entjob.StatusCOMPLETED
	})

	j, _ := client.Job.Query().Where(entjob.IDEQ(jobID)).WithArtifacts().Only(ctx)
	if len(j.Edges.Artifacts) != 1 {
		t.Fatalf("artifacts = %d, want 1", len(j.Edges.Artifacts))
	}
	if j.CreatedAt.After(*j.QueuedAt) || j.QueuedAt.After(*j.StartedAt) || j.StartedAt.After(*j.EndedAt) {
		t.Errorf("timestamp ordering violated: %v %v %v %v", j.CreatedAt, j.QueuedAt, j.StartedAt, j.EndedAt)
	}

	owner, _ := j.QueryOwner().Only(ctx)
	usage := usageOf(t, client, owner.ID)
	if usage == nil || !usage.TokensUsed.Equal(decimal.NewFromInt(1)) {
		t.Fatalf("tokens_used = %v, want 1.00", usage)
	}
}

// A cold-start estimate applies when no idle worker has the model loaded.
func TestFlow_ColdStartEstimate(t *testing.T) {
	client := openTestDB(t)
	registry := NewRegistry(testLogger())
	admission := NewAdmissionService(client, registry, NewUserLimiter(), NewParamsValidator(DefaultCatalog()), testLogger())

	ack, err := admission.Admit(context.Background(), imageRequest(), 0, "")
	if err != nil {
		t.Fatalf("admit: %v", err)
	}
	if ack.EstimatedTimeSeconds != 30 {
		t.Errorf("estimate = %d, want 30 (position 0, cold start)", ack.EstimatedTimeSeconds)
	}
}
