package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tesseralabs/tessera/internal/domain"
	"github.com/tesseralabs/tessera/internal/ent"
	entjob "github.com/tesseralabs/tessera/internal/ent/job"
)

func newJobService(t *testing.T) (*JobService, *ent.Client, *Registry, *fakeRunner) {
	t.Helper()
	client := openTestDB(t)
	registry := NewRegistry(testLogger())
	fake := &fakeRunner{}
	svc := NewJobService(client, registry, &Notifier{}, testLogger())
	return svc, client, registry, fake
}

func TestCancel_QueuedJob(t *testing.T) {
	svc, client, _, _ := newJobService(t)
	ctx := context.Background()

	u := createTestUser(t, client, "telegram", "123", domain.TierFree)
	j := enqueueTestJob(t, client, u.ID, 0, "image", time.Now(), imageParamsFor("sdxl"))

	view, err := svc.Cancel(ctx, u.ID, j.ID)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if view.Status != "CANCELLED" {
		t.Errorf("status = %s, want CANCELLED", view.Status)
	}
	if view.EndedAt == nil {
		t.Error("ended_at not set")
	}
}

func TestCancel_RunningJobIssuesAbort(t *testing.T) {
	svc, client, registry, fake := newJobService(t)
	ctx := context.Background()

	addTestWorker(registry, fake, "w1", []string{"image"}, nil)
	u := createTestUser(t, client, "telegram", "123", domain.TierFree)
	j := enqueueTestJob(t, client, u.ID, 0, "image", time.Now(), imageParamsFor("sdxl"))
	j = runTestJob(t, client, j, "w1", time.Now())

	view, err := svc.Cancel(ctx, u.ID, j.ID)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if view.Status != "CANCELLED" {
		t.Errorf("status = %s, want CANCELLED", view.Status)
	}
	waitFor(t, "abort call", func() bool {
		fake.mu.Lock()
		defer fake.mu.Unlock()
		return len(fake.aborted) == 1 && fake.aborted[0] == j.ID.String()
	})
}

func TestCancel_TerminalIsNoop(t *testing.T) {
	svc, client, _, _ := newJobService(t)
	ctx := context.Background()

	u := createTestUser(t, client, "telegram", "123", domain.TierFree)
	j := enqueueTestJob(t, client, u.ID, 0, "image", time.Now(), imageParamsFor("sdxl"))
	ended := time.Now().Add(-time.Minute)
	j, _ = j.Update().SetStatus(entjob.StatusCOMPLETED).SetEndedAt(ended).Save(ctx)

	view, err := svc.Cancel(ctx, u.ID, j.ID)
	if err != nil {
		t.Fatalf("cancel terminal: %v", err)
	}
	if view.Status != "COMPLETED" {
		t.Errorf("status = %s, want COMPLETED unchanged", view.Status)
	}
}

func TestCancel_UnknownJob(t *testing.T) {
	svc, client, _, _ := newJobService(t)
	u := createTestUser(t, client, "telegram", "123", domain.TierFree)

	_, err := svc.Cancel(context.Background(), u.ID, uuid.New())
	wantCode(t, err, domain.CodeNotFound)
}

func TestGet_OtherUsersJobHidden(t *testing.T) {
	svc, client, _, _ := newJobService(t)
	ctx := context.Background()

	owner := createTestUser(t, client, "telegram", "123", domain.TierFree)
	other := createTestUser(t, client, "telegram", "456", domain.TierFree)
	j := enqueueTestJob(t, client, owner.ID, 0, "image", time.Now(), imageParamsFor("sdxl"))

	_, err := svc.Get(ctx, other.ID, j.ID)
	wantCode(t, err, domain.CodeNotFound)
}

func TestList_Filters(t *testing.T) {
	svc, client, _, _ := newJobService(t)
	ctx := context.Background()

	u := createTestUser(t, client, "telegram", "123", domain.TierFree)
	_, err := client.Job.Create().
		SetOwnerID(u.ID).
		SetFrontend("api").
		SetCapability("image").
		SetStatus(entjob.StatusQUEUED).
		SetPriority(0).
		SetParams(imageParamsFor("sdxl")).
		SetCostTokens(decimal.NewFromInt(1)).
		SetCreatedAt(time.Now().Add(-2 * time.Hour)).
		SetQueuedAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	if err != nil {
		t.Fatalf("create old job: %v", err)
	}
	enqueueTestJob(t, client, u.ID, 0, "image", time.Now(), imageParamsFor("sdxl"))

	all, err := svc.List(ctx, u.ID, ListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("all jobs = %d, want 2", len(all))
	}

	since := time.Now().Add(-time.Hour)
	recent, err := svc.List(ctx, u.ID, ListFilter{Since: &since})
	if err != nil {
		t.Fatalf("list since: %v", err)
	}
	if len(recent) != 1 {
		t.Errorf("recent jobs = %d, want 1", len(recent))
	}

	queued, err := svc.List(ctx, u.ID, ListFilter{Status: "QUEUED", Limit: 1})
	if err != nil {
		t.Fatalf("list queued: %v", err)
	}
	if len(queued) != 1 {
		t.Errorf("queued page = %d, want 1", len(queued))
	}
}
