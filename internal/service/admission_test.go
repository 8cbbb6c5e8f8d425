package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/tesseralabs/tessera/internal/domain"
	"github.com/tesseralabs/tessera/internal/ent"
	entjob "github.com/tesseralabs/tessera/internal/ent/job"
)

func newAdmission(t *testing.T) (*AdmissionService, *ent.Client, *Registry) {
	t.Helper()
	client := openTestDB(t)
	registry := NewRegistry(testLogger())
	svc := NewAdmissionService(client, registry, NewUserLimiter(), NewParamsValidator(DefaultCatalog()), testLogger())
	return svc, client, registry
}

func imageRequest() *JobRequest {
	return &JobRequest{
		Frontend:   "telegram",
		Capability: "image",
		UserRef:    "telegram:123",
		Params:     imageParamsFor("sdxl"),
	}
}

func wantCode(t *testing.T, err error, code domain.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s, got nil", code)
	}
	var de *domain.Error
	if !errors.As(err, &de) {
		t.Fatalf("expected domain error %s, got %v", code, err)
	}
	if de.Code != code {
		t.Fatalf("got code %s, want %s (%v)", de.Code, code, err)
	}
}

func TestAdmit_HappyPathImage(t *testing.T) {
	svc, client, _ := newAdmission(t)
	ctx := context.Background()

	ack, err := svc.Admit(ctx, imageRequest(), 0, "203.0.113.7")
	if err != nil {
		t.Fatalf("admit: %v", err)
	}
	if ack.Status != "QUEUED" {
		t.Errorf("status = %s, want QUEUED", ack.Status)
	}
	if !ack.CostTokens.Equal(decimal.NewFromInt(1)) {
		t.Errorf("cost_tokens = %s, want 1.00", ack.CostTokens)
	}
	if ack.QueuePosition != 0 {
		t.Errorf("queue_position = %d, want 0", ack.QueuePosition)
	}

	j, err := client.Job.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query job: %v", err)
	}
	if j.Status != entjob.StatusQUEUED {
		t.Errorf("stored status = %s, want QUEUED", j.Status)
	}
	if j.Priority != 0 {
		t.Errorf("priority = %d, want 0 (free tier snapshot)", j.Priority)
	}
	if j.QueuedAt == nil || j.QueuedAt.Before(j.CreatedAt) {
		t.Errorf("queued_at %v must be set and >= created_at %v", j.QueuedAt, j.CreatedAt)
	}

	// First contact created the user with the free plan.
	u, err := j.QueryOwner().Only(ctx)
	if err != nil {
		t.Fatalf("query owner: %v", err)
	}
	plan, _ := u.QueryPlan().Only(ctx)
	if plan.Tier != domain.TierFree {
		t.Errorf("plan = %s, want free", plan.Tier)
	}
}

func TestAdmit_StatusRoundTrip(t *testing.T) {
	svc, client, registry := newAdmission(t)
	ctx := context.Background()

	ack, err := svc.Admit(ctx, imageRequest(), 0, "")
	if err != nil {
		t.Fatalf("admit: %v", err)
	}

	u, err := client.User.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query user: %v", err)
	}
	jobs := NewJobService(client, registry, &Notifier{}, testLogger())
	j, err := client.Job.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query job: %v", err)
	}
	view, err := jobs.Get(ctx, u.ID, j.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if view.JobID != ack.JobID {
		t.Errorf("job_id = %s, want %s", view.JobID, ack.JobID)
	}
	if !view.CostTokens.Equal(ack.CostTokens) {
		t.Errorf("cost_tokens = %s, want %s", view.CostTokens, ack.CostTokens)
	}
}

func TestAdmit_QuotaExceeded(t *testing.T) {
	svc, client, _ := newAdmission(t)
	ctx := context.Background()

	u := createTestUser(t, client, "telegram", "123", domain.TierFree)
	setUsage(t, client, u.ID, decimal.NewFromInt(20))

	_, err := svc.Admit(ctx, imageRequest(), 0, "")
	wantCode(t, err, domain.CodeQuotaExceeded)

	// The transaction rolled back: no job row inserted.
	n, _ := client.Job.Query().Count(ctx)
	if n != 0 {
		t.Errorf("job rows = %d, want 0", n)
	}
}

func TestAdmit_QuotaBoundary(t *testing.T) {
	svc, client, _ := newAdmission(t)
	ctx := context.Background()

	// 19.00 used; a 1.00 job lands exactly on the 20-token free limit.
	u := createTestUser(t, client, "telegram", "123", domain.TierFree)
	setUsage(t, client, u.ID, decimal.NewFromInt(19))

	if _, err := svc.Admit(ctx, imageRequest(), 0, ""); err != nil {
		t.Fatalf("admit at boundary: %v", err)
	}
}

func TestAdmit_ConcurrencyLimit(t *testing.T) {
	svc, _, _ := newAdmission(t)
	ctx := context.Background()

	// free allows 1 concurrent job
	if _, err := svc.Admit(ctx, imageRequest(), 0, ""); err != nil {
		t.Fatalf("first admit: %v", err)
	}
	_, err := svc.Admit(ctx, imageRequest(), 0, "")
	wantCode(t, err, domain.CodeRateLimited)
}

func TestAdmit_ResolutionBoundary(t *testing.T) {
	svc, _, _ := newAdmission(t)
	ctx := context.Background()

	req := imageRequest()
	req.Params["resolution"] = "1025x1024"
	_, err := svc.Admit(ctx, req, 0, "")
	wantCode(t, err, domain.CodeInvalidParams)
}

func TestAdmit_ModelNotFound(t *testing.T) {
	svc, _, _ := newAdmission(t)
	ctx := context.Background()

	req := imageRequest()
	req.Params["model"] = "no-such-model"
	_, err := svc.Admit(ctx, req, 0, "")
	wantCode(t, err, domain.CodeModelNotFound)
}

func TestAdmit_ModelNotOnPlan(t *testing.T) {
	svc, _, _ := newAdmission(t)
	ctx := context.Background()

	// flux-schnell exists but the free tier does not allow it.
	req := imageRequest()
	req.Params["model"] = "flux-schnell"
	_, err := svc.Admit(ctx, req, 0, "")
	wantCode(t, err, domain.CodeInvalidParams)
}

func TestAdmit_BlankPrompt(t *testing.T) {
	svc, _, _ := newAdmission(t)
	ctx := context.Background()

	req := imageRequest()
	req.Params["prompt"] = "   "
	_, err := svc.Admit(ctx, req, 0, "")
	wantCode(t, err, domain.CodeInvalidPrompt)
}

func TestAdmit_QueuePositionByPriority(t *testing.T) {
	svc, client, _ := newAdmission(t)
	ctx := context.Background()

	// Two free users fill the queue in order.
	freeReq := imageRequest()
	if _, err := svc.Admit(ctx, freeReq, 0, ""); err != nil {
		t.Fatalf("admit first: %v", err)
	}
	second := imageRequest()
	second.UserRef = "telegram:456"
	ack2, err := svc.Admit(ctx, second, 0, "")
	if err != nil {
		t.Fatalf("admit second: %v", err)
	}
	if ack2.QueuePosition != 1 {
		t.Errorf("second free job position = %d, want 1", ack2.QueuePosition)
	}

	// A pro user jumps the line.
	createTestUser(t, client, "discord", "999", domain.TierPro)
	proReq := imageRequest()
	proReq.Frontend = "discord"
	proReq.UserRef = "discord:999"
	ackPro, err := svc.Admit(ctx, proReq, 0, "")
	if err != nil {
		t.Fatalf("admit pro: %v", err)
	}
	if ackPro.QueuePosition != 0 {
		t.Errorf("pro job position = %d, want 0", ackPro.QueuePosition)
	}
}

func TestAdmit_PerUserRateLimit(t *testing.T) {
	svc, client, _ := newAdmission(t)
	ctx := context.Background()

	// admin tier: 16 concurrent, 600 rpm; throttle down the limiter window
	// by pre-filling it instead of sending 600 requests.
	u := createTestUser(t, client, "web", "admin-1", domain.TierAdmin)
	for i := 0; i < 600; i++ {
		svc.limiter.Allow(u.ID, 601)
	}

	req := imageRequest()
	req.Frontend = "web"
	req.UserRef = "web:admin-1"
	_, err := svc.Admit(ctx, req, 0, "")
	wantCode(t, err, domain.CodeRateLimited)

	var de *domain.Error
	errors.As(err, &de)
	if de.RetryAfter <= 0 || de.RetryAfter > 60 {
		t.Errorf("retry_after = %d, want within (0, 60]", de.RetryAfter)
	}
}
