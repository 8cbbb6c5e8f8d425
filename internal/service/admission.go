package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"

	"github.com/tesseralabs/tessera/internal/billing"
	"github.com/tesseralabs/tessera/internal/domain"
	"github.com/tesseralabs/tessera/internal/ent"
	entjob "github.com/tesseralabs/tessera/internal/ent/job"
	entplan "github.com/tesseralabs/tessera/internal/ent/plan"
	entuser "github.com/tesseralabs/tessera/internal/ent/user"
)

var admissionTracer = otel.Tracer("tessera/service/admission")

// JobRequest is the admission contract for POST /api/v1/jobs.
type JobRequest struct {
	Frontend     string         `json:"frontend" validate:"required,oneof=telegram discord web api"`
	BotID        string         `json:"bot_id,omitempty"`
	Capability   string         `json:"capability" validate:"required,oneof=image video text audio"`
	UserRef      string         `json:"user_ref,omitempty"`
	Params       map[string]any `json:"params" validate:"required"`
	WorkflowID   string         `json:"workflow_id,omitempty"`
	ReplyContext map[string]any `json:"reply_context,omitempty"`
	WebhookURL   string         `json:"webhook_url,omitempty" validate:"omitempty,url"`
}

// JobAck acknowledges an admitted job.
type JobAck struct {
	JobID                string          `json:"job_id"`
	Status               string          `json:"status"`
	QueuePosition        int             `json:"queue_position"`
	EstimatedTimeSeconds int             `json:"estimated_time_seconds"`
	CostTokens           decimal.Decimal `json:"cost_tokens"`
	CreatedAt            time.Time       `json:"created_at"`
}

// AdmissionService executes the admission pipeline: user/plan resolution,
// rate and concurrency checks, validation, cost, quota, enqueue. Every
// storage step runs under one transaction that commits only if all succeed.
type AdmissionService struct {
	db       *ent.Client
	registry *Registry
	limiter  *UserLimiter
	params   *ParamsValidator
	validate *validator.Validate
	logger   *slog.Logger
}

// NewAdmissionService creates an AdmissionService.
func NewAdmissionService(db *ent.Client, registry *Registry, limiter *UserLimiter, params *ParamsValidator, logger *slog.Logger) *AdmissionService {
	return &AdmissionService{
		db:       db,
		registry: registry,
		limiter:  limiter,
		params:   params,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

// Admit runs the admission pipeline for a request submitted by callerID
// (the authenticated frontend or API user).
func (s *AdmissionService) Admit(ctx context.Context, req *JobRequest, callerID int, ip string) (*JobAck, error) {
	ctx, span := admissionTracer.Start(ctx, "admission.admit")
	defer span.End()

	if err := s.validate.Struct(req); err != nil {
		return nil, domain.Errorf(domain.CodeInvalidParams, "invalid request: %v", err)
	}
	platform, platformUID, err := resolveUserRef(req, callerID)
	if err != nil {
		return nil, err
	}

	var ack *JobAck
	err = withStorageRetry(ctx, s.logger, "admission", func() error {
		a, err := s.admitOnce(ctx, req, platform, platformUID, callerID, ip)
		if err != nil {
			return err
		}
		ack = a
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("job admitted",
		"job_id", ack.JobID,
		"capability", req.Capability,
		"cost_tokens", ack.CostTokens,
		"queue_position", ack.QueuePosition,
	)
	return ack, nil
}

// admitOnce is one attempt of the transactional pipeline.
func (s *AdmissionService) admitOnce(ctx context.Context, req *JobRequest, platform, platformUID string, callerID int, ip string) (*JobAck, error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	client := tx.Client()

	// 1. Resolve user (created on first contact with the free plan).
	u, err := s.resolveUser(ctx, client, platform, platformUID, callerID, ip)
	if err != nil {
		return nil, err
	}

	// 2. Load plan.
	plan, err := u.QueryPlan().Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("load plan: %w", err)
	}
	if !plan.Active {
		return nil, domain.Errorf(domain.CodeInvalidParams, "plan %s is inactive", plan.Tier)
	}

	// 3. Rate limit (advisory, in-process).
	if ok, retryAfter := s.limiter.Allow(u.ID, plan.RequestsPerMinute); !ok {
		e := domain.Errorf(domain.CodeRateLimited, "rate limit of %d requests/minute exceeded", plan.RequestsPerMinute)
		e.RetryAfter = retryAfter
		return nil, e
	}

	// 4. Concurrency.
	active, err := client.Job.Query().
		Where(
			entjob.HasOwnerWith(entuser.IDEQ(u.ID)),
			entjob.StatusIn(entjob.StatusCREATED, entjob.StatusQUEUED, entjob.StatusRUNNING),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count active jobs: %w", err)
	}
	if active >= plan.MaxConcurrentJobs {
		return nil, domain.Errorf(domain.CodeRateLimited, "concurrent job limit of %d reached", plan.MaxConcurrentJobs)
	}

	// 5. Parameter validation.
	if err := s.params.Validate(req.Capability, req.Params, plan); err != nil {
		return nil, err
	}

	// 6. Cost.
	cost, err := billing.Cost(req.Capability, req.Params)
	if err != nil {
		return nil, err
	}

	// 7. Quota against committed prior usage.
	now := time.Now().UTC()
	used, err := tokensUsed(ctx, client, u.ID, domain.Day(now))
	if err != nil {
		return nil, err
	}
	limit := decimal.NewFromInt(int64(plan.DailyTokenLimit))
	if used.Add(cost).GreaterThan(limit) {
		return nil, domain.Errorf(domain.CodeQuotaExceeded,
			"daily quota exceeded: %s used of %d, request costs %s", used, plan.DailyTokenLimit, cost)
	}

	// 8. Insert in CREATED, then enqueue.
	create := client.Job.Create().
		SetOwner(u).
		SetFrontend(entjob.Frontend(req.Frontend)).
		SetCapability(entjob.Capability(req.Capability)).
		SetPriority(plan.Priority).
		SetParams(req.Params).
		SetCostTokens(cost).
		SetCreatedAt(now)
	if req.BotID != "" {
		create.SetBotID(req.BotID)
	}
	if req.WorkflowID != "" {
		create.SetWorkflowID(req.WorkflowID)
	}
	if req.WebhookURL != "" {
		create.SetWebhookURL(req.WebhookURL)
	}
	if req.ReplyContext != nil {
		create.SetReplyContext(req.ReplyContext)
	}
	j, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}
	j, err = j.Update().
		SetStatus(entjob.StatusQUEUED).
		SetQueuedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("enqueue job: %w", err)
	}

	// 9. Queue position: jobs strictly ahead of this one.
	pos, err := client.Job.Query().
		Where(
			entjob.StatusEQ(entjob.StatusQUEUED),
			entjob.IDNEQ(j.ID),
			entjob.Or(
				entjob.PriorityGT(plan.Priority),
				entjob.And(entjob.PriorityEQ(plan.Priority), entjob.QueuedAtLT(now)),
			),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count queue position: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit admission: %w", err)
	}
	committed = true

	// 10. Time estimate (registry state, outside the transaction).
	return &JobAck{
		JobID:                j.ID.String(),
		Status:               string(entjob.StatusQUEUED),
		QueuePosition:        pos,
		EstimatedTimeSeconds: s.estimate(pos, req.Capability, domain.ModelOf(req.Params)),
		CostTokens:           cost,
		CreatedAt:            j.CreatedAt,
	}, nil
}

// resolveUser looks up or creates the platform identity the request acts
// for. Direct API calls act as the authenticated caller.
func (s *AdmissionService) resolveUser(ctx context.Context, client *ent.Client, platform, platformUID string, callerID int, ip string) (*ent.User, error) {
	now := time.Now().UTC()

	if platform == "" {
		u, err := client.User.Get(ctx, callerID)
		if err != nil {
			return nil, fmt.Errorf("load caller: %w", err)
		}
		return u.Update().SetLastActiveAt(now).Save(ctx)
	}

	u, err := client.User.Query().
		Where(
			entuser.PlatformEQ(entuser.Platform(platform)),
			entuser.PlatformUserIDEQ(platformUID),
		).
		Only(ctx)
	if err == nil {
		update := u.Update().SetLastActiveAt(now)
		if ip != "" {
			update.SetIPAddress(ip)
		}
		return update.Save(ctx)
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query user: %w", err)
	}

	free, err := client.Plan.Query().Where(entplan.TierEQ(domain.TierFree)).Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("load free plan: %w", err)
	}
	create := client.User.Create().
		SetPlatform(entuser.Platform(platform)).
		SetPlatformUserID(platformUID).
		SetPlan(free).
		SetLastActiveAt(now)
	if ip != "" {
		create.SetIPAddress(ip)
	}
	u, err = create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// estimate projects wait time from queue position, the per-capability
// average, and whether the model is already resident on an idle worker.
func (s *AdmissionService) estimate(position int, capability, model string) int {
	adjust := domain.ColdStartSeconds
	if s.registry.ModelResident(model) {
		adjust = domain.WarmStartSeconds
	}
	return position*domain.AvgSeconds(capability) + adjust
}

// resolveUserRef splits "platform:platform_user_id". Direct API requests
// (frontend "api" with no user_ref) act as the authenticated caller.
func resolveUserRef(req *JobRequest, callerID int) (platform, uid string, err error) {
	if req.UserRef == "" {
		if req.Frontend != "api" {
			return "", "", domain.Errorf(domain.CodeInvalidParams, "user_ref is required for frontend %q", req.Frontend)
		}
		if callerID == 0 {
			return "", "", domain.Errorf(domain.CodeUnauthenticated, "no authenticated user")
		}
		return "", "", nil
	}
	platform, uid, ok := strings.Cut(req.UserRef, ":")
	if !ok || uid == "" {
		return "", "", domain.Errorf(domain.CodeInvalidParams, "user_ref must be platform:id, got %q", req.UserRef)
	}
	switch platform {
	case "telegram", "discord", "web":
	default:
		return "", "", domain.Errorf(domain.CodeInvalidParams, "unknown platform %q", platform)
	}
	if len(uid) > 100 {
		return "", "", domain.Errorf(domain.CodeInvalidParams, "platform user id too long")
	}
	return platform, uid, nil
}
