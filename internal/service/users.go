package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tesseralabs/tessera/internal/auth"
	"github.com/tesseralabs/tessera/internal/domain"
	"github.com/tesseralabs/tessera/internal/ent"
	entdailyusage "github.com/tesseralabs/tessera/internal/ent/dailyusage"
	entuser "github.com/tesseralabs/tessera/internal/ent/user"
)

// PlanView is the API shape of a plan.
type PlanView struct {
	Tier              string   `json:"tier"`
	Description       string   `json:"description"`
	DailyTokenLimit   int      `json:"daily_token_limit"`
	RequestsPerMinute int      `json:"requests_per_minute"`
	MaxConcurrentJobs int      `json:"max_concurrent_jobs"`
	Priority          int      `json:"priority"`
	MaxResolution     int      `json:"max_resolution"`
	AllowedModels     []string `json:"allowed_models"`
	PriceCents        int      `json:"price_cents"`
}

// UsageDayView is one day of usage history.
type UsageDayView struct {
	Day           string          `json:"date"`
	TokensUsed    decimal.Decimal `json:"tokens_used"`
	TokensImage   decimal.Decimal `json:"tokens_image"`
	TokensVideo   decimal.Decimal `json:"tokens_video"`
	TokensText    decimal.Decimal `json:"tokens_text"`
	TokensAudio   decimal.Decimal `json:"tokens_audio"`
	JobsCompleted int             `json:"jobs_completed"`
	JobsFailed    int             `json:"jobs_failed"`
}

// UserProfile is the response for GET /api/v1/user/me.
type UserProfile struct {
	ID             int             `json:"id"`
	Platform       string          `json:"platform"`
	PlatformUserID string          `json:"platform_user_id"`
	DisplayName    string          `json:"display_name,omitempty"`
	Email          string          `json:"email,omitempty"`
	Plan           PlanView        `json:"plan"`
	TokensUsed     decimal.Decimal `json:"tokens_used_today"`
	TokensLeft     decimal.Decimal `json:"tokens_remaining_today"`
	CreatedAt      time.Time       `json:"created_at"`
	LastActiveAt   time.Time       `json:"last_active_at"`
}

// UserService serves user identity, usage history, and the API-key to
// session-token exchange.
type UserService struct {
	db        *ent.Client
	jwtSecret string
	tokenTTL  time.Duration
	logger    *slog.Logger
}

// NewUserService creates a UserService.
func NewUserService(db *ent.Client, jwtSecret string, tokenTTL time.Duration, logger *slog.Logger) *UserService {
	return &UserService{db: db, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// AuthenticateKey resolves an API key to a user id. Used by the auth
// middleware for Bearer API-key credentials.
func (s *UserService) AuthenticateKey(ctx context.Context, key string) (int, error) {
	u, err := s.db.User.Query().
		Where(entuser.APIKeyEQ(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, domain.Errorf(domain.CodeUnauthenticated, "invalid API key")
		}
		return 0, fmt.Errorf("query api key: %w", err)
	}
	return u.ID, nil
}

// ExchangeToken trades a valid API key for a short-lived session JWT.
func (s *UserService) ExchangeToken(ctx context.Context, apiKey string) (string, error) {
	u, err := s.db.User.Query().
		Where(entuser.APIKeyEQ(apiKey)).
		WithPlan().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", domain.Errorf(domain.CodeUnauthenticated, "invalid API key")
		}
		return "", fmt.Errorf("query api key: %w", err)
	}
	tier := ""
	if u.Edges.Plan != nil {
		tier = u.Edges.Plan.Tier
	}
	token, err := auth.GenerateToken(s.jwtSecret, u.ID, tier, s.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// Me returns the user's profile with today's usage against the plan limit.
func (s *UserService) Me(ctx context.Context, userID int) (*UserProfile, error) {
	u, err := s.db.User.Query().
		Where(entuser.IDEQ(userID)).
		WithPlan().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.Errorf(domain.CodeNotFound, "user not found")
		}
		return nil, fmt.Errorf("query user: %w", err)
	}
	plan := u.Edges.Plan

	used, err := tokensUsed(ctx, s.db, userID, domain.Day(time.Now()))
	if err != nil {
		return nil, err
	}
	limit := decimal.NewFromInt(int64(plan.DailyTokenLimit))
	left := limit.Sub(used)
	if left.IsNegative() {
		left = decimal.Zero
	}

	return &UserProfile{
		ID:             u.ID,
		Platform:       string(u.Platform),
		PlatformUserID: u.PlatformUserID,
		DisplayName:    u.DisplayName,
		Email:          u.Email,
		Plan: PlanView{
			Tier:              plan.Tier,
			Description:       plan.Description,
			DailyTokenLimit:   plan.DailyTokenLimit,
			RequestsPerMinute: plan.RequestsPerMinute,
			MaxConcurrentJobs: plan.MaxConcurrentJobs,
			Priority:          plan.Priority,
			MaxResolution:     plan.MaxResolution,
			AllowedModels:     plan.AllowedModels,
			PriceCents:        plan.PriceCents,
		},
		TokensUsed:   used,
		TokensLeft:   left,
		CreatedAt:    u.CreatedAt,
		LastActiveAt: u.LastActiveAt,
	}, nil
}

// Plan returns the user's plan row (for rate-limit headers).
func (s *UserService) Plan(ctx context.Context, userID int) (*ent.Plan, error) {
	plan, err := s.db.User.Query().
		Where(entuser.IDEQ(userID)).
		QueryPlan().
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("query plan: %w", err)
	}
	return plan, nil
}

// UsageHistory lists the user's most recent usage days, newest first.
func (s *UserService) UsageHistory(ctx context.Context, userID, days int) ([]*UsageDayView, error) {
	if days <= 0 || days > 90 {
		days = 30
	}
	rows, err := s.db.DailyUsage.Query().
		Where(entdailyusage.HasOwnerWith(entuser.IDEQ(userID))).
		Order(ent.Desc(entdailyusage.FieldDay)).
		Limit(days).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query usage history: %w", err)
	}
	out := make([]*UsageDayView, len(rows))
	for i, row := range rows {
		out[i] = &UsageDayView{
			Day:           row.Day,
			TokensUsed:    row.TokensUsed,
			TokensImage:   row.TokensImage,
			TokensVideo:   row.TokensVideo,
			TokensText:    row.TokensText,
			TokensAudio:   row.TokensAudio,
			JobsCompleted: row.JobsCompleted,
			JobsFailed:    row.JobsFailed,
		}
	}
	return out, nil
}
