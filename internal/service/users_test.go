package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tesseralabs/tessera/internal/auth"
	"github.com/tesseralabs/tessera/internal/domain"
)

func TestUserService_KeyExchangeAndAuth(t *testing.T) {
	client := openTestDB(t)
	svc := NewUserService(client, "test-jwt-secret", time.Hour, testLogger())
	ctx := context.Background()

	key, err := auth.NewAPIKey()
	if err != nil {
		t.Fatalf("new key: %v", err)
	}
	u := createTestUser(t, client, "web", "u-1", domain.TierPro)
	u.Update().SetAPIKey(key).SetAPIKeyCreatedAt(time.Now()).ExecX(ctx)

	gotID, err := svc.AuthenticateKey(ctx, key)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if gotID != u.ID {
		t.Errorf("user id = %d, want %d", gotID, u.ID)
	}

	token, err := svc.ExchangeToken(ctx, key)
	if err != nil {
		t.Fatalf("exchange: %v", err)
	}
	claims, err := auth.ValidateToken("test-jwt-secret", token)
	if err != nil {
		t.Fatalf("validate issued token: %v", err)
	}
	if claims.UserID != u.ID || claims.Tier != domain.TierPro {
		t.Errorf("claims = %+v", claims)
	}

	if _, err := svc.AuthenticateKey(ctx, "0000000000000000000000000000000000000000000000000000000000000000"); err == nil {
		t.Error("unknown key accepted")
	}
}

func TestUserService_MeReportsRemainingQuota(t *testing.T) {
	client := openTestDB(t)
	svc := NewUserService(client, "s", time.Hour, testLogger())
	ctx := context.Background()

	u := createTestUser(t, client, "telegram", "123", domain.TierFree)
	setUsage(t, client, u.ID, decimal.NewFromFloat(12.5))

	profile, err := svc.Me(ctx, u.ID)
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if profile.Plan.Tier != domain.TierFree {
		t.Errorf("tier = %s", profile.Plan.Tier)
	}
	if !profile.TokensUsed.Equal(decimal.NewFromFloat(12.5)) {
		t.Errorf("tokens_used = %s, want 12.50", profile.TokensUsed)
	}
	if !profile.TokensLeft.Equal(decimal.NewFromFloat(7.5)) {
		t.Errorf("tokens_remaining = %s, want 7.50", profile.TokensLeft)
	}
}

func TestUserService_UsageHistoryNewestFirst(t *testing.T) {
	client := openTestDB(t)
	svc := NewUserService(client, "s", time.Hour, testLogger())
	ctx := context.Background()

	u := createTestUser(t, client, "telegram", "123", domain.TierFree)
	for _, day := range []string{"2026-08-04", "2026-08-06", "2026-08-05"} {
		client.DailyUsage.Create().
			SetOwnerID(u.ID).
			SetDay(day).
			SetTokensUsed(decimal.NewFromInt(1)).
			SetTokensImage(decimal.NewFromInt(1)).
			SetTokensVideo(decimal.Zero).
			SetTokensText(decimal.Zero).
			SetTokensAudio(decimal.Zero).
			SetJobsCompleted(1).
			ExecX(ctx)
	}

	history, err := svc.UsageHistory(ctx, u.ID, 30)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("days = %d, want 3", len(history))
	}
	if history[0].Day != "2026-08-06" || history[2].Day != "2026-08-04" {
		t.Errorf("history order: %s, %s, %s", history[0].Day, history[1].Day, history[2].Day)
	}
}
