package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tesseralabs/tessera/internal/ent"
	"github.com/tesseralabs/tessera/internal/ent/dailyusage"
	entuser "github.com/tesseralabs/tessera/internal/ent/user"
)

// Daily usage rows follow an upsert discipline: created lazily on the first
// chargeable event of the day, then incremented. tokens_used stays equal to
// the sum of the per-capability columns.

// usageRow fetches the (user, day) row, or nil when none exists yet.
func usageRow(ctx context.Context, db *ent.Client, userID int, day string) (*ent.DailyUsage, error) {
	row, err := db.DailyUsage.Query().
		Where(
			dailyusage.DayEQ(day),
			dailyusage.HasOwnerWith(entuser.IDEQ(userID)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query usage: %w", err)
	}
	return row, nil
}

// tokensUsed returns today's committed token total for the user.
func tokensUsed(ctx context.Context, db *ent.Client, userID int, day string) (decimal.Decimal, error) {
	row, err := usageRow(ctx, db, userID, day)
	if err != nil {
		return decimal.Zero, err
	}
	if row == nil {
		return decimal.Zero, nil
	}
	return row.TokensUsed, nil
}

// addCompletedUsage debits tokens for a completed job and bumps the
// completion counter, with the per-capability breakdown.
func addCompletedUsage(ctx context.Context, db *ent.Client, userID int, day, capability string, tokens decimal.Decimal) error {
	row, err := usageRow(ctx, db, userID, day)
	if err != nil {
		return err
	}
	if row == nil {
		create := db.DailyUsage.Create().
			SetOwnerID(userID).
			SetDay(day).
			SetTokensUsed(tokens).
			SetTokensImage(decimal.Zero).
			SetTokensVideo(decimal.Zero).
			SetTokensText(decimal.Zero).
			SetTokensAudio(decimal.Zero).
			SetJobsCompleted(1)
		setCapabilityTokens(create.Mutation(), capability, tokens)
		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("create usage: %w", err)
		}
		return nil
	}

	update := row.Update().
		SetTokensUsed(row.TokensUsed.Add(tokens)).
		SetJobsCompleted(row.JobsCompleted + 1)
	switch capability {
	case "image":
		update.SetTokensImage(row.TokensImage.Add(tokens))
	case "video":
		update.SetTokensVideo(row.TokensVideo.Add(tokens))
	case "text":
		update.SetTokensText(row.TokensText.Add(tokens))
	case "audio":
		update.SetTokensAudio(row.TokensAudio.Add(tokens))
	}
	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("update usage: %w", err)
	}
	return nil
}

// addFailedUsage bumps the failure counter. Failed jobs are never charged.
func addFailedUsage(ctx context.Context, db *ent.Client, userID int, day string) error {
	row, err := usageRow(ctx, db, userID, day)
	if err != nil {
		return err
	}
	if row == nil {
		_, err := db.DailyUsage.Create().
			SetOwnerID(userID).
			SetDay(day).
			SetTokensUsed(decimal.Zero).
			SetTokensImage(decimal.Zero).
			SetTokensVideo(decimal.Zero).
			SetTokensText(decimal.Zero).
			SetTokensAudio(decimal.Zero).
			SetJobsFailed(1).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create usage: %w", err)
		}
		return nil
	}
	if _, err := row.Update().SetJobsFailed(row.JobsFailed + 1).Save(ctx); err != nil {
		return fmt.Errorf("update usage: %w", err)
	}
	return nil
}

// setCapabilityTokens routes the initial breakdown column on a fresh row.
func setCapabilityTokens(m *ent.DailyUsageMutation, capability string, tokens decimal.Decimal) {
	switch capability {
	case "image":
		m.SetTokensImage(tokens)
	case "video":
		m.SetTokensVideo(tokens)
	case "text":
		m.SetTokensText(tokens)
	case "audio":
		m.SetTokensAudio(tokens)
	}
}
