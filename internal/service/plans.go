package service

import (
	"context"
	"fmt"

	"github.com/tesseralabs/tessera/internal/domain"
	"github.com/tesseralabs/tessera/internal/ent"
	entplan "github.com/tesseralabs/tessera/internal/ent/plan"
)

// Model allowlists per tier; pro and admin allow everything.
var (
	freeModels    = []string{"sdxl", "sd15", "llama3-8b", "piper-en"}
	starterModels = []string{"sdxl", "sd15", "flux-schnell", "llama3-8b", "mistral-7b", "piper-en"}
)

type planSeed struct {
	tier              string
	description       string
	dailyTokenLimit   int
	requestsPerMinute int
	maxConcurrentJobs int
	priority          int
	maxResolution     int
	maxAudioSeconds   int
	allowedModels     []string
	priceCents        int
}

var planSeeds = []planSeed{
	{domain.TierFree, "Free tier", 20, 5, 1, 0, 1024, 30, freeModels, 0},
	{domain.TierStarter, "Starter", 100, 15, 2, 1, 1536, 60, starterModels, 500},
	{domain.TierPro, "Pro", 500, 60, 4, 2, 2048, 120, []string{"*"}, 2000},
	{domain.TierAdmin, "Admin", 1_000_000_000, 600, 16, 3, 4096, 600, []string{"*"}, 0},
}

// SeedPlans upserts the four canonical plans. Plan rows are treated as
// immutable policy: existing rows are only updated when limits drift from
// the canonical values (a deploy-time correction, not a runtime mutation).
func SeedPlans(ctx context.Context, db *ent.Client) error {
	for _, s := range planSeeds {
		existing, err := db.Plan.Query().Where(entplan.TierEQ(s.tier)).Only(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return fmt.Errorf("query plan %s: %w", s.tier, err)
		}
		if existing == nil {
			_, err = db.Plan.Create().
				SetTier(s.tier).
				SetDescription(s.description).
				SetDailyTokenLimit(s.dailyTokenLimit).
				SetRequestsPerMinute(s.requestsPerMinute).
				SetMaxConcurrentJobs(s.maxConcurrentJobs).
				SetPriority(s.priority).
				SetMaxResolution(s.maxResolution).
				SetMaxAudioSeconds(s.maxAudioSeconds).
				SetAllowedModels(s.allowedModels).
				SetPriceCents(s.priceCents).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("seed plan %s: %w", s.tier, err)
			}
			continue
		}
		_, err = existing.Update().
			SetDailyTokenLimit(s.dailyTokenLimit).
			SetRequestsPerMinute(s.requestsPerMinute).
			SetMaxConcurrentJobs(s.maxConcurrentJobs).
			SetPriority(s.priority).
			SetMaxResolution(s.maxResolution).
			SetMaxAudioSeconds(s.maxAudioSeconds).
			SetAllowedModels(s.allowedModels).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("refresh plan %s: %w", s.tier, err)
		}
	}
	return nil
}
