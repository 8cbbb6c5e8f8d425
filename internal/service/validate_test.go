package service

import (
	"context"
	"testing"

	"github.com/tesseralabs/tessera/internal/domain"
	"github.com/tesseralabs/tessera/internal/ent"
	entplan "github.com/tesseralabs/tessera/internal/ent/plan"
)

func planFor(t *testing.T, client *ent.Client, tier string) *ent.Plan {
	t.Helper()
	plan, err := client.Plan.Query().Where(entplan.TierEQ(tier)).Only(context.Background())
	if err != nil {
		t.Fatalf("load plan: %v", err)
	}
	return plan
}

func TestValidate_ImageAtPlanMaximum(t *testing.T) {
	client := openTestDB(t)
	v := NewParamsValidator(DefaultCatalog())
	free := planFor(t, client, domain.TierFree)

	if err := v.Validate("image", imageParamsFor("sdxl"), free); err != nil {
		t.Fatalf("1024x1024 on a 1024px plan rejected: %v", err)
	}

	over := imageParamsFor("sdxl")
	over["resolution"] = "1024x1025"
	wantCode(t, v.Validate("image", over, free), domain.CodeInvalidParams)
}

func TestValidate_ImageStepsRange(t *testing.T) {
	client := openTestDB(t)
	v := NewParamsValidator(DefaultCatalog())
	free := planFor(t, client, domain.TierFree)

	p := imageParamsFor("sdxl")
	p["steps"] = 101
	wantCode(t, v.Validate("image", p, free), domain.CodeInvalidParams)

	p["steps"] = 0
	wantCode(t, v.Validate("image", p, free), domain.CodeInvalidParams)
}

func TestValidate_VideoResolutionSubjectToPlan(t *testing.T) {
	client := openTestDB(t)
	v := NewParamsValidator(DefaultCatalog())
	free := planFor(t, client, domain.TierFree)
	pro := planFor(t, client, domain.TierPro)

	params := map[string]any{"prompt": "waves", "duration": 10, "fps": 24, "resolution": "1080p"}
	// 1080p needs a 1920px plan; free caps at 1024.
	wantCode(t, v.Validate("video", params, free), domain.CodeInvalidParams)
	if err := v.Validate("video", params, pro); err != nil {
		t.Errorf("1080p on pro rejected: %v", err)
	}

	params["duration"] = 31
	wantCode(t, v.Validate("video", params, pro), domain.CodeInvalidParams)
}

func TestValidate_TextTokenRange(t *testing.T) {
	client := openTestDB(t)
	v := NewParamsValidator(DefaultCatalog())
	free := planFor(t, client, domain.TierFree)

	if err := v.Validate("text", map[string]any{"prompt": "hi", "max_tokens": 4096}, free); err != nil {
		t.Fatalf("max_tokens 4096 rejected: %v", err)
	}
	wantCode(t, v.Validate("text", map[string]any{"prompt": "hi", "max_tokens": 4097}, free), domain.CodeInvalidParams)
	wantCode(t, v.Validate("text", map[string]any{"max_tokens": 100}, free), domain.CodeInvalidParams)
}

func TestValidate_AudioVoiceAndDuration(t *testing.T) {
	client := openTestDB(t)
	v := NewParamsValidator(DefaultCatalog())
	free := planFor(t, client, domain.TierFree)

	ok := map[string]any{"text": "hello", "voice": "amy", "duration_seconds": 10}
	if err := v.Validate("audio", ok, free); err != nil {
		t.Fatalf("valid audio rejected: %v", err)
	}

	badVoice := map[string]any{"text": "hello", "voice": "unknown-voice"}
	wantCode(t, v.Validate("audio", badVoice, free), domain.CodeInvalidParams)

	tooLong := map[string]any{"text": "hello", "voice": "amy", "duration_seconds": 31}
	wantCode(t, v.Validate("audio", tooLong, free), domain.CodeInvalidParams)
}

func TestValidate_WrongCapabilityModel(t *testing.T) {
	client := openTestDB(t)
	v := NewParamsValidator(DefaultCatalog())
	pro := planFor(t, client, domain.TierPro)

	// llama3-8b is a text model; using it for images is invalid.
	p := imageParamsFor("llama3-8b")
	wantCode(t, v.Validate("image", p, pro), domain.CodeInvalidParams)
}
