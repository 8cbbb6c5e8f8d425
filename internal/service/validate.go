package service

import (
	"bytes"
	"encoding/json"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/tesseralabs/tessera/internal/billing"
	"github.com/tesseralabs/tessera/internal/domain"
	"github.com/tesseralabs/tessera/internal/ent"
)

// Per-capability parameter shapes. The opaque params blob is decoded into
// one of these at admission and validated against the user's plan.
type imageParams struct {
	Prompt         string `json:"prompt" validate:"required,max=2048"`
	Resolution     string `json:"resolution" validate:"required"`
	Steps          int    `json:"steps" validate:"required,min=1,max=100"`
	Model          string `json:"model" validate:"required"`
	TimeoutSeconds int    `json:"timeout_seconds" validate:"omitempty,min=1,max=600"`
}

type videoParams struct {
	Prompt         string `json:"prompt" validate:"required,max=2048"`
	Duration       int    `json:"duration" validate:"required,min=1,max=30"`
	FPS            int    `json:"fps" validate:"required,min=8,max=60"`
	Resolution     string `json:"resolution" validate:"required,oneof=480p 720p 1080p"`
	Model          string `json:"model" validate:"omitempty"`
	TimeoutSeconds int    `json:"timeout_seconds" validate:"omitempty,min=1,max=600"`
}

type textParams struct {
	Prompt         string `json:"prompt" validate:"required"`
	MaxTokens      int    `json:"max_tokens" validate:"required,min=1,max=4096"`
	Model          string `json:"model" validate:"omitempty"`
	TimeoutSeconds int    `json:"timeout_seconds" validate:"omitempty,min=1,max=600"`
}

type audioParams struct {
	Text            string  `json:"text" validate:"required,max=2048"`
	Voice           string  `json:"voice" validate:"required"`
	DurationSeconds float64 `json:"duration_seconds" validate:"omitempty,gt=0"`
	TimeoutSeconds  int     `json:"timeout_seconds" validate:"omitempty,min=1,max=600"`
}

// Video resolution presets mapped to their longest side for plan checks.
var videoLongSide = map[string]int{
	"480p":  854,
	"720p":  1280,
	"1080p": 1920,
}

// ParamsValidator validates job parameters per capability against the plan.
type ParamsValidator struct {
	validate *validator.Validate
	catalog  *ModelCatalog
}

// NewParamsValidator creates a validator backed by the given model catalog.
func NewParamsValidator(catalog *ModelCatalog) *ParamsValidator {
	return &ParamsValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		catalog:  catalog,
	}
}

// Validate checks params for the capability under the plan's limits.
// Violations return INVALID_PARAMS, unknown models MODEL_NOT_FOUND, and
// blank prompts INVALID_PROMPT.
func (p *ParamsValidator) Validate(capability string, params map[string]any, plan *ent.Plan) error {
	switch capability {
	case "image":
		return p.validateImage(params, plan)
	case "video":
		return p.validateVideo(params, plan)
	case "text":
		return p.validateText(params, plan)
	case "audio":
		return p.validateAudio(params, plan)
	default:
		return domain.Errorf(domain.CodeInvalidParams, "unknown capability %q", capability)
	}
}

func (p *ParamsValidator) validateImage(params map[string]any, plan *ent.Plan) error {
	var ip imageParams
	if err := decodeParams(params, &ip); err != nil {
		return err
	}
	if err := p.structErr(ip); err != nil {
		return err
	}
	if err := checkPrompt(ip.Prompt); err != nil {
		return err
	}
	w, h, err := billing.ParseResolution(ip.Resolution)
	if err != nil {
		return err
	}
	if w > plan.MaxResolution || h > plan.MaxResolution {
		return domain.Errorf(domain.CodeInvalidParams,
			"resolution %dx%d exceeds plan maximum %d", w, h, plan.MaxResolution)
	}
	return p.checkModel(ip.Model, "image", plan)
}

func (p *ParamsValidator) validateVideo(params map[string]any, plan *ent.Plan) error {
	var vp videoParams
	if err := decodeParams(params, &vp); err != nil {
		return err
	}
	if err := p.structErr(vp); err != nil {
		return err
	}
	if err := checkPrompt(vp.Prompt); err != nil {
		return err
	}
	if videoLongSide[vp.Resolution] > plan.MaxResolution {
		return domain.Errorf(domain.CodeInvalidParams,
			"resolution %s not allowed on plan %s", vp.Resolution, plan.Tier)
	}
	if vp.Model != "" {
		return p.checkModel(vp.Model, "video", plan)
	}
	return nil
}

func (p *ParamsValidator) validateText(params map[string]any, plan *ent.Plan) error {
	var tp textParams
	if err := decodeParams(params, &tp); err != nil {
		return err
	}
	if err := p.structErr(tp); err != nil {
		return err
	}
	if err := checkPrompt(tp.Prompt); err != nil {
		return err
	}
	if tp.Model != "" {
		return p.checkModel(tp.Model, "text", plan)
	}
	return nil
}

func (p *ParamsValidator) validateAudio(params map[string]any, plan *ent.Plan) error {
	var ap audioParams
	if err := decodeParams(params, &ap); err != nil {
		return err
	}
	if err := p.structErr(ap); err != nil {
		return err
	}
	if err := checkPrompt(ap.Text); err != nil {
		return err
	}
	if !p.catalog.VoiceAllowed(ap.Voice) {
		return domain.Errorf(domain.CodeInvalidParams, "unknown voice %q", ap.Voice)
	}
	if ap.DurationSeconds > float64(plan.MaxAudioSeconds) {
		return domain.Errorf(domain.CodeInvalidParams,
			"duration %.1fs exceeds plan maximum %ds", ap.DurationSeconds, plan.MaxAudioSeconds)
	}
	return nil
}

// checkModel resolves the model against the catalog, then the plan's
// allowlist (where "*" allows everything).
func (p *ParamsValidator) checkModel(model, capability string, plan *ent.Plan) error {
	info, ok := p.catalog.Lookup(model)
	if !ok {
		return domain.Errorf(domain.CodeModelNotFound, "unknown model %q", model)
	}
	if info.Capability != capability {
		return domain.Errorf(domain.CodeInvalidParams,
			"model %q serves %s, not %s", model, info.Capability, capability)
	}
	if !planAllowsModel(plan, model) {
		return domain.Errorf(domain.CodeInvalidParams, "model %q not allowed on plan %s", model, plan.Tier)
	}
	return nil
}

func planAllowsModel(plan *ent.Plan, model string) bool {
	return slices.Contains(plan.AllowedModels, "*") || slices.Contains(plan.AllowedModels, model)
}

func (p *ParamsValidator) structErr(v any) error {
	if err := p.validate.Struct(v); err != nil {
		return domain.Errorf(domain.CodeInvalidParams, "invalid parameters: %v", err)
	}
	return nil
}

func checkPrompt(prompt string) error {
	if strings.TrimSpace(prompt) == "" {
		return domain.Errorf(domain.CodeInvalidPrompt, "prompt must not be empty")
	}
	return nil
}

func decodeParams(params map[string]any, dst any) error {
	b, err := json.Marshal(params)
	if err != nil {
		return domain.Errorf(domain.CodeInvalidParams, "encode params: %v", err)
	}
	if err := json.NewDecoder(bytes.NewReader(b)).Decode(dst); err != nil {
		return domain.Errorf(domain.CodeInvalidParams, "malformed params: %v", err)
	}
	return nil
}
