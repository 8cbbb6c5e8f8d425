// Package billing computes job token costs. All arithmetic is 2-dp decimal;
// the result is fixed at admission and never recomputed.
package billing

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tesseralabs/tessera/internal/domain"
)

// MinimumCost is the floor applied to every billable request.
var MinimumCost = decimal.NewFromFloat(0.01)

var (
	megapixel = decimal.NewFromInt(1024 * 1024)
	twenty    = decimal.NewFromInt(20)
	thousand  = decimal.NewFromInt(1000)
	audioFlat = decimal.NewFromFloat(0.5)
)

// Video resolution multipliers.
var resolutionMultiplier = map[string]decimal.Decimal{
	"480p":  decimal.NewFromFloat(0.5),
	"720p":  decimal.NewFromFloat(1.0),
	"1080p": decimal.NewFromFloat(2.0),
}

// Cost returns the token cost for a validated request.
//
//	image: (W*H / 1024^2) * (steps/20)
//	video: duration * 3/5 * resolution multiplier
//	text:  max_tokens / 1000
//	audio: flat 0.5
func Cost(capability string, params map[string]any) (decimal.Decimal, error) {
	var c decimal.Decimal
	switch capability {
	case "image":
		w, h, err := ParseResolution(stringOf(params, "resolution"))
		if err != nil {
			return decimal.Zero, err
		}
		steps := intOf(params, "steps")
		if steps <= 0 {
			steps = 20
		}
		pixels := decimal.NewFromInt(int64(w) * int64(h))
		c = pixels.Div(megapixel).Mul(decimal.NewFromInt(int64(steps)).Div(twenty))
	case "video":
		duration := intOf(params, "duration")
		mult, ok := resolutionMultiplier[stringOf(params, "resolution")]
		if !ok {
			mult = resolutionMultiplier["720p"]
		}
		c = decimal.NewFromInt(int64(duration) * 3).Div(decimal.NewFromInt(5)).Mul(mult)
	case "text":
		c = decimal.NewFromInt(int64(intOf(params, "max_tokens"))).Div(thousand)
	case "audio":
		c = audioFlat
	default:
		return decimal.Zero, domain.Errorf(domain.CodeInvalidParams, "unknown capability %q", capability)
	}

	c = c.Round(2)
	if c.LessThan(MinimumCost) {
		c = MinimumCost
	}
	return c, nil
}

// ParseResolution parses a "WxH" string into width and height.
func ParseResolution(s string) (int, int, error) {
	w, h, ok := strings.Cut(s, "x")
	if !ok {
		return 0, 0, domain.Errorf(domain.CodeInvalidParams, "resolution must be WxH, got %q", s)
	}
	width, err := strconv.Atoi(strings.TrimSpace(w))
	if err != nil || width <= 0 {
		return 0, 0, domain.Errorf(domain.CodeInvalidParams, "bad resolution width %q", w)
	}
	height, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil || height <= 0 {
		return 0, 0, domain.Errorf(domain.CodeInvalidParams, "bad resolution height %q", h)
	}
	return width, height, nil
}

func stringOf(params map[string]any, key string) string {
	v, _ := params[key].(string)
	return v
}

func intOf(params map[string]any, key string) int {
	switch v := params[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	case string:
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return 0
}
