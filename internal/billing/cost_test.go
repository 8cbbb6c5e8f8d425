package billing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func wantCost(t *testing.T, capability string, params map[string]any, want string) {
	t.Helper()
	got, err := Cost(capability, params)
	if err != nil {
		t.Fatalf("cost(%s, %v): %v", capability, params, err)
	}
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("cost(%s, %v) = %s, want %s", capability, params, got, want)
	}
}

func TestCost_Image(t *testing.T) {
	// One megapixel at the 20-step baseline is exactly one token.
	wantCost(t, "image", map[string]any{"resolution": "1024x1024", "steps": 20}, "1.00")
	wantCost(t, "image", map[string]any{"resolution": "1024x1024", "steps": 40}, "2.00")
	wantCost(t, "image", map[string]any{"resolution": "512x512", "steps": 20}, "0.25")
	wantCost(t, "image", map[string]any{"resolution": "2048x2048", "steps": 10}, "2.00")
}

func TestCost_Video(t *testing.T) {
	wantCost(t, "video", map[string]any{"duration": 5, "resolution": "720p"}, "3.00")
	wantCost(t, "video", map[string]any{"duration": 5, "resolution": "480p"}, "1.50")
	wantCost(t, "video", map[string]any{"duration": 5, "resolution": "1080p"}, "6.00")
	// Unknown preset falls back to the 720p multiplier.
	wantCost(t, "video", map[string]any{"duration": 10}, "6.00")
}

func TestCost_Text(t *testing.T) {
	wantCost(t, "text", map[string]any{"max_tokens": 1000}, "1.00")
	wantCost(t, "text", map[string]any{"max_tokens": 4096}, "4.10")
}

func TestCost_Audio(t *testing.T) {
	wantCost(t, "audio", map[string]any{"voice": "amy"}, "0.50")
}

func TestCost_MinimumFloor(t *testing.T) {
	// A tiny text request rounds below a cent; the floor applies.
	wantCost(t, "text", map[string]any{"max_tokens": 1}, "0.01")
	wantCost(t, "image", map[string]any{"resolution": "64x64", "steps": 1}, "0.01")
}

func TestCost_JSONNumbers(t *testing.T) {
	// Params decoded from JSON carry float64 numbers.
	wantCost(t, "image", map[string]any{"resolution": "1024x1024", "steps": float64(20)}, "1.00")
}

func TestCost_BadResolution(t *testing.T) {
	if _, err := Cost("image", map[string]any{"resolution": "square", "steps": 20}); err == nil {
		t.Fatal("expected error for malformed resolution")
	}
}

func TestParseResolution(t *testing.T) {
	w, h, err := ParseResolution("1920x1080")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if w != 1920 || h != 1080 {
		t.Errorf("got %dx%d", w, h)
	}
	for _, bad := range []string{"", "x", "10x", "x10", "0x10", "-1x5", "axb"} {
		if _, _, err := ParseResolution(bad); err == nil {
			t.Errorf("ParseResolution(%q) should fail", bad)
		}
	}
}
