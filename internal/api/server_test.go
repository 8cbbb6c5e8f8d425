package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tesseralabs/tessera/internal/config"
	"github.com/tesseralabs/tessera/internal/service"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := &config.Config{
		JWTSecret:        "test-jwt-secret",
		WorkerSecret:     "test-worker-secret",
		RateLimitIPRPS:   100,
		RateLimitIPBurst: 100,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svcs := &Services{
		Registry: service.NewRegistry(logger),
		Catalog:  service.DefaultCatalog(),
		Limiter:  service.NewUserLimiter(),
	}
	return NewRouter(cfg, svcs, logger)
}

func TestRoutes(t *testing.T) {
	router := testRouter(t)

	t.Run("healthz returns 200", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/healthz", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("got %d, want %d", rec.Code, http.StatusOK)
		}
		var body map[string]string
		json.NewDecoder(rec.Body).Decode(&body)
		if body["status"] != "ok" {
			t.Errorf("got %q, want %q", body["status"], "ok")
		}
	})

	t.Run("metrics exposed", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/metrics", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("got %d, want %d", rec.Code, http.StatusOK)
		}
	})

	t.Run("jobs without credentials returns 401", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/jobs/", strings.NewReader("{}"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("got %d, want %d", rec.Code, http.StatusUnauthorized)
		}
		var body struct {
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		json.NewDecoder(rec.Body).Decode(&body)
		if body.Error.Code != "UNAUTHENTICATED" {
			t.Errorf("error code = %q, want UNAUTHENTICATED", body.Error.Code)
		}
	})

	t.Run("heartbeat without worker key returns 401", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/internal/heartbeat", strings.NewReader("{}"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("got %d, want %d", rec.Code, http.StatusUnauthorized)
		}
	})

	t.Run("heartbeat with worker key is accepted", func(t *testing.T) {
		payload := `{"worker_id":"w1","url":"http://127.0.0.1:9","status":"idle","capabilities":["image"]}`
		req := httptest.NewRequest("POST", "/api/internal/heartbeat", strings.NewReader(payload))
		req.Header.Set("X-Tessera-Worker-Key", "test-worker-secret")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("got %d, want %d (%s)", rec.Code, http.StatusOK, rec.Body)
		}
		var body map[string]any
		json.NewDecoder(rec.Body).Decode(&body)
		if body["ack"] != true {
			t.Errorf("ack = %v, want true", body["ack"])
		}
	})

	t.Run("invalid bearer token returns 401", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/user/me", nil)
		req.Header.Set("Authorization", "Bearer not-a-valid-token")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("got %d, want %d", rec.Code, http.StatusUnauthorized)
		}
	})
}
