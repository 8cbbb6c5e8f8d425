package worker

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_RunJob(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/run_job" {
			t.Errorf("path = %s, want /run_job", r.URL.Path)
		}
		var req RunJobRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.JobID != "j-1" {
			t.Errorf("job_id = %s", req.JobID)
		}
		json.NewEncoder(w).Encode(RunJobResponse{
			Status:               "completed",
			JobID:                req.JobID,
			ExecutionTimeSeconds: 2,
			Artifacts:            []ArtifactPayload{{Type: "image", Path: "/o/1.png"}},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	resp, err := c.RunJob(context.Background(), &RunJobRequest{
		JobID:          "j-1",
		Params:         map[string]any{"prompt": "a sunset"},
		TimeoutSeconds: 5,
	})
	if err != nil {
		t.Fatalf("run job: %v", err)
	}
	if resp.Status != "completed" || len(resp.Artifacts) != 1 {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestClient_RunJobWorkerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"message": "engine crashed"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.RunJob(context.Background(), &RunJobRequest{JobID: "j-1", TimeoutSeconds: 5})
	if err == nil {
		t.Fatal("expected error on 500")
	}
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("error type %T, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError || apiErr.Message != "engine crashed" {
		t.Errorf("unexpected APIError: %+v", apiErr)
	}
}

func TestClient_HealthAndCapabilities(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/health":
			w.WriteHeader(http.StatusOK)
		case "/capabilities":
			json.NewEncoder(w).Encode(Capabilities{
				WorkerID:     "w1",
				Capabilities: []string{"image"},
				LoadedModels: []string{"sdxl"},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if err := c.Health(context.Background()); err != nil {
		t.Fatalf("health: %v", err)
	}
	caps, err := c.Capabilities(context.Background())
	if err != nil {
		t.Fatalf("capabilities: %v", err)
	}
	if caps.WorkerID != "w1" || len(caps.Capabilities) != 1 {
		t.Errorf("unexpected capabilities: %+v", caps)
	}
}

func TestClient_Abort(t *testing.T) {
	var gotJobID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		gotJobID = body["job_id"]
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if err := c.Abort(context.Background(), "j-9"); err != nil {
		t.Fatalf("abort: %v", err)
	}
	if gotJobID != "j-9" {
		t.Errorf("job_id = %q, want j-9", gotJobID)
	}
}
