package service

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/tesseralabs/tessera/internal/auth"
)

func TestWebhook_SignedDelivery(t *testing.T) {
	var mu sync.Mutex
	var gotBody []byte
	var gotSig, gotEvent string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		gotBody, _ = io.ReadAll(r.Body)
		gotSig = r.Header.Get("X-Tessera-Signature")
		gotEvent = r.Header.Get("X-Tessera-Event")
	}))
	defer srv.Close()

	s := NewWebhookService("hook-secret", testLogger())
	s.Deliver(srv.URL, "job.completed", &JobView{JobID: "j-1", Status: "COMPLETED", Metadata: map[string]any{}})

	waitFor(t, "webhook delivery", func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(gotBody) > 0
	})

	mu.Lock()
	defer mu.Unlock()
	if gotEvent != "job.completed" {
		t.Errorf("event header = %q", gotEvent)
	}
	if want := auth.SignBody("hook-secret", gotBody); gotSig != want {
		t.Errorf("signature = %q, want %q", gotSig, want)
	}
}

func TestWebhook_RetriesThenSucceeds(t *testing.T) {
	var mu sync.Mutex
	attempts := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		attempts++
		n := attempts
		mu.Unlock()
		if n < 3 {
			w.WriteHeader(http.StatusBadGateway)
		}
	}))
	defer srv.Close()

	s := NewWebhookService("hook-secret", testLogger())
	s.backoff = []time.Duration{time.Millisecond, time.Millisecond, time.Millisecond, time.Millisecond, time.Millisecond}
	s.Deliver(srv.URL, "job.failed", &JobView{JobID: "j-2", Status: "FAILED", Metadata: map[string]any{}})

	waitFor(t, "third attempt", func() bool {
		mu.Lock()
		defer mu.Unlock()
		return attempts == 3
	})
}

func TestWebhook_DroppedAfterRetriesExhausted(t *testing.T) {
	var mu sync.Mutex
	attempts := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		attempts++
		mu.Unlock()
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := NewWebhookService("hook-secret", testLogger())
	s.backoff = []time.Duration{time.Millisecond, time.Millisecond, time.Millisecond, time.Millisecond, time.Millisecond}
	s.Deliver(srv.URL, "job.failed", &JobView{JobID: "j-3", Status: "FAILED", Metadata: map[string]any{}})

	// Initial attempt plus five retries, then the event is dropped.
	waitFor(t, "retries exhausted", func() bool {
		mu.Lock()
		defer mu.Unlock()
		return attempts == 6
	})
	time.Sleep(20 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	if attempts != 6 {
		t.Errorf("attempts = %d, want exactly 6", attempts)
	}
}
