package service

import (
	"testing"
	"time"

	"github.com/tesseralabs/tessera/internal/domain"
	"github.com/tesseralabs/tessera/internal/worker"
)

func TestRegistry_LivenessThresholds(t *testing.T) {
	tests := []struct {
		name string
		age  time.Duration
		want WorkerState
	}{
		{"59s is healthy", 59 * time.Second, WorkerHealthy},
		{"61s is stale", 61 * time.Second, WorkerStale},
		{"181s is dead", 181 * time.Second, WorkerDead},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry(testLogger())
			addTestWorker(r, &fakeRunner{}, "w1", []string{"image"}, nil)
			rewindHeartbeat(r, "w1", tt.age)
			state, ok := r.State("w1")
			if !ok {
				t.Fatal("worker unknown")
			}
			if state != tt.want {
				t.Errorf("state after %s = %s, want %s", tt.age, state, tt.want)
			}
		})
	}
}

func TestRegistry_IdempotentHeartbeat(t *testing.T) {
	r := NewRegistry(testLogger())
	fake := &fakeRunner{}
	hb := &worker.Heartbeat{
		WorkerID:     "w1",
		URL:          "http://w1",
		Status:       "idle",
		Capabilities: []string{"image"},
		LoadedModels: []string{"sdxl"},
	}
	r.SetRunnerFactory(func(string) Runner { return fake })

	if isNew := r.Upsert(hb); !isNew {
		t.Error("first heartbeat should report a new worker")
	}
	r.MarkVerified("w1")
	before := r.Snapshot()

	if isNew := r.Upsert(hb); isNew {
		t.Error("re-delivered heartbeat should not report a new worker")
	}
	after := r.Snapshot()

	if len(before) != 1 || len(after) != 1 {
		t.Fatalf("snapshot sizes = %d, %d, want 1, 1", len(before), len(after))
	}
	if before[0].ID != after[0].ID || before[0].Status != after[0].Status {
		t.Errorf("registry state changed on identical heartbeat: %+v vs %+v", before[0], after[0])
	}
	if got := r.IdleHealthy(); len(got) != 1 {
		t.Errorf("idle pool = %d, want 1", len(got))
	}
}

func TestRegistry_UnverifiedNotDispatchable(t *testing.T) {
	r := NewRegistry(testLogger())
	r.SetRunnerFactory(func(string) Runner { return &fakeRunner{} })
	r.Upsert(&worker.Heartbeat{WorkerID: "w1", URL: "http://w1", Status: "idle", Capabilities: []string{"image"}})

	if got := r.IdleHealthy(); len(got) != 0 {
		t.Errorf("unverified worker in idle pool: %v", got)
	}
}

func TestRegistry_QuarantineAfterRepeatedFailures(t *testing.T) {
	r := NewRegistry(testLogger())
	addTestWorker(r, &fakeRunner{}, "w1", []string{"image"}, nil)

	for i := 0; i <= domain.QuarantineFailures; i++ {
		r.RecordFailure("w1")
	}
	state, _ := r.State("w1")
	if state != WorkerQuarantined {
		t.Fatalf("state = %s, want quarantined", state)
	}
	if got := r.IdleHealthy(); len(got) != 0 {
		t.Errorf("quarantined worker still dispatchable")
	}

	// An operator-triggered probe readmits it.
	if err := r.Probe(t.Context(), "w1"); err != nil {
		t.Fatalf("probe: %v", err)
	}
	state, _ = r.State("w1")
	if state != WorkerHealthy {
		t.Errorf("state after probe = %s, want healthy", state)
	}
}

func TestRegistry_ModelResident(t *testing.T) {
	r := NewRegistry(testLogger())
	addTestWorker(r, &fakeRunner{}, "w1", []string{"image"}, []string{"sdxl"})

	if !r.ModelResident("sdxl") {
		t.Error("sdxl should be resident")
	}
	if r.ModelResident("flux-schnell") {
		t.Error("flux-schnell should not be resident")
	}
	if r.ModelResident("") {
		t.Error("empty model is never resident")
	}
}

func TestRegistry_DispatchClaimIsExclusive(t *testing.T) {
	r := NewRegistry(testLogger())
	addTestWorker(r, &fakeRunner{}, "w1", []string{"image"}, nil)

	if !r.MarkDispatching("w1", []string{"j1"}) {
		t.Fatal("first claim failed")
	}
	if r.MarkDispatching("w1", []string{"j2"}) {
		t.Fatal("double claim succeeded")
	}
	if got := r.IdleHealthy(); len(got) != 0 {
		t.Error("claimed worker still idle")
	}

	r.ClearDispatching("w1")
	if got := r.IdleHealthy(); len(got) != 1 {
		t.Error("released worker not idle again")
	}
}

func TestRegistry_WorkersSortedByID(t *testing.T) {
	r := NewRegistry(testLogger())
	fake := &fakeRunner{}
	addTestWorker(r, fake, "w3", []string{"image"}, nil)
	addTestWorker(r, fake, "w1", []string{"image"}, nil)
	addTestWorker(r, fake, "w2", []string{"image"}, nil)

	handles := r.IdleHealthy()
	if len(handles) != 3 {
		t.Fatalf("idle pool = %d, want 3", len(handles))
	}
	for i, want := range []string{"w1", "w2", "w3"} {
		if handles[i].ID != want {
			t.Errorf("handles[%d] = %s, want %s", i, handles[i].ID, want)
		}
	}
}
