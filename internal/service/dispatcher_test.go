package service

import (
	"context"
	"testing"
	"time"

	"github.com/tesseralabs/tessera/internal/domain"
	"github.com/tesseralabs/tessera/internal/ent"
	entjob "github.com/tesseralabs/tessera/internal/ent/job"
	"github.com/tesseralabs/tessera/internal/worker"
)

func newDispatcher(t *testing.T) (*Dispatcher, *ent.Client, *Registry, *fakeRunner) {
	t.Helper()
	client := openTestDB(t)
	registry := NewRegistry(testLogger())
	fake := &fakeRunner{}
	completion := NewCompletionService(client, registry, &Notifier{}, testLogger())
	d := NewDispatcher(client, registry, completion, DefaultCatalog(), testLogger(), 10*time.Millisecond)
	return d, client, registry, fake
}

func jobStatus(t *testing.T, client *ent.Client, j *ent.Job) entjob.Status {
	t.Helper()
	got, err := client.Job.Get(context.Background(), j.ID)
	if err != nil {
		t.Fatalf("reload job: %v", err)
	}
	return got.Status
}

func TestTick_NoWorkers(t *testing.T) {
	d, client, _, _ := newDispatcher(t)
	u := createTestUser(t, client, "telegram", "1", domain.TierFree)
	enqueueTestJob(t, client, u.ID, 0, "image", time.Now(), imageParamsFor("sdxl"))

	if d.Tick(context.Background()) {
		t.Fatal("tick dispatched with no workers")
	}
}

func TestTick_PriorityPreemption(t *testing.T) {
	d, client, registry, fake := newDispatcher(t)
	addTestWorker(registry, fake, "w1", []string{"image"}, nil)

	free := createTestUser(t, client, "telegram", "free", domain.TierFree)
	base := time.Now().Add(-time.Minute)
	for i := 0; i < 5; i++ {
		enqueueTestJob(t, client, free.ID, 0, "image", base.Add(time.Duration(i)*time.Second), imageParamsFor("sdxl"))
	}
	pro := createTestUser(t, client, "telegram", "pro", domain.TierPro)
	proJob := enqueueTestJob(t, client, pro.ID, 2, "image", time.Now(), imageParamsFor("sdxl"))

	if !d.Tick(context.Background()) {
		t.Fatal("tick did not dispatch")
	}
	waitFor(t, "dispatch request", func() bool { return fake.requestCount() > 0 })
	if got := fake.firstRequest().JobID; got != proJob.ID.String() {
		t.Errorf("dispatched %s, want pro job %s", got, proJob.ID)
	}
}

func TestTick_CapabilityNeverMismatched(t *testing.T) {
	d, client, registry, fake := newDispatcher(t)
	addTestWorker(registry, fake, "w1", []string{"image"}, nil)

	u := createTestUser(t, client, "telegram", "1", domain.TierFree)
	enqueueTestJob(t, client, u.ID, 0, "video", time.Now(), map[string]any{
		"prompt": "waves", "duration": 5, "fps": 24, "resolution": "720p",
	})

	if d.Tick(context.Background()) {
		t.Fatal("dispatched a video job to an image-only worker")
	}
	if fake.requestCount() != 0 {
		t.Errorf("worker received %d requests, want 0", fake.requestCount())
	}
}

func TestTick_ModelAffinity(t *testing.T) {
	d, client, registry, fake := newDispatcher(t)
	addTestWorker(registry, fake, "w1", []string{"image"}, []string{"sdxl"})

	starter := createTestUser(t, client, "telegram", "s1", domain.TierStarter)
	enqueueTestJob(t, client, starter.ID, 1, "image", time.Now().Add(-10*time.Second), imageParamsFor("flux-schnell"))
	j2 := enqueueTestJob(t, client, starter.ID, 1, "image", time.Now(), imageParamsFor("sdxl"))

	if !d.Tick(context.Background()) {
		t.Fatal("tick did not dispatch")
	}
	waitFor(t, "dispatch request", func() bool { return fake.requestCount() > 0 })
	if got := fake.firstRequest().JobID; got != j2.ID.String() {
		t.Errorf("dispatched %s, want affinity job %s", got, j2.ID)
	}
}

func TestSelectJob_AffinityStarvationBounded(t *testing.T) {
	d, client, _, _ := newDispatcher(t)
	u := createTestUser(t, client, "telegram", "1", domain.TierStarter)
	older := enqueueTestJob(t, client, u.ID, 1, "image", time.Now().Add(-time.Minute), imageParamsFor("flux-schnell"))
	affinity := enqueueTestJob(t, client, u.ID, 1, "image", time.Now(), imageParamsFor("sdxl"))

	w := WorkerHandle{ID: "w1", Capabilities: []string{"image"}, LoadedModels: []string{"sdxl"}}
	candidates := []*ent.Job{older, affinity}

	for i := 0; i < domain.AffinityStarvationLimit; i++ {
		if got := d.selectJob(w, candidates); got.ID != affinity.ID {
			t.Fatalf("pass %d selected %s, want affinity job", i, got.ID)
		}
	}
	// The displaced job has now been skipped the limit; affinity yields.
	if got := d.selectJob(w, candidates); got.ID != older.ID {
		t.Errorf("starved job not preferred after %d skips", domain.AffinityStarvationLimit)
	}
}

func TestTick_BatchAssembly(t *testing.T) {
	d, client, registry, fake := newDispatcher(t)
	fake.respFn = func(req *worker.RunJobRequest) (*worker.RunJobResponse, error) {
		resp := &worker.RunJobResponse{Status: "completed", JobID: req.JobID}
		resp.Members = append(resp.Members, worker.RunJobResponse{
			Status: "completed", JobID: req.JobID,
			Artifacts: []worker.ArtifactPayload{{Type: "image", Path: "/o/a.png"}},
		})
		for _, m := range req.Batch {
			resp.Members = append(resp.Members, worker.RunJobResponse{
				Status: "completed", JobID: m.JobID,
				Artifacts: []worker.ArtifactPayload{{Type: "image", Path: "/o/b.png"}},
			})
		}
		return resp, nil
	}
	addTestWorker(registry, fake, "w1", []string{"image"}, []string{"sdxl"})

	pro := createTestUser(t, client, "telegram", "p1", domain.TierPro)
	var jobs []*ent.Job
	base := time.Now().Add(-time.Minute)
	for i := 0; i < 3; i++ {
		jobs = append(jobs, enqueueTestJob(t, client, pro.ID, 2, "image", base.Add(time.Duration(i)*time.Second), imageParamsFor("sdxl")))
	}

	if !d.Tick(context.Background()) {
		t.Fatal("tick did not dispatch")
	}
	waitFor(t, "batch completion", func() bool {
		for _, j := range jobs {
			if jobStatus(t, client, j) != entjob.StatusCOMPLETED {
				return false
			}
		}
		return true
	})

	req := fake.firstRequest()
	if len(req.Batch) != 2 {
		t.Errorf("batch members = %d, want 2", len(req.Batch))
	}
}

func TestTick_NoBatchAcrossDifferentKeys(t *testing.T) {
	d, client, registry, fake := newDispatcher(t)
	addTestWorker(registry, fake, "w1", []string{"image"}, []string{"sdxl"})

	pro := createTestUser(t, client, "telegram", "p1", domain.TierPro)
	enqueueTestJob(t, client, pro.ID, 2, "image", time.Now().Add(-2*time.Second), imageParamsFor("sdxl"))
	other := imageParamsFor("sdxl")
	other["steps"] = 40
	enqueueTestJob(t, client, pro.ID, 2, "image", time.Now(), other)

	if !d.Tick(context.Background()) {
		t.Fatal("tick did not dispatch")
	}
	waitFor(t, "dispatch request", func() bool { return fake.requestCount() > 0 })
	if req := fake.firstRequest(); len(req.Batch) != 0 {
		t.Errorf("jobs with different steps batched together: %d members", len(req.Batch))
	}
}

func TestTick_RunningTransitionStampsWorker(t *testing.T) {
	d, client, registry, fake := newDispatcher(t)

	// Block the worker reply so the job stays RUNNING.
	block := make(chan struct{})
	fake.respFn = func(req *worker.RunJobRequest) (*worker.RunJobResponse, error) {
		<-block
		return &worker.RunJobResponse{Status: "completed", JobID: req.JobID}, nil
	}
	defer close(block)
	addTestWorker(registry, fake, "w1", []string{"image"}, nil)

	u := createTestUser(t, client, "telegram", "1", domain.TierFree)
	j := enqueueTestJob(t, client, u.ID, 0, "image", time.Now(), imageParamsFor("sdxl"))

	if !d.Tick(context.Background()) {
		t.Fatal("tick did not dispatch")
	}
	got, err := client.Job.Get(context.Background(), j.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Status != entjob.StatusRUNNING {
		t.Fatalf("status = %s, want RUNNING", got.Status)
	}
	if got.WorkerID != "w1" {
		t.Errorf("worker_id = %q, want w1", got.WorkerID)
	}
	if got.StartedAt == nil || got.QueuedAt == nil || got.StartedAt.Before(*got.QueuedAt) {
		t.Errorf("started_at %v must be set and >= queued_at %v", got.StartedAt, got.QueuedAt)
	}
}
