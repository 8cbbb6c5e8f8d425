package service

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	_ "github.com/mattn/go-sqlite3"

	"github.com/tesseralabs/tessera/internal/domain"
	"github.com/tesseralabs/tessera/internal/ent"
	"github.com/tesseralabs/tessera/internal/ent/enttest"
	entjob "github.com/tesseralabs/tessera/internal/ent/job"
	entplan "github.com/tesseralabs/tessera/internal/ent/plan"
	entuser "github.com/tesseralabs/tessera/internal/ent/user"
	"github.com/tesseralabs/tessera/internal/worker"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func openTestDB(t *testing.T) *ent.Client {
	t.Helper()
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })
	if err := SeedPlans(context.Background(), client); err != nil {
		t.Fatalf("seed plans: %v", err)
	}
	return client
}

func createTestUser(t *testing.T, client *ent.Client, platform, uid, tier string) *ent.User {
	t.Helper()
	ctx := context.Background()
	plan, err := client.Plan.Query().Where(entplan.TierEQ(tier)).Only(ctx)
	if err != nil {
		t.Fatalf("load plan %s: %v", tier, err)
	}
	u, err := client.User.Create().
		SetPlatform(entuser.Platform(platform)).
		SetPlatformUserID(uid).
		SetPlan(plan).
		Save(ctx)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func enqueueTestJob(t *testing.T, client *ent.Client, userID, priority int, capability string, queuedAt time.Time, params map[string]any) *ent.Job {
	t.Helper()
	j, err := client.Job.Create().
		SetOwnerID(userID).
		SetFrontend("api").
		SetCapability(entjob.Capability(capability)).
		SetStatus(entjob.StatusQUEUED).
		SetPriority(priority).
		SetParams(params).
		SetCostTokens(decimal.NewFromInt(1)).
		SetQueuedAt(queuedAt).
		Save(context.Background())
	if err != nil {
		t.Fatalf("enqueue job: %v", err)
	}
	return j
}

func runTestJob(t *testing.T, client *ent.Client, j *ent.Job, workerID string, startedAt time.Time) *ent.Job {
	t.Helper()
	j, err := j.Update().
		SetStatus(entjob.StatusRUNNING).
		SetWorkerID(workerID).
		SetStartedAt(startedAt).
		Save(context.Background())
	if err != nil {
		t.Fatalf("mark job running: %v", err)
	}
	return j
}

func setUsage(t *testing.T, client *ent.Client, userID int, tokens decimal.Decimal) {
	t.Helper()
	_, err := client.DailyUsage.Create().
		SetOwnerID(userID).
		SetDay(domain.Day(time.Now())).
		SetTokensUsed(tokens).
		SetTokensImage(tokens).
		SetTokensVideo(decimal.Zero).
		SetTokensText(decimal.Zero).
		SetTokensAudio(decimal.Zero).
		Save(context.Background())
	if err != nil {
		t.Fatalf("set usage: %v", err)
	}
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func imageParamsFor(model string) map[string]any {
	return map[string]any{
		"prompt":     "a sunset",
		"resolution": "1024x1024",
		"steps":      20,
		"model":      model,
	}
}

// fakeRunner is an in-memory worker transport.
type fakeRunner struct {
	mu       sync.Mutex
	requests []*worker.RunJobRequest
	aborted  []string
	respFn   func(req *worker.RunJobRequest) (*worker.RunJobResponse, error)
}

func (f *fakeRunner) RunJob(ctx context.Context, req *worker.RunJobRequest) (*worker.RunJobResponse, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	fn := f.respFn
	f.mu.Unlock()
	if fn != nil {
		return fn(req)
	}
	return &worker.RunJobResponse{
		Status:               "completed",
		JobID:                req.JobID,
		ExecutionTimeSeconds: 1.5,
		Artifacts: []worker.ArtifactPayload{
			{Type: "image", Format: "png", Path: "/o/1.png"},
		},
	}, nil
}

func (f *fakeRunner) Abort(ctx context.Context, jobID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.aborted = append(f.aborted, jobID)
	return nil
}

func (f *fakeRunner) Health(ctx context.Context) error { return nil }

func (f *fakeRunner) Capabilities(ctx context.Context) (*worker.Capabilities, error) {
	return &worker.Capabilities{}, nil
}

func (f *fakeRunner) requestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func (f *fakeRunner) firstRequest() *worker.RunJobRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		return nil
	}
	return f.requests[0]
}

// addTestWorker heartbeats a worker into the registry, pre-verified, backed
// by the given fake transport.
func addTestWorker(r *Registry, fake *fakeRunner, id string, capabilities, loadedModels []string) {
	r.SetRunnerFactory(func(url string) Runner { return fake })
	r.Upsert(&worker.Heartbeat{
		WorkerID:     id,
		URL:          "http://" + id,
		Status:       "idle",
		Capabilities: capabilities,
		LoadedModels: loadedModels,
	})
	r.MarkVerified(id)
}

// rewindHeartbeat ages a worker's last heartbeat (white box).
func rewindHeartbeat(r *Registry, id string, by time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.workers[id]; ok {
		e.lastBeat = e.lastBeat.Add(-by)
	}
}
