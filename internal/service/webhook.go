package service

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/tesseralabs/tessera/internal/auth"
)

// webhookBackoff is the retry schedule after a failed delivery attempt.
var webhookBackoff = []time.Duration{
	1 * time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second, 16 * time.Second,
}

// WebhookEvent is the body POSTed to a job's webhook URL.
type WebhookEvent struct {
	Event     string    `json:"event"`
	JobID     string    `json:"job_id"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Data      struct {
		Job       *JobView       `json:"job"`
		Artifacts []ArtifactView `json:"artifacts"`
	} `json:"data"`
}

// WebhookService delivers signed completion events to frontend-registered
// URLs. Delivery is fire-and-forget with bounded retries.
type WebhookService struct {
	secret  string
	client  *http.Client
	backoff []time.Duration
	logger  *slog.Logger
}

// NewWebhookService creates a WebhookService signing with secret.
func NewWebhookService(secret string, logger *slog.Logger) *WebhookService {
	return &WebhookService{
		secret:  secret,
		client:  &http.Client{Timeout: 10 * time.Second},
		backoff: webhookBackoff,
		logger:  logger,
	}
}

// Deliver queues a signed delivery of the event to url. It returns
// immediately; failures are retried up to five times, then dropped.
func (s *WebhookService) Deliver(url, event string, job *JobView) {
	ev := &WebhookEvent{
		Event:     event,
		JobID:     job.JobID,
		Status:    job.Status,
		Timestamp: time.Now().UTC(),
	}
	ev.Data.Job = job
	ev.Data.Artifacts = job.Artifacts

	body, err := json.Marshal(ev)
	if err != nil {
		s.logger.Error("encode webhook", "job_id", job.JobID, "error", err)
		return
	}
	go s.deliver(url, event, job.JobID, body)
}

func (s *WebhookService) deliver(url, event, jobID string, body []byte) {
	signature := auth.SignBody(s.secret, body)

	for attempt := 0; ; attempt++ {
		err := s.post(url, event, signature, body)
		if err == nil {
			return
		}
		if attempt >= len(s.backoff) {
			s.logger.Warn("webhook dropped after retries",
				"job_id", jobID, "event", event, "url", url, "error", err)
			return
		}
		time.Sleep(s.backoff[attempt])
	}
}

func (s *WebhookService) post(url, event, signature string, body []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Tessera-Event", event)
	req.Header.Set("X-Tessera-Signature", signature)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return &httpStatusError{status: resp.StatusCode}
	}
	return nil
}

type httpStatusError struct{ status int }

func (e *httpStatusError) Error() string {
	return http.StatusText(e.status)
}

// Notifier fans a terminal job transition out to the webhook channel and
// the event bus.
type Notifier struct {
	Webhooks *WebhookService
	Events   Publisher
}

// Terminal publishes job.completed / job.failed / job.cancelled.
func (n *Notifier) Terminal(v *JobView, event string) {
	if n == nil || v == nil {
		return
	}
	if n.Events != nil {
		n.Events.Publish(event, v)
	}
	if n.Webhooks != nil {
		if url, ok := v.Metadata["webhook_url"].(string); ok && url != "" {
			n.Webhooks.Deliver(url, event, v)
		}
	}
}
