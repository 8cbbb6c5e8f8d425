package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is a thin REST wrapper for a single worker's HTTP surface.
// Per-dispatch timeouts are applied via context, not the shared http.Client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the worker at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// RunJob dispatches a job (or batch) to the worker. The call blocks for up
// to the job timeout plus 10 seconds.
func (c *Client) RunJob(ctx context.Context, req *RunJobRequest) (*RunJobResponse, error) {
	timeout := time.Duration(req.TimeoutSeconds)*time.Second + 10*time.Second
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var resp RunJobResponse
	if err := c.do(ctx, http.MethodPost, "/run_job", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Abort asks the worker to stop a running job. Best effort: workers ignore
// unknown job ids.
func (c *Client) Abort(ctx context.Context, jobID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return c.do(ctx, http.MethodPost, "/abort", map[string]string{"job_id": jobID}, nil)
}

// Health probes GET {worker}/health.
func (c *Client) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

// Capabilities fetches the worker's declared capability set.
func (c *Client) Capabilities(ctx context.Context) (*Capabilities, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var caps Capabilities
	if err := c.do(ctx, http.MethodGet, "/capabilities", nil, &caps); err != nil {
		return nil, err
	}
	return &caps, nil
}

// do executes an HTTP request against the worker and decodes the response.
func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if json.Unmarshal(respBody, apiErr) != nil || apiErr.Message == "" {
			apiErr.Message = string(respBody)
		}
		return apiErr
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}
