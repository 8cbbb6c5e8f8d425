package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tesseralabs/tessera/internal/api/response"
	"github.com/tesseralabs/tessera/internal/domain"
	"github.com/tesseralabs/tessera/internal/service"
	"github.com/tesseralabs/tessera/internal/worker"
)

// DispatcherVersion is reported to workers in heartbeat acks so mismatched
// fleets are visible in worker logs.
const DispatcherVersion = "1"

// InternalHandler serves the worker-facing API surface.
type InternalHandler struct {
	registry *service.Registry
}

// NewInternalHandler creates an InternalHandler.
func NewInternalHandler(registry *service.Registry) *InternalHandler {
	return &InternalHandler{registry: registry}
}

// Heartbeat handles POST /api/internal/heartbeat. New workers are probed
// for reachability before they join the idle pool.
func (h *InternalHandler) Heartbeat(w http.ResponseWriter, r *http.Request) {
	var hb worker.Heartbeat
	if err := json.NewDecoder(r.Body).Decode(&hb); err != nil {
		response.Error(w, domain.CodeInvalidParams, "malformed heartbeat")
		return
	}
	if hb.WorkerID == "" || hb.URL == "" {
		response.Error(w, domain.CodeInvalidParams, "worker_id and url are required")
		return
	}

	if isNew := h.registry.Upsert(&hb); isNew {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = h.registry.Verify(ctx, hb.WorkerID)
		}()
	}

	response.JSON(w, http.StatusOK, map[string]any{
		"ack":                true,
		"dispatcher_version": DispatcherVersion,
	})
}

// Workers handles GET /api/internal/workers: fleet state for operators.
func (h *InternalHandler) Workers(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]any{"workers": h.registry.Snapshot()})
}

// Probe handles POST /api/internal/workers/{id}/probe: the operator health
// check that readmits a quarantined worker.
func (h *InternalHandler) Probe(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "id")
	if err := h.registry.Probe(r.Context(), workerID); err != nil {
		response.DomainError(w, err)
		return
	}
	state, _ := h.registry.State(workerID)
	response.JSON(w, http.StatusOK, map[string]any{
		"worker_id": workerID,
		"state":     state,
	})
}
