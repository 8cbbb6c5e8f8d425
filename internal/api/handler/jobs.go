package handler

import (
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tesseralabs/tessera/internal/api/middleware"
	"github.com/tesseralabs/tessera/internal/api/response"
	"github.com/tesseralabs/tessera/internal/domain"
	"github.com/tesseralabs/tessera/internal/service"
)

// JobsHandler serves job creation, status, listing, and cancellation.
type JobsHandler struct {
	admission *service.AdmissionService
	jobs      *service.JobService
	users     *service.UserService
	limiter   *service.UserLimiter
}

// NewJobsHandler creates a JobsHandler.
func NewJobsHandler(admission *service.AdmissionService, jobs *service.JobService, users *service.UserService, limiter *service.UserLimiter) *JobsHandler {
	return &JobsHandler{admission: admission, jobs: jobs, users: users, limiter: limiter}
}

// Create handles POST /api/v1/jobs.
func (h *JobsHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	h.rateHeaders(w, r, userID)

	var req service.JobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, domain.CodeInvalidParams, "malformed JSON body")
		return
	}

	ack, err := h.admission.Admit(r.Context(), &req, userID, clientIP(r))
	if err != nil {
		response.DomainError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, ack)
}

// Get handles GET /api/v1/jobs/{id}.
func (h *JobsHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	h.rateHeaders(w, r, userID)

	jobID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, domain.CodeNotFound, "invalid job id")
		return
	}
	view, err := h.jobs.Get(r.Context(), userID, jobID)
	if err != nil {
		response.DomainError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, view)
}

// List handles GET /api/v1/jobs.
func (h *JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	h.rateHeaders(w, r, userID)

	q := r.URL.Query()
	filter := service.ListFilter{
		Status:     q.Get("status"),
		Capability: q.Get("capability"),
	}
	if v := q.Get("limit"); v != "" {
		filter.Limit, _ = strconv.Atoi(v)
	}
	if v := q.Get("offset"); v != "" {
		filter.Offset, _ = strconv.Atoi(v)
	}
	if v := q.Get("since"); v != "" {
		since, err := time.Parse(time.RFC3339, v)
		if err != nil {
			response.Error(w, domain.CodeInvalidParams, "since must be RFC 3339")
			return
		}
		filter.Since = &since
	}

	views, err := h.jobs.List(r.Context(), userID, filter)
	if err != nil {
		response.DomainError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]any{"jobs": views})
}

// Cancel handles DELETE /api/v1/jobs/{id}. Cancelling a job that already
// reached a terminal state returns that state unchanged.
func (h *JobsHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	h.rateHeaders(w, r, userID)

	jobID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, domain.CodeNotFound, "invalid job id")
		return
	}
	view, err := h.jobs.Cancel(r.Context(), userID, jobID)
	if err != nil {
		response.DomainError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, view)
}

// rateHeaders attaches the X-RateLimit-* trio from the caller's window.
func (h *JobsHandler) rateHeaders(w http.ResponseWriter, r *http.Request, userID int) {
	if userID == 0 {
		return
	}
	plan, err := h.users.Plan(r.Context(), userID)
	if err != nil {
		return
	}
	remaining, reset := h.limiter.Snapshot(userID, plan.RequestsPerMinute)
	response.RateLimitHeaders(w, plan.RequestsPerMinute, remaining, reset)
}

// clientIP extracts the caller address without the port.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
