package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/tesseralabs/tessera/internal/api/middleware"
	"github.com/tesseralabs/tessera/internal/api/response"
	"github.com/tesseralabs/tessera/internal/auth"
	"github.com/tesseralabs/tessera/internal/domain"
	"github.com/tesseralabs/tessera/internal/service"
)

// UserHandler serves user profile, usage history, and token exchange.
type UserHandler struct {
	users *service.UserService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Me handles GET /api/v1/user/me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	profile, err := h.users.Me(r.Context(), userID)
	if err != nil {
		response.DomainError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, profile)
}

// Usage handles GET /api/v1/user/usage.
func (h *UserHandler) Usage(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	days, _ := strconv.Atoi(r.URL.Query().Get("days"))
	history, err := h.users.UsageHistory(r.Context(), userID, days)
	if err != nil {
		response.DomainError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]any{"usage": history})
}

// Token handles POST /api/v1/auth/token: exchanges a Bearer API key for a
// short-lived session JWT.
func (h *UserHandler) Token(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	key := strings.TrimPrefix(authHeader, "Bearer ")
	if key == authHeader || !auth.LooksLikeAPIKey(key) {
		response.Error(w, domain.CodeUnauthenticated, "API key required")
		return
	}
	token, err := h.users.ExchangeToken(r.Context(), key)
	if err != nil {
		response.DomainError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{
		"token":      token,
		"token_type": "Bearer",
	})
}
