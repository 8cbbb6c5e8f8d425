package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/tesseralabs/tessera/internal/api/response"
	"github.com/tesseralabs/tessera/internal/auth"
	"github.com/tesseralabs/tessera/internal/domain"
)

type contextKey string

const userIDKey contextKey = "user_id"

// KeyResolver resolves a Bearer API key to a user id.
type KeyResolver interface {
	AuthenticateKey(ctx context.Context, key string) (int, error)
}

// UserAuth returns middleware for the public API. Credentials are carried
// in Authorization: Bearer and can be either a 64-char API key or a session
// JWT obtained from the token exchange endpoint.
func UserAuth(jwtSecret string, keys KeyResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				response.Error(w, domain.CodeUnauthenticated, "authentication required")
				return
			}
			credential := strings.TrimPrefix(authHeader, "Bearer ")

			if auth.LooksLikeAPIKey(credential) {
				userID, err := keys.AuthenticateKey(r.Context(), credential)
				if err != nil {
					response.Error(w, domain.CodeUnauthenticated, "invalid API key")
					return
				}
				ctx := context.WithValue(r.Context(), userIDKey, userID)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			claims, err := auth.ValidateToken(jwtSecret, credential)
			if err != nil {
				response.Error(w, domain.CodeUnauthenticated, "invalid token")
				return
			}
			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext returns the authenticated user's id, or 0 if not set.
func UserIDFromContext(ctx context.Context) int {
	if id, ok := ctx.Value(userIDKey).(int); ok {
		return id
	}
	return 0
}

// WithTestUser injects a user id into the context (tests only).
func WithTestUser(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}
