package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/tesseralabs/tessera/internal/api/response"
	"github.com/tesseralabs/tessera/internal/domain"
)

// WorkerAuth returns middleware that validates the X-Tessera-Worker-Key
// header on internal routes against the fleet's shared secret.
func WorkerAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get("X-Tessera-Worker-Key")
			if key == "" {
				response.Error(w, domain.CodeUnauthenticated, "missing worker key")
				return
			}
			if subtle.ConstantTimeCompare([]byte(key), []byte(secret)) != 1 {
				response.Error(w, domain.CodeUnauthenticated, "invalid worker key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
