package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/tesseralabs/tessera/internal/domain"
)

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// errorBody is the envelope for every error response.
type errorBody struct {
	Error struct {
		Code       string         `json:"code"`
		Message    string         `json:"message"`
		Details    map[string]any `json:"details,omitempty"`
		RetryAfter int            `json:"retry_after,omitempty"`
	} `json:"error"`
}

// Error writes a JSON error response with an explicit code.
func Error(w http.ResponseWriter, code domain.Code, message string) {
	var body errorBody
	body.Error.Code = string(code)
	body.Error.Message = message
	JSON(w, code.HTTPStatus(), body)
}

// DomainError maps an error to its taxonomy code and writes it. Non-domain
// errors surface as INTERNAL without leaking details.
func DomainError(w http.ResponseWriter, err error) {
	var de *domain.Error
	if !errors.As(err, &de) {
		Error(w, domain.CodeInternal, "internal error")
		return
	}
	var body errorBody
	body.Error.Code = string(de.Code)
	body.Error.Message = de.Message
	body.Error.Details = de.Details
	body.Error.RetryAfter = de.RetryAfter
	if de.RetryAfter > 0 {
		w.Header().Set("Retry-After", strconv.Itoa(de.RetryAfter))
	}
	JSON(w, de.Code.HTTPStatus(), body)
}

// RateLimitHeaders sets the X-RateLimit-* trio on a response.
func RateLimitHeaders(w http.ResponseWriter, limit, remaining int, reset int64) {
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(reset, 10))
}
