package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is a stable, language-independent error code surfaced on the API and
// stored on failed job records.
type Code string

const (
	CodeInvalidParams   Code = "INVALID_PARAMS"
	CodeInvalidPrompt   Code = "INVALID_PROMPT"
	CodeUnauthenticated Code = "UNAUTHENTICATED"
	CodeQuotaExceeded   Code = "QUOTA_EXCEEDED"
	CodeNotFound        Code = "NOT_FOUND"
	CodeModelNotFound   Code = "MODEL_NOT_FOUND"
	CodeStateConflict   Code = "STATE_CONFLICT"
	CodeRateLimited     Code = "RATE_LIMITED"
	CodeWorkerTimeout   Code = "WORKER_TIMEOUT"
	CodeTimeout         Code = "TIMEOUT"
	CodeWorkerError     Code = "WORKER_ERROR"
	CodeOOM             Code = "OOM"
	CodeInternal        Code = "INTERNAL"
)

// HTTPStatus maps a code to its HTTP status.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeInvalidParams, CodeInvalidPrompt:
		return http.StatusBadRequest
	case CodeUnauthenticated:
		return http.StatusUnauthorized
	case CodeQuotaExceeded:
		return http.StatusPaymentRequired
	case CodeNotFound, CodeModelNotFound:
		return http.StatusNotFound
	case CodeStateConflict:
		return http.StatusConflict
	case CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// Retryable reports whether a job that failed with this code may be requeued.
func (c Code) Retryable() bool {
	return c == CodeTimeout || c == CodeWorkerError
}

// Error carries a taxonomy code together with a human-readable message and
// optional detail payload.
type Error struct {
	Code       Code           `json:"code"`
	Message    string         `json:"message"`
	Details    map[string]any `json:"details,omitempty"`
	RetryAfter int            `json:"retry_after,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Errorf builds an *Error with a formatted message.
func Errorf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the taxonomy code from err, defaulting to INTERNAL.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}
