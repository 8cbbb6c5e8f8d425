package middleware

import (
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel/trace"
)

// TraceLog returns middleware that logs each request with trace correlation
// ids when a span is active.
func TraceLog(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			l := logger
			span := trace.SpanFromContext(r.Context())
			if span.SpanContext().IsValid() {
				l = l.With(
					"trace_id", span.SpanContext().TraceID().String(),
					"span_id", span.SpanContext().SpanID().String(),
				)
			}
			l.Debug("request", "method", r.Method, "path", r.URL.Path)
			next.ServeHTTP(w, r)
		})
	}
}
