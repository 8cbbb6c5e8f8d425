package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/tesseralabs/tessera/internal/domain"
)

// storageBackoff is the bounded retry schedule for transient storage
// failures before surfacing INTERNAL.
var storageBackoff = []time.Duration{100 * time.Millisecond, 400 * time.Millisecond, 1600 * time.Millisecond}

// withStorageRetry runs fn once and retries it up to three more times,
// backing off 100/400/1600 ms between attempts.
// Domain errors (client faults, quota, conflicts) never retry.
func withStorageRetry(ctx context.Context, logger *slog.Logger, op string, fn func() error) error {
	var err error
	for attempt := 0; ; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}
		var de *domain.Error
		if errors.As(err, &de) {
			return err
		}
		if attempt >= len(storageBackoff) {
			break
		}
		logger.Warn("transient storage error, retrying",
			"op", op, "attempt", attempt+1, "error", err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(storageBackoff[attempt]):
		}
	}
	logger.Error("storage retries exhausted", "op", op, "error", err)
	return domain.Errorf(domain.CodeInternal, "storage unavailable")
}
