package service

import (
	"math"
	"sync"
	"time"
)

// rateWindow is 60 seconds: plans express limits as requests per minute.
const rateWindow = time.Minute

// UserLimiter is a per-user sliding window over admission requests. State is
// per-process and advisory; quotas enforce the real limits.
type UserLimiter struct {
	mu      sync.Mutex
	windows map[int][]time.Time
}

// NewUserLimiter creates an empty limiter.
func NewUserLimiter() *UserLimiter {
	return &UserLimiter{windows: make(map[int][]time.Time)}
}

// Allow records a request for the user if it fits within limit requests in
// the trailing window. When rejected, retryAfter is the whole seconds until
// the oldest request ages out.
func (l *UserLimiter) Allow(userID, limit int) (ok bool, retryAfter int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	w := l.prune(userID, now)
	if len(w) >= limit {
		wait := rateWindow - now.Sub(w[0])
		return false, int(math.Ceil(wait.Seconds()))
	}
	l.windows[userID] = append(w, now)
	return true, 0
}

// Snapshot reports the remaining budget and the epoch second at which the
// oldest request in the window ages out (now when the window is empty), for
// the X-RateLimit-* response headers.
func (l *UserLimiter) Snapshot(userID, limit int) (remaining int, reset int64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	w := l.prune(userID, now)
	remaining = limit - len(w)
	if remaining < 0 {
		remaining = 0
	}
	if len(w) == 0 {
		return remaining, now.Unix()
	}
	return remaining, w[0].Add(rateWindow).Unix()
}

// prune drops entries older than the window. Caller holds the lock.
func (l *UserLimiter) prune(userID int, now time.Time) []time.Time {
	w := l.windows[userID]
	cutoff := now.Add(-rateWindow)
	i := 0
	for i < len(w) && !w[i].After(cutoff) {
		i++
	}
	if i > 0 {
		w = append(w[:0], w[i:]...)
	}
	if len(w) == 0 {
		delete(l.windows, userID)
	} else {
		l.windows[userID] = w
	}
	return w
}
