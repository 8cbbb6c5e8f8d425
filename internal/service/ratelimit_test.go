package service

import (
	"testing"
	"time"
)

func TestUserLimiter_AllowUpToLimit(t *testing.T) {
	l := NewUserLimiter()

	for i := 0; i < 5; i++ {
		if ok, _ := l.Allow(1, 5); !ok {
			t.Fatalf("request %d rejected under the limit", i+1)
		}
	}
	ok, retryAfter := l.Allow(1, 5)
	if ok {
		t.Fatal("sixth request allowed over a limit of 5")
	}
	if retryAfter <= 0 || retryAfter > 60 {
		t.Errorf("retry_after = %d, want within (0, 60]", retryAfter)
	}
}

func TestUserLimiter_UsersIsolated(t *testing.T) {
	l := NewUserLimiter()

	l.Allow(1, 1)
	if ok, _ := l.Allow(1, 1); ok {
		t.Fatal("user 1 allowed over limit")
	}
	if ok, _ := l.Allow(2, 1); !ok {
		t.Fatal("user 2 throttled by user 1's window")
	}
}

func TestUserLimiter_WindowSlides(t *testing.T) {
	l := NewUserLimiter()

	l.Allow(1, 1)
	// Age the recorded request past the window (white box).
	l.mu.Lock()
	l.windows[1][0] = time.Now().Add(-rateWindow - time.Second)
	l.mu.Unlock()

	if ok, _ := l.Allow(1, 1); !ok {
		t.Fatal("request rejected after the window slid")
	}
}

func TestUserLimiter_Snapshot(t *testing.T) {
	l := NewUserLimiter()

	remaining, _ := l.Snapshot(1, 5)
	if remaining != 5 {
		t.Errorf("fresh remaining = %d, want 5", remaining)
	}

	l.Allow(1, 5)
	l.Allow(1, 5)
	remaining, reset := l.Snapshot(1, 5)
	if remaining != 3 {
		t.Errorf("remaining = %d, want 3", remaining)
	}
	if reset < time.Now().Unix() {
		t.Errorf("reset %d is in the past", reset)
	}
}
