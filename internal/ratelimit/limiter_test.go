package ratelimit

import (
	"errors"
	"testing"
	"time"
)

// failingStore implements CounterStore and always errors
type failingStore struct{}

func (failingStore) Record(string, time.Time) error            { return errors.New("store down") }
func (failingStore) CountSince(string, time.Time) (int, error) { return 0, errors.New("store down") }
func (failingStore) Reset(string) error                        { return errors.New("store down") }

func newTestLimiter(window time.Duration, max int) (*Limiter, *time.Time) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	limiter := NewLimiter(NewMemoryStore(window), window, max)
	limiter.now = func() time.Time { return now }
	return limiter, &now
}

func TestLimiter_AllowsUpToMax(t *testing.T) {
	limiter, _ := newTestLimiter(time.Hour, 3)

	for i := 0; i < 3; i++ {
		decision := limiter.Allow("user-1")
		if !decision.Allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
		if decision.Remaining != 3-i {
			t.Errorf("request %d: expected remaining %d, got %d", i+1, 3-i, decision.Remaining)
		}
	}

	decision := limiter.Allow("user-1")
	if decision.Allowed {
		t.Error("request over the cap should be denied")
	}
	if decision.Remaining != 0 {
		t.Errorf("expected remaining 0, got %d", decision.Remaining)
	}
	if decision.ResetTime.IsZero() {
		t.Error("denied decision must carry a reset time")
	}
}

func TestLimiter_WindowSlides(t *testing.T) {
	limiter, now := newTestLimiter(time.Hour, 2)

	limiter.Allow("user-1")
	limiter.Allow("user-1")
	if limiter.Allow("user-1").Allowed {
		t.Fatal("third request inside window should be denied")
	}

	// Advance past the window; earlier requests no longer count.
	*now = now.Add(61 * time.Minute)
	if !limiter.Allow("user-1").Allowed {
		t.Error("request after window elapsed should be allowed")
	}
}

func TestLimiter_PerUserIsolation(t *testing.T) {
	limiter, _ := newTestLimiter(time.Hour, 1)

	limiter.Allow("user-1")
	if limiter.Allow("user-1").Allowed {
		t.Error("user-1 should be limited")
	}
	if !limiter.Allow("user-2").Allowed {
		t.Error("user-2 must not share user-1's quota")
	}
}

func TestLimiter_FailsOpenOnStoreError(t *testing.T) {
	limiter := NewLimiter(failingStore{}, time.Hour, 1)

	for i := 0; i < 5; i++ {
		if !limiter.Allow("user-1").Allowed {
			t.Fatal("limiter must fail open when the store errors")
		}
	}
}

func TestLimiter_Defaults(t *testing.T) {
	limiter := NewLimiter(NewMemoryStore(0), 0, 0)
	if limiter.window != DefaultWindow {
		t.Errorf("expected default window, got %v", limiter.window)
	}
	if limiter.max != DefaultMaxRequests {
		t.Errorf("expected default max, got %d", limiter.max)
	}
}

func TestMemoryStore_Reset(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	now := time.Now()

	_ = store.Record("user-1", now)
	_ = store.Record("user-1", now)
	if err := store.Reset("user-1"); err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	count, err := store.CountSince("user-1", now.Add(-time.Hour))
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 after reset, got %d", count)
	}
}

func TestMemoryStore_CountSinceCutoffInclusive(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	now := time.Now()

	_ = store.Record("user-1", now.Add(-2*time.Hour)) // outside
	_ = store.Record("user-1", now.Add(-30*time.Minute))
	_ = store.Record("user-1", now)

	count, err := store.CountSince("user-1", now.Add(-time.Hour))
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 in-window requests, got %d", count)
	}
}
