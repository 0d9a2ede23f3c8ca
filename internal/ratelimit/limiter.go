package ratelimit

import "time"

const (
	// DefaultWindow is the sliding window length
	DefaultWindow = time.Hour
	// DefaultMaxRequests is the request cap within the window
	DefaultMaxRequests = 20
)

// Decision is the outcome of a rate-limit check
type Decision struct {
	Allowed   bool
	Remaining int
	ResetTime time.Time
}

// Limiter caps triage requests per user identity within a sliding
// window. Every check re-evaluates against "now", so the cutoff moves
// continuously rather than resetting at bucket edges. On any store
// failure the limiter fails open: availability of health guidance is
// prioritized over strict quota enforcement.
type Limiter struct {
	store  CounterStore
	window time.Duration
	max    int
	now    func() time.Time // Injectable for tests
}

// NewLimiter creates a limiter over the given store
func NewLimiter(store CounterStore, window time.Duration, maxRequests int) *Limiter {
	if window <= 0 {
		window = DefaultWindow
	}
	if maxRequests <= 0 {
		maxRequests = DefaultMaxRequests
	}
	return &Limiter{
		store:  store,
		window: window,
		max:    maxRequests,
		now:    time.Now,
	}
}

// Allow checks the quota for userID and, when allowed, records the
// request as accepted.
func (l *Limiter) Allow(userID string) Decision {
	now := l.now()
	resetTime := now.Add(l.window)

	count, err := l.store.CountSince(userID, now.Add(-l.window))
	if err != nil {
		// Fail open: a broken counter store must not block guidance.
		return Decision{Allowed: true, Remaining: l.max, ResetTime: resetTime}
	}

	remaining := l.max - count
	if remaining < 0 {
		remaining = 0
	}

	if count >= l.max {
		return Decision{Allowed: false, Remaining: 0, ResetTime: resetTime}
	}

	// Record failures are ignored for the same fail-open reason.
	_ = l.store.Record(userID, now)

	return Decision{Allowed: true, Remaining: remaining, ResetTime: resetTime}
}
