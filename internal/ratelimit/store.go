package ratelimit

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// CounterStore records accepted requests per user identity. It is the
// only cross-request shared state in the engine; implementations must
// support concurrent use. Slightly stale counts are acceptable.
type CounterStore interface {
	// Record notes an accepted request for userID at the given time.
	Record(userID string, at time.Time) error

	// CountSince returns how many recorded requests for userID have a
	// timestamp at or after since.
	CountSince(userID string, since time.Time) (int, error)

	// Reset forgets all recorded requests for userID.
	Reset(userID string) error
}

// MemoryStore keeps per-user timestamp slices in a TTL cache. Entries
// expire at twice the window so CountSince never sees anything older
// than it could possibly need.
type MemoryStore struct {
	mu    sync.Mutex
	cache *gocache.Cache
	ttl   time.Duration
}

// NewMemoryStore creates an in-process counter store sized for window
func NewMemoryStore(window time.Duration) *MemoryStore {
	if window <= 0 {
		window = time.Hour
	}
	return &MemoryStore{
		cache: gocache.New(2*window, window),
		ttl:   2 * window,
	}
}

// Record implements CounterStore
func (s *MemoryStore) Record(userID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stamps []time.Time
	if val, found := s.cache.Get(userID); found {
		stamps = val.([]time.Time)
	}

	// Drop entries that can no longer matter to keep slices bounded.
	cutoff := at.Add(-s.ttl)
	kept := stamps[:0]
	for _, stamp := range stamps {
		if stamp.After(cutoff) {
			kept = append(kept, stamp)
		}
	}

	kept = append(kept, at)
	s.cache.Set(userID, kept, s.ttl)
	return nil
}

// CountSince implements CounterStore
func (s *MemoryStore) CountSince(userID string, since time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	val, found := s.cache.Get(userID)
	if !found {
		return 0, nil
	}

	count := 0
	for _, stamp := range val.([]time.Time) {
		if !stamp.Before(since) {
			count++
		}
	}
	return count, nil
}

// Reset implements CounterStore
func (s *MemoryStore) Reset(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Delete(userID)
	return nil
}
