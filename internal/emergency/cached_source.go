package emergency

import (
	"context"
	"encoding/json"
	"time"

	"github.com/swasthyabot/swasthya/internal/cache"
	"github.com/swasthyabot/swasthya/internal/model"
)

// CachedSource wraps a KeywordSource with a TTL cache so repeated
// lookups for the same text do not touch the collaborator. Misses are
// cached too; a stale "no match" is acceptable because the static tiers
// are always checked first.
type CachedSource struct {
	source KeywordSource
	cache  cache.Cache
	ttl    time.Duration
}

// NewCachedSource creates a caching wrapper around source
func NewCachedSource(source KeywordSource, c cache.Cache, ttl time.Duration) *CachedSource {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachedSource{source: source, cache: c, ttl: ttl}
}

// Lookup implements KeywordSource
func (s *CachedSource) Lookup(ctx context.Context, text, language string) (*model.EmergencyKeyword, error) {
	key := cache.Key(language + ":" + text)

	if data, found := s.cache.Get(key); found {
		if len(data) == 0 {
			return nil, nil
		}
		var keyword model.EmergencyKeyword
		if err := json.Unmarshal(data, &keyword); err == nil {
			return &keyword, nil
		}
		// Corrupt entry: fall through to a fresh lookup.
	}

	keyword, err := s.source.Lookup(ctx, text, language)
	if err != nil {
		return nil, err
	}

	if keyword == nil {
		_ = s.cache.Set(key, nil, s.ttl)
		return nil, nil
	}

	if data, err := json.Marshal(keyword); err == nil {
		_ = s.cache.Set(key, data, s.ttl)
	}
	return keyword, nil
}
