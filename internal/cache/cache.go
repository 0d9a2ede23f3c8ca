package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for short-lived lookup caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a namespaced cache key from a lookup string
func Key(lookup string) string {
	hash := sha256.Sum256([]byte(lookup))
	return "swasthya:v1:" + hex.EncodeToString(hash[:])
}
