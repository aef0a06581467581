package common

import "time"

// CacheInterface is the contract shared by the in-memory and Redis cache
// backends. Sessions are the only state stored through it; entity reads
// always hit the store directly.
type CacheInterface interface {
	// Set stores a value under key for the given duration.
	Set(key string, value interface{}, duration time.Duration)

	// Get retrieves a value by key, reporting whether it was found.
	Get(key string) (interface{}, bool)

	// Delete removes a value by key.
	Delete(key string)

	// Close closes any underlying connections (for Redis, etc.)
	Close() error
}
