package cache

import (
	"context"
	"time"
)

// Backend is the storage interface behind the widget caches.
// Implementations: MemoryCache here, RedisCache in the main package.
type Backend interface {
	// Get retrieves a value. Returns (value, found, error); a miss is not
	// an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend's resources.
	Close() error
}
