// Package cache stores solved puzzle answers so repeated runs on the same
// input skip the solver.
//
// # Backends
//
// [FileCache] keeps one JSON file per entry under a directory, spread over
// 256 subdirectories by key hash. [NullCache] never stores anything and is
// used when caching is disabled.
//
// # Keys
//
// A [Keyer] builds keys from the year, the day and a [Hash] of the puzzle
// input. [NewScopedKeyer] prefixes every key, which the CLI uses to keep
// answers from different builds apart.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the data stored under key. A missing or expired entry is
	// reported as a miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero or less never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}
