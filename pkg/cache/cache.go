// Package cache provides result caching for edgewalk algorithm runs.
//
// Algorithm output is a pure function of (graph, operation, start node), so a
// run's textual result can be cached under a key derived from the canonical
// edge list. For the traversals this is a minor convenience; for
// Bron–Kerbosch, which is worst-case exponential, it is the difference
// between instant and unbounded on a repeated query.
//
// Three backends implement [Cache]:
//   - [FileCache]: JSON entries under a directory, for CLI usage
//   - [RedisCache]: shared cache for the HTTP server
//   - [NullCache]: no-op, for --no-cache and tests
package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long cached results stay valid. Results never go stale
// on their own (same input, same output), but bounded retention keeps the
// cache directory from accumulating one entry per graph ever seen.
const DefaultTTL = 7 * 24 * time.Hour

// Cache is the interface all cache backends implement.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ResultKey builds the cache key for an algorithm run.
// fingerprint is the canonical edge-list hash of the graph, op the operation
// tag, start the start node ID (ignored by operations without one, but kept
// in the key so BFS(1) and BFS(2) never collide).
func ResultKey(fingerprint, op string, start int) string {
	return hashKey("result", fingerprint, op, start)
}
