// Package cache stores computed layouts and rendered artifacts.
//
// Entries are addressed by string keys built with a [Keyer] and carry an
// optional time-to-live. The CLI uses [FileCache] under the user cache
// directory; [NullCache] disables caching entirely.
package cache

import (
	"context"
	"time"
)

// Time-to-live values for the two cached stages.
const (
	// TTLLayout is how long a computed layout stays cached. Layouts are a
	// pure function of the text and options, so the bound only limits disk use.
	TTLLayout = 7 * 24 * time.Hour

	// TTLArtifact is how long a rendered SVG or JSON document stays cached.
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte-oriented key/value store.
type Cache interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}
