// Package cache stores recorded sorting traces between runs.
//
// Recording a trace is cheap, but replaying the same (algorithm, input)
// pair from the CLI and the HTTP server should hand out the same trace,
// including its ID. The [Cache] interface has two implementations:
//
//   - [FileCache]: JSON files under the XDG cache directory (CLI)
//   - [NullCache]: never stores anything (--no-cache, tests)
//
// Keys are produced by a [Keyer] so callers never build them by hand.
package cache

import (
	"context"
	"time"
)

// TTLTrace is how long a recorded trace stays valid.
const TTLTrace = 7 * 24 * time.Hour

// Cache is a byte-oriented key/value store with expiration.
type Cache interface {
	// Get returns the stored value and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// TraceKeyOpts identifies the input of a recorded trace.
type TraceKeyOpts struct {
	Algorithm string `json:"algorithm"`
	Size      int    `json:"size"`
	Seed      uint64 `json:"seed"`
	// InputHash is set when the input was given explicitly rather than
	// generated from Size and Seed.
	InputHash string `json:"input_hash,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	TraceKey(opts TraceKeyOpts) string
}

// DefaultKeyer produces "trace:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// TraceKey hashes every field of opts.
func (DefaultKeyer) TraceKey(opts TraceKeyOpts) string {
	return hashKey("trace", opts)
}
