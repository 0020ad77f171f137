// Package cache provides pluggable byte caches and deterministic cache keys
// for expensive engine results.
//
// Two kinds of data pass through here: compliance reports, keyed by the
// document content hash plus the format they were evaluated against, and
// generation responses, keyed by the prompt that produced them. Both are
// immutable once computed, which makes them safe to cache aggressively.
//
// # Backends
//
// Four Cache implementations cover the deployment spectrum:
//   - MemoryCache: per-process, for tests and short-lived tools
//   - FileCache: on-disk, for the CLI
//   - RedisCache: shared, for the hosted API
//   - NullCache: disabled caching
package cache

import (
	"context"
	"time"
)

// Key type labels reported to observability hooks.
const (
	KeyTypeReport     = "report"
	KeyTypeGeneration = "generation"
	KeyTypeDocument   = "document"
)

// Cache is a byte-oriented cache with TTL support.
//
// Get returns (data, true, nil) on a hit and (nil, false, nil) on a clean
// miss; the error return is reserved for backend failures.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Keyer builds cache keys for the engine's cacheable results.
type Keyer interface {
	// ReportKey identifies a compliance report by the hash of the document
	// it scored and the format it was scored against.
	ReportKey(docHash, formatID string) string

	// GenerationKey identifies a generation response by its prompt.
	GenerationKey(prompt string) string

	// DocumentKey identifies a stored document snapshot.
	DocumentKey(documentID string) string
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ReportKey generates a key for compliance report caching.
func (k *DefaultKeyer) ReportKey(docHash, formatID string) string {
	return hashKey(KeyTypeReport, docHash, formatID)
}

// GenerationKey generates a key for generation response caching.
func (k *DefaultKeyer) GenerationKey(prompt string) string {
	return hashKey(KeyTypeGeneration, prompt)
}

// DocumentKey generates a key for document snapshot caching.
func (k *DefaultKeyer) DocumentKey(documentID string) string {
	return hashKey(KeyTypeDocument, documentID)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
