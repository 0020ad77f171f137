// Package store persists canvas documents.
//
// A Store holds the latest saved state of each document, keyed by document
// ID. It is deliberately not a history: undo state lives in the editing
// session, and only committed documents reach the store.
//
// # Backends
//
//   - MemoryStore: per-process, for tests and ephemeral tooling
//   - FileStore: one JSON file per document, for the CLI
//   - RedisStore: shared volatile storage for the hosted API
//   - MongoStore: durable storage for the hosted API
package store

import (
	"context"

	"github.com/brandforge/adcanvas/pkg/canvas"
)

// Store is a keyed document repository.
//
// Get returns a DOCUMENT_NOT_FOUND error for unknown IDs. Put overwrites
// any previous state of the same document. Implementations return deep
// copies; mutating a returned document never affects stored state.
type Store interface {
	Put(ctx context.Context, doc *canvas.CanvasDocument) error
	Get(ctx context.Context, id string) (*canvas.CanvasDocument, error)
	List(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, id string) error
	Close(ctx context.Context) error
}
