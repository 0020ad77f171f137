package store

import (
	"context"
	"sort"
	"sync"

	"github.com/brandforge/adcanvas/pkg/canvas"
	"github.com/brandforge/adcanvas/pkg/errors"
)

// MemoryStore is an in-process document store backed by a map.
// Safe for concurrent use.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]*canvas.CanvasDocument
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]*canvas.CanvasDocument)}
}

// Put stores a deep copy of the document.
func (s *MemoryStore) Put(ctx context.Context, doc *canvas.CanvasDocument) error {
	if err := errors.ValidateDocumentID(doc.ID); err != nil {
		return err
	}
	s.mu.Lock()
	s.docs[doc.ID] = doc.Clone()
	s.mu.Unlock()
	return nil
}

// Get returns a deep copy of the stored document.
func (s *MemoryStore) Get(ctx context.Context, id string) (*canvas.CanvasDocument, error) {
	s.mu.RLock()
	doc, ok := s.docs[id]
	s.mu.RUnlock()

	if !ok {
		return nil, errors.New(errors.ErrCodeDocumentNotFound, "document %q not found", id)
	}
	return doc.Clone(), nil
}

// List returns the stored document IDs in sorted order.
func (s *MemoryStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	ids := make([]string, 0, len(s.docs))
	for id := range s.docs {
		ids = append(ids, id)
	}
	s.mu.RUnlock()

	sort.Strings(ids)
	return ids, nil
}

// Delete removes a document. Deleting an unknown ID is not an error.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	delete(s.docs, id)
	s.mu.Unlock()
	return nil
}

// Close releases the document map.
func (s *MemoryStore) Close(ctx context.Context) error {
	s.mu.Lock()
	s.docs = make(map[string]*canvas.CanvasDocument)
	s.mu.Unlock()
	return nil
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
