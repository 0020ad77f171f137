package store

import (
	"context"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/brandforge/adcanvas/pkg/canvas"
	"github.com/brandforge/adcanvas/pkg/errors"
	canvasio "github.com/brandforge/adcanvas/pkg/io"
)

// FileStore keeps one JSON file per document in a directory.
// Document IDs are validated before touching the filesystem, so a crafted
// ID cannot escape the store directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-backed store in dir, creating it if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "failed to create store directory %s", dir)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the store directory.
func (s *FileStore) Dir() string { return s.dir }

// Put writes the document to <dir>/<id>.json.
func (s *FileStore) Put(ctx context.Context, doc *canvas.CanvasDocument) error {
	if err := errors.ValidateDocumentID(doc.ID); err != nil {
		return err
	}
	if err := canvasio.ExportJSON(doc, s.path(doc.ID)); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "failed to write document %q", doc.ID)
	}
	return nil
}

// Get reads and validates the document at <dir>/<id>.json.
func (s *FileStore) Get(ctx context.Context, id string) (*canvas.CanvasDocument, error) {
	if err := errors.ValidateDocumentID(id); err != nil {
		return nil, err
	}

	doc, err := canvasio.ImportJSON(s.path(id))
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.New(errors.ErrCodeDocumentNotFound, "document %q not found", id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "failed to read document %q", id)
	}
	return doc, nil
}

// List returns the IDs of all stored documents in sorted order.
func (s *FileStore) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "failed to list store directory")
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(ids)
	return ids, nil
}

// Delete removes the document file. Deleting an unknown ID is not an error.
func (s *FileStore) Delete(ctx context.Context, id string) error {
	if err := errors.ValidateDocumentID(id); err != nil {
		return err
	}
	err := os.Remove(s.path(id))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeStore, err, "failed to delete document %q", id)
	}
	return nil
}

// Close does nothing for the file store.
func (s *FileStore) Close(ctx context.Context) error { return nil }

func (s *FileStore) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
