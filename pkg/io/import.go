package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/brandforge/adcanvas/pkg/canvas"
)

// ReadJSON decodes a JSON document from r.
//
// Object defaults are applied after decoding (unit scale, full opacity,
// top-left origins), so sparse documents from other editors import cleanly.
//
// ReadJSON returns an error if:
//   - The JSON is malformed
//   - The canvas dimensions are not positive
//   - An object has a duplicate or empty ID, a negative size, or a
//     non-positive scale
//
// Errors name the object that caused the problem. The returned document is
// independent of r and can be modified
// safely after ReadJSON returns. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*canvas.CanvasDocument, error) {
	var doc canvas.CanvasDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	doc.ApplyDefaults()
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ImportJSON reads a JSON file at path and returns the decoded document.
//
// ImportJSON opens the file, decodes it using [ReadJSON], and closes the
// file. The error wraps the underlying cause with the file path for
// context. It returns the same validation errors as [ReadJSON].
func ImportJSON(path string) (*canvas.CanvasDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	doc, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	return doc, nil
}
