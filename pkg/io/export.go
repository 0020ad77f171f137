package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/brandforge/adcanvas/pkg/canvas"
)

// WriteJSON encodes a document as indented JSON and writes it to w.
// The output preserves object order and all styling fields and can be
// re-imported with [ReadJSON] for round-trip processing.
func WriteJSON(doc *canvas.CanvasDocument, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a document to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(doc *canvas.CanvasDocument, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(doc, f)
}
