// Package io provides JSON import and export for canvas documents.
//
// # Overview
//
// This package serializes canvas documents to and from JSON. The format is
// designed for:
//
//   - Interchange with canvas editors that produce or consume object lists
//   - Storing document snapshots on disk for later resizing or auditing
//   - Round-trip preservation: import, transform, export, and re-import identically
//
// # JSON Format
//
// A document is a JSON object with its pixel dimensions, a background color,
// and an ordered array of objects:
//
//	{
//	  "id": "summer-sale",
//	  "width": 1080,
//	  "height": 1080,
//	  "background_color": "#ffffff",
//	  "objects": [
//	    {"id": "bg", "kind": "image", "left": 0, "top": 0, "width": 1080, "height": 1080},
//	    {"id": "headline", "kind": "text", "text": "New collection", "font_size": 48,
//	     "left": 120, "top": 400, "width": 840, "height": 120, "fill": "#111111"}
//	  ]
//	}
//
// Object roles and anchors are never part of the format: they are derived
// from geometry on every read, so a document edited elsewhere cannot carry
// stale classifications.
//
// # Import
//
// Use [ImportJSON] to read a document from a file path, or [ReadJSON] to
// read from any io.Reader:
//
//	doc, err := io.ImportJSON("creative.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Both functions apply object defaults (unit scale, full opacity, top-left
// origins) and validate structural invariants: positive canvas dimensions,
// unique object IDs, sane sizes and scales. Errors are wrapped with context
// about which object caused the problem.
//
// # Export
//
// Use [ExportJSON] to write a document to a file, or [WriteJSON] to write to
// any io.Writer:
//
//	err := io.ExportJSON(doc, "output.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The export preserves object order and all styling fields, enabling full
// round-trip fidelity.
//
// # Concurrency
//
// All functions in this package are safe to call concurrently with other
// readers of the same document, but not with concurrent modifications.
// [ReadJSON] and [ImportJSON] return independent document instances that can
// be modified freely after import.
package io
