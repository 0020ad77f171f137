// Package pkg provides the core libraries for the adcanvas layout and
// compliance engine.
//
// # Overview
//
// Adcanvas adapts canvas ad creatives across ad formats and scores them
// against brand compliance rules. The pkg directory is organized into
// four main areas:
//
//  1. Domain logic - documents, classification, layout, compliance
//  2. Orchestration - the pipeline that ties the stages together
//  3. Infrastructure - caching, storage, HTTP, observability
//  4. Editing - sessions, history, and generation clients
//
// # Architecture
//
// The typical data flow through adcanvas:
//
//	Canvas Document (JSON)
//	         ↓
//	    [canvas/classify] (derive roles and anchors from geometry)
//	         ↓
//	    [layout] (replan for the target format, correct safe zones)
//	         ↓
//	    [compliance] (run the check battery, aggregate the score)
//	         ↓
//	    Resized document + compliance report
//
// # Quick Start
//
// Resize a document and check its compliance:
//
//	import (
//	    "context"
//	    "github.com/brandforge/adcanvas/pkg/io"
//	    "github.com/brandforge/adcanvas/pkg/pipeline"
//	)
//
//	doc, _ := io.ImportJSON("creative.json")
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, _ := runner.Execute(context.Background(), doc, pipeline.Options{
//	    ToFormat: "instagram-story",
//	})
//	fmt.Println("score:", result.Report.Score)
//
// # Main Packages
//
// ## Domain Logic
//
// [canvas] - The document model: objects with geometry, text, and style,
// plus validation and JSON/BSON serialization.
//
// [canvas/classify] - Derives semantic roles (background, logo, headline,
// CTA, decoration) and anchor points from object geometry. Classification
// is recomputed on demand, never stored: geometry is the only source of
// truth.
//
// [layout] - Resize planning and safe-zone correction. Each object's
// transform follows its role: backgrounds scale to cover, logos re-anchor
// to their corner, text reflows proportionally.
//
// [compliance] - The five-check battery (prohibited copy, safe zones,
// logo placement, color contrast, text limits) and the 0-100 score.
//
// [format] - The ad format catalog: dimensions, safe zones, logo rules,
// and text limits, loadable from TOML.
//
// ## Orchestration
//
// [pipeline] - Complete classify → resize → correct → check pipeline used
// by CLI and API. Ensures consistent behavior across all entry points,
// with content-addressed report caching.
//
// ## Infrastructure
//
// [cache] - Cache interface with memory, file, and Redis backends, plus
// deterministic key generation for reports and generation responses.
//
// [store] - Document persistence with memory, file, Redis, and MongoDB
// backends.
//
// [httputil] - Cached HTTP fetching with retry and exponential backoff.
//
// [observability] - Pluggable hooks for engine, cache, and HTTP events.
//
// [errors] - Structured errors with stable machine-readable codes.
//
// ## Editing
//
// [session] - An editing session over a live document: mutations, change
// notifications, undo/redo, and stale-response guarding for asynchronous
// generation.
//
// [history] - Snapshot-based undo/redo with bounded capacity.
//
// [gen] - Clients for the creative generation service, with prompt-level
// caching.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/layout/...     # Specific package
//
// [canvas]: https://pkg.go.dev/github.com/brandforge/adcanvas/pkg/canvas
// [canvas/classify]: https://pkg.go.dev/github.com/brandforge/adcanvas/pkg/canvas/classify
// [layout]: https://pkg.go.dev/github.com/brandforge/adcanvas/pkg/layout
// [compliance]: https://pkg.go.dev/github.com/brandforge/adcanvas/pkg/compliance
// [format]: https://pkg.go.dev/github.com/brandforge/adcanvas/pkg/format
// [pipeline]: https://pkg.go.dev/github.com/brandforge/adcanvas/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/brandforge/adcanvas/pkg/cache
// [store]: https://pkg.go.dev/github.com/brandforge/adcanvas/pkg/store
// [httputil]: https://pkg.go.dev/github.com/brandforge/adcanvas/pkg/httputil
// [observability]: https://pkg.go.dev/github.com/brandforge/adcanvas/pkg/observability
// [errors]: https://pkg.go.dev/github.com/brandforge/adcanvas/pkg/errors
// [session]: https://pkg.go.dev/github.com/brandforge/adcanvas/pkg/session
// [history]: https://pkg.go.dev/github.com/brandforge/adcanvas/pkg/history
// [gen]: https://pkg.go.dev/github.com/brandforge/adcanvas/pkg/gen
package pkg
