// Package pipeline provides the core layout and compliance pipeline.
//
// This package implements the complete classify → resize → correct →
// check pipeline that can be used by CLI, API, and worker components. By
// centralizing this logic, we ensure consistent behavior across all entry
// points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Classify: Derive semantic roles and anchors from object geometry
//  2. Resize: Replan the layout for the target format
//  3. Correct: Nudge content out of reserved platform bands
//  4. Check: Run the compliance battery and score the result
//
// Each stage can be run independently or as part of the complete pipeline.
// Classification is recomputed at each stage that needs it, never cached on
// objects: geometry is the only source of truth.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    ToFormat: "instagram-story",
//	}
//	result, err := runner.Execute(ctx, doc, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("score:", result.Report.Score)
//
// Run individual stages:
//
//	// Check only, against the document's current size
//	report, err := runner.Check(ctx, doc, formatDesc)
//
//	// Resize only
//	transforms, err := runner.Resize(ctx, doc, formatDesc)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/brandforge/adcanvas/pkg/canvas"
	"github.com/brandforge/adcanvas/pkg/compliance"
	"github.com/brandforge/adcanvas/pkg/errors"
	"github.com/brandforge/adcanvas/pkg/format"
	"github.com/brandforge/adcanvas/pkg/layout"
)

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// ToFormat selects the target format for resizing. Empty skips the
	// resize and correction stages; the compliance check then runs against
	// the format matching FormatID, or the document's own dimensions.
	ToFormat string `json:"to_format,omitempty"`

	// FormatID names the format to check compliance against when ToFormat
	// is empty. Defaults to ToFormat when resizing.
	FormatID string `json:"format_id,omitempty"`

	// SkipCorrect disables the safe-zone correction stage.
	SkipCorrect bool `json:"skip_correct,omitempty"`

	// Refresh bypasses the report cache.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Catalog *format.Catalog `json:"-"`
	Logger  *log.Logger     `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Document is the pipeline's working copy after all stages. The input
	// document is never mutated.
	Document *canvas.CanvasDocument

	// DocHash is the content hash of the final document.
	DocHash string

	// Transforms are the per-object resize decisions (empty when the
	// resize stage was skipped).
	Transforms []layout.Transform

	// Corrections are the safe-zone nudges that were applied.
	Corrections []layout.Correction

	// Report is the compliance report for the final document.
	Report compliance.Report

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ObjectCount  int
	ClassifyTime time.Duration
	ResizeTime   time.Duration
	CheckTime    time.Duration
}

// CacheInfo tracks cache hits for the pipeline.
type CacheInfo struct {
	ReportHit bool // Whether the compliance report came from cache
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same
// effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.ToFormat != "" {
		if err := errors.ValidateFormatID(o.ToFormat); err != nil {
			return err
		}
		if o.FormatID == "" {
			o.FormatID = o.ToFormat
		}
	}
	if o.FormatID != "" {
		if err := errors.ValidateFormatID(o.FormatID); err != nil {
			return err
		}
	}

	if o.Catalog == nil {
		o.Catalog = format.Default()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// targetFormat resolves the descriptor the compliance stage checks against.
// With no format configured at all, a synthetic descriptor matching the
// document's own dimensions is used.
func (o *Options) targetFormat(doc *canvas.CanvasDocument) (format.Descriptor, error) {
	if o.FormatID != "" {
		return o.Catalog.Get(o.FormatID)
	}
	return format.Descriptor{
		ID:     "document",
		Name:   "Document dimensions",
		Width:  doc.Width,
		Height: doc.Height,
	}, nil
}
