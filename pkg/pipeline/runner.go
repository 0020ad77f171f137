package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/brandforge/adcanvas/pkg/cache"
	"github.com/brandforge/adcanvas/pkg/canvas"
	"github.com/brandforge/adcanvas/pkg/canvas/classify"
	"github.com/brandforge/adcanvas/pkg/compliance"
	"github.com/brandforge/adcanvas/pkg/format"
	"github.com/brandforge/adcanvas/pkg/layout"
	"github.com/brandforge/adcanvas/pkg/observability"
)

// Runner encapsulates pipeline execution with report caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different documents.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If c is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete classify → resize → correct → check pipeline.
// The input document is cloned; the caller's copy is never mutated.
func (r *Runner) Execute(ctx context.Context, doc *canvas.CanvasDocument, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	work := doc.Clone()
	result := &Result{Document: work}
	result.Stats.ObjectCount = len(work.Objects)

	// Stage 1: Classify
	classifyStart := time.Now()
	observability.Engine().OnClassifyStart(ctx, work.ID, len(work.Objects))
	cls := classify.Objects(work.Objects, work.Width, work.Height)
	result.Stats.ClassifyTime = time.Since(classifyStart)
	observability.Engine().OnClassifyComplete(ctx, work.ID, len(work.Objects), result.Stats.ClassifyTime)

	opts.Logger.Debug("classified objects", "count", len(cls))

	// Stage 2 and 3: Resize and correct, when a target format is set
	if opts.ToFormat != "" {
		target, err := opts.Catalog.Get(opts.ToFormat)
		if err != nil {
			return nil, err
		}

		resizeStart := time.Now()
		observability.Engine().OnResizeStart(ctx, "document", target.ID, len(work.Objects))

		from := layout.Size{Width: work.Width, Height: work.Height}
		to := layout.Size{Width: target.Width, Height: target.Height}
		result.Transforms = layout.PlanResize(work.Objects, cls, from, to)
		layout.Apply(work, result.Transforms)
		work.Width = target.Width
		work.Height = target.Height

		if !opts.SkipCorrect {
			// Roles shift with the new geometry, so reclassify first.
			cls = classify.Objects(work.Objects, work.Width, work.Height)
			result.Corrections = layout.CorrectSafeZones(work.Objects, cls, work.Height, target.SafeZone.Top, target.SafeZone.Bottom)
		}

		result.Stats.ResizeTime = time.Since(resizeStart)
		observability.Engine().OnResizeComplete(ctx, "document", target.ID, len(work.Objects), result.Stats.ResizeTime, nil)

		opts.Logger.Info("resized document",
			"format", target.ID,
			"transforms", len(result.Transforms),
			"corrections", len(result.Corrections),
			"duration", result.Stats.ResizeTime)
	}

	// Stage 4: Check
	target, err := opts.targetFormat(work)
	if err != nil {
		return nil, err
	}

	checkStart := time.Now()
	report, hit, err := r.CheckWithCacheInfo(ctx, work, target, opts.Refresh)
	if err != nil {
		return nil, err
	}
	result.Report = report
	result.CacheInfo.ReportHit = hit
	result.Stats.CheckTime = time.Since(checkStart)
	result.DocHash = docHash(work)

	opts.Logger.Info("checked compliance",
		"format", target.ID,
		"score", report.Score,
		"cached", hit,
		"duration", result.Stats.CheckTime)

	return result, nil
}

// Check runs the compliance battery against a document without resizing.
func (r *Runner) Check(ctx context.Context, doc *canvas.CanvasDocument, fd format.Descriptor) (compliance.Report, error) {
	report, _, err := r.CheckWithCacheInfo(ctx, doc, fd, false)
	return report, err
}

// CheckWithCacheInfo runs the compliance battery with report caching and
// returns cache hit info. The cache key covers the document content and
// the format, so any edit or format switch misses cleanly.
func (r *Runner) CheckWithCacheInfo(ctx context.Context, doc *canvas.CanvasDocument, fd format.Descriptor, refresh bool) (compliance.Report, bool, error) {
	cacheKey := r.Keyer.ReportKey(docHash(doc), fd.ID)

	if !refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached compliance.Report
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, cache.KeyTypeReport)
				return cached, true, nil
			}
			// Corrupt entry: fall through to recompute.
			_ = r.Cache.Delete(ctx, cacheKey)
		}
		observability.Cache().OnCacheMiss(ctx, cache.KeyTypeReport)
	}

	start := time.Now()
	observability.Engine().OnComplianceStart(ctx, doc.ID, fd.ID)
	report := compliance.Run(doc, fd)
	observability.Engine().OnComplianceComplete(ctx, doc.ID, fd.ID, report.Score, time.Since(start))

	if data, err := json.Marshal(report); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLReport); err == nil {
			observability.Cache().OnCacheSet(ctx, cache.KeyTypeReport, len(data))
		}
	}
	return report, false, nil
}

// Resize plans and applies a format switch on a clone of doc, returning
// the resized document and the per-object transforms.
func (r *Runner) Resize(ctx context.Context, doc *canvas.CanvasDocument, target format.Descriptor) (*canvas.CanvasDocument, []layout.Transform, error) {
	work := doc.Clone()
	cls := classify.Objects(work.Objects, work.Width, work.Height)

	from := layout.Size{Width: work.Width, Height: work.Height}
	to := layout.Size{Width: target.Width, Height: target.Height}
	transforms := layout.PlanResize(work.Objects, cls, from, to)
	layout.Apply(work, transforms)
	work.Width = target.Width
	work.Height = target.Height

	return work, transforms, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// docHash is the canonical content hash of a document.
func docHash(doc *canvas.CanvasDocument) string {
	data, err := json.Marshal(doc)
	if err != nil {
		return ""
	}
	return cache.Hash(data)
}
