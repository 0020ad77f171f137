package pipeline

import (
	"context"
	"testing"

	"github.com/brandforge/adcanvas/pkg/cache"
	"github.com/brandforge/adcanvas/pkg/canvas"
	"github.com/brandforge/adcanvas/pkg/errors"
	"github.com/brandforge/adcanvas/pkg/format"
)

func testDoc() *canvas.CanvasDocument {
	doc := canvas.NewDocument(1080, 1080)
	doc.ID = "pipeline-doc"

	bg := &canvas.CanvasObject{ID: "bg", Kind: canvas.KindImage, Left: 0, Top: 0, Width: 1080, Height: 1080}
	headline := &canvas.CanvasObject{
		ID: "headline", Kind: canvas.KindText, Text: "New collection",
		FontSize: 48, Fill: "#111111", Left: 140, Top: 420, Width: 800, Height: 120,
	}
	for _, o := range []*canvas.CanvasObject{bg, headline} {
		o.ApplyDefaults()
		doc.Add(o)
	}
	return doc
}

func TestOptionsValidateAndSetDefaults(t *testing.T) {
	opts := Options{ToFormat: "instagram-story"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if opts.FormatID != "instagram-story" {
		t.Errorf("FormatID = %q, want the resize target", opts.FormatID)
	}
	if opts.Catalog == nil || opts.Logger == nil {
		t.Error("defaults not applied")
	}

	// Idempotent.
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("second call should be a no-op: %v", err)
	}

	bad := Options{ToFormat: "Not A Slug!"}
	if err := bad.ValidateAndSetDefaults(); errors.GetCode(err) != errors.ErrCodeInvalidFormat {
		t.Errorf("code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidFormat)
	}
}

func TestExecuteResizes(t *testing.T) {
	runner := NewRunner(cache.NewMemoryCache(), nil, nil)
	defer runner.Close()

	doc := testDoc()
	result, err := runner.Execute(context.Background(), doc, Options{ToFormat: "instagram-story"})
	if err != nil {
		t.Fatal(err)
	}

	// The input document is untouched.
	if doc.Width != 1080 || doc.Height != 1080 {
		t.Error("Execute mutated the input document")
	}

	// The working copy carries the target dimensions.
	if result.Document.Width != 1080 || result.Document.Height != 1920 {
		t.Errorf("result dimensions = %gx%g, want 1080x1920", result.Document.Width, result.Document.Height)
	}
	if len(result.Transforms) != len(doc.Objects) {
		t.Errorf("got %d transforms, want one per object", len(result.Transforms))
	}

	// Background still covers the new canvas.
	bg := result.Document.Object("bg")
	if w := bg.RenderedWidth(); w < 1920 {
		t.Errorf("background rendered width = %g, want >= 1920 (cover fit)", w)
	}

	if result.Report.Score < 0 || result.Report.Score > 100 {
		t.Errorf("score = %d", result.Report.Score)
	}
	if result.DocHash == "" {
		t.Error("result should carry the document hash")
	}
}

func TestExecuteCheckOnly(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	result, err := runner.Execute(context.Background(), testDoc(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Transforms) != 0 || len(result.Corrections) != 0 {
		t.Error("no resize requested, yet transforms or corrections present")
	}
	if len(result.Report.Checks) == 0 {
		t.Error("compliance report missing")
	}
}

func TestExecuteUnknownFormat(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	_, err := runner.Execute(context.Background(), testDoc(), Options{ToFormat: "vhs-tape"})
	if errors.GetCode(err) != errors.ErrCodeFormatNotFound {
		t.Errorf("code = %s, want %s", errors.GetCode(err), errors.ErrCodeFormatNotFound)
	}
}

func TestCheckCaching(t *testing.T) {
	ctx := context.Background()
	runner := NewRunner(cache.NewMemoryCache(), nil, nil)
	defer runner.Close()

	doc := testDoc()
	fd, err := format.Default().Get("instagram-feed")
	if err != nil {
		t.Fatal(err)
	}

	report, hit, err := runner.CheckWithCacheInfo(ctx, doc, fd, false)
	if err != nil {
		t.Fatal(err)
	}
	if hit {
		t.Error("first check should miss")
	}

	cached, hit, err := runner.CheckWithCacheInfo(ctx, doc, fd, false)
	if err != nil {
		t.Fatal(err)
	}
	if !hit {
		t.Error("identical document and format should hit")
	}
	if cached.Score != report.Score {
		t.Errorf("cached score = %d, want %d", cached.Score, report.Score)
	}

	// Any edit changes the content hash and misses.
	doc.Object("headline").Text = "Edited"
	if _, hit, _ := runner.CheckWithCacheInfo(ctx, doc, fd, false); hit {
		t.Error("edited document should miss")
	}

	// Refresh bypasses the cache even for identical content.
	if _, hit, _ := runner.CheckWithCacheInfo(ctx, doc, fd, true); hit {
		t.Error("refresh should bypass the cache")
	}
}

func TestRunnerResize(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	fd, err := format.Default().Get("facebook-feed")
	if err != nil {
		t.Fatal(err)
	}

	doc := testDoc()
	resized, transforms, err := runner.Resize(context.Background(), doc, fd)
	if err != nil {
		t.Fatal(err)
	}
	if resized.Width != fd.Width || resized.Height != fd.Height {
		t.Errorf("resized to %gx%g, want %gx%g", resized.Width, resized.Height, fd.Width, fd.Height)
	}
	if len(transforms) != len(doc.Objects) {
		t.Errorf("got %d transforms, want %d", len(transforms), len(doc.Objects))
	}
	if doc.Width != 1080 {
		t.Error("Resize mutated the input document")
	}
}
