package cli

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/brandforge/adcanvas/pkg/canvas"
	adio "github.com/brandforge/adcanvas/pkg/io"
)

func newTestCLI() *CLI {
	return New(io.Discard, log.FatalLevel)
}

// writeSampleDoc writes a small valid creative to dir and returns its path.
func writeSampleDoc(t *testing.T, dir string) string {
	t.Helper()

	doc := canvas.NewDocument(1080, 1080)
	doc.ID = "cli-test"
	headline := &canvas.CanvasObject{
		ID: "headline", Kind: canvas.KindText, Text: "Summer sale",
		FontSize: 48, Fill: "#111111", Left: 140, Top: 420, Width: 800, Height: 120,
	}
	headline.ApplyDefaults()
	doc.Add(headline)

	path := filepath.Join(dir, "creative.json")
	if err := adio.ExportJSON(doc, path); err != nil {
		t.Fatal(err)
	}
	return path
}

func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	root := newTestCLI().RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	return root.Execute()
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newTestCLI().RootCommand()

	want := []string{"check", "resize", "formats", "generate", "serve", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command is missing subcommand %q", name)
		}
	}
}

func TestCheckCommand(t *testing.T) {
	path := writeSampleDoc(t, t.TempDir())

	if err := runCommand(t, "check", path, "--no-cache", "--json"); err != nil {
		t.Fatalf("check failed: %v", err)
	}
}

func TestCheckCommandMinScore(t *testing.T) {
	path := writeSampleDoc(t, t.TempDir())

	// A perfect run scores 100, so 101 can never be met.
	if err := runCommand(t, "check", path, "--no-cache", "--json", "--min-score", "101"); err == nil {
		t.Error("expected an error when the score is below --min-score")
	}
}

func TestCheckCommandMissingFile(t *testing.T) {
	if err := runCommand(t, "check", filepath.Join(t.TempDir(), "nope.json"), "--no-cache"); err == nil {
		t.Error("expected an error for a missing input file")
	}
}

func TestResizeCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeSampleDoc(t, dir)
	out := filepath.Join(dir, "story.json")

	if err := runCommand(t, "resize", path, "--to", "instagram-story", "-o", out, "--no-cache"); err != nil {
		t.Fatalf("resize failed: %v", err)
	}

	doc, err := adio.ImportJSON(out)
	if err != nil {
		t.Fatalf("reading resized document: %v", err)
	}
	if doc.Width != 1080 || doc.Height != 1920 {
		t.Errorf("resized to %gx%g, want 1080x1920", doc.Width, doc.Height)
	}
}

func TestResizeCommandRequiresTarget(t *testing.T) {
	path := writeSampleDoc(t, t.TempDir())

	if err := runCommand(t, "resize", path); err == nil {
		t.Error("expected an error without --to or --interactive")
	}
}

func TestResizeCommandUnknownFormat(t *testing.T) {
	path := writeSampleDoc(t, t.TempDir())

	if err := runCommand(t, "resize", path, "--to", "vhs-tape", "--no-cache"); err == nil {
		t.Error("expected an error for an unknown format")
	}
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeSampleDoc(t, dir)
	out := filepath.Join(dir, "generated.json")

	if err := runCommand(t, "generate", path, "--prompt", "bold headline", "-o", out); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	doc, err := adio.ImportJSON(out)
	if err != nil {
		t.Fatalf("reading generated document: %v", err)
	}
	if len(doc.Objects) != 2 {
		t.Errorf("got %d objects, want the original plus one suggestion", len(doc.Objects))
	}
}

func TestGenerateCommandRequiresPrompt(t *testing.T) {
	path := writeSampleDoc(t, t.TempDir())

	if err := runCommand(t, "generate", path); err == nil {
		t.Error("expected an error without --prompt")
	}
}

func TestFormatsCommand(t *testing.T) {
	if err := runCommand(t, "formats", "--json"); err != nil {
		t.Fatalf("formats failed: %v", err)
	}
	if err := runCommand(t, "formats", "instagram-story", "--json"); err != nil {
		t.Fatalf("formats <id> failed: %v", err)
	}
	if err := runCommand(t, "formats", "vhs-tape"); err == nil {
		t.Error("expected an error for an unknown format")
	}
}

func TestResizeOutputPath(t *testing.T) {
	tests := []struct {
		input    string
		formatID string
		want     string
	}{
		{"creative.json", "instagram-story", "creative_instagram-story.json"},
		{"dir/creative.json", "facebook-feed", "dir/creative_facebook-feed.json"},
		{"creative", "display-banner", "creative_display-banner.json"},
	}

	for _, tt := range tests {
		if got := resizeOutputPath(tt.input, tt.formatID); got != tt.want {
			t.Errorf("resizeOutputPath(%q, %q) = %q, want %q", tt.input, tt.formatID, got, tt.want)
		}
	}
}

func TestFailedChecks(t *testing.T) {
	checks := []canvas.ComplianceCheck{
		{Status: canvas.StatusPass},
		{Status: canvas.StatusWarning},
		{Status: canvas.StatusFail},
	}
	if got := failedChecks(checks); got != 2 {
		t.Errorf("failedChecks = %d, want 2", got)
	}
}
