package format

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/brandforge/adcanvas/pkg/canvas"
	"github.com/brandforge/adcanvas/pkg/errors"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	if c.Len() == 0 {
		t.Fatal("default catalog is empty")
	}

	story, err := c.Get("instagram-story")
	if err != nil {
		t.Fatalf("Get(instagram-story): %v", err)
	}
	if story.Width != 1080 || story.Height != 1920 {
		t.Errorf("story size = %gx%g, want 1080x1920", story.Width, story.Height)
	}
	if story.SafeZone.Top != 250 || story.SafeZone.Bottom != 250 {
		t.Errorf("story safe zone = %+v, want 250/250 bands", story.SafeZone)
	}

	if _, err := c.Get("does-not-exist"); !errors.Is(err, errors.ErrCodeFormatNotFound) {
		t.Errorf("Get(unknown) error = %v, want FORMAT_NOT_FOUND", err)
	}
}

func TestListIsSorted(t *testing.T) {
	list := Default().List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestEffectiveTextLimit(t *testing.T) {
	tests := []struct {
		name string
		d    Descriptor
		want int
	}{
		{"square feed uses tight budget", Descriptor{Width: 1080, Height: 1080}, squareTextLimit},
		{"near-square uses tight budget", Descriptor{Width: 1200, Height: 1200}, squareTextLimit},
		{"story uses default budget", Descriptor{Width: 1080, Height: 1920}, defaultTextLimit},
		{"banner uses default budget", Descriptor{Width: 728, Height: 90}, defaultTextLimit},
		{"explicit limit wins", Descriptor{Width: 1080, Height: 1080, TextLimit: 42}, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.EffectiveTextLimit(); got != tt.want {
				t.Errorf("EffectiveTextLimit() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLogoRulesAllows(t *testing.T) {
	rules := LogoRules{Zones: []canvas.Anchor{canvas.AnchorTopLeft, canvas.AnchorTopRight}}

	if !rules.Allows(canvas.AnchorTopLeft) {
		t.Error("Allows(top-left) = false, want true")
	}
	if rules.Allows(canvas.AnchorBottomLeft) {
		t.Error("Allows(bottom-left) = true, want false")
	}

	open := LogoRules{}
	if !open.Allows(canvas.AnchorCenter) {
		t.Error("empty zone list must allow every anchor")
	}
}

const testCatalog = `
[[formats]]
id = "pinterest-pin"
name = "Pinterest Pin"
width = 1000
height = 1500
text_limit = 180

[formats.safe_zone]
bottom = 120

[formats.logo_rules]
zones = ["top-left"]
min_size = 0.02
max_size = 0.1
`

func TestParseCatalog(t *testing.T) {
	c, err := ParseCatalog(testCatalog)
	if err != nil {
		t.Fatalf("ParseCatalog: %v", err)
	}

	pin, err := c.Get("pinterest-pin")
	if err != nil {
		t.Fatalf("Get(pinterest-pin): %v", err)
	}
	if pin.Width != 1000 || pin.Height != 1500 {
		t.Errorf("pin size = %gx%g, want 1000x1500", pin.Width, pin.Height)
	}
	if pin.SafeZone.Bottom != 120 {
		t.Errorf("pin bottom safe zone = %g, want 120", pin.SafeZone.Bottom)
	}
	if pin.LogoRules.MaxSize != 0.1 {
		t.Errorf("pin logo max size = %g, want 0.1", pin.LogoRules.MaxSize)
	}
	if pin.EffectiveTextLimit() != 180 {
		t.Errorf("pin text limit = %d, want 180", pin.EffectiveTextLimit())
	}
}

func TestParseCatalogRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty catalog", ""},
		{"missing id", "[[formats]]\nname = \"X\"\nwidth = 100\nheight = 100\n"},
		{"uppercase id", "[[formats]]\nid = \"Bad\"\nwidth = 100\nheight = 100\n"},
		{"zero size", "[[formats]]\nid = \"x\"\nwidth = 0\nheight = 100\n"},
		{"duplicate ids", "[[formats]]\nid = \"x\"\nwidth = 1\nheight = 1\n[[formats]]\nid = \"x\"\nwidth = 2\nheight = 2\n"},
		{"malformed toml", "[[formats]\nid ="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseCatalog(tt.data); err == nil {
				t.Error("ParseCatalog() = nil error, want error")
			}
		})
	}
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.toml")
	if err := os.WriteFile(path, []byte(testCatalog), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if c.Len() != 1 {
		t.Errorf("catalog size = %d, want 1", c.Len())
	}

	if _, err := LoadCatalog(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("LoadCatalog(missing) = nil error, want error")
	}
}
