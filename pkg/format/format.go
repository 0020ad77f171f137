// Package format defines target format descriptors and the format catalog.
//
// A format is a named target canvas size (square feed, vertical story, wide
// banner) together with the platform constraints that apply to it: reserved
// safe-zone bands where platform UI may overlay the creative, logo placement
// rules, and the total text budget.
//
// # Catalog
//
// The built-in catalog covers the common advertising placements. Deployments
// can replace or extend it with a TOML catalog file:
//
//	[[formats]]
//	id = "instagram-story"
//	name = "Instagram Story"
//	width = 1080
//	height = 1920
//	text_limit = 250
//
//	[formats.safe_zone]
//	top = 250
//	bottom = 250
//
//	[formats.logo_rules]
//	zones = ["top-left", "top-right"]
//	min_size = 0.01
//	max_size = 0.15
package format

import (
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/brandforge/adcanvas/pkg/canvas"
	"github.com/brandforge/adcanvas/pkg/errors"
)

// Text budget defaults. Square-ish feed placements get a tighter budget
// than wide or tall formats.
const (
	squareTextLimit  = 150
	defaultTextLimit = 250

	// squareAspectMin/Max delimit the aspect-ratio band treated as square.
	squareAspectMin = 0.8
	squareAspectMax = 1.25
)

// SafeZone describes the reserved pixel bands of a format.
type SafeZone struct {
	Top    float64 `json:"top,omitempty" bson:"top,omitempty" toml:"top"`
	Bottom float64 `json:"bottom,omitempty" bson:"bottom,omitempty" toml:"bottom"`
	Left   float64 `json:"left,omitempty" bson:"left,omitempty" toml:"left"`
	Right  float64 `json:"right,omitempty" bson:"right,omitempty" toml:"right"`
}

// LogoRules describes where a logo may sit and how large it may be,
// expressed as a fraction of the canvas area.
type LogoRules struct {
	Zones   []canvas.Anchor `json:"zones,omitempty" bson:"zones,omitempty" toml:"zones"`
	MinSize float64         `json:"min_size,omitempty" bson:"min_size,omitempty" toml:"min_size"`
	MaxSize float64         `json:"max_size,omitempty" bson:"max_size,omitempty" toml:"max_size"`
}

// Allows reports whether the given anchor is an allowed logo zone.
// An empty zone list allows every anchor.
func (r LogoRules) Allows(a canvas.Anchor) bool {
	if len(r.Zones) == 0 {
		return true
	}
	for _, z := range r.Zones {
		if z == a {
			return true
		}
	}
	return false
}

// Descriptor is one target format: a canvas size plus its platform rules.
type Descriptor struct {
	ID        string    `json:"id" bson:"id" toml:"id"`
	Name      string    `json:"name" bson:"name" toml:"name"`
	Width     float64   `json:"width" bson:"width" toml:"width"`
	Height    float64   `json:"height" bson:"height" toml:"height"`
	SafeZone  SafeZone  `json:"safe_zone" bson:"safe_zone" toml:"safe_zone"`
	LogoRules LogoRules `json:"logo_rules" bson:"logo_rules" toml:"logo_rules"`

	// TextLimit is the maximum total character count across all text
	// objects. Zero means derive from the aspect ratio.
	TextLimit int `json:"text_limit,omitempty" bson:"text_limit,omitempty" toml:"text_limit"`
}

// AspectRatio returns width divided by height.
func (d Descriptor) AspectRatio() float64 {
	if d.Height == 0 {
		return 0
	}
	return d.Width / d.Height
}

// IsSquare reports whether the format falls in the square aspect band.
func (d Descriptor) IsSquare() bool {
	ar := d.AspectRatio()
	return ar >= squareAspectMin && ar <= squareAspectMax
}

// EffectiveTextLimit returns the text budget for the format: the explicit
// TextLimit when set, otherwise a tighter budget for square placements and
// the default for everything else.
func (d Descriptor) EffectiveTextLimit() int {
	if d.TextLimit > 0 {
		return d.TextLimit
	}
	if d.IsSquare() {
		return squareTextLimit
	}
	return defaultTextLimit
}

// =============================================================================
// Catalog
// =============================================================================

// Catalog is a static table of format descriptors keyed by ID.
type Catalog struct {
	formats map[string]Descriptor
}

// NewCatalog builds a catalog from the given descriptors.
func NewCatalog(formats ...Descriptor) *Catalog {
	c := &Catalog{formats: make(map[string]Descriptor, len(formats))}
	for _, f := range formats {
		c.formats[f.ID] = f
	}
	return c
}

// Get returns the descriptor for the given ID.
func (c *Catalog) Get(id string) (Descriptor, error) {
	d, ok := c.formats[id]
	if !ok {
		return Descriptor{}, errors.New(errors.ErrCodeFormatNotFound, "unknown format %q", id)
	}
	return d, nil
}

// List returns all descriptors sorted by ID.
func (c *Catalog) List() []Descriptor {
	out := make([]Descriptor, 0, len(c.formats))
	for _, d := range c.formats {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of formats in the catalog.
func (c *Catalog) Len() int { return len(c.formats) }

// cornerZones is the default set of allowed logo anchors.
var cornerZones = []canvas.Anchor{
	canvas.AnchorTopLeft,
	canvas.AnchorTopRight,
	canvas.AnchorBottomLeft,
	canvas.AnchorBottomRight,
}

// Default returns the built-in catalog of common advertising placements.
func Default() *Catalog {
	defaultLogo := LogoRules{Zones: cornerZones, MinSize: 0.01, MaxSize: 0.15}

	return NewCatalog(
		Descriptor{
			ID: "instagram-feed", Name: "Instagram Feed",
			Width: 1080, Height: 1080,
			SafeZone:  SafeZone{},
			LogoRules: defaultLogo,
		},
		Descriptor{
			ID: "instagram-story", Name: "Instagram Story",
			Width: 1080, Height: 1920,
			SafeZone:  SafeZone{Top: 250, Bottom: 250},
			LogoRules: LogoRules{Zones: []canvas.Anchor{canvas.AnchorTopLeft, canvas.AnchorTopRight}, MinSize: 0.01, MaxSize: 0.15},
		},
		Descriptor{
			ID: "facebook-feed", Name: "Facebook Feed",
			Width: 1200, Height: 628,
			SafeZone:  SafeZone{},
			LogoRules: defaultLogo,
		},
		Descriptor{
			ID: "facebook-story", Name: "Facebook Story",
			Width: 1080, Height: 1920,
			SafeZone:  SafeZone{Top: 250, Bottom: 250},
			LogoRules: defaultLogo,
		},
		Descriptor{
			ID: "linkedin-feed", Name: "LinkedIn Feed",
			Width: 1200, Height: 1200,
			SafeZone:  SafeZone{},
			LogoRules: defaultLogo,
		},
		Descriptor{
			ID: "display-banner", Name: "Display Banner",
			Width: 728, Height: 90,
			SafeZone:  SafeZone{},
			LogoRules: defaultLogo,
		},
	)
}

// =============================================================================
// TOML Loading
// =============================================================================

// catalogFile is the on-disk TOML shape.
type catalogFile struct {
	Formats []Descriptor `toml:"formats"`
}

// LoadCatalog reads a TOML catalog file. Descriptors with missing or
// duplicate IDs are rejected.
func LoadCatalog(path string) (*Catalog, error) {
	var file catalogFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "failed to parse catalog %s", path)
	}
	return buildCatalog(file)
}

// ParseCatalog parses a TOML catalog from a string.
func ParseCatalog(data string) (*Catalog, error) {
	var file catalogFile
	if _, err := toml.Decode(data, &file); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "failed to parse catalog")
	}
	return buildCatalog(file)
}

func buildCatalog(file catalogFile) (*Catalog, error) {
	if len(file.Formats) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidCatalog, "catalog defines no formats")
	}

	seen := make(map[string]bool, len(file.Formats))
	for _, d := range file.Formats {
		if err := errors.ValidateFormatID(d.ID); err != nil {
			return nil, err
		}
		if seen[d.ID] {
			return nil, errors.New(errors.ErrCodeInvalidCatalog, "duplicate format id %q", d.ID)
		}
		seen[d.ID] = true

		if d.Width <= 0 || d.Height <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidCatalog, "format %q has non-positive size", d.ID)
		}
	}
	return NewCatalog(file.Formats...), nil
}
