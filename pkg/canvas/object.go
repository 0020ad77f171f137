package canvas

import (
	"github.com/google/uuid"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Kind is the shape variant of a canvas object.
type Kind string

// Object kinds.
const (
	KindRect    Kind = "rect"
	KindEllipse Kind = "ellipse"
	KindPath    Kind = "path"
	KindText    Kind = "text"
	KindImage   Kind = "image"
)

// Role is the semantic category of an object, inferred from geometry.
// Roles are derived values: they are recomputed at classification time and
// never persisted on the object.
type Role string

// Object roles in classification priority order.
const (
	RoleBackground Role = "background"
	RoleLogo       Role = "logo"
	RoleCTA        Role = "cta"
	RoleHeadline   Role = "headline"
	RoleText       Role = "text"
	RoleProduct    Role = "product"
	RoleShape      Role = "shape"
)

// Anchor is the corner/edge/center bucket an object's center falls into.
type Anchor string

// Anchor buckets. Objects in the middle vertical band collapse to
// AnchorCenter regardless of their horizontal third.
const (
	AnchorTopLeft      Anchor = "top-left"
	AnchorTopRight     Anchor = "top-right"
	AnchorTopCenter    Anchor = "top-center"
	AnchorBottomLeft   Anchor = "bottom-left"
	AnchorBottomRight  Anchor = "bottom-right"
	AnchorBottomCenter Anchor = "bottom-center"
	AnchorCenter       Anchor = "center"
)

// Origin values for left/top interpretation.
const (
	OriginLeft   = "left"
	OriginTop    = "top"
	OriginCenter = "center"
)

// CheckStatus is the outcome of a single compliance check.
type CheckStatus string

// Check statuses.
const (
	StatusPass    CheckStatus = "pass"
	StatusWarning CheckStatus = "warning"
	StatusFail    CheckStatus = "fail"
)

// =============================================================================
// CanvasObject
// =============================================================================

// Shadow is an optional drop shadow on an object.
type Shadow struct {
	Blur    float64 `json:"blur,omitempty" bson:"blur,omitempty"`
	OffsetX float64 `json:"offset_x,omitempty" bson:"offset_x,omitempty"`
	OffsetY float64 `json:"offset_y,omitempty" bson:"offset_y,omitempty"`
	Color   string  `json:"color,omitempty" bson:"color,omitempty"`
}

// CanvasObject is one graphical element on a canvas.
//
// Left and Top are offsets in canvas-space pixels, interpreted against
// OriginX/OriginY. Width and Height are intrinsic (pre-scale) sizes; the
// rendered size is Width*ScaleX by Height*ScaleY.
//
// Invariants: Width, Height >= 0 and ScaleX, ScaleY > 0. Use
// [CanvasObject.ApplyDefaults] after deserializing external data to restore
// zero-value scale factors to 1.
type CanvasObject struct {
	ID   string `json:"id" bson:"id"`
	Kind Kind   `json:"kind" bson:"kind"`

	// Geometry
	Left    float64 `json:"left" bson:"left"`
	Top     float64 `json:"top" bson:"top"`
	Width   float64 `json:"width" bson:"width"`
	Height  float64 `json:"height" bson:"height"`
	ScaleX  float64 `json:"scale_x" bson:"scale_x"`
	ScaleY  float64 `json:"scale_y" bson:"scale_y"`
	OriginX string  `json:"origin_x,omitempty" bson:"origin_x,omitempty"`
	OriginY string  `json:"origin_y,omitempty" bson:"origin_y,omitempty"`

	// Style
	Fill        string  `json:"fill,omitempty" bson:"fill,omitempty"`
	Stroke      string  `json:"stroke,omitempty" bson:"stroke,omitempty"`
	StrokeWidth float64 `json:"stroke_width,omitempty" bson:"stroke_width,omitempty"`
	Opacity     float64 `json:"opacity" bson:"opacity"`
	Shadow      *Shadow `json:"shadow,omitempty" bson:"shadow,omitempty"`

	// Text-only fields
	Text       string  `json:"text,omitempty" bson:"text,omitempty"`
	FontSize   float64 `json:"font_size,omitempty" bson:"font_size,omitempty"`
	FontFamily string  `json:"font_family,omitempty" bson:"font_family,omitempty"`
	FontWeight string  `json:"font_weight,omitempty" bson:"font_weight,omitempty"`
}

// NewObjectID returns a fresh object identifier.
func NewObjectID() string {
	return uuid.NewString()
}

// ApplyDefaults restores zero-value fields that have non-zero defaults.
// External documents (JSON imports, API payloads) routinely omit scale and
// opacity; treating the zero values literally would violate the object
// invariants.
func (o *CanvasObject) ApplyDefaults() {
	if o.ID == "" {
		o.ID = NewObjectID()
	}
	if o.ScaleX == 0 {
		o.ScaleX = 1
	}
	if o.ScaleY == 0 {
		o.ScaleY = 1
	}
	if o.Opacity == 0 {
		o.Opacity = 1
	}
	if o.OriginX == "" {
		o.OriginX = OriginLeft
	}
	if o.OriginY == "" {
		o.OriginY = OriginTop
	}
}

// RenderedWidth returns the on-canvas width (intrinsic width times scale).
func (o *CanvasObject) RenderedWidth() float64 {
	return o.Width * o.ScaleX
}

// RenderedHeight returns the on-canvas height (intrinsic height times scale).
func (o *CanvasObject) RenderedHeight() float64 {
	return o.Height * o.ScaleY
}

// Bounds returns the absolute bounding box of the object in canvas space,
// accounting for center origins.
func (o *CanvasObject) Bounds() Rect {
	w := o.RenderedWidth()
	h := o.RenderedHeight()
	left := o.Left
	top := o.Top
	if o.OriginX == OriginCenter {
		left -= w / 2
	}
	if o.OriginY == OriginCenter {
		top -= h / 2
	}
	return Rect{Left: left, Top: top, Width: w, Height: h}
}

// Center returns the center point of the object's bounding box.
func (o *CanvasObject) Center() (cx, cy float64) {
	b := o.Bounds()
	return b.Left + b.Width/2, b.Top + b.Height/2
}

// IsText reports whether the object is a text element.
func (o *CanvasObject) IsText() bool {
	return o.Kind == KindText
}

// Clone returns a deep copy of the object.
func (o *CanvasObject) Clone() *CanvasObject {
	dup := *o
	if o.Shadow != nil {
		shadow := *o.Shadow
		dup.Shadow = &shadow
	}
	return &dup
}

// =============================================================================
// Rect
// =============================================================================

// Rect is an absolute bounding box in canvas-space pixels.
type Rect struct {
	Left   float64 `json:"left" bson:"left"`
	Top    float64 `json:"top" bson:"top"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}

// Right returns the right edge of the rect.
func (r Rect) Right() float64 { return r.Left + r.Width }

// Bottom returns the bottom edge of the rect.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Area returns the rect's area.
func (r Rect) Area() float64 { return r.Width * r.Height }

// =============================================================================
// ComplianceCheck
// =============================================================================

// ComplianceCheck is the result of one rule evaluation against a document.
// Checks are produced fresh on every compliance run and never mutated.
type ComplianceCheck struct {
	ID       string      `json:"id" bson:"id"`
	Label    string      `json:"label" bson:"label"`
	Status   CheckStatus `json:"status" bson:"status"`
	Message  string      `json:"message" bson:"message"`
	Severity int         `json:"severity" bson:"severity"` // 0-10, contributes to the score
}
