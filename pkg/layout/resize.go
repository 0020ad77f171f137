package layout

import (
	"github.com/brandforge/adcanvas/pkg/canvas"
	"github.com/brandforge/adcanvas/pkg/canvas/classify"
)

// Fixed pixel margins used by the anchored transforms.
const (
	// logoMargin is the distance between a logo and its anchor corner.
	logoMargin = 20.0

	// ctaBottomMargin is the distance between a call-to-action and the
	// bottom edge of the canvas.
	ctaBottomMargin = 30.0
)

// Size is a canvas size in pixels.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Transform is the computed new geometry for one object.
//
// Left and Top are expressed in the object's own origin convention, so a
// transform can be applied directly to the object it was planned for.
// FontSize is zero when the font size is unchanged.
type Transform struct {
	ObjectID string      `json:"object_id"`
	Role     canvas.Role `json:"role"` // role that selected the transform
	Left     float64     `json:"left"`
	Top      float64     `json:"top"`
	ScaleX   float64     `json:"scale_x"`
	ScaleY   float64     `json:"scale_y"`
	FontSize float64     `json:"font_size,omitempty"`
}

// PlanResize computes one transform per object for a format change from old
// to new. The classification map must come from a classify pass over the
// same objects at the old canvas size.
//
// PlanResize is total: every input object receives exactly one transform, in
// input order. Objects whose role has no dedicated case, and any degenerate
// geometry the dedicated cases cannot handle, fall back to the proportional
// default transform.
func PlanResize(objs []*canvas.CanvasObject, cls map[string]classify.Classification, from, to Size) []Transform {
	sx := 1.0
	sy := 1.0
	if from.Width > 0 {
		sx = to.Width / from.Width
	}
	if from.Height > 0 {
		sy = to.Height / from.Height
	}
	uniform := min(sx, sy)

	out := make([]Transform, 0, len(objs))
	for _, o := range objs {
		c := cls[o.ID]
		out = append(out, planObject(o, c, to, sx, sy, uniform))
	}
	return out
}

// planObject computes the transform for a single object.
func planObject(o *canvas.CanvasObject, c classify.Classification, to Size, sx, sy, uniform float64) Transform {
	t := Transform{
		ObjectID: o.ID,
		Role:     c.Role,
		ScaleX:   o.ScaleX,
		ScaleY:   o.ScaleY,
	}

	switch c.Role {
	case canvas.RoleBackground:
		// Cover-fit: the background must always span the full canvas.
		if o.Width <= 0 || o.Height <= 0 {
			return proportional(o, c, sx, sy)
		}
		scale := max(to.Width/o.Width, to.Height/o.Height)
		t.ScaleX = scale
		t.ScaleY = scale
		t.Left, t.Top = originAdjusted(o, 0, 0, o.Width*scale, o.Height*scale)

	case canvas.RoleLogo:
		// Brand marks keep their size; only the anchor corner position is
		// recomputed against the new canvas bounds.
		w := o.RenderedWidth()
		h := o.RenderedHeight()
		var left, top float64
		switch c.Anchor {
		case canvas.AnchorTopLeft:
			left, top = logoMargin, logoMargin
		case canvas.AnchorTopRight:
			left, top = to.Width-w-logoMargin, logoMargin
		case canvas.AnchorBottomLeft:
			left, top = logoMargin, to.Height-h-logoMargin
		case canvas.AnchorBottomRight:
			left, top = to.Width-w-logoMargin, to.Height-h-logoMargin
		case canvas.AnchorTopCenter:
			left, top = (to.Width-w)/2, logoMargin
		case canvas.AnchorBottomCenter:
			left, top = (to.Width-w)/2, to.Height-h-logoMargin
		default:
			// A logo floating mid-canvas has no corner to pin to.
			return proportional(o, c, sx, sy)
		}
		t.Left, t.Top = originAdjusted(o, left, top, w, h)

	case canvas.RoleCTA:
		// Re-centered horizontally, pinned above the new bottom edge.
		w := o.RenderedWidth()
		h := o.RenderedHeight()
		t.Left, t.Top = originAdjusted(o, (to.Width-w)/2, to.Height-h-ctaBottomMargin, w, h)

	case canvas.RoleProduct:
		// Uniform rescale to avoid distorting the hero image, then centered.
		t.ScaleX = o.ScaleX * uniform
		t.ScaleY = o.ScaleY * uniform
		w := o.Width * t.ScaleX
		h := o.Height * t.ScaleY
		t.Left, t.Top = originAdjusted(o, (to.Width-w)/2, (to.Height-h)/2, w, h)

	case canvas.RoleHeadline, canvas.RoleText:
		// Font scales with the uniform factor to stay legible; position
		// scales proportionally so relative placement is preserved.
		t.Left = o.Left * sx
		t.Top = o.Top * sy
		if o.FontSize > 0 {
			t.FontSize = o.FontSize * uniform
		}

	default:
		return proportional(o, c, sx, sy)
	}

	return t
}

// proportional is the default transform: position scaled by (sx, sy) and
// scale multiplied per axis. Non-uniform stretch is acceptable for
// decorative shapes, which carry no legibility constraint.
func proportional(o *canvas.CanvasObject, c classify.Classification, sx, sy float64) Transform {
	return Transform{
		ObjectID: o.ID,
		Role:     c.Role,
		Left:     o.Left * sx,
		Top:      o.Top * sy,
		ScaleX:   o.ScaleX * sx,
		ScaleY:   o.ScaleY * sy,
	}
}

// originAdjusted converts a target bounding-box position into the object's
// own origin convention.
func originAdjusted(o *canvas.CanvasObject, bboxLeft, bboxTop, w, h float64) (left, top float64) {
	left = bboxLeft
	top = bboxTop
	if o.OriginX == canvas.OriginCenter {
		left += w / 2
	}
	if o.OriginY == canvas.OriginCenter {
		top += h / 2
	}
	return left, top
}

// Apply writes the planned transforms back onto the document's objects.
// Transforms referencing unknown object IDs are skipped.
func Apply(doc *canvas.CanvasDocument, transforms []Transform) {
	for _, t := range transforms {
		o := doc.Object(t.ObjectID)
		if o == nil {
			continue
		}
		o.Left = t.Left
		o.Top = t.Top
		o.ScaleX = t.ScaleX
		o.ScaleY = t.ScaleY
		if t.FontSize > 0 {
			o.FontSize = t.FontSize
		}
	}
}
