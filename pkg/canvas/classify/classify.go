// Package classify infers the semantic role and position anchor of canvas
// objects from their geometry.
//
// Roles drive the per-role transforms in the resize engine and the logo and
// safe-zone compliance checks. Anchors decide which canvas corner an object
// is pinned to when the format changes.
//
// # Design
//
// Classification is a pure function of one object's bounding box and the
// current canvas size. Objects are classified independently; there is no
// cross-object reasoning, so results are order-independent. Role and anchor
// are derived values and must never be persisted: callers reclassify from
// current geometry whenever they need them, which prevents staleness after
// edits that moved an object without reclassifying it.
//
// # Usage
//
//	c := classify.Object(obj, doc.Width, doc.Height)
//	switch c.Role {
//	case canvas.RoleLogo:
//	    // pin to anchor corner
//	}
package classify

import (
	"github.com/brandforge/adcanvas/pkg/canvas"
)

// Role thresholds, expressed as fractions of the canvas size.
const (
	// backgroundCoverage: an object covering at least this fraction of both
	// axes is the background.
	backgroundCoverage = 0.9

	// logoMaxWidth/logoMaxHeight bound the size of a logo candidate.
	logoMaxWidth  = 0.2
	logoMaxHeight = 0.15

	// logoTopBand/logoBottomBand: a logo candidate must sit near the top or
	// bottom edge.
	logoTopBand    = 0.15
	logoBottomBand = 0.85

	// ctaMinTop/ctaMaxHeight: a call-to-action sits in the lower part of the
	// canvas and stays short.
	ctaMinTop    = 0.7
	ctaMaxHeight = 0.15

	// headlineFontSize: text above this font size is a headline.
	headlineFontSize = 24

	// productBandMin/productBandMax delimit the central band on both axes;
	// an image centered inside it is the hero product shot.
	productBandMin = 0.25
	productBandMax = 0.75
)

// Anchor thirds: centers left of lowThird are "left"/"top", right of
// highThird are "right"/"bottom", anything between is the middle band.
const (
	lowThird  = 0.33
	highThird = 0.67
)

// Classification is the derived role and anchor of one object.
type Classification struct {
	Role   canvas.Role
	Anchor canvas.Anchor
}

// Object classifies one object against the given canvas size.
// It never fails: zero or undefined geometry yields RoleShape/AnchorCenter.
func Object(o *canvas.CanvasObject, canvasWidth, canvasHeight float64) Classification {
	return Classification{
		Role:   RoleOf(o, canvasWidth, canvasHeight),
		Anchor: AnchorOf(o, canvasWidth, canvasHeight),
	}
}

// Objects classifies every object in the list, keyed by object ID.
func Objects(objs []*canvas.CanvasObject, canvasWidth, canvasHeight float64) map[string]Classification {
	out := make(map[string]Classification, len(objs))
	for _, o := range objs {
		out[o.ID] = Object(o, canvasWidth, canvasHeight)
	}
	return out
}

// RoleOf infers the semantic role of an object. Rules are evaluated in
// priority order and the first match wins:
//
//  1. background: covers >= 90% of both axes
//  2. logo: small and near the top or bottom edge
//  3. cta: short element in the bottom 30% of the canvas
//  4. text: headline above 24px font, otherwise plain text
//  5. product: image centered in the middle band of both axes
//  6. shape: everything else
func RoleOf(o *canvas.CanvasObject, canvasWidth, canvasHeight float64) canvas.Role {
	if o == nil || canvasWidth <= 0 || canvasHeight <= 0 {
		return canvas.RoleShape
	}

	b := o.Bounds()
	if b.Width <= 0 && b.Height <= 0 {
		return canvas.RoleShape
	}

	if b.Width >= backgroundCoverage*canvasWidth && b.Height >= backgroundCoverage*canvasHeight {
		return canvas.RoleBackground
	}

	if b.Width < logoMaxWidth*canvasWidth && b.Height < logoMaxHeight*canvasHeight &&
		(b.Top < logoTopBand*canvasHeight || b.Top > logoBottomBand*canvasHeight) {
		return canvas.RoleLogo
	}

	if b.Top > ctaMinTop*canvasHeight && b.Height < ctaMaxHeight*canvasHeight {
		return canvas.RoleCTA
	}

	if o.Kind == canvas.KindText {
		if o.FontSize > headlineFontSize {
			return canvas.RoleHeadline
		}
		return canvas.RoleText
	}

	if o.Kind == canvas.KindImage {
		cx := b.Left + b.Width/2
		cy := b.Top + b.Height/2
		if cx >= productBandMin*canvasWidth && cx <= productBandMax*canvasWidth &&
			cy >= productBandMin*canvasHeight && cy <= productBandMax*canvasHeight {
			return canvas.RoleProduct
		}
	}

	return canvas.RoleShape
}

// AnchorOf buckets an object's center into one of seven anchors. The canvas
// is divided into thirds on each axis; objects whose center falls in the
// middle vertical band collapse to AnchorCenter regardless of their
// horizontal position.
func AnchorOf(o *canvas.CanvasObject, canvasWidth, canvasHeight float64) canvas.Anchor {
	if o == nil || canvasWidth <= 0 || canvasHeight <= 0 {
		return canvas.AnchorCenter
	}

	// Degenerate geometry has no meaningful position, same as in RoleOf.
	if b := o.Bounds(); b.Width <= 0 && b.Height <= 0 {
		return canvas.AnchorCenter
	}

	cx, cy := o.Center()

	horizontal := "center"
	if cx < lowThird*canvasWidth {
		horizontal = "left"
	} else if cx > highThird*canvasWidth {
		horizontal = "right"
	}

	vertical := "middle"
	if cy < lowThird*canvasHeight {
		vertical = "top"
	} else if cy > highThird*canvasHeight {
		vertical = "bottom"
	}

	switch {
	case vertical == "top" && horizontal == "left":
		return canvas.AnchorTopLeft
	case vertical == "top" && horizontal == "right":
		return canvas.AnchorTopRight
	case vertical == "top":
		return canvas.AnchorTopCenter
	case vertical == "bottom" && horizontal == "left":
		return canvas.AnchorBottomLeft
	case vertical == "bottom" && horizontal == "right":
		return canvas.AnchorBottomRight
	case vertical == "bottom":
		return canvas.AnchorBottomCenter
	default:
		return canvas.AnchorCenter
	}
}
