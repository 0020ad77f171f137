package layout

import (
	"github.com/brandforge/adcanvas/pkg/canvas"
	"github.com/brandforge/adcanvas/pkg/canvas/classify"
)

// safeZonePadding is the extra clearance applied when nudging an object out
// of a reserved band.
const safeZonePadding = 10.0

// Correction records one safe-zone nudge for diagnostics.
type Correction struct {
	ObjectID string      `json:"object_id"`
	Role     canvas.Role `json:"role"`
	OldTop   float64     `json:"old_top"`
	NewTop   float64     `json:"new_top"`
}

// CorrectSafeZones nudges objects vertically so they neither start inside
// the reserved top band nor end inside the reserved bottom band. It runs
// immediately after a resize, against the new canvas height, and mutates
// the objects in place.
//
// Only vertical position changes; horizontal position and size are never
// touched. Role exemptions: backgrounds are skipped entirely (they are
// expected to fill the canvas), logos may start inside the top band, and
// calls-to-action may end inside the bottom band; those roles occupy the
// reserved bands on purpose.
//
// A zero-height band disables its side of the correction: on formats
// without reserved bands an object sitting above or below the canvas is
// left where it is rather than pulled to the edge.
func CorrectSafeZones(objs []*canvas.CanvasObject, cls map[string]classify.Classification, canvasHeight, topZone, bottomZone float64) []Correction {
	var corrections []Correction

	for _, o := range objs {
		role := cls[o.ID].Role
		if role == canvas.RoleBackground {
			continue
		}

		b := o.Bounds()
		top := b.Top
		moved := false

		if topZone > 0 && top < topZone && role != canvas.RoleLogo {
			top = topZone + safeZonePadding
			moved = true
		}
		if bottomZone > 0 && top+b.Height > canvasHeight-bottomZone && role != canvas.RoleCTA {
			top = canvasHeight - bottomZone - b.Height - safeZonePadding
			moved = true
		}

		if moved {
			corrections = append(corrections, Correction{
				ObjectID: o.ID,
				Role:     role,
				OldTop:   b.Top,
				NewTop:   top,
			})
			setBoundsTop(o, top, b.Height)
		}
	}

	return corrections
}

// setBoundsTop moves an object so its bounding-box top lands at top,
// respecting a center origin.
func setBoundsTop(o *canvas.CanvasObject, top, height float64) {
	if o.OriginY == canvas.OriginCenter {
		o.Top = top + height/2
		return
	}
	o.Top = top
}
