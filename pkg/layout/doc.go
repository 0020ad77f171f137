// Package layout computes new object geometry when a canvas changes format.
//
// The resize engine maps every object from an old canvas size to a new one
// using a per-role transform: backgrounds cover-fit, logos stay their size
// and pin to their anchor corner, calls-to-action re-center above the bottom
// edge, product shots rescale uniformly, text scales its font with the
// uniform factor, and plain shapes stretch proportionally.
//
// # Pipeline Position
//
// Callers must reclassify objects from current geometry immediately before
// planning a resize; roles and anchors from a stale canvas size must not be
// reused. The safe-zone corrector runs after all transforms are applied,
// against the new canvas size.
//
// # Guarantees
//
//   - Totality: every input object yields exactly one transform; objects are
//     never created or dropped.
//   - Unknown roles degrade to the proportional default transform.
//   - Decisions are per-object: no collision resolution or relaxation passes.
//
// # Usage
//
//	cls := classify.Objects(doc.Objects, doc.Width, doc.Height)
//	transforms := layout.PlanResize(doc.Objects, cls, oldSize, newSize)
//	layout.Apply(doc, transforms)
//	layout.CorrectSafeZones(doc.Objects, cls, newSize.Height, zone.Top, zone.Bottom)
package layout
