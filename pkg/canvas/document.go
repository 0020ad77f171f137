package canvas

import (
	"github.com/google/uuid"

	"github.com/brandforge/adcanvas/pkg/errors"
)

// CanvasDocument is one canvas state: its size, background color, and the
// ordered object list. Paint order equals array order.
//
// A document is exclusively owned by the editing session that holds it. It
// is mutated in place during editing and replaced wholesale on load, undo,
// and redo. History keeps serialized snapshots, never live references.
type CanvasDocument struct {
	ID              string          `json:"id" bson:"id"`
	Width           float64         `json:"width" bson:"width"`
	Height          float64         `json:"height" bson:"height"`
	BackgroundColor string          `json:"background_color,omitempty" bson:"background_color,omitempty"`
	Objects         []*CanvasObject `json:"objects" bson:"objects"`
}

// NewDocument creates an empty document with the given canvas size and a
// white background.
func NewDocument(width, height float64) *CanvasDocument {
	return &CanvasDocument{
		ID:              uuid.NewString(),
		Width:           width,
		Height:          height,
		BackgroundColor: "#ffffff",
	}
}

// Object returns the object with the given ID, or nil if absent.
func (d *CanvasDocument) Object(id string) *CanvasObject {
	for _, o := range d.Objects {
		if o.ID == id {
			return o
		}
	}
	return nil
}

// Add appends an object to the paint order.
func (d *CanvasDocument) Add(o *CanvasObject) {
	d.Objects = append(d.Objects, o)
}

// Remove deletes the object with the given ID, preserving paint order.
// Returns false if no object matched.
func (d *CanvasDocument) Remove(id string) bool {
	for i, o := range d.Objects {
		if o.ID == id {
			d.Objects = append(d.Objects[:i], d.Objects[i+1:]...)
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the document.
func (d *CanvasDocument) Clone() *CanvasDocument {
	dup := *d
	dup.Objects = make([]*CanvasObject, len(d.Objects))
	for i, o := range d.Objects {
		dup.Objects[i] = o.Clone()
	}
	return &dup
}

// ApplyDefaults restores non-zero defaults on the document and all objects.
// Call this after deserializing external data.
func (d *CanvasDocument) ApplyDefaults() {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.BackgroundColor == "" {
		d.BackgroundColor = "#ffffff"
	}
	for _, o := range d.Objects {
		o.ApplyDefaults()
	}
}

// Validate checks the document against the object-model invariants:
// positive canvas size, non-negative object sizes, positive scale factors,
// and unique object IDs.
func (d *CanvasDocument) Validate() error {
	if err := errors.ValidateCanvasSize(d.Width, d.Height); err != nil {
		return err
	}

	seen := make(map[string]bool, len(d.Objects))
	for _, o := range d.Objects {
		if o.ID == "" {
			return errors.New(errors.ErrCodeInvalidObject, "object has empty id")
		}
		if seen[o.ID] {
			return errors.New(errors.ErrCodeInvalidObject, "duplicate object id %q", o.ID)
		}
		seen[o.ID] = true

		if o.Width < 0 || o.Height < 0 {
			return errors.New(errors.ErrCodeInvalidObject, "object %q has negative size", o.ID)
		}
		if o.ScaleX <= 0 || o.ScaleY <= 0 {
			return errors.New(errors.ErrCodeInvalidObject, "object %q has non-positive scale", o.ID)
		}
	}
	return nil
}

// TextObjects returns the text objects in paint order.
func (d *CanvasDocument) TextObjects() []*CanvasObject {
	var out []*CanvasObject
	for _, o := range d.Objects {
		if o.IsText() {
			out = append(out, o)
		}
	}
	return out
}
