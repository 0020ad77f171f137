// Package session manages one live editing session over a canvas document.
//
// The session is the single owner of the document it edits: all mutations
// flow through it, which lets it keep the undo history, change
// notifications, and the revision counter consistent with each other.
//
// # Architecture
//
// Every committed mutation does three things, in order:
//   - bumps the session revision
//   - records a history snapshot
//   - notifies subscribers of what changed
//
// Undo and redo replace the live document wholesale. The history manager
// suppresses the snapshot that the replacement's own notifications would
// otherwise record, so stepping through history never pollutes it.
//
// # Staleness
//
// The revision counter guards asynchronous work. Generation requests carry
// the revision they were made against; by the time a response arrives the
// user may have kept editing, and [Session.ApplyGeneration] discards any
// response whose revision no longer matches.
//
// Sessions are not safe for concurrent use. The editing model is
// single-threaded; server deployments hold one session per connection.
package session

import (
	"github.com/brandforge/adcanvas/pkg/canvas"
	"github.com/brandforge/adcanvas/pkg/errors"
	"github.com/brandforge/adcanvas/pkg/gen"
	"github.com/brandforge/adcanvas/pkg/history"
)

// ChangeKind labels what a change notification describes.
type ChangeKind string

// Change kinds.
const (
	ObjectAdded      ChangeKind = "object:added"
	ObjectModified   ChangeKind = "object:modified"
	ObjectRemoved    ChangeKind = "object:removed"
	DocumentReplaced ChangeKind = "document:replaced"
)

// Change describes one committed mutation.
type Change struct {
	Kind     ChangeKind
	ObjectID string // empty for document-level changes
}

// Listener receives change notifications after each commit.
type Listener func(Change)

// Session owns a live document and its editing state.
type Session struct {
	doc       *canvas.CanvasDocument
	hist      *history.Manager
	revision  uint64
	listeners []Listener
}

// New starts a session over doc and records it as the history baseline.
// A historyCapacity of zero selects the default.
func New(doc *canvas.CanvasDocument, historyCapacity int) (*Session, error) {
	if doc == nil {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "session requires a document")
	}
	doc.ApplyDefaults()
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		doc:  doc,
		hist: history.New(historyCapacity),
	}
	if err := s.hist.Record(doc); err != nil {
		return nil, err
	}
	return s, nil
}

// Document returns the live document. Callers must not mutate it directly;
// use the session's mutation methods so history and revision stay in sync.
func (s *Session) Document() *canvas.CanvasDocument { return s.doc }

// Revision returns the current revision counter. It increments on every
// committed change, including undo and redo.
func (s *Session) Revision() uint64 { return s.revision }

// Subscribe registers a listener for committed changes.
func (s *Session) Subscribe(l Listener) {
	if l != nil {
		s.listeners = append(s.listeners, l)
	}
}

// AddObject appends an object and commits.
func (s *Session) AddObject(o *canvas.CanvasObject) error {
	if o == nil || o.ID == "" {
		return errors.New(errors.ErrCodeInvalidObject, "object requires an id")
	}
	if s.doc.Object(o.ID) != nil {
		return errors.New(errors.ErrCodeInvalidObject, "object %q already exists", o.ID)
	}
	o.ApplyDefaults()
	s.doc.Add(o)
	return s.commit(Change{Kind: ObjectAdded, ObjectID: o.ID})
}

// UpdateObject applies mutate to the named object and commits.
func (s *Session) UpdateObject(id string, mutate func(*canvas.CanvasObject)) error {
	o := s.doc.Object(id)
	if o == nil {
		return errors.New(errors.ErrCodeObjectNotFound, "object %q not found", id)
	}
	mutate(o)
	return s.commit(Change{Kind: ObjectModified, ObjectID: id})
}

// RemoveObject deletes the named object and commits.
func (s *Session) RemoveObject(id string) error {
	if !s.doc.Remove(id) {
		return errors.New(errors.ErrCodeObjectNotFound, "object %q not found", id)
	}
	return s.commit(Change{Kind: ObjectRemoved, ObjectID: id})
}

// Batch applies fn to the document and commits once, producing a single
// undo step for the whole batch. If fn returns an error nothing is
// committed, but partial mutations made by fn remain on the live document;
// callers that need atomicity should undo or reload.
func (s *Session) Batch(fn func(doc *canvas.CanvasDocument) error) error {
	if err := fn(s.doc); err != nil {
		return err
	}
	return s.commit(Change{Kind: DocumentReplaced})
}

// CanUndo reports whether an undo step exists.
func (s *Session) CanUndo() bool { return s.hist.CanUndo() }

// CanRedo reports whether a redo step exists.
func (s *Session) CanRedo() bool { return s.hist.CanRedo() }

// Undo steps the document back one snapshot.
func (s *Session) Undo() error {
	return s.hist.Undo(s.install)
}

// Redo steps the document forward one snapshot.
func (s *Session) Redo() error {
	return s.hist.Redo(s.install)
}

// ApplyGeneration merges a generation response into the document, adding
// its suggested objects as one undo step.
//
// The response is applied only if its revision matches the session's
// current revision; a stale response is discarded and (false, nil) is
// returned. This is the only defense against generation racing ahead of
// the user's edits, so callers must not bypass it.
func (s *Session) ApplyGeneration(resp *gen.Response) (bool, error) {
	if resp == nil {
		return false, errors.New(errors.ErrCodeInvalidInput, "nil generation response")
	}
	if resp.Revision != s.revision {
		return false, nil
	}

	for _, o := range resp.Objects {
		if o == nil || o.ID == "" {
			continue
		}
		if s.doc.Object(o.ID) != nil {
			o.ID = canvas.NewObjectID()
		}
		o.ApplyDefaults()
		s.doc.Add(o)
	}
	if err := s.commit(Change{Kind: DocumentReplaced}); err != nil {
		return false, err
	}
	return true, nil
}

// GenerationRequest builds a request for the generation service pinned to
// the current revision.
func (s *Session) GenerationRequest(prompt, formatID string) gen.Request {
	return gen.Request{
		DocumentID: s.doc.ID,
		Prompt:     prompt,
		FormatID:   formatID,
		Revision:   s.revision,
	}
}

// commit finalizes one mutation: bump the revision, snapshot, notify.
func (s *Session) commit(change Change) error {
	s.revision++
	if err := s.hist.Record(s.doc); err != nil {
		return err
	}
	s.notify(change)
	return nil
}

// install is the history replace callback: it swaps in the restored
// document and commits the replacement. The snapshot recorded by commit is
// suppressed because history is still in its applyingSnapshot state.
func (s *Session) install(doc *canvas.CanvasDocument) error {
	s.doc = doc
	return s.commit(Change{Kind: DocumentReplaced})
}

func (s *Session) notify(change Change) {
	for _, l := range s.listeners {
		l(change)
	}
}
