// Package history maintains an undoable sequence of whole-document
// snapshots.
//
// The manager keeps a bounded buffer of serialized documents plus a cursor.
// Recording while the cursor sits before the tail discards the redo branch;
// there is no branching history. When the buffer exceeds its capacity the
// oldest snapshot is evicted and the cursor shifts down with it.
//
// # State Machine
//
// The manager is an explicit two-state machine: idle and applyingSnapshot.
// Undo and redo enter applyingSnapshot for the duration of the document
// replacement they drive, which suppresses the change notifications fired by
// that replacement from being recorded as fresh edits. Modelling the window
// as a state (rather than an ad hoc flag) makes its start and end
// unambiguous and testable.
//
// # Failure Semantics
//
// A corrupt snapshot aborts that single undo or redo: the error is returned
// to the caller, the live document is untouched, and the cursor does not
// move. The buffer itself is never modified by a failed apply.
package history

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/brandforge/adcanvas/pkg/canvas"
	"github.com/brandforge/adcanvas/pkg/errors"
)

// DefaultCapacity is the default snapshot buffer size.
const DefaultCapacity = 50

// State is the manager's current mode.
type State string

// Manager states.
const (
	StateIdle     State = "idle"
	StateApplying State = "applyingSnapshot"
)

// Snapshot is one serialized document state.
type Snapshot struct {
	ID      string    `json:"id"`
	Data    []byte    `json:"data"`
	TakenAt time.Time `json:"taken_at"`
}

// ReplaceFunc installs a restored document as the live document. It runs
// inside the applyingSnapshot window; returning an error aborts the undo or
// redo without moving the cursor.
type ReplaceFunc func(*canvas.CanvasDocument) error

// Manager holds the snapshot buffer and cursor.
// It is not safe for concurrent use; the editing model is single-threaded.
type Manager struct {
	capacity  int
	snapshots []Snapshot
	cursor    int // index of the current snapshot; -1 when empty
	state     State
}

// New creates a Manager with the given capacity.
// A capacity of zero or less selects DefaultCapacity.
func New(capacity int) *Manager {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Manager{
		capacity: capacity,
		cursor:   -1,
		state:    StateIdle,
	}
}

// State returns the manager's current state.
func (m *Manager) State() State { return m.state }

// Len returns the number of snapshots in the buffer.
func (m *Manager) Len() int { return len(m.snapshots) }

// CanUndo reports whether a snapshot exists before the cursor.
func (m *Manager) CanUndo() bool { return m.cursor > 0 }

// CanRedo reports whether a snapshot exists after the cursor.
func (m *Manager) CanRedo() bool { return m.cursor >= 0 && m.cursor < len(m.snapshots)-1 }

// Record serializes the document and appends it as the new tail snapshot.
//
// Recording while the manager is applying a snapshot is suppressed: the
// document replacement performed by undo/redo must not re-enter history as
// a fresh edit. If prior undos left the cursor before the tail, the redo
// branch after the cursor is discarded first.
func (m *Manager) Record(doc *canvas.CanvasDocument) error {
	if m.state == StateApplying {
		return nil
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to serialize document")
	}

	// Truncate the redo branch.
	if m.cursor < len(m.snapshots)-1 {
		m.snapshots = m.snapshots[:m.cursor+1]
	}

	m.snapshots = append(m.snapshots, Snapshot{
		ID:      uuid.NewString(),
		Data:    data,
		TakenAt: time.Now(),
	})
	m.cursor = len(m.snapshots) - 1

	// Evict the oldest snapshot once over capacity.
	if len(m.snapshots) > m.capacity {
		m.snapshots = m.snapshots[1:]
		m.cursor--
	}

	return nil
}

// Undo restores the snapshot before the cursor. The replace callback runs
// inside the applyingSnapshot window; the cursor only moves once the
// replacement succeeded.
//
// At the history boundary state is untouched and HISTORY_BOUNDARY is
// returned; callers treating the boundary as a no-op should gate on
// CanUndo first.
func (m *Manager) Undo(replace ReplaceFunc) error {
	if !m.CanUndo() {
		return errors.New(errors.ErrCodeHistoryBoundary, "nothing to undo")
	}
	if err := m.applyAt(m.cursor-1, replace); err != nil {
		return err
	}
	m.cursor--
	return nil
}

// Redo restores the snapshot after the cursor. The replace callback runs
// inside the applyingSnapshot window; the cursor only moves once the
// replacement succeeded.
//
// At the history boundary state is untouched and HISTORY_BOUNDARY is
// returned; callers treating the boundary as a no-op should gate on
// CanRedo first.
func (m *Manager) Redo(replace ReplaceFunc) error {
	if !m.CanRedo() {
		return errors.New(errors.ErrCodeHistoryBoundary, "nothing to redo")
	}
	if err := m.applyAt(m.cursor+1, replace); err != nil {
		return err
	}
	m.cursor++
	return nil
}

// applyAt decodes the snapshot at index and hands it to replace inside the
// applyingSnapshot window.
func (m *Manager) applyAt(index int, replace ReplaceFunc) error {
	var doc canvas.CanvasDocument
	if err := json.Unmarshal(m.snapshots[index].Data, &doc); err != nil {
		return errors.Wrap(errors.ErrCodeSnapshotCorrupt, err, "snapshot %s cannot be restored", m.snapshots[index].ID)
	}

	m.state = StateApplying
	defer func() { m.state = StateIdle }()

	if replace != nil {
		if err := replace(&doc); err != nil {
			return err
		}
	}
	return nil
}
