package history

import (
	"slices"
	"sync"
	"time"
)

// DefaultLimit is the number of undo snapshots kept when no limit is given.
const DefaultLimit = 1024

// Info describes one snapshot for display or logging.
type Info struct {
	Kind      ActionKind
	Length    int
	Timestamp time.Time
}

// Stack holds the undo and redo snapshots of one buffer.
type Stack struct {
	mu sync.Mutex

	undo []*Snapshot
	redo []*Snapshot

	limit int
}

// NewStack creates a stack that keeps at most limit undo snapshots.
func NewStack(limit int) *Stack {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Stack{limit: limit}
}

// Commit pushes s onto the undo stack, taking ownership of it. The redo
// stack is released and the oldest snapshots beyond the limit are evicted.
func (h *Stack) Commit(s *Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.undo = append(h.undo, s)
	releaseAll(h.redo)
	h.redo = nil
	h.trimLocked()
}

func (h *Stack) trimLocked() {
	if excess := len(h.undo) - h.limit; excess > 0 {
		releaseAll(h.undo[:excess])
		h.undo = slices.Delete(h.undo, 0, excess)
	}
}

// Undo moves the newest snapshot to the redo stack. It returns that
// snapshot and the one now on top, whose rope is the state to restore.
// The bottom snapshot is never undone, so ok is false with fewer than two.
func (h *Stack) Undo() (popped, top *Snapshot, ok bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.undo) < 2 {
		return nil, nil, false
	}
	popped = h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, popped)
	return popped, h.undo[len(h.undo)-1], true
}

// Redo moves the newest redo snapshot back onto the undo stack and
// returns it.
func (h *Stack) Redo() (*Snapshot, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.redo) == 0 {
		return nil, false
	}
	s := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, s)
	return s, true
}

// Top returns the newest undo snapshot.
func (h *Stack) Top() (*Snapshot, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.undo) == 0 {
		return nil, false
	}
	return h.undo[len(h.undo)-1], true
}

// CanUndo returns true if undo is available.
func (h *Stack) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undo) >= 2
}

// CanRedo returns true if redo is available.
func (h *Stack) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redo) > 0
}

// UndoLen returns the number of snapshots on the undo stack, including the
// bottom one.
func (h *Stack) UndoLen() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undo)
}

// RedoLen returns the number of snapshots on the redo stack.
func (h *Stack) RedoLen() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redo)
}

// UndoInfo describes the undo snapshots, oldest first.
func (h *Stack) UndoInfo() []Info {
	h.mu.Lock()
	defer h.mu.Unlock()
	return describe(h.undo)
}

// RedoInfo describes the redo snapshots, oldest first.
func (h *Stack) RedoInfo() []Info {
	h.mu.Lock()
	defer h.mu.Unlock()
	return describe(h.redo)
}

// SetLimit changes the maximum number of undo snapshots.
// If the current stack is larger, oldest snapshots are released.
func (h *Stack) SetLimit(limit int) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.limit = limit
	h.trimLocked()
}

// Limit returns the maximum number of undo snapshots.
func (h *Stack) Limit() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.limit
}

// Clear releases every snapshot.
func (h *Stack) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	releaseAll(h.undo)
	releaseAll(h.redo)
	h.undo = nil
	h.redo = nil
}

func releaseAll(snapshots []*Snapshot) {
	for i, s := range snapshots {
		s.Release()
		snapshots[i] = nil
	}
}

func describe(snapshots []*Snapshot) []Info {
	result := make([]Info, len(snapshots))
	for i, s := range snapshots {
		result[i] = Info{
			Kind:      s.Kind,
			Length:    s.Rope.Len(),
			Timestamp: s.Time,
		}
	}
	return result
}
