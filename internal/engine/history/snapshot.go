package history

import (
	"time"

	"github.com/dshills/ropetext/internal/engine/cursor"
	"github.com/dshills/ropetext/internal/engine/rope"
)

// Snapshot is the buffer state after one committed action.
type Snapshot struct {
	Rope          rope.Rope    // owned reference
	Selections    *cursor.List // after the action
	PreSelections *cursor.List // before the action began
	Kind          ActionKind
	Time          time.Time
}

// NewSnapshot takes a new reference to text and copies both selection lists.
func NewSnapshot(kind ActionKind, text rope.Rope, sels, pre *cursor.List) *Snapshot {
	return &Snapshot{
		Rope:          text.Copy(),
		Selections:    sels.Clone(),
		PreSelections: pre.Clone(),
		Kind:          kind,
		Time:          time.Now(),
	}
}

// Release gives back the rope reference.
func (s *Snapshot) Release() {
	s.Rope.Release()
}
