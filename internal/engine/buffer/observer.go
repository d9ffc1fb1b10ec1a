package buffer

import (
	"github.com/google/uuid"

	"github.com/dshills/ropetext/internal/engine/history"
)

// EventType identifies what happened to the history.
type EventType uint8

// Event types.
const (
	EventCommit EventType = iota
	EventUndo
	EventRedo
)

// String returns the event name.
func (t EventType) String() string {
	switch t {
	case EventCommit:
		return "commit"
	case EventUndo:
		return "undo"
	case EventRedo:
		return "redo"
	default:
		return "unknown"
	}
}

// Event describes one history change.
type Event struct {
	Buffer     uuid.UUID
	Type       EventType
	Action     history.ActionKind
	Length     int // code points after the change
	Selections int
	UndoDepth  int
	RedoDepth  int
}

// Observer receives history events. It runs synchronously and must not
// call back into the buffer.
type Observer func(Event)

func (b *TextBuffer) notify(t EventType, kind history.ActionKind) {
	if b.observer == nil {
		return
	}
	b.observer(Event{
		Buffer:     b.id,
		Type:       t,
		Action:     kind,
		Length:     b.text.Len(),
		Selections: b.sels.Len(),
		UndoDepth:  b.UndoDepth(),
		RedoDepth:  b.RedoDepth(),
	})
}
