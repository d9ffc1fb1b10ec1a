package buffer

import (
	"github.com/google/uuid"

	"github.com/dshills/ropetext/internal/engine/cursor"
	"github.com/dshills/ropetext/internal/engine/history"
	"github.com/dshills/ropetext/internal/engine/rope"
)

// TextBuffer owns one rope, the live selections and the undo history.
type TextBuffer struct {
	id   uuid.UUID
	text rope.Rope

	sels *cursor.List
	pre  *cursor.List // selections before the open action; nil when closed

	action history.ActionKind // ActionNone when no action is open
	hist   *history.Stack
	clean  rope.Rope

	// modified caches IsModified; stale until recomputed after a change.
	modified      bool
	modifiedStale bool

	tabWidth     int
	hardTabs     bool
	historyLimit int

	cursorDamage bool
	textDamage   bool

	observer Observer
}

// New creates a buffer holding text with one primary cursor at offset 0.
// The buffer takes its own reference to text.
func New(text rope.Rope, opts ...Option) *TextBuffer {
	b := &TextBuffer{
		id:           uuid.New(),
		text:         text.Copy(),
		sels:         cursor.NewList(cursor.At(0)),
		tabWidth:     DefaultTabWidth,
		historyLimit: DefaultHistoryLimit,
	}

	for _, opt := range opts {
		opt(b)
	}

	b.hist = history.NewStack(b.historyLimit)
	b.clean = b.text.Copy()

	// The creation state is the bottom snapshot.
	b.beginAction(history.ActionEdit)
	b.endAction()
	return b
}

// NewFromString creates a buffer with initial content.
func NewFromString(s string, opts ...Option) *TextBuffer {
	r := rope.FromString(s)
	defer r.Release()
	return New(r, opts...)
}

// Close releases the text and every history snapshot.
// The buffer must not be used afterwards.
func (b *TextBuffer) Close() {
	b.hist.Clear()
	b.text.Release()
	b.clean.Release()
	b.action = history.ActionNone
	b.pre = nil
}

// ID returns the buffer's unique identifier.
func (b *TextBuffer) ID() uuid.UUID {
	return b.id
}

// Rope returns a new reference to the current text. The caller must
// release it.
func (b *TextBuffer) Rope() rope.Rope {
	return b.text.Copy()
}

// Text returns the full content as a string.
func (b *TextBuffer) Text() string {
	return b.text.String()
}

// Len returns the number of code points.
func (b *TextBuffer) Len() int {
	return b.text.Len()
}

// LineCount returns the number of newlines; the buffer has LineCount()+1
// rows.
func (b *TextBuffer) LineCount() int {
	return b.text.LineCount()
}

// IndexToPoint converts an offset to a row and column.
func (b *TextBuffer) IndexToPoint(i int) rope.Point {
	return b.text.IndexToPoint(i)
}

// PointToIndex converts a row and column to an offset, clamping both.
func (b *TextBuffer) PointToIndex(p rope.Point) int {
	return b.text.PointToIndex(p)
}

// LineText returns the text of row without its newline.
func (b *TextBuffer) LineText(row int) string {
	line := b.text.Substring(b.text.LineStart(row), b.text.LineEnd(row))
	defer line.Release()
	return line.String()
}

// Selections returns a copy of the live selections in list order.
func (b *TextBuffer) Selections() []cursor.Selection {
	return b.sels.All()
}

// Primary returns the primary selection.
func (b *TextBuffer) Primary() cursor.Selection {
	return b.sels.Primary()
}

// TabWidth returns the indentation width.
func (b *TextBuffer) TabWidth() int {
	return b.tabWidth
}

// HardTabs reports whether indentation uses '\t'.
func (b *TextBuffer) HardTabs() bool {
	return b.hardTabs
}

// SetTabWidth changes the indentation width.
func (b *TextBuffer) SetTabWidth(width int) {
	if width > 0 {
		b.tabWidth = width
	}
}

// SetHardTabs changes whether indentation uses '\t'.
func (b *TextBuffer) SetHardTabs(hard bool) {
	b.hardTabs = hard
}

// SetHistoryLimit changes the maximum number of undo snapshots.
func (b *TextBuffer) SetHistoryLimit(limit int) {
	if limit > 0 {
		b.historyLimit = limit
		b.hist.SetLimit(limit)
	}
}

// CanUndo returns true if undo is available.
func (b *TextBuffer) CanUndo() bool {
	return b.hist.CanUndo() || b.action != history.ActionNone
}

// CanRedo returns true if redo is available.
func (b *TextBuffer) CanRedo() bool {
	return b.hist.CanRedo()
}

// UndoDepth returns the number of committed actions that can be undone.
func (b *TextBuffer) UndoDepth() int {
	return b.hist.UndoLen() - 1
}

// RedoDepth returns the number of undone actions that can be redone.
func (b *TextBuffer) RedoDepth() int {
	return b.hist.RedoLen()
}

// ActionOpen reports whether an action is collecting edits.
func (b *TextBuffer) ActionOpen() bool {
	return b.action != history.ActionNone
}

// IsModified reports whether the text differs from the last MarkClean.
// The content is compared at most once per change.
func (b *TextBuffer) IsModified() bool {
	if b.modifiedStale {
		b.modified = !b.text.Equal(b.clean)
		b.modifiedStale = false
	}
	return b.modified
}

// MarkClean records the current text as saved.
func (b *TextBuffer) MarkClean() {
	b.clean.Release()
	b.clean = b.text.Copy()
	b.modified, b.modifiedStale = false, false
}

// TakeCursorDamage reports whether selections changed since the last call.
func (b *TextBuffer) TakeCursorDamage() bool {
	d := b.cursorDamage
	b.cursorDamage = false
	return d
}

// TakeTextDamage reports whether the text changed since the last call.
func (b *TextBuffer) TakeTextDamage() bool {
	d := b.textDamage
	b.textDamage = false
	return d
}

// beginAction opens an action of kind, first committing an open action
// that kind does not coalesce with.
func (b *TextBuffer) beginAction(kind history.ActionKind) {
	if b.action != history.ActionNone && !b.action.Coalesces(kind) {
		b.endAction()
	}
	if b.action == history.ActionNone {
		b.pre = b.sels.Clone()
		b.action = kind
	}
	b.textDamage = true
	b.cursorDamage = true
}

// endAction commits the open action, if any, as a history snapshot.
func (b *TextBuffer) endAction() {
	if b.action != history.ActionNone {
		kind := b.action
		b.hist.Commit(history.NewSnapshot(kind, b.text, b.sels, b.pre))
		b.pre = nil
		b.action = history.ActionNone
		b.notify(EventCommit, kind)
	}
	b.cursorDamage = true
}

// Commit closes the open action so the next edit starts a new undo step.
func (b *TextBuffer) Commit() {
	b.endAction()
}

// edit replaces [i, j) with repl, borrowing repl. Every selection bound at
// or after i moves by the change in length but never before i.
func (b *TextBuffer) edit(i, j int, repl rope.Rope) {
	n := b.text.Len()
	i, j = max(0, min(i, n)), max(0, min(j, n))
	if i > j {
		i = j
	}
	if i == j && repl.IsEmpty() {
		return
	}
	delta := cursor.EditDelta(i, j, repl.Len())

	pre := b.text.Prefix(i)
	suf := b.text.Suffix(j)
	mid := repl.Append(suf)
	next := pre.Append(mid)
	pre.Release()
	suf.Release()
	mid.Release()
	b.text.Release()
	b.text = next
	b.modifiedStale = true

	b.sels.MapInPlace(func(sel cursor.Selection) cursor.Selection {
		if sel.Cursor >= i {
			sel.Cursor = cursor.ShiftOffset(sel.Cursor, i, delta)
			sel.ColMem = b.text.IndexToPoint(sel.Cursor).Col
		}
		sel.Anchor = cursor.ShiftOffset(sel.Anchor, i, delta)
		return sel
	})
}

// remove deletes [i, j).
func (b *TextBuffer) remove(i, j int) {
	b.edit(i, j, rope.New())
}

// insertString inserts s at i.
func (b *TextBuffer) insertString(i int, s string) {
	r := rope.FromString(s)
	defer r.Release()
	b.edit(i, i, r)
}

// Undo restores the state before the newest action. The selections come
// back as they were before that action began. Returns false when only the
// creation state is left.
func (b *TextBuffer) Undo() bool {
	b.endAction()

	popped, top, ok := b.hist.Undo()
	if !ok {
		return false
	}
	b.text.Release()
	b.text = top.Rope.Copy()
	b.modifiedStale = true
	b.sels.Restore(popped.PreSelections)
	b.sels.Clamp(b.text.Len())
	b.textDamage = true
	b.notify(EventUndo, popped.Kind)
	return true
}

// Redo reapplies the newest undone action with the selections it left.
func (b *TextBuffer) Redo() bool {
	b.endAction()

	s, ok := b.hist.Redo()
	if !ok {
		return false
	}
	b.text.Release()
	b.text = s.Rope.Copy()
	b.modifiedStale = true
	b.sels.Restore(s.Selections)
	b.sels.Clamp(b.text.Len())
	b.textDamage = true
	b.notify(EventRedo, s.Kind)
	return true
}

func (b *TextBuffer) rowOf(i int) int {
	return b.text.IndexToPoint(i).Row
}

func (b *TextBuffer) colOf(i int) int {
	return b.text.IndexToPoint(i).Col
}

func (b *TextBuffer) isBlankRow(row int) bool {
	return b.text.LineStart(row) == b.text.LineEnd(row)
}
