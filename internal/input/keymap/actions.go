package keymap

import (
	"slices"

	"github.com/dshills/ropetext/internal/engine/buffer"
)

// Actions handled outside the buffer.
const (
	// ActionInsert types the character of the key.
	ActionInsert = "edit.char"
	ActionSave   = "file.save"
	ActionQuit   = "app.quit"
	ActionNext   = "file.next"
	ActionPrev   = "file.previous"
)

// Handler runs one action on a buffer.
type Handler func(b *buffer.TextBuffer)

var appActions = []string{ActionInsert, ActionSave, ActionQuit, ActionNext, ActionPrev}

var bufferActions = map[string]Handler{
	"cursor.up":       func(b *buffer.TextBuffer) { b.CursorRow(-1, false) },
	"cursor.down":     func(b *buffer.TextBuffer) { b.CursorRow(1, false) },
	"cursor.forward":  func(b *buffer.TextBuffer) { b.CursorChar(1, false) },
	"cursor.backward": func(b *buffer.TextBuffer) { b.CursorChar(-1, false) },
	"select.up":       func(b *buffer.TextBuffer) { b.CursorRow(-1, true) },
	"select.down":     func(b *buffer.TextBuffer) { b.CursorRow(1, true) },
	"select.forward":  func(b *buffer.TextBuffer) { b.CursorChar(1, true) },
	"select.backward": func(b *buffer.TextBuffer) { b.CursorChar(-1, true) },

	"cursor.wordForward":  func(b *buffer.TextBuffer) { b.CursorWord(1, false) },
	"cursor.wordBackward": func(b *buffer.TextBuffer) { b.CursorWord(-1, false) },
	"select.wordForward":  func(b *buffer.TextBuffer) { b.CursorWord(1, true) },
	"select.wordBackward": func(b *buffer.TextBuffer) { b.CursorWord(-1, true) },

	"cursor.paragraphUp":   func(b *buffer.TextBuffer) { b.CursorParagraph(-1, false) },
	"cursor.paragraphDown": func(b *buffer.TextBuffer) { b.CursorParagraph(1, false) },
	"select.paragraphUp":   func(b *buffer.TextBuffer) { b.CursorParagraph(-1, true) },
	"select.paragraphDown": func(b *buffer.TextBuffer) { b.CursorParagraph(1, true) },

	"cursor.lineBegin": func(b *buffer.TextBuffer) { b.CursorLine(-1, false) },
	"cursor.lineEnd":   func(b *buffer.TextBuffer) { b.CursorLine(1, false) },
	"select.lineBegin": func(b *buffer.TextBuffer) { b.CursorLine(-1, true) },
	"select.lineEnd":   func(b *buffer.TextBuffer) { b.CursorLine(1, true) },

	"cursor.bufferBegin": func(b *buffer.TextBuffer) { b.CursorBufferBegin(false) },
	"cursor.bufferEnd":   func(b *buffer.TextBuffer) { b.CursorBufferEnd(false) },
	"select.bufferBegin": func(b *buffer.TextBuffer) { b.CursorBufferBegin(true) },
	"select.bufferEnd":   func(b *buffer.TextBuffer) { b.CursorBufferEnd(true) },

	"select.all":          (*buffer.TextBuffer).SelectAll,
	"select.word":         (*buffer.TextBuffer).SelectWord,
	"select.line":         (*buffer.TextBuffer).SelectLine,
	"selection.swap":      (*buffer.TextBuffer).SelectionSwap,
	"selection.clear":     (*buffer.TextBuffer).SelectionClear,
	"selection.addAbove":  func(b *buffer.TextBuffer) { b.AddSelectionOnAdjacentRow(-1) },
	"selection.addBelow":  func(b *buffer.TextBuffer) { b.AddSelectionOnAdjacentRow(1) },
	"selection.duplicate": func(b *buffer.TextBuffer) { b.EditDuplicate(1) },

	"edit.newline":        func(b *buffer.TextBuffer) { b.EditNewline(1) },
	"edit.space":          func(b *buffer.TextBuffer) { b.EditChar(' ', 1) },
	"edit.tab":            func(b *buffer.TextBuffer) { b.EditTab(1) },
	"edit.indent":         func(b *buffer.TextBuffer) { b.EditIndent(1) },
	"edit.unindent":       func(b *buffer.TextBuffer) { b.EditIndent(-1) },
	"edit.delete":         func(b *buffer.TextBuffer) { b.EditDelete(1) },
	"edit.deleteLines":    func(b *buffer.TextBuffer) { b.EditDeleteLines(1) },
	"edit.backspace":      func(b *buffer.TextBuffer) { b.EditBackspace(1) },
	"edit.backspaceLines": func(b *buffer.TextBuffer) { b.EditBackspaceLines(1) },
	"edit.duplicateLines": func(b *buffer.TextBuffer) { b.EditDuplicateLines(1) },

	"line.moveUp":   func(b *buffer.TextBuffer) { b.EditMoveLines(-1) },
	"line.moveDown": func(b *buffer.TextBuffer) { b.EditMoveLines(1) },

	"history.undo": func(b *buffer.TextBuffer) { b.Undo() },
	"history.redo": func(b *buffer.TextBuffer) { b.Redo() },
}

// Run runs a buffer action. It returns false for names it does not know,
// including the actions the caller handles.
func Run(b *buffer.TextBuffer, action string) bool {
	fn, ok := bufferActions[action]
	if !ok {
		return false
	}
	fn(b)
	return true
}

// IsAction reports whether name is a buffer action or one of the actions
// handled outside the buffer.
func IsAction(name string) bool {
	_, ok := bufferActions[name]
	return ok || slices.Contains(appActions, name)
}

// Actions returns every action name, sorted.
func Actions() []string {
	names := slices.Clone(appActions)
	for name := range bufferActions {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
