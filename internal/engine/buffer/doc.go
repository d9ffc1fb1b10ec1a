// Package buffer provides the TextBuffer: one rope, an ordered list of
// selections, and snapshot-based undo/redo.
//
// The buffer package provides:
//
//   - A single edit primitive that replaces a range and shifts every
//     selection, so any number of cursors stay valid after each edit
//   - Insertion, deletion, indentation, duplication and line moves that
//     apply to every selection at once
//   - Motion by character, row, word, line, paragraph and buffer
//   - Multi-cursor editing with one primary selection
//   - Edit coalescing: a run of edits of one kind is one undo step
//   - Damage flags that tell a view what to redraw
//
// Basic usage:
//
//	buf := buffer.NewFromString("hello", buffer.WithTabWidth(4))
//	defer buf.Close()
//
//	buf.CursorBufferEnd(false)
//	buf.EditChar('!', 1)       // "hello!"
//	buf.CursorChar(-1, false)  // motion closes the open action
//	buf.Undo()                 // "hello"
//
// Counts and Clamping:
//
// Every operation takes a repeat count; counts of zero or less do nothing.
// Offsets and points are clamped to the text, and motion past either end
// of the buffer leaves that selection where it is. No operation returns an
// error.
//
// Thread Safety:
//
// A TextBuffer is not thread-safe. All calls must come from one goroutine,
// normally the editor's event loop. Ropes obtained from Rope() are
// immutable and may be read from any goroutine.
package buffer
