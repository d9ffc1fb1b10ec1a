package buffer

import (
	"github.com/dshills/ropetext/internal/engine/cursor"
	"github.com/dshills/ropetext/internal/engine/history"
	"github.com/dshills/ropetext/internal/engine/rope"
)

// moveEach moves the cursor of every selection to the offset returned by
// to. With extend the anchor stays; otherwise the selection collapses.
// Motion always commits the open action first.
func (b *TextBuffer) moveEach(extend, keepColumn bool, to func(sel cursor.Selection) int) {
	b.endAction()
	b.sels.MapInPlace(func(sel cursor.Selection) cursor.Selection {
		sel = sel.MoveTo(to(sel), extend)
		if !keepColumn {
			sel.ColMem = b.colOf(sel.Cursor)
		}
		return sel
	})
	b.sels.Dedupe()
}

// CursorChar moves every cursor n code points, clamped to the buffer.
func (b *TextBuffer) CursorChar(n int, extend bool) {
	b.moveEach(extend, false, func(sel cursor.Selection) int {
		return max(0, min(sel.Cursor+n, b.text.Len()))
	})
}

// CursorRow moves every cursor n rows, aiming for its remembered column
// and clamping to the length of the target row.
func (b *TextBuffer) CursorRow(n int, extend bool) {
	b.moveEach(extend, true, func(sel cursor.Selection) int {
		row := b.rowOf(sel.Cursor)
		return b.text.PointToIndex(rope.Point{Row: row + n, Col: sel.ColMem})
	})
}

// CursorWord moves every cursor n word boundaries forward, or -n
// backward. A boundary is where the character class changes.
func (b *TextBuffer) CursorWord(n int, extend bool) {
	b.moveEach(extend, false, func(sel cursor.Selection) int {
		at := sel.Cursor
		for k := n; k > 0 && at < b.text.Len(); k-- {
			at = b.wordEnd(at)
		}
		for k := n; k < 0 && at > 0; k++ {
			at = b.wordStart(at)
		}
		return at
	})
}

// wordEnd returns the first offset after at whose class differs from the
// code point at at.
func (b *TextBuffer) wordEnd(at int) int {
	ch, ok := b.text.At(at)
	if !ok {
		return at
	}
	class := history.ClassOf(ch)
	end := b.text.Len()
	b.text.ForEachRange(at, end, func(i int, ch rune) bool {
		if history.ClassOf(ch) != class {
			end = i
			return false
		}
		return true
	})
	return end
}

// wordStart returns the start of the run of one class that ends at at.
func (b *TextBuffer) wordStart(at int) int {
	ch, ok := b.text.At(at - 1)
	if !ok {
		return at
	}
	class := history.ClassOf(ch)
	start := 0
	b.text.ForEachReverseRange(0, at, func(i int, ch rune) bool {
		if history.ClassOf(ch) != class {
			start = i + 1
			return false
		}
		return true
	})
	return start
}

// CursorLine moves every cursor to the end of its row, or with negative n
// to the start. Each further step continues to the next or previous row.
func (b *TextBuffer) CursorLine(n int, extend bool) {
	b.moveEach(extend, false, func(sel cursor.Selection) int {
		at := sel.Cursor
		for k := n; k > 0 && at < b.text.Len(); k-- {
			at = b.text.LineEnd(b.rowOf(at + 1))
		}
		for k := n; k < 0 && at > 0; k++ {
			at = b.text.LineStart(b.rowOf(at - 1))
		}
		return at
	})
}

// CursorBufferBegin moves every cursor to offset 0.
func (b *TextBuffer) CursorBufferBegin(extend bool) {
	b.moveEach(extend, false, func(cursor.Selection) int { return 0 })
}

// CursorBufferEnd moves every cursor to the end of the text.
func (b *TextBuffer) CursorBufferEnd(extend bool) {
	b.moveEach(extend, false, func(cursor.Selection) int { return b.text.Len() })
}

// CursorParagraph moves every cursor n paragraphs forward, or -n back.
// Paragraphs are separated by blank rows; the cursor lands on the start of
// the separating blank row, or on either end of the buffer.
func (b *TextBuffer) CursorParagraph(n int, extend bool) {
	last := b.text.LineCount()
	b.moveEach(extend, false, func(sel cursor.Selection) int {
		row := b.rowOf(sel.Cursor)
		for k := n; k > 0; k-- {
			for row <= last && b.isBlankRow(row) {
				row++
			}
			for row <= last && !b.isBlankRow(row) {
				row++
			}
		}
		for k := n; k < 0; k++ {
			row--
			for row >= 0 && b.isBlankRow(row) {
				row--
			}
			for row >= 0 && !b.isBlankRow(row) {
				row--
			}
		}
		switch {
		case row > last:
			return b.text.Len()
		case row < 0:
			return 0
		}
		return b.text.LineStart(row)
	})
}

// CursorGoto collapses the selection list to the primary selection and
// moves it to row and col, clamped.
func (b *TextBuffer) CursorGoto(row, col int, extend bool) {
	b.endAction()
	b.sels.CollapseToPrimary()
	b.moveEach(extend, false, func(cursor.Selection) int {
		return b.text.PointToIndex(rope.Point{Row: row, Col: col})
	})
}

// SelectAll collapses to the primary selection and selects the whole text.
func (b *TextBuffer) SelectAll() {
	b.endAction()
	b.sels.CollapseToPrimary()
	b.sels.Set(0, cursor.NewSelection(0, b.text.Len()))
	b.sels.MapInPlace(b.rememberColumn)
}

// SelectWord extends every selection to the run of one character class
// around its cursor.
func (b *TextBuffer) SelectWord() {
	b.endAction()
	b.sels.MapInPlace(func(sel cursor.Selection) cursor.Selection {
		at := sel.Cursor
		if ch, ok := b.text.At(at); !ok || history.ClassOf(ch) == history.ActionWhitespace {
			// Prefer the word that ends at the cursor.
			if prev, ok := b.text.At(at - 1); ok && history.ClassOf(prev) != history.ActionWhitespace {
				at--
			}
		}
		end := b.wordEnd(at)
		start := b.wordStart(min(at+1, end))
		sel.Anchor, sel.Cursor = start, end
		return b.rememberColumn(sel)
	})
}

// SelectLine extends every selection to whole rows, newline included.
func (b *TextBuffer) SelectLine() {
	b.endAction()
	b.sels.MapInPlace(func(sel cursor.Selection) cursor.Selection {
		top, bot := b.rowSpan(sel)
		sel.Anchor = b.text.LineStart(top)
		sel.Cursor = b.text.LineStart(bot + 1)
		return b.rememberColumn(sel)
	})
}

// SelectionSwap exchanges cursor and anchor of every selection.
func (b *TextBuffer) SelectionSwap() {
	b.endAction()
	b.sels.MapInPlace(func(sel cursor.Selection) cursor.Selection {
		return b.rememberColumn(sel.Swap())
	})
}

// SelectionClear removes every selected region. When no region is left
// to clear, it drops every selection except the primary.
func (b *TextBuffer) SelectionClear() {
	b.endAction()
	if b.sels.HasRegion() {
		b.sels.MapInPlace(cursor.Selection.Collapse)
		return
	}
	b.sels.CollapseToPrimary()
}

// AddSelectionOnAdjacentRow adds n cursors on the rows below the last
// selection, or -n cursors on the rows above the first one. Each new
// cursor aims for the remembered column of the selection it was copied
// from, clamped to its row. Adding stops at the first or last row.
func (b *TextBuffer) AddSelectionOnAdjacentRow(n int) {
	b.endAction()
	for ; n > 0; n-- {
		from := b.sels.Last()
		row := b.rowOf(from.Cursor)
		if row >= b.text.LineCount() {
			break
		}
		b.sels.Append(b.cursorOnRow(row+1, from.ColMem))
	}
	for ; n < 0; n++ {
		from := b.sels.First()
		row := b.rowOf(from.Cursor)
		if row <= 0 {
			break
		}
		b.sels.Prepend(b.cursorOnRow(row-1, from.ColMem))
	}
}

func (b *TextBuffer) cursorOnRow(row, col int) cursor.Selection {
	sel := cursor.At(b.text.PointToIndex(rope.Point{Row: row, Col: col}))
	sel.ColMem = col
	return sel
}

func (b *TextBuffer) rememberColumn(sel cursor.Selection) cursor.Selection {
	sel.ColMem = b.colOf(sel.Cursor)
	return sel
}
