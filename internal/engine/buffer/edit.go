package buffer

import (
	"slices"
	"strings"

	"github.com/dshills/ropetext/internal/engine/cursor"
	"github.com/dshills/ropetext/internal/engine/history"
	"github.com/dshills/ropetext/internal/engine/rope"
)

// EditChar replaces every selection with n copies of ch and leaves each
// cursor after the insertion. Consecutive characters of one class form a
// single undo step.
func (b *TextBuffer) EditChar(ch rune, n int) {
	if n <= 0 {
		return
	}
	b.beginAction(history.ClassOf(ch))

	text := rope.FromRunes(slices.Repeat([]rune{ch}, n))
	defer text.Release()
	b.replaceSelections(text)
	b.sels.Dedupe()
}

// EditText replaces every selection with n copies of text as one
// undo step.
func (b *TextBuffer) EditText(text rope.Rope, n int) {
	if n <= 0 || text.IsEmpty() {
		return
	}
	b.beginAction(history.ActionEdit)

	repeated := repeat(text, n)
	defer repeated.Release()
	b.replaceSelections(repeated)
	b.sels.Dedupe()
	b.endAction()
}

// EditString is EditText for a string.
func (b *TextBuffer) EditString(s string, n int) {
	text := rope.FromString(s)
	defer text.Release()
	b.EditText(text, n)
}

// EditNewline inserts n newlines at every selection.
func (b *TextBuffer) EditNewline(n int) {
	b.EditChar('\n', n)
}

// EditTab inserts n tab stops at every selection: '\t' with hard tabs,
// otherwise spaces up to the next multiple of the tab width.
func (b *TextBuffer) EditTab(n int) {
	if n <= 0 {
		return
	}
	if b.hardTabs {
		b.EditChar('\t', n)
		return
	}
	b.beginAction(history.ActionWhitespace)

	for x := 0; x < b.sels.Len(); x++ {
		sel := b.sels.Get(x)
		col := b.colOf(sel.Head())
		width := b.tabWidth - col%b.tabWidth + (n-1)*b.tabWidth
		spaces := rope.FromString(strings.Repeat(" ", width))
		b.edit(sel.Head(), sel.Tail(), spaces)
		spaces.Release()
		b.placeCursor(x, sel.Head()+width)
	}
	b.sels.Dedupe()
}

// EditIndent indents every row touched by a selection by n steps, or
// unindents by -n steps when n is negative. Blank rows are not indented.
func (b *TextBuffer) EditIndent(n int) {
	if n == 0 {
		return
	}
	if n > 0 {
		b.beginAction(history.ActionIndent)
	} else {
		b.beginAction(history.ActionUnindent)
	}

	unit := strings.Repeat(" ", b.tabWidth)
	if b.hardTabs {
		unit = "\t"
	}
	rows := b.selectedRows()
	for range max(n, -n) {
		for _, row := range rows {
			start := b.text.LineStart(row)
			if n > 0 {
				if !b.isBlankRow(row) {
					b.insertString(start, unit)
				}
				continue
			}
			if width := b.leadingIndent(row); width > 0 {
				b.remove(start, start+width)
			}
		}
	}
}

// leadingIndent returns the length of one indentation step at the start
// of row: a single '\t', or up to tab width spaces.
func (b *TextBuffer) leadingIndent(row int) int {
	start, end := b.text.LineStart(row), b.text.LineEnd(row)
	width := 0
	b.text.ForEachRange(start, end, func(_ int, ch rune) bool {
		switch {
		case ch == '\t' && width == 0:
			width = 1
			return false
		case ch == ' ' && width < b.tabWidth:
			width++
			return width < b.tabWidth
		default:
			return false
		}
	})
	return width
}

// EditDelete removes the selected regions, or the code point after each
// cursor when nothing is selected. Each further unit of n removes one more
// code point per cursor.
func (b *TextBuffer) EditDelete(n int) {
	if n <= 0 {
		return
	}
	b.beginAction(history.ActionDelete)

	for range n {
		if b.sels.HasRegion() {
			b.removeRegions()
			continue
		}
		for x := 0; x < b.sels.Len(); x++ {
			at := b.sels.Get(x).Cursor
			if at < b.text.Len() {
				b.remove(at, at+1)
			}
		}
	}
	b.sels.Dedupe()
}

// EditBackspace removes the selected regions, or the code point before
// each cursor when nothing is selected.
func (b *TextBuffer) EditBackspace(n int) {
	if n <= 0 {
		return
	}
	b.beginAction(history.ActionBackspace)

	for range n {
		if b.sels.HasRegion() {
			b.removeRegions()
			continue
		}
		for x := 0; x < b.sels.Len(); x++ {
			at := b.sels.Get(x).Cursor
			if at > 0 {
				b.remove(at-1, at)
			}
		}
	}
	b.sels.Dedupe()
}

// EditDeleteLines removes every row touched by a selection, newline
// included. Removing the last row takes the newline before it instead.
func (b *TextBuffer) EditDeleteLines(n int) {
	if n <= 0 {
		return
	}
	b.beginAction(history.ActionDeleteLines)

	for range n {
		// Bottom up, so the rows of the spans above stay put.
		for _, span := range slices.Backward(b.rowSpans()) {
			start := b.text.LineStart(span[0])
			end := b.text.Len()
			if span[1] < b.text.LineCount() {
				end = b.text.LineStart(span[1] + 1)
			} else if start > 0 {
				start--
			}
			b.remove(start, end)
		}
		b.sels.Dedupe()
	}
}

// EditBackspaceLines removes the selected regions, or the text between
// the start of the row and each cursor. A cursor already at the start of
// its row joins the row with the one above.
func (b *TextBuffer) EditBackspaceLines(n int) {
	if n <= 0 {
		return
	}
	b.beginAction(history.ActionBackspaceLines)

	for range n {
		if b.sels.HasRegion() {
			b.removeRegions()
			continue
		}
		for x := 0; x < b.sels.Len(); x++ {
			at := b.sels.Get(x).Cursor
			start := b.text.LineStart(b.rowOf(at))
			switch {
			case at > start:
				b.remove(start, at)
			case at > 0:
				b.remove(at-1, at)
			}
		}
	}
	b.sels.Dedupe()
}

// EditDuplicate inserts n copies of every selected region in front of it.
// Selections without a region are left alone.
func (b *TextBuffer) EditDuplicate(n int) {
	if n <= 0 {
		return
	}
	b.beginAction(history.ActionEdit)

	for x := 0; x < b.sels.Len(); x++ {
		sel := b.sels.Get(x)
		if sel.IsEmpty() {
			continue
		}
		region := b.text.Substring(sel.Head(), sel.Tail())
		copies := repeat(region, n)
		b.edit(sel.Head(), sel.Head(), copies)
		region.Release()
		copies.Release()
	}
	b.endAction()
}

// EditDuplicateLines inserts n copies of every row touched by a selection
// above those rows. Selections follow their rows down.
func (b *TextBuffer) EditDuplicateLines(n int) {
	if n <= 0 {
		return
	}
	b.beginAction(history.ActionEdit)

	for x := 0; x < b.sels.Len(); x++ {
		top, bot := b.rowSpan(b.sels.Get(x))
		start := b.text.LineStart(top)

		var block rope.Rope
		if bot < b.text.LineCount() {
			block = b.text.Substring(start, b.text.LineStart(bot+1))
		} else {
			rows := b.text.Suffix(start)
			nl := rope.FromString("\n")
			block = rows.Append(nl)
			rows.Release()
			nl.Release()
		}
		copies := repeat(block, n)
		b.edit(start, start, copies)
		block.Release()
		copies.Release()
	}
	b.endAction()
}

// EditMoveLines moves the rows spanned by all selections down by n rows,
// or up by -n. Movement stops at either end of the buffer.
func (b *TextBuffer) EditMoveLines(n int) {
	if n == 0 {
		return
	}
	b.beginAction(history.ActionMoveLines)

	for ; n != 0; n -= sign(n) {
		top, bot := b.text.LineCount(), 0
		for _, sel := range b.sels.All() {
			t, u := b.rowSpan(sel)
			top, bot = min(top, t), max(bot, u)
		}
		if (n > 0 && bot >= b.text.LineCount()) || (n < 0 && top <= 0) {
			break
		}

		blockStart, blockEnd := b.text.LineStart(top), b.text.LineEnd(bot)
		var otherStart, otherEnd, regionStart, regionEnd int
		if n > 0 {
			otherStart, otherEnd = blockEnd+1, b.text.LineEnd(bot+1)
			regionStart, regionEnd = blockStart, otherEnd
		} else {
			otherStart, otherEnd = b.text.LineStart(top-1), blockStart-1
			regionStart, regionEnd = otherStart, blockEnd
		}

		block := b.text.Substring(blockStart, blockEnd)
		other := b.text.Substring(otherStart, otherEnd)
		nl := rope.FromString("\n")
		shift := otherEnd - otherStart + 1
		var swapped rope.Rope
		if n > 0 {
			swapped = rope.Concat(other, nl, block)
		} else {
			swapped = rope.Concat(block, nl, other)
			shift = -shift
		}

		saved := b.sels.All()
		b.edit(regionStart, regionEnd, swapped)
		for x, sel := range saved {
			sel.Cursor += shift
			sel.Anchor += shift
			b.sels.Set(x, sel)
		}

		for _, r := range []*rope.Rope{&block, &other, &nl, &swapped} {
			r.Release()
		}
	}
}

// replaceSelections replaces every selection with text and collapses it
// after the insertion, whichever end the cursor was at.
func (b *TextBuffer) replaceSelections(text rope.Rope) {
	for x := 0; x < b.sels.Len(); x++ {
		sel := b.sels.Get(x)
		b.edit(sel.Head(), sel.Tail(), text)
		b.placeCursor(x, sel.Head()+text.Len())
	}
}

// placeCursor collapses selection x to offset at.
func (b *TextBuffer) placeCursor(x, at int) {
	sel := b.sels.Get(x)
	sel.Cursor, sel.Anchor = at, at
	sel.ColMem = b.colOf(at)
	b.sels.Set(x, sel)
}

// removeRegions deletes the region of every selection.
func (b *TextBuffer) removeRegions() {
	for x := 0; x < b.sels.Len(); x++ {
		sel := b.sels.Get(x)
		b.remove(sel.Head(), sel.Tail())
	}
}

// rowSpan returns the first and last row a selection touches. A region
// ending at the start of a row does not touch that row.
func (b *TextBuffer) rowSpan(sel cursor.Selection) (top, bot int) {
	head, tail := b.text.IndexToPoint(sel.Head()), b.text.IndexToPoint(sel.Tail())
	top, bot = head.Row, tail.Row
	if bot > top && tail.Col == 0 {
		bot--
	}
	return top, bot
}

// rowSpans returns the row spans of all selections, ascending, with
// overlapping and adjacent spans merged.
func (b *TextBuffer) rowSpans() [][2]int {
	var spans [][2]int
	for _, sel := range b.sels.All() {
		top, bot := b.rowSpan(sel)
		spans = append(spans, [2]int{top, bot})
	}
	slices.SortFunc(spans, func(a, c [2]int) int { return a[0] - c[0] })

	var merged [][2]int
	for _, span := range spans {
		if last := len(merged) - 1; last >= 0 && span[0] <= merged[last][1]+1 {
			merged[last][1] = max(merged[last][1], span[1])
			continue
		}
		merged = append(merged, span)
	}
	return merged
}

// selectedRows returns every row touched by a selection, ascending and
// without repeats.
func (b *TextBuffer) selectedRows() []int {
	var rows []int
	for _, sel := range b.sels.All() {
		top, bot := b.rowSpan(sel)
		for row := top; row <= bot; row++ {
			rows = append(rows, row)
		}
	}
	slices.Sort(rows)
	return slices.Compact(rows)
}

// repeat returns n copies of text back to back.
func repeat(text rope.Rope, n int) rope.Rope {
	acc := text.Copy()
	for i := 1; i < n; i++ {
		next := acc.Append(text)
		acc.Release()
		acc = next
	}
	return acc
}

func sign(n int) int {
	if n < 0 {
		return -1
	}
	return 1
}
