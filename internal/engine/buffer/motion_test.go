package buffer

import (
	"testing"

	"github.com/dshills/ropetext/internal/engine/cursor"
)

func TestCursorChar(t *testing.T) {
	b := NewFromString("abc")
	defer b.Close()

	b.CursorChar(2, false)
	checkCursors(t, b, 2)
	b.CursorChar(5, false)
	checkCursors(t, b, 3)
	b.CursorChar(-10, false)
	checkCursors(t, b, 0)
}

func TestCursorCharExtend(t *testing.T) {
	b := NewFromString("abcdef")
	defer b.Close()

	b.CursorChar(1, false)
	b.CursorChar(3, true)
	if got, want := b.Primary(), (cursor.Selection{Anchor: 1, Cursor: 4}); !got.SameSpan(want) {
		t.Errorf("Primary() = %v, want %v", got, want)
	}

	b.CursorChar(1, false)
	if sel := b.Primary(); !sel.IsEmpty() || sel.Cursor != 5 {
		t.Errorf("Primary() = %v, want collapsed at 5", sel)
	}
}

func TestCursorRowRemembersColumn(t *testing.T) {
	b := NewFromString("abcdef\nab\nabcdef")
	defer b.Close()

	b.CursorGoto(0, 5, false)
	checkCursors(t, b, 5)
	b.CursorRow(1, false)
	checkCursors(t, b, 9)
	b.CursorRow(1, false)
	checkCursors(t, b, 15)
	b.CursorRow(-2, false)
	checkCursors(t, b, 5)
}

func TestCursorRowClampsAtEnds(t *testing.T) {
	b := NewFromString("ab\ncd")
	defer b.Close()

	b.CursorChar(1, false)
	b.CursorRow(-1, false)
	checkCursors(t, b, 1)
	b.CursorRow(5, false)
	checkCursors(t, b, 4)
}

func TestCursorWord(t *testing.T) {
	b := NewFromString("foo bar.baz")
	defer b.Close()

	for _, want := range []int{3, 4, 7, 8, 11, 11} {
		b.CursorWord(1, false)
		checkCursors(t, b, want)
	}
	for _, want := range []int{8, 7, 4, 3, 0, 0} {
		b.CursorWord(-1, false)
		checkCursors(t, b, want)
	}

	b.CursorWord(3, false)
	checkCursors(t, b, 7)
}

func TestCursorLine(t *testing.T) {
	b := NewFromString("ab\ncd")
	defer b.Close()

	b.CursorLine(1, false)
	checkCursors(t, b, 2)
	b.CursorLine(1, false)
	checkCursors(t, b, 5)
	b.CursorLine(-1, false)
	checkCursors(t, b, 3)
	b.CursorLine(-1, false)
	checkCursors(t, b, 0)
}

func TestCursorBufferEnds(t *testing.T) {
	b := NewFromString("one\ntwo")
	defer b.Close()

	b.CursorBufferEnd(false)
	checkCursors(t, b, 7)
	b.CursorBufferBegin(true)
	if got, want := b.Primary(), (cursor.Selection{Anchor: 7, Cursor: 0}); !got.SameSpan(want) {
		t.Errorf("Primary() = %v, want %v", got, want)
	}
}

func TestMotionMergesCursors(t *testing.T) {
	b := NewFromString("ab\ncd")
	defer b.Close()

	b.AddSelectionOnAdjacentRow(1)
	checkCursors(t, b, 0, 3)
	b.CursorBufferBegin(false)
	checkCursors(t, b, 0)
}

func TestCursorParagraph(t *testing.T) {
	b := NewFromString("a\nb\n\nc\nd\n\ne")
	defer b.Close()

	for _, want := range []int{4, 9, 11, 11} {
		b.CursorParagraph(1, false)
		checkCursors(t, b, want)
	}
	b.CursorParagraph(-1, false)
	checkCursors(t, b, 4)
	b.CursorParagraph(-1, false)
	checkCursors(t, b, 0)
}

func TestMotionCommitsOpenAction(t *testing.T) {
	b := NewFromString("")
	defer b.Close()

	b.EditChar('a', 1)
	if !b.ActionOpen() {
		t.Fatal("ActionOpen() = false after typing")
	}
	b.CursorChar(-1, false)
	if b.ActionOpen() {
		t.Error("ActionOpen() = true after a motion")
	}
}

func TestSelectAll(t *testing.T) {
	b := NewFromString("abc\ndef")
	defer b.Close()

	b.AddSelectionOnAdjacentRow(1)
	b.SelectAll()

	sels := b.Selections()
	if len(sels) != 1 {
		t.Fatalf("len(Selections()) = %d, want 1", len(sels))
	}
	if got, want := sels[0], (cursor.Selection{Anchor: 0, Cursor: 7}); !got.SameSpan(want) {
		t.Errorf("selection = %v, want %v", got, want)
	}
}

func TestSelectWord(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		at           int
		anchor, curs int
	}{
		{"inside", "foo bar", 5, 4, 7},
		{"start", "foo bar", 4, 4, 7},
		{"after word", "foo bar", 3, 0, 3},
		{"end of text", "foo bar", 7, 4, 7},
		{"symbols", "a+=b", 2, 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewFromString(tt.text)
			defer b.Close()

			b.CursorChar(tt.at, false)
			b.SelectWord()
			sel := b.Primary()
			if sel.Anchor != tt.anchor || sel.Cursor != tt.curs {
				t.Errorf("SelectWord() = [%d, %d), want [%d, %d)", sel.Anchor, sel.Cursor, tt.anchor, tt.curs)
			}
		})
	}
}

func TestSelectLine(t *testing.T) {
	b := NewFromString("one\ntwo\nthree")
	defer b.Close()

	b.CursorChar(5, false)
	b.SelectLine()
	if got, want := b.Primary(), (cursor.Selection{Anchor: 4, Cursor: 8}); !got.SameSpan(want) {
		t.Errorf("SelectLine() = %v, want %v", got, want)
	}

	// The last row has no newline to include.
	b.CursorRow(1, false)
	b.SelectLine()
	if got, want := b.Primary(), (cursor.Selection{Anchor: 8, Cursor: 13}); !got.SameSpan(want) {
		t.Errorf("SelectLine() = %v, want %v", got, want)
	}
}

func TestSelectionSwap(t *testing.T) {
	b := NewFromString("abcdef")
	defer b.Close()

	b.CursorChar(1, false)
	b.CursorChar(3, true)
	b.SelectionSwap()
	sel := b.Primary()
	if sel.Anchor != 4 || sel.Cursor != 1 {
		t.Errorf("SelectionSwap() = %v, want anchor 4 cursor 1", sel)
	}
}

func TestSelectionClear(t *testing.T) {
	b := NewFromString("abc\nabc\nabc")
	defer b.Close()

	b.AddSelectionOnAdjacentRow(2)
	b.CursorChar(2, true)

	// The first clear drops the regions and keeps every cursor.
	b.SelectionClear()
	checkCursors(t, b, 2, 6, 10)
	for _, sel := range b.Selections() {
		if !sel.IsEmpty() {
			t.Errorf("selection %v still has a region", sel)
		}
	}

	// The second one keeps only the primary cursor.
	b.SelectionClear()
	checkCursors(t, b, 2)
}

func TestAddSelectionOnAdjacentRow(t *testing.T) {
	tests := []struct {
		name     string
		row, col int
		n        int
		want     []int
	}{
		{"below clamps column", 0, 3, 3, []int{3, 6, 10}},
		{"below keeps column", 0, 2, 1, []int{2, 6}},
		{"above", 2, 1, -2, []int{1, 5, 8}},
		{"above stops at first row", 1, 0, -5, []int{0, 4}},
		{"below on last row", 2, 0, 1, []int{7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewFromString("abc\nde\nfghi")
			defer b.Close()

			b.CursorGoto(tt.row, tt.col, false)
			b.AddSelectionOnAdjacentRow(tt.n)
			checkCursors(t, b, tt.want...)
		})
	}
}

func TestAddedCursorsTypeTogether(t *testing.T) {
	b := NewFromString("ab\ncd\nef")
	defer b.Close()

	b.AddSelectionOnAdjacentRow(2)
	b.EditChar('>', 1)
	checkText(t, b, ">ab\n>cd\n>ef")
	checkCursors(t, b, 1, 5, 9)
}
