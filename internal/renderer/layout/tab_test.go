package layout

import (
	"testing"
)

func TestNewTabExpander(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{4, 4},
		{8, 8},
		{0, 4},
		{-1, 4},
	}

	for _, tt := range tests {
		if got := NewTabExpander(tt.width).TabWidth(); got != tt.want {
			t.Errorf("NewTabExpander(%d).TabWidth() = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestTabExpanderSetTabWidth(t *testing.T) {
	te := NewTabExpander(4)
	te.SetTabWidth(8)
	if te.TabWidth() != 8 {
		t.Errorf("TabWidth() = %d, want 8", te.TabWidth())
	}
	te.SetTabWidth(0)
	if te.TabWidth() != 1 {
		t.Errorf("TabWidth() = %d, want 1", te.TabWidth())
	}
}

func TestNextTabStop(t *testing.T) {
	te := NewTabExpander(4)
	tests := []struct {
		col  int
		want int
	}{
		{0, 4},
		{1, 4},
		{3, 4},
		{4, 8},
		{7, 8},
	}

	for _, tt := range tests {
		if got := te.NextTabStop(tt.col); got != tt.want {
			t.Errorf("NextTabStop(%d) = %d, want %d", tt.col, got, tt.want)
		}
	}
}

func TestRuneWidth(t *testing.T) {
	te := NewTabExpander(4)
	tests := []struct {
		name string
		r    rune
		col  int
		want int
	}{
		{"ascii", 'a', 0, 1},
		{"tab at stop", '\t', 0, 4},
		{"tab mid", '\t', 3, 1},
		{"wide", '世', 0, 2},
		{"control", '\x01', 0, 1},
	}

	for _, tt := range tests {
		if got := te.RuneWidth(tt.r, tt.col); got != tt.want {
			t.Errorf("%s: RuneWidth(%q, %d) = %d, want %d", tt.name, tt.r, tt.col, got, tt.want)
		}
	}
}

func TestExpandedWidth(t *testing.T) {
	te := NewTabExpander(4)
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"hello", 5},
		{"\t", 4},
		{"a\tb", 5},
		{"ab\t\tc", 9},
		{"世界", 4},
	}

	for _, tt := range tests {
		if got := te.ExpandedWidth(tt.input); got != tt.want {
			t.Errorf("ExpandedWidth(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestIndexToColumn(t *testing.T) {
	te := NewTabExpander(4)
	tests := []struct {
		input string
		index int
		want  int
	}{
		{"abc", 0, 0},
		{"abc", 2, 2},
		{"abc", 3, 3},
		{"abc", 5, 5},
		{"\tx", 1, 4},
		{"a\tb", 2, 4},
		{"世a", 1, 2},
	}

	for _, tt := range tests {
		if got := te.IndexToColumn(tt.input, tt.index); got != tt.want {
			t.Errorf("IndexToColumn(%q, %d) = %d, want %d", tt.input, tt.index, got, tt.want)
		}
	}
}

func TestColumnToIndex(t *testing.T) {
	te := NewTabExpander(4)
	tests := []struct {
		input string
		col   int
		want  int
	}{
		{"abc", 1, 1},
		{"abc", 9, 3},
		{"\tx", 2, 0},
		{"\tx", 4, 1},
		{"世a", 1, 0},
		{"世a", 2, 1},
	}

	for _, tt := range tests {
		if got := te.ColumnToIndex(tt.input, tt.col); got != tt.want {
			t.Errorf("ColumnToIndex(%q, %d) = %d, want %d", tt.input, tt.col, got, tt.want)
		}
	}
}

func TestLayout(t *testing.T) {
	te := NewTabExpander(4)
	l := te.Layout("a\t世\x02")

	want := []Cell{
		{Rune: 'a', Index: 0, Col: 0, Width: 1},
		{Rune: ' ', Index: 1, Col: 1, Width: 3},
		{Rune: '世', Index: 2, Col: 4, Width: 2},
		{Rune: Placeholder, Index: 3, Col: 6, Width: 1},
	}
	if len(l.Cells) != len(want) {
		t.Fatalf("len(Cells) = %d, want %d", len(l.Cells), len(want))
	}
	for i := range want {
		if l.Cells[i] != want[i] {
			t.Errorf("Cells[%d] = %+v, want %+v", i, l.Cells[i], want[i])
		}
	}
	if l.Width != 7 {
		t.Errorf("Width = %d, want 7", l.Width)
	}
	if got := l.Column(2); got != 4 {
		t.Errorf("Column(2) = %d, want 4", got)
	}
	if got := l.Column(6); got != 9 {
		t.Errorf("Column(6) = %d, want 9", got)
	}
}
