package layout

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// TabExpander places code points on screen columns.
type TabExpander struct {
	tabWidth int
}

// NewTabExpander creates a tab expander with the given tab width.
func NewTabExpander(tabWidth int) *TabExpander {
	if tabWidth < 1 {
		tabWidth = 4
	}
	return &TabExpander{tabWidth: tabWidth}
}

// TabWidth returns the current tab width.
func (t *TabExpander) TabWidth() int {
	return t.tabWidth
}

// SetTabWidth sets the tab width.
func (t *TabExpander) SetTabWidth(width int) {
	t.tabWidth = max(width, 1)
}

// NextTabStop returns the next tab stop column after the given column.
func (t *TabExpander) NextTabStop(col int) int {
	return col + t.tabWidth - (col % t.tabWidth)
}

// RuneWidth returns the number of cells r takes at col. Control
// characters take one cell and are drawn as a placeholder.
func (t *TabExpander) RuneWidth(r rune, col int) int {
	switch {
	case r == '\t':
		return t.NextTabStop(col) - col
	case unicode.IsControl(r):
		return 1
	}
	return uniseg.StringWidth(string(r))
}

// ExpandedWidth calculates the visual width of a string with tab expansion.
func (t *TabExpander) ExpandedWidth(s string) int {
	col := 0
	for _, r := range s {
		col += t.RuneWidth(r, col)
	}
	return col
}

// IndexToColumn converts a code point index within s to a visual column.
// Indexes past the end extend the line one cell per code point.
func (t *TabExpander) IndexToColumn(s string, index int) int {
	col, i := 0, 0
	for _, r := range s {
		if i >= index {
			return col
		}
		col += t.RuneWidth(r, col)
		i++
	}
	return col + index - i
}

// ColumnToIndex converts a visual column to the index of the code point
// covering it, or the length of s when col lies past the end.
func (t *TabExpander) ColumnToIndex(s string, col int) int {
	at, i := 0, 0
	for _, r := range s {
		next := at + t.RuneWidth(r, at)
		if col < next {
			return i
		}
		at = next
		i++
	}
	return i
}

// DefaultTabExpander returns a tab expander with the default tab width of 4.
func DefaultTabExpander() *TabExpander {
	return NewTabExpander(4)
}
