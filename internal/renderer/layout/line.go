// Package layout places the code points of a line on screen columns,
// expanding tabs to tab stops and measuring wide characters.
package layout

import "unicode"

// Cell is one code point placed on screen.
type Cell struct {
	Rune  rune // What to draw; tabs become spaces, controls a placeholder
	Index int  // Code point index within the line
	Col   int  // First screen column
	Width int  // Cells taken; 0 for combining marks
}

// Placeholder is drawn for control characters.
const Placeholder = '�'

// Line is the visual layout of one row of text.
type Line struct {
	Cells []Cell
	Width int // Total visual width in columns
}

// Layout lays out s.
func (t *TabExpander) Layout(s string) Line {
	var l Line
	i := 0
	for _, r := range s {
		w := t.RuneWidth(r, l.Width)
		draw := r
		switch {
		case r == '\t':
			draw = ' '
		case unicode.IsControl(r):
			draw = Placeholder
		}
		l.Cells = append(l.Cells, Cell{Rune: draw, Index: i, Col: l.Width, Width: w})
		l.Width += w
		i++
	}
	return l
}

// Column returns the screen column of the code point at index. Indexes
// past the end extend the line one cell per code point.
func (l Line) Column(index int) int {
	if index < len(l.Cells) {
		return l.Cells[max(index, 0)].Col
	}
	return l.Width + index - len(l.Cells)
}
