// Package viewport tracks which part of a text is visible in a window.
package viewport

import "sync"

// Viewport represents the visible portion of the buffer. Rows and columns
// are zero based; columns are screen cells, not code points.
type Viewport struct {
	mu sync.RWMutex

	// Position in buffer (first visible row and column)
	topRow  int
	leftCol int

	// Size in screen cells
	width  int
	height int

	margins MarginConfig

	// Number of rows in the buffer; 0 means unknown.
	rows int
}

// NewViewport creates a viewport with the given size.
// Width and height are clamped to a minimum of 1.
func NewViewport(width, height int) *Viewport {
	return &Viewport{
		width:   max(width, 1),
		height:  max(height, 1),
		margins: DefaultMargins(),
	}
}

// Width returns the viewport width.
func (v *Viewport) Width() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.width
}

// Height returns the viewport height.
func (v *Viewport) Height() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.height
}

// TopRow returns the first visible row.
func (v *Viewport) TopRow() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.topRow
}

// LeftColumn returns the first visible column.
func (v *Viewport) LeftColumn() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.leftCol
}

// Resize updates the viewport size.
func (v *Viewport) Resize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.width = max(width, 1)
	v.height = max(height, 1)
}

// SetRows sets the number of rows in the buffer and pulls the top row back
// when the text has shrunk below it.
func (v *Viewport) SetRows(rows int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.rows = max(rows, 0)
	if v.rows > 0 && v.topRow >= v.rows {
		v.topRow = v.rows - 1
	}
}

// VisibleRows returns the first and last row the viewport can show. The
// last row may lie past the end of the buffer.
func (v *Viewport) VisibleRows() (first, last int) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.topRow, v.topRow + v.height - 1
}

// RowToScreen converts a buffer row to a screen row.
// Returns -1 if the row is not visible.
func (v *Viewport) RowToScreen(row int) int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if row < v.topRow || row >= v.topRow+v.height {
		return -1
	}
	return row - v.topRow
}

// ColumnToScreen converts a buffer column to a screen column. The result
// is negative or at least Width() when the column is scrolled out.
func (v *Viewport) ColumnToScreen(col int) int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return col - v.leftCol
}

// ScrollTo shows row at the top.
func (v *Viewport) ScrollTo(row int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.topRow = v.clampRow(row)
}

// ScrollBy scrolls by a delta number of rows.
func (v *Viewport) ScrollBy(delta int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.topRow = v.clampRow(v.topRow + delta)
}

func (v *Viewport) clampRow(row int) int {
	if v.rows > 0 && row >= v.rows {
		row = v.rows - 1
	}
	return max(row, 0)
}

// ScrollToReveal scrolls minimally so that row and col are visible with
// the scroll margins around them. Returns true if scrolling occurred.
func (v *Viewport) ScrollToReveal(row, col int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	m := v.effectiveMargins()
	top, left := v.topRow, v.leftCol

	switch {
	case row < top+m.Top:
		top = max(row-m.Top, 0)
	case row > top+v.height-1-m.Bottom:
		top = row - v.height + 1 + m.Bottom
	}

	switch {
	case col < left+m.Left:
		left = max(col-m.Left, 0)
	case col > left+v.width-1-m.Right:
		left = col - v.width + 1 + m.Right
	}

	top = v.clampRow(top)
	if top == v.topRow && left == v.leftCol {
		return false
	}
	v.topRow, v.leftCol = top, left
	return true
}
