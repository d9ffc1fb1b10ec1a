package rope

import "fmt"

// Point is a zero-based row and column. Column counts code points since the
// start of the row.
type Point struct {
	Row int
	Col int
}

// String returns a human-readable representation.
func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

// Less reports whether p comes before other.
func (p Point) Less(other Point) bool {
	if p.Row != other.Row {
		return p.Row < other.Row
	}
	return p.Col < other.Col
}

// IndexToPoint converts an offset to a point. Offsets are clamped; an offset
// at or past the end maps to the end of the last row.
func (r Rope) IndexToPoint(i int) Point {
	if r.root == nil {
		return Point{}
	}
	i = r.clamp(i)
	if i >= r.root.length {
		return Point{Row: r.root.newlines, Col: r.root.rem}
	}

	var p Point
	n := r.root
	for !n.isLeaf() {
		for k := 0; k < int(n.count); k++ {
			c := n.children[k]
			if i < c.length {
				n = c
				break
			}
			i -= c.length
			p.Row += c.newlines
			if c.newlines > 0 {
				p.Col = c.rem
			} else {
				p.Col += c.length
			}
		}
	}
	for _, ch := range n.text[:i] {
		if ch == '\n' {
			p.Row++
			p.Col = 0
		} else {
			p.Col++
		}
	}
	return p
}

// LineStart returns the offset of the first code point of row. Rows before
// the first clamp to 0 and rows after the last clamp to Len().
func (r Rope) LineStart(row int) int {
	if r.root == nil || row <= 0 {
		return 0
	}
	if row > r.root.newlines {
		return r.root.length
	}

	off := 0
	n := r.root
	for !n.isLeaf() {
		for k := 0; k < int(n.count); k++ {
			c := n.children[k]
			if row <= c.newlines {
				n = c
				break
			}
			row -= c.newlines
			off += c.length
		}
	}
	for k, ch := range n.text {
		if ch == '\n' {
			row--
			if row == 0 {
				return off + k + 1
			}
		}
	}
	panic("rope: newline count out of sync with leaf text")
}

// LineEnd returns the offset of the newline that terminates row, or Len()
// for the last row.
func (r Rope) LineEnd(row int) int {
	if r.root == nil || row >= r.root.newlines {
		return r.Len()
	}
	return r.LineStart(max(row, 0)+1) - 1
}

// PointToIndex converts a point to an offset. The row is clamped to the
// existing rows and the column to the length of that row, so the result
// never lands past the row's terminating newline.
func (r Rope) PointToIndex(p Point) int {
	if r.root == nil {
		return 0
	}
	row := max(0, min(p.Row, r.root.newlines))
	start := r.LineStart(row)
	return min(start+max(p.Col, 0), r.LineEnd(row))
}
