package cursor

import "fmt"

// Selection is a cursor/anchor pair. Offsets count code points.
// Selection is an immutable value type.
type Selection struct {
	Cursor  int  // Where typing occurs
	Anchor  int  // Other end of the selected region
	ColMem  int  // Column that vertical motion aims for
	Primary bool // Reported to the UI as the cursor
}

// At creates a selection with no region at offset.
func At(offset int) Selection {
	return Selection{Cursor: offset, Anchor: offset}
}

// NewSelection creates a selection from anchor to cursor.
func NewSelection(anchor, cursor int) Selection {
	return Selection{Cursor: cursor, Anchor: anchor}
}

// IsEmpty returns true if the selection has no region.
func (s Selection) IsEmpty() bool {
	return s.Cursor == s.Anchor
}

// Head returns the lower bound of the selection.
func (s Selection) Head() int {
	return min(s.Cursor, s.Anchor)
}

// Tail returns the upper bound of the selection.
func (s Selection) Tail() int {
	return max(s.Cursor, s.Anchor)
}

// Len returns the number of code points selected.
func (s Selection) Len() int {
	return s.Tail() - s.Head()
}

// IsBackward returns true if the cursor sits before the anchor.
func (s Selection) IsBackward() bool {
	return s.Cursor < s.Anchor
}

// MoveTo moves the cursor to offset. With extend the anchor stays put,
// otherwise the selection collapses at offset.
func (s Selection) MoveTo(offset int, extend bool) Selection {
	s.Cursor = offset
	if !extend {
		s.Anchor = offset
	}
	return s
}

// Collapse drops the region, leaving the cursor where it is.
func (s Selection) Collapse() Selection {
	s.Anchor = s.Cursor
	return s
}

// CollapseToHead drops the region, leaving the cursor at its lower bound.
func (s Selection) CollapseToHead() Selection {
	s.Cursor = s.Head()
	s.Anchor = s.Cursor
	return s
}

// Swap exchanges cursor and anchor.
func (s Selection) Swap() Selection {
	s.Cursor, s.Anchor = s.Anchor, s.Cursor
	return s
}

// Contains returns true if offset is within [Head, Tail).
func (s Selection) Contains(offset int) bool {
	return offset >= s.Head() && offset < s.Tail()
}

// Clamp returns the selection with both bounds clamped to [0, limit].
func (s Selection) Clamp(limit int) Selection {
	s.Cursor = max(0, min(s.Cursor, limit))
	s.Anchor = max(0, min(s.Anchor, limit))
	return s
}

// SameSpan returns true if both selections have the same cursor and anchor.
func (s Selection) SameSpan(other Selection) bool {
	return s.Cursor == other.Cursor && s.Anchor == other.Anchor
}

// String returns a string representation of the selection.
func (s Selection) String() string {
	mark := ""
	if s.Primary {
		mark = "*"
	}
	if s.IsEmpty() {
		return fmt.Sprintf("Cursor%s(%d)", mark, s.Cursor)
	}
	dir := "→"
	if s.IsBackward() {
		dir = "←"
	}
	return fmt.Sprintf("Selection%s(%d%s%d)", mark, s.Anchor, dir, s.Cursor)
}
