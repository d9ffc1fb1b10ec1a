package cursor

// List is an ordered set of selections with exactly one primary.
// The zero value is not usable; create lists with NewList.
type List struct {
	selections []Selection
}

// NewList creates a list holding initial as its primary selection.
func NewList(initial Selection) *List {
	initial.Primary = true
	return &List{selections: []Selection{initial}}
}

// Len returns the number of selections.
func (l *List) Len() int {
	return len(l.selections)
}

// IsMulti returns true if there is more than one selection.
func (l *List) IsMulti() bool {
	return len(l.selections) > 1
}

// Get returns the selection at index i.
// Returns an empty selection if i is out of range.
func (l *List) Get(i int) Selection {
	if i < 0 || i >= len(l.selections) {
		return Selection{}
	}
	return l.selections[i]
}

// Set replaces the selection at index i. The primary mark stays with the
// slot, whatever sel carries.
func (l *List) Set(i int, sel Selection) {
	if i < 0 || i >= len(l.selections) {
		return
	}
	sel.Primary = l.selections[i].Primary
	l.selections[i] = sel
}

// First returns the first selection in list order.
func (l *List) First() Selection {
	return l.selections[0]
}

// Last returns the last selection in list order.
func (l *List) Last() Selection {
	return l.selections[len(l.selections)-1]
}

// PrimaryIndex returns the index of the primary selection.
func (l *List) PrimaryIndex() int {
	for i, sel := range l.selections {
		if sel.Primary {
			return i
		}
	}
	return 0
}

// Primary returns the primary selection.
func (l *List) Primary() Selection {
	return l.selections[l.PrimaryIndex()]
}

// All returns a copy of all selections.
// The returned slice is safe to modify without affecting the List.
func (l *List) All() []Selection {
	result := make([]Selection, len(l.selections))
	copy(result, l.selections)
	return result
}

// Append adds a non-primary selection at the end.
func (l *List) Append(sel Selection) {
	sel.Primary = false
	l.selections = append(l.selections, sel)
}

// Prepend adds a non-primary selection at the front.
func (l *List) Prepend(sel Selection) {
	sel.Primary = false
	l.selections = append([]Selection{sel}, l.selections...)
}

// Reset replaces every selection with sel, which becomes primary.
func (l *List) Reset(sel Selection) {
	sel.Primary = true
	l.selections = append(l.selections[:0], sel)
}

// CollapseToPrimary drops every selection except the primary.
func (l *List) CollapseToPrimary() {
	l.Reset(l.Primary())
}

// HasRegion returns true if any selection is non-empty.
func (l *List) HasRegion() bool {
	for _, sel := range l.selections {
		if !sel.IsEmpty() {
			return true
		}
	}
	return false
}

// MapInPlace applies fn to each selection in place. The primary mark is
// preserved.
func (l *List) MapInPlace(fn func(sel Selection) Selection) {
	for i, sel := range l.selections {
		l.Set(i, fn(sel))
	}
}

// Shift moves every bound of every selection after an edit at offset at
// that changed the length by delta.
func (l *List) Shift(at, delta int) {
	for i, sel := range l.selections {
		l.selections[i] = sel.Shift(at, delta)
	}
}

// Clamp clamps all selections to [0, limit].
func (l *List) Clamp(limit int) {
	for i, sel := range l.selections {
		l.selections[i] = sel.Clamp(limit)
	}
}

// Dedupe removes selections whose cursor and anchor repeat an earlier
// one. When a duplicate of the primary is dropped the survivor becomes
// primary.
func (l *List) Dedupe() {
	if len(l.selections) <= 1 {
		return
	}
	out := l.selections[:0]
	for _, sel := range l.selections {
		dup := -1
		for j, kept := range out {
			if kept.SameSpan(sel) {
				dup = j
				break
			}
		}
		if dup < 0 {
			out = append(out, sel)
			continue
		}
		if sel.Primary {
			out[dup].Primary = true
		}
	}
	l.selections = out
}

// Clone returns a deep copy of the list.
func (l *List) Clone() *List {
	return &List{selections: l.All()}
}

// Restore replaces the contents with a copy of other.
func (l *List) Restore(other *List) {
	l.selections = append(l.selections[:0], other.selections...)
}

// Equal returns true if both lists hold the same selections in the same
// order.
func (l *List) Equal(other *List) bool {
	if other == nil || len(l.selections) != len(other.selections) {
		return false
	}
	for i, sel := range l.selections {
		if sel != other.selections[i] {
			return false
		}
	}
	return true
}
