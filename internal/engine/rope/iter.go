package rope

import "iter"

// VisitFunc receives one code point and its offset. Returning false stops
// the iteration.
type VisitFunc func(offset int, ch rune) bool

// ForEach visits every code point in order.
// Returns false if fn stopped the iteration early.
func (r Rope) ForEach(fn VisitFunc) bool {
	return r.ForEachRange(0, r.Len(), fn)
}

// ForEachRange visits the code points in [i, j) in order, skipping subtrees
// outside the range. Bounds are clamped.
func (r Rope) ForEachRange(i, j int, fn VisitFunc) bool {
	i, j = r.clamp(i), r.clamp(j)
	if i >= j {
		return true
	}
	return visitForward(r.root, 0, i, j, fn)
}

// ForEachReverse visits every code point from last to first.
func (r Rope) ForEachReverse(fn VisitFunc) bool {
	return r.ForEachReverseRange(0, r.Len(), fn)
}

// ForEachReverseRange visits the code points in [i, j) from j-1 down to i.
func (r Rope) ForEachReverseRange(i, j int, fn VisitFunc) bool {
	i, j = r.clamp(i), r.clamp(j)
	if i >= j {
		return true
	}
	return visitBackward(r.root, 0, i, j, fn)
}

func visitForward(n *node, base, i, j int, fn VisitFunc) bool {
	if n.isLeaf() {
		for k := max(i-base, 0); k < min(j-base, n.length); k++ {
			if !fn(base+k, n.text[k]) {
				return false
			}
		}
		return true
	}
	for k := 0; k < int(n.count); k++ {
		c := n.children[k]
		if base >= j {
			break
		}
		if base+c.length > i && !visitForward(c, base, i, j, fn) {
			return false
		}
		base += c.length
	}
	return true
}

func visitBackward(n *node, base, i, j int, fn VisitFunc) bool {
	if n.isLeaf() {
		for k := min(j-base, n.length) - 1; k >= max(i-base, 0); k-- {
			if !fn(base+k, n.text[k]) {
				return false
			}
		}
		return true
	}
	end := base + n.length
	for k := int(n.count) - 1; k >= 0; k-- {
		c := n.children[k]
		start := end - c.length
		if end <= i {
			break
		}
		if start < j && !visitBackward(c, start, i, j, fn) {
			return false
		}
		end = start
	}
	return true
}

// All returns an iterator over (offset, code point) pairs in order.
func (r Rope) All() iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		r.ForEach(yield)
	}
}

// Backward returns an iterator over (offset, code point) pairs from last to
// first.
func (r Rope) Backward() iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		r.ForEachReverse(yield)
	}
}

// Lines returns an iterator over (row, line text) pairs. Line text excludes
// the terminating newline. A rope ending in a newline yields a final empty
// line.
func (r Rope) Lines() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for row := 0; row <= r.LineCount(); row++ {
			line := r.Substring(r.LineStart(row), r.LineEnd(row))
			text := line.String()
			line.Release()
			if !yield(row, text) {
				return
			}
		}
	}
}

func pullRunes(r Rope) (func() (rune, bool), func()) {
	next, stop := iter.Pull2(r.All())
	return func() (rune, bool) {
		_, ch, ok := next()
		return ch, ok
	}, stop
}
