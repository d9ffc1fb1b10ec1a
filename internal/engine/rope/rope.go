package rope

import (
	"strings"
	"unicode/utf8"
)

// Rope is an immutable rope of code points. Operations return new Rope
// values; the receiver is never modified. A Rope owns one reference to its
// root; see the package documentation for the ownership rules.
type Rope struct {
	root *node
}

// New creates an empty rope. The empty rope has no root and needs no
// Release, though calling it is harmless.
func New() Rope {
	return Rope{}
}

// FromRunes bulk-builds a balanced rope over a copy of text.
func FromRunes(text []rune) Rope {
	if len(text) == 0 {
		return New()
	}
	return Rope{root: build(chunk(text))}
}

// FromString creates a rope from a UTF-8 string. Invalid bytes decode to
// utf8.RuneError.
func FromString(s string) Rope {
	if len(s) == 0 {
		return New()
	}
	return FromRunes([]rune(s))
}

// Copy returns a new reference to the same text in O(1).
func (r Rope) Copy() Rope {
	if r.root != nil {
		r.root.retain()
	}
	return r
}

// Release gives back the reference held by r and leaves r empty.
func (r *Rope) Release() {
	releaseNode(r.root)
	r.root = nil
}

// Len returns the number of code points.
func (r Rope) Len() int {
	if r.root == nil {
		return 0
	}
	return r.root.length
}

// LineCount returns the number of newline code points. A rope with no
// newline has a line count of 0, which keeps the count additive under
// Append.
func (r Rope) LineCount() int {
	if r.root == nil {
		return 0
	}
	return r.root.newlines
}

// IsEmpty returns true if the rope contains no text.
func (r Rope) IsEmpty() bool {
	return r.root == nil
}

// Height returns the level of the root: 0 for a single leaf or the empty rope.
func (r Rope) Height() int {
	if r.root == nil {
		return 0
	}
	return int(r.root.level)
}

func (r Rope) clamp(i int) int {
	return max(0, min(i, r.Len()))
}

// Prefix returns the first i code points. i is clamped to [0, Len()].
func (r Rope) Prefix(i int) Rope {
	if r.root == nil {
		return New()
	}
	return Rope{root: prefix(r.root, r.clamp(i))}
}

// Suffix returns everything after the first i code points.
func (r Rope) Suffix(i int) Rope {
	if r.root == nil {
		return New()
	}
	return Rope{root: suffix(r.root, r.clamp(i))}
}

// Substring returns the code points in [i, j). An inverted range is empty.
func (r Rope) Substring(i, j int) Rope {
	i, j = r.clamp(i), r.clamp(j)
	if j <= i {
		return New()
	}
	tail := r.Suffix(i)
	defer tail.Release()
	return tail.Prefix(j - i)
}

// Append returns r followed by other. Neither operand is consumed.
func (r Rope) Append(other Rope) Rope {
	return Rope{root: appendNodes(r.root, other.root)}
}

// Concat appends any number of ropes in order.
func Concat(ropes ...Rope) Rope {
	acc := New()
	for _, r := range ropes {
		next := acc.Append(r)
		acc.Release()
		acc = next
	}
	return acc
}

// At returns the code point at offset i.
// Returns false if i is outside [0, Len()).
func (r Rope) At(i int) (rune, bool) {
	if r.root == nil || i < 0 || i >= r.root.length {
		return 0, false
	}
	n := r.root
	for !n.isLeaf() {
		for k := 0; k < int(n.count); k++ {
			c := n.children[k]
			if i < c.length {
				n = c
				break
			}
			i -= c.length
		}
	}
	return n.text[i], true
}

// Runes returns a copy of the text as code points.
func (r Rope) Runes() []rune {
	out := make([]rune, 0, r.Len())
	r.eachLeaf(func(text []rune) {
		out = append(out, text...)
	})
	return out
}

// String returns the full text as a string.
// Use sparingly for large ropes.
func (r Rope) String() string {
	if r.root == nil {
		return ""
	}
	var sb strings.Builder
	sb.Grow(r.Len())
	r.eachLeaf(func(text []rune) {
		for _, ch := range text {
			sb.WriteRune(ch)
		}
	})
	return sb.String()
}

// ByteLen returns the length of the UTF-8 encoding of the text.
func (r Rope) ByteLen() int {
	size := 0
	r.eachLeaf(func(text []rune) {
		for _, ch := range text {
			size += utf8.RuneLen(ch)
		}
	})
	return size
}

// Equal compares content, not tree shape.
func (r Rope) Equal(other Rope) bool {
	if r.root == other.root {
		return true
	}
	if r.Len() != other.Len() || r.LineCount() != other.LineCount() {
		return false
	}
	next, stop := pullRunes(other)
	defer stop()
	equal := true
	r.ForEach(func(_ int, ch rune) bool {
		o, ok := next()
		equal = ok && o == ch
		return equal
	})
	return equal
}

func (r Rope) eachLeaf(fn func(text []rune)) {
	if r.root != nil {
		walkLeaves(r.root, fn)
	}
}

func walkLeaves(n *node, fn func(text []rune)) {
	if n.isLeaf() {
		fn(n.text)
		return
	}
	for i := 0; i < int(n.count); i++ {
		walkLeaves(n.children[i], fn)
	}
}
