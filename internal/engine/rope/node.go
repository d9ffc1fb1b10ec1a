package rope

import (
	"fmt"
	"sync/atomic"
)

// Tree structure constants.
const (
	// LeafCapacity is the maximum number of code points held by one leaf.
	LeafCapacity = 128

	// MinChildren is the minimum number of children of an internal node.
	MinChildren = 2

	// MaxChildren is the maximum number of children of an internal node.
	MaxChildren = 4
)

// node is either a leaf (level 0, text set) or an internal node
// (level > 0, count children in children[:count]).
type node struct {
	refs atomic.Int32

	level    uint8
	count    uint8
	children [MaxChildren]*node

	text []rune

	length   int // code points in the subtree
	newlines int // '\n' code points in the subtree
	rem      int // code points after the last newline
}

func (n *node) isLeaf() bool {
	return n.level == 0
}

// retain takes an additional reference to n and returns it.
func (n *node) retain() *node {
	n.refs.Add(1)
	return n
}

// release gives back one reference. When the last reference goes, the
// children are released and the node returns to the pool.
func (n *node) release() {
	refs := n.refs.Add(-1)
	if refs > 0 {
		return
	}
	if refs < 0 {
		panic("rope: release of dead node")
	}
	for i := 0; i < int(n.count); i++ {
		n.children[i].release()
		n.children[i] = nil
	}
	DefaultPool.put(n)
}

// release on a possibly nil node.
func releaseNode(n *node) {
	if n != nil {
		n.release()
	}
}

// newLeaf builds a leaf holding a copy of text. The caller owns the result.
func newLeaf(text []rune) *node {
	if len(text) == 0 || len(text) > LeafCapacity {
		panic(fmt.Sprintf("rope: invalid leaf size %d", len(text)))
	}
	n := DefaultPool.getLeaf()
	n.text = append(n.text[:0], text...)
	n.length = len(text)
	for _, ch := range text {
		if ch == '\n' {
			n.newlines++
			n.rem = 0
		} else {
			n.rem++
		}
	}
	return n
}

// newInternal builds an internal node over children, taking ownership of
// one reference to each of them.
func newInternal(children ...*node) *node {
	if len(children) < MinChildren || len(children) > MaxChildren {
		panic(fmt.Sprintf("rope: invalid internal node with %d children", len(children)))
	}
	level := children[0].level
	n := DefaultPool.getInternal(level + 1)
	for i, c := range children {
		if c.level != level {
			panic(fmt.Sprintf("rope: mismatched child levels %d and %d", level, c.level))
		}
		n.children[i] = c
		n.length += c.length
		n.newlines += c.newlines
		if c.newlines > 0 {
			n.rem = 0
		}
		n.rem += c.rem
	}
	n.count = uint8(len(children))
	return n
}

// chunk splits text into leaves of half capacity, leaving room for later
// edits. A tail shorter than LeafCapacity goes into the final leaf whole.
func chunk(text []rune) []*node {
	var leaves []*node
	for i := 0; i < len(text); i += LeafCapacity / 2 {
		if len(text)-i < LeafCapacity {
			leaves = append(leaves, newLeaf(text[i:]))
			break
		}
		leaves = append(leaves, newLeaf(text[i:i+LeafCapacity/2]))
	}
	return leaves
}

// gather pairs adjacent nodes of one level into parents. A run of exactly
// three remaining nodes becomes one three-child parent so that no parent is
// ever left with a single child. Ownership of nodes moves to the parents.
func gather(nodes []*node) []*node {
	if len(nodes) < MinChildren {
		panic(fmt.Sprintf("rope: cannot gather %d nodes", len(nodes)))
	}
	parents := make([]*node, 0, len(nodes)/2)
	for i := 0; i < len(nodes); i += 2 {
		if len(nodes)-i == 3 {
			parents = append(parents, newInternal(nodes[i], nodes[i+1], nodes[i+2]))
			break
		}
		parents = append(parents, newInternal(nodes[i], nodes[i+1]))
	}
	return parents
}

// build gathers nodes of one level until a single root remains.
func build(nodes []*node) *node {
	switch len(nodes) {
	case 0:
		return nil
	case 1:
		return nodes[0]
	}
	for len(nodes) > 1 {
		nodes = gather(nodes)
	}
	return nodes[0]
}

// siblings retains a run of siblings and returns them as one subtree:
// nil for none, the child itself for one, a new parent otherwise.
func siblings(children []*node) *node {
	switch len(children) {
	case 0:
		return nil
	case 1:
		return children[0].retain()
	}
	owned := make([]*node, len(children))
	for i, c := range children {
		owned[i] = c.retain()
	}
	return newInternal(owned...)
}

// pack turns up to MaxChildren+1 nodes of one level into one or two parents.
func pack(children []*node) []*node {
	if len(children) <= MaxChildren {
		return []*node{newInternal(children...)}
	}
	return gather(children)
}

// join concatenates two trees of any level, taking ownership of both.
// Untouched subtrees are shared; only the spine where the trees meet is
// rebuilt.
func join(a, b *node) *node {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case a.level == b.level:
		if !a.isLeaf() && int(a.count+b.count) <= MaxChildren {
			children := make([]*node, 0, MaxChildren)
			for _, c := range a.children[:a.count] {
				children = append(children, c.retain())
			}
			for _, c := range b.children[:b.count] {
				children = append(children, c.retain())
			}
			a.release()
			b.release()
			return newInternal(children...)
		}
		return newInternal(a, b)
	case a.level > b.level:
		return build(joinRight(a, b))
	default:
		return build(joinLeft(a, b))
	}
}

// joinRight hangs b off the right spine of the taller tree a. The result is
// one or two nodes at a's level.
func joinRight(a, b *node) []*node {
	last := a.children[a.count-1]
	var tail []*node
	if last.level == b.level {
		tail = []*node{last.retain(), b}
	} else {
		tail = joinRight(last.retain(), b)
	}
	children := make([]*node, 0, MaxChildren+1)
	for _, c := range a.children[:a.count-1] {
		children = append(children, c.retain())
	}
	children = append(children, tail...)
	a.release()
	return pack(children)
}

// joinLeft hangs a off the left spine of the taller tree b.
func joinLeft(a, b *node) []*node {
	first := b.children[0]
	var head []*node
	if first.level == a.level {
		head = []*node{a, first.retain()}
	} else {
		head = joinLeft(a, first.retain())
	}
	children := make([]*node, 0, MaxChildren+1)
	children = append(children, head...)
	for _, c := range b.children[1:b.count] {
		children = append(children, c.retain())
	}
	b.release()
	return pack(children)
}

// prefix returns the first i code points of n. Whole children left of the
// cut are shared; at most one boundary leaf is copied.
func prefix(n *node, i int) *node {
	if i <= 0 {
		return nil
	}
	if i >= n.length {
		return n.retain()
	}
	if n.isLeaf() {
		return newLeaf(n.text[:i])
	}
	off := 0
	for k := 0; k < int(n.count); k++ {
		c := n.children[k]
		if i < off+c.length {
			return join(siblings(n.children[:k]), prefix(c, i-off))
		}
		off += c.length
	}
	panic("rope: prefix offset outside node")
}

// suffix returns n without its first i code points.
func suffix(n *node, i int) *node {
	if i <= 0 {
		return n.retain()
	}
	if i >= n.length {
		return nil
	}
	if n.isLeaf() {
		return newLeaf(n.text[i:])
	}
	off := 0
	for k := 0; k < int(n.count); k++ {
		c := n.children[k]
		if i < off+c.length {
			return join(suffix(c, i-off), siblings(n.children[k+1:n.count]))
		}
		off += c.length
	}
	panic("rope: suffix offset outside node")
}

func leftmostLeaf(n *node) *node {
	for !n.isLeaf() {
		n = n.children[0]
	}
	return n
}

func rightmostLeaf(n *node) *node {
	for !n.isLeaf() {
		n = n.children[n.count-1]
	}
	return n
}

// appendNodes concatenates two borrowed trees. When either boundary leaf is
// less than half full, the two boundary leaves are re-chunked together so
// repeated small edits do not leave a trail of tiny leaves.
func appendNodes(a, b *node) *node {
	if a == nil {
		if b == nil {
			return nil
		}
		return b.retain()
	}
	if b == nil {
		return a.retain()
	}
	l, r := rightmostLeaf(a), leftmostLeaf(b)
	if l.length >= LeafCapacity/2 && r.length >= LeafCapacity/2 {
		return join(a.retain(), b.retain())
	}

	merged := make([]rune, 0, l.length+r.length)
	merged = append(merged, l.text...)
	merged = append(merged, r.text...)

	acc := prefix(a, a.length-l.length)
	for _, leaf := range chunk(merged) {
		acc = join(acc, leaf)
	}
	return join(acc, suffix(b, r.length))
}
