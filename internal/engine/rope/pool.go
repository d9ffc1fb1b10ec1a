package rope

import (
	"sync"
	"sync/atomic"
)

// NodePool provides allocation and recycling of rope nodes.
// It uses sync.Pool for thread-safe pooling with per-P caches and keeps a
// count of nodes currently handed out, which makes reference leaks visible.
type NodePool struct {
	leafPool     sync.Pool
	internalPool sync.Pool
	live         atomic.Int64
}

// DefaultPool is the global node pool used by rope operations.
var DefaultPool = NewNodePool()

// NewNodePool creates a new node pool.
func NewNodePool() *NodePool {
	return &NodePool{
		leafPool: sync.Pool{
			New: func() any {
				return &node{text: make([]rune, 0, LeafCapacity)}
			},
		},
		internalPool: sync.Pool{
			New: func() any {
				return &node{level: 1}
			},
		},
	}
}

// LiveNodes returns the number of nodes taken from the pool and not yet
// released. Nodes of ropes dropped without Release stay counted.
func (p *NodePool) LiveNodes() int64 {
	return p.live.Load()
}

// getLeaf retrieves an empty leaf holding one reference.
func (p *NodePool) getLeaf() *node {
	n := p.leafPool.Get().(*node)
	n.reset(0)
	n.refs.Store(1)
	p.live.Add(1)
	return n
}

// getInternal retrieves an empty internal node of the given level holding
// one reference.
func (p *NodePool) getInternal(level uint8) *node {
	n := p.internalPool.Get().(*node)
	n.reset(level)
	n.text = nil
	n.refs.Store(1)
	p.live.Add(1)
	return n
}

// put returns a node with no remaining references to the pool.
// The node must not be used after calling this method.
func (p *NodePool) put(n *node) {
	p.live.Add(-1)
	if n.isLeaf() {
		// Drop oversized buffers rather than pin them.
		if cap(n.text) > LeafCapacity {
			n.text = nil
		}
		n.text = n.text[:0]
		p.leafPool.Put(n)
		return
	}
	n.children = [MaxChildren]*node{}
	p.internalPool.Put(n)
}

func (n *node) reset(level uint8) {
	n.level = level
	n.count = 0
	n.text = n.text[:0]
	n.length = 0
	n.newlines = 0
	n.rem = 0
}
