// Package rope provides an immutable, reference-counted rope of Unicode code
// points for efficient text storage and manipulation.
//
// A rope is a balanced tree. Leaf nodes hold up to LeafCapacity code points
// contiguously; internal nodes hold between MinChildren and MaxChildren
// children of equal level and cache aggregated metrics (length, newline count
// and the length of the trailing run after the last newline). Every leaf sits
// at the same depth, so the height of a rope of n code points is O(log n).
//
// Key features:
//   - O(log n) prefix, suffix, substring and append
//   - Nodes are never modified once built; slices share whole subtrees
//   - Row/column conversion that skips whole subtrees via cached metrics
//   - Bounded forward and reverse iteration with early exit
//   - Exact reference counts; nodes return to a NodePool when released
//
// Ownership:
//
// A Rope value owns one reference to its root. Every function that returns a
// Rope hands the caller a new reference; arguments are only borrowed. Copy
// shares ownership in O(1) and Release gives a reference back. Plain struct
// assignment does not take a reference, so a Rope must not be used after the
// Release of the value it was assigned from. Ropes that are simply dropped
// are reclaimed by the garbage collector instead of the pool.
//
// Basic usage:
//
//	r := rope.FromString("hello world")
//	head := r.Prefix(5)             // "hello"
//	tail := r.Suffix(5)             // " world"
//	both := head.Append(tail)       // "hello world"
//	p := both.IndexToPoint(7)       // Point{Row: 0, Col: 7}
//	head.Release()
//	tail.Release()
package rope
