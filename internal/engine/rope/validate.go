package rope

import (
	"errors"
	"fmt"
)

// ErrInvalidTree is wrapped by every error returned from Check.
var ErrInvalidTree = errors.New("rope: invalid tree")

// Check walks the whole tree and reports the first structural violation:
// a leaf that is empty or over capacity, an internal node with fewer than
// MinChildren or more than MaxChildren children, children of unequal level,
// a dead node, or cached metrics that disagree with the content.
func Check(r Rope) error {
	if r.root == nil {
		return nil
	}
	_, err := checkNode(r.root, "root")
	return err
}

type metrics struct {
	length, newlines, rem int
}

func checkNode(n *node, path string) (metrics, error) {
	fail := func(format string, args ...any) (metrics, error) {
		return metrics{}, fmt.Errorf("%w: %s: %s", ErrInvalidTree, path, fmt.Sprintf(format, args...))
	}
	if n.refs.Load() <= 0 {
		return fail("node has %d references", n.refs.Load())
	}

	var m metrics
	if n.isLeaf() {
		if n.count != 0 {
			return fail("leaf has %d children", n.count)
		}
		if len(n.text) == 0 || len(n.text) > LeafCapacity {
			return fail("leaf holds %d code points", len(n.text))
		}
		for _, ch := range n.text {
			m.length++
			if ch == '\n' {
				m.newlines++
				m.rem = 0
			} else {
				m.rem++
			}
		}
	} else {
		if n.count < MinChildren || n.count > MaxChildren {
			return fail("internal node has %d children", n.count)
		}
		for i := 0; i < int(n.count); i++ {
			c := n.children[i]
			if c == nil {
				return fail("child %d is nil", i)
			}
			if c.level+1 != n.level {
				return fail("child %d has level %d under level %d", i, c.level, n.level)
			}
			cm, err := checkNode(c, fmt.Sprintf("%s/%d", path, i))
			if err != nil {
				return metrics{}, err
			}
			m.length += cm.length
			m.newlines += cm.newlines
			if cm.newlines > 0 {
				m.rem = 0
			}
			m.rem += cm.rem
		}
		for i := int(n.count); i < MaxChildren; i++ {
			if n.children[i] != nil {
				return fail("stale child in slot %d", i)
			}
		}
	}

	if m.length != n.length || m.newlines != n.newlines || m.rem != n.rem {
		return fail("cached metrics %d/%d/%d, computed %d/%d/%d",
			n.length, n.newlines, n.rem, m.length, m.newlines, m.rem)
	}
	return m, nil
}
