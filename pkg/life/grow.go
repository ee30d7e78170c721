package life

import (
	"math"

	"github.com/go-hashlife/hashlife/internal/debug"
	"github.com/go-hashlife/hashlife/internal/xsync"
)

// emptyMemo caches the canonical all-dead node at each height, avoiding a
// repeated top-down rebuild (and repeated interner lookups) every time an
// empty node of a given height is needed, which growth and compaction do
// constantly. Built lazily, one OncePtr per height, the same
// single-assignment shape Node.next uses for its own memo.
var emptyMemo [maxHeight + 1]xsync.OncePtr[Node]

// EmptyAtHeight returns the canonical all-dead node of the given height.
func EmptyAtHeight(height uint8) *Node {
	if height == 0 {
		return Leaf(false)
	}

	if n := emptyMemo[height].Load(); n != nil {
		return n
	}

	child := EmptyAtHeight(height - 1)

	return emptyMemo[height].Set(Inner(child, child, child, child))
}

// Grow returns a node of height n.Height+1 with n repositioned at the
// center, padded with empty quadrants on every side. Growth may go up to
// two levels past maxHeight, so Advance can pad a root at the cap; a node
// already at maxHeight+2 is returned unchanged.
func Grow(n *Node) *Node {
	debug.Assert(n.Height >= 1, "grow: cannot grow a leaf; use EmptyAtHeight for a taller empty node")

	if n.Height >= maxHeight+2 {
		return n
	}

	e := EmptyAtHeight(n.Height - 1)

	return Inner(
		Inner(e, e, e, n.NW),
		Inner(e, e, n.NE, e),
		Inner(e, n.SW, e, e),
		Inner(n.SE, e, e, e),
	)
}

// bounds returns the inclusive coordinate range covered by a node of the
// given height, centered on the origin.
func bounds(height uint8) (min, max int64) {
	if height >= maxHeight {
		return math.MinInt64, math.MaxInt64
	}

	if height == 0 {
		return 0, 0
	}

	p := int64(1) << (height - 1)

	return -p, p - 1
}

func inBounds(height uint8, x, y int64) bool {
	min, max := bounds(height)

	return x >= min && x <= max && y >= min && y <= max
}

// GrowUntilFits grows root until (x, y) lies within its coverage box, or
// until the height cap is reached.
func GrowUntilFits(root *Node, x, y int64) *Node {
	for !inBounds(root.Height, x, y) && root.Height < maxHeight {
		root = Grow(root)
	}

	return root
}

// isBorderEmpty reports whether every grandchild of n except the four
// touching its center is dead.
func isBorderEmpty(n *Node) bool {
	return !n.NW.NW.Alive && !n.NW.NE.Alive && !n.NW.SW.Alive &&
		!n.NE.NW.Alive && !n.NE.NE.Alive && !n.NE.SE.Alive &&
		!n.SW.NW.Alive && !n.SW.SW.Alive && !n.SW.SE.Alive &&
		!n.SE.NE.Alive && !n.SE.SW.Alive && !n.SE.SE.Alive
}

// Compact shrinks n by repeatedly replacing it with its center while the
// border is entirely dead, stopping at height 1. It also defensively
// enforces the height cap: a node that ever exceeds maxHeight is
// compacted at least once regardless of its border.
func Compact(n *Node) *Node {
	for n.Height >= 2 && (n.Height > maxHeight || isBorderEmpty(n)) {
		n = Inner(n.NW.SE, n.NE.SW, n.SW.NE, n.SE.NW)
	}

	return n
}
