package life

// seekOffset returns the distance from a node's center to each child's
// center: 2^max(0, min(height, maxHeight)-2).
func seekOffset(height uint8) int64 {
	h := int(height)
	if h > maxHeight {
		h = maxHeight
	}

	shift := h - 2
	if shift < 0 {
		shift = 0
	}

	return int64(1) << uint(shift)
}

// GetCell returns the cell state at (x, y), descending from n. The caller
// must ensure (x, y) lies within n's coverage box. Descent short-circuits
// as soon as it enters a dead quadrant.
func GetCell(n *Node, x, y int64) bool {
	for !n.IsLeaf() {
		o := seekOffset(n.Height)

		var child *Node

		switch {
		case y < 0 && x < 0:
			child, x, y = n.NW, x+o, y+o
		case y < 0:
			child, x, y = n.NE, x-o, y+o
		case x < 0:
			child, x, y = n.SW, x+o, y-o
		default:
			child, x, y = n.SE, x-o, y-o
		}

		if !child.Alive {
			return false
		}

		n = child
	}

	return n.Alive
}

// SetCell returns a new canonical node identical to n except that the
// leaf at (x, y) now holds alive. Every ancestor on the path to (x, y) is
// rebuilt through the interner; every other subtree is shared with n
// unchanged.
func SetCell(n *Node, x, y int64, alive bool) *Node {
	if n.IsLeaf() {
		return Leaf(alive)
	}

	o := seekOffset(n.Height)

	switch {
	case y < 0 && x < 0:
		return Inner(SetCell(n.NW, x+o, y+o, alive), n.NE, n.SW, n.SE)
	case y < 0:
		return Inner(n.NW, SetCell(n.NE, x-o, y+o, alive), n.SW, n.SE)
	case x < 0:
		return Inner(n.NW, n.NE, SetCell(n.SW, x+o, y-o, alive), n.SE)
	default:
		return Inner(n.NW, n.NE, n.SW, SetCell(n.SE, x-o, y-o, alive))
	}
}
