package life

import (
	"math/bits"

	"github.com/go-hashlife/hashlife/internal/debug"
)

// NextGeneration returns, for a node of height >= 2, the canonical node of
// height-1 representing n's center square advanced exactly one generation
// under B3/S23, at every height: the nine sub-squares below are taken
// unadvanced, and only the four combining calls recurse. The result is
// memoized in n: subsequent calls for the same n return the cached value
// without recomputation.
func NextGeneration(n *Node) *Node {
	debug.Assert(n.Height >= 2, "next generation: node height must be >= 2, got %d", n.Height)

	if cached := n.next.Load(); cached != nil {
		return cached
	}

	if n.Population == 0 {
		return n.next.Set(n.NW)
	}

	if n.Height == 2 {
		return n.next.Set(baseCase(n))
	}

	n00 := centeredSubnode(n.NW)
	n02 := centeredSubnode(n.NE)
	n20 := centeredSubnode(n.SW)
	n22 := centeredSubnode(n.SE)

	n01 := centeredHorizontal(n.NW, n.NE)
	n21 := centeredHorizontal(n.SW, n.SE)
	n10 := centeredVertical(n.NW, n.SW)
	n12 := centeredVertical(n.NE, n.SE)

	n11 := centeredSubSubnode(n)

	nw := NextGeneration(Inner(n00, n01, n10, n11))
	ne := NextGeneration(Inner(n01, n02, n11, n12))
	sw := NextGeneration(Inner(n10, n11, n20, n21))
	se := NextGeneration(Inner(n11, n12, n21, n22))

	return n.next.Set(Inner(nw, ne, sw, se))
}

// centeredSubnode returns the node one level down containing only n's
// center elements.
func centeredSubnode(n *Node) *Node {
	return Inner(n.NW.SE, n.NE.SW, n.SW.NE, n.SE.NW)
}

// centeredHorizontal returns the node one level down straddling the
// west/east pair (w, e), taking their two inward-facing sub-sub-nodes.
func centeredHorizontal(w, e *Node) *Node {
	return Inner(w.NE.SE, e.NW.SW, w.SE.NE, e.SW.NW)
}

// centeredVertical returns the node one level down straddling the
// north/south pair (n, s), taking their two inward-facing sub-sub-nodes.
func centeredVertical(n, s *Node) *Node {
	return Inner(n.SW.SE, n.SE.SW, s.NW.NE, s.NE.NW)
}

// centeredSubSubnode returns the node two levels down containing only n's
// true center elements — the "n11" square in the 3x3 decomposition.
func centeredSubSubnode(n *Node) *Node {
	return Inner(n.NW.SE.SE, n.NE.SW.SW, n.SW.NE.NE, n.SE.NW.NW)
}

// baseCase evaluates B3/S23 directly on the sixteen leaf cells of a
// height-2 node, using the classic 4x4 bitmask trick: the sixteen cells
// are packed MSB-first row by row, and each of the four center cells'
// 3x3 neighborhood is a fixed 9-bit slice of that mask reachable by a
// shift.
func baseCase(n *Node) *Node {
	var mask uint16

	for y := int64(-2); y < 2; y++ {
		for x := int64(-2); x < 2; x++ {
			mask <<= 1

			if GetCell(n, x, y) {
				mask |= 1
			}
		}
	}

	return Inner(
		oneGeneration(mask>>5),
		oneGeneration(mask>>4),
		oneGeneration(mask>>1),
		oneGeneration(mask),
	)
}

// oneGeneration takes a 4x4 bitmask shifted so its center-ish 3x3
// neighborhood sits in bits 0,1,2,4,5,6,8,9,10 (bit 5 is the cell itself)
// and returns the B3/S23 result leaf for that cell.
func oneGeneration(mask uint16) *Node {
	if mask == 0 {
		return Leaf(false)
	}

	self := (mask >> 5) & 1
	neighbors := bits.OnesCount16(mask & 0x757)

	return Leaf(neighbors == 3 || (neighbors == 2 && self != 0))
}
