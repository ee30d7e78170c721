// Package life implements the quadtree node algebra behind a Hashlife-style
// Game of Life engine: canonical (hash-consed) nodes, memoized
// next-generation evaluation, growth/compaction, and coordinate-indexed
// cell access on the signed 64-bit plane.
package life

import (
	"fmt"

	"github.com/go-hashlife/hashlife/internal/xsync"
	"github.com/go-hashlife/hashlife/pkg/opt"
)

// maxHeight caps a root's height so coordinate arithmetic never needs a
// shift wider than 64 bits, and so a root at the cap already covers the
// entire signed 64-bit plane. Advance may grow a root at the cap by up to
// two levels for padding; Compact brings the result back under the cap.
const maxHeight = 64

// Node is an immutable quadtree node: either a leaf cell (height 0) or an
// inner node with four equal-height children. Every Node reachable by a
// caller is canonical — the interner guarantees at most one instance per
// structural equivalence class — so pointer equality is structural
// equality.
type Node struct {
	Height     uint8
	Alive      bool
	Population uint64

	NW, NE, SW, SE *Node

	next xsync.OncePtr[Node]
}

// Leaf returns the canonical leaf node for the given cell state.
func Leaf(alive bool) *Node {
	k := nodeKey{alive: alive}

	return globalInterner.intern(k, func() *Node {
		var pop uint64
		if alive {
			pop = 1
		}

		return &Node{Alive: alive, Population: pop}
	})
}

// Inner returns the canonical inner node built from four children of equal
// height. Construction outside the interner is forbidden: this, together
// with Leaf, is the only way to obtain a *Node.
//
// Panics if the children's heights disagree or their combined population
// overflows uint64 — both indicate a corrupted caller rather than a
// reportable runtime condition.
func Inner(nw, ne, sw, se *Node) *Node {
	if nw.Height != ne.Height || ne.Height != sw.Height || sw.Height != se.Height {
		panic(fmt.Sprintf("inner: children must share a height, got nw=%d ne=%d sw=%d se=%d",
			nw.Height, ne.Height, sw.Height, se.Height))
	}

	h := nw.Height + 1
	k := nodeKey{height: h, nw: nw, ne: ne, sw: sw, se: se}

	return globalInterner.intern(k, func() *Node {
		pop := nw.Population + ne.Population + sw.Population + se.Population
		if pop < nw.Population || pop < ne.Population || pop < sw.Population || pop < se.Population {
			panic(fmt.Sprintf("inner: population overflow combining %d+%d+%d+%d",
				nw.Population, ne.Population, sw.Population, se.Population))
		}

		return &Node{
			Height:     h,
			Alive:      pop > 0,
			Population: pop,
			NW:         nw, NE: ne, SW: sw, SE: se,
		}
	})
}

// IsLeaf reports whether n is a leaf (height 0).
func (n *Node) IsLeaf() bool { return n.Height == 0 }

// CachedNext returns the memoized next-generation result for n, if
// next-generation has already been evaluated for it at least once.
func (n *Node) CachedNext() opt.Option[*Node] {
	if v := n.next.Load(); v != nil {
		return opt.Some(v)
	}

	return opt.None[*Node]()
}

func (n *Node) String() string {
	if n.IsLeaf() {
		return fmt.Sprintf("Leaf(%t)", n.Alive)
	}

	return fmt.Sprintf("Inner(h=%d, pop=%d)", n.Height, n.Population)
}
