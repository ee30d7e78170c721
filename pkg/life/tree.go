package life

import (
	"iter"

	"github.com/go-hashlife/hashlife/internal/debug"
	"github.com/go-hashlife/hashlife/pkg/res"
	"github.com/go-hashlife/hashlife/pkg/tuple"
	"github.com/go-hashlife/hashlife/pkg/xiter"
)

// Tree is the client-facing facade over a single canonical root: the
// current generation of a Life universe on the signed 64-bit plane. All
// "mutation" is a pointer swap of root, since every Node is immutable.
type Tree struct {
	root     *Node
	min, max int64
}

// New builds a Tree seeded with the given live cells.
func New(cells iter.Seq2[int64, int64]) *Tree {
	t := &Tree{root: EmptyAtHeight(1)}
	t.recomputeBounds()

	for p := range xiter.Pairs(cells) {
		x, y := p.Unpack()

		r := t.trySetAlive(x, y)
		debug.Assert(r.IsOk(), "seed cell (%d, %d): %v", x, y, r.Err)

		t.root = r.Unwrap()
	}

	t.recomputeBounds()

	return t
}

// Height returns the root's height.
func (t *Tree) Height() uint32 { return uint32(t.root.Height) }

// Population returns the number of live cells.
func (t *Tree) Population() uint64 { return t.root.Population }

// Bounds returns the inclusive coordinate range currently covered by the
// root.
func (t *Tree) Bounds() (min, max int64) { return t.min, t.max }

// Get returns the cell state at (x, y), or false if (x, y) lies outside
// the tree's current bounds.
func (t *Tree) Get(x, y int64) bool {
	if x < t.min || x > t.max || y < t.min || y > t.max {
		return false
	}

	return GetCell(t.root, x, y)
}

// SetAlive marks (x, y) alive, growing the root first if necessary. It
// reports ErrOutOfRange if (x, y) cannot be represented even at the
// height cap; the tree is left unchanged in that case.
func (t *Tree) SetAlive(x, y int64) error {
	r := t.trySetAlive(x, y)
	if r.IsErr() {
		return r.Err
	}

	t.root = r.Unwrap()
	t.recomputeBounds()

	return nil
}

// trySetAlive grows the root to fit (x, y) and, if that succeeds within
// the height cap, returns the new root with (x, y) set alive.
func (t *Tree) trySetAlive(x, y int64) res.Result[*Node] {
	root := GrowUntilFits(t.root, x, y)
	if !inBounds(root.Height, x, y) {
		return res.Err[*Node](ErrOutOfRange)
	}

	return res.Ok(SetCell(root, x, y, true))
}

// Advance steps the universe forward exactly one generation under B3/S23.
//
// The root is grown twice before next-generation is invoked, guaranteeing
// (a) the input has height >= 3 and (b) the center has two layers of
// empty padding on every side, so a single step cannot escape the
// result's bounds. The result is compacted before becoming the new root.
func (t *Tree) Advance() {
	grown := Grow(Grow(t.root))
	t.root = Compact(NextGeneration(grown))
	t.recomputeBounds()
}

// LiveCells yields every live cell within [minX, maxX] x [minY, maxY].
// This is what a renderer collaborator polls over its viewport instead of
// calling Get once per pixel.
func (t *Tree) LiveCells(minX, minY, maxX, maxY int64) iter.Seq[tuple.Tuple2[int64, int64]] {
	return func(yield func(tuple.Tuple2[int64, int64]) bool) {
		var walk func(n *Node, cx, cy int64) bool

		walk = func(n *Node, cx, cy int64) bool {
			if n.Population == 0 {
				return true
			}

			if n.IsLeaf() {
				if cx < minX || cx > maxX || cy < minY || cy > maxY {
					return true
				}

				return yield(tuple.New2(cx, cy))
			}

			half := int64(1) << (n.Height - 1)

			return walk(n.NW, cx, cy) &&
				walk(n.NE, cx+half, cy) &&
				walk(n.SW, cx, cy+half) &&
				walk(n.SE, cx+half, cy+half)
		}

		walk(t.root, t.min, t.min)
	}
}

func (t *Tree) recomputeBounds() {
	t.min, t.max = bounds(t.root.Height)
}
