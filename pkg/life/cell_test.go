package life_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/go-hashlife/hashlife/pkg/life"
)

func emptyOfHeight(h uint8) *Node { return EmptyAtHeight(h) }

func TestGetCellOnEmptyIsAlwaysDead(t *testing.T) {
	n := emptyOfHeight(4)
	min, max := int64(-8), int64(7)

	for y := min; y <= max; y++ {
		for x := min; x <= max; x++ {
			require.False(t, GetCell(n, x, y))
		}
	}
}

func TestSetCellThenGetCellRoundTrips(t *testing.T) {
	n := emptyOfHeight(4)

	n2 := SetCell(n, 3, -5, true)
	assert.True(t, GetCell(n2, 3, -5))
}

func TestSetCellIsPointLocal(t *testing.T) {
	n := emptyOfHeight(4)
	n = SetCell(n, 2, 2, true)

	min, max := int64(-8), int64(7)

	for y := min; y <= max; y++ {
		for x := min; x <= max; x++ {
			want := x == 2 && y == 2
			assert.Equal(t, want, GetCell(n, x, y), "cell (%d, %d)", x, y)
		}
	}
}

// For every node with height >= 2 covering (x, y): set_cell(n, x,
// y).get_cell(x, y) == true, and for any other in-range (x', y'),
// set_cell leaves it exactly as n.get_cell(x', y') reported it.
func TestSetCellPropertyAcrossQuadrants(t *testing.T) {
	base := emptyOfHeight(3)
	base = SetCell(base, -3, -2, true)
	base = SetCell(base, 1, 3, true)

	min, max := int64(-4), int64(3)

	for ty := min; ty <= max; ty++ {
		for tx := min; tx <= max; tx++ {
			updated := SetCell(base, tx, ty, true)
			require.True(t, GetCell(updated, tx, ty))

			for y := min; y <= max; y++ {
				for x := min; x <= max; x++ {
					if x == tx && y == ty {
						continue
					}
					assert.Equal(t, GetCell(base, x, y), GetCell(updated, x, y),
						"unexpected change at (%d, %d) after setting (%d, %d)", x, y, tx, ty)
				}
			}
		}
	}
}

func TestSetCellSharesUnchangedSubtrees(t *testing.T) {
	base := emptyOfHeight(4)
	base = SetCell(base, -7, -7, true) // deep in NW

	updated := SetCell(base, 6, 6, true) // deep in SE

	// The NW subtree carrying the first live cell must be untouched by
	// a set in the opposite quadrant, down to pointer identity.
	assert.Same(t, base.NW, updated.NW)
}

func TestDiagonalSparseScenario(t *testing.T) {
	n := emptyOfHeight(1)
	n = SetCell(n, 0, 0, true)
	n = SetCell(n, -1, -1, true)

	assert.EqualValues(t, 1, n.Height)
	assert.True(t, GetCell(n, 0, 0))
	assert.True(t, GetCell(n, -1, -1))
	assert.False(t, GetCell(n, -1, 0))
	assert.False(t, GetCell(n, 0, -1))
}
