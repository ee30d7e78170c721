package life_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/go-hashlife/hashlife/pkg/life"
)

func TestEmptyAtHeightIsCanonicalAndDead(t *testing.T) {
	a := EmptyAtHeight(6)
	b := EmptyAtHeight(6)
	assert.Same(t, a, b)
	assert.False(t, a.Alive)
	assert.EqualValues(t, 0, a.Population)
	assert.EqualValues(t, 6, a.Height)
}

func TestGrowPreservesPopulationAndRecentersNode(t *testing.T) {
	n := EmptyAtHeight(2)
	n = SetCell(n, 1, -1, true)

	grown := Grow(n)

	assert.EqualValues(t, n.Height+1, grown.Height)
	assert.Equal(t, n.Population, grown.Population)
	assert.True(t, GetCell(grown, 1, -1))
}

func TestGrowUntilFitsReachesTarget(t *testing.T) {
	root := EmptyAtHeight(1)
	root = GrowUntilFits(root, 100000, -100000)

	require.False(t, GetCell(root, 100000, -100000))
	assert.True(t, root.Height > 1)
}

func TestCompactRoundTripsWithGrow(t *testing.T) {
	n := EmptyAtHeight(3)
	n = SetCell(n, 2, -3, true)

	grown := Grow(n)
	assert.Same(t, n, Compact(grown))
}

func TestCompactIsIdempotent(t *testing.T) {
	n := EmptyAtHeight(10)
	c1 := Compact(n)
	c2 := Compact(c1)
	assert.Same(t, c1, c2)
}

func TestCompactAllEmptyFloorsAtHeightOne(t *testing.T) {
	n := EmptyAtHeight(10)
	c := Compact(n)
	assert.Same(t, EmptyAtHeight(1), c)
}

func TestCompactStopsAtNonEmptyBorder(t *testing.T) {
	n := EmptyAtHeight(4)
	n = SetCell(n, -7, 8, true)

	c := Compact(n)
	assert.Same(t, n, c)
}

func TestEmptyFastPathNextGeneration(t *testing.T) {
	for h := uint8(2); h <= 6; h++ {
		n := EmptyAtHeight(h)
		result := NextGeneration(n)
		assert.EqualValues(t, 0, result.Population, "height %d", h)
	}
}
