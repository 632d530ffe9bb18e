package grid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cavegen/pkg/core"
)

func TestNewRejectsNonPositiveDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {3, -7}} {
		_, err := New(dims[0], dims[1])
		require.ErrorIs(t, err, core.ErrInvalidDimension, "dims %v", dims)
	}
}

func TestNewIsAllEmpty(t *testing.T) {
	g, err := New(7, 3)
	require.NoError(t, err)
	assert.Equal(t, 21, len(g.Cells()))
	assert.Equal(t, 21, g.Count(Empty))
	assert.Equal(t, 0, g.Count(Solid))
}

func TestAtSetBounds(t *testing.T) {
	g, err := New(4, 3)
	require.NoError(t, err)

	require.NoError(t, g.Set(3, 2, Solid))
	s, err := g.At(3, 2)
	require.NoError(t, err)
	assert.Equal(t, Solid, s)
	assert.Equal(t, Solid, g.Cells()[2*4+3], "row-major layout")

	_, err = g.At(4, 0)
	assert.ErrorIs(t, err, core.ErrOutOfBounds)
	_, err = g.At(0, -1)
	assert.ErrorIs(t, err, core.ErrOutOfBounds)
	assert.ErrorIs(t, g.Set(-1, 0, Solid), core.ErrOutOfBounds)
	assert.ErrorIs(t, g.Set(0, 3, Solid), core.ErrOutOfBounds)
}

type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

func TestRandomizeExtremesAndClamp(t *testing.T) {
	g, err := New(10, 10)
	require.NoError(t, err)
	rng := core.NewRNG(1)

	g.Randomize(100, rng)
	assert.Equal(t, 100, g.Count(Solid))

	g.Randomize(0, rng)
	assert.Equal(t, 0, g.Count(Solid))

	g.Randomize(250, rng)
	assert.Equal(t, 100, g.Count(Solid), "chance above 100 clamps to 100")

	g.Randomize(-20, constSource(0))
	assert.Equal(t, 0, g.Count(Solid), "negative chance clamps to 0 even for a zero sample")

	g.Randomize(math.NaN(), rng)
	assert.Equal(t, 0, g.Count(Solid))
}

func TestRandomizeDeterministic(t *testing.T) {
	a, _ := New(32, 24)
	b, _ := New(32, 24)
	a.Randomize(45, core.NewRNG(99))
	b.Randomize(45, core.NewRNG(99))
	require.True(t, a.Equal(b))

	c, _ := New(32, 24)
	c.Randomize(45, core.NewRNG(100))
	assert.False(t, a.Equal(c), "different seeds should produce different grids")

	solid := a.Count(Solid)
	assert.InDelta(t, 0.45*32*24, float64(solid), 0.1*32*24)
}

func TestFieldSamples(t *testing.T) {
	g, err := Parse(
		"#..",
		".#.",
	)
	require.NoError(t, err)
	f := g.Field()
	w, h := f.Size()
	assert.Equal(t, 3, w)
	assert.Equal(t, 2, h)
	assert.Equal(t, 1.0, f.At(0, 0))
	assert.Equal(t, 0.0, f.At(1, 0))
	assert.Equal(t, 1.0, f.At(1, 1))

	require.NoError(t, g.Set(2, 1, Solid))
	assert.Equal(t, 1.0, f.At(2, 1), "field is a live view")
}

func TestStringParseRoundTrip(t *testing.T) {
	rows := []string{
		"##..#",
		"#...#",
		"#####",
	}
	g, err := Parse(rows...)
	require.NoError(t, err)
	assert.Equal(t, "##..#\n#...#\n#####\n", g.String())

	_, err = Parse("##", "#")
	assert.ErrorIs(t, err, core.ErrInvalidDimension)
	_, err = Parse()
	assert.ErrorIs(t, err, core.ErrInvalidDimension)
}

func TestCloneIsIndependent(t *testing.T) {
	g, _ := Parse("#.", ".#")
	c := g.Clone()
	require.True(t, g.Equal(c))
	require.NoError(t, c.Set(1, 0, Solid))
	assert.False(t, g.Equal(c))
	s, _ := g.At(1, 0)
	assert.Equal(t, Empty, s)
}

func TestRegionsEightConnected(t *testing.T) {
	g, err := Parse(
		"#...#",
		".#.#.",
		"..#..",
		".....",
		"##..#",
	)
	require.NoError(t, err)

	comps := g.Regions(Solid)
	require.Len(t, comps, 3)
	assert.Len(t, comps[0], 5, "diagonal X joins through corners")
	assert.Len(t, comps[1], 2)
	assert.Len(t, comps[2], 1)

	empty := g.Regions(Empty)
	require.Len(t, empty, 1)
	assert.Equal(t, g.Count(Empty), len(empty[0]))
}
