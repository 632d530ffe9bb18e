package contour

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cavegen/pkg/core"
)

func values(t *testing.T, rows ...[]float64) *Values {
	t.Helper()
	var data []float64
	for _, r := range rows {
		require.Len(t, r, len(rows[0]))
		data = append(data, r...)
	}
	v, err := NewValues(len(rows[0]), len(rows), data)
	require.NoError(t, err)
	return v
}

func uniform(t *testing.T, w, h int, v float64) *Values {
	t.Helper()
	data := make([]float64, w*h)
	for i := range data {
		data[i] = v
	}
	f, err := NewValues(w, h, data)
	require.NoError(t, err)
	return f
}

// sidePoint is the midpoint of a unit-cell side in local coordinates.
func sidePoint(s side) Point {
	switch s {
	case sideTop:
		return Point{0.5, 0}
	case sideRight:
		return Point{1, 0.5}
	case sideBottom:
		return Point{0.5, 1}
	default:
		return Point{0, 0.5}
	}
}

// sideCorners returns the two corner values joined by side s.
func sideCorners(c corners, s side) (float64, float64) {
	switch s {
	case sideTop:
		return c.tl, c.tr
	case sideRight:
		return c.tr, c.br
	case sideBottom:
		return c.bl, c.br
	default:
		return c.tl, c.bl
	}
}

func bilinear(c corners, p Point) float64 {
	return c.tl*(1-p.X)*(1-p.Y) + c.tr*p.X*(1-p.Y) + c.br*p.X*p.Y + c.bl*(1-p.X)*p.Y
}

func TestCaseTableKeepsAboveOnRight(t *testing.T) {
	check := func(idx int, c corners, segs []segment) {
		for _, s := range segs {
			for _, sd := range []side{s.from, s.to} {
				a, b := sideCorners(c, sd)
				require.NotEqual(t, a >= 0.5, b >= 0.5, "case %d: side %d is not crossed", idx, sd)
			}
			from, to := sidePoint(s.from), sidePoint(s.to)
			m := Point{(from.X + to.X) / 2, (from.Y + to.Y) / 2}
			dx, dy := to.X-from.X, to.Y-from.Y
			n := math.Hypot(dx, dy)
			rx, ry := -dy/n*0.1, dx/n*0.1
			right := bilinear(c, Point{m.X + rx, m.Y + ry})
			left := bilinear(c, Point{m.X - rx, m.Y - ry})
			assert.Greater(t, right, left, "case %d: segment %v keeps above on the left", idx, s)
		}
	}
	for idx := 0; idx < 16; idx++ {
		c := corners{
			tl: float64(idx >> 3 & 1),
			tr: float64(idx >> 2 & 1),
			br: float64(idx >> 1 & 1),
			bl: float64(idx & 1),
		}
		require.Equal(t, idx, c.index(0.5))
		check(idx, c, caseTable[idx])
		if idx == 5 || idx == 10 {
			check(idx, c, joinedSaddles[idx])
		}
	}
	assert.Empty(t, caseTable[0])
	assert.Empty(t, caseTable[15])
}

func TestSaddleTieBreak(t *testing.T) {
	c := corners{tl: 0, tr: 1, br: 0, bl: 1}
	assert.Equal(t, joinedSaddles[5], cellSegments(c, 0.5), "mean 0.5 >= 0.5 joins the above corners")
	assert.Equal(t, caseTable[5], cellSegments(c, 0.6), "mean 0.5 < 0.6 separates them")

	c = corners{tl: 0.9, tr: 0.1, br: 0.9, bl: 0.1}
	assert.Equal(t, joinedSaddles[10], cellSegments(c, 0.5))
	assert.Equal(t, caseTable[10], cellSegments(c, 0.55))
}

func TestCenterBlockSquare(t *testing.T) {
	f := values(t,
		[]float64{0, 0, 0, 0},
		[]float64{0, 1, 1, 0},
		[]float64{0, 1, 1, 0},
		[]float64{0, 0, 0, 0},
	)
	c, err := Extract(f, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 0.5, c.Value)
	require.Len(t, c.Rings, 1)

	want := Ring{
		{0.5, 1}, {1, 0.5}, {2, 0.5}, {2.5, 1},
		{2.5, 2}, {2, 2.5}, {1, 2.5}, {0.5, 2},
	}
	assert.Equal(t, want, c.Rings[0])
	assert.InDelta(t, 3.5, c.Rings[0].Area(), 1e-12)
	assert.False(t, c.Rings[0].IsHole())
	assert.True(t, c.Rings[0].Contains(Point{1.5, 1.5}))
	assert.False(t, c.Rings[0].Contains(Point{0.2, 0.2}))
}

func TestUniformFieldsHaveNoRings(t *testing.T) {
	for _, v := range []float64{0, 1} {
		for _, dims := range [][2]int{{2, 2}, {5, 3}, {17, 11}} {
			c, err := Extract(uniform(t, dims[0], dims[1], v), 0.5)
			require.NoError(t, err)
			assert.Empty(t, c.Rings, "value %v dims %v", v, dims)
		}
	}
}

func TestExtractRejectsTinyFields(t *testing.T) {
	for _, dims := range [][2]int{{1, 5}, {5, 1}, {1, 1}} {
		_, err := Extract(uniform(t, dims[0], dims[1], 0), 0.5)
		assert.ErrorIs(t, err, core.ErrInvalidDimension)
	}
	_, err := Extract(uniform(t, 3, 3, 0), math.NaN())
	assert.ErrorIs(t, err, core.ErrInvalidParameter)

	_, err = NewValues(3, 3, make([]float64, 8))
	assert.ErrorIs(t, err, core.ErrInvalidDimension)
}

func TestInterpolatesAlongEdges(t *testing.T) {
	f := values(t,
		[]float64{0, 1},
		[]float64{0, 1},
	)
	c, err := Extract(f, 0.25)
	require.NoError(t, err)
	require.Len(t, c.Rings, 1)
	assert.Equal(t, Ring{{0.25, 1}, {0.25, 0}, {1, 0}, {1, 1}}, c.Rings[0])
	assert.InDelta(t, 0.75, c.Rings[0].Area(), 1e-12)
}

func TestBorderTouchingRegionCloses(t *testing.T) {
	f := values(t,
		[]float64{1, 1, 0, 0},
		[]float64{1, 1, 0, 0},
		[]float64{0, 0, 0, 0},
	)
	c, err := Extract(f, 0.5)
	require.NoError(t, err)
	require.Len(t, c.Rings, 1)
	want := Ring{{1.5, 0}, {1.5, 1}, {1, 1.5}, {0, 1.5}, {0, 1}, {0, 0}, {1, 0}}
	assert.Equal(t, want, c.Rings[0])
	assert.InDelta(t, 2.125, c.Rings[0].Area(), 1e-12)

	strict, err := Extract(f, 0.5, WithBorderClosing(false))
	require.NoError(t, err)
	assert.Empty(t, strict.Rings, "strict mode drops chains that leave the field")
}

func TestHoleInsideSolidFrame(t *testing.T) {
	f := values(t,
		[]float64{1, 1, 1, 1, 1},
		[]float64{1, 1, 1, 1, 1},
		[]float64{1, 1, 0, 1, 1},
		[]float64{1, 1, 1, 1, 1},
		[]float64{1, 1, 1, 1, 1},
	)
	c, err := Extract(f, 0.5)
	require.NoError(t, err)
	require.Len(t, c.Rings, 2)

	frame, hole := c.Rings[0], c.Rings[1]
	assert.InDelta(t, 16, frame.Area(), 1e-12)
	assert.Len(t, frame, 16, "one point per border sample")
	assert.True(t, hole.IsHole())
	assert.InDelta(t, -0.5, hole.Area(), 1e-12)
	assert.Equal(t, Ring{{2, 1.5}, {1.5, 2}, {2, 2.5}, {2.5, 2}}, hole)
	assert.Equal(t, 1, c.Holes())
	assert.InDelta(t, 15.5, c.Area(), 1e-12)

	polys := c.Polygons()
	require.Len(t, polys, 1)
	require.Len(t, polys[0], 2)
	assert.Equal(t, frame, polys[0][0])

	strict, err := Extract(f, 0.5, WithBorderClosing(false))
	require.NoError(t, err)
	require.Len(t, strict.Rings, 1)
	assert.True(t, strict.Rings[0].IsHole())
	orphan := strict.Polygons()
	require.Len(t, orphan, 1)
	assert.Len(t, orphan[0], 1)
}

func TestSampleAtThresholdCollapses(t *testing.T) {
	f := values(t,
		[]float64{0, 0, 0},
		[]float64{0, 0.5, 0},
		[]float64{0, 0, 0},
	)
	c, err := Extract(f, 0.5)
	require.NoError(t, err)
	assert.Empty(t, c.Rings, "all crossings meet at the lone sample")
}

func TestExtractAllKeepsThresholdOrder(t *testing.T) {
	f := values(t,
		[]float64{0, 0, 0, 0, 0},
		[]float64{0, 0.5, 0.5, 0.5, 0},
		[]float64{0, 0.5, 1, 0.5, 0},
		[]float64{0, 0.5, 0.5, 0.5, 0},
		[]float64{0, 0, 0, 0, 0},
	)
	cs, err := ExtractAll(f, []float64{0.75, 0.25, 2})
	require.NoError(t, err)
	require.Len(t, cs, 3)
	assert.Equal(t, 0.75, cs[0].Value)
	assert.Equal(t, 0.25, cs[1].Value)
	assert.Equal(t, 2.0, cs[2].Value)
	require.Len(t, cs[0].Rings, 1)
	require.Len(t, cs[1].Rings, 1)
	assert.Empty(t, cs[2].Rings)
	assert.Greater(t, cs[1].Rings[0].Area(), cs[0].Rings[0].Area(), "lower threshold encloses more")
}

func checkRings(t *testing.T, c Contour) {
	t.Helper()
	for i, r := range c.Rings {
		require.GreaterOrEqual(t, len(r), 3, "ring %d", i)
		for j := range r {
			p, q := r[j], r[(j+1)%len(r)]
			require.NotEqual(t, p, q, "ring %d repeats point %d", i, j)
			assert.LessOrEqual(t, math.Hypot(q.X-p.X, q.Y-p.Y), math.Sqrt2+1e-9, "ring %d jumps between %v and %v", i, p, q)
		}
		assert.NotZero(t, r.Area())
	}
}

func TestRandomFieldsProduceClosedRings(t *testing.T) {
	rng := core.NewRNG(42)
	for round := 0; round < 20; round++ {
		w, h := 3+round, 20-round/2
		data := make([]float64, w*h)
		for i := range data {
			if round%2 == 0 {
				data[i] = float64(rng.Source().IntN(2))
			} else {
				data[i] = rng.Float64()
			}
		}
		f, err := NewValues(w, h, data)
		require.NoError(t, err)

		c, err := Extract(f, 0.5)
		require.NoError(t, err)
		checkRings(t, c)
		for _, p := range c.Polygons() {
			assert.False(t, p[0].IsHole(), "round %d: hole without exterior", round)
		}

		strict, err := Extract(f, 0.5, WithBorderClosing(false))
		require.NoError(t, err)
		checkRings(t, strict)

		again, err := Extract(f, 0.5)
		require.NoError(t, err)
		assert.Equal(t, c, again)
	}
}

func TestMarshalJSON(t *testing.T) {
	f := values(t,
		[]float64{0, 0, 0, 0},
		[]float64{0, 1, 1, 0},
		[]float64{0, 1, 1, 0},
		[]float64{0, 0, 0, 0},
	)
	c, err := Extract(f, 0.5)
	require.NoError(t, err)

	raw, err := json.Marshal(c)
	require.NoError(t, err)

	var doc struct {
		Type        string
		Value       float64
		Coordinates [][][][2]float64
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "MultiPolygon", doc.Type)
	assert.Equal(t, 0.5, doc.Value)
	require.Len(t, doc.Coordinates, 1)
	require.Len(t, doc.Coordinates[0], 1)
	ring := doc.Coordinates[0][0]
	require.Len(t, ring, 9)
	assert.Equal(t, ring[0], ring[8])

	empty, err := json.Marshal(Contour{Value: 0.5})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"MultiPolygon","value":0.5,"coordinates":[]}`, string(empty))
}

func BenchmarkExtract(b *testing.B) {
	rng := core.NewRNG(3)
	const n = 256
	data := make([]float64, n*n)
	for i := range data {
		data[i] = float64(rng.Source().IntN(2))
	}
	f, _ := NewValues(n, n, data)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Extract(f, 0.5)
	}
}

func TestRingHelpers(t *testing.T) {
	r := Ring{{0, 0}, {3, 0}, {3, 4}}
	assert.InDelta(t, 12, r.Perimeter(), 1e-12)
	assert.InDelta(t, 6, r.Area(), 1e-12)
	assert.InDelta(t, -6, r.Reversed().Area(), 1e-12)
	assert.True(t, r.Reversed().IsHole())
	assert.Equal(t, Ring{{3, 4}, {3, 0}, {0, 0}}, r.Reversed())

	min, max := r.Bounds()
	assert.Equal(t, Point{0, 0}, min)
	assert.Equal(t, Point{3, 4}, max)

	c := Contour{Rings: []Ring{r, {{5, 5}, {6, 5}, {6, 6}}}}
	cmin, cmax, ok := c.Bounds()
	require.True(t, ok)
	assert.Equal(t, Point{0, 0}, cmin)
	assert.Equal(t, Point{6, 6}, cmax)
	assert.Equal(t, 2, c.Len())

	_, _, ok = Contour{}.Bounds()
	assert.False(t, ok)
}
