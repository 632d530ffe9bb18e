package contour

import (
	"fmt"
	"math"
	"sort"

	"cavegen/pkg/core"
)

// Option tunes an extraction.
type Option func(*options)

type options struct {
	closeBorder bool
}

func defaultOptions() options {
	return options{closeBorder: true}
}

// WithBorderClosing controls what happens to chains that run into the field
// border. Enabled (the default) closes them along the perimeter; disabled
// discards them so only rings lying fully inside the field are returned.
func WithBorderClosing(on bool) Option {
	return func(o *options) { o.closeBorder = on }
}

// Extract traces the iso-lines of f at threshold t.
//
// It fails with core.ErrInvalidDimension when f has fewer than two samples on
// either axis and with core.ErrInvalidParameter for a NaN threshold. A field
// with no boundary at t yields a Contour with no rings.
func Extract(f Field, t float64, opts ...Option) (Contour, error) {
	cs, err := ExtractAll(f, []float64{t}, opts...)
	if err != nil {
		return Contour{}, err
	}
	return cs[0], nil
}

// ExtractAll traces one Contour per threshold, in the given order. Every
// threshold is processed independently over the same samples.
func ExtractAll(f Field, thresholds []float64, opts ...Option) ([]Contour, error) {
	w, h := f.Size()
	if w < 2 || h < 2 {
		return nil, fmt.Errorf("contour: field %dx%d has no unit cells: %w", w, h, core.ErrInvalidDimension)
	}
	for _, t := range thresholds {
		if math.IsNaN(t) {
			return nil, fmt.Errorf("contour: threshold is NaN: %w", core.ErrInvalidParameter)
		}
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	samples := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			samples[y*w+x] = f.At(x, y)
		}
	}

	out := make([]Contour, len(thresholds))
	for i, t := range thresholds {
		tr := newTracer(w, h, samples, t)
		tr.link()
		out[i] = Contour{Value: t, Rings: tr.rings(o)}
	}
	return out, nil
}

// tracer stitches the segments of one threshold. Lattice edges are keyed
// 2*(y*w+x) for the horizontal edge (x,y)-(x+1,y) and 2*(y*w+x)+1 for the
// vertical edge (x,y)-(x,y+1).
type tracer struct {
	w, h    int
	t       float64
	samples []float64

	next    []int
	hasPrev []bool
	visited []bool
	order   []int
}

func newTracer(w, h int, samples []float64, t float64) *tracer {
	n := 2 * w * h
	next := make([]int, n)
	for i := range next {
		next[i] = -1
	}
	return &tracer{
		w:       w,
		h:       h,
		t:       t,
		samples: samples,
		next:    next,
		hasPrev: make([]bool, n),
		visited: make([]bool, n),
	}
}

// edgeKey returns the lattice edge under side s of the unit cell at (i, j).
func (tr *tracer) edgeKey(i, j int, s side) int {
	switch s {
	case sideTop:
		return 2 * (j*tr.w + i)
	case sideBottom:
		return 2 * ((j+1)*tr.w + i)
	case sideLeft:
		return 2*(j*tr.w+i) + 1
	default:
		return 2*(j*tr.w+i+1) + 1
	}
}

// link classifies every unit cell and records each directed segment.
func (tr *tracer) link() {
	w, s := tr.w, tr.samples
	for j := 0; j < tr.h-1; j++ {
		for i := 0; i < w-1; i++ {
			c := corners{
				tl: s[j*w+i],
				tr: s[j*w+i+1],
				br: s[(j+1)*w+i+1],
				bl: s[(j+1)*w+i],
			}
			for _, seg := range cellSegments(c, tr.t) {
				a, b := tr.edgeKey(i, j, seg.from), tr.edgeKey(i, j, seg.to)
				tr.next[a] = b
				tr.hasPrev[b] = true
				tr.order = append(tr.order, a)
			}
		}
	}
}

// point interpolates where the iso-line crosses lattice edge k.
func (tr *tracer) point(k int) Point {
	base := k / 2
	x, y := base%tr.w, base/tr.w
	a := tr.samples[base]
	if k%2 == 0 {
		b := tr.samples[base+1]
		return Point{X: float64(x) + fraction(a, b, tr.t), Y: float64(y)}
	}
	b := tr.samples[base+tr.w]
	return Point{X: float64(x), Y: float64(y) + fraction(a, b, tr.t)}
}

// fraction is the position of t between samples a and b, measured from a.
func fraction(a, b, t float64) float64 {
	if a == b {
		return 0.5
	}
	r := (t - a) / (b - a)
	return math.Max(0, math.Min(1, r))
}

// chain is an iso-line that enters the field at one border edge and leaves it
// at another.
type chain struct {
	points     []Point
	start, end float64 // perimeter positions
}

func (tr *tracer) rings(o options) []Ring {
	var chains []chain
	for _, k := range tr.order {
		if tr.hasPrev[k] || tr.visited[k] {
			continue
		}
		if c, ok := tr.walkOpen(k); ok {
			chains = append(chains, c)
		}
	}

	var rings []Ring
	if o.closeBorder {
		rings = tr.closeChains(chains)
	}
	for _, k := range tr.order {
		if tr.visited[k] {
			continue
		}
		if r, ok := tr.walkClosed(k); ok {
			rings = appendRing(rings, r)
		}
	}
	if o.closeBorder && len(chains) == 0 && len(rings) > 0 && tr.samples[0] >= tr.t {
		// The whole border is above and every ring is a hole in it.
		frame := tr.perimeterBetween(-1, tr.perimeter()+1)
		rings = append([]Ring{frame}, rings...)
	}
	return rings
}

// walkOpen follows a chain from its entry edge k to the border edge where it
// leaves the field.
func (tr *tracer) walkOpen(k int) (chain, bool) {
	if !tr.onBorder(k) {
		return chain{}, false
	}
	c := chain{start: tr.perimeterPos(k)}
	cur := k
	for {
		if tr.visited[cur] {
			return chain{}, false
		}
		c.points = append(c.points, tr.point(cur))
		n := tr.next[cur]
		if n < 0 {
			if !tr.onBorder(cur) {
				return chain{}, false
			}
			c.end = tr.perimeterPos(cur)
			return c, true
		}
		tr.visited[cur] = true
		cur = n
	}
}

// onBorder reports whether lattice edge k lies on the field perimeter.
func (tr *tracer) onBorder(k int) bool {
	base := k / 2
	x, y := base%tr.w, base/tr.w
	if k%2 == 0 {
		return y == 0 || y == tr.h-1
	}
	return x == 0 || x == tr.w-1
}

// walkClosed follows successors from k. It reports false when the walk runs
// into a dead end or a ring it did not start.
func (tr *tracer) walkClosed(k int) (Ring, bool) {
	var r Ring
	cur := k
	for {
		if tr.visited[cur] {
			return nil, false
		}
		tr.visited[cur] = true
		r = append(r, tr.point(cur))
		n := tr.next[cur]
		switch {
		case n < 0:
			return nil, false
		case n == k:
			return r, true
		}
		cur = n
	}
}

// closeChains joins open chains into rings by walking the perimeter
// clockwise (on screen) from each chain exit to the next chain entry.
func (tr *tracer) closeChains(chains []chain) []Ring {
	if len(chains) == 0 {
		return nil
	}
	byStart := make([]int, len(chains))
	for i := range byStart {
		byStart[i] = i
	}
	sort.Slice(byStart, func(a, b int) bool { return chains[byStart[a]].start < chains[byStart[b]].start })

	successor := func(end float64) int {
		i := sort.Search(len(byStart), func(i int) bool { return chains[byStart[i]].start >= end })
		if i == len(byStart) {
			i = 0
		}
		return byStart[i]
	}

	used := make([]bool, len(chains))
	var rings []Ring
	for first := range chains {
		if used[first] {
			continue
		}
		var r Ring
		ok := true
		cur := first
		for {
			used[cur] = true
			r = append(r, chains[cur].points...)
			nxt := successor(chains[cur].end)
			r = append(r, tr.perimeterBetween(chains[cur].end, chains[nxt].start)...)
			if nxt == first {
				break
			}
			if used[nxt] {
				ok = false
				break
			}
			cur = nxt
		}
		if ok {
			rings = appendRing(rings, r)
		}
	}
	return rings
}

// perimeter is the length of the field border.
func (tr *tracer) perimeter() float64 {
	return float64(2 * ((tr.w - 1) + (tr.h - 1)))
}

// perimeterPos maps a border edge crossing to its clockwise distance from the
// origin along the border: top edge, right edge, bottom edge, left edge.
func (tr *tracer) perimeterPos(k int) float64 {
	p := tr.point(k)
	base := k / 2
	x, y := base%tr.w, base/tr.w
	w1, h1 := float64(tr.w-1), float64(tr.h-1)
	var s float64
	switch {
	case k%2 == 0 && y == 0:
		s = p.X
	case k%2 == 0:
		s = w1 + h1 + (w1 - p.X)
	case x == tr.w-1:
		s = w1 + p.Y
	default:
		s = 2*w1 + h1 + (h1 - p.Y)
	}
	if s >= tr.perimeter() {
		s -= tr.perimeter()
	}
	return s
}

// perimeterPoint returns the border sample at integer perimeter position s.
func (tr *tracer) perimeterPoint(s int) Point {
	w1, h1 := tr.w-1, tr.h-1
	switch {
	case s < w1:
		return Point{X: float64(s), Y: 0}
	case s < w1+h1:
		return Point{X: float64(w1), Y: float64(s - w1)}
	case s < 2*w1+h1:
		return Point{X: float64(w1 - (s - w1 - h1)), Y: float64(h1)}
	default:
		return Point{X: 0, Y: float64(h1 - (s - 2*w1 - h1))}
	}
}

// perimeterBetween lists the border samples strictly between perimeter
// positions a and b, walking clockwise and wrapping when b < a.
func (tr *tracer) perimeterBetween(a, b float64) []Point {
	p := int(tr.perimeter())
	var pts []Point
	k := int(math.Floor(a)) + 1
	if b >= a {
		for ; float64(k) < b && k < p; k++ {
			pts = append(pts, tr.perimeterPoint(k))
		}
		return pts
	}
	for ; k < p; k++ {
		pts = append(pts, tr.perimeterPoint(k))
	}
	for k = 0; float64(k) < b; k++ {
		pts = append(pts, tr.perimeterPoint(k))
	}
	return pts
}

// appendRing drops consecutive duplicates (a sample exactly at the threshold
// makes neighbouring crossings coincide) and skips rings that collapse below
// three points.
func appendRing(rings []Ring, r Ring) []Ring {
	out := r[:0]
	for _, p := range r {
		if len(out) > 0 && out[len(out)-1] == p {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && out[len(out)-1] == out[0] {
		out = out[:len(out)-1]
	}
	if len(out) < 3 {
		return rings
	}
	return append(rings, out)
}
