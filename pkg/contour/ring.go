package contour

import "math"

// Area returns the signed shoelace area in y-down coordinates: positive for
// exterior rings, negative for holes.
func (r Ring) Area() float64 {
	if len(r) < 3 {
		return 0
	}
	var sum float64
	prev := r[len(r)-1]
	for _, p := range r {
		sum += prev.X*p.Y - p.X*prev.Y
		prev = p
	}
	return sum / 2
}

// IsHole reports whether r bounds a below-threshold pocket.
func (r Ring) IsHole() bool { return r.Area() < 0 }

// Perimeter returns the length of the closed outline.
func (r Ring) Perimeter() float64 {
	if len(r) < 2 {
		return 0
	}
	var sum float64
	prev := r[len(r)-1]
	for _, p := range r {
		sum += math.Hypot(p.X-prev.X, p.Y-prev.Y)
		prev = p
	}
	return sum
}

// Bounds returns the axis-aligned bounding box of r.
func (r Ring) Bounds() (min, max Point) {
	if len(r) == 0 {
		return Point{}, Point{}
	}
	min, max = r[0], r[0]
	for _, p := range r[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}

// Contains reports whether p lies inside r using the even-odd rule. Points on
// the outline may go either way.
func (r Ring) Contains(p Point) bool {
	in := false
	j := len(r) - 1
	for i := range r {
		a, b := r[i], r[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < x {
				in = !in
			}
		}
		j = i
	}
	return in
}

// Reversed returns a copy of r walked in the opposite direction.
func (r Ring) Reversed() Ring {
	out := make(Ring, len(r))
	for i, p := range r {
		out[len(r)-1-i] = p
	}
	return out
}
