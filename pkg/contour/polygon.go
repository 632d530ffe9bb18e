package contour

import (
	"encoding/json"
	"math"
)

// Area returns the net signed area of all rings: exterior area minus holes.
func (c Contour) Area() float64 {
	var sum float64
	for _, r := range c.Rings {
		sum += r.Area()
	}
	return sum
}

// Len returns the number of rings.
func (c Contour) Len() int { return len(c.Rings) }

// Holes counts rings with negative orientation.
func (c Contour) Holes() int {
	n := 0
	for _, r := range c.Rings {
		if r.IsHole() {
			n++
		}
	}
	return n
}

// Bounds returns the bounding box of every ring. ok is false for an empty
// contour.
func (c Contour) Bounds() (min, max Point, ok bool) {
	for _, r := range c.Rings {
		if len(r) == 0 {
			continue
		}
		rmin, rmax := r.Bounds()
		if !ok {
			min, max, ok = rmin, rmax, true
			continue
		}
		min.X = math.Min(min.X, rmin.X)
		min.Y = math.Min(min.Y, rmin.Y)
		max.X = math.Max(max.X, rmax.X)
		max.Y = math.Max(max.Y, rmax.Y)
	}
	return min, max, ok
}

// Polygons groups rings into exteriors with their holes. Each hole goes to the
// smallest exterior containing it. Polygons keep the order of their exterior
// rings; holes nothing contains become polygons of their own, after the rest.
func (c Contour) Polygons() []Polygon {
	var polys []Polygon
	var areas []float64
	for _, r := range c.Rings {
		if a := r.Area(); a > 0 {
			polys = append(polys, Polygon{r})
			areas = append(areas, a)
		}
	}
	var orphans []Polygon
	for _, r := range c.Rings {
		if !r.IsHole() {
			continue
		}
		probe := r[0]
		best := -1
		for i, p := range polys {
			if !p[0].Contains(probe) {
				continue
			}
			if best < 0 || areas[i] < areas[best] {
				best = i
			}
		}
		if best < 0 {
			orphans = append(orphans, Polygon{r})
			continue
		}
		polys[best] = append(polys[best], r)
	}
	return append(polys, orphans...)
}

// MarshalJSON encodes the contour as a GeoJSON MultiPolygon carrying the
// threshold in "value", the shape d3-contour produces. Rings repeat their
// first point at the end as GeoJSON requires.
func (c Contour) MarshalJSON() ([]byte, error) {
	polys := c.Polygons()
	coords := make([][][][2]float64, len(polys))
	for i, poly := range polys {
		coords[i] = make([][][2]float64, len(poly))
		for j, r := range poly {
			ring := make([][2]float64, 0, len(r)+1)
			for _, p := range r {
				ring = append(ring, [2]float64{p.X, p.Y})
			}
			if len(r) > 0 {
				ring = append(ring, [2]float64{r[0].X, r[0].Y})
			}
			coords[i][j] = ring
		}
	}
	return json.Marshal(struct {
		Type        string           `json:"type"`
		Value       float64          `json:"value"`
		Coordinates [][][][2]float64 `json:"coordinates"`
	}{
		Type:        "MultiPolygon",
		Value:       c.Value,
		Coordinates: coords,
	})
}
