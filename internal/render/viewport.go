package render

import (
	"math"

	"cavegen/pkg/contour"
)

// Viewport maps contour coordinates into a width×height output.
type Viewport struct {
	MinX, MinY     float64
	ScaleX, ScaleY float64
}

// Apply maps p into output coordinates.
func (v Viewport) Apply(p contour.Point) (float64, float64) {
	return (p.X - v.MinX) * v.ScaleX, (p.Y - v.MinY) * v.ScaleY
}

// FitGrid maps a gridW×gridH sample lattice onto the output. The lattice
// spans gridW-1 by gridH-1 units.
func FitGrid(gridW, gridH int, width, height float64) Viewport {
	return Viewport{
		ScaleX: width / math.Max(1e-6, float64(gridW-1)),
		ScaleY: height / math.Max(1e-6, float64(gridH-1)),
	}
}

// FitContours stretches the bounding box of every ring across the output,
// each axis scaled on its own. ok is false when there are no rings.
func FitContours(cs []contour.Contour, width, height float64) (v Viewport, ok bool) {
	var min, max contour.Point
	for _, c := range cs {
		cmin, cmax, has := c.Bounds()
		if !has {
			continue
		}
		if !ok {
			min, max, ok = cmin, cmax, true
			continue
		}
		min.X = math.Min(min.X, cmin.X)
		min.Y = math.Min(min.Y, cmin.Y)
		max.X = math.Max(max.X, cmax.X)
		max.Y = math.Max(max.Y, cmax.Y)
	}
	if !ok {
		return Viewport{}, false
	}
	return Viewport{
		MinX:   min.X,
		MinY:   min.Y,
		ScaleX: width / math.Max(1e-6, max.X-min.X),
		ScaleY: height / math.Max(1e-6, max.Y-min.Y),
	}, true
}
