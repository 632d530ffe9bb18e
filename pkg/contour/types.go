package contour

import (
	"fmt"

	"cavegen/pkg/core"
)

// Field is a read-only W×H grid of samples.
type Field interface {
	Size() (w, h int)
	At(x, y int) float64
}

// Values is a Field backed by a row-major slice.
type Values struct {
	W, H int
	Data []float64
}

// NewValues wraps data, which must hold exactly w*h samples.
func NewValues(w, h int, data []float64) (*Values, error) {
	if w <= 0 || h <= 0 || len(data) != w*h {
		return nil, fmt.Errorf("contour.NewValues(%d, %d) with %d samples: %w", w, h, len(data), core.ErrInvalidDimension)
	}
	return &Values{W: w, H: h, Data: data}, nil
}

// Size returns the number of samples along each axis.
func (v *Values) Size() (w, h int) { return v.W, v.H }

// At returns the sample at (x, y).
func (v *Values) At(x, y int) float64 { return v.Data[y*v.W+x] }

// Point is a position in field coordinates.
type Point struct {
	X, Y float64
}

// Ring is a closed polygon; the last point connects back to the first.
type Ring []Point

// Contour holds every ring traced at one threshold.
type Contour struct {
	Value float64
	Rings []Ring
}

// Polygon is an exterior ring followed by the holes it encloses. A polygon
// built from a hole with no enclosing exterior holds just that hole.
type Polygon []Ring
