package grid

// Field is a read-only scalar view over a grid: Empty samples as 0.0 and
// Solid as 1.0. Samples are addressed in the same row-major layout the grid
// uses. It satisfies contour.Field.
type Field struct {
	g *Grid
}

// Field returns a scalar view of g. The view reads the live cells, so it
// reflects later writes to g.
func (g *Grid) Field() Field { return Field{g: g} }

// Size returns the number of samples along each axis.
func (f Field) Size() (w, h int) { return f.g.W, f.g.H }

// At returns the sample at (x, y). Callers stay in range; the extractor only
// visits valid lattice points.
func (f Field) At(x, y int) float64 {
	if f.g.cells[f.g.Index(x, y)] == Solid {
		return 1
	}
	return 0
}
