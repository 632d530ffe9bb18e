// Package grid holds the binary occupancy grid the cave generator evolves.
//
// Cells are stored flat in row-major order (index y*W+x). Coordinates outside
// [0,W)×[0,H) are an API error; how the automaton treats the map edge is its
// own policy and never leaks into grid access.
package grid

import (
	"fmt"
	"math"
	"strings"

	"cavegen/pkg/core"
)

// State is the occupancy of a single cell.
type State uint8

const (
	// Empty is open cave floor.
	Empty State = iota
	// Solid is rock.
	Solid
)

// Source supplies uniform samples in [0, 1). *rand.Rand and *core.RNG both
// satisfy it.
type Source interface {
	Float64() float64
}

// Grid stores a W×H occupancy map.
type Grid struct {
	W, H  int
	cells []State
}

// New allocates an all-Empty grid.
func New(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("grid.New(%d, %d): %w", w, h, core.ErrInvalidDimension)
	}
	return &Grid{W: w, H: h, cells: make([]State, w*h)}, nil
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []State { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the state of cell (x, y).
func (g *Grid) At(x, y int) (State, error) {
	if !g.InBounds(x, y) {
		return Empty, fmt.Errorf("grid.At(%d, %d) on %dx%d: %w", x, y, g.W, g.H, core.ErrOutOfBounds)
	}
	return g.cells[g.Index(x, y)], nil
}

// Set stores s at (x, y).
func (g *Grid) Set(x, y int, s State) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("grid.Set(%d, %d) on %dx%d: %w", x, y, g.W, g.H, core.ErrOutOfBounds)
	}
	g.cells[g.Index(x, y)] = s
	return nil
}

// Randomize sets every cell Solid with probability spawnChance/100 and Empty
// otherwise. spawnChance is clamped into [0, 100]; NaN counts as 0.
func (g *Grid) Randomize(spawnChance float64, src Source) {
	if math.IsNaN(spawnChance) {
		spawnChance = 0
	}
	spawnChance = math.Max(0, math.Min(100, spawnChance))
	for i := range g.cells {
		if src.Float64()*100 < spawnChance {
			g.cells[i] = Solid
			continue
		}
		g.cells[i] = Empty
	}
}

// Fill sets every cell to s.
func (g *Grid) Fill(s State) {
	for i := range g.cells {
		g.cells[i] = s
	}
}

// Count returns how many cells hold s.
func (g *Grid) Count(s State) int {
	n := 0
	for _, c := range g.cells {
		if c == s {
			n++
		}
	}
	return n
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	cells := make([]State, len(g.cells))
	copy(cells, g.cells)
	return &Grid{W: g.W, H: g.H, cells: cells}
}

// Equal reports whether both grids have the same size and contents.
func (g *Grid) Equal(o *Grid) bool {
	if g.W != o.W || g.H != o.H {
		return false
	}
	for i, c := range g.cells {
		if o.cells[i] != c {
			return false
		}
	}
	return true
}

// String draws the grid one row per line, '#' for Solid and '.' for Empty.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.W + 1) * g.H)
	for y := 0; y < g.H; y++ {
		row := g.cells[y*g.W : (y+1)*g.W]
		for _, c := range row {
			if c == Solid {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Parse builds a grid from rows drawn the way String prints them. Any byte
// other than '#' is read as Empty.
func Parse(rows ...string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("grid.Parse: no rows: %w", core.ErrInvalidDimension)
	}
	g, err := New(len(rows[0]), len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != g.W {
			return nil, fmt.Errorf("grid.Parse: row %d has width %d, want %d: %w", y, len(row), g.W, core.ErrInvalidDimension)
		}
		for x := 0; x < g.W; x++ {
			if row[x] == '#' {
				g.cells[g.Index(x, y)] = Solid
			}
		}
	}
	return g, nil
}
