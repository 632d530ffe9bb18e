// Package automaton smooths an occupancy grid into cave-like blobs with a
// Moore-neighbourhood birth/survival rule.
package automaton

import (
	"fmt"

	"cavegen/pkg/core"
	"cavegen/pkg/grid"
)

// Border selects how neighbour offsets outside the grid are counted.
type Border uint8

const (
	// BorderSolid counts every out-of-range offset as rock, which keeps caves
	// from opening onto the map edge.
	BorderSolid Border = iota
	// BorderEmpty counts out-of-range offsets as open floor.
	BorderEmpty
)

// String returns the flag spelling of the policy.
func (b Border) String() string {
	switch b {
	case BorderSolid:
		return "solid"
	case BorderEmpty:
		return "empty"
	default:
		return fmt.Sprintf("Border(%d)", uint8(b))
	}
}

// ParseBorder accepts the spellings produced by String.
func ParseBorder(s string) (Border, error) {
	switch s {
	case "solid", "":
		return BorderSolid, nil
	case "empty":
		return BorderEmpty, nil
	}
	return BorderSolid, fmt.Errorf("automaton: border %q: %w", s, core.ErrInvalidParameter)
}

// Rules configures one automaton.
type Rules struct {
	// CreateLimit: an Empty cell turns Solid when more than CreateLimit
	// neighbours are Solid.
	CreateLimit int
	// DestroyLimit: a Solid cell turns Empty when fewer than DestroyLimit
	// neighbours are Solid.
	DestroyLimit int
	Border       Border
}

// Validate checks both limits lie in [0, 8] and the border policy is known.
func (r Rules) Validate() error {
	if r.CreateLimit < 0 || r.CreateLimit > 8 {
		return fmt.Errorf("automaton: create limit %d outside [0,8]: %w", r.CreateLimit, core.ErrInvalidParameter)
	}
	if r.DestroyLimit < 0 || r.DestroyLimit > 8 {
		return fmt.Errorf("automaton: destroy limit %d outside [0,8]: %w", r.DestroyLimit, core.ErrInvalidParameter)
	}
	if r.Border != BorderSolid && r.Border != BorderEmpty {
		return fmt.Errorf("automaton: %v: %w", r.Border, core.ErrInvalidParameter)
	}
	return nil
}

// Automaton evolves a grid one whole generation at a time. Each step reads
// only the previous generation and writes into a second buffer, then the two
// are swapped.
type Automaton struct {
	rules Rules
	cur   *grid.Grid
	nxt   *grid.Grid
	gen   int
}

// New wraps g. The automaton takes ownership of g: it becomes the first
// generation and its buffer is reused by later steps.
func New(g *grid.Grid, rules Rules) (*Automaton, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	nxt, err := grid.New(g.W, g.H)
	if err != nil {
		return nil, err
	}
	return &Automaton{rules: rules, cur: g, nxt: nxt}, nil
}

// Rules returns the configured rules.
func (a *Automaton) Rules() Rules { return a.rules }

// Grid returns the current generation. It is overwritten two steps later, so
// Clone it to keep a snapshot.
func (a *Automaton) Grid() *grid.Grid { return a.cur }

// Generation returns the number of steps applied so far.
func (a *Automaton) Generation() int { return a.gen }

// NeighborCount counts Solid cells among the 8 neighbours of (x, y), treating
// out-of-range offsets according to the border policy.
func (a *Automaton) NeighborCount(x, y int) int {
	return neighborCount(a.cur, x, y, a.rules.Border)
}

func neighborCount(g *grid.Grid, x, y int, border Border) int {
	w, h := g.W, g.H
	cells := g.Cells()
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx < 0 || ny < 0 || nx >= w || ny >= h {
				if border == BorderSolid {
					n++
				}
				continue
			}
			if cells[ny*w+nx] == grid.Solid {
				n++
			}
		}
	}
	return n
}

// Step advances the grid by one generation.
func (a *Automaton) Step() {
	w, h := a.cur.W, a.cur.H
	cur, nxt := a.cur.Cells(), a.nxt.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			n := neighborCount(a.cur, x, y, a.rules.Border)
			nxt[idx] = next(cur[idx], n, a.rules)
		}
	}
	a.cur, a.nxt = a.nxt, a.cur
	a.gen++
}

// Run applies exactly n steps. n <= 0 leaves the grid untouched.
func (a *Automaton) Run(n int) {
	for i := 0; i < n; i++ {
		a.Step()
	}
}

func next(s grid.State, n int, r Rules) grid.State {
	if s == grid.Solid {
		if n < r.DestroyLimit {
			return grid.Empty
		}
		return grid.Solid
	}
	if n > r.CreateLimit {
		return grid.Solid
	}
	return grid.Empty
}

// Evolve runs iterations steps over g and returns the final generation. g is
// consumed; the result may share its buffer.
func Evolve(g *grid.Grid, rules Rules, iterations int) (*grid.Grid, error) {
	if iterations < 0 {
		return nil, fmt.Errorf("automaton: iterations %d < 0: %w", iterations, core.ErrInvalidParameter)
	}
	a, err := New(g, rules)
	if err != nil {
		return nil, err
	}
	a.Run(iterations)
	return a.Grid(), nil
}
