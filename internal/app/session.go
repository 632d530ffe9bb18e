package app

import (
	"fmt"
	"strconv"

	"cavegen/pkg/automaton"
	"cavegen/pkg/cave"
	"cavegen/pkg/contour"
	"cavegen/pkg/core"
	"cavegen/pkg/grid"
)

// Session is the viewer's model: one cave being smoothed generation by
// generation, with its outline retraced after every step. It has no GUI
// dependencies so the ebiten frontend stays thin.
type Session struct {
	params cave.Params
	border automaton.Border
	opts   []contour.Option

	seed     int64
	auto     *automaton.Automaton
	contours []contour.Contour
}

// NewSession validates p and builds the first map. A zero seed is replaced by
// one drawn from the clock.
func NewSession(p cave.Params, border automaton.Border, seed int64, opts ...contour.Option) (*Session, error) {
	s := &Session{params: p, border: border, opts: opts}
	if seed == 0 {
		seed = core.NewClockRNG().Seed()
	}
	if err := s.Regenerate(seed); err != nil {
		return nil, err
	}
	return s, nil
}

// Regenerate randomizes a new map from seed and rewinds playback to
// generation zero. The session is left untouched on error.
func (s *Session) Regenerate(seed int64) error {
	if err := s.params.Validate(); err != nil {
		return err
	}
	g, err := grid.New(s.params.Width, s.params.Height)
	if err != nil {
		return err
	}
	g.Randomize(s.params.SpawnChance, core.NewRNG(seed))
	auto, err := automaton.New(g, s.rules())
	if err != nil {
		return err
	}
	s.seed, s.auto = seed, auto
	s.trace()
	return nil
}

func (s *Session) rules() automaton.Rules {
	return automaton.Rules{
		CreateLimit:  s.params.CreateLimit,
		DestroyLimit: s.params.DestroyLimit,
		Border:       s.border,
	}
}

// trace cannot fail here: Regenerate already checked the size and threshold.
func (s *Session) trace() {
	cs, err := contour.ExtractAll(s.auto.Grid().Field(), []float64{s.params.Threshold}, s.opts...)
	if err != nil {
		s.contours = nil
		return
	}
	s.contours = cs
}

// Advance applies one smoothing step. It reports false once the configured
// number of iterations has been reached.
func (s *Session) Advance() bool {
	if s.Done() {
		return false
	}
	s.auto.Step()
	s.trace()
	return true
}

// Finish applies every remaining step.
func (s *Session) Finish() {
	if s.Done() {
		return
	}
	s.auto.Run(s.params.Iterations - s.auto.Generation())
	s.trace()
}

// Done reports whether playback reached the final generation.
func (s *Session) Done() bool { return s.auto.Generation() >= s.params.Iterations }

// Name identifies the model in window titles.
func (s *Session) Name() string { return "cave" }

// Size returns the grid dimensions.
func (s *Session) Size() (int, int) { return s.params.Width, s.params.Height }

// Seed returns the seed of the current map.
func (s *Session) Seed() int64 { return s.seed }

// Params returns the active parameters.
func (s *Session) Params() cave.Params { return s.params }

// Generation returns the number of smoothing steps applied so far.
func (s *Session) Generation() int { return s.auto.Generation() }

// Grid returns the current generation. The automaton reuses its buffers, so
// Clone it to keep a copy.
func (s *Session) Grid() *grid.Grid { return s.auto.Grid() }

// Contours returns the outline of the current generation.
func (s *Session) Contours() []contour.Contour { return s.contours }

// Parameters returns the current values for the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	snap := s.params.Snapshot()
	snap.Groups = append(snap.Groups, core.ParameterGroup{
		Name: "Run",
		Params: []core.Parameter{
			{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(s.seed, 10)},
			{Key: "generation", Label: "Generation", Type: core.ParamTypeInt,
				Value: fmt.Sprintf("%d/%d", s.auto.Generation(), s.params.Iterations)},
			{Key: "rings", Label: "Rings", Type: core.ParamTypeInt, Value: strconv.Itoa(s.ringCount())},
		},
	})
	return snap
}

func (s *Session) ringCount() int {
	n := 0
	for _, c := range s.contours {
		n += c.Len()
	}
	return n
}

// ParameterControls exposes the adjustable parameters.
func (s *Session) ParameterControls() []core.ParameterControl { return cave.Controls() }

// SetIntParameter updates an integer parameter and rebuilds the map with the
// current seed.
func (s *Session) SetIntParameter(key string, value int) bool {
	return s.set(key, float64(value))
}

// SetFloatParameter updates a floating point parameter. A threshold change
// only retraces the current generation.
func (s *Session) SetFloatParameter(key string, value float64) bool {
	return s.set(key, value)
}

func (s *Session) set(key string, value float64) bool {
	var ctrl *core.ParameterControl
	controls := cave.Controls()
	for i := range controls {
		if controls[i].Key == key {
			ctrl = &controls[i]
			break
		}
	}
	if ctrl == nil {
		return false
	}
	next := s.params
	next.Set(key, ctrl.Clamp(value))
	if next.Validate() != nil {
		return false
	}
	prev := s.params
	s.params = next
	if key == "threshold" {
		s.trace()
		return true
	}
	if err := s.Regenerate(s.seed); err != nil {
		s.params = prev
		return false
	}
	return true
}
