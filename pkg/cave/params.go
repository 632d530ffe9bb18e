package cave

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"cavegen/pkg/core"
)

// Params holds the tunables of one generation run.
type Params struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	// SpawnChance is the percentage of cells seeded Solid before smoothing.
	SpawnChance float64 `json:"spawnChance"`

	CreateLimit  int `json:"createLimit"`
	DestroyLimit int `json:"destroyLimit"`
	Iterations   int `json:"iterations"`

	// Threshold is the iso-value the outline is traced at.
	Threshold float64 `json:"threshold"`
}

// DefaultParams returns the standard cave settings.
func DefaultParams() Params {
	return Params{
		Width:        120,
		Height:       120,
		SpawnChance:  65,
		CreateLimit:  5,
		DestroyLimit: 5,
		Iterations:   5,
		Threshold:    0.5,
	}
}

// Validate rejects values outside their documented ranges. Dimensions below
// two cells cannot hold a single contour cell and fail with
// core.ErrInvalidDimension; everything else fails with core.ErrInvalidParameter.
func (p Params) Validate() error {
	if p.Width < 2 || p.Height < 2 {
		return fmt.Errorf("cave: size %dx%d: %w", p.Width, p.Height, core.ErrInvalidDimension)
	}
	if math.IsNaN(p.SpawnChance) || p.SpawnChance < 0 || p.SpawnChance > 100 {
		return fmt.Errorf("cave: spawn chance %v outside [0,100]: %w", p.SpawnChance, core.ErrInvalidParameter)
	}
	if p.CreateLimit < 0 || p.CreateLimit > 8 {
		return fmt.Errorf("cave: create limit %d outside [0,8]: %w", p.CreateLimit, core.ErrInvalidParameter)
	}
	if p.DestroyLimit < 0 || p.DestroyLimit > 8 {
		return fmt.Errorf("cave: destroy limit %d outside [0,8]: %w", p.DestroyLimit, core.ErrInvalidParameter)
	}
	if p.Iterations < 0 {
		return fmt.Errorf("cave: iterations %d < 0: %w", p.Iterations, core.ErrInvalidParameter)
	}
	return validThreshold(p.Threshold)
}

func validThreshold(t float64) error {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return fmt.Errorf("cave: threshold %v: %w", t, core.ErrInvalidParameter)
	}
	return nil
}

// FromMap populates params from a string map (flag-style key/value pairs).
// Unparseable entries keep their default; range checks are left to Validate.
func FromMap(cfg map[string]string) Params {
	p := DefaultParams()
	if cfg == nil {
		return p
	}
	ints := map[string]*int{
		"w":          &p.Width,
		"h":          &p.Height,
		"create":     &p.CreateLimit,
		"destroy":    &p.DestroyLimit,
		"iterations": &p.Iterations,
	}
	for key, dst := range ints {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil {
				*dst = parsed
			}
		}
	}
	if v, ok := cfg["spawn"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			p.SpawnChance = parsed
		}
	}
	if v, ok := cfg["threshold"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			p.Threshold = parsed
		}
	}
	return p
}

// Controls describes the interactive range of every parameter, keyed like
// FromMap.
func Controls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "w", Label: "Grid Width", Type: core.ParamTypeInt, Step: 1, Min: 50, Max: 200,
			Description: "Size of the generation grid (width)"},
		{Key: "h", Label: "Grid Height", Type: core.ParamTypeInt, Step: 1, Min: 50, Max: 200,
			Description: "Size of the generation grid (height)"},
		{Key: "spawn", Label: "Spawn Chance", Type: core.ParamTypeInt, Unit: "%", Step: 1, Min: 0, Max: 100,
			Description: "Initial chance of a cell being a wall"},
		{Key: "create", Label: "Create Limit", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 8,
			Description: "Neighbours needed to create a new wall"},
		{Key: "destroy", Label: "Destroy Limit", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 8,
			Description: "Neighbours needed to keep a wall"},
		{Key: "iterations", Label: "Iterations", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 20,
			Description: "Number of smoothing iterations"},
		{Key: "threshold", Label: "Contour Threshold", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1,
			Description: "Iso-value the outline is traced at"},
	}
}

// Get returns the value stored under a control key.
func (p Params) Get(key string) (float64, bool) {
	switch key {
	case "w":
		return float64(p.Width), true
	case "h":
		return float64(p.Height), true
	case "spawn":
		return p.SpawnChance, true
	case "create":
		return float64(p.CreateLimit), true
	case "destroy":
		return float64(p.DestroyLimit), true
	case "iterations":
		return float64(p.Iterations), true
	case "threshold":
		return p.Threshold, true
	}
	return 0, false
}

// Set stores v under a control key. It reports false for unknown keys.
func (p *Params) Set(key string, v float64) bool {
	switch key {
	case "w":
		p.Width = int(math.Round(v))
	case "h":
		p.Height = int(math.Round(v))
	case "spawn":
		p.SpawnChance = v
	case "create":
		p.CreateLimit = int(math.Round(v))
	case "destroy":
		p.DestroyLimit = int(math.Round(v))
	case "iterations":
		p.Iterations = int(math.Round(v))
	case "threshold":
		p.Threshold = v
	default:
		return false
	}
	return true
}

// Snapshot formats the params for display, grouped like the control panel.
func (p Params) Snapshot() core.ParameterSnapshot {
	groups := []core.ParameterGroup{{Name: "Grid"}, {Name: "Automaton"}, {Name: "Contour"}}
	for _, c := range Controls() {
		v, _ := p.Get(c.Key)
		param := core.Parameter{Key: c.Key, Label: c.Label, Type: c.Type, Value: c.Format(v), Unit: c.Unit}
		switch c.Key {
		case "w", "h", "spawn":
			groups[0].Params = append(groups[0].Params, param)
		case "threshold":
			groups[2].Params = append(groups[2].Params, param)
		default:
			groups[1].Params = append(groups[1].Params, param)
		}
	}
	return core.ParameterSnapshot{Groups: groups}
}

var presets = map[string]Params{
	"default": DefaultParams(),
	"open": {
		Width: 120, Height: 120, SpawnChance: 45,
		CreateLimit: 5, DestroyLimit: 4, Iterations: 6, Threshold: 0.5,
	},
	"dense": {
		Width: 120, Height: 120, SpawnChance: 75,
		CreateLimit: 4, DestroyLimit: 4, Iterations: 4, Threshold: 0.5,
	},
	"noise": {
		Width: 120, Height: 120, SpawnChance: 50,
		CreateLimit: 5, DestroyLimit: 5, Iterations: 0, Threshold: 0.5,
	},
}

// Presets lists the names of the built-in parameter sets in sorted order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns a built-in parameter set by name.
func Preset(name string) (Params, bool) {
	p, ok := presets[name]
	return p, ok
}
