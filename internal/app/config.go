package app

import (
	"flag"
	"fmt"
	"strconv"

	"cavegen/pkg/automaton"
	"cavegen/pkg/cave"
)

// Config represents the command-line parameters shared by the binaries.
type Config struct {
	Params cave.Params
	Preset string
	Border string
	// Seed 0 picks a seed from the clock.
	Seed int64

	Scale int
	TPS   int
	HUD   bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Params: cave.DefaultParams(),
		Border: automaton.BorderSolid.String(),
		Scale:  5,
		TPS:    10,
		HUD:    true,
	}
}

// Bind attaches the configuration to the provided FlagSet. Parameter flags
// use the same keys as cave.FromMap.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Params.Width, "w", c.Params.Width, "grid width in cells")
	fs.IntVar(&c.Params.Height, "h", c.Params.Height, "grid height in cells")
	fs.Float64Var(&c.Params.SpawnChance, "spawn", c.Params.SpawnChance, "initial wall percentage")
	fs.IntVar(&c.Params.CreateLimit, "create", c.Params.CreateLimit, "neighbours needed to create a wall")
	fs.IntVar(&c.Params.DestroyLimit, "destroy", c.Params.DestroyLimit, "neighbours needed to keep a wall")
	fs.IntVar(&c.Params.Iterations, "iterations", c.Params.Iterations, "smoothing iterations")
	fs.Float64Var(&c.Params.Threshold, "threshold", c.Params.Threshold, "contour iso-value")
	fs.StringVar(&c.Preset, "preset", c.Preset, "start from a named parameter set")
	fs.StringVar(&c.Border, "border", c.Border, "out-of-map neighbours: solid or empty")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for generation (0 = clock)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "automaton generations per second in the viewer")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the parameter panel")
}

// Resolve returns the final parameters and pipeline options after fs has been
// parsed. A preset replaces the defaults; parameter flags set explicitly on
// the command line still override it.
func (c *Config) Resolve(fs *flag.FlagSet) (cave.Params, []cave.Option, error) {
	p := c.Params
	if c.Preset != "" {
		preset, ok := cave.Preset(c.Preset)
		if !ok {
			return cave.Params{}, nil, fmt.Errorf("app: unknown preset %q (have %v)", c.Preset, cave.Presets())
		}
		p = preset
		var err error
		fs.Visit(func(f *flag.Flag) {
			if _, known := p.Get(f.Name); !known || err != nil {
				return
			}
			v, perr := strconv.ParseFloat(f.Value.String(), 64)
			if perr != nil {
				err = fmt.Errorf("app: flag -%s: %w", f.Name, perr)
				return
			}
			p.Set(f.Name, v)
		})
		if err != nil {
			return cave.Params{}, nil, err
		}
	}
	border, err := automaton.ParseBorder(c.Border)
	if err != nil {
		return cave.Params{}, nil, err
	}
	if err := p.Validate(); err != nil {
		return cave.Params{}, nil, err
	}
	opts := []cave.Option{cave.WithBorder(border)}
	if c.Seed != 0 {
		opts = append(opts, cave.WithSeed(c.Seed))
	}
	return p, opts, nil
}

// BorderPolicy parses the -border flag.
func (c *Config) BorderPolicy() (automaton.Border, error) {
	return automaton.ParseBorder(c.Border)
}
