// Package cave wires the grid, automaton and contour packages into the cave
// outline pipeline: randomize, smooth, trace.
package cave

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"cavegen/pkg/automaton"
	"cavegen/pkg/contour"
	"cavegen/pkg/core"
	"cavegen/pkg/grid"
)

// Option customises a run.
type Option func(*options)

type options struct {
	seed       int64
	seeded     bool
	src        grid.Source
	border     automaton.Border
	thresholds []float64
	contour    []contour.Option
}

// WithSeed makes the run reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed, o.seeded = seed, true }
}

// WithSource randomizes from src instead of a seeded generator. Result.Seed
// is zero for such runs.
func WithSource(src grid.Source) Option {
	return func(o *options) { o.src = src }
}

// WithBorder selects how the automaton counts neighbours beyond the map edge.
func WithBorder(b automaton.Border) Option {
	return func(o *options) { o.border = b }
}

// WithThresholds traces one contour per value instead of Params.Threshold.
func WithThresholds(ts ...float64) Option {
	return func(o *options) { o.thresholds = append([]float64(nil), ts...) }
}

// WithContourOptions forwards options to the contour extractor.
func WithContourOptions(opts ...contour.Option) Option {
	return func(o *options) { o.contour = append(o.contour, opts...) }
}

// Result is everything one run produced.
type Result struct {
	Params Params
	// Seed reproduces the run through WithSeed.
	Seed     int64
	Grid     *grid.Grid
	Contours []contour.Contour
}

// Generate runs the pipeline and returns one contour per threshold.
func Generate(p Params, opts ...Option) ([]contour.Contour, error) {
	res, err := Run(p, opts...)
	if err != nil {
		return nil, err
	}
	return res.Contours, nil
}

// Run validates p, then randomizes a grid, smooths it p.Iterations times and
// traces it. Nothing is allocated when validation fails.
func Run(p Params, opts ...Option) (*Result, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	thresholds := o.thresholds
	if thresholds == nil {
		thresholds = []float64{p.Threshold}
	}
	for _, t := range thresholds {
		if err := validThreshold(t); err != nil {
			return nil, err
		}
	}
	rules := automaton.Rules{CreateLimit: p.CreateLimit, DestroyLimit: p.DestroyLimit, Border: o.border}
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("cave: %w", err)
	}

	var seed int64
	src := o.src
	if src == nil {
		rng := core.NewClockRNG()
		if o.seeded {
			rng = core.NewRNG(o.seed)
		}
		seed, src = rng.Seed(), rng
	}

	g, err := grid.New(p.Width, p.Height)
	if err != nil {
		return nil, fmt.Errorf("cave: %w", err)
	}
	g.Randomize(p.SpawnChance, src)
	g, err = automaton.Evolve(g, rules, p.Iterations)
	if err != nil {
		return nil, fmt.Errorf("cave: %w", err)
	}
	cs, err := contour.ExtractAll(g.Field(), thresholds, o.contour...)
	if err != nil {
		return nil, fmt.Errorf("cave: %w", err)
	}
	return &Result{Params: p, Seed: seed, Grid: g, Contours: cs}, nil
}

// GenerateMany runs one seeded pipeline per seed on up to workers goroutines
// and returns the results in seed order. Any WithSource option is overridden
// by the per-run seed. Cancelling ctx stops runs that have not started yet; a
// run in progress always completes.
func GenerateMany(ctx context.Context, p Params, seeds []int64, workers int, opts ...Option) ([]*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = 1
	}
	results := make([]*Result, len(seeds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, seed := range seeds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Run(p, append(opts[:len(opts):len(opts)], WithSource(nil), WithSeed(seed))...)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
