package app

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cavegen/pkg/automaton"
	"cavegen/pkg/cave"
	"cavegen/pkg/core"
)

func smallParams() cave.Params {
	p := cave.DefaultParams()
	p.Width, p.Height = 60, 40
	return p
}

func TestSessionPlaybackMatchesPipeline(t *testing.T) {
	s, err := NewSession(smallParams(), automaton.BorderSolid, 21)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Generation())
	assert.False(t, s.Done())

	steps := 0
	for s.Advance() {
		steps++
	}
	assert.Equal(t, smallParams().Iterations, steps)
	assert.True(t, s.Done())

	want, err := cave.Run(smallParams(), cave.WithSeed(21))
	require.NoError(t, err)
	assert.True(t, want.Grid.Equal(s.Grid()))
	assert.Equal(t, want.Contours, s.Contours())
}

func TestSessionFinishAndRegenerate(t *testing.T) {
	s, err := NewSession(smallParams(), automaton.BorderSolid, 4)
	require.NoError(t, err)
	s.Finish()
	assert.Equal(t, smallParams().Iterations, s.Generation())
	first := s.Grid().Clone()

	require.NoError(t, s.Regenerate(4))
	assert.Equal(t, 0, s.Generation())
	s.Finish()
	assert.True(t, first.Equal(s.Grid()), "same seed, same cave")

	require.NoError(t, s.Regenerate(5))
	s.Finish()
	assert.False(t, first.Equal(s.Grid()))
	assert.Equal(t, int64(5), s.Seed())
}

func TestSessionClockSeed(t *testing.T) {
	s, err := NewSession(smallParams(), automaton.BorderSolid, 0)
	require.NoError(t, err)
	assert.NotZero(t, s.Seed())

	bad := smallParams()
	bad.Width = 0
	_, err = NewSession(bad, automaton.BorderSolid, 1)
	assert.ErrorIs(t, err, core.ErrInvalidDimension)
}

func TestSessionParameterSetters(t *testing.T) {
	s, err := NewSession(smallParams(), automaton.BorderSolid, 9)
	require.NoError(t, err)
	s.Finish()

	require.True(t, s.SetFloatParameter("threshold", 0.25))
	assert.Equal(t, 0.25, s.Params().Threshold)
	assert.Equal(t, smallParams().Iterations, s.Generation(), "threshold only retraces")
	require.Len(t, s.Contours(), 1)
	assert.Equal(t, 0.25, s.Contours()[0].Value)

	require.True(t, s.SetIntParameter("w", 80))
	w, h := s.Size()
	assert.Equal(t, 80, w)
	assert.Equal(t, 40, h)
	assert.Equal(t, 0, s.Generation(), "size change rebuilds the map")
	assert.Equal(t, int64(9), s.Seed())

	require.True(t, s.SetIntParameter("create", 99))
	assert.Equal(t, 8, s.Params().CreateLimit, "clamped to the control range")

	assert.False(t, s.SetIntParameter("depth", 3))
}

func TestSessionParametersSnapshot(t *testing.T) {
	s, err := NewSession(smallParams(), automaton.BorderSolid, 77)
	require.NoError(t, err)

	snap := s.Parameters()
	p, ok := snap.Lookup("seed")
	require.True(t, ok)
	assert.Equal(t, "77", p.Value)
	p, ok = snap.Lookup("generation")
	require.True(t, ok)
	assert.Equal(t, "0/5", p.Value)
	p, ok = snap.Lookup("w")
	require.True(t, ok)
	assert.Equal(t, "60", p.Value)

	assert.Len(t, s.ParameterControls(), len(cave.Controls()))
}

func TestConfigResolve(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg := NewConfig()
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-w", "64", "-threshold", "0.4", "-seed", "12"}))

	p, opts, err := cfg.Resolve(fs)
	require.NoError(t, err)
	assert.Equal(t, 64, p.Width)
	assert.Equal(t, 0.4, p.Threshold)
	assert.Len(t, opts, 2)

	res, err := cave.Run(p, opts...)
	require.NoError(t, err)
	assert.Equal(t, int64(12), res.Seed)
}

func TestConfigPresetKeepsExplicitFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg := NewConfig()
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-preset", "dense", "-iterations", "2"}))

	p, opts, err := cfg.Resolve(fs)
	require.NoError(t, err)
	dense, _ := cave.Preset("dense")
	assert.Equal(t, dense.SpawnChance, p.SpawnChance)
	assert.Equal(t, 2, p.Iterations)
	assert.Len(t, opts, 1, "no seed option without -seed")
}

func TestConfigResolveErrors(t *testing.T) {
	for _, args := range [][]string{
		{"-preset", "nope"},
		{"-border", "wrap"},
		{"-create", "12"},
	} {
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		cfg := NewConfig()
		cfg.Bind(fs)
		require.NoError(t, fs.Parse(args))
		_, _, err := cfg.Resolve(fs)
		assert.Error(t, err, "%v", args)
	}
}
