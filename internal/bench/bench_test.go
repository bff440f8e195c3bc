package bench

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCollectsSamples(t *testing.T) {
	runs := 0
	res, err := Run(Case{
		Name:     "noop",
		Elements: 128,
		Run:      func() error { runs++; return nil },
	}, Options{Warmup: 2, Iterations: 5})

	require.NoError(t, err)
	assert.Equal(t, 7, runs, "warmup + iterations")
	assert.Len(t, res.Samples, 5)
	assert.Equal(t, "noop", res.Name)
	assert.Equal(t, 128, res.Elements)
	for _, s := range res.Samples {
		assert.GreaterOrEqual(t, s.Wall, time.Duration(0))
	}
}

func TestRunWrapsFailures(t *testing.T) {
	boom := errors.New("case failed")

	_, err := Run(Case{Name: "bad", Run: func() error { return boom }},
		Options{Warmup: 0, Iterations: 3})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), `bench "bad"`)
}

func TestStats(t *testing.T) {
	res := Result{
		Samples: []Sample{
			{Wall: 10 * time.Millisecond},
			{Wall: 20 * time.Millisecond},
			{Wall: 30 * time.Millisecond},
			{Wall: 40 * time.Millisecond},
		},
	}

	st := res.Stats()
	assert.Equal(t, 10*time.Millisecond, st.Min)
	assert.Equal(t, 40*time.Millisecond, st.Max)
	assert.Equal(t, 25*time.Millisecond, st.Mean)
	assert.Equal(t, 25*time.Millisecond, st.Median)
	assert.Greater(t, st.StdDev, time.Duration(0))

	assert.Equal(t, Stats{}, Result{}.Stats())
}

func TestElementsPerSecond(t *testing.T) {
	res := Result{
		Elements: 1000,
		Samples: []Sample{
			{Wall: 100 * time.Millisecond},
			{Wall: 100 * time.Millisecond},
		},
	}
	// 2000 elements over 0.2s.
	assert.InDelta(t, 10_000, res.ElementsPerSecond(), 1)

	assert.Zero(t, Result{}.ElementsPerSecond())
}

func TestClockHz(t *testing.T) {
	hz := ClockHz()
	assert.Greater(t, hz, 0.0)
	// Calibration runs once; repeated calls return the same estimate.
	assert.Equal(t, hz, ClockHz())
}

func TestLoadSuite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"warmup: 1\niterations: 10\nsizes: [64, 256]\ncases: [map, zip]\n"), 0o644))

	cfg, err := LoadSuite(path)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Warmup)
	assert.Equal(t, 10, cfg.Iterations)
	assert.Equal(t, []int{64, 256}, cfg.Sizes)
	assert.True(t, cfg.WantsCase("map"))
	assert.False(t, cfg.WantsCase("force"))
}

func TestLoadSuiteDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte("iterations: 5\n"), 0o644))

	cfg, err := LoadSuite(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Iterations)
	assert.Equal(t, DefaultSuite().Warmup, cfg.Warmup)
	assert.Equal(t, DefaultSuite().Sizes, cfg.Sizes)
	assert.True(t, cfg.WantsCase("anything"), "empty cases selects everything")
}

func TestLoadSuiteErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadSuite(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("iterations: [not a number\n"), 0o644))
	_, err = LoadSuite(bad)
	assert.Error(t, err)

	neg := filepath.Join(dir, "neg.yaml")
	require.NoError(t, os.WriteFile(neg, []byte("iterations: -2\n"), 0o644))
	_, err = LoadSuite(neg)
	assert.Error(t, err)

	zeroSize := filepath.Join(dir, "size.yaml")
	require.NoError(t, os.WriteFile(zeroSize, []byte("iterations: 3\nsizes: [0]\n"), 0o644))
	_, err = LoadSuite(zeroSize)
	assert.Error(t, err)
}
