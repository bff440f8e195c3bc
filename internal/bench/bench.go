// Package bench provides wall-clock and cycle-estimate sampling for array
// pipeline measurements.
package bench

import (
	"time"

	"github.com/pkg/errors"
)

// Case is one benchmarkable action. Elements is the number of array
// elements the action processes per run; it normalizes throughput and
// usually comes from the pipeline extent's NumElements.
type Case struct {
	Name     string
	Elements int
	Run      func() error
}

// Options controls sampling.
type Options struct {
	Warmup     int // Unrecorded runs before sampling starts.
	Iterations int // Recorded runs.
}

// DefaultOptions returns sampling defaults suitable for sub-second cases.
func DefaultOptions() Options {
	return Options{Warmup: 3, Iterations: 30}
}

// Sample is one recorded run.
type Sample struct {
	Wall   time.Duration
	Cycles uint64 // Estimated from the calibrated clock rate.
}

// Result holds all samples for one case.
type Result struct {
	Name     string
	Elements int
	Samples  []Sample
}

// Run executes a case: warmup runs, then one recorded sample per iteration.
// A failing run aborts sampling and returns the error wrapped with the case
// name.
func Run(c Case, opt Options) (Result, error) {
	if opt.Iterations <= 0 {
		opt.Iterations = 1
	}

	for i := 0; i < opt.Warmup; i++ {
		if err := c.Run(); err != nil {
			return Result{}, errors.Wrapf(err, "bench %q: warmup run %d", c.Name, i)
		}
	}

	res := Result{
		Name:     c.Name,
		Elements: c.Elements,
		Samples:  make([]Sample, 0, opt.Iterations),
	}
	for i := 0; i < opt.Iterations; i++ {
		start := time.Now()
		if err := c.Run(); err != nil {
			return Result{}, errors.Wrapf(err, "bench %q: run %d", c.Name, i)
		}
		wall := time.Since(start)
		res.Samples = append(res.Samples, Sample{
			Wall:   wall,
			Cycles: cyclesFor(wall),
		})
	}
	return res, nil
}

// ElementsPerSecond reports mean throughput across all samples.
func (r Result) ElementsPerSecond() float64 {
	if len(r.Samples) == 0 || r.Elements == 0 {
		return 0
	}
	var total time.Duration
	for _, s := range r.Samples {
		total += s.Wall
	}
	secs := total.Seconds()
	if secs == 0 {
		return 0
	}
	return float64(r.Elements) * float64(len(r.Samples)) / secs
}
