package bench

import (
	"math"
	"sort"
	"time"
)

// Stats summarizes the wall-clock samples of a Result.
type Stats struct {
	Min    time.Duration
	Max    time.Duration
	Mean   time.Duration
	Median time.Duration
	StdDev time.Duration
}

// Stats computes summary statistics over the result's wall-clock samples.
// An empty result yields the zero Stats.
func (r Result) Stats() Stats {
	n := len(r.Samples)
	if n == 0 {
		return Stats{}
	}

	walls := make([]time.Duration, n)
	for i, s := range r.Samples {
		walls[i] = s.Wall
	}
	sort.Slice(walls, func(i, j int) bool { return walls[i] < walls[j] })

	var sum time.Duration
	for _, w := range walls {
		sum += w
	}
	mean := sum / time.Duration(n)

	var variance float64
	for _, w := range walls {
		d := float64(w - mean)
		variance += d * d
	}
	variance /= float64(n)

	var median time.Duration
	if n%2 == 1 {
		median = walls[n/2]
	} else {
		median = (walls[n/2-1] + walls[n/2]) / 2
	}

	return Stats{
		Min:    walls[0],
		Max:    walls[n-1],
		Mean:   mean,
		Median: median,
		StdDev: time.Duration(math.Sqrt(variance)),
	}
}
