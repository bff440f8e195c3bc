package bench

import (
	"sync"
	"time"
)

// Cycle estimates use a clock rate calibrated once per process: a short
// busy loop of known iteration count is timed, and the observed rate is
// assumed to hold for subsequent samples. This is a coarse estimate, not a
// hardware cycle counter read; it exists so sample reports stay comparable
// across machines with different nominal frequencies.

var (
	calibrateOnce sync.Once
	clockHz       float64
)

const calibrationIters = 1 << 22

//go:noinline
func spin(n int) int {
	acc := 0
	for i := 0; i < n; i++ {
		acc += i
	}
	return acc
}

func calibrate() {
	start := time.Now()
	_ = spin(calibrationIters)
	elapsed := time.Since(start).Seconds()
	if elapsed <= 0 {
		clockHz = 1e9 // Fall back to a 1 GHz nominal rate.
		return
	}
	clockHz = calibrationIters / elapsed
}

// ClockHz returns the calibrated clock rate estimate in Hz.
func ClockHz() float64 {
	calibrateOnce.Do(calibrate)
	return clockHz
}

// cyclesFor converts a wall-clock duration to an estimated cycle count.
func cyclesFor(d time.Duration) uint64 {
	return uint64(d.Seconds() * ClockHz())
}
