// Copyright 2025 Drape Array Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package bench provides the public API for the Drape benchmarking harness.
//
// The harness samples wall-clock time (plus a coarse calibrated cycle
// estimate) over repeated runs of an action and reports summary statistics
// and element throughput. It is a thin utility: the action under test is an
// opaque func() error, typically a delayed-array materialization.
//
// Example:
//
//	res, err := bench.Run(bench.Case{
//	    Name:     "force/map",
//	    Elements: extent.NumElements(),
//	    Run:      func() error { _, err := array.Force[int](pipeline); return err },
//	}, bench.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Stats().Mean, res.ElementsPerSecond())
package bench

import (
	"github.com/drape-ml/drape/internal/bench"
)

// Type aliases for public API

// Case is one benchmarkable action.
type Case = bench.Case

// Options controls sampling.
type Options = bench.Options

// Sample is one recorded run.
type Sample = bench.Sample

// Result holds all samples for one case.
type Result = bench.Result

// Stats summarizes a result's wall-clock samples.
type Stats = bench.Stats

// SuiteConfig describes a benchmark suite loaded from YAML.
type SuiteConfig = bench.SuiteConfig

// DefaultOptions returns sampling defaults suitable for sub-second cases.
func DefaultOptions() Options {
	return bench.DefaultOptions()
}

// Run executes a case and records one sample per iteration.
func Run(c Case, opt Options) (Result, error) {
	return bench.Run(c, opt)
}

// ClockHz returns the calibrated clock rate estimate used for cycle counts.
func ClockHz() float64 {
	return bench.ClockHz()
}

// DefaultSuite returns the suite used when no config file is given.
func DefaultSuite() SuiteConfig {
	return bench.DefaultSuite()
}

// LoadSuite reads a YAML suite config from path.
func LoadSuite(path string) (SuiteConfig, error) {
	return bench.LoadSuite(path)
}
