// Package main provides the Drape array framework CLI, a performance
// analysis tool for delayed-array pipelines.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/drape-ml/drape/array"
	"github.com/drape-ml/drape/bench"
)

const version = "v0.1.0-dev"

var (
	configPath = flag.String("config", "", "YAML benchmark suite config (optional)")
	verbose    = flag.Bool("verbose", false, "Verbose output")
)

func main() {
	flag.Parse()

	if flag.Arg(0) == "version" {
		fmt.Printf("Drape Array Framework %s\n", version)
		return
	}

	suite := bench.DefaultSuite()
	if *configPath != "" {
		var err error
		suite, err = bench.LoadSuite(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "drape: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Drape Delayed Array Performance\n")
	fmt.Printf("===============================\n")
	fmt.Printf("Go Version: %s\n", runtime.Version())
	fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("CPUs: %d\n", runtime.NumCPU())
	fmt.Printf("Iterations: %d (+%d warmup)\n", suite.Iterations, suite.Warmup)
	if *verbose {
		fmt.Printf("Estimated clock: %.2f GHz\n", bench.ClockHz()/1e9)
	}
	fmt.Printf("\n")

	if err := runSuite(suite); err != nil {
		fmt.Fprintf(os.Stderr, "drape: %v\n", err)
		os.Exit(1)
	}
}

func runSuite(suite bench.SuiteConfig) error {
	for _, size := range suite.Sizes {
		fmt.Printf("Size %d elements\n", size)
		fmt.Printf("----------------------------\n")
		for _, c := range pipelineCases(size) {
			if !suite.WantsCase(c.Name) {
				continue
			}
			res, err := bench.Run(c, suite.Options())
			if err != nil {
				return err
			}
			report(res)
		}
		fmt.Printf("\n")
	}
	return nil
}

// pipelineCases builds the benchmarkable delayed-array pipelines for one
// element count. Each case materializes its pipeline once per run.
func pipelineCases(n int) []bench.Case {
	ramp := func() *array.Delayed[float64] {
		return array.FromLinearFunc(array.Shape{n}, nil, func(i int) (float64, error) {
			return float64(i), nil
		})
	}

	return []bench.Case{
		{
			Name:     "force",
			Elements: n,
			Run: func() error {
				_, err := array.Force[float64](ramp())
				return err
			},
		},
		{
			Name:     "map",
			Elements: n,
			Run: func() error {
				scaled := array.Map[float64, float64](ramp(), func(v float64) (float64, error) {
					return v*0.5 + 1, nil
				})
				_, err := array.Force[float64](scaled)
				return err
			},
		},
		{
			Name:     "zip",
			Elements: n,
			Run: func() error {
				sum := array.Zip2(func(a, b float64) (float64, error) {
					return a + b, nil
				}, ramp(), ramp())
				_, err := array.Force[float64](sum)
				return err
			},
		},
		{
			Name:     "zip-reshape",
			Elements: n / 2,
			Run: func() error {
				short := array.FromLinearFunc(array.Shape{n / 2}, nil, func(i int) (float64, error) {
					return float64(i) * 3, nil
				})
				sum := array.Zip2(func(a, b float64) (float64, error) {
					return a + b, nil
				}, ramp(), short)
				_, err := array.Force[float64](sum)
				return err
			},
		},
		{
			Name:     "lanes",
			Elements: n,
			Run: func() error {
				const width = 4
				vecs := array.FromLinearFunc(array.Shape{n / width}, nil, func(i int) (array.Vec[float64], error) {
					return array.GenerateVec(width, func(lane int) float64 {
						return float64(i*width + lane)
					}), nil
				})
				for _, lane := range array.Lanes[float64](vecs, width) {
					if _, err := array.Force[float64](lane); err != nil {
						return err
					}
				}
				return nil
			},
		},
	}
}

func report(res bench.Result) {
	st := res.Stats()
	fmt.Printf("%-14s mean %-12v min %-12v (%.2f Mops/s)\n",
		res.Name, st.Mean, st.Min, res.ElementsPerSecond()/1e6)
	if *verbose {
		fmt.Printf("               median %v  max %v  stddev %v  ~%d cycles/run\n",
			st.Median, st.Max, st.StdDev, res.Samples[len(res.Samples)-1].Cycles)
	}
}
