package bench

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// SuiteConfig describes a benchmark suite: which pipeline cases to run, at
// which element counts, and how to sample them.
type SuiteConfig struct {
	Warmup     int      `yaml:"warmup"`
	Iterations int      `yaml:"iterations"`
	Sizes      []int    `yaml:"sizes"`
	Cases      []string `yaml:"cases"` // Empty means all registered cases.
}

// DefaultSuite returns the suite used when no config file is given.
func DefaultSuite() SuiteConfig {
	return SuiteConfig{
		Warmup:     3,
		Iterations: 30,
		Sizes:      []int{1 << 10, 1 << 14, 1 << 18},
	}
}

// LoadSuite reads a YAML suite config from path. Missing fields keep the
// DefaultSuite values.
func LoadSuite(path string) (SuiteConfig, error) {
	cfg := DefaultSuite()

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading suite config %s", path)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing suite config %s", path)
	}

	if cfg.Iterations <= 0 {
		return cfg, errors.Errorf("suite config %s: iterations must be positive, got %d", path, cfg.Iterations)
	}
	if cfg.Warmup < 0 {
		return cfg, errors.Errorf("suite config %s: warmup must be non-negative, got %d", path, cfg.Warmup)
	}
	for _, n := range cfg.Sizes {
		if n <= 0 {
			return cfg, errors.Errorf("suite config %s: sizes must be positive, got %d", path, n)
		}
	}
	return cfg, nil
}

// Options returns the sampling options the suite prescribes.
func (c SuiteConfig) Options() Options {
	return Options{Warmup: c.Warmup, Iterations: c.Iterations}
}

// WantsCase reports whether the suite selects the named case.
func (c SuiteConfig) WantsCase(name string) bool {
	if len(c.Cases) == 0 {
		return true
	}
	for _, want := range c.Cases {
		if want == name {
			return true
		}
	}
	return false
}
