// Package bench runs batches of instrumented maze searches, fanning the
// configured algorithm/heuristic pairings out over one or more mazes and
// collecting their metrics in declaration order.
package bench

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"mazebench/heuristic"
	"mazebench/search"
)

// RunSpec names one algorithm/heuristic pairing to execute. The heuristic
// is only meaningful for the informed strategies and defaults to Manhattan
// when left empty.
type RunSpec struct {
	Algorithm string `yaml:"algorithm"`
	Heuristic string `yaml:"heuristic,omitempty"`
}

// Config describes a benchmark suite.
type Config struct {
	Mazes       []string  `yaml:"mazes"`
	Runs        []RunSpec `yaml:"runs"`
	Oracle      bool      `yaml:"oracle"`
	Concurrency int       `yaml:"concurrency"`
	OutputDir   string    `yaml:"output_dir"`
}

// DefaultRuns returns the canonical six-row experiment: both uninformed
// strategies, then A* and Greedy under Manhattan and Euclidean distance.
func DefaultRuns() []RunSpec {
	return []RunSpec{
		{Algorithm: search.AlgorithmBFS},
		{Algorithm: search.AlgorithmDFS},
		{Algorithm: search.AlgorithmAStar, Heuristic: "manhattan"},
		{Algorithm: search.AlgorithmAStar, Heuristic: "euclidean"},
		{Algorithm: search.AlgorithmGreedy, Heuristic: "manhattan"},
		{Algorithm: search.AlgorithmGreedy, Heuristic: "euclidean"},
	}
}

// DefaultConfig returns a suite that runs the canonical experiment with
// the oracle enabled. No mazes are preset.
func DefaultConfig() Config {
	return Config{
		Runs:        DefaultRuns(),
		Oracle:      true,
		Concurrency: 4,
	}
}

// LoadConfig reads a YAML suite description, layering it over
// DefaultConfig so omitted fields keep their defaults. An empty path
// returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports whether the pairing is runnable.
func (r RunSpec) Validate() error {
	switch r.Algorithm {
	case search.AlgorithmBFS, search.AlgorithmDFS:
		if r.Heuristic != "" {
			return fmt.Errorf("%s does not take a heuristic", r.Algorithm)
		}
	case search.AlgorithmAStar, search.AlgorithmGreedy:
		if _, ok := heuristic.ByName(r.Heuristic); !ok {
			return fmt.Errorf("unknown heuristic %q", r.Heuristic)
		}
	default:
		return fmt.Errorf("unknown algorithm %q", r.Algorithm)
	}
	return nil
}

// Validate reports the first problem with the suite description.
func (c Config) Validate() error {
	if len(c.Runs) == 0 {
		return errors.New("no runs configured")
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be positive, got %d", c.Concurrency)
	}
	for i, run := range c.Runs {
		if err := run.Validate(); err != nil {
			return fmt.Errorf("run %d: %w", i, err)
		}
	}
	return nil
}
