package search

import (
	"time"

	"mazebench/core"
)

// Verdict is a three-state answer used for the completeness and optimality
// judgements: unknown until the oracle has run, then yes or no.
type Verdict int

const (
	Unknown Verdict = iota
	No
	Yes
)

// String renders the verdict the way reports print it.
func (v Verdict) String() string {
	switch v {
	case Yes:
		return "yes"
	case No:
		return "no"
	default:
		return "-"
	}
}

// VerdictOf converts a boolean judgement into a Verdict.
func VerdictOf(ok bool) Verdict {
	if ok {
		return Yes
	}
	return No
}

// SearchMetrics is the immutable record produced once per instrumented run.
type SearchMetrics struct {
	Algorithm     string
	Elapsed       time.Duration
	Expanded      int // positions popped and expanded
	Generated     int // positions discovered and inserted into the frontier
	MaxFrontier   int // open set size peak
	MaxExplored   int // visited/closed set size peak
	MaxStructures int // MaxFrontier + MaxExplored
	Found         bool
	Completeness  Verdict
	Optimality    Verdict
	PathCost      int
	PathLength    int
}

// collector receives algorithm events. Strategies call it unconditionally;
// the no-op implementation keeps uninstrumented runs free of counter work,
// selected once per call rather than flag-checked inside the loop.
type collector interface {
	expand()
	generate()
	observeFrontier(size int)
	observeExplored(size int)
}

// nopCollector ignores every event.
type nopCollector struct{}

func (nopCollector) expand()             {}
func (nopCollector) generate()           {}
func (nopCollector) observeFrontier(int) {}
func (nopCollector) observeExplored(int) {}

// metricsCollector accumulates counters and structure-size peaks for one
// run. Baselines differ per strategy: BFS and DFS seed both the frontier
// and the visited set with the start position, while A* and greedy begin
// with an empty closed set.
type metricsCollector struct {
	expanded    int
	generated   int
	maxFrontier int
	maxExplored int
}

func newMetricsCollector(frontierBase, exploredBase int) *metricsCollector {
	return &metricsCollector{maxFrontier: frontierBase, maxExplored: exploredBase}
}

func (c *metricsCollector) expand()   { c.expanded++ }
func (c *metricsCollector) generate() { c.generated++ }

func (c *metricsCollector) observeFrontier(size int) {
	if size > c.maxFrontier {
		c.maxFrontier = size
	}
}

func (c *metricsCollector) observeExplored(size int) {
	if size > c.maxExplored {
		c.maxExplored = size
	}
}

// finalize produces the metrics record. Elapsed is measured by the caller
// around the algorithm body alone, so the oracle's extra breadth-first run
// never inflates the reported duration.
func (c *metricsCollector) finalize(algorithm string, elapsed time.Duration, g Grid, path core.Path, withOracle bool) SearchMetrics {
	m := SearchMetrics{
		Algorithm:     algorithm,
		Elapsed:       elapsed,
		Expanded:      c.expanded,
		Generated:     c.generated,
		MaxFrontier:   c.maxFrontier,
		MaxExplored:   c.maxExplored,
		MaxStructures: c.maxFrontier + c.maxExplored,
		Found:         !path.IsEmpty(),
		Completeness:  Unknown,
		Optimality:    Unknown,
		PathCost:      path.Cost(),
		PathLength:    path.Length(),
	}
	if withOracle {
		m.Completeness, m.Optimality = Evaluate(g, path)
	}
	return m
}

// Option configures an instrumented run.
type Option func(*runConfig)

type runConfig struct {
	oracle bool
}

// WithOracle requests the completeness/optimality evaluation. Without it
// both verdicts stay Unknown.
func WithOracle() Option {
	return func(cfg *runConfig) { cfg.oracle = true }
}

func newRunConfig(opts []Option) runConfig {
	var cfg runConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
