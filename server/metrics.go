package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// solveTotal counts solve requests by algorithm and outcome.
	solveTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mazebench_solve_total",
		Help: "Solve requests by algorithm and whether a path was found",
	}, []string{"algorithm", "found"})

	// solveDuration tracks search time per solve, excluding parsing and
	// rendering.
	solveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mazebench_solve_duration_seconds",
		Help:    "Search duration per solve in seconds",
		Buckets: prometheus.ExponentialBuckets(0.000001, 4, 10),
	}, []string{"algorithm"})
)
