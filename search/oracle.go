package search

import "mazebench/core"

// Evaluate judges a candidate path against a fresh breadth-first run over
// the same grid. Completeness is yes iff the candidate and the ground
// truth agree on whether a solution exists at all. Optimality stays
// Unknown whenever either side found nothing; otherwise it is yes iff the
// candidate's cost matches the minimum. Every call costs one extra
// breadth-first pass, so callers should treat it as optional
// instrumentation rather than a hot-path dependency.
func Evaluate(g Grid, candidate core.Path) (completeness, optimal Verdict) {
	truth := BreadthFirst(g)

	completeness = VerdictOf(candidate.IsEmpty() == truth.IsEmpty())
	if candidate.IsEmpty() || truth.IsEmpty() {
		return completeness, Unknown
	}
	return completeness, VerdictOf(candidate.Cost() == truth.Cost())
}
