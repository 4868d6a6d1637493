package queens

import (
	"fmt"
	"math/rand"

	"mazebench/report"
)

// SidewaysTrials climbs count fresh random boards of the given size,
// sharing one rng so a fixed seed reproduces the whole series.
func SidewaysTrials(rng *rand.Rand, count, size int, opts ClimbOptions) []ClimbResult {
	results := make([]ClimbResult, count)
	for i := range results {
		results[i] = HillClimb(rng, Random(rng, size), opts)
	}
	return results
}

// RestartTrials runs count random restart searches sharing one rng.
func RestartTrials(rng *rand.Rand, count int, opts RestartOptions) []RestartResult {
	results := make([]RestartResult, count)
	for i := range results {
		results[i] = RandomRestart(rng, opts)
	}
	return results
}

// SidewaysTable renders one row per climb plus an averages row.
func SidewaysTable(results []ClimbResult) string {
	rows := make([]trialRow, len(results))
	for i, r := range results {
		rows[i] = trialRow{
			solved: r.Success,
			ms:     float64(r.Elapsed.Nanoseconds()) / 1e6,
			steps:  r.Steps,
			count:  r.Sideways,
			start:  r.StartConflicts,
			final:  r.Conflicts,
		}
	}
	return trialTable("Sideways", rows)
}

// RestartTable renders one row per search plus an averages row.
func RestartTable(results []RestartResult) string {
	rows := make([]trialRow, len(results))
	for i, r := range results {
		rows[i] = trialRow{
			solved: r.Success,
			ms:     float64(r.Elapsed.Nanoseconds()) / 1e6,
			steps:  r.Steps,
			count:  r.Restarts,
			start:  r.StartConflicts,
			final:  r.Conflicts,
		}
	}
	return trialTable("Restarts", rows)
}

// trialRow is one table line before formatting; count holds whichever of
// sideways or restarts the variant tracks.
type trialRow struct {
	solved       bool
	ms           float64
	steps, count int
	start, final int
}

func trialTable(countHeader string, rows []trialRow) string {
	headers := []string{
		"Trial", "Solved", "Time(ms)", "Steps", countHeader,
		"Start conflicts", "Final conflicts",
	}
	cells := make([][]string, 0, len(rows)+1)

	var ms float64
	var steps, count, start, final, solved int
	for i, r := range rows {
		yn := "no"
		if r.solved {
			yn = "yes"
			solved++
		}
		cells = append(cells, []string{
			fmt.Sprintf("%d", i+1),
			yn,
			fmt.Sprintf("%.3f", r.ms),
			fmt.Sprintf("%d", r.steps),
			fmt.Sprintf("%d", r.count),
			fmt.Sprintf("%d", r.start),
			fmt.Sprintf("%d", r.final),
		})
		ms += r.ms
		steps += r.steps
		count += r.count
		start += r.start
		final += r.final
	}
	if n := float64(len(rows)); n > 0 {
		cells = append(cells, []string{
			"Average",
			fmt.Sprintf("%.1f%%", float64(solved)/n*100),
			fmt.Sprintf("%.3f", ms/n),
			fmt.Sprintf("%.2f", float64(steps)/n),
			fmt.Sprintf("%.2f", float64(count)/n),
			fmt.Sprintf("%.2f", float64(start)/n),
			fmt.Sprintf("%.2f", float64(final)/n),
		})
	}
	return report.Format(headers, cells)
}
