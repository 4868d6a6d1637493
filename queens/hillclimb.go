package queens

import (
	"math/rand"
	"time"
)

// ClimbOptions bound a single hill climbing run.
type ClimbOptions struct {
	SidewaysLimit int // equal-conflict moves accepted before giving up
	MaxSteps      int // hard cap on accepted moves
}

// DefaultClimbOptions returns the classic budget: 50 sideways moves
// within 1000 steps.
func DefaultClimbOptions() ClimbOptions {
	return ClimbOptions{SidewaysLimit: 50, MaxSteps: 1000}
}

// ClimbResult reports where a climb ended and what it spent getting
// there.
type ClimbResult struct {
	Board          Board
	Success        bool
	Steps          int
	Sideways       int
	StartConflicts int
	Conflicts      int
	Elapsed        time.Duration
}

// HillClimb runs steepest-ascent hill climbing from board. Strictly
// improving moves are always taken; equal-conflict moves are taken while
// the sideways budget lasts; a step to a worse board never happens. Ties
// between equally good moves break uniformly at random with the caller's
// rng, so two runs with equally seeded rngs walk the same boards.
func HillClimb(rng *rand.Rand, board Board, opts ClimbOptions) ClimbResult {
	start := time.Now()
	cur := make(Board, len(board))
	copy(cur, board)
	h := cur.Conflicts()
	startH := h
	steps, sideways := 0, 0

	for iter := 0; iter < opts.MaxSteps; iter++ {
		if h == 0 {
			break
		}
		bestH, moves := bestMoves(cur)
		if len(moves) == 0 {
			break
		}
		if bestH > h || (bestH == h && sideways >= opts.SidewaysLimit) {
			break
		}
		if bestH == h {
			sideways++
		}
		cur = cur.Apply(moves[rng.Intn(len(moves))])
		h = bestH
		steps++
	}

	return ClimbResult{
		Board:          cur,
		Success:        h == 0,
		Steps:          steps,
		Sideways:       sideways,
		StartConflicts: startH,
		Conflicts:      h,
		Elapsed:        time.Since(start),
	}
}

// bestMoves returns the lowest conflict count reachable in one move and
// every move achieving it, in Neighbors order.
func bestMoves(b Board) (int, []Move) {
	bestH := -1
	var best []Move
	for _, mv := range b.Neighbors() {
		h := b.Apply(mv).Conflicts()
		switch {
		case bestH == -1 || h < bestH:
			bestH = h
			best = []Move{mv}
		case h == bestH:
			best = append(best, mv)
		}
	}
	if bestH == -1 {
		bestH = b.Conflicts()
	}
	return bestH, best
}

// RestartOptions bound a random restart search.
type RestartOptions struct {
	Size        int // board size, 8 for the classic puzzle
	MaxRestarts int // restarts allowed after the first climb
	Climb       ClimbOptions
}

// DefaultRestartOptions returns the classic experiment shape: 8 queens,
// up to 100 restarts, default climb budget.
func DefaultRestartOptions() RestartOptions {
	return RestartOptions{Size: 8, MaxRestarts: 100, Climb: DefaultClimbOptions()}
}

// RestartResult aggregates a random restart run.
type RestartResult struct {
	Board          Board
	Success        bool
	Restarts       int // failed climbs before the returned board
	Steps          int // accepted moves summed over every climb
	Sideways       int // sideways moves summed over every climb
	Conflicts      int
	StartConflicts int // conflicts on the very first random board
	Elapsed        time.Duration
}

// RandomRestart repeats hill climbing from fresh random boards until one
// solves or the restart budget runs out. On failure the best board seen
// across every climb comes back.
func RandomRestart(rng *rand.Rand, opts RestartOptions) RestartResult {
	start := time.Now()
	result := RestartResult{Conflicts: -1}

	for attempt := 0; attempt <= opts.MaxRestarts; attempt++ {
		board := Random(rng, opts.Size)
		if attempt == 0 {
			result.StartConflicts = board.Conflicts()
		}
		climb := HillClimb(rng, board, opts.Climb)
		result.Steps += climb.Steps
		result.Sideways += climb.Sideways
		if result.Conflicts == -1 || climb.Conflicts < result.Conflicts {
			result.Conflicts = climb.Conflicts
			result.Board = climb.Board
		}
		if climb.Success {
			result.Success = true
			break
		}
		result.Restarts++
	}

	result.Elapsed = time.Since(start)
	return result
}
