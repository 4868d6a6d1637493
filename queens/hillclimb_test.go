package queens

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestHillClimb_AlreadySolved(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	res := HillClimb(rng, solvedBoard, DefaultClimbOptions())

	if !res.Success {
		t.Error("Expected success on a solved board")
	}
	if res.Steps != 0 || res.Sideways != 0 {
		t.Errorf("Expected no moves, got %d steps and %d sideways", res.Steps, res.Sideways)
	}
	if res.Conflicts != 0 || res.StartConflicts != 0 {
		t.Errorf("Expected zero conflicts throughout, got start %d final %d", res.StartConflicts, res.Conflicts)
	}
	if !reflect.DeepEqual(res.Board, solvedBoard) {
		t.Errorf("Expected board unchanged, got %v", res.Board)
	}
}

func TestHillClimb_OneMoveFromSolved(t *testing.T) {
	// Queen 7 moved off the solution; the only zero-conflict neighbor puts
	// it back, so the climb is deterministic whatever the rng does.
	board := Board{3, 1, 6, 2, 5, 7, 4, 1}
	if board.Conflicts() != 2 {
		t.Fatalf("Fixture drifted: expected 2 starting conflicts, got %d", board.Conflicts())
	}

	res := HillClimb(rand.New(rand.NewSource(7)), board, DefaultClimbOptions())
	if !res.Success {
		t.Fatalf("Expected success, final board %v with %d conflicts", res.Board, res.Conflicts)
	}
	if res.Steps != 1 {
		t.Errorf("Expected exactly 1 step, got %d", res.Steps)
	}
	if res.StartConflicts != 2 {
		t.Errorf("Expected start conflicts 2, got %d", res.StartConflicts)
	}
	if !reflect.DeepEqual(res.Board, solvedBoard) {
		t.Errorf("Expected %v, got %v", solvedBoard, res.Board)
	}
}

func TestHillClimb_RespectsStepCap(t *testing.T) {
	board := Board{0, 0, 0, 0, 0, 0, 0, 0}
	opts := ClimbOptions{SidewaysLimit: 0, MaxSteps: 0}
	res := HillClimb(rand.New(rand.NewSource(1)), board, opts)

	if res.Success {
		t.Error("Expected failure with no step budget")
	}
	if res.Steps != 0 {
		t.Errorf("Expected 0 steps, got %d", res.Steps)
	}
	if res.Conflicts != board.Conflicts() {
		t.Errorf("Expected conflicts unchanged at %d, got %d", board.Conflicts(), res.Conflicts)
	}
}

func TestHillClimb_NeverWorsens(t *testing.T) {
	opts := DefaultClimbOptions()
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		res := HillClimb(rng, Random(rng, 8), opts)
		if res.Conflicts > res.StartConflicts {
			t.Errorf("Seed %d: conflicts rose from %d to %d", seed, res.StartConflicts, res.Conflicts)
		}
		if res.Sideways > opts.SidewaysLimit {
			t.Errorf("Seed %d: %d sideways moves exceed limit %d", seed, res.Sideways, opts.SidewaysLimit)
		}
		if res.Success != (res.Conflicts == 0) {
			t.Errorf("Seed %d: success flag %v disagrees with %d conflicts", seed, res.Success, res.Conflicts)
		}
	}
}

func TestHillClimb_Deterministic(t *testing.T) {
	board := Random(rand.New(rand.NewSource(3)), 8)

	first := HillClimb(rand.New(rand.NewSource(11)), board, DefaultClimbOptions())
	second := HillClimb(rand.New(rand.NewSource(11)), board, DefaultClimbOptions())

	first.Elapsed, second.Elapsed = 0, 0
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical climbs for identical seeds:\n%+v\n%+v", first, second)
	}
}

func TestRandomRestart_SolvesEightQueens(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	res := RandomRestart(rng, DefaultRestartOptions())

	if !res.Success {
		t.Fatalf("Expected a solution within the restart budget, best had %d conflicts", res.Conflicts)
	}
	if res.Conflicts != 0 {
		t.Errorf("Expected 0 conflicts, got %d", res.Conflicts)
	}
	if got := res.Board.Conflicts(); got != 0 {
		t.Errorf("Expected returned board to verify, got %d conflicts", got)
	}
	if res.Restarts > DefaultRestartOptions().MaxRestarts {
		t.Errorf("Expected restarts within budget, got %d", res.Restarts)
	}

	wantStart := Random(rand.New(rand.NewSource(42)), 8).Conflicts()
	if res.StartConflicts != wantStart {
		t.Errorf("Expected start conflicts %d from the first board, got %d", wantStart, res.StartConflicts)
	}
}

func TestRandomRestart_BudgetExhausted(t *testing.T) {
	// Two queens can never be placed peacefully, so every climb fails and
	// the full budget is spent.
	opts := RestartOptions{Size: 2, MaxRestarts: 3, Climb: DefaultClimbOptions()}
	res := RandomRestart(rand.New(rand.NewSource(5)), opts)

	if res.Success {
		t.Error("Expected failure on an unsolvable size")
	}
	if res.Restarts != 4 {
		t.Errorf("Expected 4 failed climbs, got %d", res.Restarts)
	}
	if res.Conflicts != 1 {
		t.Errorf("Expected best board to keep 1 conflict, got %d", res.Conflicts)
	}
	if len(res.Board) != 2 {
		t.Errorf("Expected a 2-column board, got %v", res.Board)
	}
}
