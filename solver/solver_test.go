package solver_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nonogram/grid"
	"github.com/katalvlaran/nonogram/solver"
)

const red = grid.Color(0)

func mono(lengths ...int) []grid.Chain {
	chains := make([]grid.Chain, len(lengths))
	for i, n := range lengths {
		chains[i] = grid.Chain{Color: red, Length: n}
	}
	return chains
}

func requireRunsMatch(t *testing.T, g *grid.Grid, axis grid.Axis, index int, want []grid.Chain) {
	t.Helper()
	got := g.Runs(axis, index)
	if len(want) == 0 {
		require.Empty(t, got)
		return
	}
	require.Equal(t, want, got)
}

// A 3x3 cross pattern whose lines are packed tightly enough that
// propagation alone solves it without any branching.
func TestSolve_BasicMonochrome(t *testing.T) {
	cols := [][]grid.Chain{mono(1), mono(3), mono(1)}
	rows := [][]grid.Chain{mono(1), mono(3), mono(1)}

	res, err := solver.Solve(cols, rows)
	require.NoError(t, err)
	require.True(t, res.Solved)
	require.False(t, res.Cancelled)
	require.True(t, res.Grid.Complete())

	for y, want := range rows {
		requireRunsMatch(t, res.Grid, grid.Row, y, want)
	}
	for x, want := range cols {
		requireRunsMatch(t, res.Grid, grid.Col, x, want)
	}
}

// A puzzle using two distinct colors.
func TestSolve_ColoredPuzzle(t *testing.T) {
	const blue = grid.Color(1)
	cols := [][]grid.Chain{
		{{Color: red, Length: 1}},
		{{Color: blue, Length: 1}},
	}
	rows := [][]grid.Chain{
		{{Color: red, Length: 1}, {Color: blue, Length: 1}},
	}

	res, err := solver.Solve(cols, rows)
	require.NoError(t, err)
	require.True(t, res.Solved)

	require.Equal(t, grid.Box(red), res.Grid.At(0, 0))
	require.Equal(t, grid.Box(blue), res.Grid.At(1, 0))
}

// A 4x4 board where every line reads a lone "1": propagation cannot
// narrow any chain's range at all, so the solution is only reached by
// branching and backtracking on the grid's permutation-matrix shape.
func TestSolve_RequiresBranching(t *testing.T) {
	cols := [][]grid.Chain{mono(1), mono(1), mono(1), mono(1)}
	rows := [][]grid.Chain{mono(1), mono(1), mono(1), mono(1)}

	res, err := solver.Solve(cols, rows)
	require.NoError(t, err)
	require.True(t, res.Solved)
	require.True(t, res.Grid.Complete())

	for y := 0; y < 4; y++ {
		require.Len(t, res.Grid.Runs(grid.Row, y), 1)
	}
	for x := 0; x < 4; x++ {
		require.Len(t, res.Grid.Runs(grid.Col, x), 1)
	}
}

// An unsolvable puzzle: the column's chain is individually well-formed
// but cannot fit its line given what the rows demand. This is detected
// at construction, yet must still come back as an ordinary
// Result{Solved:false}, not an error — see TestSolve_InvalidInputRejected
// for the case that is genuinely malformed input.
func TestSolve_Unsolvable(t *testing.T) {
	cols := [][]grid.Chain{mono(3)}
	rows := [][]grid.Chain{mono(1), mono(1)}

	res, err := solver.Solve(cols, rows)
	require.NoError(t, err)
	require.False(t, res.Solved)
	require.False(t, res.Cancelled)
	require.Nil(t, res.Grid)
}

// A chain declared with length 0 is malformed input, unlike a
// well-formed chain that simply doesn't fit its line (see
// TestSolve_Unsolvable): it must surface as an error, not a Result.
func TestSolve_InvalidInputRejected(t *testing.T) {
	cols := [][]grid.Chain{{{Color: red, Length: 0}}}
	rows := [][]grid.Chain{mono(1)}

	_, err := solver.Solve(cols, rows)
	require.Error(t, err)
	require.ErrorIs(t, err, solver.ErrInvalidInput)
	require.ErrorIs(t, err, grid.ErrInvalidChain)
}

func TestSolve_CancellationSurfacesAsCancelledResult(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cols := [][]grid.Chain{mono(1), mono(1), mono(1), mono(1)}
	rows := [][]grid.Chain{mono(1), mono(1), mono(1), mono(1)}

	res, err := solver.Solve(cols, rows, solver.Options{Ctx: ctx})
	require.NoError(t, err)
	require.True(t, res.Cancelled)
	require.False(t, res.Solved)
}

func TestSolve_ParallelMatchesSequentialResult(t *testing.T) {
	cols := [][]grid.Chain{mono(1), mono(3), mono(1)}
	rows := [][]grid.Chain{mono(1), mono(3), mono(1)}

	seq, err := solver.Solve(cols, rows)
	require.NoError(t, err)

	par, err := solver.Solve(cols, rows, solver.Options{Parallel: true, MaxWorkers: 4})
	require.NoError(t, err)

	require.True(t, par.Solved)
	require.Equal(t, seq.Grid, par.Grid)
}

func TestSolve_StatsPopulated(t *testing.T) {
	cols := [][]grid.Chain{mono(1), mono(1), mono(1), mono(1)}
	rows := [][]grid.Chain{mono(1), mono(1), mono(1), mono(1)}

	res, err := solver.Solve(cols, rows)
	require.NoError(t, err)
	require.Greater(t, res.Stats.Iterations, 0)
	require.GreaterOrEqual(t, res.Stats.Duration, time.Duration(0))
}

// A puzzle that forces nested branching, solved in parallel mode with
// a worker pool too small to run every branch at once. A semaphore
// held across a recursive call that blocks on its own children's
// results would deadlock here; this guards against that regressing.
func TestSolve_ParallelWithSingleWorkerDoesNotDeadlock(t *testing.T) {
	cols := [][]grid.Chain{mono(1), mono(1), mono(1), mono(1)}
	rows := [][]grid.Chain{mono(1), mono(1), mono(1), mono(1)}

	done := make(chan *solver.Result, 1)
	go func() {
		res, err := solver.Solve(cols, rows, solver.Options{Parallel: true, MaxWorkers: 1})
		require.NoError(t, err)
		done <- res
	}()

	select {
	case res := <-done:
		require.True(t, res.Solved)
	case <-time.After(5 * time.Second):
		t.Fatal("Solve did not return: likely deadlocked on the worker semaphore")
	}
}

func TestSolve_OnStepCallbackFires(t *testing.T) {
	var kinds []string
	opts := solver.Options{
		Verbose: true,
		OnStep:  func(e solver.Event) { kinds = append(kinds, e.Kind) },
	}
	cols := [][]grid.Chain{mono(1), mono(3), mono(1)}
	rows := [][]grid.Chain{mono(1), mono(3), mono(1)}

	_, err := solver.Solve(cols, rows, opts)
	require.NoError(t, err)
	require.NotEmpty(t, kinds)
}
