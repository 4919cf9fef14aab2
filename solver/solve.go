package solver

import (
	"context"
	"errors"
	"time"

	"github.com/katalvlaran/nonogram/grid"
	"github.com/katalvlaran/nonogram/layout"
)

// env bundles the pieces of solve state that are shared read-only (or
// synchronized) across the whole recursion tree, so solveState and its
// helpers don't have to thread four separate parameters through every
// call.
type env struct {
	opts Options
	c    *counters
	// sem bounds how many propagate passes may run concurrently across
	// the entire search, mirroring a bounded worker pool: nil unless
	// opts.Parallel, sized to opts.MaxWorkers otherwise. It is held only
	// around a state's own propagate call (see solveState), never across
	// a recursive call that may block waiting on child goroutines, so a
	// held permit never participates in a wait.
	sem chan struct{}
}

// Solve finds a grid consistent with every row's and column's declared
// chains. cols[x] and rows[y] are that column's and row's chain lists
// in order; len(cols) is the grid width, len(rows) its height.
//
// Solve always returns a non-nil Result. Result.Solved is false either
// because the puzzle has no solution (Result.Cancelled is also false)
// or because opts.Ctx was canceled first (Result.Cancelled is true).
func Solve(cols, rows [][]grid.Chain, opts ...Options) (*Result, error) {
	o := DefaultOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	o = o.normalize()

	start := time.Now()
	e := &env{opts: o, c: &counters{}}
	if o.Parallel {
		e.sem = make(chan struct{}, o.MaxWorkers)
	}

	s, err := newState(cols, rows)
	if err != nil {
		stats := e.c.snapshot()
		if errors.Is(err, layout.ErrInvalidInput) {
			// Well-formed chains that simply can't fit their line: the
			// puzzle is unsolvable, not malformed.
			return &Result{Stats: stats}, nil
		}
		return &Result{Stats: stats}, err
	}

	solved, err := solveState(o.Ctx, s, e)
	stats := e.c.snapshot()
	stats.Duration = time.Since(start)

	if err == nil {
		return &Result{Grid: solved.grid, Solved: true, Stats: stats}, nil
	}
	if o.Ctx.Err() != nil {
		return &Result{Cancelled: true, Stats: stats}, nil
	}
	if isInfeasible(err) {
		return &Result{Stats: stats}, nil
	}
	return &Result{Stats: stats}, err
}

// solveState runs propagation to a fixed point, then either returns a
// complete state or recurses through the brancher. It never mutates
// the state it was handed except along the winning path: a losing
// branch attempt mutates only its own clone, which is discarded.
func solveState(ctx context.Context, s *state, e *env) (*state, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	onStep := e.opts.OnStep
	if onStep != nil && !e.opts.Verbose {
		onStep = nil // propagate events are noisy; only forward them when Verbose
	}
	if e.sem != nil {
		e.sem <- struct{}{}
	}
	err := s.propagate(ctx, e.c, onStep)
	if e.sem != nil {
		<-e.sem
	}
	if err != nil {
		return nil, err
	}
	if s.grid.Complete() {
		return s, nil
	}

	target, err := pickBranchTarget(s)
	if err != nil {
		return nil, err
	}
	e.c.addBranches(1)
	// Exactly one cell is ultimately decided by this branch point,
	// however many attempts (Box, then a Space fallback) it takes to
	// land on it, so the forced-by-branching count is taken once here
	// rather than once per attempt.
	e.c.addForcedGuess(1)
	if e.opts.OnStep != nil {
		e.opts.OnStep(Event{Kind: "branch", Axis: axisName(target.axis), Index: target.lineIndex})
	}

	if e.opts.Parallel {
		return solveParallel(ctx, s, target, e)
	}
	return solveSequential(ctx, s, target, e)
}

// solveSequential tries Box on a fork first (the deterministic,
// reproducible order this package documents), falling back to Space
// on the original state only when the Box fork proves infeasible.
func solveSequential(ctx context.Context, s *state, target branchTarget, e *env) (*state, error) {
	fork := s.clone()
	if err := target.apply(fork, grid.Box(target.color)); err != nil {
		return nil, err
	}
	solved, err := solveState(ctx, fork, e)
	if err == nil {
		return solved, nil
	}
	if !isInfeasible(err) {
		return nil, err
	}

	if e.opts.OnStep != nil {
		e.opts.OnStep(Event{Kind: "backtrack", Axis: axisName(target.axis), Index: target.lineIndex})
	}
	if err := target.apply(s, grid.Space); err != nil {
		return nil, err
	}
	return solveState(ctx, s, e)
}

// solveParallel forks both alternatives up front and races them: first
// success wins and cancels the loser's context. Neither fork is the
// original state, so both branches run with no shared mutable memory.
// Each fork's own propagate pass acquires env.sem inside solveState,
// strictly around that CPU-bound work; a spawned goroutine never holds
// a permit while blocked here waiting on its own children's results, so
// nested branching cannot deadlock regardless of MaxWorkers.
func solveParallel(ctx context.Context, s *state, target branchTarget, e *env) (*state, error) {
	cctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type outcome struct {
		state *state
		err   error
	}
	results := make(chan outcome, 2)

	spawn := func(cell grid.Cell) {
		fork := s.clone()
		if err := target.apply(fork, cell); err != nil {
			results <- outcome{nil, err}
			return
		}
		solved, err := solveState(cctx, fork, e)
		results <- outcome{solved, err}
	}

	go spawn(grid.Box(target.color))
	go spawn(grid.Space)

	var fallback error
	for i := 0; i < 2; i++ {
		r := <-results
		if r.err == nil {
			cancel()
			return r.state, nil
		}
		if fallback == nil || !isInfeasible(fallback) {
			fallback = r.err
		}
	}
	return nil, fallback
}
