package solver

import (
	"context"
	"runtime"
)

// Event is passed to Options.OnStep for step-by-step observability; it
// never carries enough information to mutate solver state, matching
// this codebase's hook-callback convention elsewhere (no hidden I/O,
// read-only notification).
type Event struct {
	// Kind is one of "propagate", "branch", "backtrack".
	Kind string
	// Axis is "row" or "col".
	Axis string
	// Index is the line index the event concerns.
	Index int
}

// Options configures Solve.
type Options struct {
	// Ctx bounds solve time; checked at the top of the driver's outer
	// loop and before every branch. A nil Ctx behaves as
	// context.Background().
	Ctx context.Context

	// Verbose requests that OnStep, if set, also receive propagate
	// events (not just branch/backtrack events).
	Verbose bool

	// Parallel evaluates a branch's two alternatives (Box then Space)
	// concurrently, first success wins, instead of the deterministic
	// sequential Box-first policy.
	Parallel bool

	// MaxWorkers bounds concurrent branch evaluation. Zero means
	// runtime.NumCPU(). Unused when Parallel is false.
	MaxWorkers int

	// OnStep, if non-nil, is invoked synchronously for each branch and
	// backtrack decision, and also for each propagation step when
	// Verbose is set. It must not retain the Event.
	OnStep func(Event)
}

// DefaultOptions returns production-safe defaults: background context,
// sequential deterministic solving, no step callback.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		MaxWorkers: runtime.NumCPU(),
	}
}

func (o Options) normalize() Options {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.MaxWorkers <= 0 {
		o.MaxWorkers = runtime.NumCPU()
	}
	return o
}
