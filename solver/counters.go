package solver

import "sync/atomic"

// counters accumulates Stats fields across however many goroutines a
// parallel solve spawns. Plain ints would race under opts.Parallel;
// every increment here goes through atomic so the sequential path
// pays the (negligible) cost of an atomic add rather than needing two
// code paths.
type counters struct {
	iterations int64
	branches   int64
	forcedProp int64
	forcedGuess int64
}

func (c *counters) addIterations(n int)  { atomic.AddInt64(&c.iterations, int64(n)) }
func (c *counters) addBranches(n int)    { atomic.AddInt64(&c.branches, int64(n)) }
func (c *counters) addForcedProp(n int)  { atomic.AddInt64(&c.forcedProp, int64(n)) }
func (c *counters) addForcedGuess(n int) { atomic.AddInt64(&c.forcedGuess, int64(n)) }

func (c *counters) snapshot() Stats {
	return Stats{
		Iterations:          int(atomic.LoadInt64(&c.iterations)),
		Branches:            int(atomic.LoadInt64(&c.branches)),
		ForcedByPropagation: int(atomic.LoadInt64(&c.forcedProp)),
		ForcedByBranching:   int(atomic.LoadInt64(&c.forcedGuess)),
	}
}
