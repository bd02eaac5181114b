// Package genetic - point mutation.
//
// For every offspring route independently: draw r ∈ [0,99]; when
// r ≤ MutationRatePercent draw two positions i, j ∈ [0, Count) and swap them.
// The positions may coincide, in which case the route is unchanged.
//
// Draws come from a per-route stream (see rng.go), so a route's outcome
// depends only on the engine seed, the Mutate call ordinal and the route
// position. Sequential and parallel execution produce identical buffers.
package genetic

import "github.com/katalvlaran/gatsp/cities"

// mutationDraws is the size of the [0,99] threshold draw.
const mutationDraws = 100

// Mutate perturbs offspring in place. Fitness values become stale.
//
// Errors: ErrOffspringSize when len(offspring) != Options.TopFraction,
// ErrEngineClosed.
//
// Complexity: O(len(offspring)).
func (e *Engine) Mutate(offspring []Route) error {
	if err := e.acquire(); err != nil {
		return err
	}
	defer e.mu.RUnlock()

	if err := expectLen(ErrOffspringSize, len(offspring), e.opts.TopFraction); err != nil {
		return err
	}

	// Each call gets a fresh family of streams.
	callSeed := deriveSeed(normalizeSeed(e.opts.Seed), e.mutateCalls.Add(1))

	if !e.opts.ParallelMutation {
		e.mutateSpan(offspring, callSeed, 0, len(offspring))
		return nil
	}
	e.forEachChunk(len(offspring), func(lo, hi int) {
		e.mutateSpan(offspring, callSeed, lo, hi)
	})

	return nil
}

// mutateSpan mutates offspring[lo:hi] with a lane-local generator.
func (e *Engine) mutateSpan(offspring []Route, callSeed uint64, lo, hi int) {
	var (
		lane = newLaneRNG()
		hook = e.opts.OnMutate
		rate = e.opts.MutationRatePercent
		idx  int
		i, j int
	)
	for idx = lo; idx < hi; idx++ {
		lane.reset(callSeed, idx)
		if lane.rng.IntN(mutationDraws) > rate {
			continue
		}
		i = lane.rng.IntN(cities.Count)
		j = lane.rng.IntN(cities.Count)
		swapSymbols(&offspring[idx], i, j)
		if hook != nil {
			hook(idx, i, j)
		}
	}
}

// swapSymbols exchanges the symbols at positions i and j.
func swapSymbols(r *Route, i, j int) {
	r.Symbols[i], r.Symbols[j] = r.Symbols[j], r.Symbols[i]
}
