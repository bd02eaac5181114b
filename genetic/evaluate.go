// Package genetic - fitness evaluation and ranking.
//
// Fitness is the length of the open path that leaves the depot at (0,0),
// visits the cities in route order and stops at the last one. Lower is better.
//
// Evaluate has two phases:
//  1. Score: every route is scored independently on the pool (one chunk of
//     routes per task). Lanes write only their own Fitness fields.
//  2. Rank: after a barrier, the whole buffer is stably sorted ascending.
//
// Complexity: O(n·Count) scoring spread across workers + O(n log n) sort.
package genetic

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/gatsp/cities"
)

// roundScale controls fitness stabilization precision (1e-9).
const roundScale = 1e9

// Evaluate recomputes the fitness of every route and reorders population in
// ascending fitness order. Equal-fitness routes keep their relative order.
// Positions held by the caller are invalidated.
//
// If any route is malformed the call fails, the population is left unsorted
// and the fitness of the other routes may already be updated.
//
// Errors: ErrPopulationSize, ErrMalformedRoute (wrapping the cities
// sentinel and the route position), ErrEngineClosed.
func (e *Engine) Evaluate(population []Route) error {
	if err := e.acquire(); err != nil {
		return err
	}
	defer e.mu.RUnlock()

	if err := expectLen(ErrPopulationSize, len(population), e.opts.PopulationSize); err != nil {
		return err
	}

	// One error slot per chunk keeps lanes free of shared writes.
	errs := make([]error, e.chunkCount(len(population)))
	e.forEachChunk(len(population), func(lo, hi int) {
		var (
			i   int
			f   float64
			err error
		)
		for i = lo; i < hi; i++ {
			f, err = FitnessOf(&population[i], e.distances, e.alphabet)
			if err != nil {
				errs[lo/e.opts.ChunkSize] = fmt.Errorf("%w: route %d: %w", ErrMalformedRoute, i, err)
				return
			}
			population[i].Fitness = f
		}
	})
	if err := errors.Join(errs...); err != nil {
		return err
	}

	slices.SortStableFunc(population, func(a, b Route) int {
		return cmp.Compare(a.Fitness, b.Fitness)
	})

	return nil
}

// FitnessOf computes the origin-prefixed path length of route. It is pure:
// the same route and distance table always give the same value. The route
// must be a permutation of the alphabet.
//
// Errors: cities.ErrInvalidSymbol, cities.ErrDuplicateSymbol.
//
// Complexity: O(Count).
func FitnessOf(route *Route, d *cities.Distances, a *cities.Alphabet) (float64, error) {
	var (
		sum  float64
		seen cities.Set
		prev = -1
		pos  int
		idx  int
	)
	for pos = 0; pos < cities.Count; pos++ {
		idx = a.Index(route.Symbols[pos])
		if idx < 0 {
			return 0, fmt.Errorf("%w: %q at position %d", cities.ErrInvalidSymbol, route.Symbols[pos], pos)
		}
		if seen.Has(idx) {
			return 0, fmt.Errorf("%w: %q at position %d", cities.ErrDuplicateSymbol, route.Symbols[pos], pos)
		}
		seen = seen.With(idx)

		if prev < 0 {
			sum += d.FromOrigin(idx)
		} else {
			sum += d.Between(prev, idx)
		}
		prev = idx
	}

	return round1e9(sum), nil
}

// round1e9 returns x rounded to 1e-9 absolute precision, keeping fitness
// values stable across platforms and optimization levels.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
