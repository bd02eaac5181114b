// Package genetic - greedy edge-walk recombination.
//
// Parents are consumed in disjoint adjacent pairs: parents[2k] (A) and
// parents[2k+1] (B) produce offspring[2k] (child A) and offspring[2k+1]
// (child B). Pairs are independent and run concurrently; slot placement is
// fixed by k, not by completion order.
//
// Child A walk:
//  1. Seed with A's first city; cursor A starts at 1, cursor B at 0.
//  2. Look at c1 = A[cursorA] and c2 = B[cursorB]:
//     - neither visited: append the one strictly closer to the last city
//     (ties go to c2) and advance only that parent's cursor;
//     - exactly one visited: append the other, advance both cursors;
//     - both visited: advance both cursors, append nothing.
//  3. Stop when all Count cities are placed.
//
// Every city a cursor steps over is visited at that moment, so a cursor can
// only reach the end of its parent once the child is complete. Each iteration
// advances at least one cursor, which bounds the walk by 2·Count iterations.
//
// Child B is the symbol-wise complement of child A. It is not a
// second recombination: it inherits no parent material beyond what the
// complement of child A implies.
package genetic

import (
	"fmt"
	"math"

	"github.com/sourcegraph/conc/pool"

	"github.com/katalvlaran/gatsp/cities"
)

// pairState is the mutable state of one child A walk.
type pairState struct {
	child   [cities.Count]byte
	size    int        // symbols placed so far
	last    int        // index of the last placed city
	visited cities.Set // cities placed so far
	cursorA int        // next unread position in parent A
	cursorB int        // next unread position in parent B
}

// place appends symbol (city idx) to the child.
func (s *pairState) place(symbol byte, idx int) {
	s.child[s.size] = symbol
	s.size++
	s.last = idx
	s.visited = s.visited.With(idx)
}

// Crossover produces len(parents) fresh, unevaluated offspring.
// See CrossoverInto for the contract.
func (e *Engine) Crossover(parents []Route) ([]Route, error) {
	offspring := make([]Route, len(parents))
	if err := e.CrossoverInto(parents, offspring); err != nil {
		return nil, err
	}

	return offspring, nil
}

// CrossoverInto writes the offspring of parents into the driver-owned
// offspring buffer. Offspring fitness is set to NaN until re-evaluated.
//
// Preconditions, checked before any pair is processed:
//   - len(parents) is even (ErrOddParents),
//   - len(parents) == Options.TopFraction (ErrParentCount),
//   - len(offspring) == len(parents) (ErrOffspringSize).
//
// A malformed parent fails the whole call (ErrMalformedRoute); there is no
// partial success, and offspring contents are unspecified on error.
//
// Complexity: O(len(parents)·Count) spread across workers.
func (e *Engine) CrossoverInto(parents, offspring []Route) error {
	if err := e.acquire(); err != nil {
		return err
	}
	defer e.mu.RUnlock()

	if len(parents)%2 != 0 {
		return fmt.Errorf("%w: %d parents", ErrOddParents, len(parents))
	}
	if err := expectLen(ErrParentCount, len(parents), e.opts.TopFraction); err != nil {
		return err
	}
	if err := expectLen(ErrOffspringSize, len(offspring), len(parents)); err != nil {
		return err
	}

	var (
		pairs = len(parents) / 2
		chunk = max(e.opts.ChunkSize/2, 1)
		p     = pool.New().WithErrors().WithMaxGoroutines(e.opts.Workers)
	)
	for lo := 0; lo < pairs; lo += chunk {
		hi := min(lo+chunk, pairs)
		p.Go(func() error {
			var k int
			for k = lo; k < hi; k++ {
				if err := e.breed(&parents[2*k], &parents[2*k+1], &offspring[2*k], &offspring[2*k+1]); err != nil {
					return fmt.Errorf("pair %d: %w", k, err)
				}
			}
			return nil
		})
	}

	return p.Wait()
}

// breed runs the child A walk for one parent pair and derives child B.
func (e *Engine) breed(a, b, childA, childB *Route) error {
	if err := e.alphabet.ValidateRoute(a.Symbols[:]); err != nil {
		return fmt.Errorf("%w: parent A: %w", ErrMalformedRoute, err)
	}
	if err := e.alphabet.ValidateRoute(b.Symbols[:]); err != nil {
		return fmt.Errorf("%w: parent B: %w", ErrMalformedRoute, err)
	}

	var s pairState
	s.place(a.Symbols[0], e.alphabet.Index(a.Symbols[0]))
	s.cursorA = 1

	const maxSteps = 2 * cities.Count
	var (
		c1, c2       byte
		i1, i2       int
		seen1, seen2 bool
		d1, d2       float64
		step         int
	)
	for s.size < cities.Count {
		if s.cursorA >= cities.Count || s.cursorB >= cities.Count || step >= maxSteps {
			return fmt.Errorf("%w: %d cities still unplaced", ErrCursorExhausted, s.visited.Remaining())
		}
		step++

		c1, c2 = a.Symbols[s.cursorA], b.Symbols[s.cursorB]
		i1, i2 = e.alphabet.Index(c1), e.alphabet.Index(c2)
		seen1, seen2 = s.visited.Has(i1), s.visited.Has(i2)

		switch {
		case !seen1 && !seen2:
			d1 = e.distances.Between(s.last, i1)
			d2 = e.distances.Between(s.last, i2)
			if d1 < d2 {
				s.place(c1, i1)
				s.cursorA++
			} else {
				s.place(c2, i2)
				s.cursorB++
			}
		case seen1 && !seen2:
			s.place(c2, i2)
			s.cursorA++
			s.cursorB++
		case !seen1 && seen2:
			s.place(c1, i1)
			s.cursorA++
			s.cursorB++
		default:
			// Both already placed: skip without progress.
			s.cursorA++
			s.cursorB++
		}
	}

	childA.Symbols = s.child
	childA.Fitness = math.NaN()
	complementInto(e.alphabet, &childA.Symbols, &childB.Symbols)
	childB.Fitness = math.NaN()

	return nil
}

// complementInto writes the symbol-wise complement of src into dst.
func complementInto(a *cities.Alphabet, src, dst *[cities.Count]byte) {
	var i int
	for i = 0; i < cities.Count; i++ {
		dst[i] = a.Complement(src[i])
	}
}
