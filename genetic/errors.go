// SPDX-License-Identifier: MIT
// Package genetic: sentinel error set.
// All operations return these sentinels (possibly wrapped with positional
// context via fmt.Errorf("...: %w", ErrX)); callers match with errors.Is.
// Route-level symbol errors come from package cities and are forwarded as-is.

package genetic

import "errors"

var (
	// ErrOptionViolation is returned by NewEngine when an Option carries an
	// invalid value or the combined configuration is inconsistent.
	ErrOptionViolation = errors.New("genetic: invalid option supplied")

	// ErrPopulationSize signals a population slice whose length differs from
	// Options.PopulationSize.
	ErrPopulationSize = errors.New("genetic: population size mismatch")

	// ErrOddParents is returned when the parent pool cannot be split into
	// disjoint adjacent pairs.
	ErrOddParents = errors.New("genetic: odd-sized parent pool")

	// ErrParentCount signals a parent pool whose length differs from
	// Options.TopFraction.
	ErrParentCount = errors.New("genetic: parent pool size mismatch")

	// ErrOffspringSize signals an offspring buffer of the wrong length.
	ErrOffspringSize = errors.New("genetic: offspring size mismatch")

	// ErrMalformedRoute wraps a route that is not a permutation of the alphabet.
	ErrMalformedRoute = errors.New("genetic: malformed route")

	// ErrCursorExhausted reports that a crossover cursor ran off the end of its
	// parent before the child was complete. Valid parents never trigger it.
	ErrCursorExhausted = errors.New("genetic: crossover cursor exhausted")

	// ErrEngineClosed is returned by operations invoked after Close.
	ErrEngineClosed = errors.New("genetic: engine closed")
)
