// SPDX-License-Identifier: MIT
// Package cities: sentinel error set.
// Every message is prefixed with "cities: ..."; callers match them with
// errors.Is. Context is added by wrapping with fmt.Errorf("...: %w", ErrX).

package cities

import "errors"

var (
	// ErrInvalidSymbol is returned when a byte outside the 36-symbol alphabet
	// is passed to a lookup or found inside a route.
	ErrInvalidSymbol = errors.New("cities: invalid symbol")

	// ErrIndexOutOfRange indicates a city index outside [0, Count).
	ErrIndexOutOfRange = errors.New("cities: index out of range")

	// ErrRouteLength signals a route that does not hold exactly Count symbols.
	ErrRouteLength = errors.New("cities: route length mismatch")

	// ErrDuplicateSymbol signals a route that visits some city twice
	// (and therefore omits another one).
	ErrDuplicateSymbol = errors.New("cities: duplicate symbol in route")

	// ErrNilTable indicates that a nil *Table was supplied.
	ErrNilTable = errors.New("cities: coordinate table is nil")
)
