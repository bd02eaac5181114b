package genetic

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gatsp/cities"
)

// Route is one chromosome: a visiting order of all cities plus its fitness.
//
// Symbols always holds exactly cities.Count bytes; there is no terminator.
// Fitness is derived data: it is only meaningful right after Evaluate and is
// stale once Crossover or Mutate touched the route.
type Route struct {
	Symbols [cities.Count]byte
	Fitness float64
}

// NewRoute builds a route from its textual form and validates it.
// The returned route is unevaluated (Fitness is NaN).
func NewRoute(symbols string) (Route, error) {
	var r Route
	if err := cities.Default().ValidateRoute([]byte(symbols)); err != nil {
		return r, fmt.Errorf("%w: %w", ErrMalformedRoute, err)
	}
	copy(r.Symbols[:], symbols)
	r.Fitness = math.NaN()

	return r, nil
}

// String returns the route's symbols.
func (r *Route) String() string { return string(r.Symbols[:]) }

// Evaluated reports whether Fitness carries a value (false after Crossover).
func (r *Route) Evaluated() bool { return !math.IsNaN(r.Fitness) }

// IsRanked reports whether population is in ascending fitness order, the
// state Evaluate leaves it in.
//
// Complexity: O(n).
func IsRanked(population []Route) bool {
	var i int
	for i = 1; i < len(population); i++ {
		if !(population[i-1].Fitness <= population[i].Fitness) {
			return false
		}
	}

	return true
}
