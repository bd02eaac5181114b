// Package genetic_test provides helpers shared across *_test.go files:
// deterministic coordinate tables, random populations and permutation checks.
package genetic_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/gatsp/cities"
	"github.com/katalvlaran/gatsp/genetic"
	"github.com/stretchr/testify/require"
)

const (
	// seedDet is a deterministic seed for population generation.
	seedDet = uint64(42)

	// smallPop / smallTop keep unit tests fast while still spanning
	// several pool chunks (see chunkTiny).
	smallPop = 400
	smallTop = 200

	// chunkTiny forces many lanes per call.
	chunkTiny = 16
)

// spiralCoords lays the cities on an integer spiral: distinct, mostly
// distinct pairwise distances, and a depot well inside the hull.
func spiralCoords() *cities.Table {
	var t cities.Table
	for i := range t {
		r := 10 + 4*float64(i)
		th := 0.9 * float64(i)
		t[i] = cities.Point{X: int(math.Round(r * math.Cos(th))), Y: int(math.Round(r * math.Sin(th)))}
	}
	return &t
}

// randomRoute returns a uniformly shuffled permutation of the alphabet.
func randomRoute(rng *rand.Rand) genetic.Route {
	var r genetic.Route
	copy(r.Symbols[:], cities.Symbols)
	rng.Shuffle(cities.Count, func(i, j int) {
		r.Symbols[i], r.Symbols[j] = r.Symbols[j], r.Symbols[i]
	})
	r.Fitness = math.NaN()
	return r
}

// randomPopulation returns n random routes drawn from seed.
func randomPopulation(n int, seed uint64) []genetic.Route {
	rng := rand.New(rand.NewPCG(seed, seed^0x5bd1e995))
	pop := make([]genetic.Route, n)
	for i := range pop {
		pop[i] = randomRoute(rng)
	}
	return pop
}

// newEngine builds an engine over spiralCoords with small test sizes;
// extra options override the defaults. The engine is closed on cleanup.
func newEngine(t testing.TB, opts ...genetic.Option) *genetic.Engine {
	t.Helper()
	base := []genetic.Option{
		genetic.WithPopulationSize(smallPop),
		genetic.WithTopFraction(smallTop),
		genetic.WithWorkers(4),
		genetic.WithChunkSize(chunkTiny),
	}
	eng, err := genetic.NewEngine(spiralCoords(), append(base, opts...)...)
	require.NoError(t, err)
	t.Cleanup(eng.Close)
	return eng
}

// requirePermutation asserts every route holds each symbol exactly once.
func requirePermutation(t testing.TB, routes []genetic.Route) {
	t.Helper()
	for i := range routes {
		require.NoError(t, cities.Default().ValidateRoute(routes[i].Symbols[:]), "route %d: %s", i, routes[i].String())
	}
}

// mustRoute parses s or fails the test.
func mustRoute(t testing.TB, s string) genetic.Route {
	t.Helper()
	r, err := genetic.NewRoute(s)
	require.NoError(t, err)
	return r
}

// cloneRoutes returns an independent copy of routes.
func cloneRoutes(routes []genetic.Route) []genetic.Route {
	return append([]genetic.Route(nil), routes...)
}

// reverse returns s reversed.
func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// diffPositions lists positions where a and b differ.
func diffPositions(a, b *genetic.Route) []int {
	var out []int
	for i := 0; i < cities.Count; i++ {
		if a.Symbols[i] != b.Symbols[i] {
			out = append(out, i)
		}
	}
	return out
}

// symbolsOf projects routes onto their symbols. Fixtures carry NaN fitness,
// which never compares equal, so buffer comparisons go through this.
func symbolsOf(routes []genetic.Route) []string {
	out := make([]string, len(routes))
	for i := range routes {
		out[i] = routes[i].String()
	}
	return out
}
