// Package genetic - RNG streams for the mutation operator.
//
// Every route gets its own deterministic stream derived from the engine seed,
// the ordinal of the Mutate call and the route position. As a result the
// outcome of Mutate does not depend on how routes are scheduled across
// workers: sequential and parallel runs are bit-identical.
//
// Concurrency:
//   - math/rand/v2 generators are NOT goroutine-safe; each lane owns one.
package genetic

import "math/rand/v2"

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed uint64 = 1

// normalizeSeed applies the seed==0 ⇒ defaultRNGSeed policy.
func normalizeSeed(seed int64) uint64 {
	if seed == 0 {
		return defaultRNGSeed
	}

	return uint64(seed)
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed using the SplitMix64 finalizer, so neighbouring stream ids produce
// uncorrelated outputs.
//
// Complexity: O(1).
func deriveSeed(parent uint64, stream uint64) uint64 {
	var x uint64
	x = parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// laneRNG is a reseedable generator owned by a single lane.
// Reseeding the embedded PCG in place avoids an allocation per route.
type laneRNG struct {
	pcg rand.PCG
	rng *rand.Rand
}

func newLaneRNG() *laneRNG {
	l := &laneRNG{}
	l.rng = rand.New(&l.pcg)
	return l
}

// reset points the lane at the stream of route index within call callSeed.
func (l *laneRNG) reset(callSeed uint64, index int) {
	l.pcg.Seed(callSeed, deriveSeed(callSeed, uint64(index)))
}
