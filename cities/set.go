package cities

import "math/bits"

// Set is a bitset over city indices [0, Count). The zero value is empty.
// Count fits in a single machine word, so a Set is copied by value.
type Set uint64

// Full is the set holding every city.
const Full Set = 1<<Count - 1

// Has reports whether city idx is in s.
func (s Set) Has(idx int) bool { return s&(1<<uint(idx)) != 0 }

// With returns s with city idx added.
func (s Set) With(idx int) Set { return s | 1<<uint(idx) }

// Len returns the number of cities in s.
func (s Set) Len() int { return bits.OnesCount64(uint64(s)) }

// Remaining returns how many cities are still missing from s.
func (s Set) Remaining() int { return Count - s.Len() }
