// Package cities holds the static, read-only geometry of the 36-city tour:
// the symbol alphabet, the coordinate table and Euclidean distances.
//
// 🚀 What lives here?
//
//	Every city is named by one alphanumeric symbol:
//
//	  ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789
//	  index 0 ................ index 35
//
//	The Alphabet maps symbols to dense indices (IndexOf) and to their
//	mirrored counterpart (ComplementOf: 'A' ↔ '9', 'B' ↔ '8', …).
//	The Table maps indices to integer coordinates. Distances caches every
//	pairwise leg plus the leg from the depot at Origin (0,0).
//
// ✨ Key properties:
//   - all tables are built once and never mutated afterwards, so they are
//     shared across goroutines without locks;
//   - lookups are O(1); invalid symbols fail fast with ErrInvalidSymbol
//     instead of reading out of bounds;
//   - Distances returns values bit-identical to Distance.
//
// ⚙️ Usage:
//
//	idx, err := cities.IndexOf('Q')      // 16
//	mirror, _ := cities.ComplementOf('A') // '9'
//
//	var t cities.Table
//	t[0] = cities.Point{X: 3, Y: 4}
//	d, _ := cities.NewDistances(&t)
//	d.FromOrigin(0) // 5
package cities
