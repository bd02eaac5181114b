// Package gatsp is the optimization core of a genetic-algorithm solver for a
// 36-city Travelling Salesman Problem.
//
// 🚀 What is gatsp?
//
//	A small, concurrent library that a driver calls once per generation:
//		• cities/  - symbol alphabet (IndexOf, ComplementOf), coordinates, distances
//		• genetic/ - Engine with Evaluate (score + rank), Crossover (greedy
//		             edge walk + complement sibling) and Mutate (two-point swap)
//		• cmd/gatsp - a reference driver running the full generational loop
//
// ✨ Why this shape?
//
//   - The driver owns the population buffer and the survivor policy; the core
//     only scores, breeds and perturbs routes in place.
//   - Every route is exactly 36 symbols, validated as a permutation.
//   - Work fans out over a worker pool in independent lanes; the only
//     serialization point is the sort at the end of Evaluate.
//
// Quick ASCII example of one generation:
//
//	population ──Evaluate──▶ ranked ──top half──▶ Crossover ──▶ Mutate ──▶ tail replaced
//
//	go get github.com/katalvlaran/gatsp/genetic
package gatsp
