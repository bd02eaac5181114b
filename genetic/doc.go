// Package genetic is the optimization core of a genetic-algorithm solver for
// the 36-city Travelling Salesman Problem.
//
// 🚀 What does it do?
//
//	Once per generation a driver calls three operations on its own buffers:
//
//	  Evaluate(population) → score every route, sort ascending (best first)
//	  Crossover(parents)   → breed the top fraction into the same number of offspring
//	  Mutate(offspring)    → swap two positions in roughly half of the offspring
//
//	Choosing survivors, initializing the population and deciding when to stop
//	stay with the driver.
//
// ✨ Key features:
//   - fitness = open path length from the depot (0,0) through all cities;
//   - greedy nearest-next-city crossover; the second child is the alphabet
//     complement of the first (ComplementOf), not a second recombination;
//   - data-parallel lanes on a shared worker pool, with a barrier before the
//     final sort;
//   - deterministic mutation streams: same seed ⇒ same offspring, whether
//     mutation runs sequentially or in parallel;
//   - strict preconditions: malformed routes, odd parent pools and size
//     mismatches are rejected with sentinel errors, never tolerated.
//
// ⚙️ Usage:
//
//	eng, err := genetic.NewEngine(&coords,
//	  genetic.WithPopulationSize(50000),
//	  genetic.WithTopFraction(25000),
//	  genetic.WithMutationRate(50),
//	)
//	if err != nil { … }
//	defer eng.Close()
//
//	_ = eng.Evaluate(population)                 // population[0] is the best route
//	kids, _ := eng.Crossover(population[:25000]) // unevaluated offspring
//	_ = eng.Mutate(kids)
//
// Performance:
//
//   - Evaluate:  O(n·36) across workers + O(n log n) sort
//   - Crossover: O(n·36) across workers
//   - Mutate:    O(n)
package genetic
