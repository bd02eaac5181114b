// Command gatsp is a reference driver for the genetic core: it scatters 36
// cities on a grid, seeds a random population and runs the generational loop
//
//	evaluate → take the top fraction → crossover → mutate → replace the tail
//
// logging the best route of every generation.
//
// Usage:
//
//	gatsp -generations 150 -population 50000 -top 25000 -mutation 50
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/katalvlaran/gatsp/cities"
	"github.com/katalvlaran/gatsp/genetic"
)

// config collects the command-line knobs.
type config struct {
	population  int
	top         int
	mutation    int
	generations int
	workers     int
	seed        int64
	gridSize    int
}

func parseFlags(args []string) (config, error) {
	var c config
	fs := flag.NewFlagSet("gatsp", flag.ContinueOnError)
	fs.IntVar(&c.population, "population", genetic.DefaultPopulationSize, "routes per generation")
	fs.IntVar(&c.top, "top", genetic.DefaultTopFraction, "parents bred per generation (even)")
	fs.IntVar(&c.mutation, "mutation", genetic.DefaultMutationRatePercent, "inclusive mutation threshold in [0,100]")
	fs.IntVar(&c.generations, "generations", 150, "number of generations to run")
	fs.IntVar(&c.workers, "workers", runtime.NumCPU(), "worker goroutines")
	fs.Int64Var(&c.seed, "seed", 1, "seed for coordinates, population and mutation")
	fs.IntVar(&c.gridSize, "grid", 100, "cities are placed on a grid×grid square")
	if err := fs.Parse(args); err != nil {
		return c, err
	}
	if c.top > c.population/2 {
		return c, fmt.Errorf("top fraction %d must leave room for offspring in a population of %d", c.top, c.population)
	}
	if c.generations < 1 || c.gridSize < 1 {
		return c, fmt.Errorf("generations and grid must be positive")
	}

	return c, nil
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	c, err := parseFlags(os.Args[1:])
	if err != nil {
		logger.Error("invalid flags", "err", err)
		os.Exit(2)
	}
	if err = run(c, logger); err != nil {
		logger.Error("run failed", "err", err)
		os.Exit(1)
	}
}

// run owns the population buffer and the generation counter; the engine
// only evaluates, breeds and mutates.
func run(c config, logger *slog.Logger) error {
	rng := rand.New(rand.NewPCG(uint64(c.seed), uint64(c.seed)>>1|1))

	coords := randomCoords(rng, c.gridSize)
	eng, err := genetic.NewEngine(coords,
		genetic.WithPopulationSize(c.population),
		genetic.WithTopFraction(c.top),
		genetic.WithMutationRate(c.mutation),
		genetic.WithWorkers(c.workers),
		genetic.WithSeed(c.seed),
	)
	if err != nil {
		return err
	}
	defer eng.Close()

	pop := make([]genetic.Route, c.population)
	for i := range pop {
		pop[i] = randomRoute(rng)
	}
	offspring := make([]genetic.Route, c.top)

	start := time.Now()
	var gen int
	for gen = 0; gen < c.generations; gen++ {
		if err = eng.Evaluate(pop); err != nil {
			return fmt.Errorf("generation %d: evaluate: %w", gen, err)
		}
		logger.Debug("generation ranked", "generation", gen, "best", pop[0].Fitness)
		if gen%10 == 0 {
			logger.Info("progress", "generation", gen, "best", pop[0].Fitness, "route", pop[0].String())
		}

		if err = eng.CrossoverInto(pop[:c.top], offspring); err != nil {
			return fmt.Errorf("generation %d: crossover: %w", gen, err)
		}
		if err = eng.Mutate(offspring); err != nil {
			return fmt.Errorf("generation %d: mutate: %w", gen, err)
		}
		// Offspring replace the weakest routes; the parents survive.
		copy(pop[c.population-c.top:], offspring)
	}

	if err = eng.Evaluate(pop); err != nil {
		return fmt.Errorf("final evaluate: %w", err)
	}
	logger.Info("done",
		"generations", gen,
		"elapsed", time.Since(start),
		"best", pop[0].Fitness,
		"route", pop[0].String(),
	)

	return nil
}

// randomCoords scatters the cities uniformly on a size×size grid.
func randomCoords(rng *rand.Rand, size int) *cities.Table {
	var t cities.Table
	for i := range t {
		t[i] = cities.Point{X: rng.IntN(size), Y: rng.IntN(size)}
	}
	return &t
}

// randomRoute returns a shuffled permutation of the alphabet.
func randomRoute(rng *rand.Rand) genetic.Route {
	var r genetic.Route
	copy(r.Symbols[:], cities.Symbols)
	rng.Shuffle(cities.Count, func(i, j int) {
		r.Symbols[i], r.Symbols[j] = r.Symbols[j], r.Symbols[i]
	})
	return r
}
