package genetic

import (
	"fmt"
	"runtime"
)

// Reference configuration.
const (
	// DefaultPopulationSize is the number of routes per generation.
	DefaultPopulationSize = 50000

	// DefaultTopFraction is the number of fittest routes bred each generation.
	DefaultTopFraction = 25000

	// DefaultMutationRatePercent is the inclusive mutation threshold.
	DefaultMutationRatePercent = 50

	// DefaultChunkSize is how many routes one pool task processes.
	DefaultChunkSize = 512
)

// Option configures an Engine via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation by NewEngine.
type Option func(*Options)

// Options holds the engine configuration.
//
// Fields:
//   - PopulationSize      - routes per generation; Evaluate checks it.
//   - TopFraction         - parents bred per generation (even, ≤ PopulationSize);
//     Crossover and Mutate check it.
//   - MutationRatePercent - a route mutates when a draw r ∈ [0,99] satisfies
//     r ≤ MutationRatePercent, so 50 means 51 chances in 100 and 100 always mutates.
//   - Workers             - goroutines in the engine pool.
//   - ChunkSize           - routes (or pairs) handled per pool task.
//   - Seed                - base seed for mutation streams; 0 selects a fixed default.
//   - ParallelMutation    - run Mutate on the pool instead of a sequential loop.
//     Results are identical either way.
//   - OnMutate            - called for every route selected for mutation with
//     the route position and the two swapped positions. It may be invoked
//     from several goroutines at once.
type Options struct {
	PopulationSize      int
	TopFraction         int
	MutationRatePercent int
	Workers             int
	ChunkSize           int
	Seed                int64
	ParallelMutation    bool
	OnMutate            func(index, i, j int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the reference configuration:
//   - 50 000 routes, 25 000 parents, 50% inclusive mutation threshold
//   - one worker per CPU, chunks of 512 routes
//   - seed 0 (deterministic default stream), parallel mutation, no hook.
func DefaultOptions() Options {
	return Options{
		PopulationSize:      DefaultPopulationSize,
		TopFraction:         DefaultTopFraction,
		MutationRatePercent: DefaultMutationRatePercent,
		Workers:             runtime.NumCPU(),
		ChunkSize:           DefaultChunkSize,
		Seed:                0,
		ParallelMutation:    true,
		OnMutate:            nil,
	}
}

// WithPopulationSize sets the expected population length (n > 0).
func WithPopulationSize(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: PopulationSize must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.PopulationSize = n
	}
}

// WithTopFraction sets the parent pool size (n > 0 and even).
func WithTopFraction(n int) Option {
	return func(o *Options) {
		switch {
		case n <= 0:
			o.err = fmt.Errorf("%w: TopFraction must be positive (%d)", ErrOptionViolation, n)
		case n%2 != 0:
			o.err = fmt.Errorf("%w: TopFraction must be even (%d)", ErrOptionViolation, n)
		default:
			o.TopFraction = n
		}
	}
}

// WithMutationRate sets the inclusive mutation threshold in [0,100].
func WithMutationRate(percent int) Option {
	return func(o *Options) {
		if percent < 0 || percent > 100 {
			o.err = fmt.Errorf("%w: MutationRatePercent out of [0,100] (%d)", ErrOptionViolation, percent)
			return
		}
		o.MutationRatePercent = percent
	}
}

// WithWorkers sets the pool size (n ≥ 1).
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithChunkSize sets how many routes one pool task handles (n ≥ 1).
func WithChunkSize(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: ChunkSize must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.ChunkSize = n
	}
}

// WithSeed sets the base mutation seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithParallelMutation toggles pool execution for Mutate.
func WithParallelMutation(on bool) Option {
	return func(o *Options) {
		o.ParallelMutation = on
	}
}

// WithMutationHook registers fn as Options.OnMutate.
func WithMutationHook(fn func(index, i, j int)) Option {
	return func(o *Options) {
		o.OnMutate = fn
	}
}

// validate checks cross-field constraints once all Options were applied.
//
// Complexity: O(1).
func (o *Options) validate() error {
	if o.err != nil {
		return o.err
	}
	if o.PopulationSize <= 0 {
		return fmt.Errorf("%w: PopulationSize must be positive (%d)", ErrOptionViolation, o.PopulationSize)
	}
	if o.TopFraction <= 0 || o.TopFraction%2 != 0 {
		return fmt.Errorf("%w: TopFraction must be positive and even (%d)", ErrOptionViolation, o.TopFraction)
	}
	if o.TopFraction > o.PopulationSize {
		return fmt.Errorf("%w: TopFraction %d exceeds PopulationSize %d",
			ErrOptionViolation, o.TopFraction, o.PopulationSize)
	}
	if o.MutationRatePercent < 0 || o.MutationRatePercent > 100 {
		return fmt.Errorf("%w: MutationRatePercent out of [0,100] (%d)", ErrOptionViolation, o.MutationRatePercent)
	}
	if o.Workers < 1 {
		return fmt.Errorf("%w: Workers must be at least 1 (%d)", ErrOptionViolation, o.Workers)
	}
	if o.ChunkSize < 1 {
		return fmt.Errorf("%w: ChunkSize must be at least 1 (%d)", ErrOptionViolation, o.ChunkSize)
	}

	return nil
}
