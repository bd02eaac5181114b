package genetic

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/alitto/pond"

	"github.com/katalvlaran/gatsp/cities"
)

// Engine runs the three per-generation operations (Evaluate, Crossover,
// Mutate) over driver-owned route buffers.
//
// The coordinate-derived distance table and the alphabet are built once in
// NewEngine and shared read-only by every lane. Evaluation and mutation lanes
// run on a long-lived pond worker pool; crossover pairs run on a bounded conc
// error pool so a failing pair fails the whole call.
//
// An Engine may be used from several goroutines; its mutable state is the
// mutation call counter and the closed flag. Operations hold mu shared for
// their whole run and Close takes it exclusively, so Close waits for
// in-flight calls and later calls see ErrEngineClosed.
type Engine struct {
	opts      Options
	alphabet  *cities.Alphabet
	distances *cities.Distances
	pool      *pond.WorkerPool

	mutateCalls atomic.Uint64

	mu     sync.RWMutex // shared: running operation, exclusive: Close
	closed bool
}

// NewEngine validates opts against DefaultOptions, precomputes the distance
// table of coords and starts the worker pool.
//
// Errors: cities.ErrNilTable, ErrOptionViolation.
func NewEngine(coords *cities.Table, opts ...Option) (*Engine, error) {
	if coords == nil {
		return nil, cities.ErrNilTable
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	d, err := cities.NewDistances(coords)
	if err != nil {
		return nil, err
	}

	return &Engine{
		opts:      o,
		alphabet:  cities.Default(),
		distances: d,
		pool:      pond.New(o.Workers, 4*o.Workers),
	}, nil
}

// Options returns a copy of the effective configuration.
func (e *Engine) Options() Options { return e.opts }

// Alphabet returns the shared symbol tables.
func (e *Engine) Alphabet() *cities.Alphabet { return e.alphabet }

// Distances returns the precomputed leg table.
func (e *Engine) Distances() *cities.Distances { return e.distances }

// Close waits for in-flight operations, then stops the worker pool.
// Subsequent operations return ErrEngineClosed. Close is idempotent.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	e.pool.StopAndWait()
}

// acquire pins the engine open for one operation. On success the caller
// must release with e.mu.RUnlock.
func (e *Engine) acquire() error {
	e.mu.RLock()
	if e.closed {
		e.mu.RUnlock()
		return ErrEngineClosed
	}

	return nil
}

// forEachChunk splits [0, n) into spans of ChunkSize and runs fn for each
// span on the pool. It returns once every span has finished.
func (e *Engine) forEachChunk(n int, fn func(lo, hi int)) {
	group := e.pool.Group()
	for lo := 0; lo < n; lo += e.opts.ChunkSize {
		hi := min(lo+e.opts.ChunkSize, n)
		group.Submit(func() {
			fn(lo, hi)
		})
	}
	group.Wait()
}

// chunkCount returns how many spans forEachChunk creates for n items.
func (e *Engine) chunkCount(n int) int {
	return (n + e.opts.ChunkSize - 1) / e.opts.ChunkSize
}

// expectLen is the shared size precondition for every operation.
func expectLen(sentinel error, got, want int) error {
	if got != want {
		return fmt.Errorf("%w: got %d routes, want %d", sentinel, got, want)
	}

	return nil
}
