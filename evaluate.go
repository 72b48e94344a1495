package hermite

import (
	"fmt"
	"log/slog"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/tphakala/go-hermite/internal/engine"
)

// Config holds batch evaluation configuration.
type Config struct {
	// Workers is the maximum number of goroutines evaluating chunks at once.
	// Set to 0 to use runtime.GOMAXPROCS.
	Workers int

	// ChunkSize is the number of x values handed to one worker at a time.
	// Set to 0 to use the default.
	ChunkSize int

	// EnableParallel enables parallel evaluation across x.
	// Inputs that fit in a single chunk are always evaluated serially.
	EnableParallel bool

	// Logger receives per-argument failures at Warn and batch sizes at Debug.
	// A nil Logger discards everything.
	Logger *slog.Logger
}

// DefaultConfig returns the configuration used by the package-level
// functions: parallel over all CPUs with the default chunk size.
func DefaultConfig() *Config {
	return &Config{
		Workers:        min(runtime.GOMAXPROCS(0), maxWorkers),
		ChunkSize:      defaultChunkSize,
		EnableParallel: true,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be non-negative, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.Workers > maxWorkers {
		return fmt.Errorf("%w: too many workers (max %d)", ErrInvalidConfig, maxWorkers)
	}
	if c.ChunkSize < 0 {
		return fmt.Errorf("%w: chunk size must be non-negative, got %d", ErrInvalidConfig, c.ChunkSize)
	}
	return nil
}

// Evaluator evaluates Hermite function tables. It is safe for concurrent use.
type Evaluator struct {
	workers   int
	chunkSize int
	parallel  bool
	log       *slog.Logger

	// sweep is engine.Sweep, replaceable in tests.
	sweep func(dst []float64, stride, nMax int, arg engine.Argument) error
	// final is engine.Final, replaceable in tests.
	final func(n int, arg engine.Argument) (float64, error)
}

// New creates an Evaluator. A nil config selects DefaultConfig.
func New(config *Config) (*Evaluator, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	e := &Evaluator{
		workers:   config.Workers,
		chunkSize: config.ChunkSize,
		parallel:  config.EnableParallel,
		log:       config.Logger,
		sweep:     engine.Sweep,
		final:     engine.Final,
	}
	if e.workers == 0 {
		e.workers = min(runtime.GOMAXPROCS(0), maxWorkers)
	}
	if e.chunkSize == 0 {
		e.chunkSize = defaultChunkSize
	}
	if e.log == nil {
		e.log = slog.New(slog.DiscardHandler)
	}
	return e, nil
}

// Evaluate computes φ_k(x_i; α, μ) for every order k in 0..nMax and every x_i
// with the default configuration.
func Evaluate(nMax int, alpha, mu float64, x []float64) (*Table, error) {
	e, err := New(nil)
	if err != nil {
		return nil, err
	}
	return e.Evaluate(nMax, alpha, mu, x)
}

// EvaluateFloat32 is like Evaluate but accepts float32 arguments.
func EvaluateFloat32(nMax int, alpha, mu float64, x []float32) (*Table, error) {
	e, err := New(nil)
	if err != nil {
		return nil, err
	}
	return e.EvaluateFloat32(nMax, alpha, mu, x)
}

// Evaluate computes φ_k(x_i; α, μ) for every order k in 0..nMax and every x_i.
//
// All preconditions are checked before any evaluation; a violation returns a
// nil table and an error wrapping ErrInvalidParameter. A numeric failure at
// one x does not affect the others: the table is returned with that column
// set to NaN together with a *BatchError.
func (e *Evaluator) Evaluate(nMax int, alpha, mu float64, x []float64) (*Table, error) {
	if nMax < 0 {
		return nil, fmt.Errorf("%w: order must be non-negative, got %d", ErrInvalidParameter, nMax)
	}
	scale, args, err := normalizeAll(alpha, mu, x)
	if err != nil {
		return nil, err
	}
	if nMax >= maxTableLen/len(x) {
		return nil, fmt.Errorf("%w: table up to order %d at %d points exceeds %d entries",
			ErrInvalidParameter, nMax, len(x), maxTableLen)
	}

	t := newTable(nMax, x)
	stride := len(x)

	e.log.Debug("evaluating table", "orders", nMax+1, "points", len(x), "alpha", alpha, "mu", mu)

	errs := e.forEach(len(args), func(i int) error {
		err := e.sweep(t.values[i:], stride, nMax, args[i])
		if err != nil {
			for k := 0; k <= nMax; k++ {
				t.values[k*stride+i] = math.NaN()
			}
		}
		return err
	})

	return t, e.collect("evaluate", nMax, scale, args, errs)
}

// EvaluateFloat32 is like Evaluate but accepts float32 arguments.
// The arguments are widened to float64; the table is float64.
func (e *Evaluator) EvaluateFloat32(nMax int, alpha, mu float64, x []float32) (*Table, error) {
	wide := make([]float64, len(x))
	for i, v := range x {
		wide[i] = float64(v)
	}
	return e.Evaluate(nMax, alpha, mu, wide)
}

// normalizeAll validates every input and maps x onto the recurrence axis.
func normalizeAll(alpha, mu float64, x []float64) (engine.Scale, []engine.Argument, error) {
	if len(x) == 0 {
		return engine.Scale{}, nil, fmt.Errorf("%w: x must not be empty", ErrInvalidParameter)
	}

	scale, err := engine.NewScale(alpha, mu)
	if err != nil {
		return engine.Scale{}, nil, err
	}

	args := make([]engine.Argument, len(x))
	for i, v := range x {
		arg, err := scale.Normalize(v)
		if err != nil {
			return engine.Scale{}, nil, fmt.Errorf("x[%d]: %w", i, err)
		}
		args[i] = arg
	}
	return scale, args, nil
}

// forEach runs fn for every index in 0..count-1 and returns the per-index
// errors. Chunks are distributed over a bounded errgroup; fn must only write
// state owned by its index.
func (e *Evaluator) forEach(count int, fn func(i int) error) []error {
	errs := make([]error, count)

	if !e.parallel || e.workers <= 1 || count <= e.chunkSize {
		for i := range count {
			errs[i] = fn(i)
		}
		return errs
	}

	var g errgroup.Group
	g.SetLimit(e.workers)
	for start := 0; start < count; start += e.chunkSize {
		end := min(start+e.chunkSize, count)
		g.Go(func() error {
			for i := start; i < end; i++ {
				errs[i] = fn(i)
			}
			return nil
		})
	}
	// Chunks never return errors; failures are kept per index.
	_ = g.Wait()

	return errs
}

// collect turns per-index errors into a *BatchError, or nil when all succeeded.
func (e *Evaluator) collect(op string, order int, scale engine.Scale, args []engine.Argument, errs []error) error {
	var failures []*EvalError
	for i, err := range errs {
		if err == nil {
			continue
		}
		f := newEvalError(op, order, args[i], i, scale, err)
		if len(failures) < maxLoggedErrors {
			e.log.Warn("evaluation failed", "op", op, "order", f.Order, "index", i, "x", f.X, "error", f.Err)
		}
		failures = append(failures, f)
	}
	if len(failures) == 0 {
		return nil
	}
	return &BatchError{Failures: failures, Total: len(args)}
}
