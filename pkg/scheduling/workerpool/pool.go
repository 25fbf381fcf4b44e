package workerpool

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"

	pferrors "github.com/vnykmshr/piflow/pkg/common/errors"
	"github.com/vnykmshr/piflow/pkg/common/validation"
	"github.com/vnykmshr/piflow/pkg/scheduling/partition"
)

// DefaultCheckEvery is how many terms a worker sums between context checks.
const DefaultCheckEvery = 1 << 16

// TermFunc computes the term at index. It must be pure: workers call it
// concurrently and in no particular order.
type TermFunc func(index uint64) float64

// Result is the single value a worker delivers for its interval: either a
// partial sum or the reason the sum could not be produced.
type Result struct {
	// WorkerID identifies which worker produced the result
	WorkerID int

	// Interval is the index range the worker was assigned
	Interval partition.Interval

	// Sum is the local reduction over Interval. Meaningless when Err is set.
	Sum float64

	// Err is non-nil if the worker panicked or was canceled
	Err error

	// Duration is how long the worker ran
	Duration time.Duration
}

// Failed reports whether the result carries an error instead of a sum.
func (r Result) Failed() bool {
	return r.Err != nil
}

// Config holds configuration options for creating a worker pool.
type Config struct {
	// WorkerCount is the number of workers, and therefore partitions, per dispatch.
	// Must be greater than 0.
	WorkerCount int

	// CheckEvery is how many terms a worker sums between context checks.
	// Zero means DefaultCheckEvery.
	CheckEvery uint64

	// Logger receives worker lifecycle events at debug level. Nil disables logging.
	Logger *zap.Logger

	// PanicHandler is called when a worker panics while summing.
	// The panic is always converted into Result.Err regardless.
	PanicHandler func(workerID int, recovered interface{})

	// OnWorkerStart is called from the worker goroutine before it starts summing.
	OnWorkerStart func(workerID int)

	// OnWorkerStop is called from the worker goroutine just before its result is sent.
	OnWorkerStop func(result Result)
}

// DefaultConfig returns a configuration with one worker per logical CPU.
func DefaultConfig() Config {
	return Config{
		WorkerCount: runtime.NumCPU(),
		CheckEvery:  DefaultCheckEvery,
	}
}

// Pool fans a finite index range out over a fixed number of workers.
// A Pool holds no goroutines between dispatches and may be reused.
type Pool struct {
	config Config
	logger *zap.Logger
}

// New creates a pool with the specified number of workers.
func New(workerCount int) (*Pool, error) {
	config := DefaultConfig()
	config.WorkerCount = workerCount
	return NewWithConfig(config)
}

// NewWithConfig creates a pool with the specified configuration.
func NewWithConfig(config Config) (*Pool, error) {
	if err := validation.ValidatePositive("workerpool", "worker_count", config.WorkerCount); err != nil {
		return nil, err
	}
	if config.CheckEvery == 0 {
		config.CheckEvery = DefaultCheckEvery
	}

	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Pool{
		config: config,
		logger: logger.Named("workerpool"),
	}, nil
}

// Size returns the number of workers started per dispatch.
func (p *Pool) Size() int {
	return p.config.WorkerCount
}

// Dispatch partitions [0, n) across the pool and starts one worker per
// interval. Each worker sends exactly one Result on the returned channel,
// which is buffered to the worker count so no send ever blocks, and the
// channel is closed once every worker has sent.
func (p *Pool) Dispatch(ctx context.Context, n uint64, term TermFunc) (<-chan Result, error) {
	if term == nil {
		return nil, validation.ValidateNotNil("workerpool", "term", nil)
	}

	intervals, err := partition.Partition(n, p.config.WorkerCount)
	if err != nil {
		return nil, fmt.Errorf("dispatch: %w", err)
	}

	results := make(chan Result, len(intervals))

	var wg sync.WaitGroup
	wg.Add(len(intervals))
	for id, iv := range intervals {
		go p.work(ctx, id, iv, term, results, &wg)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results, nil
}

// work sums one interval and delivers the outcome exactly once.
func (p *Pool) work(ctx context.Context, id int, iv partition.Interval, term TermFunc, results chan<- Result, wg *sync.WaitGroup) {
	defer wg.Done()

	start := time.Now()
	result := Result{WorkerID: id, Interval: iv}

	defer func() {
		if r := recover(); r != nil {
			if p.config.PanicHandler != nil {
				p.config.PanicHandler(id, r)
			}
			result.Err = pferrors.NewOperationError("workerpool", fmt.Sprintf("worker[%d]", id),
				fmt.Errorf("%w: panic: %v", pferrors.ErrWorkerFailed, r)).
				WithContext("interval " + iv.String())
		}

		result.Duration = time.Since(start)
		if p.config.OnWorkerStop != nil {
			p.config.OnWorkerStop(result)
		}
		p.logger.Debug("worker finished",
			zap.Int("worker", id),
			zap.Stringer("interval", iv),
			zap.Duration("duration", result.Duration),
			zap.Error(result.Err))

		results <- result
	}()

	if p.config.OnWorkerStart != nil {
		p.config.OnWorkerStart(id)
	}
	p.logger.Debug("worker started", zap.Int("worker", id), zap.Stringer("interval", iv))

	result.Sum, result.Err = p.sum(ctx, id, iv, term)
}

// sum is the local reduction over iv. The context is polled every
// CheckEvery terms.
func (p *Pool) sum(ctx context.Context, id int, iv partition.Interval, term TermFunc) (float64, error) {
	var total float64
	untilCheck := uint64(0)

	for i := iv.Start; i < iv.End; i++ {
		if untilCheck == 0 {
			if err := ctx.Err(); err != nil {
				return total, pferrors.NewOperationError("workerpool", fmt.Sprintf("worker[%d]", id),
					fmt.Errorf("%w: %w", pferrors.ErrWorkerFailed, err)).
					WithContext(fmt.Sprintf("stopped at index %d of %s", i, iv))
			}
			untilCheck = p.config.CheckEvery
		}
		untilCheck--

		total += term(i)
	}

	return total, nil
}
