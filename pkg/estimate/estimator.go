package estimate

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	pfcontext "github.com/vnykmshr/piflow/pkg/common/context"
	pferrors "github.com/vnykmshr/piflow/pkg/common/errors"
	"github.com/vnykmshr/piflow/pkg/config"
	"github.com/vnykmshr/piflow/pkg/metrics"
	"github.com/vnykmshr/piflow/pkg/scheduling/workerpool"
	"github.com/vnykmshr/piflow/pkg/streaming/channel"
	"github.com/vnykmshr/piflow/pkg/streaming/sampler"
)

// Method label values used in logs and metrics.
const (
	MethodSeries  = "series"
	MethodCoprime = "coprime"
)

// Option is a functional option for configuring an Estimator.
type Option func(*Estimator)

// WithLogger sets the logger for the estimator and the engines it runs.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Estimator) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMetrics records worker, queue and run metrics into registry.
func WithMetrics(registry *metrics.Registry) Option {
	return func(e *Estimator) {
		e.metrics = registry
	}
}

// WithTerm replaces the series term. Defaults to LeibnizTerm.
func WithTerm(term workerpool.TermFunc) Option {
	return func(e *Estimator) {
		if term != nil {
			e.term = term
		}
	}
}

// WithSource replaces the per-producer pair source. Defaults to a seeded
// random source bounded by the sampling MaxValue.
func WithSource(newSource sampler.SourceFunc) Option {
	return func(e *Estimator) {
		e.newSource = newSource
	}
}

// Estimator runs estimation jobs sized by a config.Config.
type Estimator struct {
	config    config.Config
	logger    *zap.Logger
	metrics   *metrics.Registry
	term      workerpool.TermFunc
	newSource sampler.SourceFunc
}

// SeriesEstimate is the outcome of a Series run.
type SeriesEstimate struct {
	Pi       float64
	Sum      float64
	Terms    uint64
	Workers  int
	Duration time.Duration
}

// SampleEstimate is the outcome of a Coprime run.
type SampleEstimate struct {
	Pi        float64
	Fraction  float64
	Counts    Counts
	Producers int

	// Blocked is the number of sends that waited on a full queue.
	Blocked int64

	// Discarded is the number of queued samples dropped when the quota was met.
	Discarded int64

	Duration time.Duration
}

// New creates an Estimator. cfg is validated up front.
func New(cfg config.Config, opts ...Option) (*Estimator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Estimator{
		config: cfg,
		logger: zap.NewNop(),
		term:   LeibnizTerm,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.Named("estimate")

	return e, nil
}

// Config returns the sizing the estimator was built with.
func (e *Estimator) Config() config.Config {
	return e.config
}

// Series sums Config.Series.Terms terms over Config.Series.Workers workers
// and returns four times the sum.
func (e *Estimator) Series(ctx context.Context) (SeriesEstimate, error) {
	start := time.Now()
	est, err := e.series(ctx)
	est.Duration = time.Since(start)

	e.metrics.Run(MethodSeries, est.Duration, est.Pi, err)
	if err != nil {
		e.logger.Error("series estimate failed", zap.Error(err), zap.Bool("timed_out", pfcontext.IsTimedOut(ctx)))
		return est, err
	}

	e.logger.Info("series estimate",
		zap.Float64("pi", est.Pi),
		zap.Uint64("terms", est.Terms),
		zap.Int("workers", est.Workers),
		zap.Duration("duration", est.Duration))
	return est, nil
}

func (e *Estimator) series(ctx context.Context) (SeriesEstimate, error) {
	cfg := e.config.Series
	est := SeriesEstimate{Terms: cfg.Terms, Workers: cfg.Workers}

	pool, err := workerpool.NewWithConfig(workerpool.Config{
		WorkerCount: cfg.Workers,
		Logger:      e.logger,
		OnWorkerStart: func(int) {
			e.metrics.WorkerStarted(metrics.EngineSeries)
		},
		OnWorkerStop: func(r workerpool.Result) {
			e.metrics.WorkerStopped(metrics.EngineSeries, r.Duration)
			e.metrics.PartialResult(r.Failed())
		},
	})
	if err != nil {
		return est, err
	}

	// Remaining workers stop early if Collect gives up on a failure.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results, err := pool.Dispatch(ctx, cfg.Terms, e.term)
	if err != nil {
		return est, err
	}

	sum, err := Collect(ctx, results, pool.Size())
	if err != nil {
		return est, err
	}

	est.Sum = sum
	est.Pi = 4 * sum
	return est, nil
}

// Coprime samples random pairs until exactly Config.Sampling.Quota samples
// have been counted, then stops every producer and returns sqrt(6/fraction).
// It fails with ErrNoCoprimeSamples when no sample was coprime.
func (e *Estimator) Coprime(ctx context.Context) (SampleEstimate, error) {
	start := time.Now()
	est, err := e.coprime(ctx)
	est.Duration = time.Since(start)

	e.metrics.Run(MethodCoprime, est.Duration, est.Pi, err)
	if err != nil {
		e.logger.Error("coprime estimate failed", zap.Error(err), zap.Bool("timed_out", pfcontext.IsTimedOut(ctx)))
		return est, err
	}

	e.logger.Info("coprime estimate",
		zap.Float64("pi", est.Pi),
		zap.Float64("fraction", est.Fraction),
		zap.Uint64("samples", est.Counts.Total),
		zap.Int("producers", est.Producers),
		zap.Int64("discarded", est.Discarded),
		zap.Duration("duration", est.Duration))
	return est, nil
}

func (e *Estimator) coprime(ctx context.Context) (SampleEstimate, error) {
	cfg := e.config.Sampling
	est := SampleEstimate{Producers: cfg.Producers}

	queue, err := channel.New[bool](cfg.QueueCapacity)
	if err != nil {
		return est, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Each producer writes only its own slot.
	started := make([]time.Time, cfg.Producers)
	group, err := sampler.Start(ctx, sampler.Config{
		Producers: cfg.Producers,
		Seed:      cfg.Seed,
		MaxValue:  cfg.MaxValue,
		NewSource: e.newSource,
		Logger:    e.logger,
		OnProducerStart: func(id int) {
			started[id] = time.Now()
			e.metrics.WorkerStarted(metrics.EngineSampler)
		},
		OnProducerStop: func(id int, _ uint64, _ error) {
			e.metrics.WorkerStopped(metrics.EngineSampler, time.Since(started[id]))
		},
	}, queue)
	if err != nil {
		return est, err
	}

	// A producer that fails for any reason other than closure or
	// cancellation takes the queue down so Tally cannot starve.
	waited := make(chan error, 1)
	go func() {
		err := group.Wait()
		if err != nil {
			_ = queue.Close()
		}
		waited <- err
	}()

	counts, tallyErr := Tally(ctx, queue, cfg.Quota)

	_ = queue.Close()
	group.Stop()
	waitErr := <-waited

	stats := queue.Stats()
	est.Counts = counts
	est.Blocked = stats.BlockedSends
	est.Discarded = stats.DiscardedCount
	e.metrics.Queue(queue.Cap(), stats.BlockedSends, stats.DiscardedCount)
	e.metrics.Samples(counts.Hits, counts.Total-counts.Hits)

	if waitErr != nil {
		return est, fmt.Errorf("%w: %w", pferrors.ErrWorkerFailed, waitErr)
	}
	if tallyErr != nil {
		return est, tallyErr
	}
	if counts.Hits == 0 {
		return est, fmt.Errorf("%w: 0 of %d samples", pferrors.ErrNoCoprimeSamples, counts.Total)
	}

	est.Fraction = counts.Fraction()
	est.Pi = math.Sqrt(6 / est.Fraction)
	return est, nil
}
