// Package sampler runs a population of producers that classify an unbounded
// stream of random pairs and push each boolean outcome onto a bounded queue.
//
// Producers never stop on their own. They exit when the queue reports that
// its consumer closed it, or when the group's context is canceled, whichever
// they observe first; both are checked on every iteration.
package sampler

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	pfcontext "github.com/vnykmshr/piflow/pkg/common/context"
	pferrors "github.com/vnykmshr/piflow/pkg/common/errors"
	"github.com/vnykmshr/piflow/pkg/common/validation"
	"github.com/vnykmshr/piflow/pkg/streaming/channel"
)

// Predicate classifies one pair.
type Predicate func(a, b uint64) bool

// Config holds configuration for a producer group.
type Config struct {
	// Producers is the number of producer goroutines. Must be greater than 0.
	Producers int

	// Seed is the base seed each producer's seed is derived from.
	// Zero picks a random base seed.
	Seed uint64

	// MaxValue bounds the values drawn by the default source. Zero means DefaultMaxValue.
	MaxValue uint64

	// NewSource builds each producer's private source. Nil means NewRandomSource.
	NewSource SourceFunc

	// Predicate classifies pairs. Nil means Coprime.
	Predicate Predicate

	// Logger receives producer lifecycle events at debug level. Nil disables logging.
	Logger *zap.Logger

	// OnProducerStart is called from the producer goroutine before its first sample.
	OnProducerStart func(workerID int)

	// OnProducerStop is called from the producer goroutine as it exits, with the
	// number of samples it delivered and the condition that stopped it.
	OnProducerStop func(workerID int, produced uint64, reason error)
}

// Group is a running set of producers.
type Group struct {
	config Config
	logger *zap.Logger
	eg     *errgroup.Group
	cancel context.CancelFunc
}

// Start launches config.Producers producers that push onto out until out
// is closed by its consumer or Stop is called.
func Start(ctx context.Context, config Config, out channel.Sender[bool]) (*Group, error) {
	if err := validation.ValidatePositive("sampler", "producers", config.Producers); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, validation.ValidateNotNil("sampler", "out", nil)
	}

	if config.Seed == 0 {
		config.Seed = rand.Uint64()
	}
	if config.NewSource == nil {
		max := config.MaxValue
		config.NewSource = func(_ int, seed uint64) PairSource {
			return NewRandomSource(seed, max)
		}
	}
	if config.Predicate == nil {
		config.Predicate = Coprime
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithCancel(ctx)
	eg, ctx := errgroup.WithContext(ctx)

	g := &Group{
		config: config,
		logger: logger.Named("sampler"),
		eg:     eg,
		cancel: cancel,
	}

	for id := 0; id < config.Producers; id++ {
		src := config.NewSource(id, workerSeed(config.Seed, id))
		eg.Go(func() error {
			return g.produce(ctx, id, src, out)
		})
	}

	return g, nil
}

// Size returns the number of producers in the group.
func (g *Group) Size() int {
	return g.config.Producers
}

// Stop cancels the group's context. Producers blocked on a full queue are
// released; the others exit at their next iteration.
func (g *Group) Stop() {
	g.cancel()
}

// Wait blocks until every producer has exited. Closure of the queue and
// cancellation are normal exits and yield nil; any other send failure is
// returned.
func (g *Group) Wait() error {
	defer g.cancel()
	return g.eg.Wait()
}

// produce is the loop of a single producer. src is owned by this goroutine.
func (g *Group) produce(ctx context.Context, id int, src PairSource, out channel.Sender[bool]) error {
	var (
		produced uint64
		reason   error
		start    = time.Now()
	)

	if g.config.OnProducerStart != nil {
		g.config.OnProducerStart(id)
	}
	g.logger.Debug("producer started", zap.Int("producer", id))

	defer func() {
		if g.config.OnProducerStop != nil {
			g.config.OnProducerStop(id, produced, reason)
		}
		g.logger.Debug("producer stopped",
			zap.Int("producer", id),
			zap.Uint64("produced", produced),
			zap.Duration("duration", time.Since(start)),
			zap.NamedError("reason", reason))
	}()

	for {
		if pfcontext.IsCanceled(ctx) {
			reason = ctx.Err()
			return nil
		}

		a, b := src.Next()
		if sendErr := out.Send(ctx, g.config.Predicate(a, b)); sendErr != nil {
			reason = sendErr
			if pferrors.IsCancellation(sendErr) {
				return nil
			}
			return pferrors.NewOperationError("sampler", fmt.Sprintf("producer[%d]", id), sendErr)
		}

		produced++
	}
}
