package estimate

import (
	"context"
	"fmt"

	pferrors "github.com/vnykmshr/piflow/pkg/common/errors"
	"github.com/vnykmshr/piflow/pkg/common/validation"
	"github.com/vnykmshr/piflow/pkg/scheduling/workerpool"
	"github.com/vnykmshr/piflow/pkg/streaming/channel"
)

// Collect receives exactly expected results and returns the sum of their
// partial sums. It returns at the first failed result with an error matching
// ErrWorkerFailed. If results is closed early, or ctx ends before every
// result has arrived, the error matches ErrReceiveStarvation.
func Collect(ctx context.Context, results <-chan workerpool.Result, expected int) (float64, error) {
	if err := validation.ValidatePositive("estimate", "expected", expected); err != nil {
		return 0, err
	}

	var sum float64
	for received := 0; received < expected; received++ {
		select {
		case r, ok := <-results:
			if !ok {
				return 0, fmt.Errorf("%w: results closed after %d of %d",
					pferrors.ErrReceiveStarvation, received, expected)
			}
			if r.Err != nil {
				if pferrors.Is(r.Err, pferrors.ErrWorkerFailed) {
					return 0, r.Err
				}
				return 0, fmt.Errorf("%w: worker %d: %w", pferrors.ErrWorkerFailed, r.WorkerID, r.Err)
			}
			sum += r.Sum
		case <-ctx.Done():
			return 0, fmt.Errorf("%w: %d of %d results: %w",
				pferrors.ErrReceiveStarvation, received, expected, ctx.Err())
		}
	}

	return sum, nil
}

// Counts is the outcome of a tally.
type Counts struct {
	// Hits is the number of samples that were true.
	Hits uint64

	// Total is the number of samples received.
	Total uint64
}

// Fraction returns Hits/Total, or 0 for an empty tally.
func (c Counts) Fraction() float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.Hits) / float64(c.Total)
}

// Tally receives exactly quota samples from src and counts the true ones.
// It never receives more than quota. If src closes or ctx ends first, the
// partial counts are returned with an error matching ErrReceiveStarvation.
func Tally(ctx context.Context, src channel.Receiver[bool], quota uint64) (Counts, error) {
	var counts Counts

	if err := validation.ValidateNonZero("estimate", "quota", quota); err != nil {
		return counts, err
	}
	if src == nil {
		return counts, validation.ValidateNotNil("estimate", "src", nil)
	}

	for counts.Total < quota {
		ok, err := src.Receive(ctx)
		if err != nil {
			return counts, fmt.Errorf("%w: %d of %d samples: %w",
				pferrors.ErrReceiveStarvation, counts.Total, quota, err)
		}
		counts.Total++
		if ok {
			counts.Hits++
		}
	}

	return counts, nil
}
