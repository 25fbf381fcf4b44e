// Package partition splits a finite index range into contiguous, near-equal
// sub-ranges, one per worker.
package partition

import (
	"fmt"

	"github.com/vnykmshr/piflow/pkg/common/validation"
)

// Interval is the half-open index range [Start, End).
type Interval struct {
	Start uint64
	End   uint64
}

// Len returns the number of indices in the interval.
func (iv Interval) Len() uint64 {
	return iv.End - iv.Start
}

// Empty reports whether the interval contains no indices.
func (iv Interval) Empty() bool {
	return iv.Start == iv.End
}

// String formats the interval as [start,end).
func (iv Interval) String() string {
	return fmt.Sprintf("[%d,%d)", iv.Start, iv.End)
}

// Partition divides [0, n) into exactly workers intervals, in order.
//
// The first n%workers intervals hold n/workers+1 indices and the rest hold
// n/workers, so sizes never differ by more than one and the intervals
// concatenate back to [0, n). A non-positive worker count is rejected with
// a ValidationError before any division takes place. n == 0 is valid and
// yields workers empty intervals.
func Partition(n uint64, workers int) ([]Interval, error) {
	if err := validation.ValidatePositive("partition", "workers", workers); err != nil {
		return nil, err
	}

	base := n / uint64(workers)
	remainder := n % uint64(workers)

	intervals := make([]Interval, workers)
	var start uint64
	for i := range intervals {
		size := base
		if uint64(i) < remainder {
			size++
		}
		intervals[i] = Interval{Start: start, End: start + size}
		start += size
	}

	return intervals, nil
}
