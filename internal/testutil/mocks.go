package testutil

import (
	"context"
	"sync"

	pferrors "github.com/vnykmshr/piflow/pkg/common/errors"
)

// PairSequence replays a fixed list of pairs, wrapping around at the end.
// It satisfies sampler.PairSource without importing it.
type PairSequence struct {
	pairs [][2]uint64
	next  int
}

// NewPairSequence creates a PairSequence over pairs. It panics on an empty list.
func NewPairSequence(pairs ...[2]uint64) *PairSequence {
	if len(pairs) == 0 {
		panic("testutil: empty pair sequence")
	}
	return &PairSequence{pairs: pairs}
}

// Next returns the next pair in the sequence.
func (s *PairSequence) Next() (uint64, uint64) {
	p := s.pairs[s.next]
	s.next = (s.next + 1) % len(s.pairs)
	return p[0], p[1]
}

// SliceReceiver hands out a fixed slice of values and then reports the
// source as closed. It counts every Receive call.
type SliceReceiver[T any] struct {
	mu       sync.Mutex
	values   []T
	pos      int
	received int
}

// NewSliceReceiver creates a SliceReceiver over values.
func NewSliceReceiver[T any](values ...T) *SliceReceiver[T] {
	return &SliceReceiver[T]{values: values}
}

// Receive returns the next value, or ErrClosed once the slice is exhausted.
func (r *SliceReceiver[T]) Receive(ctx context.Context) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	if r.pos >= len(r.values) {
		return zero, pferrors.ErrClosed
	}
	v := r.values[r.pos]
	r.pos++
	r.received++
	return v, nil
}

// Received returns how many values were handed out.
func (r *SliceReceiver[T]) Received() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.received
}
