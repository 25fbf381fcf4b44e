package channel

import (
	"context"
	"errors"
	"fmt"
	"sync"

	pferrors "github.com/vnykmshr/piflow/pkg/common/errors"
	"github.com/vnykmshr/piflow/pkg/common/validation"
)

// ErrChannelFull is returned by TrySend when the buffer has no free slot.
var ErrChannelFull = errors.New("channel buffer is full")

// ErrChannelClosed is returned when attempting to operate on a closed channel.
// It matches errors.ErrClosed.
var ErrChannelClosed = fmt.Errorf("channel: %w", pferrors.ErrClosed)

// Sender is the producer side of a bounded queue.
type Sender[T any] interface {
	Send(ctx context.Context, value T) error
}

// Receiver is the consumer side of a bounded queue.
type Receiver[T any] interface {
	Receive(ctx context.Context) (T, error)
}

// Stats holds counters describing channel traffic.
type Stats struct {
	// SendCount is the number of values accepted into the buffer.
	SendCount int64

	// ReceiveCount is the number of values handed to the consumer.
	ReceiveCount int64

	// BlockedSends is the number of sends that found the buffer full and had to wait.
	BlockedSends int64

	// DiscardedCount is the number of buffered values dropped by Close.
	DiscardedCount int64
}

// Config holds configuration for a BackpressureChannel.
type Config struct {
	// BufferSize is the fixed capacity of the channel. Must be greater than 0.
	BufferSize int

	// OnBlock is called, with the channel lock held, each time a send finds the buffer full.
	OnBlock func()
}

// BackpressureChannel is a fixed-capacity FIFO shared by any number of
// producers and one consumer. Send blocks while the buffer is full. Close is
// called by the consumer: it discards whatever is buffered and makes every
// pending and future Send fail with ErrChannelClosed, which is how producers
// learn that nobody is listening anymore.
type BackpressureChannel[T any] struct {
	config Config

	mu       sync.Mutex
	notFull  *sync.Cond
	notEmpty *sync.Cond

	buffer []T
	head   int
	count  int
	closed bool

	stats Stats
}

// New creates a BackpressureChannel with the given capacity.
func New[T any](bufferSize int) (*BackpressureChannel[T], error) {
	return NewWithConfig[T](Config{BufferSize: bufferSize})
}

// NewWithConfig creates a BackpressureChannel with the specified configuration.
func NewWithConfig[T any](config Config) (*BackpressureChannel[T], error) {
	if err := validation.ValidatePositive("channel", "buffer_size", config.BufferSize); err != nil {
		return nil, err
	}

	ch := &BackpressureChannel[T]{
		config: config,
		buffer: make([]T, config.BufferSize),
	}
	ch.notFull = sync.NewCond(&ch.mu)
	ch.notEmpty = sync.NewCond(&ch.mu)

	return ch, nil
}

// Send appends value, waiting while the buffer is full. It returns
// ErrChannelClosed if the channel is closed before or while waiting, and the
// context error if ctx ends first.
func (ch *BackpressureChannel[T]) Send(ctx context.Context, value T) error {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	if ch.closed {
		return ErrChannelClosed
	}

	if ch.count == len(ch.buffer) {
		ch.stats.BlockedSends++
		if ch.config.OnBlock != nil {
			ch.config.OnBlock()
		}

		stop := ch.wakeOnDone(ctx, ch.notFull)
		defer stop()

		for ch.count == len(ch.buffer) && !ch.closed {
			if err := ctx.Err(); err != nil {
				return err
			}
			ch.notFull.Wait()
		}

		if ch.closed {
			return ErrChannelClosed
		}
	}

	ch.pushLocked(value)
	return nil
}

// TrySend appends value without waiting. It returns ErrChannelFull when the
// buffer has no free slot.
func (ch *BackpressureChannel[T]) TrySend(value T) error {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	if ch.closed {
		return ErrChannelClosed
	}
	if ch.count == len(ch.buffer) {
		return ErrChannelFull
	}

	ch.pushLocked(value)
	return nil
}

// Receive removes the oldest value, waiting while the buffer is empty.
func (ch *BackpressureChannel[T]) Receive(ctx context.Context) (T, error) {
	var zero T

	ch.mu.Lock()
	defer ch.mu.Unlock()

	if ch.count == 0 && !ch.closed {
		stop := ch.wakeOnDone(ctx, ch.notEmpty)
		defer stop()

		for ch.count == 0 && !ch.closed {
			if err := ctx.Err(); err != nil {
				return zero, err
			}
			ch.notEmpty.Wait()
		}
	}

	if ch.closed {
		return zero, ErrChannelClosed
	}

	value := ch.buffer[ch.head]
	ch.buffer[ch.head] = zero
	ch.head = (ch.head + 1) % len(ch.buffer)
	ch.count--
	ch.stats.ReceiveCount++
	ch.notFull.Signal()

	return value, nil
}

// Close discards every buffered value and wakes all waiting senders and
// receivers. Closing twice is a no-op.
func (ch *BackpressureChannel[T]) Close() error {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	if ch.closed {
		return nil
	}
	ch.closed = true

	var zero T
	for i := range ch.buffer {
		ch.buffer[i] = zero
	}
	ch.stats.DiscardedCount += int64(ch.count)
	ch.count = 0

	ch.notFull.Broadcast()
	ch.notEmpty.Broadcast()

	return nil
}

// IsClosed returns true if the channel is closed.
func (ch *BackpressureChannel[T]) IsClosed() bool {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	return ch.closed
}

// Len returns the current number of buffered elements.
func (ch *BackpressureChannel[T]) Len() int {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	return ch.count
}

// Cap returns the buffer capacity.
func (ch *BackpressureChannel[T]) Cap() int {
	return len(ch.buffer)
}

// Stats returns a snapshot of the channel counters.
func (ch *BackpressureChannel[T]) Stats() Stats {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	return ch.stats
}

// pushLocked adds a value at the tail (must hold lock).
func (ch *BackpressureChannel[T]) pushLocked(value T) {
	tail := (ch.head + ch.count) % len(ch.buffer)
	ch.buffer[tail] = value
	ch.count++
	ch.stats.SendCount++
	ch.notEmpty.Signal()
}

// wakeOnDone broadcasts on cond when ctx ends so a waiter can observe
// ctx.Err. The returned func must be called once the wait is over.
func (ch *BackpressureChannel[T]) wakeOnDone(ctx context.Context, cond *sync.Cond) func() bool {
	return context.AfterFunc(ctx, func() {
		ch.mu.Lock()
		defer ch.mu.Unlock()
		cond.Broadcast()
	})
}
