/*
Package channel provides a bounded, backpressure-aware queue for one consumer
and any number of producers.

A BackpressureChannel has a fixed capacity. Producers calling Send are
suspended while the buffer is full, which keeps a fast producer population
from growing memory without bound.

Closing from the consumer side:

Unlike a built-in Go channel, a BackpressureChannel is closed by its
consumer. Close discards whatever is still buffered and makes every pending
and future Send return ErrChannelClosed. Producers that check the Send
error on every push therefore stop promptly once the consumer has what it
needs, without any separate stop message:

	for {
		if err := ch.Send(ctx, sample()); err != nil {
			return // ErrChannelClosed or ctx.Err()
		}
	}

ErrChannelClosed matches errors.ErrClosed from pkg/common/errors, so callers
can classify it with errors.IsCancellation.

Context Support:

Send and Receive return ctx.Err() when the context ends while they are
waiting. A Send that finds room completes without consulting the context.

Statistics:

Stats reports accepted sends, receives, sends that had to wait, and values
discarded by Close.
*/
package channel
