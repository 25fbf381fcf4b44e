/*
Package workerpool runs a pure per-index function over a finite index range
using a fixed number of worker goroutines, one per partition.

Dispatch splits [0, n) with partition.Partition, gives each worker exactly
one interval, and lets every worker reduce its interval into a local sum.
Workers share nothing but the result channel, which is buffered to the
worker count, so each worker's single send completes without waiting for
the receiver.

Basic usage:

	pool, err := workerpool.New(runtime.NumCPU())
	if err != nil {
		return err
	}

	results, err := pool.Dispatch(ctx, 1_000_000, func(i uint64) float64 {
		return 1 / float64(i+1)
	})
	if err != nil {
		return err
	}

	var total float64
	for result := range results {
		if result.Failed() {
			return result.Err
		}
		total += result.Sum
	}

Result Delivery:

Every dispatched worker delivers exactly one Result: a sum on success, or
an error wrapping errors.ErrWorkerFailed when the term function panicked
or the context ended mid-interval. A failed worker therefore never leaves
its receiver waiting. Completion order between workers is unspecified;
sums are combined by addition, so arrival order does not matter.

Configuration Options:

	config := workerpool.Config{
		WorkerCount: 8,
		CheckEvery:  1 << 12,
		Logger:      logger,
		OnWorkerStart: func(workerID int) {
			active.Inc()
		},
		OnWorkerStop: func(result workerpool.Result) {
			active.Dec()
		},
	}
	pool, err := workerpool.NewWithConfig(config)

Hooks run on the worker goroutine and must be safe for concurrent use.
*/
package workerpool
