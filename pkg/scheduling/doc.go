/*
Package scheduling provides the finite-range side of piflow: a range is cut
into intervals and each interval is reduced by its own goroutine.

  - partition: Deterministic, load-balanced split of [0, n)
  - workerpool: Fan-out over intervals, fan-in of one Result per worker

Partition:

	intervals, _ := partition.Partition(10, 3) // [0,4) [4,7) [7,10)

Worker Pool:

	pool, _ := workerpool.New(4)
	results, _ := pool.Dispatch(ctx, 1_000_000, term)

	for r := range results {
		if r.Err != nil {
			// the worker panicked or was canceled
		}
		total += r.Sum
	}

Workers share nothing but the results channel, which is buffered to the
worker count so no worker ever blocks on delivery.
*/
package scheduling
