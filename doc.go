/*
Package piflow estimates pi two ways, each spread across the available CPUs.

Series (pkg/scheduling):
  - partition: Split [0, n) into near-equal contiguous intervals
  - workerpool: One goroutine per interval, one partial result each

Sampling (pkg/streaming):
  - channel: Bounded queue with blocking sends and consumer-side close
  - sampler: Producers that classify random pairs as coprime or not

Estimation (pkg/estimate):
  - Collect: Sum exactly one result per worker
  - Tally: Count exactly quota samples
  - Estimator: Wire both engines from a config.Config

Example usage:

	import (
		"github.com/vnykmshr/piflow/pkg/config"
		"github.com/vnykmshr/piflow/pkg/estimate"
	)

	est, _ := estimate.New(config.Default())
	res, _ := est.Series(ctx) // res.Pi ~= 3.14159265
*/
package piflow
