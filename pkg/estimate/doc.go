// Package estimate turns the two engines into estimates of pi.
//
// Series runs the paired Leibniz series over a fixed number of terms on a
// workerpool.Pool and gathers the partial sums with Collect:
//
//	pi = 4 * sum_{n=0}^{N-1} 2 / ((4n+1)(4n+3))
//
// Coprime runs a sampler.Group that classifies random integer pairs as
// coprime or not, counts exactly quota samples with Tally and inverts the
// probability that two random integers are coprime:
//
//	pi ~= sqrt(6 / fraction)
//
// Both are exposed through an Estimator configured from config.Config:
//
//	est, err := estimate.New(config.Default(), estimate.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	res, err := est.Series(ctx)
package estimate
