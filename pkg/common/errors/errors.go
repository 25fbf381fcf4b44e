package errors

import (
	"context"
	"errors"
)

// Common error types used across the piflow library
var (
	// ErrClosed indicates that an operation was attempted on a closed resource
	ErrClosed = errors.New("resource is closed")

	// ErrInvalidConfiguration indicates invalid configuration parameters
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrWorkerFailed indicates that a worker stopped without producing its result
	ErrWorkerFailed = errors.New("worker failed")

	// ErrReceiveStarvation indicates that an aggregator stopped waiting for results
	// that will never arrive
	ErrReceiveStarvation = errors.New("receive starvation")

	// ErrNoCoprimeSamples indicates that no sample satisfied the coprimality test,
	// leaving the estimate undefined
	ErrNoCoprimeSamples = errors.New("no coprime samples observed")
)

// IsCancellation returns true if the error is one of the signals a producer
// treats as a request to stop: a closed consumer or a canceled context.
func IsCancellation(err error) bool {
	return errors.Is(err, ErrClosed) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

// IsFatal returns true if the error means an estimate cannot be produced
// from the results that were collected.
func IsFatal(err error) bool {
	return errors.Is(err, ErrWorkerFailed) || errors.Is(err, ErrReceiveStarvation)
}
