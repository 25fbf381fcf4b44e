// Package context holds small non-blocking helpers over context.Context
// used by the engines' hot loops.
package context

import (
	"context"
	"errors"
)

// IsCanceled reports whether ctx is done for any reason. It never blocks.
func IsCanceled(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

// IsTimedOut reports whether ctx ended because its deadline passed.
func IsTimedOut(ctx context.Context) bool {
	return errors.Is(ctx.Err(), context.DeadlineExceeded)
}
