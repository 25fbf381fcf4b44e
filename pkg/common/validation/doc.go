// Package validation provides common validation utilities for configuration
// parameters across the piflow library.
//
// Every failure is a *errors.ValidationError, so callers can match it with
// errors.Is(err, errors.ErrInvalidConfiguration).
package validation
