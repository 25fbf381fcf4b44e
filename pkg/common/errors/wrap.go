package errors

import "errors"

// Is is errors.Is, re-exported so callers need a single errors import.
func Is(err, target error) bool { return errors.Is(err, target) }

// As is errors.As, re-exported so callers need a single errors import.
func As(err error, target any) bool { return errors.As(err, target) }
