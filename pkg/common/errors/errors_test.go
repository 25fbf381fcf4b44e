package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestCommonErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrClosed", ErrClosed, "resource is closed"},
		{"ErrInvalidConfiguration", ErrInvalidConfiguration, "invalid configuration"},
		{"ErrWorkerFailed", ErrWorkerFailed, "worker failed"},
		{"ErrReceiveStarvation", ErrReceiveStarvation, "receive starvation"},
		{"ErrNoCoprimeSamples", ErrNoCoprimeSamples, "no coprime samples observed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "without hint",
			err: &ValidationError{
				Module: "partition",
				Field:  "workers",
				Value:  0,
				Reason: "must be positive",
			},
			want: "partition: invalid workers=0 (must be positive)",
		},
		{
			name: "with hint",
			err: &ValidationError{
				Module: "sampler",
				Field:  "producers",
				Value:  -2,
				Reason: "must be positive",
				Hint:   "use a value greater than 0",
			},
			want: "sampler: invalid producers=-2 (must be positive) - use a value greater than 0",
		},
		{
			name: "string value",
			err: &ValidationError{
				Module: "config",
				Field:  "log_level",
				Value:  "",
				Reason: "cannot be empty",
			},
			want: "config: invalid log_level= (cannot be empty)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError_Unwrap(t *testing.T) {
	verr := NewValidationError("test", "field", 0, "test")

	if verr.Unwrap() != ErrInvalidConfiguration {
		t.Errorf("Unwrap() = %v, want ErrInvalidConfiguration", verr.Unwrap())
	}

	wrapped := fmt.Errorf("dispatch: %w", verr)
	if !errors.Is(wrapped, ErrInvalidConfiguration) {
		t.Error("wrapped ValidationError should match ErrInvalidConfiguration")
	}
	if !IsValidationError(wrapped) {
		t.Error("IsValidationError should see through fmt.Errorf wrapping")
	}
}

func TestValidationError_WithHint(t *testing.T) {
	err := NewValidationError("m", "f", 1, "r")
	if got := err.WithHint("h"); got != err {
		t.Error("WithHint should return the same instance")
	}
	if err.Hint != "h" {
		t.Errorf("Hint = %q, want %q", err.Hint, "h")
	}
}

func TestOperationError(t *testing.T) {
	cause := errors.New("boom")
	err := NewOperationError("workerpool", "worker[3]", cause).WithContext("interval [6,8)")

	want := "workerpool.worker[3] failed: boom (interval [6,8))"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, cause) {
		t.Error("OperationError should wrap the cause error")
	}

	plain := NewOperationError("estimate", "Collect", ErrReceiveStarvation)
	if strings.Contains(plain.Error(), "(") {
		t.Errorf("unexpected context suffix in %q", plain.Error())
	}
}

func TestIsCancellation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"closed", ErrClosed, true},
		{"wrapped closed", fmt.Errorf("send: %w", ErrClosed), true},
		{"canceled", context.Canceled, true},
		{"deadline", context.DeadlineExceeded, true},
		{"worker failed", ErrWorkerFailed, false},
		{"random", errors.New("random"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCancellation(tt.err); got != tt.want {
				t.Errorf("IsCancellation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsFatal(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"worker failed", &OperationError{Cause: ErrWorkerFailed}, true},
		{"starvation", ErrReceiveStarvation, true},
		{"closed", ErrClosed, false},
		{"validation", NewValidationError("m", "f", 0, "r"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFatal(tt.err); got != tt.want {
				t.Errorf("IsFatal() = %v, want %v", got, tt.want)
			}
		})
	}
}
