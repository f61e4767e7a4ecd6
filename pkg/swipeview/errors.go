package swipeview

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrCancelled indicates the user cancelled an operation (pressed back, etc.).
	// This is a normal flow control error, not an infrastructure failure.
	ErrCancelled = errors.New("operation cancelled by user")

	// ErrNotInitialized is returned by screens called before Init.
	ErrNotInitialized = errors.New("swipeview: Init has not been called")
)

// InfrastructureError represents a framework-level failure (SDL, window,
// input device) that the consuming application cannot handle at the domain
// level.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "init_sdl", "open_touch")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("swipeview: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("swipeview: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsCancelled checks if an error indicates user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
