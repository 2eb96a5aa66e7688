package listkit

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrOutOfRange indicates an index outside [0, Count()).
	// The call that returned it left the list untouched.
	ErrOutOfRange = errors.New("index out of range")

	// ErrInvalidParameter indicates a rejected geometry value, such as a
	// non-positive item height or a negative spacing.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrCancelled indicates the user dismissed a host screen (pressed
	// escape, closed a dialog). This is flow control, not a failure.
	ErrCancelled = errors.New("operation cancelled by user")
)

func outOfRange(op string, index, count int) error {
	return fmt.Errorf("%s: %w: index %d, count %d", op, ErrOutOfRange, index, count)
}

func invalidParameter(op string, name string, value int) error {
	return fmt.Errorf("%s: %w: %s=%d", op, ErrInvalidParameter, name, value)
}

// InfrastructureError represents a host-level error that indicates
// something is wrong beneath the widget (rendering failed, SDL crashed,
// font missing, etc.). The widget itself never produces one.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "render", "load_font")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("listkit: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("listkit: %s", e.Op)
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

// IsOutOfRange checks if an error reports an invalid index.
func IsOutOfRange(err error) bool {
	return errors.Is(err, ErrOutOfRange)
}
