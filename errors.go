package dynproxy

import (
	"errors"
	"fmt"
)

// Dispatch errors.
var (
	// ErrNilDelegate is returned when From is given a nil delegate.
	ErrNilDelegate = errors.New("delegate cannot be nil")

	// ErrMethodNotFound is returned when the delegate has no exported
	// method with the invoked name.
	ErrMethodNotFound = errors.New("method not found")
)

// InvocationError reports a failed dispatch against the delegate. It wraps
// the underlying cause, so callers can tell a missing method apart from a
// failing invocation with errors.Is and errors.As.
type InvocationError struct {
	Method string
	Err    error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("invoking %s: %v", e.Method, e.Err)
}

func (e *InvocationError) Unwrap() error { return e.Err }
