package event

import (
	"errors"
	"strconv"
)

// Sentinel errors for the emitter.
var (
	// ErrNilCallback is reported when a nil callback is passed to On.
	ErrNilCallback = errors.New("callback cannot be nil")
)

// CallbackError wraps an error returned by a callback with dispatch context.
type CallbackError struct {
	// Name is the raw name passed to Trigger.
	Name string

	// Namespace is the namespace the failing callback was registered in.
	Namespace string

	// Value is the event value that was dispatched.
	Value string

	// Index is the position of the failing callback in its sequence.
	Index int

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *CallbackError) Error() string {
	return "callback " + strconv.Itoa(e.Index) + " for " + e.Value + "." + e.Namespace +
		" (trigger " + strconv.Quote(e.Name) + "): " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *CallbackError) Unwrap() error {
	return e.Err
}
