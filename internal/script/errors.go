package script

import "errors"

// Errors for script execution.
var (
	// ErrStateClosed is returned when operating on a closed host.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrExecutionTimeout is returned when a script exceeds its timeout.
	ErrExecutionTimeout = errors.New("lua execution timeout")
)

// ScriptError wraps a Lua compile or runtime error with its source.
type ScriptError struct {
	// Source is the script path or chunk name.
	Source string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ScriptError) Error() string {
	return "script " + e.Source + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ScriptError) Unwrap() error {
	return e.Err
}
