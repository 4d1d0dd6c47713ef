package event

import "time"

// Callback is a subscriber function.
//
// It receives the arguments passed to Trigger, in order, and returns one
// result. A non-nil error aborts the remaining callbacks of the dispatch.
type Callback[R any] func(args ...any) (R, error)

// Func adapts a callback that cannot fail.
func Func[R any](fn func(args ...any) R) Callback[R] {
	if fn == nil {
		return nil
	}
	return func(args ...any) (R, error) {
		return fn(args...), nil
	}
}

// Stats contains emitter statistics.
type Stats struct {
	// Triggers is the total number of Trigger calls.
	Triggers uint64

	// Misses is the number of triggers that fired no callback.
	Misses uint64

	// CallbacksInvoked is the total number of callback executions.
	CallbacksInvoked uint64

	// CallbackErrors is the number of callbacks that returned errors.
	CallbackErrors uint64

	// TotalDuration is the cumulative time spent in callbacks.
	TotalDuration time.Duration

	// Registrations is the current number of registered callbacks.
	Registrations int

	// Namespaces is the current number of namespaces.
	Namespaces int
}
