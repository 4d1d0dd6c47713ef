// Package event provides the namespaced event emitter.
//
// An Emitter is an in-process, synchronous publish/subscribe registry.
// Subscribers register callbacks under event names; publishers trigger a name
// and every matching callback runs in the caller's goroutine before Trigger
// returns.
//
// # Names
//
// Names use the form "value.namespace". The namespace is optional and
// defaults to "base". A single string may carry several names separated by
// spaces, commas or slashes (see package names):
//
//	em.On("click.menu, click.toolbar", cb)   // two registrations
//	em.On("resize", cb)                      // namespace "base"
//
// # Matching
//
// Triggering a name without a namespace runs the value's callbacks in every
// namespace. Triggering a namespaced name runs only that namespace:
//
//	em.Trigger("click")        // menu, then toolbar callbacks
//	em.Trigger("click.menu")   // menu callbacks only
//
// Within one (namespace, value) pair callbacks run in registration order. The
// same callback may be registered more than once and then runs once per
// registration. Namespaces are visited in the order of their first
// registration.
//
// # Results
//
// Trigger returns the result of the first callback it invokes. Results from
// later callbacks are discarded. When nothing fires, ok is false.
//
// # Removal
//
//	em.Off("click.menu")   // click in menu only
//	em.Off("click.")       // click in every namespace
//	em.Off(".menu")        // every event in menu
//
// The registry never keeps empty sequences or empty namespaces. Removing an
// unknown name is a no-op.
//
// # Errors
//
// A callback that returns an error stops the dispatch. Trigger returns the
// error wrapped in a *CallbackError. Panics are not recovered and reach the
// caller of Trigger.
//
// # Thread Safety
//
// Emitter is safe for concurrent use. Trigger copies each callback sequence
// before running it, so callbacks may register or remove names (including
// their own) without disturbing the dispatch in progress.
package event
