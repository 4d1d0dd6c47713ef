package event

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/dshills/nsemit/internal/event/names"
)

// Emitter is a synchronous publish/subscribe registry with namespaced names.
//
// Callbacks are registered under "value" or "value.namespace" and are invoked
// by Trigger in registration order. Emitter is safe for concurrent use; the
// registry lock is never held while a callback runs, so callbacks may call
// On, Off and Trigger on the same emitter.
type Emitter[R any] struct {
	mu  sync.RWMutex
	reg *registry[Callback[R]]

	config emitterConfig
	log    zerolog.Logger

	// Stats
	triggers    atomic.Uint64
	misses      atomic.Uint64
	invoked     atomic.Uint64
	failed      atomic.Uint64
	totalTimeNs atomic.Int64
}

// New creates an empty emitter.
func New[R any](opts ...Option) *Emitter[R] {
	config := defaultEmitterConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return &Emitter[R]{
		reg:    newRegistry[Callback[R]](),
		config: config,
		log:    config.logger,
	}
}

// On registers cb under every name in names.
//
// names may hold several tokens separated by spaces, commas or slashes. Empty
// tokens are skipped. A nil callback registers nothing. On returns the emitter
// so calls can be chained.
func (e *Emitter[R]) On(raw string, cb Callback[R]) *Emitter[R] {
	if cb == nil {
		e.log.Warn().Err(ErrNilCallback).Str("names", raw).Msg("ignoring registration")
		return e
	}

	resolved := names.Resolve(raw)

	e.mu.Lock()
	defer e.mu.Unlock()

	for _, n := range resolved {
		if n.IsEmpty() {
			continue
		}
		e.reg.add(n.Namespace, n.Value, cb)
		e.log.Debug().
			Str("namespace", n.Namespace).
			Str("value", n.Value).
			Msg("callback registered")
	}

	return e
}

// Off removes registrations for every name in names.
//
//   - "click.menu" removes click from namespace menu
//   - "click" or "click." removes click from every namespace
//   - ".menu" removes namespace menu entirely
//
// Unknown names are ignored. Namespaces left without events are removed.
// Off returns the emitter so calls can be chained.
func (e *Emitter[R]) Off(raw string) *Emitter[R] {
	resolved := names.Resolve(raw)

	e.mu.Lock()
	defer e.mu.Unlock()

	for _, n := range resolved {
		switch {
		case n.IsEmpty():
			// Nothing addressed
			continue
		case !n.IsDefault() && n.Value == "":
			if e.reg.removeNamespace(n.Namespace) {
				e.log.Debug().Str("namespace", n.Namespace).Msg("namespace removed")
			}
		case n.IsDefault():
			if count := e.reg.removeEventEverywhere(n.Value); count > 0 {
				e.log.Debug().Str("value", n.Value).Int("namespaces", count).Msg("event removed")
			}
		default:
			if e.reg.removeEvent(n.Namespace, n.Value) {
				e.log.Debug().Str("namespace", n.Namespace).Str("value", n.Value).Msg("event removed")
			}
		}

		if pruned := e.reg.prune(); pruned > 0 {
			e.log.Trace().Int("keys", pruned).Msg("registry pruned")
		}
	}

	return e
}

// Trigger invokes the callbacks registered for the first name in raw.
//
// A default-namespace name runs the value's callbacks in every namespace,
// visiting namespaces in the order they were first registered. An explicit
// namespace runs only that namespace's callbacks. A namespace that exists but
// lacks the value fires nothing.
//
// The result of the first callback invoked is returned; later results are
// discarded. ok is false when no callback returned successfully. If a
// callback returns an error, the remaining callbacks are skipped and the error
// is returned as a *CallbackError. Panics are not recovered.
func (e *Emitter[R]) Trigger(raw string, args ...any) (result R, ok bool, err error) {
	e.triggers.Add(1)

	n := names.First(raw)
	if n.IsEmpty() {
		e.misses.Add(1)
		return result, false, nil
	}

	e.mu.RLock()
	var targets []string
	switch {
	case n.IsDefault():
		targets = e.reg.namespaceOrder()
	case e.reg.hasNamespace(n.Namespace):
		targets = []string{n.Namespace}
	}
	e.mu.RUnlock()

	invoked := 0
	for _, ns := range targets {
		e.mu.RLock()
		cbs := e.reg.snapshot(ns, n.Value)
		e.mu.RUnlock()

		for i, cb := range cbs {
			res, cbErr := e.invoke(cb, args)
			invoked++

			if cbErr != nil {
				e.log.Debug().
					Err(cbErr).
					Str("namespace", ns).
					Str("value", n.Value).
					Int("index", i).
					Msg("callback failed")
				return result, ok, &CallbackError{
					Name:      raw,
					Namespace: ns,
					Value:     n.Value,
					Index:     i,
					Err:       cbErr,
				}
			}

			if !ok {
				result = res
				ok = true
			}
		}
	}

	if invoked == 0 {
		e.misses.Add(1)
		e.log.Trace().Str("name", n.String()).Msg("no callbacks matched")
	}

	return result, ok, nil
}

// invoke runs one callback and records stats.
func (e *Emitter[R]) invoke(cb Callback[R], args []any) (R, error) {
	e.invoked.Add(1)

	var start time.Time
	if e.config.metricsEnabled {
		start = time.Now()
	}

	res, err := cb(args...)

	if e.config.metricsEnabled {
		e.totalTimeNs.Add(time.Since(start).Nanoseconds())
	}
	if err != nil {
		e.failed.Add(1)
	}

	return res, err
}

// Count returns the number of callbacks a Trigger of raw would invoke.
func (e *Emitter[R]) Count(raw string) int {
	n := names.First(raw)
	if n.IsEmpty() {
		return 0
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	if !n.IsDefault() {
		return e.reg.count(n.Namespace, n.Value)
	}

	total := 0
	for _, ns := range e.reg.order {
		total += e.reg.count(ns, n.Value)
	}
	return total
}

// CountIn returns the number of callbacks for value in exactly namespace.
// Unlike Count, the default namespace is not widened to every namespace.
func (e *Emitter[R]) CountIn(namespace, value string) int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.reg.count(namespace, value)
}

// Has returns true if a Trigger of raw would invoke at least one callback.
func (e *Emitter[R]) Has(raw string) bool {
	return e.Count(raw) > 0
}

// Namespaces returns the registered namespaces in insertion order.
func (e *Emitter[R]) Namespaces() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.reg.namespaceOrder()
}

// Events returns the event values registered in namespace, in insertion order.
func (e *Emitter[R]) Events(namespace string) []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.reg.eventOrder(namespace)
}

// Len returns the total number of registered callbacks.
func (e *Emitter[R]) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.reg.size()
}

// Clear removes all registrations.
func (e *Emitter[R]) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.reg.reset()
	e.log.Debug().Msg("registry cleared")
}

// Stats returns emitter statistics.
// Counters are read without the registry lock and may be slightly
// inconsistent with each other while triggers are running.
func (e *Emitter[R]) Stats() Stats {
	e.mu.RLock()
	registrations := e.reg.size()
	namespaces := len(e.reg.order)
	e.mu.RUnlock()

	return Stats{
		Triggers:         e.triggers.Load(),
		Misses:           e.misses.Load(),
		CallbacksInvoked: e.invoked.Load(),
		CallbackErrors:   e.failed.Load(),
		TotalDuration:    time.Duration(e.totalTimeNs.Load()),
		Registrations:    registrations,
		Namespaces:       namespaces,
	}
}

// ResetStats resets all counters to zero.
func (e *Emitter[R]) ResetStats() {
	e.triggers.Store(0)
	e.misses.Store(0)
	e.invoked.Store(0)
	e.failed.Store(0)
	e.totalTimeNs.Store(0)
}
