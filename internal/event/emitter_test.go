package event

import (
	"errors"
	"sync"
	"testing"
)

// recorder collects callback invocations for assertions.
type recorder struct {
	mu    sync.Mutex
	calls []string
	args  [][]any
}

func (r *recorder) callback(label string) Callback[string] {
	return func(args ...any) (string, error) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.calls = append(r.calls, label)
		r.args = append(r.args, args)
		return label, nil
	}
}

func (r *recorder) got() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]string, len(r.calls))
	copy(result, r.calls)
	return result
}

func TestNew(t *testing.T) {
	e := New[string]()

	if e == nil {
		t.Fatal("expected non-nil emitter")
	}
	if e.Len() != 0 {
		t.Errorf("expected 0 registrations, got %d", e.Len())
	}
	if e.Namespaces() != nil {
		t.Errorf("expected no namespaces, got %v", e.Namespaces())
	}
}

func TestEmitter_Trigger_Basic(t *testing.T) {
	e := New[string]()
	rec := &recorder{}

	e.On("click", rec.callback("a"))

	result, ok, err := e.Trigger("click", 1, "two")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected callback to fire")
	}
	if result != "a" {
		t.Errorf("expected result %q, got %q", "a", result)
	}
	if !equalStrings(rec.got(), []string{"a"}) {
		t.Fatalf("expected one invocation, got %v", rec.got())
	}
	if len(rec.args[0]) != 2 || rec.args[0][0] != 1 || rec.args[0][1] != "two" {
		t.Errorf("unexpected args: %v", rec.args[0])
	}
}

func TestEmitter_Trigger_NoArgs(t *testing.T) {
	e := New[string]()
	rec := &recorder{}

	e.On("click", rec.callback("a"))
	e.Trigger("click")

	if len(rec.args) != 1 || len(rec.args[0]) != 0 {
		t.Errorf("expected empty argument list, got %v", rec.args)
	}
}

func TestEmitter_Trigger_Duplicates(t *testing.T) {
	e := New[int]()
	calls := 0
	cb := Func(func(args ...any) int {
		calls++
		return calls
	})

	e.On("click", cb).On("click", cb)

	result, ok, _ := e.Trigger("click")
	if calls != 2 {
		t.Errorf("expected 2 invocations, got %d", calls)
	}
	if !ok || result != 1 {
		t.Errorf("expected first result 1, got %d (ok=%v)", result, ok)
	}
}

func TestEmitter_Trigger_RegistrationOrder(t *testing.T) {
	e := New[string]()
	rec := &recorder{}

	e.On("click", rec.callback("first"))
	e.On("click", rec.callback("second"))
	e.On("click", rec.callback("third"))

	result, _, _ := e.Trigger("click")

	if !equalStrings(rec.got(), []string{"first", "second", "third"}) {
		t.Errorf("unexpected order: %v", rec.got())
	}
	if result != "first" {
		t.Errorf("expected first responder result, got %q", result)
	}
}

func TestEmitter_Trigger_Namespaces(t *testing.T) {
	e := New[string]()
	rec := &recorder{}

	e.On("click.menu", rec.callback("menu"))
	e.On("click.toolbar", rec.callback("toolbar"))

	result, _, _ := e.Trigger("click")
	if !equalStrings(rec.got(), []string{"menu", "toolbar"}) {
		t.Errorf("expected both namespaces in insertion order, got %v", rec.got())
	}
	if result != "menu" {
		t.Errorf("expected result from first namespace, got %q", result)
	}

	rec = &recorder{}
	e = New[string]()
	e.On("click.menu", rec.callback("menu"))
	e.On("click.toolbar", rec.callback("toolbar"))

	result, _, _ = e.Trigger("click.menu")
	if !equalStrings(rec.got(), []string{"menu"}) {
		t.Errorf("expected only menu, got %v", rec.got())
	}
	if result != "menu" {
		t.Errorf("expected menu result, got %q", result)
	}
}

func TestEmitter_Trigger_DefaultIncludesBase(t *testing.T) {
	e := New[string]()
	rec := &recorder{}

	e.On("click.menu", rec.callback("menu"))
	e.On("click", rec.callback("base"))

	e.Trigger("click")
	if !equalStrings(rec.got(), []string{"menu", "base"}) {
		t.Errorf("unexpected invocations: %v", rec.got())
	}
}

func TestEmitter_Trigger_NothingRegistered(t *testing.T) {
	e := New[string]()

	result, ok, err := e.Trigger("click")
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected ok=false when nothing fires")
	}
	if result != "" {
		t.Errorf("expected zero result, got %q", result)
	}
}

func TestEmitter_Trigger_NamespaceWithoutValue(t *testing.T) {
	e := New[string]()
	rec := &recorder{}

	e.On("hover.menu", rec.callback("hover"))

	_, ok, err := e.Trigger("click.menu")
	if err != nil {
		t.Errorf("expected missing event in existing namespace to be a no-op, got %v", err)
	}
	if ok {
		t.Error("expected ok=false")
	}
	if len(rec.got()) != 0 {
		t.Errorf("expected no invocations, got %v", rec.got())
	}
}

func TestEmitter_Trigger_UnknownNamespace(t *testing.T) {
	e := New[string]()
	rec := &recorder{}

	e.On("click.menu", rec.callback("menu"))

	if _, ok, _ := e.Trigger("click.toolbar"); ok {
		t.Error("expected unknown namespace not to fire")
	}
	if len(rec.got()) != 0 {
		t.Errorf("expected no invocations, got %v", rec.got())
	}
}

func TestEmitter_Trigger_OnlyFirstName(t *testing.T) {
	e := New[string]()
	rec := &recorder{}

	e.On("a", rec.callback("a"))
	e.On("b", rec.callback("b"))

	e.Trigger("a, b")
	if !equalStrings(rec.got(), []string{"a"}) {
		t.Errorf("expected only the first name to be dispatched, got %v", rec.got())
	}
}

func TestEmitter_Trigger_EmptyName(t *testing.T) {
	e := New[string]()
	rec := &recorder{}

	e.On("click", rec.callback("a"))

	for _, raw := range []string{"", ".", "!!!"} {
		if _, ok, _ := e.Trigger(raw); ok {
			t.Errorf("Trigger(%q) fired a callback", raw)
		}
	}
}

func TestEmitter_Trigger_DoesNotMutate(t *testing.T) {
	e := New[string]()
	rec := &recorder{}

	e.On("click.menu", rec.callback("menu"))
	before := e.Len()

	e.Trigger("click")
	e.Trigger("missing")
	e.Trigger("click.toolbar")

	if e.Len() != before {
		t.Errorf("expected %d registrations after dispatch, got %d", before, e.Len())
	}
	if !equalStrings(e.Namespaces(), []string{"menu"}) {
		t.Errorf("unexpected namespaces: %v", e.Namespaces())
	}
}

func TestEmitter_On_MultiName(t *testing.T) {
	e := New[string]()
	rec := &recorder{}

	e.On("a, b/c", rec.callback("cb"))

	for _, name := range []string{"a", "b", "c"} {
		if _, ok, _ := e.Trigger(name); !ok {
			t.Errorf("expected %q to fire", name)
		}
	}
	if len(rec.got()) != 3 {
		t.Errorf("expected 3 invocations, got %d", len(rec.got()))
	}
	if !equalStrings(e.Events("base"), []string{"a", "b", "c"}) {
		t.Errorf("unexpected events in base: %v", e.Events("base"))
	}
	if e.Len() != 3 {
		t.Errorf("expected empty tokens to be skipped, got %d registrations", e.Len())
	}
}

func TestEmitter_On_NilCallback(t *testing.T) {
	e := New[string]()

	if e.On("click", nil) != e {
		t.Error("expected On to return the emitter")
	}
	if e.Len() != 0 {
		t.Errorf("expected nil callback to be ignored, got %d registrations", e.Len())
	}
}

func TestEmitter_Off_Namespaced(t *testing.T) {
	e := New[string]()
	rec := &recorder{}

	e.On("click.menu", rec.callback("menu"))
	e.On("click.toolbar", rec.callback("toolbar"))

	e.Off("click.menu")

	e.Trigger("click")
	if !equalStrings(rec.got(), []string{"toolbar"}) {
		t.Errorf("expected only toolbar to remain, got %v", rec.got())
	}
	if !equalStrings(e.Namespaces(), []string{"toolbar"}) {
		t.Errorf("expected menu namespace to be pruned, got %v", e.Namespaces())
	}
}

func TestEmitter_Off_Everywhere(t *testing.T) {
	e := New[string]()
	rec := &recorder{}

	e.On("click.menu", rec.callback("menu"))
	e.On("click.toolbar hover.toolbar", rec.callback("toolbar"))
	e.On("click", rec.callback("base"))

	e.Off("click.")

	if e.Has("click") {
		t.Error("expected click to be removed from every namespace")
	}
	for _, ns := range e.Namespaces() {
		for _, v := range e.Events(ns) {
			if v == "click" {
				t.Errorf("namespace %q still holds click", ns)
			}
		}
	}
	if !equalStrings(e.Namespaces(), []string{"toolbar"}) {
		t.Errorf("expected emptied namespaces to be absent, got %v", e.Namespaces())
	}
	if !e.Has("hover.toolbar") {
		t.Error("expected hover.toolbar to be kept")
	}
}

func TestEmitter_Off_BareValue(t *testing.T) {
	e := New[string]()
	rec := &recorder{}

	e.On("click.menu click", rec.callback("x"))
	e.Off("click")

	if e.Len() != 0 {
		t.Errorf("expected bare value to remove everywhere, got %d registrations", e.Len())
	}
}

func TestEmitter_Off_Namespace(t *testing.T) {
	e := New[string]()
	rec := &recorder{}

	e.On("click.menu hover.menu open.menu", rec.callback("menu"))
	e.On("click.toolbar", rec.callback("toolbar"))

	e.Off(".menu")

	if !equalStrings(e.Namespaces(), []string{"toolbar"}) {
		t.Errorf("expected menu namespace to be removed, got %v", e.Namespaces())
	}
	if e.Events("menu") != nil {
		t.Errorf("expected no events in removed namespace, got %v", e.Events("menu"))
	}
}

func TestEmitter_Off_Unknown(t *testing.T) {
	e := New[string]()
	rec := &recorder{}

	e.On("click.menu", rec.callback("menu"))

	e.Off("missing").Off("click.toolbar").Off(".toolbar").Off("").Off(".")

	if e.Len() != 1 {
		t.Errorf("expected unknown removals to be no-ops, got %d registrations", e.Len())
	}
}

func TestEmitter_Off_MultiName(t *testing.T) {
	e := New[string]()
	rec := &recorder{}

	e.On("a b c.x", rec.callback("cb"))
	e.Off("a/c.x")

	if !equalStrings(e.Namespaces(), []string{"base"}) {
		t.Errorf("unexpected namespaces: %v", e.Namespaces())
	}
	if !equalStrings(e.Events("base"), []string{"b"}) {
		t.Errorf("unexpected events: %v", e.Events("base"))
	}
}

func TestEmitter_Trigger_SelfUnregister(t *testing.T) {
	e := New[string]()
	var order []string

	e.On("click", func(args ...any) (string, error) {
		order = append(order, "first")
		e.Off("click")
		return "first", nil
	})
	e.On("click", func(args ...any) (string, error) {
		order = append(order, "second")
		return "second", nil
	})

	result, ok, err := e.Trigger("click")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || result != "first" {
		t.Errorf("expected first result, got %q (ok=%v)", result, ok)
	}
	if !equalStrings(order, []string{"first", "second"}) {
		t.Errorf("expected snapshot to run both callbacks, got %v", order)
	}
	if e.Has("click") {
		t.Error("expected click to be unregistered after dispatch")
	}

	order = nil
	e.Trigger("click")
	if len(order) != 0 {
		t.Errorf("expected no invocations after removal, got %v", order)
	}
}

func TestEmitter_Trigger_RegisterDuringDispatch(t *testing.T) {
	e := New[int]()
	calls := 0

	e.On("click", func(args ...any) (int, error) {
		calls++
		e.On("click", Func(func(args ...any) int {
			calls++
			return 0
		}))
		return calls, nil
	})

	e.Trigger("click")
	if calls != 1 {
		t.Errorf("expected callback added during dispatch not to run in the same pass, got %d calls", calls)
	}
	if e.Count("click") != 2 {
		t.Errorf("expected 2 registrations after dispatch, got %d", e.Count("click"))
	}
}

func TestEmitter_Trigger_Reentrant(t *testing.T) {
	e := New[string]()
	rec := &recorder{}

	e.On("inner", rec.callback("inner"))
	e.On("outer", func(args ...any) (string, error) {
		res, _, err := e.Trigger("inner")
		return "outer:" + res, err
	})

	result, _, err := e.Trigger("outer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "outer:inner" {
		t.Errorf("unexpected result %q", result)
	}
}

func TestEmitter_Trigger_CallbackError(t *testing.T) {
	e := New[string]()
	rec := &recorder{}
	boom := errors.New("boom")

	e.On("click.menu", rec.callback("menu"))
	e.On("click.toolbar", func(args ...any) (string, error) {
		return "", boom
	})
	e.On("click.status", rec.callback("status"))

	result, ok, err := e.Trigger("click")
	if err == nil {
		t.Fatal("expected callback error")
	}
	if !errors.Is(err, boom) {
		t.Errorf("expected error to wrap boom, got %v", err)
	}

	var cbErr *CallbackError
	if !errors.As(err, &cbErr) {
		t.Fatalf("expected *CallbackError, got %T", err)
	}
	if cbErr.Namespace != "toolbar" || cbErr.Value != "click" || cbErr.Index != 0 {
		t.Errorf("unexpected error context: %+v", cbErr)
	}

	if !equalStrings(rec.got(), []string{"menu"}) {
		t.Errorf("expected remaining callbacks to be skipped, got %v", rec.got())
	}
	if !ok || result != "menu" {
		t.Errorf("expected result of callbacks before the failure, got %q (ok=%v)", result, ok)
	}
}

func TestEmitter_Trigger_CallbackPanic(t *testing.T) {
	e := New[string]()

	e.On("click", func(args ...any) (string, error) {
		panic("callback panic")
	})

	defer func() {
		if r := recover(); r != "callback panic" {
			t.Errorf("expected panic to reach the caller, got %v", r)
		}
	}()

	e.Trigger("click")
	t.Error("expected Trigger to panic")
}

func TestEmitter_CountAndHas(t *testing.T) {
	e := New[string]()
	rec := &recorder{}

	e.On("click.menu click.toolbar click", rec.callback("x"))
	e.On("click.menu", rec.callback("y"))

	tests := []struct {
		name     string
		expected int
	}{
		{"click", 4},
		{"click.menu", 2},
		{"click.toolbar", 1},
		{"click.missing", 0},
		{"hover", 0},
		{"", 0},
	}

	for _, tt := range tests {
		if got := e.Count(tt.name); got != tt.expected {
			t.Errorf("Count(%q) = %d, want %d", tt.name, got, tt.expected)
		}
		if got := e.Has(tt.name); got != (tt.expected > 0) {
			t.Errorf("Has(%q) = %v, want %v", tt.name, got, tt.expected > 0)
		}
	}
}

func TestEmitter_CountIn(t *testing.T) {
	e := New[string]()
	rec := &recorder{}

	e.On("click click.menu", rec.callback("x"))

	if got := e.CountIn("base", "click"); got != 1 {
		t.Errorf("CountIn(base, click) = %d, want 1", got)
	}
	if got := e.CountIn("menu", "click"); got != 1 {
		t.Errorf("CountIn(menu, click) = %d, want 1", got)
	}
	if got := e.CountIn("toolbar", "click"); got != 0 {
		t.Errorf("CountIn(toolbar, click) = %d, want 0", got)
	}
}

func TestEmitter_Clear(t *testing.T) {
	e := New[string]()
	rec := &recorder{}

	e.On("a b.x c.y", rec.callback("cb"))
	e.Clear()

	if e.Len() != 0 || e.Namespaces() != nil {
		t.Error("expected emitter to be empty after Clear")
	}
}

func TestEmitter_Stats(t *testing.T) {
	e := New[string]()
	rec := &recorder{}

	e.On("click.menu click.toolbar", rec.callback("x"))
	e.On("fail", func(args ...any) (string, error) {
		return "", errors.New("fail")
	})

	e.Trigger("click")
	e.Trigger("missing")
	e.Trigger("fail")

	stats := e.Stats()
	if stats.Triggers != 3 {
		t.Errorf("expected 3 triggers, got %d", stats.Triggers)
	}
	if stats.Misses != 1 {
		t.Errorf("expected 1 miss, got %d", stats.Misses)
	}
	if stats.CallbacksInvoked != 3 {
		t.Errorf("expected 3 callbacks invoked, got %d", stats.CallbacksInvoked)
	}
	if stats.CallbackErrors != 1 {
		t.Errorf("expected 1 callback error, got %d", stats.CallbackErrors)
	}
	if stats.Registrations != 3 {
		t.Errorf("expected 3 registrations, got %d", stats.Registrations)
	}
	if stats.Namespaces != 3 {
		t.Errorf("expected 3 namespaces, got %d", stats.Namespaces)
	}

	e.ResetStats()
	if stats := e.Stats(); stats.Triggers != 0 || stats.CallbacksInvoked != 0 {
		t.Errorf("expected counters to reset, got %+v", stats)
	}
}

func TestEmitter_Concurrent(t *testing.T) {
	e := New[int]()
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			e.On("tick.a tick.b", Func(func(args ...any) int { return 1 }))
		}()
		go func() {
			defer wg.Done()
			e.Trigger("tick")
		}()
		go func() {
			defer wg.Done()
			e.Off("tick.b")
		}()
	}

	wg.Wait()

	for _, ns := range e.Namespaces() {
		if len(e.Events(ns)) == 0 {
			t.Errorf("namespace %q is empty but present", ns)
		}
	}
}
