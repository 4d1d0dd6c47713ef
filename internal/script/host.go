package script

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/nsemit/internal/event"
)

// DefaultTimeout bounds a single script run or Go-initiated trigger.
const DefaultTimeout = 5 * time.Second

// ModuleName is the global and require name of the emitter module.
const ModuleName = "emitter"

// Host runs Lua scripts against an emitter.
type Host struct {
	L       *lua.LState
	emitter *event.Emitter[any]
	mod     *lua.LTable

	timeout time.Duration
	out     io.Writer
	log     zerolog.Logger

	closed bool
}

// Option configures a Host.
type Option func(*Host)

// WithTimeout sets the execution timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(h *Host) {
		if d >= 0 {
			h.timeout = d
		}
	}
}

// WithOutput sets where Lua print writes. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(h *Host) {
		if w != nil {
			h.out = w
		}
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(h *Host) {
		h.log = l.With().Str("component", "script").Logger()
	}
}

// NewHost creates a sandboxed Lua state bound to em.
func NewHost(em *event.Emitter[any], opts ...Option) *Host {
	h := &Host{
		emitter: em,
		timeout: DefaultTimeout,
		out:     os.Stdout,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}

	L := lua.NewState(lua.Options{
		SkipOpenLibs: true,
	})
	h.L = L

	openSafeLibraries(L)
	installSandbox(L, h.out)

	h.mod = h.newModule(L)
	L.SetGlobal(ModuleName, h.mod)
	L.PreloadModule(ModuleName, func(L *lua.LState) int {
		L.Push(h.mod)
		return 1
	})

	return h
}

// Emitter returns the emitter scripts register on.
func (h *Host) Emitter() *event.Emitter[any] {
	return h.emitter
}

// RunFile executes a Lua file.
func (h *Host) RunFile(ctx context.Context, path string) error {
	code, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading script %s: %w", path, err)
	}
	return h.RunString(ctx, path, string(code))
}

// RunString executes Lua code. source names the chunk in errors.
func (h *Host) RunString(ctx context.Context, source, code string) error {
	if h.closed {
		return ErrStateClosed
	}

	fn, err := h.L.Load(strings.NewReader(code), source)
	if err != nil {
		return &ScriptError{Source: source, Err: err}
	}

	h.log.Debug().Str("source", source).Msg("running script")

	return h.withContext(ctx, func() error {
		h.L.Push(fn)
		if err := h.L.PCall(0, 0, nil); err != nil {
			return &ScriptError{Source: source, Err: err}
		}
		return nil
	})
}

// Trigger dispatches name from Go with the script timeout applied.
// Lua functions and userdata in the result are returned as strings.
func (h *Host) Trigger(ctx context.Context, name string, args ...any) (result any, ok bool, err error) {
	if h.closed {
		return nil, false, ErrStateClosed
	}

	err = h.withContext(ctx, func() error {
		var trigErr error
		result, ok, trigErr = h.emitter.Trigger(name, args...)
		return trigErr
	})
	return plainValue(result), ok, err
}

// withContext runs fn with a context installed on the Lua state.
func (h *Host) withContext(ctx context.Context, fn func() error) error {
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	h.L.SetContext(ctx)
	defer h.L.RemoveContext()

	err := fn()
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrExecutionTimeout, err)
	}
	return err
}

// IsClosed returns true if the host has been closed.
func (h *Host) IsClosed() bool {
	return h.closed
}

// Close releases the Lua state. Callbacks registered by scripts stay in the
// emitter but fail with ErrStateClosed when triggered.
func (h *Host) Close() error {
	if h.closed {
		return nil
	}
	h.L.Close()
	h.closed = true
	return nil
}
