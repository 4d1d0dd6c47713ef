package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/nsemit/internal/event"
)

// newModule builds the emitter table exposed to scripts.
func (h *Host) newModule(L *lua.LState) *lua.LTable {
	return L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"on":         h.on,
		"off":        h.off,
		"trigger":    h.trigger,
		"has":        h.has,
		"count":      h.count,
		"namespaces": h.namespaces,
		"events":     h.events,
	})
}

// on(names, fn) -> emitter
func (h *Host) on(L *lua.LState) int {
	names := L.CheckString(1)
	fn := L.CheckFunction(2)

	h.emitter.On(names, h.callback(fn))

	L.Push(h.mod)
	return 1
}

// off(names) -> emitter
func (h *Host) off(L *lua.LState) int {
	names := L.CheckString(1)

	h.emitter.Off(names)

	L.Push(h.mod)
	return 1
}

// trigger(name, ...) -> result, fired
// Raises a Lua error if a callback fails.
func (h *Host) trigger(L *lua.LState) int {
	name := L.CheckString(1)

	top := L.GetTop()
	args := make([]any, 0, top-1)
	for i := 2; i <= top; i++ {
		args = append(args, fromLValue(L.Get(i)))
	}

	result, ok, err := h.emitter.Trigger(name, args...)
	if err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}

	L.Push(toLValue(L, result))
	L.Push(lua.LBool(ok))
	return 2
}

// has(name) -> bool
func (h *Host) has(L *lua.LState) int {
	L.Push(lua.LBool(h.emitter.Has(L.CheckString(1))))
	return 1
}

// count(name) -> number
func (h *Host) count(L *lua.LState) int {
	L.Push(lua.LNumber(h.emitter.Count(L.CheckString(1))))
	return 1
}

// namespaces() -> { string... }
func (h *Host) namespaces(L *lua.LState) int {
	L.Push(stringsToTable(L, h.emitter.Namespaces()))
	return 1
}

// events(namespace) -> { string... }
func (h *Host) events(L *lua.LState) int {
	L.Push(stringsToTable(L, h.emitter.Events(L.CheckString(1))))
	return 1
}

// callback wraps a Lua function as an emitter callback.
func (h *Host) callback(fn *lua.LFunction) event.Callback[any] {
	return func(args ...any) (any, error) {
		if h.closed {
			return nil, ErrStateClosed
		}

		L := h.L
		L.Push(fn)
		for _, arg := range args {
			L.Push(toLValue(L, arg))
		}

		if err := L.PCall(len(args), 1, nil); err != nil {
			return nil, err
		}

		ret := L.Get(-1)
		L.Pop(1)
		return fromLValue(ret), nil
	}
}
