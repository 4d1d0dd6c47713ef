// Package script provides a Lua runtime that drives an event emitter.
//
// Scripts see a global "emitter" table (also available through
// require("emitter")):
//
//	emitter.on("click.menu, click.toolbar", function(x) return x * 2 end)
//	local result, fired = emitter.trigger("click", 21)
//	emitter.off("click.")
//	emitter.has("click")         -- false
//	emitter.count("click.menu")  -- 0
//	emitter.namespaces()         -- { "base", ... }
//	emitter.events("base")       -- { "resize", ... }
//
// Lua callbacks receive the trigger arguments converted to Lua values and may
// return one value. An error raised by a Lua callback stops the dispatch and
// surfaces as a Lua error at the emitter.trigger call site, or as a Go error
// when the trigger came from Go.
//
// The runtime opens only the base, table, string and math libraries and
// removes the functions that load code from disk or strings.
//
// Host wraps a single gopher-lua LState, which is not goroutine-safe. A Host
// and the callbacks it registers must be used from one goroutine.
package script
