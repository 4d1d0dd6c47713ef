package script

import (
	"fmt"
	"math"

	lua "github.com/yuin/gopher-lua"
)

// toLValue converts a Go value to a Lua value.
func toLValue(L *lua.LState, v any) lua.LValue {
	switch val := v.(type) {
	case nil:
		return lua.LNil
	case lua.LValue:
		return val
	case bool:
		return lua.LBool(val)
	case int:
		return lua.LNumber(val)
	case int32:
		return lua.LNumber(val)
	case int64:
		return lua.LNumber(val)
	case uint64:
		return lua.LNumber(val)
	case float32:
		return lua.LNumber(val)
	case float64:
		return lua.LNumber(val)
	case string:
		return lua.LString(val)
	case []string:
		tbl := L.NewTable()
		for _, item := range val {
			tbl.Append(lua.LString(item))
		}
		return tbl
	case []any:
		tbl := L.NewTable()
		for i, item := range val {
			tbl.RawSetInt(i+1, toLValue(L, item))
		}
		return tbl
	case map[string]any:
		tbl := L.NewTable()
		for k, item := range val {
			tbl.RawSetString(k, toLValue(L, item))
		}
		return tbl
	default:
		return lua.LString(fmt.Sprintf("%v", val))
	}
}

// fromLValue converts a Lua value to a Go value.
//
// Tables with only positive integer keys become []any, other tables become
// map[string]any. Functions and userdata are returned as-is.
func fromLValue(v lua.LValue) any {
	if v == nil || v == lua.LNil {
		return nil
	}

	switch val := v.(type) {
	case lua.LBool:
		return bool(val)
	case lua.LNumber:
		return float64(val)
	case lua.LString:
		return string(val)
	case *lua.LTable:
		return tableToAny(val)
	default:
		return v
	}
}

// maxArrayIndex bounds integer keys considered for the array form.
const maxArrayIndex = math.MaxInt32

// tableToAny converts a table to a slice or map.
func tableToAny(tbl *lua.LTable) any {
	isArray := true
	maxIdx := 0
	keys := 0
	tbl.ForEach(func(k, _ lua.LValue) {
		keys++
		num, ok := k.(lua.LNumber)
		if !ok || num < 1 || num > maxArrayIndex || float64(num) != float64(int(num)) {
			isArray = false
			return
		}
		if int(num) > maxIdx {
			maxIdx = int(num)
		}
	})

	// Sparse tables become maps so the slice is never larger than the table.
	if isArray && maxIdx > 0 && keys == maxIdx {
		arr := make([]any, maxIdx)
		tbl.ForEach(func(k, v lua.LValue) {
			arr[int(k.(lua.LNumber))-1] = fromLValue(v)
		})
		return arr
	}

	result := make(map[string]any)
	tbl.ForEach(func(k, v lua.LValue) {
		var key string
		switch kv := k.(type) {
		case lua.LString:
			key = string(kv)
		default:
			key = k.String()
		}
		result[key] = fromLValue(v)
	})
	return result
}

// plainValue replaces Lua functions, userdata and other state-bound values
// with their string form so the result is safe to hand to Go code.
func plainValue(v any) any {
	switch val := v.(type) {
	case lua.LValue:
		return val.String()
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = plainValue(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = plainValue(item)
		}
		return out
	default:
		return v
	}
}

// stringsToTable converts a string slice to a Lua array.
func stringsToTable(L *lua.LState, items []string) *lua.LTable {
	tbl := L.NewTable()
	for _, item := range items {
		tbl.Append(lua.LString(item))
	}
	return tbl
}
