package workspace

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strings"

	lua "github.com/yuin/gopher-lua"
	"go.trai.ch/runx/internal/core/domain"
	"go.trai.ch/runx/internal/core/ports"
	"go.trai.ch/zerr"
)

// LuaDecoder evaluates a workspace written as a Lua module.
//
// The chunk runs in a fresh state with only the base, table, string and math libraries.
// The workspace is read from the "workspace" field of the table returned by the chunk, or
// from the global of the same name.
type LuaDecoder struct {
	// Logger receives the output of print calls. May be nil.
	Logger ports.Logger
}

// Decode evaluates data as a Lua chunk named after path.
func (d *LuaDecoder) Decode(ctx context.Context, path string, data []byte) (domain.Workspace, error) {
	L := d.newState()
	defer L.Close()
	L.SetContext(ctx)

	fn, err := L.Load(bytes.NewReader(data), path)
	if err != nil {
		return nil, malformed(domain.ReasonSyntax, err)
	}

	L.Push(fn)
	if err := L.PCall(0, 1, nil); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, malformed(domain.ReasonEvaluation, err)
	}
	returned := L.Get(-1)
	L.Pop(1)

	export := lookupExport(L, returned)
	if export == lua.LNil {
		return nil, malformed(domain.ReasonMissingExport,
			zerr.New(domain.WorkspaceExport+" is not defined"))
	}

	table, ok := export.(*lua.LTable)
	if !ok {
		return nil, malformed(domain.ReasonShape,
			zerr.New(fmt.Sprintf("%s must be a table, got %s", domain.WorkspaceExport, export.Type())))
	}

	value, err := fromLua(table, make(map[*lua.LTable]bool))
	if err != nil {
		return nil, malformed(domain.ReasonShape, err)
	}
	if value == nil {
		value = map[string]any{}
	}
	return decodeValue(value)
}

func lookupExport(L *lua.LState, returned lua.LValue) lua.LValue {
	if module, ok := returned.(*lua.LTable); ok {
		if v := module.RawGetString(domain.WorkspaceExport); v != lua.LNil {
			return v
		}
	}
	return L.GetGlobal(domain.WorkspaceExport)
}

func (d *LuaDecoder) newState() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.open))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}

	// No file or module loading from inside a workspace.
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "module", "require"} {
		L.SetGlobal(name, lua.LNil)
	}

	L.SetGlobal("print", L.NewFunction(d.print))
	return L
}

func (d *LuaDecoder) print(L *lua.LState) int {
	top := L.GetTop()
	parts := make([]string, 0, top)
	for i := 1; i <= top; i++ {
		parts = append(parts, L.ToStringMeta(L.Get(i)).String())
	}
	if d.Logger != nil {
		d.Logger.Info(strings.Join(parts, "\t"))
	}
	return 0
}

// fromLua converts a Lua value to plain Go values. Empty tables become nil.
func fromLua(lv lua.LValue, visited map[*lua.LTable]bool) (any, error) {
	switch v := lv.(type) {
	case *lua.LNilType:
		return nil, nil
	case lua.LBool:
		return bool(v), nil
	case lua.LNumber:
		f := float64(v)
		if f == math.Trunc(f) && math.Abs(f) <= 1<<53 {
			return int(f), nil
		}
		return f, nil
	case lua.LString:
		return string(v), nil
	case *lua.LTable:
		if visited[v] {
			return nil, zerr.New("workspace table refers to itself")
		}
		visited[v] = true
		defer delete(visited, v)
		return tableFromLua(v, visited)
	default:
		return nil, zerr.New(fmt.Sprintf("unsupported %s value in workspace", lv.Type()))
	}
}

// tableFromLua converts a table with keys 1..n to a slice and any other table to a map.
func tableFromLua(t *lua.LTable, visited map[*lua.LTable]bool) (any, error) {
	count := 0
	t.ForEach(func(_, _ lua.LValue) { count++ })
	if count == 0 {
		return nil, nil
	}

	// count distinct keys all within [1, count] are exactly 1..count.
	isArray := true
	t.ForEach(func(k, _ lua.LValue) {
		n, ok := k.(lua.LNumber)
		if !ok || !isArrayIndex(float64(n), count) {
			isArray = false
		}
	})

	if isArray {
		arr := make([]any, count)
		for i := 1; i <= count; i++ {
			v, err := fromLua(t.RawGetInt(i), visited)
			if err != nil {
				return nil, err
			}
			arr[i-1] = v
		}
		return arr, nil
	}

	m := make(map[string]any, count)
	var convErr error
	t.ForEach(func(k, v lua.LValue) {
		if convErr != nil {
			return
		}
		key, ok := k.(lua.LString)
		if !ok {
			convErr = zerr.New(fmt.Sprintf("table keys must be strings, got %s", k.Type()))
			return
		}
		converted, err := fromLua(v, visited)
		if err != nil {
			convErr = err
			return
		}
		m[string(key)] = converted
	})
	if convErr != nil {
		return nil, convErr
	}
	return m, nil
}

func isArrayIndex(f float64, count int) bool {
	return f == math.Trunc(f) && f >= 1 && f <= float64(count)
}
