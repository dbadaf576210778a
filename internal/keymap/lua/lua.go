// Package lua evaluates a keymap script into a keymap.Definition.
//
// The original Keybow firmware declares its keymap as a script run once
// at boot; this package preserves that surface with Lua. A keymap.lua
// looks like:
//
//	local purple = rgb(36, 30, 47)
//	local pink = hex("#FF98BA")
//
//	local shortcat = combine(light(purple), press("ctrl-alt-cmd-C"))
//	local talon = combine(mirror("caps-lock", purple, pink), press("ctrl-alt-M"))
//
//	layer({
//	    {disabled(), disabled(), disabled(), disabled()},
//	    {disabled(), disabled(), disabled(), disabled()},
//	    {disabled(), disabled(), disabled(), disabled()},
//	    {disabled(), talon, disabled(), shortcat},
//	}, { reverse = true, neutral = purple })
//
// The state is sandboxed: only the base, table, string, and math
// libraries open, so a keymap cannot touch the filesystem or spawn
// processes. The script runs exactly once at startup; any Lua error is
// a configuration error.
package lua

import (
	"errors"
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/keybowio/keybow/internal/keymap"
	"github.com/keybowio/keybow/internal/layer"
)

// Script errors.
var (
	ErrNoLayer   = errors.New("keymap script never called layer()")
	ErrBadLayer  = errors.New("layer() wants 4 rows of 4 actions")
	ErrBadAction = errors.New("value is not an action")
)

const actionTypeName = "keybow.action"

// Load evaluates a keymap script file.
func Load(path string) (*keymap.Definition, error) {
	L := newState()
	defer L.Close()

	b := &builder{}
	register(L, b)

	if err := L.DoFile(path); err != nil {
		return nil, fmt.Errorf("keymap script %s: %w", path, err)
	}
	if b.def == nil {
		return nil, ErrNoLayer
	}
	return b.def, nil
}

// LoadString evaluates a keymap script from source, for tests.
func LoadString(source string) (*keymap.Definition, error) {
	L := newState()
	defer L.Close()

	b := &builder{}
	register(L, b)

	if err := L.DoString(source); err != nil {
		return nil, fmt.Errorf("keymap script: %w", err)
	}
	if b.def == nil {
		return nil, ErrNoLayer
	}
	return b.def, nil
}

// newState opens a sandboxed Lua state: no io, no os.
func newState() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	for _, open := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(open.fn))
		L.Push(lua.LString(open.name))
		L.Call(1, 0)
	}
	return L
}

// builder accumulates the definition as the script runs.
type builder struct {
	def *keymap.Definition
}

// register installs the DSL globals. Action builders return userdata
// wrapping a flat []keymap.ActionDef stack, so combine is concatenation
// and the Build step keeps a single validation path for TOML and Lua.
func register(L *lua.LState, b *builder) {
	L.NewTypeMetatable(actionTypeName)

	L.SetGlobal("rgb", L.NewFunction(luaRGB))
	L.SetGlobal("hex", L.NewFunction(luaHex))
	L.SetGlobal("press", L.NewFunction(actionFn(func(L *lua.LState) keymap.ActionDef {
		return keymap.ActionDef{Kind: "press", Chord: L.CheckString(1)}
	})))
	L.SetGlobal("light", L.NewFunction(actionFn(func(L *lua.LState) keymap.ActionDef {
		return keymap.ActionDef{Kind: "light", Color: L.CheckString(1)}
	})))
	L.SetGlobal("switch", L.NewFunction(actionFn(func(L *lua.LState) keymap.ActionDef {
		return keymap.ActionDef{Kind: "switch", Off: L.CheckString(1), On: L.CheckString(2)}
	})))
	L.SetGlobal("toggle", L.NewFunction(actionFn(func(L *lua.LState) keymap.ActionDef {
		return keymap.ActionDef{Kind: "toggle", Off: L.CheckString(1), On: L.CheckString(2)}
	})))
	L.SetGlobal("mirror", L.NewFunction(actionFn(func(L *lua.LState) keymap.ActionDef {
		return keymap.ActionDef{
			Kind:      "mirror",
			Indicator: L.CheckString(1),
			Off:       L.CheckString(2),
			On:        L.CheckString(3),
		}
	})))
	L.SetGlobal("disabled", L.NewFunction(actionFn(func(L *lua.LState) keymap.ActionDef {
		return keymap.ActionDef{Kind: "disabled"}
	})))
	L.SetGlobal("combine", L.NewFunction(luaCombine))
	L.SetGlobal("layer", L.NewFunction(b.luaLayer))
}

// luaRGB builds a hex color string from three components.
func luaRGB(L *lua.LState) int {
	r := L.CheckInt(1)
	g := L.CheckInt(2)
	bl := L.CheckInt(3)
	for _, v := range []int{r, g, bl} {
		if v < 0 || v > 255 {
			L.RaiseError("rgb component %d out of range 0-255", v)
		}
	}
	L.Push(lua.LString(fmt.Sprintf("#%02X%02X%02X", r, g, bl)))
	return 1
}

// luaHex validates and passes through a hex color string.
func luaHex(L *lua.LState) int {
	L.Push(lua.LString(L.CheckString(1)))
	return 1
}

// actionFn wraps a single-ActionDef builder as a Lua function returning
// an action stack.
func actionFn(build func(L *lua.LState) keymap.ActionDef) lua.LGFunction {
	return func(L *lua.LState) int {
		pushStack(L, []keymap.ActionDef{build(L)})
		return 1
	}
}

// luaCombine concatenates any number of action stacks.
func luaCombine(L *lua.LState) int {
	var stack []keymap.ActionDef
	n := L.GetTop()
	if n < 2 {
		L.RaiseError("combine wants at least two actions")
	}
	for i := 1; i <= n; i++ {
		stack = append(stack, checkStack(L, i)...)
	}
	pushStack(L, stack)
	return 1
}

// luaLayer consumes the 4x4 matrix and options into the definition.
func (b *builder) luaLayer(L *lua.LState) int {
	rows := L.CheckTable(1)

	def := &keymap.Definition{}
	if L.GetTop() >= 2 {
		opts := L.CheckTable(2)
		if v := L.GetField(opts, "reverse"); v != lua.LNil {
			reverse := lua.LVAsBool(v)
			def.Reverse = &reverse
		}
		if v := L.GetField(opts, "neutral"); v != lua.LNil {
			def.Neutral = lua.LVAsString(v)
		}
	}

	if rows.Len() != layer.GridHeight {
		L.RaiseError("%v: got %d rows", ErrBadLayer, rows.Len())
	}
	for r := 1; r <= layer.GridHeight; r++ {
		row, ok := L.GetTable(rows, lua.LNumber(r)).(*lua.LTable)
		if !ok || row.Len() != layer.GridWidth {
			L.RaiseError("%v: row %d", ErrBadLayer, r-1)
		}
		for c := 1; c <= layer.GridWidth; c++ {
			ud, ok := L.GetTable(row, lua.LNumber(c)).(*lua.LUserData)
			if !ok {
				L.RaiseError("%v: row %d col %d", ErrBadAction, r-1, c-1)
			}
			stack, ok := ud.Value.([]keymap.ActionDef)
			if !ok {
				L.RaiseError("%v: row %d col %d", ErrBadAction, r-1, c-1)
			}
			def.Keys = append(def.Keys, keymap.KeyDef{
				Row:     r - 1,
				Col:     c - 1,
				Actions: stack,
			})
		}
	}

	b.def = def
	return 0
}

func pushStack(L *lua.LState, stack []keymap.ActionDef) {
	ud := L.NewUserData()
	ud.Value = stack
	L.SetMetatable(ud, L.GetTypeMetatable(actionTypeName))
	L.Push(ud)
}

func checkStack(L *lua.LState, n int) []keymap.ActionDef {
	ud := L.CheckUserData(n)
	stack, ok := ud.Value.([]keymap.ActionDef)
	if !ok {
		L.ArgError(n, "expected an action")
	}
	return stack
}
