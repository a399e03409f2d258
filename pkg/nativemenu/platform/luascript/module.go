// Package luascript exposes a Registry to Lua host scripts through
// gopher-lua. After Preload, a script can build and drive menus:
//
//	local nm = require("nativemenu")
//	local main = nm.menu("Trainer", "Main menu")
//	local god = nm.checkbox("god", "God mode", "Take no damage")
//	god:on_change(function(on) print("god mode", on) end)
//	main:add(god)
//	nm.show(main)
//	nm.press("Enter")
//
// Indices are 1-based on the Lua side. Callbacks run synchronously on the
// goroutine that delivers input, which must be the one that owns the
// LState.
package luascript

import (
	"log/slog"

	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu"
	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/constants"
	lua "github.com/yuin/gopher-lua"
)

// ModuleName is the name scripts pass to require.
const ModuleName = "nativemenu"

const (
	menuType     = "nativemenu.menu"
	buttonType   = "nativemenu.button"
	checkboxType = "nativemenu.checkbox"
	listType     = "nativemenu.list"
)

type binding struct {
	registry *nativemenu.Registry
	logger   *slog.Logger
	menus    map[*nativemenu.Menu]*lua.LUserData
}

// Preload makes require("nativemenu") return a module bound to r.
func Preload(L *lua.LState, r *nativemenu.Registry) {
	b := &binding{
		registry: r,
		logger:   nativemenu.GetLogger().With("component", "luascript"),
		menus:    make(map[*nativemenu.Menu]*lua.LUserData),
	}
	L.PreloadModule(ModuleName, b.loader)
}

func (b *binding) loader(L *lua.LState) int {
	b.registerTypes(L)

	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"menu":        b.newMenu,
		"button":      b.newButton,
		"checkbox":    b.newCheckbox,
		"list":        b.newList,
		"show":        b.show,
		"hide":        b.hide,
		"hide_all":    b.hideAll,
		"is_any_open": b.isAnyOpen,
		"current":     b.current,
		"back":        b.back,
		"press":       b.press,
	})
	L.Push(mod)
	return 1
}

func (b *binding) registerTypes(L *lua.LState) {
	itemMethods := map[string]lua.LGFunction{
		"name":            itemName,
		"text":            itemText,
		"set_text":        itemSetText,
		"description":     itemDescription,
		"set_description": itemSetDescription,
		"enabled":         itemEnabled,
		"set_enabled":     itemSetEnabled,
	}
	typeMethods := map[string]map[string]lua.LGFunction{
		menuType: {
			"add":             b.menuAdd,
			"remove":          b.menuRemove,
			"clear":           b.menuClear,
			"count":           b.menuCount,
			"selected":        b.menuSelected,
			"select":          b.menuSelect,
			"title":           menuTitle,
			"set_title":       menuSetTitle,
			"set_max_visible": menuSetMaxVisible,
			"is_open":         menuIsOpen,
		},
		buttonType: {
			"on_click":   b.buttonOnClick,
			"set_nested": b.buttonSetNested,
			"click":      buttonClick,
		},
		checkboxType: {
			"checked":     checkboxChecked,
			"set_checked": checkboxSetChecked,
			"on_change":   b.checkboxOnChange,
		},
		listType: {
			"add_option":    listAddOption,
			"remove_option": listRemoveOption,
			"options":       listOptions,
			"selected":      listSelected,
			"select":        listSelect,
			"selected_text": listSelectedText,
			"on_change":     b.listOnChange,
			"on_click":      b.listOnClick,
		},
	}

	for name, methods := range typeMethods {
		if name != menuType {
			for k, fn := range itemMethods {
				methods[k] = fn
			}
		}
		mt := L.NewTypeMetatable(name)
		L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), methods))
	}
}

func (b *binding) wrap(L *lua.LState, typeName string, value any) *lua.LUserData {
	ud := L.NewUserData()
	ud.Value = value
	L.SetMetatable(ud, L.GetTypeMetatable(typeName))
	return ud
}

// call runs a Lua callback, logging instead of propagating its errors so a
// faulty script cannot break menu input.
func (b *binding) call(L *lua.LState, fn *lua.LFunction, args ...lua.LValue) {
	if err := L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}, args...); err != nil {
		b.logger.Warn("Lua callback failed", "error", err)
	}
}

func checkMenu(L *lua.LState, n int) *nativemenu.Menu {
	ud := L.CheckUserData(n)
	if m, ok := ud.Value.(*nativemenu.Menu); ok {
		return m
	}
	L.ArgError(n, "menu expected")
	return nil
}

func checkItem(L *lua.LState, n int) nativemenu.Item {
	ud := L.CheckUserData(n)
	if it, ok := ud.Value.(nativemenu.Item); ok {
		return it
	}
	L.ArgError(n, "menu item expected")
	return nil
}

func checkButton(L *lua.LState, n int) *nativemenu.Button {
	if b, ok := checkItem(L, n).(*nativemenu.Button); ok {
		return b
	}
	L.ArgError(n, "button expected")
	return nil
}

func checkCheckbox(L *lua.LState, n int) *nativemenu.Checkbox {
	if c, ok := checkItem(L, n).(*nativemenu.Checkbox); ok {
		return c
	}
	L.ArgError(n, "checkbox expected")
	return nil
}

func checkList(L *lua.LState, n int) *nativemenu.CyclableList {
	if l, ok := checkItem(L, n).(*nativemenu.CyclableList); ok {
		return l
	}
	L.ArgError(n, "list expected")
	return nil
}

// Module functions

func (b *binding) newMenu(L *lua.LState) int {
	m := b.registry.NewMenu(L.CheckString(1), L.OptString(2, ""))
	ud := b.wrap(L, menuType, m)
	b.menus[m] = ud
	L.Push(ud)
	return 1
}

func (b *binding) newButton(L *lua.LState) int {
	btn := nativemenu.NewButton(L.CheckString(1), L.CheckString(2), L.OptString(3, ""), L.OptBool(4, true))
	L.Push(b.wrap(L, buttonType, btn))
	return 1
}

func (b *binding) newCheckbox(L *lua.LState) int {
	c := nativemenu.NewCheckbox(L.CheckString(1), L.CheckString(2), L.OptString(3, ""), L.OptBool(4, true), L.OptBool(5, false))
	L.Push(b.wrap(L, checkboxType, c))
	return 1
}

func (b *binding) newList(L *lua.LState) int {
	l := nativemenu.NewCyclableList(L.CheckString(1), L.CheckString(2), L.OptString(3, ""), L.OptBool(4, true))
	if opts := L.OptTable(5, nil); opts != nil {
		for i := 1; i <= opts.Len(); i++ {
			l.AddOption(lua.LVAsString(opts.RawGetInt(i)))
		}
	}
	L.Push(b.wrap(L, listType, l))
	return 1
}

func (b *binding) show(L *lua.LState) int {
	if err := b.registry.Show(checkMenu(L, 1)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (b *binding) hide(L *lua.LState) int {
	b.registry.Hide(checkMenu(L, 1))
	return 0
}

func (b *binding) hideAll(L *lua.LState) int {
	b.registry.HideAll()
	return 0
}

func (b *binding) isAnyOpen(L *lua.LState) int {
	L.Push(lua.LBool(b.registry.IsAnyMenuOpen()))
	return 1
}

func (b *binding) current(L *lua.LState) int {
	m := b.registry.Current()
	if ud, ok := b.menus[m]; ok {
		L.Push(ud)
	} else {
		L.Push(lua.LNil)
	}
	return 1
}

func (b *binding) back(L *lua.LState) int {
	L.Push(lua.LBool(b.registry.Back()))
	return 1
}

// press delivers a key by name and returns the outcome, e.g. "moved".
func (b *binding) press(L *lua.LState) int {
	key, err := constants.ParseKey(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
	}
	L.Push(lua.LString(b.registry.ProcessKeyPress(key).String()))
	return 1
}

// Menu methods

func (b *binding) menuAdd(L *lua.LState) int {
	m := checkMenu(L, 1)
	for i := 2; i <= L.GetTop(); i++ {
		if err := m.AddItem(checkItem(L, i)); err != nil {
			L.RaiseError("%v", err)
		}
	}
	return 0
}

func (b *binding) menuRemove(L *lua.LState) int {
	L.Push(lua.LBool(checkMenu(L, 1).RemoveItem(checkItem(L, 2))))
	return 1
}

func (b *binding) menuClear(L *lua.LState) int {
	checkMenu(L, 1).Clear()
	return 0
}

func (b *binding) menuCount(L *lua.LState) int {
	L.Push(lua.LNumber(checkMenu(L, 1).Len()))
	return 1
}

func (b *binding) menuSelected(L *lua.LState) int {
	L.Push(lua.LNumber(checkMenu(L, 1).SelectedIndex() + 1))
	return 1
}

func (b *binding) menuSelect(L *lua.LState) int {
	if err := checkMenu(L, 1).SetSelectedIndex(L.CheckInt(2) - 1); err != nil {
		L.ArgError(2, err.Error())
	}
	return 0
}

func menuTitle(L *lua.LState) int {
	L.Push(lua.LString(checkMenu(L, 1).Title))
	return 1
}

func menuSetTitle(L *lua.LState) int {
	checkMenu(L, 1).Title = L.CheckString(2)
	return 0
}

func menuSetMaxVisible(L *lua.LState) int {
	checkMenu(L, 1).SetMaxVisible(L.CheckInt(2))
	return 0
}

func menuIsOpen(L *lua.LState) int {
	L.Push(lua.LBool(checkMenu(L, 1).IsOpen()))
	return 1
}

// Item methods

func itemName(L *lua.LState) int {
	L.Push(lua.LString(checkItem(L, 1).Common().Name))
	return 1
}

func itemText(L *lua.LState) int {
	L.Push(lua.LString(checkItem(L, 1).Common().Text))
	return 1
}

func itemSetText(L *lua.LState) int {
	checkItem(L, 1).Common().Text = L.CheckString(2)
	return 0
}

func itemDescription(L *lua.LState) int {
	L.Push(lua.LString(checkItem(L, 1).Common().Description))
	return 1
}

func itemSetDescription(L *lua.LState) int {
	checkItem(L, 1).Common().Description = L.CheckString(2)
	return 0
}

func itemEnabled(L *lua.LState) int {
	L.Push(lua.LBool(checkItem(L, 1).Common().Enabled))
	return 1
}

func itemSetEnabled(L *lua.LState) int {
	checkItem(L, 1).Common().Enabled = L.CheckBool(2)
	return 0
}

func (b *binding) buttonOnClick(L *lua.LState) int {
	btn := checkButton(L, 1)
	fn := L.CheckFunction(2)
	btn.OnClick(func(*nativemenu.Button) {
		b.call(L, fn)
	})
	return 0
}

func (b *binding) buttonSetNested(L *lua.LState) int {
	btn := checkButton(L, 1)
	if L.Get(2) == lua.LNil {
		btn.NestedMenu = nil
		return 0
	}
	btn.NestedMenu = checkMenu(L, 2)
	return 0
}

func buttonClick(L *lua.LState) int {
	checkButton(L, 1).PerformClick()
	return 0
}

func checkboxChecked(L *lua.LState) int {
	L.Push(lua.LBool(checkCheckbox(L, 1).Checked()))
	return 1
}

func checkboxSetChecked(L *lua.LState) int {
	checkCheckbox(L, 1).SetChecked(L.CheckBool(2))
	return 0
}

func (b *binding) checkboxOnChange(L *lua.LState) int {
	c := checkCheckbox(L, 1)
	fn := L.CheckFunction(2)
	c.OnCheckedChanged(func(_ *nativemenu.Checkbox, on bool) {
		b.call(L, fn, lua.LBool(on))
	})
	return 0
}

func listAddOption(L *lua.LState) int {
	l := checkList(L, 1)
	for i := 2; i <= L.GetTop(); i++ {
		l.AddOption(L.CheckString(i))
	}
	return 0
}

func listRemoveOption(L *lua.LState) int {
	L.Push(lua.LBool(checkList(L, 1).RemoveOption(L.CheckString(2))))
	return 1
}

func listOptions(L *lua.LState) int {
	t := L.NewTable()
	for _, o := range checkList(L, 1).Options() {
		t.Append(lua.LString(o))
	}
	L.Push(t)
	return 1
}

func listSelected(L *lua.LState) int {
	L.Push(lua.LNumber(checkList(L, 1).SelectedIndex() + 1))
	return 1
}

func listSelect(L *lua.LState) int {
	if err := checkList(L, 1).SetSelectedIndex(L.CheckInt(2) - 1); err != nil {
		L.ArgError(2, err.Error())
	}
	return 0
}

func listSelectedText(L *lua.LState) int {
	if text, ok := checkList(L, 1).SelectedText(); ok {
		L.Push(lua.LString(text))
	} else {
		L.Push(lua.LNil)
	}
	return 1
}

// on_change callbacks receive the 1-based index and the option text.
func (b *binding) listOnChange(L *lua.LState) int {
	l := checkList(L, 1)
	fn := L.CheckFunction(2)
	l.OnSelectedTextChanged(func(l *nativemenu.CyclableList, text string) {
		b.call(L, fn, lua.LNumber(l.SelectedIndex()+1), lua.LString(text))
	})
	return 0
}

func (b *binding) listOnClick(L *lua.LState) int {
	l := checkList(L, 1)
	fn := L.CheckFunction(2)
	l.OnClick(func(*nativemenu.CyclableList) {
		b.call(L, fn)
	})
	return 0
}
