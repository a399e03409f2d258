package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu"
	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/constants"
)

const noticeDuration = 1500 * time.Millisecond

// notifier shows one line of text at the bottom of the window for a while.
type notifier struct {
	text  string
	until time.Time
}

func (n *notifier) show(format string, args ...any) {
	n.text = fmt.Sprintf(format, args...)
	n.until = time.Now().Add(noticeDuration)
	nativemenu.GetLogger().Info("Notice", "text", n.text)
}

func (n *notifier) draw(c nativemenu.Canvas, height float32) {
	if n.text == "" || time.Now().After(n.until) {
		return
	}
	font := nativemenu.Font{Name: constants.MenuFontName, Size: 20}
	size := c.MeasureText(n.text, font, 0)
	c.DrawText(n.text, nativemenu.Rect{X: 20, Y: height - size.H - 12, W: size.W, H: size.H},
		constants.TextAlignLeft, color.RGBA{R: 255, G: 255, B: 255, A: 255}, font)
}

var (
	infoDefault  = infoSymbol("#f0f0f0", "#202020")
	infoSelected = infoSymbol("#202020", "#f0f0f0")
	infoDisabled = infoSymbol("#8c8c8c", "#3c3c3c")
)

func infoSymbol(fill, glyph string) []byte {
	return []byte(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="32" height="32" viewBox="0 0 32 32">
  <circle cx="16" cy="16" r="13" fill="%s"/>
  <rect x="14" y="14" width="4" height="10" fill="%s"/>
  <rect x="14" y="8" width="4" height="4" fill="%s"/>
</svg>`, fill, glyph, glyph))
}

// buildShowcase creates the NativeUI IV showcase menu.
func buildShowcase(r *nativemenu.Registry, n *notifier) (*nativemenu.Menu, error) {
	button := nativemenu.NewButton("TestItem1", "I'm a button", "You can click on me!", true)
	button.OnClick(func(b *nativemenu.Button) {
		n.show("You clicked on button: %s", b.Name)
	})

	disabled := nativemenu.NewButton("TestItem2", "I'm a disabled button", "You can't click on me... :(", false)
	disabled.OnClick(func(*nativemenu.Button) {
		n.show("'TestItem2' is disabled so this should not show up.")
	})

	long := nativemenu.NewButton("TestItem3", "Showcase button",
		"This is a long text. But wait, it can get even longer! It doesn't stop getting longer! Send help please! Quick! ...", true)

	info := nativemenu.NewButton("TestItem4", "More information...", "This is a default menu item just with an icon!", true)
	icon, err := nativemenu.NewSVGIcon(infoDefault, infoSelected, infoDisabled, 32, nativemenu.IconRight)
	if err != nil {
		return nil, err
	}
	info.Icon = icon

	checked := nativemenu.NewCheckbox("TestCheckbox1", "I'm a checked checkbox", "You can also uncheck me if you want.", true, true)
	checked.OnCheckedChanged(func(_ *nativemenu.Checkbox, v bool) {
		n.show("CheckboxItem1 checked changed. New value = %v", v)
	})
	unchecked := nativemenu.NewCheckbox("TestCheckbox2", "I'm a unchecked checkbox", "You can also check me if you want.", true, false)
	lockedOn := nativemenu.NewCheckbox("TestCheckbox3", "I'm a checked disabled checkbox", "You can't uncheck me!", false, true)
	lockedOff := nativemenu.NewCheckbox("TestCheckbox4", "I'm a unchecked disabled checkbox", "You can't check me!", false, false)

	list := nativemenu.NewCyclableList("TestListItem1", "I'm a item with an list!",
		"Hit left, right to navigate through the list. Hit enter to show get the current selected item.", true,
		"-", "Item1", "Item2", "And this is item 3")
	list.OnSelectedIndexChanged(func(_ *nativemenu.CyclableList, i int) {
		n.show("The new selected index is: %d", i)
	})
	list.OnClick(func(l *nativemenu.CyclableList) {
		text, _ := l.SelectedText()
		n.show("You clicked on item: %s the selected item is: %s", l.Name, text)
	})

	m := r.NewMenu("NativeUI IV", "NATIVEUI IV SHOWCASE")
	if err := m.AddItems(button, disabled, checked, unchecked, lockedOn, lockedOff, long, list, info); err != nil {
		return nil, err
	}
	return m, nil
}
