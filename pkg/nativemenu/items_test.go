package nativemenu_test

import (
	"fmt"
	"testing"

	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu"
)

func TestListRemoveClampsSelection(t *testing.T) {
	l := nativemenu.NewCyclableList("l", "List", "", true, "a", "b", "c")
	if err := l.SetSelectedIndex(2); err != nil {
		t.Fatal(err)
	}

	if !l.RemoveOption("c") {
		t.Fatal("RemoveOption(c) = false")
	}
	if l.SelectedIndex() != 1 {
		t.Fatalf("selection = %d, want 1", l.SelectedIndex())
	}
	if text, ok := l.SelectedText(); !ok || text != "b" {
		t.Fatalf("selected text = %q, %v", text, ok)
	}

	if err := l.RemoveOptionAt(5); !nativemenu.IsOutOfRange(err) {
		t.Fatalf("RemoveOptionAt(5) = %v, want out of range", err)
	}
	if l.RemoveOption("missing") {
		t.Fatal("removed a missing option")
	}

	l.ClearOptions()
	if l.SelectedIndex() != 0 || l.Len() != 0 {
		t.Fatalf("after clear: index %d len %d", l.SelectedIndex(), l.Len())
	}
	if _, ok := l.SelectedText(); ok {
		t.Fatal("empty list reported a value")
	}
	if l.Next() || l.Previous() {
		t.Fatal("empty list cycled")
	}
}

func TestListNotifications(t *testing.T) {
	l := nativemenu.NewCyclableList("l", "List", "", true, "a", "b")

	var events []string
	l.OnSelectedIndexChanged(func(_ *nativemenu.CyclableList, i int) {
		events = append(events, fmt.Sprintf("index:%d", i))
	})
	l.OnSelectedTextChanged(func(_ *nativemenu.CyclableList, s string) {
		events = append(events, "text:"+s)
	})

	if err := l.SetSelectedIndex(1); err != nil {
		t.Fatal(err)
	}
	if len(events) != 0 {
		t.Fatalf("SetSelectedIndex notified: %v", events)
	}

	l.Next()
	l.Previous()

	want := []string{"index:0", "text:a", "index:1", "text:b"}
	if fmt.Sprint(events) != fmt.Sprint(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}

	if err := l.SetSelectedIndex(-1); !nativemenu.IsOutOfRange(err) {
		t.Fatalf("SetSelectedIndex(-1) = %v", err)
	}
}

func TestCheckboxSetCheckedAlwaysNotifies(t *testing.T) {
	c := nativemenu.NewCheckbox("c", "Check", "", true, true)
	var got []bool
	c.OnCheckedChanged(func(_ *nativemenu.Checkbox, v bool) { got = append(got, v) })

	c.SetChecked(true)
	if c.Toggle() {
		t.Fatal("Toggle of a checked box returned true")
	}

	if fmt.Sprint(got) != "[true false]" {
		t.Fatalf("notifications = %v", got)
	}
}

func TestButtonPerformClick(t *testing.T) {
	b := nativemenu.NewButton("b", "Button", "", false)
	clicks := 0
	b.OnClick(func(*nativemenu.Button) { clicks++ })
	b.OnClick(nil)

	b.PerformClick()
	if clicks != 1 {
		t.Fatalf("clicks = %d, want 1", clicks)
	}
}

func TestItemTagAndLookup(t *testing.T) {
	r := newTestRegistry(t, newFakeHost())
	b := nativemenu.NewButton("spawn", "Spawn", "", true)
	b.Tag = append(b.Tag, "vehicle", 42)
	m := r.NewMenu("Lookup", "", nativemenu.WithItems(buttons(2)...))
	if err := m.AddItem(b); err != nil {
		t.Fatal(err)
	}

	found, ok := m.FindItem("spawn")
	if !ok || found != nativemenu.Item(b) {
		t.Fatalf("FindItem = %v, %v", found, ok)
	}
	if m.IndexOf(b) != 2 {
		t.Fatalf("IndexOf = %d, want 2", m.IndexOf(b))
	}
	if tags := found.Common().Tag; len(tags) != 2 || tags[1] != 42 {
		t.Fatalf("tags = %v", tags)
	}
	if _, ok := m.ItemAt(3); ok {
		t.Fatal("ItemAt past the end succeeded")
	}
}

const infoSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="32" height="32" viewBox="0 0 32 32">
  <circle cx="16" cy="16" r="14" fill="#2a6fdb"/>
</svg>`

func TestSVGIconDrawsOnTheRight(t *testing.T) {
	icon, err := nativemenu.NewSVGIcon([]byte(infoSVG), []byte(infoSVG), nil, 32, nativemenu.IconRight)
	if err != nil {
		t.Fatal(err)
	}
	if icon.Default == nil || icon.Selected == nil || icon.Disabled != nil {
		t.Fatalf("icon images = %v %v %v", icon.Default != nil, icon.Selected != nil, icon.Disabled != nil)
	}

	r := newTestRegistry(t, newFakeHost())
	b := nativemenu.NewButton("info", "More information...", "", true)
	b.Icon = icon
	off := nativemenu.NewButton("off", "Disabled", "", false)
	off.Icon = icon
	m := r.NewMenu("Icons", "", nativemenu.WithItems(b, off))
	_ = r.Show(m)

	var images []nativemenu.DrawCommand
	for _, c := range m.Plan(&fakeCanvas{}) {
		if c.Kind == nativemenu.DrawSprite && c.Sprite == "" && c.Image == icon.Selected {
			images = append(images, c)
		}
	}
	if len(images) != 1 || images[0].Rect.X != 424 || images[0].Rect.Y != 155 {
		t.Fatalf("icon commands = %+v", images)
	}

	label, ok := findText(m.Plan(&fakeCanvas{}), "Disabled")
	if !ok || label.Rect.W != 420 {
		t.Fatalf("disabled button without icon image = %+v", label)
	}
}
