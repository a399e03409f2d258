package nativemenu_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu"
	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/constants"
)

func TestShowClosesPreviousMenu(t *testing.T) {
	r := newTestRegistry(t, newFakeHost())
	a := r.NewMenu("A", "", nativemenu.WithItems(buttons(3)...))
	b := r.NewMenu("B", "", nativemenu.WithItems(buttons(3)...))

	_ = r.Show(a)
	r.ProcessAction(constants.ActionDown)
	_ = r.Show(b)

	if a.IsOpen() || !b.IsOpen() || r.Current() != b {
		t.Fatalf("a open=%v b open=%v current=%p", a.IsOpen(), b.IsOpen(), r.Current())
	}
	open := 0
	for _, m := range r.Menus() {
		if m.IsOpen() {
			open++
		}
	}
	if open != 1 {
		t.Fatalf("%d menus open, want 1", open)
	}

	_ = r.Show(a)
	if a.SelectedIndex() != 0 {
		t.Fatalf("reopened menu kept selection %d", a.SelectedIndex())
	}
}

func TestSideEffects(t *testing.T) {
	h := newFakeHost()
	r := newTestRegistry(t, h, func(o *nativemenu.Options) {
		o.DisablePlayerMovement = true
		o.DisablePhone = true
	})
	a := r.NewMenu("A", "")
	b := r.NewMenu("B", "")

	r.HideAll()
	r.Hide(a)
	if len(h.calls) != 0 {
		t.Fatalf("hiding with nothing open made calls: %v", h.calls)
	}

	_ = r.Show(a)
	_ = r.Show(b)
	r.Hide(a)
	r.Hide(b)

	want := []string{
		"player:false", "terminate:spcellphone",
		"player:false", "terminate:spcellphone",
		"player:true", "start:spcellphone:512",
	}
	if !reflect.DeepEqual(h.calls, want) {
		t.Fatalf("calls = %v\nwant %v", h.calls, want)
	}
	if r.IsAnyMenuOpen() {
		t.Fatal("menu still open")
	}
}

func TestSideEffectsDisabledByDefault(t *testing.T) {
	h := newFakeHost()
	r := newTestRegistry(t, h)
	m := r.NewMenu("A", "")
	_ = r.Show(m)
	r.HideAll()
	if len(h.calls) != 0 {
		t.Fatalf("calls = %v, want none", h.calls)
	}
}

func TestSideEffectErrorsDoNotAbortTransitions(t *testing.T) {
	h := newFakeHost()
	h.playerErr = errors.New("native call failed")
	h.soundErr = errors.New("no audio")
	r := newTestRegistry(t, h, func(o *nativemenu.Options) { o.DisablePlayerMovement = true })
	m := r.NewMenu("A", "", nativemenu.WithItems(buttons(2)...))

	if err := r.Show(m); err != nil {
		t.Fatalf("Show = %v", err)
	}
	if !m.IsOpen() {
		t.Fatal("menu not open after failed side effect")
	}
	if got := r.ProcessAction(constants.ActionDown); got != nativemenu.OutcomeMoved {
		t.Fatalf("Down with failing sound = %v", got)
	}
	r.Hide(m)
	if m.IsOpen() {
		t.Fatal("menu still open after failed side effect")
	}
}

func TestHideAllClosesEverything(t *testing.T) {
	h := newFakeHost()
	r := newTestRegistry(t, h, func(o *nativemenu.Options) { o.DisablePhone = true })
	a := r.NewMenu("A", "")
	_ = r.Show(a)
	h.reset()

	r.HideAll()
	if r.IsAnyMenuOpen() || a.IsOpen() {
		t.Fatal("menu still open after HideAll")
	}
	if !reflect.DeepEqual(h.calls, []string{"start:spcellphone:512"}) {
		t.Fatalf("calls = %v", h.calls)
	}
}

func TestShowForeignMenu(t *testing.T) {
	r1 := newTestRegistry(t, newFakeHost())
	r2 := newTestRegistry(t, newFakeHost())
	m := r2.NewMenu("Other", "")

	if err := r1.Show(m); !errors.Is(err, nativemenu.ErrForeignMenu) {
		t.Fatalf("Show(foreign) = %v", err)
	}
	if err := r1.Show(nil); err != nil {
		t.Fatalf("Show(nil) = %v", err)
	}
}

func TestNestedMenuAndBack(t *testing.T) {
	h := newFakeHost()
	r := newTestRegistry(t, h, func(o *nativemenu.Options) { o.Keys.Back = constants.KeyBackspace })

	nestedCheck := nativemenu.NewCheckbox("nested", "Nested", "", true, false)
	nested := r.NewMenu("Nested", "", nativemenu.WithItems(nestedCheck))

	clicks := 0
	open := nativemenu.NewButton("open", "Open", "", true)
	open.NestedMenu = nested
	open.OnClick(func(*nativemenu.Button) { clicks++ })

	items := append(buttons(7), open)
	parent := r.NewMenu("Parent", "", nativemenu.WithItems(items...))
	_ = r.Show(parent)
	r.ProcessAction(constants.ActionUp) // select the nested button at index 7

	if got := r.ProcessKeyPress(constants.KeyEnter); got != nativemenu.OutcomeOpenedNested {
		t.Fatalf("Accept = %v, want opened_nested", got)
	}
	if clicks != 1 {
		t.Fatalf("nested button clicks = %d", clicks)
	}
	if parent.IsOpen() || !nested.IsOpen() {
		t.Fatal("nested transition did not swap menus")
	}
	if nestedCheck.Checked() {
		t.Fatal("the accept key reached the nested menu")
	}
	if h.lastSound() != constants.SoundSelect {
		t.Fatalf("sound = %q", h.lastSound())
	}
	if !r.CanGoBack() {
		t.Fatal("CanGoBack = false after nested transition")
	}

	if got := r.ProcessKeyPress(constants.KeyBackspace); got != nativemenu.OutcomeWentBack {
		t.Fatalf("Back = %v, want went_back", got)
	}
	if !parent.IsOpen() || nested.IsOpen() {
		t.Fatal("Back did not restore the parent")
	}
	if start, end := parent.Viewport(); parent.SelectedIndex() != 7 || start != 2 || end != 8 {
		t.Fatalf("restored selection %d viewport [%d,%d)", parent.SelectedIndex(), start, end)
	}

	if r.Back() {
		t.Fatal("Back with empty history returned true")
	}
}

func TestHideForgetsHistory(t *testing.T) {
	r := newTestRegistry(t, newFakeHost())
	nested := r.NewMenu("Nested", "")
	open := nativemenu.NewButton("open", "Open", "", true)
	open.NestedMenu = nested
	parent := r.NewMenu("Parent", "", nativemenu.WithItems(open))

	_ = r.Show(parent)
	r.ProcessAction(constants.ActionAccept)
	r.HideAll()

	if r.CanGoBack() || r.Back() {
		t.Fatal("history survived HideAll")
	}
}

func TestUnregister(t *testing.T) {
	h := newFakeHost()
	r := newTestRegistry(t, h, func(o *nativemenu.Options) { o.DisablePlayerMovement = true })
	m := r.NewMenu("A", "")
	other := r.NewMenu("B", "")
	_ = r.Show(m)

	if !r.Unregister(m) {
		t.Fatal("Unregister returned false")
	}
	if m.IsOpen() || r.IsAnyMenuOpen() {
		t.Fatal("unregistered menu still open")
	}
	if h.calls[len(h.calls)-1] != "player:true" {
		t.Fatalf("player not released: %v", h.calls)
	}
	if menus := r.Menus(); len(menus) != 1 || menus[0] != other {
		t.Fatalf("menus = %v", menus)
	}
	if r.Unregister(m) {
		t.Fatal("second Unregister returned true")
	}
	if err := r.Show(m); !errors.Is(err, nativemenu.ErrForeignMenu) {
		t.Fatalf("Show(unregistered) = %v", err)
	}
}

func TestBackSkipsUnregisteredMenus(t *testing.T) {
	r := newTestRegistry(t, newFakeHost())
	c := r.NewMenu("C", "")
	toC := nativemenu.NewButton("c", "C", "", true)
	toC.NestedMenu = c
	b := r.NewMenu("B", "", nativemenu.WithItems(toC))
	toB := nativemenu.NewButton("b", "B", "", true)
	toB.NestedMenu = b
	a := r.NewMenu("A", "", nativemenu.WithItems(toB))

	_ = r.Show(a)
	r.ProcessAction(constants.ActionAccept) // a -> b
	r.ProcessAction(constants.ActionAccept) // b -> c
	r.Unregister(b)

	if !r.Back() || r.Current() != a {
		t.Fatalf("Back did not skip the unregistered menu, current=%v", r.Current())
	}
}
