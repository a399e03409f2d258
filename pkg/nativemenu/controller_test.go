package nativemenu_test

import (
	"errors"
	"testing"
	"time"

	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu"
	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/constants"
)

func controllerRegistry(t *testing.T, h *fakeHost, mutate ...func(*nativemenu.Options)) (*nativemenu.Registry, *time.Time) {
	t.Helper()
	mutate = append([]func(*nativemenu.Options){func(o *nativemenu.Options) { o.EnableControllerSupport = true }}, mutate...)
	r := newTestRegistry(t, h, mutate...)
	now := time.Unix(1000, 0)
	r.SetControllerClock(func() time.Time { return now })
	return r, &now
}

func TestControllerRepeatsHeldButton(t *testing.T) {
	h := newFakeHost()
	h.using = true
	r, now := controllerRegistry(t, h)
	m := r.NewMenu("Pad", "", nativemenu.WithItems(buttons(10)...))
	_ = r.Show(m)

	h.pressed[constants.ControllerDPadDown] = true

	steps := []struct {
		advance time.Duration
		want    int
	}{
		{0, 1},
		{100 * time.Millisecond, 1},
		{200 * time.Millisecond, 2},
		{100 * time.Millisecond, 3},
		{50 * time.Millisecond, 3},
	}
	for i, step := range steps {
		*now = now.Add(step.advance)
		if err := r.ProcessController(); err != nil {
			t.Fatal(err)
		}
		if m.SelectedIndex() != step.want {
			t.Fatalf("step %d: selection %d, want %d", i, m.SelectedIndex(), step.want)
		}
	}

	h.pressed[constants.ControllerDPadDown] = false
	_ = r.ProcessController()
	h.pressed[constants.ControllerDPadDown] = true
	_ = r.ProcessController()
	if m.SelectedIndex() != 4 {
		t.Fatalf("release and press again: selection %d, want 4", m.SelectedIndex())
	}
}

func TestControllerFirstPressedButtonWins(t *testing.T) {
	h := newFakeHost()
	h.using = true
	r, _ := controllerRegistry(t, h)
	list := nativemenu.NewCyclableList("l", "List", "", true, "a", "b", "c")
	m := r.NewMenu("Pad", "", nativemenu.WithItems(list, nativemenu.NewButton("b", "B", "", true)))
	_ = r.Show(m)

	h.pressed[constants.ControllerDPadRight] = true
	h.pressed[constants.ControllerA] = true
	_ = r.ProcessController()

	if list.SelectedIndex() != 1 {
		t.Fatalf("right was not applied: list index %d", list.SelectedIndex())
	}

	want := []constants.ControllerButton{
		constants.ControllerDPadUp,
		constants.ControllerDPadDown,
		constants.ControllerDPadLeft,
		constants.ControllerDPadRight,
	}
	if len(h.buttonPolls) != len(want) {
		t.Fatalf("polled %v, want %v", h.buttonPolls, want)
	}
	for i := range want {
		if h.buttonPolls[i] != want[i] {
			t.Fatalf("polled %v, want %v", h.buttonPolls, want)
		}
	}
}

func TestControllerSkipsPollingWhenInactive(t *testing.T) {
	h := newFakeHost()
	h.using = true

	r := newTestRegistry(t, h)
	m := r.NewMenu("Pad", "", nativemenu.WithItems(buttons(2)...))
	_ = r.Show(m)
	_ = r.ProcessController()
	if h.pollCount != 0 {
		t.Fatal("polled with controller support disabled")
	}

	r2, _ := controllerRegistry(t, h)
	r2.NewMenu("Closed", "")
	_ = r2.ProcessController()
	if h.pollCount != 0 {
		t.Fatal("polled with no menu open")
	}

	h.using = false
	m2 := r2.NewMenu("Open", "", nativemenu.WithItems(buttons(2)...))
	_ = r2.Show(m2)
	h.pressed[constants.ControllerDPadDown] = true
	_ = r2.ProcessController()
	if h.pollCount != 1 || len(h.buttonPolls) != 0 || m2.SelectedIndex() != 0 {
		t.Fatalf("keyboard user: polls=%d buttons=%v selection=%d", h.pollCount, h.buttonPolls, m2.SelectedIndex())
	}
}

func TestControllerBackOnlyWhenBound(t *testing.T) {
	h := newFakeHost()
	h.using = true
	r, _ := controllerRegistry(t, h)
	nested := r.NewMenu("Nested", "")
	open := nativemenu.NewButton("open", "Open", "", true)
	open.NestedMenu = nested
	parent := r.NewMenu("Parent", "", nativemenu.WithItems(open))
	_ = r.Show(parent)
	r.ProcessAction(constants.ActionAccept)

	h.pressed[constants.ControllerB] = true
	_ = r.ProcessController()
	if !nested.IsOpen() {
		t.Fatal("B went back with no Back key bound")
	}

	opts := r.Options()
	opts.Keys.Back = constants.KeyBackspace
	r.SetOptions(opts)
	h.pressed[constants.ControllerB] = false
	_ = r.ProcessController()
	h.pressed[constants.ControllerB] = true
	_ = r.ProcessController()
	if !parent.IsOpen() {
		t.Fatal("B did not go back with a Back key bound")
	}
}

func TestControllerCircuitBreaker(t *testing.T) {
	h := newFakeHost()
	h.using = true
	h.pollErr = errors.New("native bridge unavailable")
	r, _ := controllerRegistry(t, h)
	m := r.NewMenu("Pad", "", nativemenu.WithItems(buttons(2)...))
	_ = r.Show(m)

	err := r.ProcessController()
	if err == nil {
		t.Fatal("expected an error")
	}
	if !nativemenu.IsHostError(err) || !errors.Is(err, h.pollErr) {
		t.Fatalf("error = %v, want host error wrapping the poll failure", err)
	}
	if r.Options().EnableControllerSupport {
		t.Fatal("controller support still enabled")
	}

	if err := r.ProcessController(); err != nil {
		t.Fatalf("second poll = %v", err)
	}
	if h.pollCount != 1 {
		t.Fatalf("polled %d times after the breaker tripped", h.pollCount)
	}
	if !m.IsOpen() {
		t.Fatal("breaker closed the menu")
	}
}
