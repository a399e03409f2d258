package nativemenu_test

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu"
	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/constants"
)

// fakeHost records every call the registry makes to the host.
type fakeHost struct {
	calls []string

	soundErr  error
	playerErr error

	using       bool
	pressed     map[constants.ControllerButton]bool
	pollErr     error
	pollCount   int
	buttonPolls []constants.ControllerButton
}

func newFakeHost() *fakeHost {
	return &fakeHost{pressed: make(map[constants.ControllerButton]bool)}
}

func (h *fakeHost) PlaySound(name string) error {
	h.calls = append(h.calls, "sound:"+name)
	return h.soundErr
}

func (h *fakeHost) SetPlayerControl(enabled bool) error {
	h.calls = append(h.calls, fmt.Sprintf("player:%v", enabled))
	return h.playerErr
}

func (h *fakeHost) TerminateScript(name string) error {
	h.calls = append(h.calls, "terminate:"+name)
	return nil
}

func (h *fakeHost) StartScript(name string, stackSize int) error {
	h.calls = append(h.calls, fmt.Sprintf("start:%s:%d", name, stackSize))
	return nil
}

func (h *fakeHost) IsUsingController() (bool, error) {
	h.pollCount++
	return h.using, h.pollErr
}

func (h *fakeHost) IsButtonPressed(pad int, button constants.ControllerButton) (bool, error) {
	h.buttonPolls = append(h.buttonPolls, button)
	return h.pressed[button], nil
}

func (h *fakeHost) host() nativemenu.Host {
	return nativemenu.Host{Sounds: h, Player: h, Scripts: h, Controller: h}
}

func (h *fakeHost) sounds() []string {
	var out []string
	for _, c := range h.calls {
		if name, ok := strings.CutPrefix(c, "sound:"); ok {
			out = append(out, name)
		}
	}
	return out
}

func (h *fakeHost) lastSound() string {
	s := h.sounds()
	if len(s) == 0 {
		return ""
	}
	return s[len(s)-1]
}

func (h *fakeHost) reset() {
	h.calls = nil
}

func newTestRegistry(t testing.TB, h *fakeHost, mutate ...func(*nativemenu.Options)) *nativemenu.Registry {
	t.Helper()
	opts := nativemenu.DefaultOptions()
	opts.EnableSounds = true
	for _, fn := range mutate {
		fn(&opts)
	}
	r := nativemenu.NewRegistry(h.host(), opts)
	r.SetLogger(slog.New(slog.DiscardHandler))
	t.Cleanup(r.Close)
	return r
}

func buttons(n int) []nativemenu.Item {
	items := make([]nativemenu.Item, n)
	for i := range items {
		items[i] = nativemenu.NewButton(fmt.Sprintf("b%d", i), fmt.Sprintf("Button %d", i), "", true)
	}
	return items
}

// checkViewport asserts the navigation invariants of an open menu.
func checkViewport(t *testing.T, m *nativemenu.Menu) {
	t.Helper()
	n, sel, maxVisible := m.Len(), m.SelectedIndex(), m.MaxVisible()
	start, end := m.Viewport()

	if n == 0 {
		if sel != 0 {
			t.Fatalf("empty menu has selection %d", sel)
		}
		return
	}
	if sel < 0 || sel >= n {
		t.Fatalf("selection %d outside [0,%d)", sel, n)
	}
	if n <= maxVisible {
		if vs, ve := m.VisibleRange(); vs != 0 || ve != n {
			t.Fatalf("short menu visible range [%d,%d), want [0,%d)", vs, ve, n)
		}
		return
	}
	if start < 0 || start > sel || sel >= end || end > n {
		t.Fatalf("viewport [%d,%d) does not contain selection %d of %d", start, end, sel, n)
	}
	if end-start != maxVisible {
		t.Fatalf("viewport [%d,%d) width %d, want %d", start, end, end-start, maxVisible)
	}
}

// fakeCanvas measures every rune as 10x20 pixels and records draw calls.
type fakeCanvas struct {
	rects   []nativemenu.Rect
	texts   []string
	sprites []nativemenu.Rect
}

func (c *fakeCanvas) MeasureText(text string, _ nativemenu.Font, wrapWidth float32) nativemenu.Size {
	w := float32(utf8.RuneCountInString(text)) * 10
	if wrapWidth > 0 && w > wrapWidth {
		lines := int(w/wrapWidth) + 1
		return nativemenu.Size{W: wrapWidth, H: float32(lines) * 20}
	}
	return nativemenu.Size{W: w, H: 20}
}

func (c *fakeCanvas) DrawRectangle(r nativemenu.Rect, _ color.RGBA) {
	c.rects = append(c.rects, r)
}

func (c *fakeCanvas) DrawText(text string, _ nativemenu.Rect, _ constants.TextAlign, _ color.RGBA, _ nativemenu.Font) {
	c.texts = append(c.texts, text)
}

func (c *fakeCanvas) DrawSprite(_ image.Image, r nativemenu.Rect) {
	c.sprites = append(c.sprites, r)
}
