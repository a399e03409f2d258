package sdlhost

import (
	"testing"

	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/constants"
	"github.com/veandco/go-sdl2/sdl"
)

func TestKeyFromSDL(t *testing.T) {
	cases := map[sdl.Keycode]constants.Key{
		sdl.K_UP:     constants.KeyUp,
		sdl.K_RETURN: constants.KeyEnter,
		sdl.K_g:      constants.Letter('G'),
		sdl.K_7:      constants.Digit(7),
		sdl.K_F5:     constants.Function(5),
		sdl.K_KP_4:   constants.KeyNumPad0 + 4,
		sdl.K_LCTRL:  constants.KeyNone,
	}
	for code, want := range cases {
		if got := KeyFromSDL(code); got != want {
			t.Errorf("KeyFromSDL(%d) = %v, want %v", code, got, want)
		}
	}
}

func TestWindowOptions(t *testing.T) {
	var opts WindowOptions
	if !opts.IsZero() {
		t.Fatal("zero options not zero")
	}
	if w, h := opts.size(); w != 640 || h != 480 {
		t.Fatalf("default size %dx%d", w, h)
	}
	if opts.ToSDLFlags() != sdl.WINDOW_SHOWN {
		t.Fatal("default window is not shown")
	}

	opts = WindowOptions{Hidden: true, Borderless: true}
	flags := opts.ToSDLFlags()
	if flags&sdl.WINDOW_SHOWN != 0 || flags&sdl.WINDOW_BORDERLESS == 0 {
		t.Fatalf("flags = %#x", flags)
	}
}

func TestPadWithoutControllerIsIdle(t *testing.T) {
	p := &Pad{}
	using, err := p.IsUsingController()
	if using || err != nil {
		t.Fatalf("IsUsingController = %v, %v", using, err)
	}
	pressed, err := p.IsButtonPressed(constants.ControllerPad, constants.ControllerA)
	if pressed || err != nil {
		t.Fatalf("IsButtonPressed = %v, %v", pressed, err)
	}
	if len(padButtons) != 6 {
		t.Fatalf("%d pad buttons mapped", len(padButtons))
	}
}
