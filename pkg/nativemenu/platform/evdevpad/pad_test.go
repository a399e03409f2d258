//go:build linux

package evdevpad

import (
	"errors"
	"testing"

	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/constants"
	"github.com/holoplot/go-evdev"
)

type fakeDevice struct {
	keys evdev.StateMap
	abs  map[evdev.EvCode]evdev.AbsInfo
	err  error
}

func (d *fakeDevice) State(evdev.EvType) (evdev.StateMap, error) { return d.keys, d.err }

func (d *fakeDevice) AbsInfos() (map[evdev.EvCode]evdev.AbsInfo, error) { return d.abs, d.err }

func (d *fakeDevice) Close() error { return nil }

func TestPadButtons(t *testing.T) {
	dev := &fakeDevice{
		keys: evdev.StateMap{evdev.BTN_SOUTH: true, evdev.BTN_DPAD_UP: true},
		abs: map[evdev.EvCode]evdev.AbsInfo{
			evdev.ABS_HAT0X: {Value: 1},
			evdev.ABS_HAT0Y: {Value: 0},
		},
	}
	p := &Pad{dev: dev}

	want := map[constants.ControllerButton]bool{
		constants.ControllerA:         true,
		constants.ControllerB:         false,
		constants.ControllerDPadUp:    true,
		constants.ControllerDPadDown:  false,
		constants.ControllerDPadLeft:  false,
		constants.ControllerDPadRight: true,
	}
	for button, pressed := range want {
		got, err := p.IsButtonPressed(constants.ControllerPad, button)
		if err != nil {
			t.Fatal(err)
		}
		if got != pressed {
			t.Errorf("%v pressed = %v, want %v", button, got, pressed)
		}
	}

	if using, _ := p.IsUsingController(); !using {
		t.Fatal("open pad not in use")
	}
}

func TestPadReadErrorIsReturned(t *testing.T) {
	readErr := errors.New("device unplugged")
	p := &Pad{dev: &fakeDevice{err: readErr}}

	if _, err := p.IsButtonPressed(constants.ControllerPad, constants.ControllerDPadLeft); !errors.Is(err, readErr) {
		t.Fatalf("err = %v, want the read error", err)
	}
}

func TestMatches(t *testing.T) {
	if !matches("Xbox Wireless Controller", []string{"xbox"}) {
		t.Fatal("hint did not match")
	}
	if matches("AT Translated Set 2 keyboard", []string{"pad", "controller"}) {
		t.Fatal("keyboard matched")
	}
}
