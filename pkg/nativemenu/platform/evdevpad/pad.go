//go:build linux

// Package evdevpad reads a gamepad straight from a Linux input device with
// go-evdev, for hosts that have no controller API of their own.
package evdevpad

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/constants"
	"github.com/holoplot/go-evdev"
)

var ErrNoGamepad = errors.New("no gamepad found")

// device is the part of *evdev.InputDevice the pad reads.
type device interface {
	State(t evdev.EvType) (evdev.StateMap, error)
	AbsInfos() (map[evdev.EvCode]evdev.AbsInfo, error)
	Close() error
}

// Pad implements nativemenu.Controller. Any read error is returned to the
// caller, which disables controller polling.
type Pad struct {
	dev  device
	name string
}

// Open opens the input device at path, e.g. /dev/input/event3.
func Open(path string) (*Pad, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	name, _ := dev.Name()
	return &Pad{dev: dev, name: name}, nil
}

// Find opens the first input device whose name contains one of hints, case
// insensitive. With no hints, the first device reporting a south face
// button is used.
func Find(hints ...string) (*Pad, error) {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return nil, fmt.Errorf("list input devices: %w", err)
	}

	for _, p := range paths {
		if len(hints) > 0 && !matches(p.Name, hints) {
			continue
		}
		pad, err := Open(p.Path)
		if err != nil {
			continue
		}
		if len(hints) > 0 || pad.hasButton(evdev.BTN_SOUTH) {
			return pad, nil
		}
		pad.Close()
	}
	return nil, ErrNoGamepad
}

func matches(name string, hints []string) bool {
	name = strings.ToLower(name)
	for _, h := range hints {
		if strings.Contains(name, strings.ToLower(h)) {
			return true
		}
	}
	return false
}

func (p *Pad) hasButton(code evdev.EvCode) bool {
	if d, ok := p.dev.(*evdev.InputDevice); ok {
		for _, c := range d.CapableEvents(evdev.EV_KEY) {
			if c == code {
				return true
			}
		}
	}
	return false
}

// Name returns the device name reported by the kernel.
func (p *Pad) Name() string {
	return p.name
}

func (p *Pad) Close() error {
	return p.dev.Close()
}

// IsUsingController reports true while the device is open.
func (p *Pad) IsUsingController() (bool, error) {
	return p.dev != nil, nil
}

func (p *Pad) IsButtonPressed(_ int, button constants.ControllerButton) (bool, error) {
	switch button {
	case constants.ControllerA:
		return p.key(evdev.BTN_SOUTH)
	case constants.ControllerB:
		return p.key(evdev.BTN_EAST)
	case constants.ControllerDPadUp:
		return p.dpad(evdev.BTN_DPAD_UP, evdev.ABS_HAT0Y, -1)
	case constants.ControllerDPadDown:
		return p.dpad(evdev.BTN_DPAD_DOWN, evdev.ABS_HAT0Y, 1)
	case constants.ControllerDPadLeft:
		return p.dpad(evdev.BTN_DPAD_LEFT, evdev.ABS_HAT0X, -1)
	case constants.ControllerDPadRight:
		return p.dpad(evdev.BTN_DPAD_RIGHT, evdev.ABS_HAT0X, 1)
	}
	return false, nil
}

func (p *Pad) key(code evdev.EvCode) (bool, error) {
	state, err := p.dev.State(evdev.EV_KEY)
	if err != nil {
		return false, err
	}
	return state[code], nil
}

// dpad checks the d-pad button first, then the hat axis pads without d-pad
// buttons report instead.
func (p *Pad) dpad(code, axis evdev.EvCode, sign int32) (bool, error) {
	pressed, err := p.key(code)
	if err != nil || pressed {
		return pressed, err
	}

	abs, err := p.dev.AbsInfos()
	if err != nil {
		return false, err
	}
	info, ok := abs[axis]
	if !ok {
		return false, nil
	}
	return info.Value*sign > 0, nil
}
