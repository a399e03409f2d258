package sdlhost

import (
	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/constants"
	"github.com/veandco/go-sdl2/sdl"
)

var namedKeys = map[sdl.Keycode]constants.Key{
	sdl.K_BACKSPACE: constants.KeyBackspace,
	sdl.K_TAB:       constants.KeyTab,
	sdl.K_RETURN:    constants.KeyEnter,
	sdl.K_KP_ENTER:  constants.KeyEnter,
	sdl.K_ESCAPE:    constants.KeyEscape,
	sdl.K_SPACE:     constants.KeySpace,
	sdl.K_PAGEUP:    constants.KeyPageUp,
	sdl.K_PAGEDOWN:  constants.KeyPageDown,
	sdl.K_END:       constants.KeyEnd,
	sdl.K_HOME:      constants.KeyHome,
	sdl.K_LEFT:      constants.KeyLeft,
	sdl.K_UP:        constants.KeyUp,
	sdl.K_RIGHT:     constants.KeyRight,
	sdl.K_DOWN:      constants.KeyDown,
	sdl.K_DELETE:    constants.KeyDelete,
	sdl.K_KP_0:      constants.KeyNumPad0,
	sdl.K_KP_1:      constants.KeyNumPad0 + 1,
	sdl.K_KP_2:      constants.KeyNumPad0 + 2,
	sdl.K_KP_3:      constants.KeyNumPad0 + 3,
	sdl.K_KP_4:      constants.KeyNumPad0 + 4,
	sdl.K_KP_5:      constants.KeyNumPad0 + 5,
	sdl.K_KP_6:      constants.KeyNumPad0 + 6,
	sdl.K_KP_7:      constants.KeyNumPad0 + 7,
	sdl.K_KP_8:      constants.KeyNumPad0 + 8,
	sdl.K_KP_9:      constants.KeyNumPad0 + 9,
}

var functionKeys = []sdl.Keycode{
	sdl.K_F1, sdl.K_F2, sdl.K_F3, sdl.K_F4, sdl.K_F5, sdl.K_F6,
	sdl.K_F7, sdl.K_F8, sdl.K_F9, sdl.K_F10, sdl.K_F11, sdl.K_F12,
}

// KeyFromSDL translates an SDL keycode. Unmapped keys return KeyNone.
func KeyFromSDL(code sdl.Keycode) constants.Key {
	if k, ok := namedKeys[code]; ok {
		return k
	}
	switch {
	case code >= sdl.K_a && code <= sdl.K_z:
		return constants.Letter(rune('a' + (code - sdl.K_a)))
	case code >= sdl.K_0 && code <= sdl.K_9:
		return constants.Digit(int(code - sdl.K_0))
	}
	for i, f := range functionKeys {
		if code == f {
			return constants.Function(i + 1)
		}
	}
	return constants.KeyNone
}

var padButtons = map[constants.ControllerButton]sdl.GameControllerButton{
	constants.ControllerDPadUp:    sdl.CONTROLLER_BUTTON_DPAD_UP,
	constants.ControllerDPadDown:  sdl.CONTROLLER_BUTTON_DPAD_DOWN,
	constants.ControllerDPadLeft:  sdl.CONTROLLER_BUTTON_DPAD_LEFT,
	constants.ControllerDPadRight: sdl.CONTROLLER_BUTTON_DPAD_RIGHT,
	constants.ControllerA:         sdl.CONTROLLER_BUTTON_A,
	constants.ControllerB:         sdl.CONTROLLER_BUTTON_B,
}

// Pad is a nativemenu.Controller over the first attached SDL game
// controller. Call Refresh from the event loop when devices are added or
// removed.
type Pad struct {
	controller *sdl.GameController
}

// OpenPad opens the first game controller, if any.
func OpenPad() *Pad {
	p := &Pad{}
	p.Refresh()
	return p
}

// Refresh reopens the first attached game controller.
func (p *Pad) Refresh() {
	if p.controller != nil && p.controller.Attached() {
		return
	}
	p.Close()
	for i := 0; i < sdl.NumJoysticks(); i++ {
		if sdl.IsGameController(i) {
			p.controller = sdl.GameControllerOpen(i)
			return
		}
	}
}

// Close releases the controller.
func (p *Pad) Close() {
	if p.controller != nil {
		p.controller.Close()
		p.controller = nil
	}
}

func (p *Pad) IsUsingController() (bool, error) {
	return p.controller != nil && p.controller.Attached(), nil
}

func (p *Pad) IsButtonPressed(_ int, button constants.ControllerButton) (bool, error) {
	if p.controller == nil {
		return false, nil
	}
	b, ok := padButtons[button]
	if !ok {
		return false, nil
	}
	return p.controller.Button(b) == 1, nil
}
