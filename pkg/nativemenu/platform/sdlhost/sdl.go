// Package sdlhost runs nativemenu menus in a plain SDL2 window. It provides
// a Canvas backed by an SDL renderer and SDL_ttf, key translation for SDL
// keycodes, and a Controller backed by the SDL game controller API.
//
// It exists for previewing and testing menus outside a game host.
package sdlhost

import (
	"fmt"

	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Init starts the SDL video, game controller and font subsystems.
func Init() error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("init sdl: %w", err)
	}

	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return fmt.Errorf("init ttf: %w", err)
	}

	nativemenu.GetLogger().Debug("SDL initialized", "version", sdlVersion())
	return nil
}

// Quit shuts down what Init started.
func Quit() {
	ttf.Quit()
	sdl.Quit()
}

func sdlVersion() string {
	var v sdl.Version
	sdl.GetVersion(&v)
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}
