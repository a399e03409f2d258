// Command showcase opens a preview window with the NativeUI IV showcase
// menu. Press G to open or close it, the arrow keys and Enter to navigate.
//
// With -script, menus are built by a Lua script instead; the script must
// leave the menu to toggle in the global "main".
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"time"

	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu"
	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/constants"
	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/platform/beepsound"
	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/platform/luascript"
	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/platform/sdlhost"
	"github.com/veandco/go-sdl2/sdl"
	lua "github.com/yuin/gopher-lua"
	"golang.org/x/image/font/gofont/goregular"
)

const tickInterval = 100 * time.Millisecond

func main() {
	var (
		configPath = flag.String("config", "", "options file (TOML)")
		fontPath   = flag.String("font", "", "TTF font used for all menu text; defaults to Go Regular")
		soundDir   = flag.String("sounds", "", "directory of <SOUND_NAME>.wav files")
		scriptPath = flag.String("script", "", "Lua script that builds the menus")
		logLevel   = flag.String("log-level", "info", "debug, info, warn or error")
	)
	flag.Parse()

	nativemenu.SetRawLogLevel(*logLevel)
	logger := nativemenu.GetLogger()
	defer nativemenu.CloseLog()

	if err := run(*configPath, *fontPath, *soundDir, *scriptPath, logger); err != nil {
		logger.Error("Showcase failed", "error", err)
		os.Exit(1)
	}
}

func run(configPath, fontPath, soundDir, scriptPath string, logger *slog.Logger) error {
	opts, err := loadOptions(configPath)
	if err != nil {
		return err
	}

	if err := sdlhost.Init(); err != nil {
		return err
	}
	defer sdlhost.Quit()

	window, err := sdlhost.NewWindow("NativeUI IV showcase", sdlhost.WindowOptions{Width: 640, Height: 520})
	if err != nil {
		return err
	}
	defer window.Close()

	if fontPath == "" {
		path, cleanup, err := writeFallbackFont()
		if err != nil {
			return err
		}
		defer cleanup()
		fontPath = path
	}
	canvas := sdlhost.NewCanvas(window.Renderer, fontPath, nil)
	defer canvas.Close()

	pad := sdlhost.OpenPad()
	defer pad.Close()

	host := nativemenu.Host{Controller: pad}
	if soundDir != "" {
		player, err := beepsound.OpenSpeaker(os.DirFS(soundDir))
		if err != nil {
			return err
		}
		if err := player.Preload(constants.AllSounds...); err != nil {
			logger.Warn("Some sounds are missing", "error", err)
		}
		host.Sounds = player
	}

	registry := nativemenu.NewRegistry(host, opts)
	defer registry.Close()

	n := &notifier{}
	var mainMenu *nativemenu.Menu
	if scriptPath != "" {
		L := lua.NewState()
		defer L.Close()
		mainMenu, err = runScript(L, registry, scriptPath)
	} else {
		mainMenu, err = buildShowcase(registry, n)
	}
	if err != nil {
		return err
	}

	logger.Info("Showcase ready, press G to toggle the menu")
	return loop(window, canvas, pad, registry, mainMenu, n, logger)
}

func loadOptions(path string) (nativemenu.Options, error) {
	if path != "" {
		return nativemenu.LoadOptions(path)
	}
	opts := nativemenu.DefaultOptions()
	opts.DisablePhone = true
	opts.EnableControllerSupport = true
	opts.EnableSounds = true
	return opts, nil
}

func writeFallbackFont() (string, func(), error) {
	f, err := os.CreateTemp("", "nativemenu-font-*.ttf")
	if err != nil {
		return "", nil, fmt.Errorf("write fallback font: %w", err)
	}
	defer f.Close()
	if _, err := f.Write(goregular.TTF); err != nil {
		os.Remove(f.Name())
		return "", nil, fmt.Errorf("write fallback font: %w", err)
	}
	return f.Name(), func() { os.Remove(f.Name()) }, nil
}

func runScript(L *lua.LState, r *nativemenu.Registry, path string) (*nativemenu.Menu, error) {
	luascript.Preload(L, r)
	if err := L.DoFile(path); err != nil {
		return nil, fmt.Errorf("run %s: %w", path, err)
	}
	ud, ok := L.GetGlobal("main").(*lua.LUserData)
	if !ok {
		return nil, fmt.Errorf("%s: global 'main' is not a menu", path)
	}
	m, ok := ud.Value.(*nativemenu.Menu)
	if !ok {
		return nil, fmt.Errorf("%s: global 'main' is not a menu", path)
	}
	return m, nil
}

func loop(window *sdlhost.Window, canvas *sdlhost.Canvas, pad *sdlhost.Pad, r *nativemenu.Registry, mainMenu *nativemenu.Menu, n *notifier, logger *slog.Logger) error {
	background := color.RGBA{R: 40, G: 52, B: 64, A: 255}
	lastTick := time.Now()

	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return nil

			case *sdl.KeyboardEvent:
				if e.Type != sdl.KEYDOWN {
					continue
				}
				key := sdlhost.KeyFromSDL(e.Keysym.Sym)
				r.ProcessKeyPress(key)
				if key == constants.Letter('G') {
					if r.IsAnyMenuOpen() {
						r.HideAll()
					} else if err := r.Show(mainMenu); err != nil {
						return err
					}
				}

			case *sdl.ControllerDeviceEvent:
				pad.Refresh()
			}
		}

		if time.Since(lastTick) >= tickInterval {
			lastTick = time.Now()
			if err := r.ProcessController(); err != nil {
				logger.Warn("Controller support disabled", "error", err)
			}
		}

		window.Clear(background)
		r.ProcessDrawing(canvas)
		n.draw(canvas, float32(window.GetHeight()))
		window.Present()
	}
}
