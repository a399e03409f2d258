package sdlhost

import "github.com/veandco/go-sdl2/sdl"

// WindowOptions configures the preview window.
type WindowOptions struct {
	Width             int32 // Window width; 0 means 640
	Height            int32 // Window height; 0 means 480
	Borderless        bool  // Remove window decorations (SDL_WINDOW_BORDERLESS)
	Resizable         bool  // Allow window resizing (SDL_WINDOW_RESIZABLE)
	Fullscreen        bool  // Fullscreen mode (SDL_WINDOW_FULLSCREEN)
	FullscreenDesktop bool  // Fullscreen at desktop resolution (SDL_WINDOW_FULLSCREEN_DESKTOP)
	AlwaysOnTop       bool  // Window stays above others (SDL_WINDOW_ALWAYS_ON_TOP)
	Hidden            bool  // Start hidden (omits SDL_WINDOW_SHOWN)
}

const (
	defaultWindowWidth  = 640
	defaultWindowHeight = 480
)

func (wo WindowOptions) IsZero() bool {
	return wo == WindowOptions{}
}

func (wo WindowOptions) size() (int32, int32) {
	w, h := wo.Width, wo.Height
	if w <= 0 {
		w = defaultWindowWidth
	}
	if h <= 0 {
		h = defaultWindowHeight
	}
	return w, h
}

func (wo WindowOptions) ToSDLFlags() uint32 {
	var flags uint32

	if !wo.Hidden {
		flags |= sdl.WINDOW_SHOWN
	}

	if wo.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}

	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}

	if wo.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}

	if wo.FullscreenDesktop {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	if wo.AlwaysOnTop {
		flags |= sdl.WINDOW_ALWAYS_ON_TOP
	}

	return flags
}
