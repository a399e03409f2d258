package nativemenu

import (
	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/internal"
)

// Theme defines the colours menus are drawn with.
type Theme = internal.Theme

// DefaultTheme returns the dark overlay theme.
func DefaultTheme() Theme {
	return internal.DefaultTheme()
}

// LightTheme returns a bright variant for light backdrops.
func LightTheme() Theme {
	return internal.LightTheme()
}

// HexToColor converts a 0xRRGGBB value to an opaque colour.
var HexToColor = internal.HexToColor
