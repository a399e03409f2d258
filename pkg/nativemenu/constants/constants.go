// Package constants defines shared constants, types, and configuration values
// used throughout the nativemenu overlay library.
package constants

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// LogLevelEnvVar is the environment variable used to raise the internal log level.
const LogLevelEnvVar = "NATIVEMENU_LOG_LEVEL"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Action is a logical menu action. Raw host keys and controller buttons are
// resolved to an Action through the configured bindings.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionAccept
	ActionBack
)

func (a Action) String() string {
	switch a {
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionAccept:
		return "Accept"
	case ActionBack:
		return "Back"
	default:
		return "None"
	}
}

// Key is a raw host key code. Values follow the Windows virtual-key table
// that game-modding hosts deliver; platform adapters translate their own
// key codes into these.
type Key int

const (
	KeyNone      Key = 0
	KeyBackspace Key = 8
	KeyTab       Key = 9
	KeyEnter     Key = 13
	KeyEscape    Key = 27
	KeySpace     Key = 32
	KeyPageUp    Key = 33
	KeyPageDown  Key = 34
	KeyEnd       Key = 35
	KeyHome      Key = 36
	KeyLeft      Key = 37
	KeyUp        Key = 38
	KeyRight     Key = 39
	KeyDown      Key = 40
	KeyDelete    Key = 46
	Key0         Key = 48
	KeyA         Key = 65
	KeyNumPad0   Key = 96
	KeyF1        Key = 112
)

var keyNames = map[Key]string{
	KeyNone:      "None",
	KeyBackspace: "Backspace",
	KeyTab:       "Tab",
	KeyEnter:     "Enter",
	KeyEscape:    "Escape",
	KeySpace:     "Space",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyEnd:       "End",
	KeyHome:      "Home",
	KeyLeft:      "Left",
	KeyUp:        "Up",
	KeyRight:     "Right",
	KeyDown:      "Down",
	KeyDelete:    "Delete",
}

// Letter returns the key code of an ASCII letter ('a'..'z' or 'A'..'Z').
func Letter(r rune) Key {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	if r < 'A' || r > 'Z' {
		return KeyNone
	}
	return KeyA + Key(r-'A')
}

// Digit returns the key code of a top-row digit.
func Digit(d int) Key {
	if d < 0 || d > 9 {
		return KeyNone
	}
	return Key0 + Key(d)
}

// Function returns the key code of F1..F12.
func Function(n int) Key {
	if n < 1 || n > 12 {
		return KeyNone
	}
	return KeyF1 + Key(n-1)
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	switch {
	case k >= KeyA && k < KeyA+26:
		return string(rune('A' + (k - KeyA)))
	case k >= Key0 && k <= Key0+9:
		return strconv.Itoa(int(k - Key0))
	case k >= KeyNumPad0 && k <= KeyNumPad0+9:
		return "NumPad" + strconv.Itoa(int(k-KeyNumPad0))
	case k >= KeyF1 && k < KeyF1+12:
		return "F" + strconv.Itoa(int(k-KeyF1)+1)
	}
	return "Key(" + strconv.Itoa(int(k)) + ")"
}

// ParseKey resolves a key name such as "Up", "Enter", "G", "7", "NumPad4" or "F5".
func ParseKey(name string) (Key, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return KeyNone, nil
	}
	for k, n := range keyNames {
		if strings.EqualFold(n, name) {
			return k, nil
		}
	}

	upper := strings.ToUpper(name)
	switch {
	case len(upper) == 1 && upper[0] >= 'A' && upper[0] <= 'Z':
		return Letter(rune(upper[0])), nil
	case len(upper) == 1 && upper[0] >= '0' && upper[0] <= '9':
		return Digit(int(upper[0] - '0')), nil
	case strings.HasPrefix(upper, "NUMPAD"):
		if n, err := strconv.Atoi(upper[len("NUMPAD"):]); err == nil && n >= 0 && n <= 9 {
			return KeyNumPad0 + Key(n), nil
		}
	case strings.HasPrefix(upper, "F"):
		if n, err := strconv.Atoi(upper[1:]); err == nil && n >= 1 && n <= 12 {
			return Function(n), nil
		}
	}

	return KeyNone, fmt.Errorf("unknown key %q", name)
}

func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Key) UnmarshalText(text []byte) error {
	parsed, err := ParseKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ControllerButton identifies a pad button as the host's native
// IS_BUTTON_PRESSED call numbers them.
type ControllerButton int

const (
	ControllerDPadUp    ControllerButton = 8
	ControllerDPadDown  ControllerButton = 9
	ControllerDPadLeft  ControllerButton = 10
	ControllerDPadRight ControllerButton = 11
	ControllerA         ControllerButton = 16
	ControllerB         ControllerButton = 17
)

// ControllerPad is the pad index polled for menu navigation.
const ControllerPad = 0

func (b ControllerButton) String() string {
	switch b {
	case ControllerDPadUp:
		return "DPadUp"
	case ControllerDPadDown:
		return "DPadDown"
	case ControllerDPadLeft:
		return "DPadLeft"
	case ControllerDPadRight:
		return "DPadRight"
	case ControllerA:
		return "A"
	case ControllerB:
		return "B"
	default:
		return "Button(" + strconv.Itoa(int(b)) + ")"
	}
}

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft      TextAlign = iota // Align text to the left edge
	TextAlignCenter                     // Center text horizontally
	TextAlignRight                      // Align text to the right edge
	TextAlignWordBreak                  // Left aligned, wrapped at the rectangle width
)

// Frontend sound names requested through the host's sound bridge.
const (
	SoundNavigate   = "FRONTEND_MENU_HIGHLIGHT_DOWN_UP"
	SoundSliderDown = "FRONTEND_MENU_SLIDER_DOWN"
	SoundSliderUp   = "FRONTEND_MENU_SLIDER_UP"
	SoundSelect     = "FRONTEND_MENU_SELECT"
	SoundError      = "FRONTEND_MENU_ERROR"
	SoundToggleOn   = "FRONTEND_MENU_TOGGLE_ON"
	SoundToggleOff  = "FRONTEND_MENU_TOGGLE_OFF"
)

// AllSounds lists every sound the menus may request.
var AllSounds = []string{
	SoundNavigate,
	SoundSliderDown,
	SoundSliderUp,
	SoundSelect,
	SoundError,
	SoundToggleOn,
	SoundToggleOff,
}

// PhoneScript is the host script suspended while a menu is open.
const PhoneScript = "spcellphone"

// PhoneScriptStackSize is the stack size used when restarting PhoneScript.
const PhoneScriptStackSize = 512

// Menu defaults.
const (
	DefaultMaxVisible = 6
	MinMaxVisible     = 2

	DefaultListBoxWidth float32 = 200
)

// Default timing.
const (
	DefaultBannerFrameInterval      = 120 * time.Millisecond
	DefaultControllerRepeatDelay    = 300 * time.Millisecond
	DefaultControllerRepeatInterval = 100 * time.Millisecond
)

// Layout of the overlay, in host screen pixels.
const (
	MenuX     float32 = 29
	MenuWidth float32 = 432
	RowHeight float32 = 38

	BannerY      float32 = 17
	BannerHeight float32 = 97

	DescriptionBarY float32 = 114
	FirstRowY       float32 = 152

	MenuFontName      = "Calibri"
	MenuFontSize      = 26
	MenuTitleFontSize = 42
)
