package nativemenu

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/constants"
	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/internal"
	"github.com/BurntSushi/toml"
)

// KeyBindings maps host keys to the logical menu actions. A binding of
// KeyNone leaves the action unbound.
type KeyBindings struct {
	Up     constants.Key `toml:"up"`
	Down   constants.Key `toml:"down"`
	Left   constants.Key `toml:"left"`
	Right  constants.Key `toml:"right"`
	Accept constants.Key `toml:"accept"`
	Back   constants.Key `toml:"back"` // Unbound by default
}

// ActionFor resolves a raw key. Bindings are checked in the order Up, Down,
// Left, Right, Accept, Back so a key bound twice resolves to the first.
func (k KeyBindings) ActionFor(key constants.Key) constants.Action {
	if key == constants.KeyNone {
		return constants.ActionNone
	}
	switch key {
	case k.Up:
		return constants.ActionUp
	case k.Down:
		return constants.ActionDown
	case k.Left:
		return constants.ActionLeft
	case k.Right:
		return constants.ActionRight
	case k.Accept:
		return constants.ActionAccept
	case k.Back:
		return constants.ActionBack
	}
	return constants.ActionNone
}

// KeyFor returns the key bound to an action.
func (k KeyBindings) KeyFor(action constants.Action) constants.Key {
	switch action {
	case constants.ActionUp:
		return k.Up
	case constants.ActionDown:
		return k.Down
	case constants.ActionLeft:
		return k.Left
	case constants.ActionRight:
		return k.Right
	case constants.ActionAccept:
		return k.Accept
	case constants.ActionBack:
		return k.Back
	}
	return constants.KeyNone
}

// Bind sets the key for a named action ("up", "down", "left", "right",
// "accept" or "back").
func (k *KeyBindings) Bind(action string, key constants.Key) error {
	switch strings.ToLower(action) {
	case "up":
		k.Up = key
	case "down":
		k.Down = key
	case "left":
		k.Left = key
	case "right":
		k.Right = key
	case "accept":
		k.Accept = key
	case "back":
		k.Back = key
	default:
		return fmt.Errorf("%q: %w", action, ErrUnknownAction)
	}
	return nil
}

// Options is the configuration shared by every menu of a Registry.
type Options struct {
	Keys                     KeyBindings   `toml:"keys"`
	DisablePlayerMovement    bool          `toml:"disable_player_movement"`    // Lock the player while a menu is open
	DisablePhone             bool          `toml:"disable_phone"`              // Suspend the phone script while a menu is open
	EnableControllerSupport  bool          `toml:"enable_controller_support"`  // Poll the controller in ProcessController
	EnableSounds             bool          `toml:"enable_sounds"`              // Request frontend sounds
	BannerFrameInterval      time.Duration `toml:"banner_frame_interval"`      // Animated banner frame delay; 0 means 120ms
	ControllerRepeatDelay    time.Duration `toml:"controller_repeat_delay"`    // Hold time before a button repeats; 0 means 300ms
	ControllerRepeatInterval time.Duration `toml:"controller_repeat_interval"` // Time between repeats; 0 means 100ms
	Language                 string        `toml:"language"`                   // BCP 47 tag for built-in strings; empty means English
}

// DefaultOptions binds the arrow keys and Enter and leaves every toggle off.
func DefaultOptions() Options {
	return Options{
		Keys: KeyBindings{
			Up:     constants.KeyUp,
			Down:   constants.KeyDown,
			Left:   constants.KeyLeft,
			Right:  constants.KeyRight,
			Accept: constants.KeyEnter,
		},
		BannerFrameInterval:      constants.DefaultBannerFrameInterval,
		ControllerRepeatDelay:    constants.DefaultControllerRepeatDelay,
		ControllerRepeatInterval: constants.DefaultControllerRepeatInterval,
	}
}

// FrameInterval returns the banner frame delay, falling back to 120ms.
func (o Options) FrameInterval() time.Duration {
	if o.BannerFrameInterval <= 0 {
		return constants.DefaultBannerFrameInterval
	}
	return o.BannerFrameInterval
}

// ParseOptions decodes TOML on top of DefaultOptions. Keys are given by
// name, durations as Go duration strings:
//
//	enable_sounds = true
//	banner_frame_interval = "80ms"
//
//	[keys]
//	accept = "Space"
//	back = "Backspace"
func ParseOptions(data []byte) (Options, error) {
	opts := DefaultOptions()
	md, err := toml.Decode(string(data), &opts)
	if err != nil {
		return DefaultOptions(), fmt.Errorf("parse options: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		internal.GetLogger().Warn("Ignoring unknown option keys", "keys", keys)
	}

	return opts, nil
}

// LoadOptions reads and parses an options file.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultOptions(), fmt.Errorf("load options: %w", err)
	}
	return ParseOptions(data)
}

// LogValue keeps option dumps on one structured line.
func (o Options) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("up", o.Keys.Up.String()),
		slog.String("down", o.Keys.Down.String()),
		slog.String("left", o.Keys.Left.String()),
		slog.String("right", o.Keys.Right.String()),
		slog.String("accept", o.Keys.Accept.String()),
		slog.String("back", o.Keys.Back.String()),
		slog.Bool("disable_player_movement", o.DisablePlayerMovement),
		slog.Bool("disable_phone", o.DisablePhone),
		slog.Bool("enable_controller_support", o.EnableControllerSupport),
		slog.Bool("enable_sounds", o.EnableSounds),
		slog.Duration("banner_frame_interval", o.BannerFrameInterval),
		slog.String("language", o.Language),
	)
}
