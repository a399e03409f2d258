package nativemenu

import (
	"image"
	"image/color"

	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/constants"
	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/internal"
)

// Rect is an axis-aligned rectangle in host screen pixels, anchored at its
// top-left corner.
type Rect = internal.Rect

// Size is a measured width and height.
type Size = internal.Size

// Font names a host font and its pixel size.
type Font = internal.Font

// TextMeasurer reports the rendered size of a string. A positive wrapWidth
// measures the text word-wrapped at that width.
type TextMeasurer interface {
	MeasureText(text string, font Font, wrapWidth float32) Size
}

// Canvas is the host's per-frame drawing surface.
type Canvas interface {
	TextMeasurer
	DrawRectangle(r Rect, c color.RGBA)
	DrawText(text string, r Rect, align constants.TextAlign, c color.RGBA, font Font)
	DrawSprite(img image.Image, r Rect)
}

// SoundPlayer plays a named frontend sound.
type SoundPlayer interface {
	PlaySound(name string) error
}

// PlayerControl locks and unlocks the player character.
type PlayerControl interface {
	SetPlayerControl(enabled bool) error
}

// ScriptControl stops and starts named host scripts.
type ScriptControl interface {
	TerminateScript(name string) error
	StartScript(name string, stackSize int) error
}

// Controller is the host's gamepad polling bridge.
type Controller interface {
	IsUsingController() (bool, error)
	IsButtonPressed(pad int, button constants.ControllerButton) (bool, error)
}

// Host bundles the host collaborators a Registry talks to. Nil members are
// treated as no-ops.
type Host struct {
	Sounds     SoundPlayer
	Player     PlayerControl
	Scripts    ScriptControl
	Controller Controller
}

func (h Host) playSound(name string) error {
	if h.Sounds == nil {
		return nil
	}
	if err := h.Sounds.PlaySound(name); err != nil {
		return NewHostError("play_sound", err)
	}
	return nil
}

func (h Host) setPlayerControl(enabled bool) error {
	if h.Player == nil {
		return nil
	}
	if err := h.Player.SetPlayerControl(enabled); err != nil {
		return NewHostError("set_player_control", err)
	}
	return nil
}

func (h Host) terminateScript(name string) error {
	if h.Scripts == nil {
		return nil
	}
	if err := h.Scripts.TerminateScript(name); err != nil {
		return NewHostError("terminate_script", err)
	}
	return nil
}

func (h Host) startScript(name string, stackSize int) error {
	if h.Scripts == nil {
		return nil
	}
	if err := h.Scripts.StartScript(name, stackSize); err != nil {
		return NewHostError("start_script", err)
	}
	return nil
}
