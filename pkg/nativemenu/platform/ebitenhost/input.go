package ebitenhost

import (
	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu"
	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/constants"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyMap = map[ebiten.Key]constants.Key{
	ebiten.KeyBackspace:   constants.KeyBackspace,
	ebiten.KeyTab:         constants.KeyTab,
	ebiten.KeyEnter:       constants.KeyEnter,
	ebiten.KeyNumpadEnter: constants.KeyEnter,
	ebiten.KeyEscape:      constants.KeyEscape,
	ebiten.KeySpace:       constants.KeySpace,
	ebiten.KeyPageUp:      constants.KeyPageUp,
	ebiten.KeyPageDown:    constants.KeyPageDown,
	ebiten.KeyEnd:         constants.KeyEnd,
	ebiten.KeyHome:        constants.KeyHome,
	ebiten.KeyArrowLeft:   constants.KeyLeft,
	ebiten.KeyArrowUp:     constants.KeyUp,
	ebiten.KeyArrowRight:  constants.KeyRight,
	ebiten.KeyArrowDown:   constants.KeyDown,
	ebiten.KeyDelete:      constants.KeyDelete,
}

var (
	letterKeys = []ebiten.Key{
		ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE, ebiten.KeyF, ebiten.KeyG,
		ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ, ebiten.KeyK, ebiten.KeyL, ebiten.KeyM, ebiten.KeyN,
		ebiten.KeyO, ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR, ebiten.KeyS, ebiten.KeyT, ebiten.KeyU,
		ebiten.KeyV, ebiten.KeyW, ebiten.KeyX, ebiten.KeyY, ebiten.KeyZ,
	}
	digitKeys = []ebiten.Key{
		ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
		ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
	}
	numpadKeys = []ebiten.Key{
		ebiten.KeyNumpad0, ebiten.KeyNumpad1, ebiten.KeyNumpad2, ebiten.KeyNumpad3, ebiten.KeyNumpad4,
		ebiten.KeyNumpad5, ebiten.KeyNumpad6, ebiten.KeyNumpad7, ebiten.KeyNumpad8, ebiten.KeyNumpad9,
	}
	functionKeys = []ebiten.Key{
		ebiten.KeyF1, ebiten.KeyF2, ebiten.KeyF3, ebiten.KeyF4, ebiten.KeyF5, ebiten.KeyF6,
		ebiten.KeyF7, ebiten.KeyF8, ebiten.KeyF9, ebiten.KeyF10, ebiten.KeyF11, ebiten.KeyF12,
	}
)

func init() {
	for i, k := range letterKeys {
		keyMap[k] = constants.Letter(rune('A' + i))
	}
	for i, k := range digitKeys {
		keyMap[k] = constants.Digit(i)
	}
	for i, k := range numpadKeys {
		keyMap[k] = constants.KeyNumPad0 + constants.Key(i)
	}
	for i, k := range functionKeys {
		keyMap[k] = constants.Function(i + 1)
	}
}

// KeyFromEbiten translates an ebiten key. Unmapped keys return KeyNone.
func KeyFromEbiten(k ebiten.Key) constants.Key {
	return keyMap[k]
}

// Input forwards the keys pressed this tick to a registry. Call Update from
// the game's Update.
type Input struct {
	registry *nativemenu.Registry
	pressed  []ebiten.Key
}

func NewInput(r *nativemenu.Registry) *Input {
	return &Input{registry: r}
}

// Update delivers every key that went down this tick and returns the keys
// that were delivered.
func (in *Input) Update() []constants.Key {
	in.pressed = inpututil.AppendJustPressedKeys(in.pressed[:0])

	var delivered []constants.Key
	for _, k := range in.pressed {
		key := KeyFromEbiten(k)
		if key == constants.KeyNone {
			continue
		}
		in.registry.ProcessKeyPress(key)
		delivered = append(delivered, key)
	}
	return delivered
}
