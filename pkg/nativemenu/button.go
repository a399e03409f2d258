package nativemenu

import (
	"image"
)

// IconLocation places a button icon on one side of the row.
type IconLocation int

const (
	IconLeft IconLocation = iota
	IconRight
)

// ButtonIcon is an optional image drawn next to a button label. The image
// matching the item state is used; a nil image for that state draws the
// label without an icon.
type ButtonIcon struct {
	Default  image.Image // Enabled, not selected
	Selected image.Image // Enabled, selected
	Disabled image.Image // Disabled
	Size     Size        // Drawn size; keep at or below 32x32
	Location IconLocation
	OffsetX  float32
	OffsetY  float32
}

// SetOffset nudges the icon when its size is not 32x32.
func (i *ButtonIcon) SetOffset(x, y float32) {
	i.OffsetX = x
	i.OffsetY = y
}

func (i *ButtonIcon) imageFor(b *ItemBase) image.Image {
	switch {
	case !b.Enabled:
		return i.Disabled
	case b.selected:
		return i.Selected
	default:
		return i.Default
	}
}

// Button is a clickable row that may open a nested menu.
type Button struct {
	ItemBase

	// NestedMenu is shown when the button is accepted. The button does not
	// own the menu.
	NestedMenu *Menu

	// Icon, when set, is drawn next to the label.
	Icon *ButtonIcon

	onClick []func(*Button)
}

// NewButton creates a button.
func NewButton(name, text, description string, enabled bool) *Button {
	return &Button{ItemBase: newItemBase(name, text, description, enabled)}
}

func (b *Button) kind() itemKind { return kindButton }

// OnClick registers a click observer.
func (b *Button) OnClick(fn func(*Button)) {
	if fn != nil {
		b.onClick = append(b.onClick, fn)
	}
}

// PerformClick notifies the click observers, regardless of Enabled.
func (b *Button) PerformClick() {
	for _, fn := range b.onClick {
		fn(b)
	}
}
