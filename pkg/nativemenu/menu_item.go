package nativemenu

import (
	"image/color"

	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/internal"
)

// ItemColors are the colours a single row is drawn with.
type ItemColors struct {
	Back         color.RGBA // Row background when not selected
	Text         color.RGBA // Text when enabled and not selected
	SelectedBack color.RGBA // Row background when selected
	SelectedText color.RGBA // Text when enabled and selected
	DisabledText color.RGBA // Text when disabled
}

// DefaultItemColors returns the standard dark row colours.
func DefaultItemColors() ItemColors {
	return itemColorsFromTheme(internal.DefaultTheme())
}

func itemColorsFromTheme(t internal.Theme) ItemColors {
	return ItemColors{
		Back:         t.ItemBackColor,
		Text:         t.ItemTextColor,
		SelectedBack: t.ItemSelectedBackColor,
		SelectedText: t.ItemSelectedTextColor,
		DisabledText: t.ItemDisabledTextColor,
	}
}

// ItemBase holds the attributes shared by every item variant.
type ItemBase struct {
	Name        string      // Caller identifier, not required to be unique
	Text        string      // Row label
	Description string      // Shown in the footer while the item is selected
	Enabled     bool        // Disabled items are drawn greyed and reject Accept
	Colors      *ItemColors // Row colours; nil uses the registry theme
	Tag         []any       // Application-specific data attached to the item

	selected bool
}

func newItemBase(name, text, description string, enabled bool) ItemBase {
	return ItemBase{
		Name:        name,
		Text:        text,
		Description: description,
		Enabled:     enabled,
	}
}

// Common returns the shared attributes.
func (b *ItemBase) Common() *ItemBase {
	return b
}

// Selected reports whether the owning menu highlighted this item during its
// last layout.
func (b *ItemBase) Selected() bool {
	return b.selected
}

// SetColors overrides the theme colours for this item.
func (b *ItemBase) SetColors(c ItemColors) {
	b.Colors = &c
}

func (b *ItemBase) colors(t internal.Theme) ItemColors {
	if b.Colors != nil {
		return *b.Colors
	}
	return itemColorsFromTheme(t)
}

func (b *ItemBase) textColor(t internal.Theme) color.RGBA {
	c := b.colors(t)
	switch {
	case !b.Enabled:
		return c.DisabledText
	case b.selected:
		return c.SelectedText
	default:
		return c.Text
	}
}

func (b *ItemBase) backColor(t internal.Theme) color.RGBA {
	c := b.colors(t)
	if b.selected {
		return c.SelectedBack
	}
	return c.Back
}

type itemKind int

const (
	kindButton itemKind = iota
	kindCheckbox
	kindCyclableList
)

// Item is one row of a Menu. It is implemented by *Button, *Checkbox and
// *CyclableList only.
type Item interface {
	Common() *ItemBase
	kind() itemKind
}
