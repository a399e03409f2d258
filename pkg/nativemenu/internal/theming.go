package internal

import (
	"image/color"
)

// Theme defines the colours the menus draw with. Per-item colours override
// the row colours for that item only.
type Theme struct {
	TitleColor        color.RGBA // Banner title text
	DescriptionColor  color.RGBA // Description bar text and the "index / count" counter
	DescriptionBar    color.RGBA // Description bar background
	FooterBarColor    color.RGBA // Scroll arrows bar
	SeparatorColor    color.RGBA // Line between the scroll arrows and the footer
	FooterColor       color.RGBA // Footer description box
	FooterTextColor   color.RGBA // Footer description text
	EmptyRowColor     color.RGBA // Background of the "no items" row
	EmptyRowTextColor color.RGBA // Text of the "no items" row

	ItemBackColor         color.RGBA
	ItemTextColor         color.RGBA
	ItemSelectedBackColor color.RGBA
	ItemSelectedTextColor color.RGBA
	ItemDisabledTextColor color.RGBA
}

// ARGB builds a colour from alpha-first components.
func ARGB(a, r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: a}
}

// HexToColor converts a 0xRRGGBB value to an opaque colour.
func HexToColor(hex uint32) color.RGBA {
	return color.RGBA{
		R: uint8((hex >> 16) & 0xFF),
		G: uint8((hex >> 8) & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}

// HexToARGB converts a 0xAARRGGBB value.
func HexToARGB(hex uint32) color.RGBA {
	c := HexToColor(hex)
	c.A = uint8((hex >> 24) & 0xFF)
	return c
}

// DefaultTheme is the dark overlay look of the frontend menus.
func DefaultTheme() Theme {
	return Theme{
		TitleColor:        HexToColor(0xFFFFFF),
		DescriptionColor:  HexToColor(0x2D6EB8),
		DescriptionBar:    HexToColor(0x000000),
		FooterBarColor:    ARGB(225, 0, 0, 0),
		SeparatorColor:    HexToColor(0x000000),
		FooterColor:       ARGB(100, 10, 10, 10),
		FooterTextColor:   HexToColor(0xFFFFFF),
		EmptyRowColor:     ARGB(170, 10, 10, 10),
		EmptyRowTextColor: HexToColor(0xFFFFFF),

		ItemBackColor:         ARGB(170, 10, 10, 10),
		ItemTextColor:         ARGB(255, 255, 255, 255),
		ItemSelectedBackColor: ARGB(255, 245, 245, 245),
		ItemSelectedTextColor: ARGB(255, 5, 5, 5),
		ItemDisabledTextColor: ARGB(255, 150, 150, 150),
	}
}

// LightTheme inverts the row colours for hosts with bright backdrops.
func LightTheme() Theme {
	t := DefaultTheme()
	t.DescriptionBar = HexToColor(0xFFFFFF)
	t.DescriptionColor = HexToColor(0x008080)
	t.ItemBackColor = ARGB(200, 255, 255, 255)
	t.ItemTextColor = HexToColor(0x000000)
	t.ItemSelectedBackColor = HexToColor(0x008080)
	t.ItemSelectedTextColor = HexToColor(0xFFFFFF)
	t.EmptyRowColor = ARGB(200, 255, 255, 255)
	t.EmptyRowTextColor = HexToColor(0x000000)
	return t
}
