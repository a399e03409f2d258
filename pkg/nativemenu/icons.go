package nativemenu

import (
	"fmt"
	"image"

	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/internal"
)

// RasterizeSVG renders SVG data into a w x h image.
func RasterizeSVG(data []byte, w, h int) (image.Image, error) {
	return internal.RasterizeSVG(data, w, h)
}

// NewSVGIcon builds a square button icon from three SVG documents, one per
// item state. A nil document leaves that state without an icon.
func NewSVGIcon(defaultSVG, selectedSVG, disabledSVG []byte, size int, location IconLocation) (*ButtonIcon, error) {
	icon := &ButtonIcon{
		Size:     Size{W: float32(size), H: float32(size)},
		Location: location,
	}

	targets := []struct {
		name string
		data []byte
		dst  *image.Image
	}{
		{"default", defaultSVG, &icon.Default},
		{"selected", selectedSVG, &icon.Selected},
		{"disabled", disabledSVG, &icon.Disabled},
	}
	for _, t := range targets {
		if t.data == nil {
			continue
		}
		img, err := internal.RasterizeSVG(t.data, size, size)
		if err != nil {
			return nil, fmt.Errorf("%s icon: %w", t.name, err)
		}
		*t.dst = img
	}
	return icon, nil
}
