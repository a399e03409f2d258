package internal

import (
	"testing"

	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/constants"
)

func TestSpriteSetRasterisesEveryBuiltIn(t *testing.T) {
	ids := []constants.SpriteID{
		constants.SpriteBanner,
		constants.SpriteArrowsUpDown,
		constants.SpriteArrowLeft,
		constants.SpriteArrowRight,
		constants.SpriteCheckboxCheckedSelected,
		constants.SpriteCheckboxUncheckedSelected,
		constants.SpriteCheckboxCheckedUnselected,
		constants.SpriteCheckboxUncheckedUnselected,
		constants.SpriteCheckboxCheckedDisabled,
		constants.SpriteCheckboxUncheckedDisabled,
	}

	set := NewSpriteSet()
	for _, id := range ids {
		img, err := set.Sprite(id, 16, 16)
		if err != nil {
			t.Fatalf("Sprite(%s): %v", id, err)
		}
		if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
			t.Fatalf("Sprite(%s) bounds = %v", id, b)
		}
	}

	again, _ := set.Sprite(constants.SpriteArrowLeft, 16, 16)
	first, _ := set.Sprite(constants.SpriteArrowLeft, 16, 16)
	if again != first {
		t.Error("expected cached sprite to be reused")
	}
}

func TestSpriteSetRejectsUnknown(t *testing.T) {
	if _, err := NewSpriteSet().Sprite("nope", 4, 4); err == nil {
		t.Fatal("expected error for unknown sprite")
	}
	if _, err := NewSpriteSet().Sprite(constants.SpriteBanner, 0, 4); err == nil {
		t.Fatal("expected error for empty size")
	}
}

func TestRasterizeDrawsPixels(t *testing.T) {
	img, err := RasterizeSprite(constants.SpriteArrowsUpDown, 18, 29)
	if err != nil {
		t.Fatal(err)
	}
	_, _, _, a := img.At(9, 6).RGBA()
	if a == 0 {
		t.Error("expected the up arrow to cover its centre")
	}
}
