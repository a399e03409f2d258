package constants

// SpriteID names one of the built-in sprites rasterised from the embedded SVG set.
type SpriteID string

// Built-in sprites and the size they are drawn at.
const (
	SpriteBanner       SpriteID = "banner"         // 432x97 default banner image
	SpriteArrowsUpDown SpriteID = "arrows_up_down" // 18x29 scroll indicator
	SpriteArrowLeft    SpriteID = "arrow_left"     // 11x16 list arrow
	SpriteArrowRight   SpriteID = "arrow_right"    // 11x16 list arrow

	SpriteCheckboxCheckedSelected     SpriteID = "checkbox_checked_selected"
	SpriteCheckboxUncheckedSelected   SpriteID = "checkbox_unchecked_selected"
	SpriteCheckboxCheckedUnselected   SpriteID = "checkbox_checked_unselected"
	SpriteCheckboxUncheckedUnselected SpriteID = "checkbox_unchecked_unselected"
	SpriteCheckboxCheckedDisabled     SpriteID = "checkbox_checked_disabled"
	SpriteCheckboxUncheckedDisabled   SpriteID = "checkbox_unchecked_disabled"
)

// CheckboxSprite picks the checkbox sprite for an item state.
func CheckboxSprite(checked, selected, enabled bool) SpriteID {
	switch {
	case !enabled && checked:
		return SpriteCheckboxCheckedDisabled
	case !enabled:
		return SpriteCheckboxUncheckedDisabled
	case selected && checked:
		return SpriteCheckboxCheckedSelected
	case selected:
		return SpriteCheckboxUncheckedSelected
	case checked:
		return SpriteCheckboxCheckedUnselected
	default:
		return SpriteCheckboxUncheckedUnselected
	}
}
