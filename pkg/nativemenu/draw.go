package nativemenu

import (
	"image"
	"image/color"
	"unicode/utf8"

	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/constants"
)

// DrawKind selects the Canvas primitive a DrawCommand replays with.
type DrawKind int

const (
	DrawRect DrawKind = iota
	DrawText
	DrawSprite
)

func (k DrawKind) String() string {
	switch k {
	case DrawRect:
		return "rect"
	case DrawText:
		return "text"
	case DrawSprite:
		return "sprite"
	default:
		return "unknown"
	}
}

// DrawCommand is one primitive of a menu's layout.
type DrawCommand struct {
	Kind   DrawKind
	Rect   Rect
	Color  color.RGBA          // DrawRect and DrawText
	Text   string              // DrawText
	Align  constants.TextAlign // DrawText
	Font   Font                // DrawText
	Image  image.Image         // DrawSprite; nil when the sprite could not be loaded
	Sprite constants.SpriteID  // DrawSprite; set for built-in sprites
}

// Apply replays the command on a canvas.
func (cmd DrawCommand) Apply(c Canvas) {
	switch cmd.Kind {
	case DrawRect:
		c.DrawRectangle(cmd.Rect, cmd.Color)
	case DrawText:
		c.DrawText(cmd.Text, cmd.Rect, cmd.Align, cmd.Color, cmd.Font)
	case DrawSprite:
		if cmd.Image != nil {
			c.DrawSprite(cmd.Image, cmd.Rect)
		}
	}
}

var (
	menuFont  = Font{Name: constants.MenuFontName, Size: constants.MenuFontSize}
	titleFont = Font{Name: constants.MenuFontName, Size: constants.MenuTitleFontSize}
)

// Draw lays the menu out and replays it on canvas. A closed menu draws
// nothing.
func (m *Menu) Draw(canvas Canvas) {
	for _, cmd := range m.Plan(canvas) {
		cmd.Apply(canvas)
	}
}

type planner struct {
	m       *Menu
	measure TextMeasurer
	cmds    []DrawCommand
}

func (p *planner) rect(r Rect, c color.RGBA) {
	p.cmds = append(p.cmds, DrawCommand{Kind: DrawRect, Rect: r, Color: c})
}

func (p *planner) text(s string, r Rect, align constants.TextAlign, c color.RGBA, f Font) {
	p.cmds = append(p.cmds, DrawCommand{Kind: DrawText, Rect: r, Color: c, Text: s, Align: align, Font: f})
}

func (p *planner) image(img image.Image, r Rect) {
	p.cmds = append(p.cmds, DrawCommand{Kind: DrawSprite, Rect: r, Image: img})
}

func (p *planner) sprite(id constants.SpriteID, r Rect) {
	img, err := p.m.registry.sprites.Sprite(id, int(r.W+0.5), int(r.H+0.5))
	if err != nil {
		p.m.registry.logger.Debug("Failed to load sprite", "sprite", string(id), "error", err)
		img = nil
	}
	p.cmds = append(p.cmds, DrawCommand{Kind: DrawSprite, Rect: r, Image: img, Sprite: id})
}

func (p *planner) size(s string) Size {
	return p.measure.MeasureText(s, menuFont, 0)
}

// Plan returns the draw commands for the menu's current state in paint
// order: banner and title, description bar and counter, the visible rows,
// and the footer with scroll arrows and the selected item's description.
// It also marks the selected item, clearing every other item's flag.
func (m *Menu) Plan(measure TextMeasurer) []DrawCommand {
	if !m.open {
		return nil
	}

	m.markSelected()

	p := &planner{m: m, measure: measure}
	theme := m.registry.theme
	tr := m.registry.translator

	bannerRect := Rect{X: constants.MenuX, Y: constants.BannerY, W: constants.MenuWidth, H: constants.BannerHeight}
	if m.banner != nil {
		p.image(m.banner.Frame(), bannerRect)
	} else {
		p.sprite(constants.SpriteBanner, bannerRect)
	}
	titleSize := p.size(m.Title)
	p.text(m.Title, Rect{X: 40, Y: 45, W: constants.MenuWidth, H: titleSize.H + 10}, constants.TextAlignCenter, theme.TitleColor, titleFont)

	p.rect(Rect{X: constants.MenuX, Y: constants.DescriptionBarY, W: constants.MenuWidth, H: constants.RowHeight}, theme.DescriptionBar)
	descSize := p.size(m.Description)
	p.text(m.Description, Rect{X: 38, Y: 120, W: descSize.W, H: descSize.H}, constants.TextAlignLeft, theme.DescriptionColor, menuFont)

	n := len(m.items)
	counter := tr.Counter(0, 0)
	if n > 0 {
		counter = tr.Counter(m.selectedIndex+1, n)
	}
	counterSize := p.size(counter)
	xValue := counterSize.W - float32(utf8.RuneCountInString(counter))*2
	if counter != "" {
		xValue -= 40
	}
	p.text(counter, Rect{X: 410 - xValue, Y: 120, W: counterSize.W, H: counterSize.H}, constants.TextAlignCenter, theme.DescriptionColor, menuFont)

	if n == 0 {
		p.rect(Rect{X: constants.MenuX, Y: constants.FirstRowY, W: constants.MenuWidth, H: constants.RowHeight}, theme.EmptyRowColor)
		noItems := tr.NoItems()
		noItemsSize := p.size(noItems)
		p.text(noItems, Rect{X: 40, Y: 157, W: noItemsSize.W, H: noItemsSize.H}, constants.TextAlignLeft, theme.EmptyRowTextColor, menuFont)
		return p.cmds
	}

	start, end := m.VisibleRange()
	for i := start; i < end; i++ {
		p.item(m.items[i], i-start)
	}

	p.footer(end - start)
	return p.cmds
}

func (p *planner) item(item Item, pos int) {
	theme := p.m.registry.theme
	base := item.Common()
	row := float32(pos) * constants.RowHeight

	p.rect(Rect{X: constants.MenuX, Y: constants.FirstRowY + row, W: constants.MenuWidth, H: constants.RowHeight}, base.backColor(theme))
	textColor := base.textColor(theme)
	textSize := p.size(base.Text)

	switch it := item.(type) {
	case *Button:
		var icon image.Image
		if it.Icon != nil {
			icon = it.Icon.imageFor(base)
		}
		if icon == nil {
			p.text(it.Text, Rect{X: 40, Y: 157 + row, W: 420, H: textSize.H}, constants.TextAlignLeft, textColor, menuFont)
			return
		}
		iconRect := Rect{X: 35 + it.Icon.OffsetX, Y: 155 + it.Icon.OffsetY + row, W: it.Icon.Size.W, H: it.Icon.Size.H}
		textX := float32(75)
		if it.Icon.Location == IconRight {
			iconRect.X = 424 + it.Icon.OffsetX
			textX = 40
		}
		p.text(it.Text, Rect{X: textX, Y: 157 + row, W: 385, H: textSize.H}, constants.TextAlignLeft, textColor, menuFont)
		p.image(icon, iconRect)

	case *Checkbox:
		p.text(it.Text, Rect{X: 40, Y: 157 + row, W: 380, H: textSize.H}, constants.TextAlignLeft, textColor, menuFont)
		p.sprite(constants.CheckboxSprite(it.Checked(), base.selected, it.Enabled), Rect{X: 431, Y: 161.5 + row, W: 16, H: 16})

	case *CyclableList:
		value, ok := it.SelectedText()
		if !ok {
			value = p.m.registry.translator.EmptyOption()
		}
		valueSize := p.size(value)
		itemWidth := valueSize.W - float32(utf8.RuneCountInString(value))*2
		if value != "" {
			itemWidth -= 10
		}
		if limit := it.MaxListBoxWidth; limit > 0 && itemWidth > limit {
			itemWidth = limit
		}

		labelWidth := 365 - itemWidth
		if !it.Enabled && ok {
			labelWidth = 420
		}
		p.text(it.Text, Rect{X: 40, Y: 157 + row, W: labelWidth, H: textSize.H}, constants.TextAlignLeft, textColor, menuFont)

		if it.Enabled && base.selected && ok {
			p.text(value, Rect{X: 433 - itemWidth, Y: 157.5 + row, W: itemWidth, H: valueSize.H}, constants.TextAlignCenter, textColor, menuFont)
			p.sprite(constants.SpriteArrowLeft, Rect{X: 420 - (itemWidth + 4), Y: 162.5 + row, W: 11, H: 16})
			p.sprite(constants.SpriteArrowRight, Rect{X: 436, Y: 162.5 + row, W: 11, H: 16})
			return
		}
		p.text(value, Rect{X: 445 - itemWidth, Y: 157.5 + row, W: itemWidth, H: valueSize.H}, constants.TextAlignRight, textColor, menuFont)
	}
}

// footer draws the scroll arrows, the separator and the selected item's
// description below the last of rows visible rows.
func (p *planner) footer(rows int) {
	theme := p.m.registry.theme
	offset := float32(rows-1) * constants.RowHeight

	p.rect(Rect{X: constants.MenuX, Y: 191 + offset, W: constants.MenuWidth, H: constants.RowHeight}, theme.FooterBarColor)
	p.sprite(constants.SpriteArrowsUpDown, Rect{X: 235.5, Y: 195 + offset, W: 18, H: 29})
	p.rect(Rect{X: constants.MenuX, Y: 234 + offset, W: constants.MenuWidth, H: 2}, theme.SeparatorColor)
	p.rect(Rect{X: constants.MenuX, Y: 236 + offset, W: constants.MenuWidth, H: constants.RowHeight}, theme.FooterColor)

	description := p.m.items[p.m.selectedIndex].Common().Description
	descSize := p.measure.MeasureText(description, menuFont, 424)
	p.text(description, Rect{X: 38, Y: 241 + offset, W: 424, H: descSize.H}, constants.TextAlignWordBreak, theme.FooterTextColor, menuFont)
}
