// Package ebitenhost draws nativemenu menus onto an ebiten screen and
// translates ebiten key presses, so a menu can run inside any ebiten game.
package ebitenhost

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu"
	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/constants"
	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/internal"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

const imageCacheSize = 32

type faceKey struct {
	name string
	size int
}

// Canvas implements nativemenu.Canvas on an ebiten image. Call SetTarget
// with the screen at the start of every Draw.
type Canvas struct {
	dst *ebiten.Image

	sources  map[string]*text.GoTextFaceSource
	fallback *text.GoTextFaceSource
	faces    map[faceKey]*text.GoTextFace

	images *internal.Cache[image.Image, *ebiten.Image]
}

// NewCanvas creates a canvas whose fallback font is Go Regular.
func NewCanvas() (*Canvas, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load fallback font: %w", err)
	}
	return &Canvas{
		sources:  make(map[string]*text.GoTextFaceSource),
		fallback: src,
		faces:    make(map[faceKey]*text.GoTextFace),
		images: internal.NewCacheWithSize(imageCacheSize, func(_ image.Image, img *ebiten.Image) {
			img.Deallocate()
		}),
	}, nil
}

// AddFont registers TTF or OTF data under a font name such as "Calibri".
func (c *Canvas) AddFont(name string, data []byte) error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("load font %s: %w", name, err)
	}
	c.sources[name] = src
	for k := range c.faces {
		if k.name == name {
			delete(c.faces, k)
		}
	}
	return nil
}

// SetTarget sets the image the next draw calls paint on.
func (c *Canvas) SetTarget(dst *ebiten.Image) {
	c.dst = dst
}

func (c *Canvas) face(f nativemenu.Font) *text.GoTextFace {
	key := faceKey{name: f.Name, size: f.Size}
	if face, ok := c.faces[key]; ok {
		return face
	}
	src, ok := c.sources[f.Name]
	if !ok {
		src = c.fallback
	}
	face := &text.GoTextFace{Source: src, Size: float64(f.Size)}
	c.faces[key] = face
	return face
}

func (c *Canvas) MeasureText(s string, f nativemenu.Font, wrapWidth float32) nativemenu.Size {
	if s == "" {
		return nativemenu.Size{}
	}
	face := c.face(f)
	lines := []string{s}
	if wrapWidth > 0 {
		lines = wrap(s, float64(wrapWidth), func(t string) float64 {
			w, _ := text.Measure(t, face, 0)
			return w
		})
	}

	lineHeight := face.Metrics().HAscent + face.Metrics().HDescent
	var width float64
	for _, l := range lines {
		if w, _ := text.Measure(l, face, lineHeight); w > width {
			width = w
		}
	}
	return nativemenu.Size{W: float32(width), H: float32(lineHeight * float64(len(lines)))}
}

func (c *Canvas) DrawRectangle(r nativemenu.Rect, col color.RGBA) {
	if c.dst == nil {
		return
	}
	vector.FillRect(c.dst, r.X, r.Y, r.W, r.H, col, false)
}

func (c *Canvas) DrawText(s string, r nativemenu.Rect, align constants.TextAlign, col color.RGBA, f nativemenu.Font) {
	if c.dst == nil || s == "" {
		return
	}
	face := c.face(f)
	lineHeight := face.Metrics().HAscent + face.Metrics().HDescent

	if align == constants.TextAlignWordBreak {
		s = strings.Join(wrap(s, float64(r.W), func(t string) float64 {
			w, _ := text.Measure(t, face, 0)
			return w
		}), "\n")
	}

	op := &text.DrawOptions{}
	op.LineSpacing = lineHeight
	op.ColorScale.ScaleWithColor(col)
	x := float64(r.X)
	switch align {
	case constants.TextAlignCenter:
		op.PrimaryAlign = text.AlignCenter
		x += float64(r.W) / 2
	case constants.TextAlignRight:
		op.PrimaryAlign = text.AlignEnd
		x += float64(r.W)
	}
	op.GeoM.Translate(x, float64(r.Y))
	text.Draw(c.dst, s, face, op)
}

func (c *Canvas) DrawSprite(img image.Image, r nativemenu.Rect) {
	if c.dst == nil || img == nil {
		return
	}

	eimg, ok := c.images.Get(img)
	if !ok {
		eimg = ebiten.NewImageFromImage(img)
		c.images.Set(img, eimg)
	}

	b := eimg.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.W)/float64(b.Dx()), float64(r.H)/float64(b.Dy()))
	op.GeoM.Translate(float64(r.X), float64(r.Y))
	op.Filter = ebiten.FilterLinear
	c.dst.DrawImage(eimg, op)
}

// wrap breaks s into lines no wider than width, splitting at spaces.
// Explicit newlines are kept. A single word wider than width gets a line
// of its own.
func wrap(s string, width float64, measure func(string) float64) []string {
	var lines []string
	for _, para := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if measure(candidate) > width {
				lines = append(lines, line)
				line = w
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}
