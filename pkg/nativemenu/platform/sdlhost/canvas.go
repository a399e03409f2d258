package sdlhost

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu"
	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/constants"
	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

const (
	textCacheSize   = 64
	spriteCacheSize = 32
)

type fontKey struct {
	name string
	size int
}

type textKey struct {
	text  string
	font  fontKey
	color color.RGBA
	wrap  int
}

// Canvas draws menus with an SDL renderer. Fonts are resolved by name
// through FontPaths; a name with no entry uses the fallback path.
type Canvas struct {
	renderer *sdl.Renderer

	fontPaths map[string]string
	fallback  string
	fonts     map[fontKey]*ttf.Font

	text    *internal.Cache[textKey, *sdl.Texture]
	sprites *internal.Cache[image.Image, *sdl.Texture]
}

// NewCanvas creates a canvas on renderer. fallbackFont is the TTF file used
// for any font name missing from fontPaths.
func NewCanvas(renderer *sdl.Renderer, fallbackFont string, fontPaths map[string]string) *Canvas {
	destroy := func(_ textKey, t *sdl.Texture) { t.Destroy() }
	destroySprite := func(_ image.Image, t *sdl.Texture) { t.Destroy() }

	paths := make(map[string]string, len(fontPaths))
	for k, v := range fontPaths {
		paths[k] = v
	}

	return &Canvas{
		renderer:  renderer,
		fontPaths: paths,
		fallback:  fallbackFont,
		fonts:     make(map[fontKey]*ttf.Font),
		text:      internal.NewCacheWithSize(textCacheSize, destroy),
		sprites:   internal.NewCacheWithSize(spriteCacheSize, destroySprite),
	}
}

// Close frees every font and cached texture.
func (c *Canvas) Close() {
	c.text.Purge()
	c.sprites.Purge()
	for k, f := range c.fonts {
		f.Close()
		delete(c.fonts, k)
	}
}

func (c *Canvas) font(f nativemenu.Font) (*ttf.Font, error) {
	key := fontKey{name: f.Name, size: f.Size}
	if font, ok := c.fonts[key]; ok {
		return font, nil
	}

	path, ok := c.fontPaths[f.Name]
	if !ok {
		path = c.fallback
	}
	font, err := ttf.OpenFont(path, f.Size)
	if err != nil {
		return nil, fmt.Errorf("open font %s (%s): %w", f.Name, path, err)
	}
	c.fonts[key] = font
	return font, nil
}

func (c *Canvas) textTexture(text string, f nativemenu.Font, col color.RGBA, wrap int) (*sdl.Texture, error) {
	key := textKey{text: text, font: fontKey{f.Name, f.Size}, color: col, wrap: wrap}
	if t, ok := c.text.Get(key); ok {
		return t, nil
	}

	font, err := c.font(f)
	if err != nil {
		return nil, err
	}

	sdlColor := sdl.Color{R: col.R, G: col.G, B: col.B, A: col.A}
	var surface *sdl.Surface
	if wrap > 0 {
		surface, err = font.RenderUTF8BlendedWrapped(text, sdlColor, wrap)
	} else {
		surface, err = font.RenderUTF8Blended(text, sdlColor)
	}
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	texture, err := c.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, err
	}
	c.text.Set(key, texture)
	return texture, nil
}

// MeasureText reports the rendered size of text. Failures measure as zero.
func (c *Canvas) MeasureText(text string, f nativemenu.Font, wrapWidth float32) nativemenu.Size {
	if text == "" {
		return nativemenu.Size{}
	}

	if wrapWidth <= 0 {
		font, err := c.font(f)
		if err != nil {
			return nativemenu.Size{}
		}
		w, h, err := font.SizeUTF8(text)
		if err != nil {
			return nativemenu.Size{}
		}
		return nativemenu.Size{W: float32(w), H: float32(h)}
	}

	texture, err := c.textTexture(text, f, color.RGBA{R: 255, G: 255, B: 255, A: 255}, int(wrapWidth))
	if err != nil {
		return nativemenu.Size{}
	}
	_, _, w, h, err := texture.Query()
	if err != nil {
		return nativemenu.Size{}
	}
	return nativemenu.Size{W: float32(w), H: float32(h)}
}

func (c *Canvas) DrawRectangle(r nativemenu.Rect, col color.RGBA) {
	c.renderer.SetDrawColor(col.R, col.G, col.B, col.A)
	c.renderer.FillRectF(toFRect(r))
}

func (c *Canvas) DrawText(text string, r nativemenu.Rect, align constants.TextAlign, col color.RGBA, f nativemenu.Font) {
	if text == "" {
		return
	}

	wrap := 0
	if align == constants.TextAlignWordBreak {
		wrap = int(r.W)
	}
	texture, err := c.textTexture(text, f, col, wrap)
	if err != nil {
		nativemenu.GetLogger().Debug("Failed to render text", "text", text, "error", err)
		return
	}
	_, _, w, h, err := texture.Query()
	if err != nil {
		return
	}

	dst := sdl.FRect{X: r.X, Y: r.Y, W: float32(w), H: float32(h)}
	switch align {
	case constants.TextAlignCenter:
		dst.X = r.X + (r.W-dst.W)/2
	case constants.TextAlignRight:
		dst.X = r.X + r.W - dst.W
	}
	c.renderer.CopyF(texture, nil, &dst)
}

func (c *Canvas) DrawSprite(img image.Image, r nativemenu.Rect) {
	if img == nil {
		return
	}

	texture, cached, err := c.spriteTexture(img)
	if err != nil {
		nativemenu.GetLogger().Debug("Failed to upload sprite", "error", err)
		return
	}
	c.renderer.CopyF(texture, nil, toFRect(r))
	if !cached {
		texture.Destroy()
	}
}

// spriteTexture uploads img once and reuses the texture while img stays in
// the cache. Only pointer image types are cached; the caller destroys an
// uncached texture after use.
func (c *Canvas) spriteTexture(img image.Image) (texture *sdl.Texture, cached bool, err error) {
	switch img.(type) {
	case *image.RGBA, *image.NRGBA, *image.Paletted:
		cached = true
	}
	if cached {
		if t, ok := c.sprites.Get(img); ok {
			return t, true, nil
		}
	}

	texture, err = c.upload(img)
	if err != nil {
		return nil, false, err
	}
	if cached {
		c.sprites.Set(img, texture)
	}
	return texture, cached, nil
}

func (c *Canvas) upload(img image.Image) (*sdl.Texture, error) {
	b := img.Bounds()
	rgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	surface, err := sdl.CreateRGBSurfaceWithFormat(0, int32(b.Dx()), int32(b.Dy()), 32, uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	if err := surface.Lock(); err != nil {
		return nil, err
	}
	pixels := surface.Pixels()
	pitch := int(surface.Pitch)
	for y := 0; y < b.Dy(); y++ {
		copy(pixels[y*pitch:y*pitch+b.Dx()*4], rgba.Pix[y*rgba.Stride:y*rgba.Stride+b.Dx()*4])
	}
	surface.Unlock()

	texture, err := c.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, err
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}

func toFRect(r nativemenu.Rect) *sdl.FRect {
	return &sdl.FRect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}
