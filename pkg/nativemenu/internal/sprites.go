package internal

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"sync"

	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/constants"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed sprites/*.svg
var spriteFS embed.FS

const spriteCacheSize = 24

type spriteKey struct {
	id   constants.SpriteID
	w, h int
}

// SpriteSet rasterises the built-in SVG sprites on demand and keeps the most
// recently used sizes.
type SpriteSet struct {
	mu    sync.Mutex
	cache *Cache[spriteKey, *image.RGBA]
}

func NewSpriteSet() *SpriteSet {
	return &SpriteSet{
		cache: NewCacheWithSize[spriteKey, *image.RGBA](spriteCacheSize, nil),
	}
}

// Sprite returns the sprite rendered at w x h pixels.
func (s *SpriteSet) Sprite(id constants.SpriteID, w, h int) (image.Image, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("sprite %s: invalid size %dx%d", id, w, h)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := spriteKey{id: id, w: w, h: h}
	if img, ok := s.cache.Get(key); ok {
		return img, nil
	}

	img, err := RasterizeSprite(id, w, h)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, img)
	return img, nil
}

// RasterizeSprite renders one embedded SVG without caching.
func RasterizeSprite(id constants.SpriteID, w, h int) (*image.RGBA, error) {
	data, err := spriteFS.ReadFile("sprites/" + string(id) + ".svg")
	if err != nil {
		return nil, fmt.Errorf("sprite %s: %w", id, err)
	}
	return RasterizeSVG(data, w, h)
}

// RasterizeSVG renders SVG bytes into a w x h RGBA image.
func RasterizeSVG(data []byte, w, h int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.WarnErrorMode)
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}
