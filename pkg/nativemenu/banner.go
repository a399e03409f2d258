package nativemenu

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"io"
	"sync"
	"time"

	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/constants"
	"go.uber.org/atomic"
	xdraw "golang.org/x/image/draw"
)

type bannerFrame struct {
	index int
	img   image.Image
}

// Banner is the image drawn above a menu's title. A banner with more than
// one frame animates while its menu is open.
//
// The animation runs on its own goroutine and publishes each frame through
// an atomic pointer, so Frame is safe to call from the draw callback while
// the banner is running.
type Banner struct {
	frames   []image.Image
	interval time.Duration

	current atomic.Pointer[bannerFrame]
	running atomic.Bool

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewStaticBanner wraps a single image. It is drawn scaled to 432x97.
func NewStaticBanner(img image.Image) (*Banner, error) {
	return NewAnimatedBanner([]image.Image{img}, 0)
}

// NewAnimatedBanner builds a banner from frames. A zero interval uses the
// registry's BannerFrameInterval.
func NewAnimatedBanner(frames []image.Image, interval time.Duration) (*Banner, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	for i, f := range frames {
		if f == nil {
			return nil, fmt.Errorf("frame %d is nil: %w", i, ErrNoFrames)
		}
	}

	b := &Banner{
		frames:   append([]image.Image(nil), frames...),
		interval: interval,
	}
	b.current.Store(&bannerFrame{index: 0, img: b.frames[0]})
	return b, nil
}

// DecodeGIFBanner decodes every frame of a GIF, composites them according to
// their disposal methods, and scales each to the banner size. Per-frame GIF
// delays are ignored; the banner ticks at interval.
func DecodeGIFBanner(r io.Reader, interval time.Duration) (*Banner, error) {
	g, err := gif.DecodeAll(r)
	if err != nil {
		return nil, fmt.Errorf("decode banner: %w", err)
	}
	if len(g.Image) == 0 {
		return nil, ErrNoFrames
	}

	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() {
		bounds = g.Image[0].Bounds()
	}

	canvas := image.NewRGBA(bounds)
	frames := make([]image.Image, 0, len(g.Image))

	for i, frame := range g.Image {
		var previous *image.RGBA
		disposal := byte(0)
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}
		if disposal == gif.DisposalPrevious {
			previous = image.NewRGBA(bounds)
			draw.Draw(previous, bounds, canvas, bounds.Min, draw.Src)
		}

		draw.Draw(canvas, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
		frames = append(frames, ScaleBanner(canvas))

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas, frame.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			canvas = previous
		}
	}

	return NewAnimatedBanner(frames, interval)
}

// ScaleBanner copies src into a new image of the banner size.
func ScaleBanner(src image.Image) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, int(constants.MenuWidth), int(constants.BannerHeight)))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst
}

// Len returns the number of frames.
func (b *Banner) Len() int {
	return len(b.frames)
}

// Animated reports whether the banner has more than one frame.
func (b *Banner) Animated() bool {
	return len(b.frames) > 1
}

// Frame returns the frame to draw now.
func (b *Banner) Frame() image.Image {
	return b.current.Load().img
}

// FrameIndex returns the index of the frame Frame returns.
func (b *Banner) FrameIndex() int {
	return b.current.Load().index
}

// Running reports whether the animation goroutine is active.
func (b *Banner) Running() bool {
	return b.running.Load()
}

// Advance steps to the next frame with wrap-around. The animation goroutine
// calls it once per tick; hosts that prefer to drive animation from their
// own frame callback may call it directly instead of Start.
func (b *Banner) Advance() {
	next := (b.current.Load().index + 1) % len(b.frames)
	b.current.Store(&bannerFrame{index: next, img: b.frames[next]})
}

// Start rewinds to the first frame and begins animating. It does nothing for
// a single-frame banner or when already running. A non-positive fallback
// interval means 120ms.
func (b *Banner) Start(fallback time.Duration) {
	if !b.Animated() {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.running.Load() {
		return
	}

	interval := b.interval
	if interval <= 0 {
		interval = fallback
	}
	if interval <= 0 {
		interval = constants.DefaultBannerFrameInterval
	}

	b.current.Store(&bannerFrame{index: 0, img: b.frames[0]})

	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel
	b.done = make(chan struct{})
	b.running.Store(true)

	go b.loop(ctx, interval, b.done)
}

func (b *Banner) loop(ctx context.Context, interval time.Duration, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b.Advance()
		}
	}
}

// Stop cancels the animation and waits for the goroutine to exit.
func (b *Banner) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.cancel == nil {
		return
	}

	b.cancel()
	<-b.done
	b.cancel = nil
	b.done = nil
	b.running.Store(false)
}
