// Package beepsound plays the menus' frontend sounds from WAV files with
// gopxl/beep. Sound names map to files: FRONTEND_MENU_SELECT is read from
// FRONTEND_MENU_SELECT.wav.
package beepsound

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"time"

	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// DefaultSampleRate is the output rate used by OpenSpeaker.
const DefaultSampleRate beep.SampleRate = 44100

const resampleQuality = 4

var ErrUnknownSound = errors.New("sound file not found")

// Player implements nativemenu.SoundPlayer. Decoded sounds are kept in
// memory after first use.
type Player struct {
	fsys fs.FS
	rate beep.SampleRate
	play func(beep.Streamer)

	mu      sync.Mutex
	buffers map[string]*beep.Buffer
}

// NewPlayer reads sounds from fsys and hands each playback to play,
// resampled to rate.
func NewPlayer(fsys fs.FS, rate beep.SampleRate, play func(beep.Streamer)) *Player {
	return &Player{
		fsys:    fsys,
		rate:    rate,
		play:    play,
		buffers: make(map[string]*beep.Buffer),
	}
}

// OpenSpeaker initializes the speaker at DefaultSampleRate and returns a
// player that plays through it.
func OpenSpeaker(fsys fs.FS) (*Player, error) {
	if err := speaker.Init(DefaultSampleRate, DefaultSampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return NewPlayer(fsys, DefaultSampleRate, func(s beep.Streamer) { speaker.Play(s) }), nil
}

// Preload decodes every named sound, returning the first failure.
func (p *Player) Preload(names ...string) error {
	for _, name := range names {
		if _, err := p.buffer(name); err != nil {
			return err
		}
	}
	return nil
}

func (p *Player) PlaySound(name string) error {
	buf, err := p.buffer(name)
	if err != nil {
		return err
	}

	var s beep.Streamer = buf.Streamer(0, buf.Len())
	if buf.Format().SampleRate != p.rate {
		s = beep.Resample(resampleQuality, buf.Format().SampleRate, p.rate, s)
	}
	p.play(s)
	return nil
}

func (p *Player) buffer(name string) (*beep.Buffer, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if buf, ok := p.buffers[name]; ok {
		return buf, nil
	}

	f, err := p.fsys.Open(name + ".wav")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", name, ErrUnknownSound)
		}
		return nil, fmt.Errorf("open sound %s: %w", name, err)
	}
	defer f.Close()

	stream, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode sound %s: %w", name, err)
	}
	defer stream.Close()

	buf := beep.NewBuffer(format)
	buf.Append(stream)
	p.buffers[name] = buf

	nativemenu.GetLogger().Debug("Sound loaded", "name", name, "samples", buf.Len(), "rate", int(format.SampleRate))
	return buf, nil
}
