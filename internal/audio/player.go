// Package audio plays the escapement tick.
package audio

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/pendulum-clock/internal/logging"
)

const (
	tapRingSize = 2048
	// LevelFresh is how long the tap keeps reporting a level after the last
	// sample it saw.
	LevelFresh = 80 * time.Millisecond
)

var (
	// ErrUnsupportedFormat is returned for tick assets that are not WAV, MP3
	// or FLAC.
	ErrUnsupportedFormat = errors.New("unsupported tick sound format")
	// ErrSpeakerUnavailable is returned once the output device failed to
	// open; the player stays silent afterwards.
	ErrSpeakerUnavailable = errors.New("audio output unavailable")
)

// Player plays the tick asset once per call to PlayTick, each time on its own
// goroutine. Failures are logged and never reach the caller.
type Player struct {
	path   string
	volume float64
	log    *logging.Logger
	tap    *levelTap

	muted    atomic.Bool
	disabled atomic.Bool

	mu    sync.Mutex
	rate  beep.SampleRate
	ready bool

	initSpeaker func(beep.SampleRate, int) error
	play        func(...beep.Streamer)
}

// Option configures a Player.
type Option func(*Player)

// WithVolume scales the output; 1 plays the asset as recorded, 0 is silent.
func WithVolume(v float64) Option {
	return func(p *Player) {
		p.volume = v
	}
}

// WithLogger sets the logger failures are reported to.
func WithLogger(l *logging.Logger) Option {
	return func(p *Player) {
		p.log = l
	}
}

// WithMuted starts the player muted.
func WithMuted(muted bool) Option {
	return func(p *Player) {
		p.muted.Store(muted)
	}
}

// NewPlayer returns a player for the asset at path. An empty path plays the
// synthesized click.
func NewPlayer(path string, opts ...Option) *Player {
	p := &Player{
		path:        path,
		volume:      1,
		log:         logging.Discard(),
		tap:         newLevelTap(tapRingSize),
		initSpeaker: speaker.Init,
		play:        speaker.Play,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PlayTick starts one tick in the background and returns immediately.
func (p *Player) PlayTick() {
	if p.muted.Load() || p.disabled.Load() {
		return
	}
	go func() {
		if err := p.playOnce(); err != nil {
			p.log.Warn("tick sound failed", "path", p.path, "error", err)
		}
	}()
}

// Muted reports whether ticks are suppressed.
func (p *Player) Muted() bool {
	return p.muted.Load()
}

// ToggleMute flips the mute state and returns the new one.
func (p *Player) ToggleMute() bool {
	for {
		old := p.muted.Load()
		if p.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Level is the RMS of the tick currently sounding, 0 when quiet.
func (p *Player) Level() float64 {
	return p.tap.Level(LevelFresh)
}

func (p *Player) playOnce() error {
	s, format, closeFn, err := openTick(p.path)
	if err != nil {
		return err
	}

	rate, err := p.ensureSpeaker(format.SampleRate)
	if err != nil {
		closeFn()
		return err
	}

	var out beep.Streamer = s
	if format.SampleRate != rate {
		out = beep.Resample(4, format.SampleRate, rate, out)
	}
	out = withVolume(out, p.volume)
	p.play(beep.Seq(p.tap.wrap(out), beep.Callback(closeFn)))
	return nil
}

// ensureSpeaker opens the output device on first use at the first asset's
// rate and returns the rate it runs at.
func (p *Player) ensureSpeaker(rate beep.SampleRate) (beep.SampleRate, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return p.rate, nil
	}
	if p.disabled.Load() {
		return 0, ErrSpeakerUnavailable
	}
	if err := p.initSpeaker(rate, rate.N(time.Second/20)); err != nil {
		p.disabled.Store(true)
		p.log.Error("audio disabled", "error", err)
		return 0, fmt.Errorf("%w: %v", ErrSpeakerUnavailable, err)
	}
	p.rate = rate
	p.ready = true
	p.log.Info("speaker ready", "rate", int(rate))
	return rate, nil
}

// openTick decodes the asset at path by extension. The returned func closes
// the underlying file.
func openTick(path string) (beep.Streamer, beep.Format, func(), error) {
	if path == "" {
		return Click(ClickRate), ClickFormat, func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, nil, fmt.Errorf("open tick sound: %w", err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, beep.Format{}, nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		_ = f.Close()
		return nil, beep.Format{}, nil, fmt.Errorf("decode tick sound: %w", err)
	}

	closeFn := func() {
		_ = streamer.Close()
		_ = f.Close()
	}
	return streamer, format, closeFn, nil
}

// withVolume scales s linearly; math.Log2(0) is -Inf so 0 becomes silence.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol >= 1 {
		return s
	}
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
