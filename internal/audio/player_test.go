package audio

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/pendulum-clock/internal/config"
	"github.com/iburimskiy/pendulum-clock/internal/logging"
)

// drain streams s to the end and returns every sample it produced.
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

// writeWAV encodes a click at rate into dir and returns its path.
func writeWAV(t *testing.T, dir string, rate beep.SampleRate) string {
	t.Helper()
	path := filepath.Join(dir, "tick.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	require.NoError(t, wav.Encode(f, Click(rate), format))
	return path
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// fakeSpeaker stands in for the output device.
type fakeSpeaker struct {
	mu      sync.Mutex
	inits   []beep.SampleRate
	played  []beep.Streamer
	initErr error
}

func (s *fakeSpeaker) init(rate beep.SampleRate, bufferSize int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inits = append(s.inits, rate)
	return s.initErr
}

func (s *fakeSpeaker) play(streamers ...beep.Streamer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.played = append(s.played, streamers...)
}

func (s *fakeSpeaker) playedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.played)
}

func newTestPlayer(path string, spk *fakeSpeaker, opts ...Option) *Player {
	p := NewPlayer(path, opts...)
	p.initSpeaker = spk.init
	p.play = spk.play
	return p
}

func TestClick(t *testing.T) {
	samples := drain(Click(ClickRate))
	assert.Len(t, samples, ClickRate.N(clickDuration))

	head := samples[0][0]
	tail := samples[len(samples)-1][0]
	assert.Greater(t, head*head, tail*tail, "decays")
	for _, s := range samples {
		assert.Equal(t, s[0], s[1])
		assert.LessOrEqual(t, s[0], 1.0)
		assert.GreaterOrEqual(t, s[0], -1.0)
	}
}

func TestOpenTickBuiltin(t *testing.T) {
	s, format, closeFn, err := openTick("")
	require.NoError(t, err)
	defer closeFn()
	assert.Equal(t, ClickFormat, format)
	assert.NotEmpty(t, drain(s))
}

func TestOpenTickWAV(t *testing.T) {
	path := writeWAV(t, t.TempDir(), 22050)

	s, format, closeFn, err := openTick(path)
	require.NoError(t, err)
	defer closeFn()

	assert.Equal(t, beep.SampleRate(22050), format.SampleRate)
	assert.Len(t, drain(s), beep.SampleRate(22050).N(clickDuration))
}

func TestOpenTickShippedAsset(t *testing.T) {
	s, format, closeFn, err := openTick(filepath.Join("..", "..", config.DefaultSoundFile))
	require.NoError(t, err)
	defer closeFn()

	assert.Equal(t, ClickRate, format.SampleRate)
	assert.Len(t, drain(s), ClickRate.N(clickDuration))
}

func TestOpenTickErrors(t *testing.T) {
	dir := t.TempDir()

	_, _, _, err := openTick(filepath.Join(dir, "missing.wav"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	ogg := filepath.Join(dir, "tick.ogg")
	require.NoError(t, os.WriteFile(ogg, []byte("OggS"), 0o644))
	_, _, _, err = openTick(ogg)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	garbage := filepath.Join(dir, "garbage.wav")
	require.NoError(t, os.WriteFile(garbage, []byte("not a riff file"), 0o644))
	_, _, _, err = openTick(garbage)
	assert.Error(t, err)
}

func TestPlayOnceInitializesSpeakerOnce(t *testing.T) {
	spk := &fakeSpeaker{}
	p := newTestPlayer("", spk)

	require.NoError(t, p.playOnce())
	require.NoError(t, p.playOnce())

	assert.Equal(t, []beep.SampleRate{ClickRate}, spk.inits)
	require.Len(t, spk.played, 2)

	samples := drain(spk.played[0])
	assert.Len(t, samples, ClickRate.N(clickDuration))
	assert.Greater(t, p.Level(), 0.0)
}

func TestPlayOnceResamples(t *testing.T) {
	spk := &fakeSpeaker{}
	p := newTestPlayer("", spk)
	require.NoError(t, p.playOnce()) // speaker now at 44100

	p.path = writeWAV(t, t.TempDir(), 22050)
	require.NoError(t, p.playOnce())

	assert.Len(t, spk.inits, 1)
	samples := drain(spk.played[1])
	assert.InDelta(t, ClickRate.N(clickDuration), len(samples), 8)
}

func TestVolume(t *testing.T) {
	spk := &fakeSpeaker{}
	p := newTestPlayer("", spk, WithVolume(0))
	require.NoError(t, p.playOnce())
	for _, s := range drain(spk.played[0]) {
		assert.Zero(t, s[0])
	}

	half := drain(withVolume(Click(ClickRate), 0.5))
	full := drain(Click(ClickRate))
	assert.InDelta(t, full[0][0]/2, half[0][0], 1e-9)
}

func TestSpeakerFailureDisablesPlayer(t *testing.T) {
	spk := &fakeSpeaker{initErr: assert.AnError}
	p := newTestPlayer("", spk)

	err := p.playOnce()
	assert.ErrorIs(t, err, ErrSpeakerUnavailable)
	assert.True(t, p.disabled.Load())

	err = p.playOnce()
	assert.ErrorIs(t, err, ErrSpeakerUnavailable)
	assert.Len(t, spk.inits, 1, "no retry")

	p.PlayTick()
	assert.Zero(t, spk.playedCount())
}

func TestPlayTickLogsFailures(t *testing.T) {
	var out syncBuffer
	logger := logging.New(logging.Config{Level: slog.LevelDebug, Output: &out})
	spk := &fakeSpeaker{}
	p := newTestPlayer(filepath.Join(t.TempDir(), "gone.wav"), spk, WithLogger(logger))

	p.PlayTick()
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "tick sound failed")
	}, time.Second, 5*time.Millisecond)
	assert.Contains(t, out.String(), "gone.wav")
	assert.Zero(t, spk.playedCount())
}

func TestDefaultPlayerLogsMissingAsset(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	var out syncBuffer
	logger := logging.New(logging.Config{Level: slog.LevelDebug, Output: &out})
	spk := &fakeSpeaker{}
	p := newTestPlayer(config.Default().SoundFile, spk, WithLogger(logger))

	p.PlayTick()
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "tick sound failed")
	}, time.Second, 5*time.Millisecond)
	assert.Contains(t, out.String(), config.DefaultSoundFile)
	assert.Zero(t, spk.playedCount())
	assert.False(t, p.disabled.Load(), "a missing asset does not disable audio")
}

func TestPlayTickPlaysInBackground(t *testing.T) {
	spk := &fakeSpeaker{}
	p := newTestPlayer("", spk)

	p.PlayTick()
	require.Eventually(t, func() bool { return spk.playedCount() == 1 }, time.Second, 5*time.Millisecond)
}

func TestMute(t *testing.T) {
	spk := &fakeSpeaker{}
	p := newTestPlayer("", spk, WithMuted(true))
	assert.True(t, p.Muted())

	p.PlayTick()
	assert.Never(t, func() bool { return spk.playedCount() > 0 }, 50*time.Millisecond, 5*time.Millisecond)

	assert.False(t, p.ToggleMute())
	assert.False(t, p.Muted())
	assert.True(t, p.ToggleMute())
}

func TestLevelTap(t *testing.T) {
	now := time.Unix(100, 0)
	tap := newLevelTap(4)
	tap.now = func() time.Time { return now }

	assert.Zero(t, tap.Level(LevelFresh))

	drain(tap.wrap(beep.Take(4, constant(0.5))))
	assert.InDelta(t, 0.5, tap.Level(LevelFresh), 1e-9)

	now = now.Add(LevelFresh + time.Millisecond)
	assert.Zero(t, tap.Level(LevelFresh))
}

func constant(v float64) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{v, v}
		}
		return len(samples), true
	})
}
