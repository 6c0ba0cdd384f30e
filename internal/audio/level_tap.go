package audio

import (
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
)

// levelTap records the most recently played samples into a ring buffer so
// the renderer can show when a tick is sounding.
type levelTap struct {
	buffer    [][2]float64
	nextIndex int
	lastWrite time.Time
	mu        sync.RWMutex

	now func() time.Time
}

func newLevelTap(ringSize int) *levelTap {
	return &levelTap{
		buffer: make([][2]float64, ringSize),
		now:    time.Now,
	}
}

// wrap returns a streamer that plays src and records what it produced.
func (t *levelTap) wrap(src beep.Streamer) beep.Streamer {
	return &tapStreamer{Source: src, tap: t}
}

func (t *levelTap) record(samples [][2]float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, s := range samples {
		t.buffer[t.nextIndex] = s
		t.nextIndex++
		if t.nextIndex >= len(t.buffer) {
			t.nextIndex = 0
		}
	}
	t.lastWrite = t.now()
}

// Level returns the RMS of the buffered samples, or 0 once nothing has been
// written for longer than fresh.
func (t *levelTap) Level(fresh time.Duration) float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.lastWrite.IsZero() || t.now().Sub(t.lastWrite) > fresh {
		return 0
	}
	var sumSquares float64
	for _, s := range t.buffer {
		mono := (s[0] + s[1]) * 0.5
		sumSquares += mono * mono
	}
	return math.Sqrt(sumSquares / float64(len(t.buffer)))
}

type tapStreamer struct {
	Source beep.Streamer
	tap    *levelTap
}

func (s *tapStreamer) Stream(samples [][2]float64) (int, bool) {
	n, ok := s.Source.Stream(samples)
	if n > 0 {
		s.tap.record(samples[:n])
	}
	return n, ok
}

func (s *tapStreamer) Err() error { return s.Source.Err() }
