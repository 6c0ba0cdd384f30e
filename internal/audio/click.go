package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// ClickRate is the sample rate of the synthesized click.
const ClickRate = beep.SampleRate(44100)

const (
	clickDuration = 35 * time.Millisecond
	clickFreq     = 1800.0
	clickDecay    = 180.0 // 1/s
)

// ClickFormat describes the synthesized click stream.
var ClickFormat = beep.Format{SampleRate: ClickRate, NumChannels: 2, Precision: 2}

// Click returns a short exponentially decaying square burst, close to the
// knock of an escapement pallet.
func Click(rate beep.SampleRate) beep.Streamer {
	total := rate.N(clickDuration)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			t := float64(pos) / float64(rate)
			phase := math.Mod(t*clickFreq, 1)
			val := 1.0
			if phase >= 0.5 {
				val = -1.0
			}
			val *= 0.6 * math.Exp(-clickDecay*t)
			samples[i][0] = val
			samples[i][1] = val
			pos++
			n++
		}
		return n, true
	})
}
