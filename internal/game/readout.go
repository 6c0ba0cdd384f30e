package game

import (
	"image/color"
	"time"

	"github.com/iburimskiy/pendulum-clock/internal/config"
	"github.com/iburimskiy/pendulum-clock/internal/draw"
)

// field is one colored part of the digital readout.
type field struct {
	text  string
	x, y  float64
	color color.Color
}

var (
	hoursColor   = config.MustColor(config.HoursColor)
	minutesColor = config.MustColor(config.MinutesColor)
	secondsColor = config.MustColor(config.SecondsColor)
)

// readoutFields lays out HH, MM and SS for the wall time now, centered on
// width as if drawn as one string, with fixed spacing between the fields.
func readoutFields(now time.Time, width float64, measure func(string) float64) []field {
	s := formatClock(now)
	x := width/2 - measure(s)/2
	y := float64(config.ReadoutY)
	return []field{
		{text: s[0:2], x: x, y: y, color: hoursColor},
		{text: s[3:5], x: x + config.ReadoutSpacing, y: y, color: minutesColor},
		{text: s[6:8], x: x + 2*config.ReadoutSpacing, y: y, color: secondsColor},
	}
}

// drawReadout paints the real wall time, not the simulated one.
func drawReadout(c draw.Canvas, now time.Time, width float64) {
	for _, f := range readoutFields(now, width, c.TextWidth) {
		c.Text(f.text, f.x, f.y, f.color)
	}
}

// drawLevel paints a dot under the readout that flashes with the tick.
func drawLevel(c draw.Canvas, level, width float64) {
	alpha := clamp01(level * 4)
	if alpha == 0 {
		return
	}
	r, g, b, _ := secondsColor.RGBA()
	c.FillCircle(width/2, config.ReadoutY+24, 6, color.NRGBA{
		R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(alpha * 255),
	})
}
