package clock

import (
	"image/color"
	"math"

	"github.com/iburimskiy/pendulum-clock/internal/config"
	"github.com/iburimskiy/pendulum-clock/internal/draw"
)

// Pendulum is the swinging rod with its escapement anchor. Only the angle
// changes after construction.
type Pendulum struct {
	layout config.PendulumLayout
	angle  float64

	rod, scape, pivot, bulb color.Color
}

// NewPendulum builds a pendulum at rest.
func NewPendulum(layout config.PendulumLayout) *Pendulum {
	return &Pendulum{
		layout: layout,
		rod:    config.MustColor(config.RodColor),
		scape:  config.MustColor(config.ScapeColor),
		pivot:  config.MustColor(config.PivotColor),
		bulb:   config.MustColor(config.BulbColor),
	}
}

// SetAngle sets the swing angle in radians; zero hangs straight down.
func (p *Pendulum) SetAngle(angle float64) {
	p.angle = angle
}

// Angle returns the current swing angle.
func (p *Pendulum) Angle() float64 {
	return p.angle
}

// Draw paints the rod, the anchor arms, the pivot and the bulb rotated about
// the pivot.
func (p *Pendulum) Draw(c draw.Canvas) {
	l := p.layout

	c.Save()
	defer c.Restore()
	c.Translate(l.PivotX, l.PivotY)
	c.Rotate(p.angle)

	arm(c, l.RodStroke, l.RodLength, p.rod)

	// Anchor arms at ±45° off the rod.
	c.Save()
	c.Rotate(math.Pi / 4)
	arm(c, l.RodStroke, l.ScapeLength, p.scape)
	c.Rotate(-math.Pi / 2)
	arm(c, l.RodStroke, l.ScapeLength, p.scape)
	c.Restore()

	// Short pallet at the tip of the -45° arm.
	d := (l.ScapeLength - l.RodStroke/2) * math.Sqrt2 / 2
	c.Save()
	c.Translate(d, d)
	c.Rotate(math.Pi / 4)
	arm(c, l.RodStroke, l.ScapeShortLength, p.scape)
	c.Restore()

	c.FillCircle(0, 0, l.PivotRadius, p.pivot)
	c.FillCircle(0, l.RodLength, l.BulbRadius, p.bulb)
}
