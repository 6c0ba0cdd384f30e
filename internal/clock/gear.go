package clock

import (
	"image/color"
	"math"

	"github.com/iburimskiy/pendulum-clock/internal/config"
	"github.com/iburimskiy/pendulum-clock/internal/draw"
)

// Variant selects how a gear is shaped.
type Variant int

const (
	// EscapementVariant has raked saw teeth and spokes aligned with tooth 0.
	EscapementVariant Variant = iota
	// TrainVariant has square teeth, spokes offset by half a spoke step and
	// an optional hand.
	TrainVariant
)

// Gear is a spoked ring with outer teeth and a toothed hub. Only the angle
// changes after construction.
type Gear struct {
	layout  config.GearLayout
	variant Variant
	angle   float64

	primary, secondary, arrow color.Color
}

// NewGear builds a gear at angle zero.
func NewGear(layout config.GearLayout, variant Variant) *Gear {
	return &Gear{
		layout:    layout,
		variant:   variant,
		primary:   config.MustColor(layout.Primary),
		secondary: config.MustColor(layout.Secondary),
		arrow:     config.MustColor(config.ArrowColor),
	}
}

// Name returns the layout name.
func (g *Gear) Name() string {
	return g.layout.Name
}

// SetAngle sets the rotation in radians.
func (g *Gear) SetAngle(angle float64) {
	g.angle = angle
}

// Angle returns the current rotation.
func (g *Gear) Angle() float64 {
	return g.angle
}

// OuterTeeth returns the rim tooth count.
func (g *Gear) OuterTeeth() int {
	return g.layout.OuterTeeth
}

// Draw paints spokes, rim teeth, ring, hub teeth, hub and, when enabled,
// the hand, all rotated about the center.
func (g *Gear) Draw(c draw.Canvas) {
	l := g.layout

	c.Save()
	defer c.Restore()
	c.Translate(l.CenterX, l.CenterY)
	c.Rotate(g.angle)

	profile := SawTooth
	if g.variant == TrainVariant {
		profile = SquareTooth
		c.Save()
		c.Rotate(math.Pi / float64(l.Arms))
		spokes(c, l.Arms, l.ArmsStroke, l.OuterRadius, g.secondary)
		c.Restore()
	} else {
		spokes(c, l.Arms, l.ArmsStroke, l.OuterRadius, g.secondary)
	}

	teeth(c, l.OuterTeeth, l.OuterRadius, profile, g.primary)
	c.FillRing(0, 0, l.OuterRadius, l.InnerRadius, g.primary)
	teeth(c, l.InnerTeeth, l.HubRadius, SquareTooth, g.primary)
	c.FillCircle(0, 0, l.HubRadius, g.primary)

	if g.variant == TrainVariant && l.Arrow {
		pointer(c, l.OuterRadius, g.arrow)
	}
}
