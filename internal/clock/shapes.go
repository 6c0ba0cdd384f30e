// Package clock models the pendulum clock: the parts that are painted each
// frame and the kinematics that turn elapsed time into their angles.
package clock

import (
	"image/color"
	"math"

	"github.com/iburimskiy/pendulum-clock/internal/draw"
	"github.com/iburimskiy/pendulum-clock/internal/geom"
)

// arm fills a bar of the given stroke running from the local origin along +y.
func arm(c draw.Canvas, stroke, length float64, clr color.Color) {
	c.FillRect(-stroke/2, 0, stroke, length, clr)
}

// spokes fills n arms evenly spaced by 2π/n starting on the current +y axis.
func spokes(c draw.Canvas, n int, stroke, length float64, clr color.Color) {
	c.Save()
	step := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		arm(c, stroke, length, clr)
		c.Rotate(step)
	}
	c.Restore()
}

// ToothProfile returns one tooth, in local space, sitting on a rim of the
// given radius at the top (-y) of the gear.
type ToothProfile func(radius float64) []geom.Point

// SawTooth is the escapement's raked triangular tooth.
func SawTooth(radius float64) []geom.Point {
	return []geom.Point{
		geom.Pt(0, -radius),
		geom.Pt(-10, -radius),
		geom.Pt(-20, -radius-15),
	}
}

// SquareTooth is the 8×8 block used on the train gears and on every hub.
func SquareTooth(radius float64) []geom.Point {
	return []geom.Point{
		geom.Pt(-4, -radius),
		geom.Pt(4, -radius),
		geom.Pt(4, -radius-8),
		geom.Pt(-4, -radius-8),
	}
}

// teeth fills n copies of profile evenly spaced by 2π/n.
func teeth(c draw.Canvas, n int, radius float64, profile ToothProfile, clr color.Color) {
	c.Save()
	step := 2 * math.Pi / float64(n)
	tooth := profile(radius)
	for i := 0; i < n; i++ {
		c.FillPolygon(tooth, clr)
		c.Rotate(step)
	}
	c.Restore()
}

// pointer fills a hand along the local -y axis: a 4px shaft up to half the
// radius capped by a triangular head.
func pointer(c draw.Canvas, radius float64, clr color.Color) {
	half := radius / 2
	c.FillRect(-2, -half, 4, half, clr)
	c.FillPolygon([]geom.Point{
		geom.Pt(-10, -half),
		geom.Pt(10, -half),
		geom.Pt(0, -half-15),
	}, clr)
}
