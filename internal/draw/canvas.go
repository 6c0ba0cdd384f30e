// Package draw defines the painting surface the clock renders onto and the
// backends behind it: the ebiten window, an SVG document and an in-memory
// recorder.
package draw

import (
	"image/color"

	"github.com/iburimskiy/pendulum-clock/internal/geom"
)

// Canvas is a 2D surface with an explicit transform stack. Shapes are given
// in local coordinates and mapped through the current transform.
type Canvas interface {
	Save()
	Restore()
	Translate(dx, dy float64)
	Rotate(radians float64)

	FillRect(x, y, w, h float64, clr color.Color)
	FillPolygon(pts []geom.Point, clr color.Color)
	FillCircle(cx, cy, r float64, clr color.Color)
	// FillRing fills the annulus between the outer and inner radius.
	FillRing(cx, cy, outer, inner float64, clr color.Color)

	// Text draws s with its baseline starting at (x, y), ignoring the
	// current transform.
	Text(s string, x, y float64, clr color.Color)
	TextWidth(s string) float64
}

// transformer implements the transform half of Canvas for every backend.
type transformer struct {
	stack *geom.Stack
}

func newTransformer() transformer {
	return transformer{stack: geom.NewStack()}
}

func (t *transformer) Save()                    { t.stack.Push() }
func (t *transformer) Restore()                 { t.stack.Pop() }
func (t *transformer) Translate(dx, dy float64) { t.stack.Translate(dx, dy) }
func (t *transformer) Rotate(radians float64)   { t.stack.Rotate(radians) }

func (t *transformer) apply(p geom.Point) geom.Point {
	return t.stack.Current().Apply(p)
}

func (t *transformer) applyAll(pts []geom.Point) []geom.Point {
	out := make([]geom.Point, len(pts))
	m := t.stack.Current()
	for i, p := range pts {
		out[i] = m.Apply(p)
	}
	return out
}

// rectPoints returns the corners of a local axis-aligned rectangle.
func rectPoints(x, y, w, h float64) []geom.Point {
	return []geom.Point{
		geom.Pt(x, y),
		geom.Pt(x+w, y),
		geom.Pt(x+w, y+h),
		geom.Pt(x, y+h),
	}
}
