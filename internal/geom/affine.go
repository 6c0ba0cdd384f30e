// Package geom holds the 2D transform math used to place clock parts.
package geom

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Point is a position in either local or screen space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Affine is a 2D affine transform stored row major with an implicit
// [0 0 1] bottom row:
//
//	x' = m[0]*x + m[1]*y + m[2]
//	y' = m[3]*x + m[4]*y + m[5]
//
// Only translations and rotations are ever composed, so lengths and
// radii are preserved.
type Affine struct {
	m f64.Aff3
}

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{m: f64.Aff3{1, 0, 0, 0, 1, 0}}
}

// Translation returns a transform moving points by (dx, dy).
func Translation(dx, dy float64) Affine {
	return Affine{m: f64.Aff3{1, 0, dx, 0, 1, dy}}
}

// Rotation returns a transform rotating points by radians around the origin.
// With y pointing down, positive angles turn clockwise on screen.
func Rotation(radians float64) Affine {
	sin, cos := math.Sincos(radians)
	return Affine{m: f64.Aff3{cos, -sin, 0, sin, cos, 0}}
}

// Mul returns a·b, the transform that applies b first and then a.
func (a Affine) Mul(b Affine) Affine {
	x, y := a.m, b.m
	return Affine{m: f64.Aff3{
		x[0]*y[0] + x[1]*y[3],
		x[0]*y[1] + x[1]*y[4],
		x[0]*y[2] + x[1]*y[5] + x[2],
		x[3]*y[0] + x[4]*y[3],
		x[3]*y[1] + x[4]*y[4],
		x[3]*y[2] + x[4]*y[5] + x[5],
	}}
}

// Translate appends a translation in the current local space.
func (a Affine) Translate(dx, dy float64) Affine {
	return a.Mul(Translation(dx, dy))
}

// Rotate appends a rotation in the current local space.
func (a Affine) Rotate(radians float64) Affine {
	return a.Mul(Rotation(radians))
}

// Apply maps p from local space to the space a points into.
func (a Affine) Apply(p Point) Point {
	return Point{
		X: a.m[0]*p.X + a.m[1]*p.Y + a.m[2],
		Y: a.m[3]*p.X + a.m[4]*p.Y + a.m[5],
	}
}

// Matrix returns the six coefficients in SVG order (a, b, c, d, e, f).
func (a Affine) Matrix() [6]float64 {
	return [6]float64{a.m[0], a.m[3], a.m[1], a.m[4], a.m[2], a.m[5]}
}

// Stack is a current transform plus the saved ones below it.
// The zero value is not ready; use NewStack.
type Stack struct {
	current Affine
	saved   []Affine
}

// NewStack returns a stack whose current transform is the identity.
func NewStack() *Stack {
	return &Stack{current: Identity()}
}

// Current returns the transform in effect.
func (s *Stack) Current() Affine {
	return s.current
}

// Push saves the current transform.
func (s *Stack) Push() {
	s.saved = append(s.saved, s.current)
}

// Pop restores the most recently saved transform. Popping an empty stack
// is a no-op.
func (s *Stack) Pop() {
	if len(s.saved) == 0 {
		return
	}
	s.current = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

// Depth returns how many transforms are saved.
func (s *Stack) Depth() int {
	return len(s.saved)
}

// Translate composes a translation onto the current transform.
func (s *Stack) Translate(dx, dy float64) {
	s.current = s.current.Translate(dx, dy)
}

// Rotate composes a rotation onto the current transform.
func (s *Stack) Rotate(radians float64) {
	s.current = s.current.Rotate(radians)
}

// Reset drops all saved transforms and returns to the identity.
func (s *Stack) Reset() {
	s.current = Identity()
	s.saved = s.saved[:0]
}
