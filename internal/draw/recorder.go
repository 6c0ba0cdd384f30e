package draw

import (
	"image/color"
	"unicode/utf8"

	"github.com/iburimskiy/pendulum-clock/internal/geom"
)

// OpKind identifies a recorded fill.
type OpKind int

const (
	OpPolygon OpKind = iota
	OpCircle
	OpRing
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpPolygon:
		return "polygon"
	case OpCircle:
		return "circle"
	case OpRing:
		return "ring"
	case OpText:
		return "text"
	default:
		return "unknown"
	}
}

// Op is one recorded fill, already mapped to screen space.
type Op struct {
	Kind   OpKind
	Points []geom.Point // polygon corners; rectangles are recorded as polygons
	Center geom.Point   // circle, ring and text anchor
	Radius float64
	Inner  float64
	Color  color.Color
	Text   string
}

// RecorderGlyphWidth is the fixed advance the recorder reports per rune.
const RecorderGlyphWidth = 24

// Recorder is a Canvas that keeps every fill in memory. It is used to check
// geometry without a window.
type Recorder struct {
	transformer
	Ops []Op
}

// NewRecorder returns an empty recorder with an identity transform.
func NewRecorder() *Recorder {
	return &Recorder{transformer: newTransformer()}
}

// Depth reports how many transforms are currently saved.
func (r *Recorder) Depth() int {
	return r.stack.Depth()
}

// Reset drops recorded ops and transforms.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.stack.Reset()
}

func (r *Recorder) FillRect(x, y, w, h float64, clr color.Color) {
	r.FillPolygon(rectPoints(x, y, w, h), clr)
}

func (r *Recorder) FillPolygon(pts []geom.Point, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpPolygon, Points: r.applyAll(pts), Color: clr})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, Center: r.apply(geom.Pt(cx, cy)), Radius: radius, Color: clr})
}

func (r *Recorder) FillRing(cx, cy, outer, inner float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpRing, Center: r.apply(geom.Pt(cx, cy)), Radius: outer, Inner: inner, Color: clr})
}

func (r *Recorder) Text(s string, x, y float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Center: geom.Pt(x, y), Text: s, Color: clr})
}

func (r *Recorder) TextWidth(s string) float64 {
	return float64(utf8.RuneCountInString(s) * RecorderGlyphWidth)
}

// Filter returns the ops of the given kind in recording order.
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}
