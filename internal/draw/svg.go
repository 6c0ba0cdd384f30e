package draw

import (
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"

	"github.com/iburimskiy/pendulum-clock/internal/geom"
)

// SVGCanvas writes fills into an SVG document. Coordinates are rounded to
// whole pixels.
type SVGCanvas struct {
	transformer
	doc  *svg.SVG
	face font.Face
}

// NewSVGCanvas starts a width×height document on w filled with background.
// Call End to close it.
func NewSVGCanvas(w io.Writer, width, height int, title string, background color.Color) (*SVGCanvas, error) {
	face, err := newMeasureFace(ReadoutFontSize)
	if err != nil {
		return nil, err
	}
	doc := svg.New(w)
	doc.Start(width, height)
	if title != "" {
		doc.Title(title)
	}
	doc.Rect(0, 0, width, height, fill(background))
	return &SVGCanvas{transformer: newTransformer(), doc: doc, face: face}, nil
}

// End closes the document.
func (c *SVGCanvas) End() {
	c.doc.End()
}

func (c *SVGCanvas) FillRect(x, y, w, h float64, clr color.Color) {
	c.FillPolygon(rectPoints(x, y, w, h), clr)
}

func (c *SVGCanvas) FillPolygon(pts []geom.Point, clr color.Color) {
	if len(pts) < 3 {
		return
	}
	xs := make([]int, len(pts))
	ys := make([]int, len(pts))
	for i, p := range c.applyAll(pts) {
		xs[i], ys[i] = round(p.X), round(p.Y)
	}
	c.doc.Polygon(xs, ys, fill(clr))
}

func (c *SVGCanvas) FillCircle(cx, cy, r float64, clr color.Color) {
	p := c.apply(geom.Pt(cx, cy))
	c.doc.Circle(round(p.X), round(p.Y), round(r), fill(clr))
}

// FillRing draws two circular subpaths filled with the even-odd rule, which
// leaves the inner disc empty.
func (c *SVGCanvas) FillRing(cx, cy, outer, inner float64, clr color.Color) {
	p := c.apply(geom.Pt(cx, cy))
	d := circlePath(p, outer) + " " + circlePath(p, inner)
	c.doc.Path(d, fill(clr)+";fill-rule:evenodd")
}

func (c *SVGCanvas) Text(s string, x, y float64, clr color.Color) {
	style := fmt.Sprintf("%s;font-family:Go,sans-serif;font-weight:bold;font-size:%dpx", fill(clr), ReadoutFontSize)
	c.doc.Text(round(x), round(y), s, style)
}

func (c *SVGCanvas) TextWidth(s string) float64 {
	return measure(c.face, s)
}

func circlePath(center geom.Point, r float64) string {
	return fmt.Sprintf("M %.2f %.2f A %.2f %.2f 0 1 0 %.2f %.2f A %.2f %.2f 0 1 0 %.2f %.2f Z",
		center.X-r, center.Y,
		r, r, center.X+r, center.Y,
		r, r, center.X-r, center.Y)
}

func fill(clr color.Color) string {
	c, _ := colorful.MakeColor(clr)
	return "fill:" + c.Hex()
}

func round(v float64) int {
	return int(math.Round(v))
}
