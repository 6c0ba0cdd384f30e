package draw

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/iburimskiy/pendulum-clock/internal/geom"
)

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

// whitePixel returns a 1x1 white source for triangle fills. It is created on
// first use so importing the package does not touch the graphics driver.
func whitePixel() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// EbitenCanvas paints onto an ebiten image. Polygons are filled through
// vector paths, circles and rings through the vector helpers.
type EbitenCanvas struct {
	transformer
	dst  *ebiten.Image
	face *text.GoTextFace

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewEbitenCanvas loads the readout face and returns a canvas with no target;
// call Begin before each frame.
func NewEbitenCanvas() (*EbitenCanvas, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load readout font: %w", err)
	}
	return &EbitenCanvas{
		transformer: newTransformer(),
		face:        &text.GoTextFace{Source: src, Size: ReadoutFontSize},
	}, nil
}

// Begin points the canvas at dst and resets the transform stack.
func (c *EbitenCanvas) Begin(dst *ebiten.Image) {
	c.dst = dst
	c.stack.Reset()
}

func (c *EbitenCanvas) FillRect(x, y, w, h float64, clr color.Color) {
	c.FillPolygon(rectPoints(x, y, w, h), clr)
}

func (c *EbitenCanvas) FillPolygon(pts []geom.Point, clr color.Color) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	for i, p := range c.applyAll(pts) {
		if i == 0 {
			path.MoveTo(float32(p.X), float32(p.Y))
			continue
		}
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	c.vertices, c.indices = path.AppendVerticesAndIndicesForFilling(c.vertices[:0], c.indices[:0])
	r, g, b, a := clr.RGBA()
	for i := range c.vertices {
		c.vertices[i].SrcX = 1
		c.vertices[i].SrcY = 1
		c.vertices[i].ColorR = float32(r) / 0xffff
		c.vertices[i].ColorG = float32(g) / 0xffff
		c.vertices[i].ColorB = float32(b) / 0xffff
		c.vertices[i].ColorA = float32(a) / 0xffff
	}
	c.dst.DrawTriangles(c.vertices, c.indices, whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (c *EbitenCanvas) FillCircle(cx, cy, r float64, clr color.Color) {
	p := c.apply(geom.Pt(cx, cy))
	vector.DrawFilledCircle(c.dst, float32(p.X), float32(p.Y), float32(r), clr, true)
}

// FillRing strokes a circle at the mid radius whose width spans the annulus.
func (c *EbitenCanvas) FillRing(cx, cy, outer, inner float64, clr color.Color) {
	p := c.apply(geom.Pt(cx, cy))
	mid := (outer + inner) / 2
	vector.StrokeCircle(c.dst, float32(p.X), float32(p.Y), float32(mid), float32(outer-inner), clr, true)
}

func (c *EbitenCanvas) Text(s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	// text/v2 anchors at the top of the line box; shift up to the baseline.
	op.GeoM.Translate(x, y-c.face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(c.dst, s, c.face, op)
}

func (c *EbitenCanvas) TextWidth(s string) float64 {
	return text.Advance(s, c.face)
}
