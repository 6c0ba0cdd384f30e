package draw

import (
	"bytes"
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/pendulum-clock/internal/geom"
)

var brown = color.RGBA{R: 0x6d, G: 0x3c, B: 0x11, A: 0xff}

func TestRecorderMapsThroughTransform(t *testing.T) {
	r := NewRecorder()
	r.Save()
	r.Translate(100, 100)
	r.Rotate(math.Pi / 2)
	r.FillRect(0, 0, 10, 20, brown)
	r.FillCircle(0, 50, 5, brown)
	r.Restore()
	r.FillCircle(0, 50, 5, brown)

	require.Len(t, r.Ops, 3)
	assert.Equal(t, 0, r.Depth())

	rect := r.Ops[0]
	assert.Equal(t, OpPolygon, rect.Kind)
	require.Len(t, rect.Points, 4)
	// (10, 0) rotates onto +y, (0, 20) onto -x.
	assert.InDelta(t, 100, rect.Points[1].X, 1e-9)
	assert.InDelta(t, 110, rect.Points[1].Y, 1e-9)
	assert.InDelta(t, 80, rect.Points[3].X, 1e-9)
	assert.InDelta(t, 100, rect.Points[3].Y, 1e-9)

	assert.InDelta(t, 50, r.Ops[1].Center.X, 1e-9)
	assert.InDelta(t, 100, r.Ops[1].Center.Y, 1e-9)

	// After Restore the identity is back.
	assert.Equal(t, geom.Pt(0, 50), r.Ops[2].Center)
}

func TestRecorderFilterAndReset(t *testing.T) {
	r := NewRecorder()
	r.FillRing(10, 10, 20, 15, brown)
	r.FillCircle(10, 10, 5, brown)
	r.Text("12", 0, 0, brown)

	rings := r.Filter(OpRing)
	require.Len(t, rings, 1)
	assert.Equal(t, 20.0, rings[0].Radius)
	assert.Equal(t, 15.0, rings[0].Inner)
	assert.Equal(t, float64(2*RecorderGlyphWidth), r.TextWidth("12"))
	assert.Equal(t, "text", OpText.String())

	r.Translate(5, 5)
	r.Reset()
	assert.Empty(t, r.Ops)
	r.FillCircle(0, 0, 1, brown)
	assert.Equal(t, geom.Pt(0, 0), r.Ops[0].Center)
}

func TestSVGCanvasWritesShapes(t *testing.T) {
	var buf bytes.Buffer
	c, err := NewSVGCanvas(&buf, 200, 100, "test", color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff})
	require.NoError(t, err)

	c.Save()
	c.Translate(50, 50)
	c.FillRect(-5, 0, 10, 30, brown)
	c.Restore()
	c.FillCircle(20, 20, 4, brown)
	c.FillRing(100, 50, 40, 30, brown)
	c.Text("09", 10, 90, brown)
	c.End()

	out := buf.String()
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "<?xml"))
	assert.Contains(t, out, "<title>test</title>")
	assert.Contains(t, out, "fill:#eeeeee")
	assert.Contains(t, out, "<polygon")
	assert.Contains(t, out, "45,50 55,50 55,80 45,80")
	assert.Contains(t, out, "fill:#6d3c11")
	assert.Contains(t, out, "fill-rule:evenodd")
	assert.Contains(t, out, ">09</text>")
	assert.Contains(t, out, "</svg>")
}

func TestSVGCanvasMeasuresText(t *testing.T) {
	var buf bytes.Buffer
	c, err := NewSVGCanvas(&buf, 10, 10, "", color.White)
	require.NoError(t, err)

	short := c.TextWidth("1")
	long := c.TextWidth("12:34:56")
	assert.Greater(t, short, 0.0)
	assert.Greater(t, long, 4*short)
}
