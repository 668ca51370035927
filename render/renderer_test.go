package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillui/quill/geom"
	"github.com/quillui/quill/paint"
)

func clipAll() geom.Rect {
	return geom.RectFromMinMax(geom.P(0, 0), geom.P(64, 64))
}

func TestRenderRectFill(t *testing.T) {
	r := New(64, 64)
	img := r.Render([]paint.ClippedShape{
		{ClipRect: clipAll(), Shape: paint.FilledRect(
			geom.RectFromMinMax(geom.P(10, 10), geom.P(30, 30)), 0, paint.Red)},
	})

	inside := img.RGBAAt(20, 20)
	assert.EqualValues(t, 255, inside.R)
	assert.EqualValues(t, 255, inside.A)

	outside := img.RGBAAt(40, 40)
	assert.EqualValues(t, 0, outside.A)
}

func TestRenderRespectsClipRect(t *testing.T) {
	r := New(64, 64)
	// The rect extends well past the clip; nothing may land outside it.
	img := r.Render([]paint.ClippedShape{
		{
			ClipRect: geom.RectFromMinMax(geom.P(0, 0), geom.P(20, 20)),
			Shape: paint.FilledRect(
				geom.RectFromMinMax(geom.P(0, 0), geom.P(60, 60)), 0, paint.White),
		},
	})

	assert.EqualValues(t, 255, img.RGBAAt(10, 10).A, "inside clip")
	assert.EqualValues(t, 0, img.RGBAAt(30, 30).A, "outside clip")
	assert.EqualValues(t, 0, img.RGBAAt(10, 30).A, "below clip")
}

func TestRenderPaintOrder(t *testing.T) {
	r := New(64, 64)
	rect := geom.RectFromMinMax(geom.P(0, 0), geom.P(64, 64))
	img := r.Render([]paint.ClippedShape{
		{ClipRect: clipAll(), Shape: paint.FilledRect(rect, 0, paint.Red)},
		{ClipRect: clipAll(), Shape: paint.FilledRect(rect, 0, paint.Blue)},
	})

	// Later shapes paint over earlier ones.
	got := img.RGBAAt(32, 32)
	assert.EqualValues(t, 0, got.R)
	assert.EqualValues(t, 255, got.B)
}

func TestRenderCircle(t *testing.T) {
	r := New(64, 64)
	img := r.Render([]paint.ClippedShape{
		{ClipRect: clipAll(), Shape: paint.FilledCircle(geom.P(32, 32), 10, paint.White)},
	})

	assert.EqualValues(t, 255, img.RGBAAt(32, 32).A, "center")
	assert.EqualValues(t, 0, img.RGBAAt(32, 10).A, "above the disc")
	assert.EqualValues(t, 0, img.RGBAAt(45, 45).A, "outside the radius")
}

func TestRenderLine(t *testing.T) {
	r := New(64, 64)
	img := r.Render([]paint.ClippedShape{
		{ClipRect: clipAll(), Shape: paint.LineSegment(
			geom.P(10, 32), geom.P(50, 32), paint.NewStroke(4, paint.White))},
	})

	assert.EqualValues(t, 255, img.RGBAAt(30, 32).A, "on the line")
	assert.EqualValues(t, 0, img.RGBAAt(30, 20).A, "off the line")
}

func TestRenderNoopAndEmptyClip(t *testing.T) {
	r := New(16, 16)
	img := r.Render([]paint.ClippedShape{
		{ClipRect: clipAll(), Shape: paint.Noop},
		{ClipRect: geom.RectFromMinMax(geom.P(5, 5), geom.P(5, 5)), Shape: paint.FilledRect(
			geom.RectFromMinMax(geom.P(0, 0), geom.P(16, 16)), 0, paint.White)},
	})

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if img.RGBAAt(x, y).A != 0 {
				t.Fatalf("pixel (%d,%d) painted, want blank image", x, y)
			}
		}
	}
}

func TestRenderBackground(t *testing.T) {
	r := New(8, 8)
	r.SetBackground(paint.GrayLevel(20))
	img := r.Render(nil)
	assert.EqualValues(t, 20, img.RGBAAt(4, 4).R)
	assert.EqualValues(t, 255, img.RGBAAt(4, 4).A)
}

func TestWritePNG(t *testing.T) {
	r := New(32, 32)
	var buf bytes.Buffer
	err := r.WritePNG(&buf, []paint.ClippedShape{
		{ClipRect: clipAll(), Shape: paint.FilledRect(
			geom.RectFromMinMax(geom.P(4, 4), geom.P(28, 28)), 0, paint.Red)},
	})
	require.NoError(t, err)

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	bounds := decoded.Bounds()
	assert.Equal(t, 32, bounds.Dx())
	assert.Equal(t, 32, bounds.Dy())
}
