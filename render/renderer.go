// Package render turns a drained shape sequence into pixels on the CPU.
//
// It is a debug and testing backend: fills are exact, strokes and text
// are approximated (text paints as monospace block-out boxes, since
// quill does no text shaping). Applications with real rendering needs
// are expected to feed the drained shapes to their own backend instead.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/vector"

	"github.com/quillui/quill/geom"
	"github.com/quillui/quill/paint"
)

// circleK is the cubic Bézier quarter-circle constant: 4/3 * (sqrt(2)-1).
const circleK = 0.5522848

// Renderer rasterizes clipped shapes into an RGBA image.
// Not safe for concurrent use; each Render call reuses one rasterizer.
type Renderer struct {
	width, height int
	background    paint.Color

	ras *vector.Rasterizer

	// ox, oy place the rasterizer, which is sized to the current clip
	// rectangle, within the image. Path coordinates are shifted by them.
	ox, oy float32
}

// New returns a renderer producing images of the given size in pixels.
func New(width, height int) *Renderer {
	return &Renderer{
		width:      width,
		height:     height,
		background: paint.Transparent,
		ras:        vector.NewRasterizer(width, height),
	}
}

// SetBackground sets the color the image is cleared to before painting.
func (r *Renderer) SetBackground(c paint.Color) {
	r.background = c
}

// Render paints the shapes, in order, into a fresh image.
// Each shape is restricted to its clip rectangle.
func (r *Renderer) Render(shapes []paint.ClippedShape) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	if !r.background.IsTransparent() {
		draw.Draw(img, img.Bounds(), image.NewUniform(r.background.NRGBA()), image.Point{}, draw.Src)
	}

	// Clamp in float space first: clip rectangles are often unbounded
	// (EverythingRect), which must not reach the float-to-int conversion.
	full := geom.RectFromMinMax(geom.P(0, 0), geom.P(float32(r.width), float32(r.height)))
	for _, cs := range shapes {
		clipped := cs.ClipRect.Intersect(full)
		if clipped.IsNegative() {
			continue
		}
		clip := deviceRect(clipped).Intersect(img.Bounds())
		if clip.Empty() {
			continue
		}
		r.paintShape(img, clip, cs.Shape)
	}
	return img
}

// WritePNG renders the shapes and writes the result as PNG.
func (r *Renderer) WritePNG(w io.Writer, shapes []paint.ClippedShape) error {
	return png.Encode(w, r.Render(shapes))
}

func (r *Renderer) paintShape(img *image.RGBA, clip image.Rectangle, shape paint.Shape) {
	switch s := shape.(type) {
	case paint.NoopShape:
		// Nothing to paint.

	case *paint.RectShape:
		if !s.Fill.IsTransparent() {
			r.fillQuad(img, clip, s.Fill,
				s.Rect.LeftTop(), s.Rect.RightTop(),
				s.Rect.RightBottom(), s.Rect.LeftBottom())
		}
		if !s.Stroke.IsEmpty() {
			r.strokeRect(img, clip, s.Rect, s.Stroke)
		}

	case *paint.CircleShape:
		if !s.Stroke.IsEmpty() {
			// Paint the outline as a larger disc underneath the fill.
			r.fillCircle(img, clip, s.Center, s.Radius+s.Stroke.Width/2, s.Stroke.Color)
			if !s.Fill.IsTransparent() {
				r.fillCircle(img, clip, s.Center, s.Radius-s.Stroke.Width/2, s.Fill)
			}
		} else if !s.Fill.IsTransparent() {
			r.fillCircle(img, clip, s.Center, s.Radius, s.Fill)
		}

	case *paint.LineShape:
		if !s.Stroke.IsEmpty() {
			r.fillLine(img, clip, s.Points[0], s.Points[1], s.Stroke)
		}

	case *paint.PathShape:
		if len(s.Points) < 2 {
			return
		}
		if s.Closed && !s.Fill.IsTransparent() {
			r.fillPolygon(img, clip, s.Points, s.Fill)
		}
		if !s.Stroke.IsEmpty() {
			n := len(s.Points)
			last := n - 1
			if s.Closed {
				last = n
			}
			for i := 0; i < last; i++ {
				r.fillLine(img, clip, s.Points[i], s.Points[(i+1)%n], s.Stroke)
			}
		}

	case *paint.TextShape:
		r.blockOutText(img, clip, s)
	}
}

// begin resets the rasterizer to the clip rectangle's size. Path
// coordinates added afterwards are image coordinates; moveTo and lineTo
// translate them into the rasterizer's clip-local space.
func (r *Renderer) begin(clip image.Rectangle) {
	r.ras.Reset(clip.Dx(), clip.Dy())
	r.ox = float32(clip.Min.X)
	r.oy = float32(clip.Min.Y)
}

func (r *Renderer) moveTo(p geom.Pos2)  { r.ras.MoveTo(p.X-r.ox, p.Y-r.oy) }
func (r *Renderer) lineTo(p geom.Pos2)  { r.ras.LineTo(p.X-r.ox, p.Y-r.oy) }
func (r *Renderer) cubeTo(x1, y1, x2, y2, x3, y3 float32) {
	r.ras.CubeTo(x1-r.ox, y1-r.oy, x2-r.ox, y2-r.oy, x3-r.ox, y3-r.oy)
}

// fill composites the accumulated path onto img inside clip.
func (r *Renderer) fill(img *image.RGBA, clip image.Rectangle, col paint.Color) {
	r.ras.ClosePath()
	r.ras.Draw(img, clip, image.NewUniform(premultiply(col)), image.Point{})
}

// fillQuad fills the quadrilateral a-b-c-d.
func (r *Renderer) fillQuad(img *image.RGBA, clip image.Rectangle, col paint.Color, a, b, c, d geom.Pos2) {
	r.begin(clip)
	r.moveTo(a)
	r.lineTo(b)
	r.lineTo(c)
	r.lineTo(d)
	r.fill(img, clip, col)
}

func (r *Renderer) fillPolygon(img *image.RGBA, clip image.Rectangle, points []geom.Pos2, col paint.Color) {
	r.begin(clip)
	r.moveTo(points[0])
	for _, p := range points[1:] {
		r.lineTo(p)
	}
	r.fill(img, clip, col)
}

func (r *Renderer) fillCircle(img *image.RGBA, clip image.Rectangle, center geom.Pos2, radius float32, col paint.Color) {
	if radius <= 0 {
		return
	}
	cx, cy, k := center.X, center.Y, radius*circleK

	r.begin(clip)
	r.moveTo(geom.P(cx+radius, cy))
	r.cubeTo(cx+radius, cy+k, cx+k, cy+radius, cx, cy+radius)
	r.cubeTo(cx-k, cy+radius, cx-radius, cy+k, cx-radius, cy)
	r.cubeTo(cx-radius, cy-k, cx-k, cy-radius, cx, cy-radius)
	r.cubeTo(cx+k, cy-radius, cx+radius, cy-k, cx+radius, cy)
	r.fill(img, clip, col)
}

// fillLine paints a straight line as a filled quad of the stroke width.
func (r *Renderer) fillLine(img *image.RGBA, clip image.Rectangle, a, b geom.Pos2, stroke paint.Stroke) {
	dir := b.Sub(a).Normalized()
	if dir == geom.Vec2Zero {
		return
	}
	n := dir.Rot90().Mul(stroke.Width / 2)
	r.fillQuad(img, clip, stroke.Color,
		a.Add(n), b.Add(n), b.Add(n.Neg()), a.Add(n.Neg()))
}

// strokeRect paints the four edges of a rectangle as filled quads.
func (r *Renderer) strokeRect(img *image.RGBA, clip image.Rectangle, rect geom.Rect, stroke paint.Stroke) {
	corners := [4]geom.Pos2{
		rect.LeftTop(), rect.RightTop(), rect.RightBottom(), rect.LeftBottom(),
	}
	for i := 0; i < 4; i++ {
		r.fillLine(img, clip, corners[i], corners[(i+1)%4], stroke)
	}
}

// blockOutText paints one box per glyph: crude, but enough to see where
// text goes and how much space it takes.
func (r *Renderer) blockOutText(img *image.RGBA, clip image.Rectangle, s *paint.TextShape) {
	advance := s.Size * paint.TextGlyphAdvance
	x := s.Pos.X
	top := s.Pos.Y + s.Size*0.15
	bottom := s.Pos.Y + s.Size*0.85

	for _, ch := range s.Text {
		if ch != ' ' {
			r.fillQuad(img, clip, s.Color,
				geom.P(x+1, top), geom.P(x+advance-1, top),
				geom.P(x+advance-1, bottom), geom.P(x+1, bottom))
		}
		x += advance
	}

	if !s.Underline.IsEmpty() {
		y := s.Pos.Y + s.Size
		r.fillLine(img, clip, geom.P(s.Pos.X, y), geom.P(x, y), s.Underline)
	}
}

func deviceRect(r geom.Rect) image.Rectangle {
	return image.Rect(
		int(r.Min.X), int(r.Min.Y),
		int(r.Max.X+0.5), int(r.Max.Y+0.5),
	)
}

func premultiply(c paint.Color) color.RGBA {
	a := uint32(c.A)
	return color.RGBA{
		R: uint8(uint32(c.R) * a / 255),
		G: uint8(uint32(c.G) * a / 255),
		B: uint8(uint32(c.B) * a / 255),
		A: c.A,
	}
}
