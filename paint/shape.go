package paint

import (
	"github.com/quillui/quill/geom"
)

// Shape is a drawable primitive. Shapes are accumulated in PaintLists
// during a frame and flattened into one global sequence at drain time.
//
// Transform must rescale every coordinate-space quantity the shape
// carries (positions, radii, stroke widths) so that transformed and
// untransformed shapes composite consistently.
type Shape interface {
	// Transform maps the shape from its current coordinate space into
	// the one described by t, in place.
	Transform(t geom.TSTransform)

	// BoundingRect returns the smallest rectangle covering the shape,
	// including any stroke. A shape that paints nothing returns
	// geom.NothingRect().
	BoundingRect() geom.Rect
}

// NoopShape paints nothing. It is used to reserve a slot in a PaintList
// for a shape whose content is not known yet (see PaintList.Set), and to
// cancel such a reservation (see PaintList.ResetShape).
type NoopShape struct{}

// Noop is the canonical no-op shape.
var Noop Shape = NoopShape{}

// Transform implements Shape. It does nothing.
func (NoopShape) Transform(geom.TSTransform) {}

// BoundingRect implements Shape.
func (NoopShape) BoundingRect() geom.Rect { return geom.NothingRect() }

// RectShape is a rectangle with an optional fill and outline.
type RectShape struct {
	Rect geom.Rect

	// CornerRadius rounds the corners. Zero means sharp corners.
	CornerRadius float32

	Fill   Color
	Stroke Stroke
}

// FilledRect returns a rectangle shape with only a fill.
func FilledRect(rect geom.Rect, cornerRadius float32, fill Color) *RectShape {
	return &RectShape{Rect: rect, CornerRadius: cornerRadius, Fill: fill}
}

// StrokedRect returns a rectangle shape with only an outline.
func StrokedRect(rect geom.Rect, cornerRadius float32, stroke Stroke) *RectShape {
	return &RectShape{Rect: rect, CornerRadius: cornerRadius, Stroke: stroke}
}

// Transform implements Shape.
func (s *RectShape) Transform(t geom.TSTransform) {
	s.Rect = t.MulRect(s.Rect)
	s.CornerRadius *= t.Scaling
	s.Stroke.Width *= t.Scaling
}

// BoundingRect implements Shape.
func (s *RectShape) BoundingRect() geom.Rect {
	return s.Rect.Expand(s.Stroke.Width / 2)
}

// CircleShape is a circle with an optional fill and outline.
type CircleShape struct {
	Center geom.Pos2
	Radius float32
	Fill   Color
	Stroke Stroke
}

// FilledCircle returns a circle shape with only a fill.
func FilledCircle(center geom.Pos2, radius float32, fill Color) *CircleShape {
	return &CircleShape{Center: center, Radius: radius, Fill: fill}
}

// Transform implements Shape.
func (s *CircleShape) Transform(t geom.TSTransform) {
	s.Center = t.MulPos(s.Center)
	s.Radius *= t.Scaling
	s.Stroke.Width *= t.Scaling
}

// BoundingRect implements Shape.
func (s *CircleShape) BoundingRect() geom.Rect {
	return geom.RectFromCenterSize(s.Center,
		geom.Splat(2*s.Radius+s.Stroke.Width))
}

// LineShape is a straight line segment.
type LineShape struct {
	Points [2]geom.Pos2
	Stroke Stroke
}

// LineSegment returns a line segment shape.
func LineSegment(a, b geom.Pos2, stroke Stroke) *LineShape {
	return &LineShape{Points: [2]geom.Pos2{a, b}, Stroke: stroke}
}

// Transform implements Shape.
func (s *LineShape) Transform(t geom.TSTransform) {
	s.Points[0] = t.MulPos(s.Points[0])
	s.Points[1] = t.MulPos(s.Points[1])
	s.Stroke.Width *= t.Scaling
}

// BoundingRect implements Shape.
func (s *LineShape) BoundingRect() geom.Rect {
	return geom.RectFromPoints(s.Points[0], s.Points[1]).
		Expand(s.Stroke.Width / 2)
}

// PathShape is a polyline, optionally closed and filled.
type PathShape struct {
	Points []geom.Pos2

	// Closed connects the last point back to the first.
	// Only closed paths may be filled.
	Closed bool

	Fill   Color
	Stroke Stroke
}

// ClosedPath returns a closed, filled and stroked path shape.
func ClosedPath(points []geom.Pos2, fill Color, stroke Stroke) *PathShape {
	return &PathShape{Points: points, Closed: true, Fill: fill, Stroke: stroke}
}

// OpenPath returns an open, stroked path shape.
func OpenPath(points []geom.Pos2, stroke Stroke) *PathShape {
	return &PathShape{Points: points, Stroke: stroke}
}

// Transform implements Shape.
func (s *PathShape) Transform(t geom.TSTransform) {
	for i := range s.Points {
		s.Points[i] = t.MulPos(s.Points[i])
	}
	s.Stroke.Width *= t.Scaling
}

// BoundingRect implements Shape.
func (s *PathShape) BoundingRect() geom.Rect {
	return geom.RectFromPoints(s.Points...).Expand(s.Stroke.Width / 2)
}

// TextGlyphAdvance is the horizontal advance of one glyph as a fraction
// of the font size. Text is carried as an opaque payload with estimated
// monospace metrics; quill does not shape text.
const TextGlyphAdvance = 0.6

// TextShape is a single line of text anchored at its top-left corner.
//
// The shape stores the raw string and a font size; its metrics are a
// monospace estimate (see TextGlyphAdvance). Rendering backends that can
// shape text are expected to replace the estimate with real metrics.
type TextShape struct {
	// Pos is the top-left corner of the text's bounding box.
	Pos geom.Pos2

	Text string

	// Size is the font size in points.
	Size float32

	Color Color

	// Underline, if non-empty, paints a line under the text.
	// Used by hyperlinks.
	Underline Stroke
}

// TextLine returns a single-line text shape.
func TextLine(pos geom.Pos2, text string, size float32, color Color) *TextShape {
	return &TextShape{Pos: pos, Text: text, Size: size, Color: color}
}

// WithUnderline returns the shape with an underline stroke.
func (s *TextShape) WithUnderline(stroke Stroke) *TextShape {
	s.Underline = stroke
	return s
}

// Transform implements Shape.
func (s *TextShape) Transform(t geom.TSTransform) {
	s.Pos = t.MulPos(s.Pos)
	s.Size *= t.Scaling
	s.Underline.Width *= t.Scaling
}

// BoundingRect implements Shape.
func (s *TextShape) BoundingRect() geom.Rect {
	return geom.RectFromMinSize(s.Pos, s.EstimatedSize())
}

// EstimatedSize returns the estimated dimensions of the text.
func (s *TextShape) EstimatedSize() geom.Vec2 {
	n := float32(len([]rune(s.Text)))
	return geom.V(n*s.Size*TextGlyphAdvance, s.Size)
}
