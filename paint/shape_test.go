package paint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quillui/quill/geom"
)

func TestNoopShape(t *testing.T) {
	assert.True(t, Noop.BoundingRect().IsNegative())

	// Transforming a no-op shape does nothing and never panics.
	Noop.Transform(geom.TransformFromScaling(3))
}

func TestRectShapeTransform(t *testing.T) {
	s := &RectShape{
		Rect:         geom.RectFromMinMax(geom.P(0, 0), geom.P(10, 10)),
		CornerRadius: 2,
		Stroke:       NewStroke(1, Black),
	}
	s.Transform(geom.TSTransform{Scaling: 2, Translation: geom.V(5, 5)})

	assert.Equal(t, geom.P(5, 5), s.Rect.Min)
	assert.Equal(t, geom.P(25, 25), s.Rect.Max)
	assert.Equal(t, float32(4), s.CornerRadius)
	assert.Equal(t, float32(2), s.Stroke.Width)
}

func TestRectShapeBoundingRectIncludesStroke(t *testing.T) {
	s := StrokedRect(geom.RectFromMinMax(geom.P(0, 0), geom.P(10, 10)), 0, NewStroke(4, Black))
	b := s.BoundingRect()
	assert.Equal(t, geom.P(-2, -2), b.Min)
	assert.Equal(t, geom.P(12, 12), b.Max)
}

func TestCircleShapeBoundingRect(t *testing.T) {
	s := FilledCircle(geom.P(10, 10), 5, Red)
	b := s.BoundingRect()
	assert.Equal(t, geom.P(5, 5), b.Min)
	assert.Equal(t, geom.P(15, 15), b.Max)
}

func TestPathShapeTransform(t *testing.T) {
	s := ClosedPath([]geom.Pos2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}, Red, StrokeNone)
	s.Transform(geom.TransformFromTranslation(geom.V(1, 2)))

	assert.Equal(t, geom.P(1, 2), s.Points[0])
	assert.Equal(t, geom.P(11, 2), s.Points[1])
	assert.Equal(t, geom.P(11, 12), s.Points[2])
}

func TestTextShapeEstimatedSize(t *testing.T) {
	s := TextLine(geom.P(0, 0), "hello", 10, Black)
	size := s.EstimatedSize()
	assert.InDelta(t, 5*10*TextGlyphAdvance, size.X, 1e-4)
	assert.Equal(t, float32(10), size.Y)

	s.Transform(geom.TransformFromScaling(2))
	assert.Equal(t, float32(20), s.Size)
}

func TestIDDerivation(t *testing.T) {
	base := NewID("panel")
	assert.Equal(t, NewID("panel"), base, "hashing is deterministic")
	assert.NotEqual(t, base, NewID("other"))

	child := base.With("button")
	other := NewID("other").With("button")
	assert.NotEqual(t, child, other, "same label under different parents")

	assert.NotEqual(t, base.WithIndex(0), base.WithIndex(1))
	assert.NotEqual(t, IDNil, base)
}
