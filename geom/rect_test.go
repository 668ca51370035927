package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectConstructors(t *testing.T) {
	r := RectFromMinSize(P(10, 20), V(30, 40))
	assert.Equal(t, P(10, 20), r.Min)
	assert.Equal(t, P(40, 60), r.Max)
	assert.Equal(t, float32(30), r.Width())
	assert.Equal(t, float32(40), r.Height())

	c := RectFromCenterSize(P(0, 0), V(10, 10))
	assert.Equal(t, P(-5, -5), c.Min)
	assert.Equal(t, P(5, 5), c.Max)
	assert.Equal(t, P(0, 0), c.Center())
}

func TestRectFromPoints(t *testing.T) {
	r := RectFromPoints(P(5, 1), P(-2, 8), P(3, 3))
	assert.Equal(t, P(-2, 1), r.Min)
	assert.Equal(t, P(5, 8), r.Max)

	empty := RectFromPoints()
	assert.True(t, empty.IsNegative())
}

func TestRectNothingIsUnionIdentity(t *testing.T) {
	r := RectFromMinMax(P(1, 2), P(3, 4))
	assert.Equal(t, r, NothingRect().Union(r))
	assert.Equal(t, r, r.Union(NothingRect()))
	assert.True(t, NothingRect().IsNegative())
	assert.False(t, NothingRect().IsPositive())
}

func TestRectContains(t *testing.T) {
	r := RectFromMinMax(P(0, 0), P(10, 10))

	assert.True(t, r.Contains(P(5, 5)))
	assert.True(t, r.Contains(P(0, 0)), "edges are inclusive")
	assert.True(t, r.Contains(P(10, 10)), "edges are inclusive")
	assert.False(t, r.Contains(P(-1, 5)))
	assert.False(t, r.Contains(P(5, 11)))
}

func TestRectIntersect(t *testing.T) {
	a := RectFromMinMax(P(0, 0), P(10, 10))
	b := RectFromMinMax(P(5, 5), P(15, 15))

	assert.True(t, a.Intersects(b))
	got := a.Intersect(b)
	assert.Equal(t, P(5, 5), got.Min)
	assert.Equal(t, P(10, 10), got.Max)

	far := RectFromMinMax(P(20, 20), P(30, 30))
	assert.False(t, a.Intersects(far))
	assert.True(t, a.Intersect(far).IsNegative())
}

func TestRectExpandTranslate(t *testing.T) {
	r := RectFromMinMax(P(0, 0), P(10, 10))

	e := r.Expand(2)
	assert.Equal(t, P(-2, -2), e.Min)
	assert.Equal(t, P(12, 12), e.Max)

	s := r.Shrink(3)
	assert.Equal(t, P(3, 3), s.Min)
	assert.Equal(t, P(7, 7), s.Max)

	m := r.Translate(V(5, -5))
	assert.Equal(t, P(5, -5), m.Min)
	assert.Equal(t, P(15, 5), m.Max)
}

func TestVec2Basics(t *testing.T) {
	v := V(3, 4)
	assert.Equal(t, float32(5), v.Length())
	assert.Equal(t, float32(25), v.LengthSq())
	assert.Equal(t, V(1, 0), V(2, 0).Normalized())
	assert.Equal(t, Vec2{}, Vec2{}.Normalized())
	assert.Equal(t, float32(11), V(1, 2).Dot(V(3, 4)))
	assert.Equal(t, V(4, 6), V(1, 2).Add(V(3, 4)))
	assert.Equal(t, V(2, 2), V(3, 4).Sub(V(1, 2)))
	assert.Equal(t, V(2, 4), V(1, 2).Mul(2))
}

func TestPos2Basics(t *testing.T) {
	p := P(1, 2)
	assert.Equal(t, P(4, 6), p.Add(V(3, 4)))
	assert.Equal(t, V(3, 4), P(4, 6).Sub(p))
	assert.Equal(t, float32(5), P(0, 0).Distance(P(3, 4)))
	assert.Equal(t, P(5, 5), P(0, 0).Lerp(P(10, 10), 0.5))
}
