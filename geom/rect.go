package geom

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Rect is an axis-aligned rectangle represented by its minimum (top-left)
// and maximum (bottom-right) corners.
//
// A Rect is allowed to be degenerate: if Min > Max on either axis the
// rectangle is "negative" and contains nothing. NothingRect is the
// canonical such rectangle and behaves as the identity for Union.
type Rect struct {
	Min Pos2
	Max Pos2
}

// RectFromMinMax creates a rectangle from two corners.
func RectFromMinMax(min, max Pos2) Rect {
	return Rect{Min: min, Max: max}
}

// RectFromMinSize creates a rectangle from the top-left corner and a size.
func RectFromMinSize(min Pos2, size Vec2) Rect {
	return Rect{Min: min, Max: min.Add(size)}
}

// RectFromCenterSize creates a rectangle from its center and a size.
func RectFromCenterSize(center Pos2, size Vec2) Rect {
	half := size.Mul(0.5)
	return Rect{Min: center.SubVec(half), Max: center.Add(half)}
}

// RectFromPoints returns the smallest rectangle containing all points.
// Returns NothingRect if the slice is empty.
func RectFromPoints(points ...Pos2) Rect {
	r := NothingRect()
	for _, p := range points {
		r = r.ExtendWith(p)
	}
	return r
}

// EverythingRect returns a rectangle containing every point.
func EverythingRect() Rect {
	inf := math32.Inf(1)
	return Rect{
		Min: Pos2{X: -inf, Y: -inf},
		Max: Pos2{X: inf, Y: inf},
	}
}

// NothingRect returns an inside-out rectangle containing no points.
// It is the identity for Union.
func NothingRect() Rect {
	inf := math32.Inf(1)
	return Rect{
		Min: Pos2{X: inf, Y: inf},
		Max: Pos2{X: -inf, Y: -inf},
	}
}

// Width returns the width of the rectangle. Negative for a negative rect.
func (r Rect) Width() float32 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle. Negative for a negative rect.
func (r Rect) Height() float32 {
	return r.Max.Y - r.Min.Y
}

// Size returns the dimensions of the rectangle.
func (r Rect) Size() Vec2 {
	return Vec2{X: r.Width(), Y: r.Height()}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Pos2 {
	return Pos2{
		X: (r.Min.X + r.Max.X) / 2,
		Y: (r.Min.Y + r.Max.Y) / 2,
	}
}

// Area returns the area of the rectangle, or 0 for a negative rect.
func (r Rect) Area() float32 {
	if r.IsNegative() {
		return 0
	}
	return r.Width() * r.Height()
}

// IsNegative reports whether Min > Max on either axis, i.e. the rectangle
// contains no points.
func (r Rect) IsNegative() bool {
	return r.Min.X > r.Max.X || r.Min.Y > r.Max.Y
}

// IsPositive reports whether the rectangle has positive width and height.
func (r Rect) IsPositive() bool {
	return r.Min.X < r.Max.X && r.Min.Y < r.Max.Y
}

// IsFinite reports whether all four coordinates are finite.
func (r Rect) IsFinite() bool {
	return r.Min.IsFinite() && r.Max.IsFinite()
}

// HasNaN reports whether any coordinate is NaN.
func (r Rect) HasNaN() bool {
	return r.Min.HasNaN() || r.Max.HasNaN()
}

// Contains reports whether the point is inside the rectangle
// (inclusive on all edges).
func (r Rect) Contains(p Pos2) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X &&
		r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

// ContainsRect reports whether other is entirely inside r.
func (r Rect) ContainsRect(other Rect) bool {
	return r.Contains(other.Min) && r.Contains(other.Max)
}

// Intersects reports whether the two rectangles share any point.
func (r Rect) Intersects(other Rect) bool {
	return r.Min.X <= other.Max.X && other.Min.X <= r.Max.X &&
		r.Min.Y <= other.Max.Y && other.Min.Y <= r.Max.Y
}

// Intersect returns the overlapping region of two rectangles.
// The result is negative if they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	return Rect{
		Min: r.Min.Max(other.Min),
		Max: r.Max.Min(other.Max),
	}
}

// Union returns the smallest rectangle containing both rectangles.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: r.Min.Min(other.Min),
		Max: r.Max.Max(other.Max),
	}
}

// ExtendWith returns the smallest rectangle containing r and the point p.
func (r Rect) ExtendWith(p Pos2) Rect {
	return Rect{
		Min: r.Min.Min(p),
		Max: r.Max.Max(p),
	}
}

// Expand returns the rectangle grown by amount on every side.
// A negative amount shrinks the rectangle.
func (r Rect) Expand(amount float32) Rect {
	return r.Expand2(Splat(amount))
}

// Expand2 returns the rectangle grown by amount.X on the left and right
// and amount.Y on the top and bottom.
func (r Rect) Expand2(amount Vec2) Rect {
	return Rect{
		Min: r.Min.SubVec(amount),
		Max: r.Max.Add(amount),
	}
}

// Shrink returns the rectangle shrunk by amount on every side.
func (r Rect) Shrink(amount float32) Rect {
	return r.Expand(-amount)
}

// Translate returns the rectangle moved by the given displacement.
func (r Rect) Translate(v Vec2) Rect {
	return Rect{Min: r.Min.Add(v), Max: r.Max.Add(v)}
}

// LeftTop returns the Min corner.
func (r Rect) LeftTop() Pos2 { return r.Min }

// RightTop returns the top-right corner.
func (r Rect) RightTop() Pos2 { return Pos2{X: r.Max.X, Y: r.Min.Y} }

// LeftBottom returns the bottom-left corner.
func (r Rect) LeftBottom() Pos2 { return Pos2{X: r.Min.X, Y: r.Max.Y} }

// RightBottom returns the Max corner.
func (r Rect) RightBottom() Pos2 { return r.Max }

// String implements fmt.Stringer.
func (r Rect) String() string {
	return fmt.Sprintf("[%g %g] - [%g %g]", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}
