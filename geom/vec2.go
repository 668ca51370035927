package geom

import "github.com/chewxy/math32"

// Vec2 represents a 2D displacement vector, often used for a size.
// Unlike Pos2 which represents a position, Vec2 represents a direction
// and magnitude.
type Vec2 struct {
	// X is the rightwards component. Width when used as a size.
	X float32

	// Y is the downwards component. Height when used as a size.
	Y float32
}

// V is a convenience function to create a Vec2.
func V(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Splat returns a vector with both components set to v.
func Splat(v float32) Vec2 {
	return Vec2{X: v, Y: v}
}

// Vec2Zero is the zero vector.
var Vec2Zero = Vec2{}

// Vec2Infinity has both components set to +infinity.
var Vec2Infinity = Vec2{X: math32.Inf(1), Y: math32.Inf(1)}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Div returns the vector divided by a scalar.
func (v Vec2) Div(s float32) Vec2 {
	return Vec2{X: v.X / s, Y: v.Y / s}
}

// Neg returns the negation of the vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float32 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (the z-component of the 3D cross
// product with z=0). Useful for determining winding.
func (v Vec2) Cross(w Vec2) float32 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the length (magnitude) of the vector.
func (v Vec2) Length() float32 {
	return math32.Hypot(v.X, v.Y)
}

// LengthSq returns the squared length of the vector.
// This is faster than Length when you only need to compare magnitudes.
func (v Vec2) LengthSq() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Normalized returns a unit vector in the same direction.
// Returns the zero vector if the original vector has zero length.
func (v Vec2) Normalized() Vec2 {
	length := v.Length()
	if length == 0 {
		return Vec2{}
	}
	return v.Div(length)
}

// Rot90 returns the vector rotated 90 degrees clockwise
// (in a coordinate system where Y points down).
func (v Vec2) Rot90() Vec2 {
	return Vec2{X: v.Y, Y: -v.X}
}

// Abs returns the component-wise absolute value.
func (v Vec2) Abs() Vec2 {
	return Vec2{X: math32.Abs(v.X), Y: math32.Abs(v.Y)}
}

// Min returns the component-wise minimum of two vectors.
func (v Vec2) Min(w Vec2) Vec2 {
	return Vec2{X: math32.Min(v.X, w.X), Y: math32.Min(v.Y, w.Y)}
}

// Max returns the component-wise maximum of two vectors.
func (v Vec2) Max(w Vec2) Vec2 {
	return Vec2{X: math32.Max(v.X, w.X), Y: math32.Max(v.Y, w.Y)}
}

// Clamp returns the vector with each component clamped to [lo, hi].
func (v Vec2) Clamp(lo, hi Vec2) Vec2 {
	return v.Max(lo).Min(hi)
}

// MinElem returns the smaller of the two components.
func (v Vec2) MinElem() float32 {
	return math32.Min(v.X, v.Y)
}

// MaxElem returns the larger of the two components.
func (v Vec2) MaxElem() float32 {
	return math32.Max(v.X, v.Y)
}

// IsFinite reports whether both components are neither NaN nor infinite.
func (v Vec2) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y)
}

// HasNaN reports whether either component is NaN.
func (v Vec2) HasNaN() bool {
	return math32.IsNaN(v.X) || math32.IsNaN(v.Y)
}

// ToPos2 interprets the vector as a position relative to the origin.
func (v Vec2) ToPos2() Pos2 {
	return Pos2{X: v.X, Y: v.Y}
}

func isFinite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}
