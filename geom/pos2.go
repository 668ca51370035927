package geom

import "github.com/chewxy/math32"

// Pos2 represents a position in 2D space, in points, with the origin at
// the top-left.
type Pos2 struct {
	X float32
	Y float32
}

// P is a convenience function to create a Pos2.
func P(x, y float32) Pos2 {
	return Pos2{X: x, Y: y}
}

// Pos2Zero is the origin.
var Pos2Zero = Pos2{}

// Add returns the position displaced by a vector.
func (p Pos2) Add(v Vec2) Pos2 {
	return Pos2{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from q to p.
func (p Pos2) Sub(q Pos2) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// SubVec returns the position displaced by the negation of a vector.
func (p Pos2) SubVec(v Vec2) Pos2 {
	return Pos2{X: p.X - v.X, Y: p.Y - v.Y}
}

// ToVec2 returns the displacement from the origin to this position.
func (p Pos2) ToVec2() Vec2 {
	return Vec2{X: p.X, Y: p.Y}
}

// Distance returns the Euclidean distance between two positions.
func (p Pos2) Distance(q Pos2) float32 {
	return p.Sub(q).Length()
}

// DistanceSq returns the squared distance between two positions.
func (p Pos2) DistanceSq(q Pos2) float32 {
	return p.Sub(q).LengthSq()
}

// Min returns the component-wise minimum of two positions.
func (p Pos2) Min(q Pos2) Pos2 {
	return Pos2{X: math32.Min(p.X, q.X), Y: math32.Min(p.Y, q.Y)}
}

// Max returns the component-wise maximum of two positions.
func (p Pos2) Max(q Pos2) Pos2 {
	return Pos2{X: math32.Max(p.X, q.X), Y: math32.Max(p.Y, q.Y)}
}

// Clamp returns the position with each component clamped to [lo, hi].
func (p Pos2) Clamp(lo, hi Pos2) Pos2 {
	return p.Max(lo).Min(hi)
}

// Lerp linearly interpolates between p and q by t.
func (p Pos2) Lerp(q Pos2, t float32) Pos2 {
	return Pos2{
		X: Lerp(p.X, q.X, t),
		Y: Lerp(p.Y, q.Y, t),
	}
}

// IsFinite reports whether both components are neither NaN nor infinite.
func (p Pos2) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

// HasNaN reports whether either component is NaN.
func (p Pos2) HasNaN() bool {
	return math32.IsNaN(p.X) || math32.IsNaN(p.Y)
}

// Round returns the position with both components rounded to the nearest
// integer. Useful for pixel-aligned painting.
func (p Pos2) Round() Pos2 {
	return Pos2{X: math32.Round(p.X), Y: math32.Round(p.Y)}
}
