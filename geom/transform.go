package geom

import "fmt"

// TSTransform is a transform that first scales uniformly around the
// origin, then translates: p' = Scaling*p + Translation.
//
// It is the coordinate mapping used to lift a layer's local space into
// the shared global space: cheaper than a full affine matrix, always
// invertible for non-zero scaling, and it maps axis-aligned rectangles
// to axis-aligned rectangles.
type TSTransform struct {
	// Scaling is the uniform scale factor, applied first.
	Scaling float32

	// Translation is the displacement applied after scaling.
	Translation Vec2
}

// IdentityTransform returns the transform that maps every point to itself.
func IdentityTransform() TSTransform {
	return TSTransform{Scaling: 1}
}

// TransformFromTranslation returns a pure translation.
func TransformFromTranslation(t Vec2) TSTransform {
	return TSTransform{Scaling: 1, Translation: t}
}

// TransformFromScaling returns a pure scaling around the origin.
func TransformFromScaling(s float32) TSTransform {
	return TSTransform{Scaling: s}
}

// IsIdentity reports whether the transform maps every point to itself.
func (t TSTransform) IsIdentity() bool {
	return t.Scaling == 1 && t.Translation == Vec2Zero
}

// IsValid reports whether the transform has finite, non-zero scaling and a
// finite translation.
func (t TSTransform) IsValid() bool {
	return t.Scaling != 0 && isFinite(t.Scaling) && t.Translation.IsFinite()
}

// MulPos applies the transform to a position.
func (t TSTransform) MulPos(p Pos2) Pos2 {
	return Pos2{
		X: t.Scaling*p.X + t.Translation.X,
		Y: t.Scaling*p.Y + t.Translation.Y,
	}
}

// MulVec applies the transform to a displacement.
// Translation does not affect displacements, only scaling does.
func (t TSTransform) MulVec(v Vec2) Vec2 {
	return v.Mul(t.Scaling)
}

// MulRect applies the transform to both corners of a rectangle.
// Scaling must be positive for the result to stay min/max ordered.
func (t TSTransform) MulRect(r Rect) Rect {
	return Rect{
		Min: t.MulPos(r.Min),
		Max: t.MulPos(r.Max),
	}
}

// Mul returns the composition of two transforms: applying the result is
// equivalent to applying u first, then t.
func (t TSTransform) Mul(u TSTransform) TSTransform {
	return TSTransform{
		Scaling:     t.Scaling * u.Scaling,
		Translation: u.Translation.Mul(t.Scaling).Add(t.Translation),
	}
}

// Inverse returns the transform that undoes t.
// The receiver must have non-zero scaling.
func (t TSTransform) Inverse() TSTransform {
	return TSTransform{
		Scaling:     1 / t.Scaling,
		Translation: t.Translation.Neg().Div(t.Scaling),
	}
}

// String implements fmt.Stringer.
func (t TSTransform) String() string {
	return fmt.Sprintf("TSTransform(scale %g, translate (%g, %g))",
		t.Scaling, t.Translation.X, t.Translation.Y)
}
