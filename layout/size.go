// Package layout provides the strip layout builder: a way to split the
// available space into fixed, proportional and remainder-sized cells and
// paint widgets into each cell. In contrast to a plain Ui, strip cells
// do not grow with their contents.
package layout

import "github.com/chewxy/math32"

// Size is the sizing policy of one strip cell: an exact length in
// points, a fraction of the available space, or an equal share of
// whatever remains after the other cells took theirs.
type Size struct {
	kind sizeKind

	// value is points for exact sizes, a 0..1 fraction for relative ones.
	value float32

	rangeMin float32
	rangeMax float32
}

type sizeKind uint8

const (
	kindExact sizeKind = iota
	kindRelative
	kindRemainder
)

// Exact returns a cell size of the given number of points.
func Exact(points float32) Size {
	return Size{kind: kindExact, value: points, rangeMin: points, rangeMax: points}
}

// Relative returns a cell size that is the given fraction of the
// available space.
func Relative(fraction float32) Size {
	return Size{kind: kindRelative, value: fraction, rangeMin: 0, rangeMax: math32.Inf(1)}
}

// Remainder returns a cell size that is an equal share of the space left
// after exact and relative cells took theirs.
func Remainder() Size {
	return Size{kind: kindRemainder, rangeMin: 0, rangeMax: math32.Inf(1)}
}

// AtLeast returns the size with a lower bound in points.
func (s Size) AtLeast(minimum float32) Size {
	s.rangeMin = minimum
	return s
}

// AtMost returns the size with an upper bound in points.
func (s Size) AtMost(maximum float32) Size {
	s.rangeMax = maximum
	return s
}

func (s Size) clamp(length float32) float32 {
	return math32.Max(s.rangeMin, math32.Min(s.rangeMax, length))
}
