package paint

import (
	"iter"

	"github.com/quillui/quill/geom"
)

// ClippedShape is a shape paired with the clip rectangle outside of which
// it is not visible. The clip rectangle travels with the shape through
// every transform.
type ClippedShape struct {
	ClipRect geom.Rect
	Shape    Shape
}

// ShapeIdx is the position of a shape within the PaintList that produced
// it, at the time of insertion. It stays valid until that list is drained
// or cleared; using it against any other list, or after a drain, is a
// caller bug (see PaintList.Set).
type ShapeIdx int

// PaintList is an ordered, append-mostly collection of clipped shapes
// belonging to one layer. Indices are stable: Add and Extend never
// renumber existing entries.
//
// The zero value is an empty list, ready for use.
type PaintList struct {
	entries []ClippedShape
}

// IsEmpty reports whether the list has no entries.
func (l *PaintList) IsEmpty() bool {
	return len(l.entries) == 0
}

// Len returns the number of entries in the list.
func (l *PaintList) Len() int {
	return len(l.entries)
}

// NextIdx returns the index a subsequent Add would return.
// It is a pure query and does not mutate the list.
func (l *PaintList) NextIdx() ShapeIdx {
	return ShapeIdx(len(l.entries))
}

// Add appends one shape and returns its stable index,
// usable later with Set, ResetShape and MutateShape.
func (l *PaintList) Add(clipRect geom.Rect, shape Shape) ShapeIdx {
	idx := l.NextIdx()
	l.entries = append(l.entries, ClippedShape{ClipRect: clipRect, Shape: shape})
	return idx
}

// Extend appends a sequence of shapes sharing one clip rectangle.
func (l *PaintList) Extend(clipRect geom.Rect, shapes ...Shape) {
	for _, shape := range shapes {
		l.entries = append(l.entries, ClippedShape{ClipRect: clipRect, Shape: shape})
	}
}

// Set overwrites the entry at idx in place: same index, new content.
//
// Sometimes you want to paint a frame behind some contents, but don't
// know how large the frame needs to be until the contents have been
// painted. The solution is to reserve a slot with
//
//	idx := list.Add(clipRect, paint.Noop)
//
// and fill it once the size is known with
//
//	list.Set(idx, clipRect, frame)
//
// If idx is out of bounds — an index from a previous frame or from a
// different list — Set logs a warning and returns without mutating.
// It never panics.
func (l *PaintList) Set(idx ShapeIdx, clipRect geom.Rect, shape Shape) {
	if idx < 0 || int(idx) >= len(l.entries) {
		Logger().Warn("PaintList.Set: index out of bounds",
			"idx", int(idx), "len", len(l.entries))
		return
	}
	l.entries[idx] = ClippedShape{ClipRect: clipRect, Shape: shape}
}

// ResetShape replaces the shape at idx with a no-op shape, keeping its
// clip rectangle and index, so other indices do not shift. Used to cancel
// a slot reserved for the reserve-then-fill pattern (see Set).
//
// idx must be in bounds: it must come from the same list in the same
// frame. Violating that is a contract breach and panics.
func (l *PaintList) ResetShape(idx ShapeIdx) {
	l.entries[idx].Shape = Noop
}

// MutateShape applies f to the entry at idx, if it exists.
// Out-of-bounds indices are a no-op.
func (l *PaintList) MutateShape(idx ShapeIdx, f func(*ClippedShape)) {
	if idx < 0 || int(idx) >= len(l.entries) {
		return
	}
	f(&l.entries[idx])
}

// Transform applies t to every entry's shape and clip rectangle, in place.
func (l *PaintList) Transform(t geom.TSTransform) {
	for i := range l.entries {
		e := &l.entries[i]
		e.ClipRect = t.MulRect(e.ClipRect)
		e.Shape.Transform(t)
	}
}

// TransformRange applies t to the entries in the half-open index range
// [start, end), in place. The range must be valid for the current list.
func (l *PaintList) TransformRange(start, end ShapeIdx, t geom.TSTransform) {
	for i := range l.entries[start:end] {
		e := &l.entries[int(start)+i]
		e.ClipRect = t.MulRect(e.ClipRect)
		e.Shape.Transform(t)
	}
}

// AllEntries iterates over all entries in paint order.
// Use Len for the exact count. The entries must not be mutated.
func (l *PaintList) AllEntries() iter.Seq[ClippedShape] {
	return func(yield func(ClippedShape) bool) {
		for _, e := range l.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// takeAll moves all entries out of the list, leaving it empty but keeping
// its capacity for the next frame.
func (l *PaintList) takeAll(dst []ClippedShape) []ClippedShape {
	dst = append(dst, l.entries...)
	l.entries = l.entries[:0]
	return dst
}
