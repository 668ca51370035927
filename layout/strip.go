package layout

import (
	"github.com/quillui/quill"
	"github.com/quillui/quill/geom"
)

// cellDirection is the axis a strip lays its cells out along.
type cellDirection uint8

const (
	horizontal cellDirection = iota
	vertical
)

// overflowCellLength is used for cells added beyond the pre-allocated
// sizes. Anything would look wrong, so pick something that is obviously
// wrong.
const overflowCellLength = 8.0

// StripBuilder builds a Strip: first allocate space for the cells that
// will follow with Size and Sizes, then build the strip with Horizontal
// or Vertical and add the cells. The number of cells must match the
// number of pre-allocated sizes.
//
// Example:
//
//	layout.NewStripBuilder(ui).
//		Size(layout.Remainder().AtLeast(100)).
//		Size(layout.Exact(40)).
//		Vertical(func(strip *layout.Strip) {
//			strip.Cell(func(ui *quill.Ui) { ui.Label("top") })
//			strip.Cell(func(ui *quill.Ui) { ui.Label("bottom") })
//		})
type StripBuilder struct {
	ui     *quill.Ui
	sizing Sizing
	clip   bool
}

// NewStripBuilder returns a strip builder for the given Ui.
func NewStripBuilder(ui *quill.Ui) *StripBuilder {
	return &StripBuilder{ui: ui}
}

// Clip sets whether the contents of each cell are clipped to the cell
// rectangle. Default: false.
func (b *StripBuilder) Clip(clip bool) *StripBuilder {
	b.clip = clip
	return b
}

// Size allocates space for one cell.
func (b *StripBuilder) Size(size Size) *StripBuilder {
	b.sizing.Add(size)
	return b
}

// Sizes allocates space for several cells at once.
func (b *StripBuilder) Sizes(size Size, count int) *StripBuilder {
	for i := 0; i < count; i++ {
		b.sizing.Add(size)
	}
	return b
}

// Horizontal builds the strip left to right across the available width.
func (b *StripBuilder) Horizontal(addCells func(*Strip)) quill.Response {
	avail := b.ui.AvailableRect()
	lengths := b.sizing.ToLengths(avail.Width(), b.ui.Style().ItemSpacing.X)
	return b.run(horizontal, avail, lengths, addCells)
}

// Vertical builds the strip top to bottom across the available height.
func (b *StripBuilder) Vertical(addCells func(*Strip)) quill.Response {
	avail := b.ui.AvailableRect()
	lengths := b.sizing.ToLengths(avail.Height(), b.ui.Style().ItemSpacing.Y)
	return b.run(vertical, avail, lengths, addCells)
}

func (b *StripBuilder) run(
	dir cellDirection,
	avail geom.Rect,
	lengths []float32,
	addCells func(*Strip),
) quill.Response {
	strip := &Strip{
		ui:        b.ui,
		direction: dir,
		clip:      b.clip,
		avail:     avail,
		lengths:   lengths,
		offset:    0,
	}
	addCells(strip)

	// Cells that were pre-allocated but never added are emitted empty.
	for strip.next < len(strip.lengths) {
		strip.Empty()
	}

	used := strip.usedRect()
	b.ui.AllocateRect(used)
	return quill.Response{ID: b.ui.ID().With("strip"), Rect: used}
}

// Strip is a sequence of cells along one direction, each with a size
// fixed up front. Cells do not grow with their contents.
type Strip struct {
	ui        *quill.Ui
	direction cellDirection
	clip      bool
	avail     geom.Rect
	lengths   []float32
	offset    float32
	next      int
}

// nextCellRect returns the rectangle of the next cell, advancing past it.
func (s *Strip) nextCellRect() geom.Rect {
	var length float32
	if s.next < len(s.lengths) {
		length = s.lengths[s.next]
	} else {
		quill.Logger().Warn("more strip cells added than were pre-allocated",
			"preallocated", len(s.lengths))
		length = overflowCellLength
	}
	s.next++

	var rect geom.Rect
	gap := s.ui.Style().ItemSpacing
	switch s.direction {
	case horizontal:
		rect = geom.RectFromMinSize(
			geom.P(s.avail.Min.X+s.offset, s.avail.Min.Y),
			geom.V(length, s.avail.Height()),
		)
		s.offset += length + gap.X
	case vertical:
		rect = geom.RectFromMinSize(
			geom.P(s.avail.Min.X, s.avail.Min.Y+s.offset),
			geom.V(s.avail.Width(), length),
		)
		s.offset += length + gap.Y
	}
	return rect
}

// Cell adds the next cell and paints its contents.
func (s *Strip) Cell(addContents func(*quill.Ui)) {
	rect := s.nextCellRect()
	var child *quill.Ui
	if s.clip {
		child = s.ui.ChildUiClipped(rect)
	} else {
		child = s.ui.ChildUi(rect)
	}
	addContents(child)
}

// Empty adds the next cell with no contents.
func (s *Strip) Empty() {
	s.nextCellRect()
}

// Strip adds a nested strip as a cell.
func (s *Strip) Strip(build func(*StripBuilder)) {
	clip := s.clip
	s.Cell(func(ui *quill.Ui) {
		build(NewStripBuilder(ui).Clip(clip))
	})
}

// usedRect returns the region covered by all emitted cells.
func (s *Strip) usedRect() geom.Rect {
	if s.offset == 0 {
		return geom.RectFromMinSize(s.avail.Min, geom.Vec2Zero)
	}
	gap := s.ui.Style().ItemSpacing
	switch s.direction {
	case horizontal:
		return geom.RectFromMinSize(s.avail.Min,
			geom.V(s.offset-gap.X, s.avail.Height()))
	default:
		return geom.RectFromMinSize(s.avail.Min,
			geom.V(s.avail.Width(), s.offset-gap.Y))
	}
}
