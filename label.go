package quill

import (
	"github.com/quillui/quill/geom"
	"github.com/quillui/quill/paint"
)

// Label is a line of non-interactive text.
type Label struct {
	Text string

	// Size overrides Style.TextSize when non-zero.
	Size float32

	// Color overrides Style.TextColor when non-transparent.
	Color paint.Color

	// Underline, if non-empty, paints a line under the text.
	Underline paint.Stroke
}

// NewLabel returns a label with the context's default text style.
func NewLabel(text string) Label {
	return Label{Text: text}
}

// WithColor returns the label with a fixed color.
func (l Label) WithColor(c paint.Color) Label {
	l.Color = c
	return l
}

// WithSize returns the label with a fixed font size.
func (l Label) WithSize(s float32) Label {
	l.Size = s
	return l
}

// WithUnderline returns the label with an underline stroke.
func (l Label) WithUnderline(stroke paint.Stroke) Label {
	l.Underline = stroke
	return l
}

// Show implements Widget.
func (l Label) Show(ui *Ui) Response {
	style := ui.Style()

	size := l.Size
	if size == 0 {
		size = style.TextSize
	}
	color := l.Color
	if color.IsTransparent() {
		color = style.TextColor
	}

	shape := paint.TextLine(geom.Pos2Zero, l.Text, size, color)
	rect := ui.AllocateSpace(shape.EstimatedSize())
	shape.Pos = rect.Min
	if !l.Underline.IsEmpty() {
		shape.WithUnderline(l.Underline)
	}
	ui.Painter().Add(shape)

	return Response{ID: ui.ID().With(l.Text), Rect: rect}
}
