package quill

import (
	"github.com/quillui/quill/paint"
)

// Button is a clickable-looking text button. quill paints it; whether it
// was actually clicked is the embedder's business (see Widget).
type Button struct {
	Text string

	// Fill overrides Style.ButtonFill when non-transparent.
	Fill paint.Color

	// Highlighted paints the button in its active/hover look. Embedders
	// typically drive this from Context.AnimateBool.
	Highlighted bool
}

// NewButton returns a button with the context's default look.
func NewButton(text string) Button {
	return Button{Text: text}
}

// WithFill returns the button with a fixed background color.
func (b Button) WithFill(c paint.Color) Button {
	b.Fill = c
	return b
}

// Highlight returns the button in its active/hover look.
func (b Button) Highlight() Button {
	b.Highlighted = true
	return b
}

// Show implements Widget.
func (b Button) Show(ui *Ui) Response {
	style := ui.Style()
	id := ui.ID().With(b.Text)

	textShape := paint.TextLine(ui.Cursor(), b.Text, style.TextSize, style.TextColor)
	inner := textShape.EstimatedSize()
	rect := ui.AllocateSpace(inner.Add(style.ButtonPadding.Mul(2)))

	fill := b.Fill
	if fill.IsTransparent() {
		fill = style.ButtonFill
	}
	if b.Highlighted {
		// A subtle lift driven by the hover animation keeps the
		// transition smooth when the embedder toggles Highlighted.
		t := ui.Ctx().AnimateBool(id, true)
		fill = paint.RGBA(
			lerpU8(fill.R, 255, 0.15*t),
			lerpU8(fill.G, 255, 0.15*t),
			lerpU8(fill.B, 255, 0.15*t),
			fill.A,
		)
	} else {
		ui.Ctx().AnimateBool(id, false)
	}

	p := ui.Painter()
	p.RectFilled(rect, style.CornerRadius, fill)
	p.RectStroked(rect, style.CornerRadius, style.ButtonStroke)
	textShape.Pos = rect.Min.Add(style.ButtonPadding)
	p.Add(textShape)

	return Response{ID: id, Rect: rect}
}

func lerpU8(a, b uint8, t float32) uint8 {
	return uint8(float32(a) + t*(float32(b)-float32(a)))
}
