package quill

import (
	"github.com/quillui/quill/geom"
	"github.com/quillui/quill/paint"
)

// Frame paints a background behind some contents. The background's size
// is not known until the contents have been painted, so Frame reserves a
// slot in the paint list up front (Begin) and fills it afterwards (End):
// the background is painted *behind* the contents even though it is the
// last shape to be decided.
type Frame struct {
	Fill         paint.Color
	Stroke       paint.Stroke
	CornerRadius float32

	// InnerMargin is the space between the frame edge and its contents.
	InnerMargin geom.Vec2
}

// GroupFrame returns the default frame used to visually group widgets.
func GroupFrame(style *Style) Frame {
	return Frame{
		Fill:         paint.GrayLevel(40),
		Stroke:       paint.NewStroke(1, paint.GrayLevel(80)),
		CornerRadius: style.CornerRadius,
		InnerMargin:  geom.V(8, 8),
	}
}

// FramePrepared is a frame whose background slot has been reserved but
// not yet filled. Obtain one from Frame.Begin, paint the contents into
// Content, then call exactly one of End or Cancel.
type FramePrepared struct {
	frame Frame

	// Content is the Ui to paint the frame's contents into.
	Content *Ui

	where paint.ShapeIdx
}

// Begin reserves the background slot and returns the prepared frame.
func (f Frame) Begin(ui *Ui) *FramePrepared {
	where := ui.Painter().Add(paint.Noop)
	inner := ui.AvailableRect().Expand2(f.InnerMargin.Neg())
	return &FramePrepared{
		frame:   f,
		Content: ui.ChildUi(inner),
		where:   where,
	}
}

// End sizes the background to fit the painted contents, fills the
// reserved slot, and allocates the framed region in the parent Ui.
func (p *FramePrepared) End(ui *Ui) Response {
	content := p.Content.MinRect()
	if content.IsNegative() {
		// Empty frame: collapse to the margins around a zero-size body.
		content = geom.RectFromMinSize(p.Content.MaxRect().Min, geom.Vec2Zero)
	}
	outer := content.Expand2(p.frame.InnerMargin)

	ui.Painter().Set(p.where, &paint.RectShape{
		Rect:         outer,
		CornerRadius: p.frame.CornerRadius,
		Fill:         p.frame.Fill,
		Stroke:       p.frame.Stroke,
	})
	ui.AllocateRect(outer)

	return Response{ID: ui.ID().With("frame"), Rect: outer}
}

// Cancel abandons the frame: the reserved slot becomes a no-op and the
// parent Ui is left untouched. Contents already painted into Content
// stay painted.
func (p *FramePrepared) Cancel(ui *Ui) {
	ui.Painter().ResetShape(p.where)
}

// Show paints contents inside the frame: Begin, add, End.
func (f Frame) Show(ui *Ui, add func(content *Ui)) Response {
	prepared := f.Begin(ui)
	add(prepared.Content)
	return prepared.End(ui)
}
