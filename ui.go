package quill

import (
	"github.com/quillui/quill/geom"
	"github.com/quillui/quill/paint"
)

// Ui is a frame-scoped region to place widgets in. It owns a cursor that
// advances top-to-bottom as widgets allocate space, tracks the bounding
// rectangle of everything placed so far, and hands widgets the painter
// they draw with.
//
// A Ui is created fresh every frame; nothing about it is retained.
type Ui struct {
	ctx     *Context
	painter *Painter
	id      ID

	// maxRect is the region this Ui may use.
	maxRect geom.Rect

	// minRect is the union of all allocated rectangles so far.
	minRect geom.Rect

	cursor geom.Pos2
}

// NewUi returns a Ui covering maxRect, painting to the given layer.
func NewUi(ctx *Context, layerID paint.LayerID, maxRect geom.Rect) *Ui {
	return &Ui{
		ctx:     ctx,
		painter: ctx.Painter(layerID, maxRect),
		id:      NewID("ui").With(layerID.ShortDebugFormat()),
		maxRect: maxRect,
		minRect: geom.NothingRect(),
		cursor:  maxRect.Min,
	}
}

// Ctx returns the Context this Ui paints through.
func (u *Ui) Ctx() *Context {
	return u.ctx
}

// Painter returns the painter widgets draw with.
func (u *Ui) Painter() *Painter {
	return u.painter
}

// Style is shorthand for u.Ctx().Style().
func (u *Ui) Style() *Style {
	return u.ctx.Style()
}

// ID returns this Ui's id, the parent for widget ids created within it.
func (u *Ui) ID() ID {
	return u.id
}

// MaxRect returns the region this Ui may use.
func (u *Ui) MaxRect() geom.Rect {
	return u.maxRect
}

// MinRect returns the union of everything allocated so far.
// It is a negative rect while the Ui is still empty.
func (u *Ui) MinRect() geom.Rect {
	return u.minRect
}

// Cursor returns where the next widget will be placed.
func (u *Ui) Cursor() geom.Pos2 {
	return u.cursor
}

// AvailableRect returns the part of MaxRect not yet allocated.
func (u *Ui) AvailableRect() geom.Rect {
	return geom.RectFromMinMax(u.cursor, u.maxRect.Max)
}

// AvailableWidth returns the width still available for widgets.
func (u *Ui) AvailableWidth() float32 {
	return u.maxRect.Max.X - u.cursor.X
}

// AllocateSpace claims a rectangle of the desired size at the cursor and
// advances the cursor below it (plus item spacing).
func (u *Ui) AllocateSpace(desired geom.Vec2) geom.Rect {
	rect := geom.RectFromMinSize(u.cursor, desired)
	u.advancePast(rect)
	return rect
}

// AllocateRect claims an explicit rectangle, advancing the cursor below
// it. Used by layouts that compute cell rectangles themselves.
func (u *Ui) AllocateRect(rect geom.Rect) {
	u.advancePast(rect)
}

func (u *Ui) advancePast(rect geom.Rect) {
	u.minRect = u.minRect.Union(rect)
	u.cursor = geom.P(u.cursor.X, rect.Max.Y+u.Style().ItemSpacing.Y)
}

// ChildUi returns a Ui covering rect, sharing this Ui's layer and clip.
// Space the child allocates is not accounted to the parent; callers that
// care should AllocateRect the region themselves.
func (u *Ui) ChildUi(rect geom.Rect) *Ui {
	return &Ui{
		ctx:     u.ctx,
		painter: u.painter,
		id:      u.id.With("child"),
		maxRect: rect,
		minRect: geom.NothingRect(),
		cursor:  rect.Min,
	}
}

// ChildUiClipped is ChildUi with painting clipped to rect.
func (u *Ui) ChildUiClipped(rect geom.Rect) *Ui {
	child := u.ChildUi(rect)
	child.painter = u.painter.WithClipRect(rect)
	return child
}

// Add places a widget in this Ui.
func (u *Ui) Add(w Widget) Response {
	return w.Show(u)
}

// Label places a text label. Shorthand for Add(NewLabel(text)).
func (u *Ui) Label(text string) Response {
	return u.Add(NewLabel(text))
}

// Button places a button. Shorthand for Add(NewButton(text)).
func (u *Ui) Button(text string) Response {
	return u.Add(NewButton(text))
}

// Link places link-styled text. Shorthand for Add(NewLink(text)).
func (u *Ui) Link(text string) Response {
	return u.Add(NewLink(text))
}

// Hyperlink places a link whose text is the URL itself.
func (u *Ui) Hyperlink(url string) Response {
	return u.Add(NewHyperlink(url))
}

// HyperlinkTo places a link with its own text.
func (u *Ui) HyperlinkTo(text, url string) Response {
	return u.Add(HyperlinkFromLabelAndURL(text, url))
}

// Separator places a horizontal separator line.
func (u *Ui) Separator() Response {
	return u.Add(Separator{})
}
