package quill

import (
	"github.com/quillui/quill/geom"
	"github.com/quillui/quill/paint"
)

// Painter is the drawing handle widgets paint through: a target layer
// plus a clip rectangle. Painters are cheap values; deriving one with a
// different clip or layer does not copy any shape data.
type Painter struct {
	layers   *paint.GraphicLayers
	layerID  paint.LayerID
	clipRect geom.Rect
}

// LayerID returns the layer this painter targets.
func (p *Painter) LayerID() paint.LayerID {
	return p.layerID
}

// ClipRect returns the painter's clip rectangle.
func (p *Painter) ClipRect() geom.Rect {
	return p.clipRect
}

// WithClipRect returns a painter whose clip is the intersection of the
// current clip and rect.
func (p *Painter) WithClipRect(rect geom.Rect) *Painter {
	return &Painter{
		layers:   p.layers,
		layerID:  p.layerID,
		clipRect: p.clipRect.Intersect(rect),
	}
}

// WithLayer returns a painter targeting a different layer with the same
// clip rectangle.
func (p *Painter) WithLayer(layerID paint.LayerID) *Painter {
	return &Painter{
		layers:   p.layers,
		layerID:  layerID,
		clipRect: p.clipRect,
	}
}

// list returns the paint list of the target layer, creating it on first
// access.
func (p *Painter) list() *paint.PaintList {
	return p.layers.Entry(p.layerID)
}

// Add appends a shape and returns its index, usable with Set, ResetShape
// and MutateShape within the same frame.
func (p *Painter) Add(shape paint.Shape) paint.ShapeIdx {
	return p.list().Add(p.clipRect, shape)
}

// Extend appends several shapes sharing the painter's clip rectangle.
func (p *Painter) Extend(shapes ...paint.Shape) {
	p.list().Extend(p.clipRect, shapes...)
}

// Set overwrites a previously added (usually reserved) shape.
// See paint.PaintList.Set for the reserve-then-fill pattern.
func (p *Painter) Set(idx paint.ShapeIdx, shape paint.Shape) {
	p.list().Set(idx, p.clipRect, shape)
}

// ResetShape cancels a reserved slot, replacing its shape with a no-op.
func (p *Painter) ResetShape(idx paint.ShapeIdx) {
	p.list().ResetShape(idx)
}

// MutateShape edits the shape at idx in place, if it exists.
func (p *Painter) MutateShape(idx paint.ShapeIdx, f func(*paint.ClippedShape)) {
	p.list().MutateShape(idx, f)
}

// RectFilled paints a filled rectangle.
func (p *Painter) RectFilled(rect geom.Rect, cornerRadius float32, fill paint.Color) {
	p.Add(paint.FilledRect(rect, cornerRadius, fill))
}

// RectStroked paints a rectangle outline.
func (p *Painter) RectStroked(rect geom.Rect, cornerRadius float32, stroke paint.Stroke) {
	p.Add(paint.StrokedRect(rect, cornerRadius, stroke))
}

// Circle paints a circle with fill and outline.
func (p *Painter) Circle(center geom.Pos2, radius float32, fill paint.Color, stroke paint.Stroke) {
	p.Add(&paint.CircleShape{Center: center, Radius: radius, Fill: fill, Stroke: stroke})
}

// LineSegment paints a straight line.
func (p *Painter) LineSegment(a, b geom.Pos2, stroke paint.Stroke) {
	p.Add(paint.LineSegment(a, b, stroke))
}

// HLine paints a horizontal line from x0 to x1 at height y.
func (p *Painter) HLine(x0, x1, y float32, stroke paint.Stroke) {
	p.LineSegment(geom.P(x0, y), geom.P(x1, y), stroke)
}

// Text paints a single line of text anchored at pos and returns the
// rectangle it covers (estimated metrics, see paint.TextShape).
func (p *Painter) Text(pos geom.Pos2, text string, size float32, color paint.Color) geom.Rect {
	shape := paint.TextLine(pos, text, size, color)
	p.Add(shape)
	return shape.BoundingRect()
}

// DebugRect outlines a rectangle on the debug layer with a caption.
// Handy when diagnosing layout issues.
func (p *Painter) DebugRect(rect geom.Rect, caption string) {
	dbg := p.WithLayer(paint.DebugLayer())
	dbg.RectStroked(rect, 0, paint.NewStroke(1, paint.Red))
	dbg.Text(rect.Min, caption, 9, paint.Red)
}
