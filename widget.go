package quill

import "github.com/quillui/quill/geom"

// Widget is anything that can paint itself into a Ui.
//
// quill does no event handling: showing a widget paints it and reports
// where it ended up, nothing more. Embedders that track input decide
// what a click on Response.Rect means.
type Widget interface {
	Show(ui *Ui) Response
}

// Response reports what a widget did: the id it identifies as and the
// rectangle it occupies in layer-local coordinates.
type Response struct {
	ID   ID
	Rect geom.Rect
}
