package quill

import "github.com/quillui/quill/geom"

// Separator is a horizontal line spanning the available width.
type Separator struct {
	// Spacing is the vertical space the separator claims.
	// Zero means 6 points.
	Spacing float32
}

// Show implements Widget.
func (s Separator) Show(ui *Ui) Response {
	spacing := s.Spacing
	if spacing == 0 {
		spacing = 6
	}

	rect := ui.AllocateSpace(geom.V(ui.AvailableWidth(), spacing))
	y := rect.Center().Y
	ui.Painter().HLine(rect.Min.X, rect.Max.X, y, ui.Style().SeparatorStroke)

	return Response{ID: ui.ID().With("separator"), Rect: rect}
}
