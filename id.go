package quill

import "github.com/quillui/quill/paint"

// ID identifies a widget, layer or animation. See paint.ID.
type ID = paint.ID

// IDNil is the zero ID.
const IDNil = paint.IDNil

// NewID returns the ID for the given source string.
func NewID(source string) ID {
	return paint.NewID(source)
}
