package quill

import (
	"github.com/quillui/quill/geom"
	"github.com/quillui/quill/paint"
)

// Style collects the visual defaults widgets paint with.
type Style struct {
	// TextSize is the default font size in points.
	TextSize float32

	// TextColor is the default text color.
	TextColor paint.Color

	// ItemSpacing is the gap between consecutive items in a Ui.
	ItemSpacing geom.Vec2

	// ButtonPadding is the space between a button's text and its frame.
	ButtonPadding geom.Vec2

	// ButtonFill is the button background color.
	ButtonFill paint.Color

	// ButtonStroke outlines the button frame.
	ButtonStroke paint.Stroke

	// HyperlinkColor is the color of links and their underline.
	HyperlinkColor paint.Color

	// SeparatorStroke paints separators.
	SeparatorStroke paint.Stroke

	// CornerRadius rounds button and frame corners.
	CornerRadius float32

	// AnimationTime is how long value animations take, in seconds.
	AnimationTime float32
}

// DefaultStyle returns the style used by a fresh Context.
func DefaultStyle() *Style {
	return &Style{
		TextSize:        14,
		TextColor:       paint.GrayLevel(220),
		ItemSpacing:     geom.V(8, 4),
		ButtonPadding:   geom.V(8, 4),
		ButtonFill:      paint.GrayLevel(60),
		ButtonStroke:    paint.NewStroke(1, paint.GrayLevel(100)),
		HyperlinkColor:  paint.RGB(90, 170, 255),
		SeparatorStroke: paint.NewStroke(1, paint.GrayLevel(90)),
		CornerRadius:    3,
		AnimationTime:   0.1,
	}
}
