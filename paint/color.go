package paint

import "image/color"

// Color is an 8-bit sRGBA color, the color type carried by shapes.
type Color struct {
	R, G, B, A uint8
}

// Common colors.
var (
	Transparent = Color{}
	Black       = Color{A: 255}
	White       = Color{R: 255, G: 255, B: 255, A: 255}
	Red         = Color{R: 255, A: 255}
	Green       = Color{G: 255, A: 255}
	Blue        = Color{B: 255, A: 255}
	Yellow      = Color{R: 255, G: 255, A: 255}
	Gray        = Color{R: 128, G: 128, B: 128, A: 255}
	DarkGray    = Color{R: 64, G: 64, B: 64, A: 255}
	LightGray   = Color{R: 192, G: 192, B: 192, A: 255}
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA returns a color with the given alpha.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// GrayLevel returns an opaque gray.
func GrayLevel(v uint8) Color {
	return Color{R: v, G: v, B: v, A: 255}
}

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// IsTransparent reports whether the color is fully transparent.
func (c Color) IsTransparent() bool {
	return c.A == 0
}

// NRGBA converts to the standard library color type.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Stroke describes how to paint the outline of a shape.
// A zero Stroke paints nothing.
type Stroke struct {
	Width float32
	Color Color
}

// NewStroke returns a stroke with the given width and color.
func NewStroke(width float32, color Color) Stroke {
	return Stroke{Width: width, Color: color}
}

// StrokeNone is the stroke that paints nothing.
var StrokeNone = Stroke{}

// IsEmpty reports whether the stroke would paint nothing.
func (s Stroke) IsEmpty() bool {
	return s.Width <= 0 || s.Color.IsTransparent()
}
