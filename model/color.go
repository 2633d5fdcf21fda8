package model

import "image/color"

// Color is a device-RGB color with an alpha component, all in the range
// [0, 1]. The zero value is fully transparent and is treated as "no color"
// by drawing code.
type Color struct {
	R, G, B, A float64
}

// RGB creates an opaque color.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA creates a color with explicit alpha.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// IsTransparent returns true if the color would paint nothing.
func (c Color) IsTransparent() bool {
	return c.A <= 0
}

// NRGBA converts the color to the standard library's 8-bit
// non-premultiplied representation for use with image packages.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: clamp8(c.R),
		G: clamp8(c.G),
		B: clamp8(c.B),
		A: clamp8(c.A),
	}
}

func clamp8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}
