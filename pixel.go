package membuf

import "image/color"

// Pixel represents a framebuffer color with red, green, blue, and alpha
// components, one byte each, stored in RGBA order.
type Pixel struct {
	R, G, B, A uint8
}

// Color converts the pixel to the standard color.Color interface.
func (p Pixel) Color() color.Color {
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: p.A}
}

// FromColor converts a standard color.Color to a Pixel.
func FromColor(c color.Color) Pixel {
	r, g, b, a := c.RGBA()
	return Pixel{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(a >> 8),
	}
}

// RGB creates an opaque pixel from RGB components.
func RGB(r, g, b uint8) Pixel {
	return Pixel{R: r, G: g, B: b, A: 255}
}

// RGBA creates a pixel from RGBA components.
func RGBA(r, g, b, a uint8) Pixel {
	return Pixel{R: r, G: g, B: b, A: a}
}

// Common pixels.
var (
	Transparent = Pixel{0, 0, 0, 0}
	Black       = Pixel{0, 0, 0, 255}
	White       = Pixel{255, 255, 255, 255}
	Red         = Pixel{255, 0, 0, 255}
	Green       = Pixel{0, 255, 0, 255}
	Blue        = Pixel{0, 0, 255, 255}
)
