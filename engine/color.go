package engine

import "image/color"

// Hex converts a 0xRRGGBB value into an opaque color.
func Hex(hex uint32) color.RGBA {
	return color.RGBA{
		R: uint8(hex >> 16 & 0xFF),
		G: uint8(hex >> 8 & 0xFF),
		B: uint8(hex & 0xFF),
		A: 0xFF,
	}
}

// IsKeyColor reports whether c is the sprite key color (pure black).
// Alpha is ignored so decoded images with and without an alpha channel behave the same.
func IsKeyColor(c color.RGBA) bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}
