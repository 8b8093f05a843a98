package colorconv

import (
	"image/color"
	"math"
)

// HexColor and CMYKColor satisfy image/color.Color so they can be handed to
// any renderer that accepts the standard library color interface.
var (
	_ color.Color = HexColor{}
	_ color.Color = CMYKColor{}
)

// RGBA implements color.Color. The color is fully opaque.
func (h HexColor) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: h.red, G: h.green, B: h.blue, A: 0xFF}.RGBA()
}

// NRGBA returns the color with the given opacity, clamped to [0.0, 1.0].
func (h HexColor) NRGBA(opacity float64) color.NRGBA {
	return color.NRGBA{
		R: h.red,
		G: h.green,
		B: h.blue,
		A: uint8(math.Round(ClampUnit(opacity) * maxChannel)),
	}
}

// Fractions returns the channels divided by 255, the form expected by
// constructors that take unit RGB components.
func (h HexColor) Fractions() (red, green, blue float64) {
	return float64(h.red) / maxChannel, float64(h.green) / maxChannel, float64(h.blue) / maxChannel
}

// HexFromColor converts any color.Color to a HexColor. Alpha is discarded
// after un-premultiplying the channels.
func HexFromColor(c color.Color) HexColor {
	n, ok := c.(color.NRGBA)
	if !ok {
		n = color.NRGBAModel.Convert(c).(color.NRGBA)
	}
	return NewHex(n.R, n.G, n.B)
}

// RGBA implements color.Color using the RGB equivalent computed at
// construction.
func (c CMYKColor) RGBA() (r, g, b, a uint32) {
	return c.Hex().RGBA()
}
