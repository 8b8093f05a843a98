package colorconv

import "fmt"

// CMYKColor is a color in the CMYK model with each channel stored as a
// percentage from 0 to 100. The RGB equivalent is computed once at
// construction. The zero value is white, matching NewCMYK(0, 0, 0, 0).
type CMYKColor struct {
	cyan    uint8
	magenta uint8
	yellow  uint8
	key     uint8

	// RGB equivalent stored as 255 minus each channel, so the zero value
	// derives white.
	inv [3]uint8
}

// NewCMYK returns the CMYKColor for percentage channels. Channels above 100
// are clamped to 100.
func NewCMYK(cyan, magenta, yellow, key uint8) CMYKColor {
	c := CMYKColor{
		cyan:    ClampPercent(cyan),
		magenta: ClampPercent(magenta),
		yellow:  ClampPercent(yellow),
		key:     ClampPercent(key),
	}
	r, g, b := CMYKToRGB(c.cyan, c.magenta, c.yellow, c.key)
	c.inv = [3]uint8{maxChannel - r, maxChannel - g, maxChannel - b}
	return c
}

// NewCMYKFraction returns the CMYKColor for fractional channels. Channels are
// clamped to [0.0, 1.0] and truncated to whole percentages.
func NewCMYKFraction(cyan, magenta, yellow, key float64) CMYKColor {
	return NewCMYK(
		FractionToPercent(cyan),
		FractionToPercent(magenta),
		FractionToPercent(yellow),
		FractionToPercent(key),
	)
}

// CMYKFromRGB converts 8-bit RGB channels with RGBToCMYK.
func CMYKFromRGB(red, green, blue uint8) CMYKColor {
	return NewCMYK(RGBToCMYK(red, green, blue))
}

// Cyan returns the cyan channel as a percentage.
func (c CMYKColor) Cyan() uint8 { return c.cyan }

// Magenta returns the magenta channel as a percentage.
func (c CMYKColor) Magenta() uint8 { return c.magenta }

// Yellow returns the yellow channel as a percentage.
func (c CMYKColor) Yellow() uint8 { return c.yellow }

// Key returns the key (black) channel as a percentage.
func (c CMYKColor) Key() uint8 { return c.key }

// Channels returns the four channels as percentages.
func (c CMYKColor) Channels() (cyan, magenta, yellow, key uint8) {
	return c.cyan, c.magenta, c.yellow, c.key
}

// Fractions returns the four channels as unit fractions.
func (c CMYKColor) Fractions() (cyan, magenta, yellow, key float64) {
	return PercentToFraction(c.cyan), PercentToFraction(c.magenta),
		PercentToFraction(c.yellow), PercentToFraction(c.key)
}

// RGB returns the 8-bit RGB equivalent computed at construction.
func (c CMYKColor) RGB() (red, green, blue uint8) {
	return maxChannel - c.inv[0], maxChannel - c.inv[1], maxChannel - c.inv[2]
}

// Hex returns the RGB equivalent as a HexColor.
func (c CMYKColor) Hex() HexColor {
	return NewHex(c.RGB())
}

// Equal reports whether c and o have the same channels.
func (c CMYKColor) Equal(o CMYKColor) bool {
	return c.cyan == o.cyan &&
		c.magenta == o.magenta &&
		c.yellow == o.yellow &&
		c.key == o.key
}

func (c CMYKColor) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", c.cyan, c.magenta, c.yellow, c.key)
}

// GoString returns a multi-line breakdown of the channels, used by %#v.
func (c CMYKColor) GoString() string {
	return fmt.Sprintf("   cyan: %d\nmagenta: %d\n yellow: %d\n    key: %d",
		c.cyan, c.magenta, c.yellow, c.key)
}
