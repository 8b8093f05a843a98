package colorconv

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jkbrsn/colorconv/internal/radix"
)

// MaxHexValue is the largest integer that encodes a hex color.
const MaxHexValue uint32 = 0xFFFFFF

const hexDigits = 6

var hexStringPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ParseHexString parses a "#RRGGBB" string into its RGB channels. Hex digits
// are case-insensitive; anything other than "#" followed by exactly six hex
// digits returns a *FormatError.
func ParseHexString(s string) (red, green, blue uint8, err error) {
	if !hexStringPattern.MatchString(s) {
		return 0, 0, 0, &FormatError{Input: s}
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, &FormatError{Input: s}
	}
	return ParseHexValue(uint32(v))
}

// ParseHexValue splits a 24-bit integer into its RGB channels. Values above
// MaxHexValue return a *RangeError.
func ParseHexValue(v uint32) (red, green, blue uint8, err error) {
	if v > MaxHexValue {
		return 0, 0, 0, &RangeError{Value: v}
	}
	return uint8((v >> 16) & 0xFF), uint8((v >> 8) & 0xFF), uint8(v & 0xFF), nil
}

// HexValue combines RGB channels into a 24-bit integer.
func HexValue(red, green, blue uint8) uint32 {
	return uint32(red)<<16 | uint32(green)<<8 | uint32(blue)
}

// FormatHex renders the low 24 bits of v as "#" followed by six uppercase hex
// digits.
func FormatHex(v uint32) string {
	digits := radix.Format(v&MaxHexValue, radix.Hexadecimal,
		radix.WithPrefix(radix.PrefixNone), radix.WithLeadingZeros(false))
	return "#" + strings.Repeat("0", hexDigits-len(digits)) + digits
}

// HexColor is an RGB color addressed by its hexadecimal representation.
// The zero value is black.
type HexColor struct {
	red   uint8
	green uint8
	blue  uint8
}

// NewHex returns the HexColor with the given channels.
func NewHex(red, green, blue uint8) HexColor {
	return HexColor{red: red, green: green, blue: blue}
}

// ParseHex parses a "#RRGGBB" string into a HexColor.
func ParseHex(s string) (HexColor, error) {
	r, g, b, err := ParseHexString(s)
	if err != nil {
		return HexColor{}, err
	}
	return NewHex(r, g, b), nil
}

// MustParseHex is like ParseHex but panics on error. It is meant for
// package-level color literals.
func MustParseHex(s string) HexColor {
	h, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return h
}

// HexFromValue returns the HexColor encoded by the 24-bit integer v.
func HexFromValue(v uint32) (HexColor, error) {
	r, g, b, err := ParseHexValue(v)
	if err != nil {
		return HexColor{}, err
	}
	return NewHex(r, g, b), nil
}

// Red returns the red channel.
func (h HexColor) Red() uint8 { return h.red }

// Green returns the green channel.
func (h HexColor) Green() uint8 { return h.green }

// Blue returns the blue channel.
func (h HexColor) Blue() uint8 { return h.blue }

// RGB returns the red, green and blue channels.
func (h HexColor) RGB() (red, green, blue uint8) {
	return h.red, h.green, h.blue
}

// Value returns the color as a 24-bit integer.
func (h HexColor) Value() uint32 {
	return HexValue(h.red, h.green, h.blue)
}

// CMYK converts the color with RGBToCMYK.
func (h HexColor) CMYK() CMYKColor {
	return CMYKFromRGB(h.red, h.green, h.blue)
}

// String returns the canonical "#RRGGBB" form.
func (h HexColor) String() string {
	return FormatHex(h.Value())
}

// GoString returns a multi-line breakdown of the channels, used by %#v.
func (h HexColor) GoString() string {
	return fmt.Sprintf("red: %s,\ngreen: %s,\nblue: %s,\ncombined: %s",
		radix.Format(h.red, radix.Hexadecimal),
		radix.Format(h.green, radix.Hexadecimal),
		radix.Format(h.blue, radix.Hexadecimal),
		h.String(),
	)
}
