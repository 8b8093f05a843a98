// Package color provides ANSI truecolor support for terminal output.
package color

import (
	"fmt"
	"strings"

	"github.com/jkbrsn/colorconv"
)

// RGB represents a 24-bit terminal color.
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	Label = RGB{255, 102, 0}   // Labels in text output (#FF6600)
	Muted = RGB{150, 150, 150} // Secondary details (#969696)
)

// FromHex returns the terminal color for h.
func FromHex(h colorconv.HexColor) RGB {
	r, g, b := h.RGB()
	return RGB{r, g, b}
}

// Sprint returns the text with the color applied to the foreground.
func (c RGB) Sprint(text string) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm%s\033[0m", c.R, c.G, c.B, text)
}

// Background returns the text with the color applied to the background.
func (c RGB) Background(text string) string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm%s\033[0m", c.R, c.G, c.B, text)
}

// Swatch returns a block of width blank cells painted in the color.
func (c RGB) Swatch(width int) string {
	if width <= 0 {
		return ""
	}
	return c.Background(strings.Repeat(" ", width))
}
