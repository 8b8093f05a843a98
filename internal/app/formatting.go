package app

import (
	"fmt"
	"strconv"

	"github.com/jkbrsn/colorconv"
	"github.com/jkbrsn/colorconv/internal/radix"
)

func formatRGB(h colorconv.HexColor) string {
	r, g, b := h.RGB()
	return fmt.Sprintf("%d, %d, %d", r, g, b)
}

func formatCMYK(c colorconv.CMYKColor) string {
	cy, m, y, k := c.Channels()
	return fmt.Sprintf("%d%%, %d%%, %d%%, %d%%", cy, m, y, k)
}

func formatFractions(values ...float64) string {
	out := ""
	for i, v := range values {
		if i > 0 {
			out += ", "
		}
		out += strconv.FormatFloat(v, 'f', 3, 64)
	}
	return out
}

func formatValue(h colorconv.HexColor) string {
	return radix.Format(h.Value(), radix.Hexadecimal)
}

func formatBinary(h colorconv.HexColor) string {
	return radix.Format(h.Value(), radix.Binary, radix.WithLeadingZeros(false))
}
