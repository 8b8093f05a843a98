package colorconv

import "math"

// CMYKToRGB converts percentage CMYK channels to 8-bit RGB channels. Channels
// above 100 are clamped to 100. Each result is rounded up.
func CMYKToRGB(cyan, magenta, yellow, key uint8) (red, green, blue uint8) {
	adjustedKey := uint(maxPercent - ClampPercent(key))
	channel := func(v uint8) uint8 {
		scaled := maxChannel * uint(maxPercent-ClampPercent(v)) * adjustedKey
		return uint8(math.Ceil(float64(scaled) / 10000))
	}
	return channel(cyan), channel(magenta), channel(yellow)
}

// CMYKToRGBFraction converts fractional CMYK channels to fractional RGB
// channels. Inputs are truncated to percentages with FractionToPercent and run
// through CMYKToRGB; the byte results are mapped back with PercentToFraction,
// which clamps them to 100 before dividing. Round trips through this function
// are therefore not exact.
func CMYKToRGBFraction(cyan, magenta, yellow, key float64) (red, green, blue float64) {
	r, g, b := CMYKToRGB(
		FractionToPercent(cyan),
		FractionToPercent(magenta),
		FractionToPercent(yellow),
		FractionToPercent(key),
	)
	return PercentToFraction(r), PercentToFraction(g), PercentToFraction(b)
}

// RGBToCMYK converts 8-bit RGB channels to percentage CMYK channels.
//
// The conversion is an approximation and is not the exact inverse of
// CMYKToRGB. Pure black yields key 100 with cyan, magenta and yellow at 0.
func RGBToCMYK(red, green, blue uint8) (cyan, magenta, yellow, key uint8) {
	prime := func(v uint8) uint {
		return uint(math.Floor(float64(uint(v)*maxPercent) / maxChannel))
	}
	rp, gp, bp := prime(red), prime(green), prime(blue)
	k := maxPercent - max(rp, gp, bp)

	// k == 100 only for pure black; keep the division defined.
	denom := maxPercent - k
	if denom == 0 {
		denom = 1
	}

	channel := func(p uint) uint8 {
		v := float64(maxPercent-p-k) / float64(denom)
		return uint8(math.Ceil(v * maxPercent))
	}
	return channel(rp), channel(gp), channel(bp), uint8(k)
}

// RGBToCMYKFraction converts fractional RGB channels to fractional CMYK
// channels using the same percentage encoding as CMYKToRGBFraction: inputs go
// through FractionToPercent, outputs through PercentToFraction.
func RGBToCMYKFraction(red, green, blue float64) (cyan, magenta, yellow, key float64) {
	c, m, y, k := RGBToCMYK(
		FractionToPercent(red),
		FractionToPercent(green),
		FractionToPercent(blue),
	)
	return PercentToFraction(c), PercentToFraction(m), PercentToFraction(y), PercentToFraction(k)
}
