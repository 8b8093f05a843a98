package colorconv

// Channel values come in two encodings: a percentage byte (0-100) and a unit
// fraction (0.0-1.0). Out-of-range input is clamped silently, never rejected.

const (
	maxPercent = 100
	maxChannel = 255
)

// ClampUnit clamps x to the range [0.0, 1.0]. NaN clamps to 0.
func ClampUnit(x float64) float64 {
	switch {
	case x > 1.0:
		return 1.0
	case x >= 0.0:
		return x
	default:
		return 0.0
	}
}

// FractionToPercent converts a unit fraction to a percentage byte. The result
// is truncated, not rounded: 0.129 becomes 12.
func FractionToPercent(x float64) uint8 {
	return uint8(ClampUnit(x) * maxPercent)
}

// ClampPercent clamps x to the range [0, 100].
func ClampPercent(x uint8) uint8 {
	if x > maxPercent {
		return maxPercent
	}
	return x
}

// PercentToFraction clamps x to [0, 100] and divides it by 100.
func PercentToFraction(x uint8) float64 {
	return float64(ClampPercent(x)) / maxPercent
}
