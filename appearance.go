package colorconv

import "strings"

// Appearance is the light or dark interface style reported by a platform.
type Appearance int

// Known appearances. Light is the zero value.
const (
	Light Appearance = iota
	Dark
)

// ParseAppearance maps a platform-reported style name to an Appearance.
// Only "dark" (any case, surrounding space ignored) selects Dark; every other
// value, including the empty string, selects Light.
func ParseAppearance(name string) Appearance {
	if strings.EqualFold(strings.TrimSpace(name), "dark") {
		return Dark
	}
	return Light
}

func (a Appearance) String() string {
	if a == Dark {
		return "dark"
	}
	return "light"
}

// Adaptive pairs the colors to use under each appearance.
type Adaptive struct {
	Light HexColor
	Dark  HexColor
}

// Resolve returns the color for appearance a. Unknown appearances resolve to
// the light color.
func (c Adaptive) Resolve(a Appearance) HexColor {
	if a == Dark {
		return c.Dark
	}
	return c.Light
}
