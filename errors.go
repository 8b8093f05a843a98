package colorconv

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat is returned when a hex color string is not of the form #RRGGBB.
	ErrFormat = errors.New("expected format #RRGGBB")
	// ErrRange is returned when a hex color value exceeds 0xFFFFFF.
	ErrRange = errors.New("hex value should be <= 0xFFFFFF")
)

// FormatError reports a string that could not be parsed as a hex color.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid hex color %q: %v", e.Input, ErrFormat)
}

// Unwrap returns ErrFormat.
func (e *FormatError) Unwrap() error { return ErrFormat }

// RangeError reports an integer hex color value outside 0x000000-0xFFFFFF.
type RangeError struct {
	Value uint32
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid hex color value %#x: %v", e.Value, ErrRange)
}

// Unwrap returns ErrRange.
func (e *RangeError) Unwrap() error { return ErrRange }
