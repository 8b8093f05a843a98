// Package radix formats unsigned integers in binary, octal or hexadecimal with
// an optional prefix and zero padding to the full width of the integer type.
package radix

import (
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Base is a supported number base.
type Base int

// Supported bases.
const (
	Binary      Base = 2
	Octal       Base = 8
	Hexadecimal Base = 16
)

// Prefix returns the conventional literal prefix for the base.
func (b Base) Prefix() string {
	switch b {
	case Binary:
		return "0b"
	case Octal:
		return "0o"
	default:
		return "0x"
	}
}

// digitsPerByte is the number of digits padded per byte of the value.
func (b Base) digitsPerByte() int {
	switch b {
	case Binary:
		return 8
	case Octal:
		return 3
	default:
		return 2
	}
}

type prefixMode int

const (
	prefixDefault prefixMode = iota
	prefixNone
	prefixCustom
)

// Prefix selects what is written in front of the digits.
type Prefix struct {
	mode   prefixMode
	custom string
}

var (
	// PrefixDefault writes the base's conventional prefix, e.g. "0x".
	PrefixDefault = Prefix{mode: prefixDefault}
	// PrefixNone writes no prefix.
	PrefixNone = Prefix{mode: prefixNone}
)

// CustomPrefix writes s in front of the digits.
func CustomPrefix(s string) Prefix {
	return Prefix{mode: prefixCustom, custom: s}
}

// For returns the prefix text for base b.
func (p Prefix) For(b Base) string {
	switch p.mode {
	case prefixNone:
		return ""
	case prefixCustom:
		return p.custom
	default:
		return b.Prefix()
	}
}

// Option configures Format.
type Option func(*options)

type options struct {
	uppercase    bool
	prefix       Prefix
	leadingZeros bool
}

// WithUppercase selects uppercase or lowercase digits. Default is uppercase.
func WithUppercase(upper bool) Option { return func(o *options) { o.uppercase = upper } }

// WithPrefix sets the prefix. Default is PrefixDefault.
func WithPrefix(p Prefix) Option { return func(o *options) { o.prefix = p } }

// WithLeadingZeros toggles zero padding to the width of the value's type.
// Default is on: a uint16 0xFF formats as 0x00FF.
func WithLeadingZeros(show bool) Option { return func(o *options) { o.leadingZeros = show } }

// Format renders v in the given base.
func Format[T constraints.Unsigned](v T, base Base, opts ...Option) string {
	cfg := options{
		uppercase:    true,
		prefix:       PrefixDefault,
		leadingZeros: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	digits := strconv.FormatUint(uint64(v), int(base))
	if cfg.uppercase {
		digits = strings.ToUpper(digits)
	}
	prefix := cfg.prefix.For(base)
	if !cfg.leadingZeros {
		return prefix + digits
	}

	width := int(unsafe.Sizeof(v)) * base.digitsPerByte()
	if pad := width - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}
	return prefix + digits
}
