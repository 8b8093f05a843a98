package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jkbrsn/colorconv"
)

// Input sources, reported in Result.Source.
const (
	sourceHex     = "hex"
	sourceValue   = "value"
	sourceRGB     = "rgb"
	sourceCMYK    = "cmyk"
	sourcePalette = "palette"
)

// errUnrecognizedInput is returned when an input matches none of the supported
// forms and is not a palette name.
var errUnrecognizedInput = errors.New(
	"unrecognized color: expected #RRGGBB, 0xRRGGBB, rgb(r,g,b), cmyk(c,m,y,k) or a palette name")

// parsedInput is the outcome of parsing one input literal.
type parsedInput struct {
	source string
	hex    colorconv.HexColor
	cmyk   *colorconv.CMYKColor // set only for CMYK input
}

// parseInput parses a color literal. Palette names are not resolved here;
// inputs of no known form return errUnrecognizedInput.
func parseInput(s string) (parsedInput, error) {
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(s, "#"):
		h, err := colorconv.ParseHex(s)
		if err != nil {
			return parsedInput{}, err
		}
		return parsedInput{source: sourceHex, hex: h}, nil
	case strings.HasPrefix(lower, "0x"):
		v, err := strconv.ParseUint(s[2:], 16, 32)
		if errors.Is(err, strconv.ErrRange) {
			return parsedInput{}, fmt.Errorf("%w: %s", colorconv.ErrRange, s)
		}
		if err != nil {
			return parsedInput{}, fmt.Errorf("invalid hex value: %w", err)
		}
		h, err := colorconv.HexFromValue(uint32(v))
		if err != nil {
			return parsedInput{}, err
		}
		return parsedInput{source: sourceValue, hex: h}, nil
	}

	name, args, ok := splitCall(lower)
	if !ok {
		return parsedInput{}, errUnrecognizedInput
	}
	switch name {
	case "rgb":
		return parseRGB(args)
	case "cmyk":
		return parseCMYK(args)
	default:
		return parsedInput{}, errUnrecognizedInput
	}
}

// splitCall splits "name(a, b, c)" into its name and trimmed arguments.
func splitCall(s string) (string, []string, bool) {
	open := strings.IndexByte(s, '(')
	if open <= 0 || !strings.HasSuffix(s, ")") {
		return "", nil, false
	}
	name := strings.TrimSpace(s[:open])
	args := strings.Split(s[open+1:len(s)-1], ",")
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}
	return name, args, true
}

func parseRGB(args []string) (parsedInput, error) {
	const rgbChannels = 3
	if len(args) != rgbChannels {
		return parsedInput{}, fmt.Errorf("rgb needs %d channels, got %d", rgbChannels, len(args))
	}
	var ch [rgbChannels]uint8
	for i, arg := range args {
		v, err := strconv.ParseUint(arg, 10, 8)
		if err != nil {
			return parsedInput{}, fmt.Errorf("invalid rgb channel %q: must be 0-255", arg)
		}
		ch[i] = uint8(v)
	}
	return parsedInput{source: sourceRGB, hex: colorconv.NewHex(ch[0], ch[1], ch[2])}, nil
}

// parseCMYK accepts whole percentages, or unit fractions when any channel
// contains a decimal point. Out-of-range channels are clamped.
func parseCMYK(args []string) (parsedInput, error) {
	const cmykChannels = 4
	if len(args) != cmykChannels {
		return parsedInput{}, fmt.Errorf("cmyk needs %d channels, got %d", cmykChannels, len(args))
	}

	var cmyk colorconv.CMYKColor
	if strings.Contains(strings.Join(args, ""), ".") {
		var ch [cmykChannels]float64
		for i, arg := range args {
			v, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return parsedInput{}, fmt.Errorf("invalid cmyk channel %q: %w", arg, err)
			}
			ch[i] = v
		}
		cmyk = colorconv.NewCMYKFraction(ch[0], ch[1], ch[2], ch[3])
	} else {
		var ch [cmykChannels]uint8
		for i, arg := range args {
			v, err := strconv.ParseUint(arg, 10, 8)
			if err != nil {
				return parsedInput{}, fmt.Errorf("invalid cmyk channel %q: must be 0-100", arg)
			}
			ch[i] = uint8(v)
		}
		cmyk = colorconv.NewCMYK(ch[0], ch[1], ch[2], ch[3])
	}
	return parsedInput{source: sourceCMYK, hex: cmyk.Hex(), cmyk: &cmyk}, nil
}
