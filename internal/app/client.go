// Package app uses the colorconv package to construct a client that converts
// color arguments and prints every representation of the result.
package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jkbrsn/colorconv"
	"github.com/jkbrsn/colorconv/internal/palette"
	"github.com/rs/zerolog"
)

// Client converts color inputs, applying different parsers based on the form of
// each input and different printers based on the settings passed to the struct.
type Client struct {
	// Input
	Inputs     []string             // Raw color arguments
	Palette    *palette.Palette     // Named colors; may be nil
	Appearance colorconv.Appearance // Selects the variant of adaptive palette colors

	// Output
	Format    string // Output formatting mode: "auto", "json" or "raw"
	ColorMode string // Color behavior: "auto", "always", or "never"
	Count     int    // Maximum number of results to print; 0 prints all

	// Verbosity
	Quiet          bool // print only the canonical hex form
	VerbosityLevel int  // 0 = summary, 1 = extended, >=2 = full detail

	// Logger receives debug output. The zero value discards everything.
	Logger zerolog.Logger

	// The results of a Convert call, in input order. Overwritten if Convert is
	// called again.
	Results []Result
}

// Validate checks the client settings.
func (c *Client) Validate() error {
	if len(c.Inputs) == 0 {
		return errors.New("no color inputs")
	}
	switch c.Format {
	case "", formatAuto, formatJSON, formatRaw:
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	switch c.ColorMode {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("unknown color mode %q", c.ColorMode)
	}
	if c.Count < 0 {
		return fmt.Errorf("count must not be negative, got %d", c.Count)
	}
	if c.Quiet && c.VerbosityLevel > 0 {
		return errors.New("quiet cannot be combined with verbose output")
	}
	return nil
}

// Convert parses every input and stores the conversions in Results. Inputs
// that fail to parse are skipped; their errors are joined and returned after
// all inputs have been processed.
func (c *Client) Convert() error {
	log := c.Logger.With().Str("pkg", "app").Logger()

	c.Results = make([]Result, 0, len(c.Inputs))
	var errs []error
	for _, input := range c.Inputs {
		result, err := c.convertOne(input, log)
		if err != nil {
			log.Debug().Err(err).Str("input", input).Msg("Failed to convert input")
			errs = append(errs, err)
			continue
		}
		log.Debug().
			Str("input", input).
			Str("source", result.Source).
			Str("hex", result.Hex.String()).
			Msg("Converted input")
		c.Results = append(c.Results, result)
	}
	return errors.Join(errs...)
}

// convertOne parses a single input into a Result.
func (c *Client) convertOne(input string, log zerolog.Logger) (Result, error) {
	trimmed := strings.TrimSpace(input)
	parsed, err := parseInput(trimmed)
	if err == nil {
		return newResult(input, parsed), nil
	}
	if !errors.Is(err, errUnrecognizedInput) {
		return Result{}, fmt.Errorf("input %q: %w", input, err)
	}

	if c.Palette.Len() == 0 {
		log.Warn().Str("input", input).Msg("No palette loaded, cannot resolve color name")
	}
	adaptive, ok := c.Palette.Lookup(trimmed)
	if !ok {
		return Result{}, fmt.Errorf("input %q: %w", input, errUnrecognizedInput)
	}
	hex := adaptive.Resolve(c.Appearance)
	return Result{
		Input:  input,
		Source: sourcePalette,
		Hex:    hex,
		CMYK:   hex.CMYK(),
	}, nil
}
