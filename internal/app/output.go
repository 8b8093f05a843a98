package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jkbrsn/colorconv/internal/app/color"
	"github.com/mattn/go-isatty"
)

const swatchWidth = 8

var (
	printValueTemp         = "%s: %s\n"
	printIndentedValueTemp = "  %s: %s\n"
)

// colorEnabled returns true if color output is enabled, based on both color mode and terminal
// detection.
func (c *Client) colorEnabled() bool {
	switch c.ColorMode {
	case "always":
		return true
	case "never":
		return false
	case "auto", "":
	default:
		return false
	}

	if _, disabled := os.LookupEnv("NO_COLOR"); disabled {
		return false
	}

	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// colorizeLabel returns the text with the label color applied if color output is enabled.
func (c *Client) colorizeLabel(text string) string {
	if !c.colorEnabled() {
		return text
	}
	return color.Label.Sprint(text)
}

// colorizeMuted returns the text with the muted color applied if color output is enabled.
func (c *Client) colorizeMuted(text string) string {
	if !c.colorEnabled() {
		return text
	}
	return color.Muted.Sprint(text)
}

// printJSONLine prints a JSON line.
func (*Client) printJSONLine(payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to marshal JSON output: %v\n", err)
		return
	}
	_, _ = os.Stdout.Write(append(data, '\n'))
}

// printResultText prints one result as a labelled block.
func (c *Client) printResultText(r Result) {
	heading := r.Hex.String()
	if c.colorEnabled() {
		heading += "  " + color.FromHex(r.Hex).Swatch(swatchWidth)
	}
	fmt.Println(heading)

	fmt.Printf(printIndentedValueTemp, c.colorizeLabel("Input"),
		r.Input+c.colorizeMuted(" ("+r.Source+")"))
	fmt.Printf(printIndentedValueTemp, c.colorizeLabel("RGB"), formatRGB(r.Hex))
	fmt.Printf(printIndentedValueTemp, c.colorizeLabel("CMYK"), formatCMYK(r.CMYK))

	if c.VerbosityLevel >= 1 {
		fmt.Printf(printIndentedValueTemp, c.colorizeLabel("Value"), formatValue(r.Hex))
		fr, fg, fb := r.Hex.Fractions()
		fmt.Printf(printIndentedValueTemp, c.colorizeLabel("RGB fractions"), formatFractions(fr, fg, fb))
		fc, fm, fy, fk := r.CMYK.Fractions()
		fmt.Printf(printIndentedValueTemp, c.colorizeLabel("CMYK fractions"),
			formatFractions(fc, fm, fy, fk))
	}
	if c.VerbosityLevel >= 2 {
		fmt.Printf(printIndentedValueTemp, c.colorizeLabel("Binary"), formatBinary(r.Hex))
		cmykHex := r.CMYK.Hex()
		if cmykHex != r.Hex {
			// Set for inputs whose CMYK round trip lands on a different RGB.
			fmt.Printf(printIndentedValueTemp, c.colorizeLabel("CMYK round trip"), cmykHex.String())
		}
	}
}

// PrintResults prints the results of the last Convert call.
func (c *Client) PrintResults() error {
	if c.Results == nil {
		return errors.New("no results to print")
	}

	results := c.Results
	if c.Count > 0 && c.Count < len(results) {
		results = results[:c.Count]
	}

	for i, r := range results {
		switch {
		case c.Format == formatJSON:
			c.printJSONLine(buildColorJSON(r, c.VerbosityLevel >= 1))
		case c.Quiet || c.Format == formatRaw:
			fmt.Println(r.Hex.String())
		default:
			if i > 0 {
				fmt.Println()
			}
			c.printResultText(r)
		}
	}
	return nil
}

// PrintError prints a conversion error in the configured format. Joined errors
// are printed one per line.
func (c *Client) PrintError(err error) {
	if err == nil {
		return
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			c.PrintError(e)
		}
		return
	}
	if c.Format == formatJSON {
		c.printJSONLine(errorJSON{Schema: JSONSchemaVersion, Type: "error", Error: err.Error()})
		return
	}
	fmt.Fprintf(os.Stderr, printValueTemp, "Error", err)
}
