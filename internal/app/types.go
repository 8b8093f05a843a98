package app

import (
	"github.com/jkbrsn/colorconv"
)

const (
	formatAuto = "auto"
	formatRaw  = "raw"
	formatJSON = "json"

	// JSONSchemaVersion is the schema version for JSON output
	JSONSchemaVersion = "1.0"
)

// Result holds the outcome of converting one input.
type Result struct {
	Input  string              // Input as given on the command line
	Source string              // Which form the input was parsed as
	Hex    colorconv.HexColor  // RGB form
	CMYK   colorconv.CMYKColor // CMYK form; the input itself for CMYK sources
}

// newResult builds a Result from a parsed input, deriving whichever form the
// input did not supply.
func newResult(input string, p parsedInput) Result {
	r := Result{Input: input, Source: p.source, Hex: p.hex}
	if p.cmyk != nil {
		r.CMYK = *p.cmyk
	} else {
		r.CMYK = p.hex.CMYK()
	}
	return r
}

type colorJSON struct {
	Schema    string         `json:"schema_version"`
	Type      string         `json:"type"`
	Input     string         `json:"input"`
	Source    string         `json:"source"`
	Hex       string         `json:"hex"`
	Value     uint32         `json:"value"`
	RGB       [3]int         `json:"rgb"`
	CMYK      [4]int         `json:"cmyk"`
	Fractions *fractionsJSON `json:"fractions,omitempty"`
}

type fractionsJSON struct {
	RGB  [3]float64 `json:"rgb"`
	CMYK [4]float64 `json:"cmyk"`
}

type errorJSON struct {
	Schema string `json:"schema_version"`
	Type   string `json:"type"`
	Error  string `json:"error"`
}

func buildColorJSON(r Result, withFractions bool) colorJSON {
	red, green, blue := r.Hex.RGB()
	c, m, y, k := r.CMYK.Channels()
	out := colorJSON{
		Schema: JSONSchemaVersion,
		Type:   "color",
		Input:  r.Input,
		Source: r.Source,
		Hex:    r.Hex.String(),
		Value:  r.Hex.Value(),
		RGB:    [3]int{int(red), int(green), int(blue)},
		CMYK:   [4]int{int(c), int(m), int(y), int(k)},
	}
	if withFractions {
		fr, fg, fb := r.Hex.Fractions()
		fc, fm, fy, fk := r.CMYK.Fractions()
		out.Fractions = &fractionsJSON{
			RGB:  [3]float64{fr, fg, fb},
			CMYK: [4]float64{fc, fm, fy, fk},
		}
	}
	return out
}
