// Package palette loads named colors from TOML files.
//
// A palette file has one table per color under [colors]. Each entry sets
// exactly one of hex, cmyk, or a light/dark pair:
//
//	[colors.brand]
//	hex = "#FF6600"
//
//	[colors.ink]
//	cmyk = [0, 0, 0, 100]
//
//	[colors.surface]
//	light = "#FFFFFF"
//	dark = "#1E1E1E"
//
// Names are matched case-insensitively.
package palette

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/jkbrsn/colorconv"
)

// ErrInvalidEntry is wrapped by errors describing a malformed palette entry.
var ErrInvalidEntry = errors.New("invalid palette entry")

// entry is the on-disk form of a palette color.
type entry struct {
	Hex   string `toml:"hex"`
	CMYK  []int  `toml:"cmyk"`
	Light string `toml:"light"`
	Dark  string `toml:"dark"`
}

type file struct {
	Colors map[string]entry `toml:"colors"`
}

// Palette maps color names to light/dark color pairs. Colors defined by a
// single value use it for both appearances.
type Palette struct {
	colors map[string]colorconv.Adaptive
}

// New returns an empty palette.
func New() *Palette {
	return &Palette{colors: make(map[string]colorconv.Adaptive)}
}

// Load reads and parses the palette file at path.
func Load(path string) (*Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read palette: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a palette from TOML data. Unknown keys are rejected.
func Parse(data []byte) (*Palette, error) {
	var f file
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("parse palette: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("parse palette: unknown key %q", undecoded[0].String())
	}

	p := New()
	for name, e := range f.Colors {
		c, err := e.resolve()
		if err != nil {
			return nil, fmt.Errorf("color %q: %w", name, err)
		}
		p.Set(name, c)
	}
	return p, nil
}

func (e entry) resolve() (colorconv.Adaptive, error) {
	set := 0
	for _, ok := range []bool{e.Hex != "", e.CMYK != nil, e.Light != "" || e.Dark != ""} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return colorconv.Adaptive{}, fmt.Errorf("%w: set exactly one of hex, cmyk, or light and dark",
			ErrInvalidEntry)
	}

	switch {
	case e.Hex != "":
		h, err := colorconv.ParseHex(e.Hex)
		if err != nil {
			return colorconv.Adaptive{}, err
		}
		return colorconv.Adaptive{Light: h, Dark: h}, nil
	case e.CMYK != nil:
		if len(e.CMYK) != 4 {
			return colorconv.Adaptive{}, fmt.Errorf("%w: cmyk needs 4 channels, got %d",
				ErrInvalidEntry, len(e.CMYK))
		}
		h := colorconv.NewCMYK(percent(e.CMYK[0]), percent(e.CMYK[1]),
			percent(e.CMYK[2]), percent(e.CMYK[3])).Hex()
		return colorconv.Adaptive{Light: h, Dark: h}, nil
	}

	if e.Light == "" || e.Dark == "" {
		return colorconv.Adaptive{}, fmt.Errorf("%w: light and dark must both be set", ErrInvalidEntry)
	}
	light, err := colorconv.ParseHex(e.Light)
	if err != nil {
		return colorconv.Adaptive{}, fmt.Errorf("light: %w", err)
	}
	dark, err := colorconv.ParseHex(e.Dark)
	if err != nil {
		return colorconv.Adaptive{}, fmt.Errorf("dark: %w", err)
	}
	return colorconv.Adaptive{Light: light, Dark: dark}, nil
}

// percent clamps a palette channel to [0, 100].
func percent(v int) uint8 {
	return uint8(min(max(v, 0), 100))
}

// Set adds or replaces a named color.
func (p *Palette) Set(name string, c colorconv.Adaptive) {
	p.colors[strings.ToLower(name)] = c
}

// Lookup returns the color registered under name.
func (p *Palette) Lookup(name string) (colorconv.Adaptive, bool) {
	if p == nil {
		return colorconv.Adaptive{}, false
	}
	c, ok := p.colors[strings.ToLower(name)]
	return c, ok
}

// Merge copies every color of other into p. Colors in other win.
func (p *Palette) Merge(other *Palette) {
	if other == nil {
		return
	}
	for name, c := range other.colors {
		p.colors[name] = c
	}
}

// Names returns the palette's color names in sorted order.
func (p *Palette) Names() []string {
	if p == nil {
		return nil
	}
	names := make([]string, 0, len(p.colors))
	for name := range p.colors {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of colors in the palette.
func (p *Palette) Len() int {
	if p == nil {
		return 0
	}
	return len(p.colors)
}
