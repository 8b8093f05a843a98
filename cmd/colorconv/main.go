// Package main parses and validates the flags and colors passed to the program,
// and then prints every representation of each color using the internal client.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/jkbrsn/colorconv/internal/app"
	"github.com/jkbrsn/colorconv/internal/palette"
	"github.com/rs/zerolog"
)

var (
	// Input
	paletteArguments paletteList
	appearanceArg    = flag.String("appearance", "light",
		"palette variant used for adaptive colors: light or dark")
	// Output
	countFlag    = newTrackedIntFlag(0)
	formatOption = flag.String("format", "auto", "output format: auto, json, or raw")
	colorArg     = flag.String("color", "auto", "color output: auto, always, or never")
	logFile      = flag.String("log-file", "", "write logs to a rotating file instead of stderr")
	showVersion  = flag.Bool("version", false, "print the program version")
	version      = "unknown"
	// Verbosity
	quiet          = flag.Bool("q", false, "print only the hex form of each color")
	verbosityLevel = newVerbosityCounter()
)

func init() {
	flag.Var(&paletteArguments, "palette", "TOML palette file or glob pattern with named colors; repeatable")
	flag.Var(&countFlag, "count", "maximum number of colors to print; 0 prints all")
	flag.Var(verbosityLevel, "v", "increase output detail; repeat for more (-v, -vv)")

	// Define custom usage message
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage:  colorconv [options] <color>...")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Colors may be given as #RRGGBB, 0xRRGGBB, rgb(r, g, b),")
		fmt.Fprintln(os.Stderr, "cmyk(c, m, y, k) with percentages or fractions, or a palette name.")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Mutually exclusive output options:")
		fmt.Fprintln(os.Stderr, "  -v  "+flag.Lookup("v").Usage)
		fmt.Fprintln(os.Stderr, "  -q  "+flag.Lookup("q").Usage)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Other options:")
		fmt.Fprintln(os.Stderr, "  -palette     "+flag.Lookup("palette").Usage)
		fmt.Fprintln(os.Stderr, "  -appearance  "+flag.Lookup("appearance").Usage)
		fmt.Fprintln(os.Stderr, "  -count       "+flag.Lookup("count").Usage)
		fmt.Fprintln(os.Stderr, "  -format      "+flag.Lookup("format").Usage)
		fmt.Fprintln(os.Stderr, "  -color       "+flag.Lookup("color").Usage)
		fmt.Fprintln(os.Stderr, "  -log-file    "+flag.Lookup("log-file").Usage)
		fmt.Fprintln(os.Stderr, "  -version     "+flag.Lookup("version").Usage)
	}
}

func main() {
	preprocessVerbosityArgs()

	cfg, err := parseConfig()
	if err != nil {
		if errors.Is(err, errVersionRequested) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error parsing input: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	logger, closer := setupLogger(cfg)
	os.Exit(run(cfg, logger, closer))
}

// run converts and prints the configured colors and returns the exit code.
func run(cfg *Config, logger zerolog.Logger, closer io.Closer) int {
	defer func() { _ = closer.Close() }()

	pal, err := loadPalettes(cfg.Palettes, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading palette: %v\n", err)
		return 1
	}

	client := app.Client{
		Inputs:         cfg.Inputs,
		Palette:        pal,
		Appearance:     cfg.Appearance,
		Format:         cfg.Format,
		ColorMode:      cfg.ColorMode,
		Count:          cfg.Count,
		Quiet:          cfg.Quiet,
		VerbosityLevel: cfg.Verbosity,
		Logger:         logger,
	}

	if err := client.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error in input settings: %v\n", err)
		return 1
	}

	convertErr := client.Convert()
	if len(client.Results) > 0 {
		if err := client.PrintResults(); err != nil {
			fmt.Fprintf(os.Stderr, "Error printing results: %v\n", err)
			return 1
		}
	}
	if convertErr != nil {
		client.PrintError(convertErr)
		return 1
	}
	return 0
}

// loadPalettes loads every palette file in order. Later files override colors
// of the same name in earlier ones. Paths may be doublestar glob patterns.
func loadPalettes(patterns []string, logger zerolog.Logger) (*palette.Palette, error) {
	paths, err := expandPalettePaths(patterns)
	if err != nil {
		return nil, err
	}

	merged := palette.New()
	for _, path := range paths {
		p, err := palette.Load(path)
		if err != nil {
			return nil, err
		}
		logger.Debug().Str("path", path).Int("colors", p.Len()).Msg("Loaded palette")
		merged.Merge(p)
	}
	return merged, nil
}

// expandPalettePaths resolves glob patterns to the files they match, sorted
// within each pattern. Plain paths are passed through so a missing file is
// reported by the loader.
func expandPalettePaths(patterns []string) ([]string, error) {
	var paths []string
	for _, pattern := range patterns {
		if !strings.ContainsAny(pattern, "*?[{") {
			paths = append(paths, pattern)
			continue
		}
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("palette pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("palette pattern %q matched no files", pattern)
		}
		slices.Sort(matches)
		paths = append(paths, matches...)
	}
	return paths, nil
}
