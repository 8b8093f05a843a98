package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/jkbrsn/colorconv"
)

// Config holds all configuration parsed from command-line flags.
type Config struct {
	Inputs     []string
	Palettes   []string
	Appearance colorconv.Appearance
	Count      int
	Format     string
	ColorMode  string
	Quiet      bool
	Verbosity  int
	LogFile    string
}

// parseConfig parses command-line flags and returns a validated Config.
func parseConfig() (*Config, error) {
	flag.Parse()

	if *showVersion {
		fmt.Printf("Version: %s\n", version)
		return nil, errVersionRequested
	}

	if *quiet && verbosityLevel.Value() > 0 {
		return nil, errors.New("-q cannot be combined with -v")
	}

	args := flag.Args()
	if len(args) == 0 {
		return nil, errors.New("at least one color argument is required")
	}

	switch strings.ToLower(*colorArg) {
	case "auto", "always", "never":
		// valid
	default:
		return nil, errors.New("-color must be auto, always, or never")
	}

	switch strings.ToLower(*formatOption) {
	case "auto", "json", "raw":
		// valid
	default:
		return nil, errors.New("-format must be auto, json, or raw")
	}

	switch strings.ToLower(strings.TrimSpace(*appearanceArg)) {
	case "light", "dark":
		// valid
	default:
		return nil, errors.New("-appearance must be light or dark")
	}

	if countFlag.WasSet() && countFlag.Value() < 0 {
		return nil, fmt.Errorf("-count must not be negative, got %d", countFlag.Value())
	}

	cfg := &Config{
		Inputs:     args,
		Palettes:   paletteArguments.Values(),
		Appearance: colorconv.ParseAppearance(*appearanceArg),
		Count:      countFlag.Value(),
		Format:     strings.ToLower(*formatOption),
		ColorMode:  strings.ToLower(*colorArg),
		Quiet:      *quiet,
		Verbosity:  verbosityLevel.Value(),
		LogFile:    *logFile,
	}

	return cfg, nil
}

// errVersionRequested is returned when -version flag is used.
var errVersionRequested = errors.New("version requested")

// onlyRune returns true if the string consists solely of the provided rune.
func onlyRune(s string, r rune) bool {
	if s == "" {
		return false
	}
	for _, ch := range s {
		if ch != r {
			return false
		}
	}
	return true
}

// preprocessVerbosityArgs rewrites os.Args so that shorthand -v/-vv translates to
// canonical -v=N forms before flag parsing. This lets the default flag package
// treat -v as a repeatable count.
func preprocessVerbosityArgs() {
	if len(os.Args) <= 1 {
		return
	}

	filtered := make([]string, 0, len(os.Args)-1)
	for _, arg := range os.Args[1:] {
		switch {
		case arg == "-v" || arg == "--verbose":
			filtered = append(filtered, "-v=1")
		case strings.HasPrefix(arg, "-v="):
			filtered = append(filtered, arg)
		case strings.HasPrefix(arg, "-vv") && onlyRune(arg[1:], 'v'):
			filtered = append(filtered, fmt.Sprintf("-v=%d", len(arg)-1))
		default:
			filtered = append(filtered, arg)
		}
	}

	os.Args = append([]string{os.Args[0]}, filtered...)
}
