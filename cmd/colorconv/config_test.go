package main

import (
	"flag"
	"os"
	"testing"

	"github.com/jkbrsn/colorconv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnlyRune(t *testing.T) {
	t.Parallel()

	assert.True(t, onlyRune("vvv", 'v'))
	assert.False(t, onlyRune("vxv", 'v'))
	assert.False(t, onlyRune("", 'v'))
}

func TestPreprocessVerbosityArgs(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"cmd", "-v", "-vv", "-v=3", "--verbose", "-version", "#FFFFFF"}
	preprocessVerbosityArgs()

	assert.Equal(t,
		[]string{"cmd", "-v=1", "-v=2", "-v=3", "-v=1", "-version", "#FFFFFF"},
		os.Args)
}

// revive:disable:function-length test setup requires saving/restoring many flags
func TestParseConfig(t *testing.T) {
	// These tests need to manipulate global flag state, so we can't run them in parallel
	origArgs := os.Args
	origCommandLine := flag.CommandLine
	origAppearance := appearanceArg
	origFormat := formatOption
	origColor := colorArg
	origLogFile := logFile
	origShowVersion := showVersion
	origQuiet := quiet
	origVerbosity := verbosityLevel
	origCount := countFlag
	origPalettes := paletteArguments

	defer func() {
		os.Args = origArgs
		flag.CommandLine = origCommandLine
		appearanceArg = origAppearance
		formatOption = origFormat
		colorArg = origColor
		logFile = origLogFile
		showVersion = origShowVersion
		quiet = origQuiet
		verbosityLevel = origVerbosity
		countFlag = origCount
		paletteArguments = origPalettes
	}()

	resetFlags := func() {
		flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

		appearanceArg = flag.String("appearance", "light", "")
		formatOption = flag.String("format", "auto", "")
		colorArg = flag.String("color", "auto", "")
		logFile = flag.String("log-file", "", "")
		showVersion = flag.Bool("version", false, "")
		quiet = flag.Bool("q", false, "")

		verbosityLevel = newVerbosityCounter()
		countFlag = newTrackedIntFlag(0)
		paletteArguments = paletteList{}

		flag.Var(&paletteArguments, "palette", "")
		flag.Var(&countFlag, "count", "")
		flag.Var(verbosityLevel, "v", "")
	}

	tests := []struct {
		name      string
		args      []string
		wantErr   bool
		errIs     error
		checkFunc func(*testing.T, *Config)
	}{
		{
			name:    "version flag",
			args:    []string{"cmd", "-version"},
			wantErr: true,
			errIs:   errVersionRequested,
		},
		{
			name:    "quiet and verbose conflict",
			args:    []string{"cmd", "-q", "-v", "#FFFFFF"},
			wantErr: true,
		},
		{
			name:    "no arguments",
			args:    []string{"cmd"},
			wantErr: true,
		},
		{
			name:    "invalid color option",
			args:    []string{"cmd", "-color", "invalid", "#FFFFFF"},
			wantErr: true,
		},
		{
			name:    "invalid format option",
			args:    []string{"cmd", "-format", "yaml", "#FFFFFF"},
			wantErr: true,
		},
		{
			name:    "invalid appearance",
			args:    []string{"cmd", "-appearance", "dim", "#FFFFFF"},
			wantErr: true,
		},
		{
			name:    "negative count",
			args:    []string{"cmd", "-count", "-1", "#FFFFFF"},
			wantErr: true,
		},
		{
			name: "valid basic config",
			args: []string{"cmd", "#FFFFFF"},
			checkFunc: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{"#FFFFFF"}, cfg.Inputs)
				assert.Equal(t, colorconv.Light, cfg.Appearance)
				assert.Equal(t, 0, cfg.Count)
				assert.Equal(t, "auto", cfg.Format)
				assert.Equal(t, "auto", cfg.ColorMode)
				assert.False(t, cfg.Quiet)
				assert.Equal(t, 0, cfg.Verbosity)
				assert.Empty(t, cfg.Palettes)
				assert.Empty(t, cfg.LogFile)
			},
		},
		{
			name: "full config",
			args: []string{
				"cmd", "-palette", "a.toml", "-palette", "b.toml", "-appearance", "Dark",
				"-format", "JSON", "-color", "never", "-count", "2", "-v=2",
				"-log-file", "colorconv.log", "#FFFFFF", "cmyk(0,0,0,100)",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{"#FFFFFF", "cmyk(0,0,0,100)"}, cfg.Inputs)
				assert.Equal(t, []string{"a.toml", "b.toml"}, cfg.Palettes)
				assert.Equal(t, colorconv.Dark, cfg.Appearance)
				assert.Equal(t, "json", cfg.Format)
				assert.Equal(t, "never", cfg.ColorMode)
				assert.Equal(t, 2, cfg.Count)
				assert.Equal(t, 2, cfg.Verbosity)
				assert.Equal(t, "colorconv.log", cfg.LogFile)
			},
		},
		{
			name: "quiet",
			args: []string{"cmd", "-q", "#FFFFFF"},
			checkFunc: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.Quiet)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			resetFlags()

			cfg, err := parseConfig()

			if tt.wantErr {
				assert.Error(t, err)
				if tt.errIs != nil {
					assert.ErrorIs(t, err, tt.errIs)
				}
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}
