package app

import (
	"bytes"
	"errors"
	"testing"

	"github.com/jkbrsn/colorconv"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		client  Client
		wantErr string
	}{
		{name: "minimal", client: Client{Inputs: []string{"#FFFFFF"}}},
		{
			name:   "all options",
			client: Client{Inputs: []string{"#FFFFFF"}, Format: "json", ColorMode: "never", VerbosityLevel: 2},
		},
		{name: "no inputs", client: Client{}, wantErr: "no color inputs"},
		{
			name:    "unknown format",
			client:  Client{Inputs: []string{"#FFFFFF"}, Format: "yaml"},
			wantErr: "unknown format",
		},
		{
			name:    "unknown color mode",
			client:  Client{Inputs: []string{"#FFFFFF"}, ColorMode: "sometimes"},
			wantErr: "unknown color mode",
		},
		{
			name:    "negative count",
			client:  Client{Inputs: []string{"#FFFFFF"}, Count: -1},
			wantErr: "count must not be negative",
		},
		{
			name:    "quiet and verbose",
			client:  Client{Inputs: []string{"#FFFFFF"}, Quiet: true, VerbosityLevel: 1},
			wantErr: "quiet cannot be combined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.client.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConvert(t *testing.T) {
	t.Parallel()

	t.Run("every input form", func(t *testing.T) {
		c := Client{
			Inputs:  []string{"#FF0000", "0x00FF00", "rgb(0, 0, 255)", "cmyk(0,0,0,100)", " brand "},
			Palette: samplePalette(t),
		}
		require.NoError(t, c.Convert())
		require.Len(t, c.Results, 5)

		wantSources := []string{sourceHex, sourceValue, sourceRGB, sourceCMYK, sourcePalette}
		wantHex := []string{"#FF0000", "#00FF00", "#0000FF", "#000000", "#FF6600"}
		for i, r := range c.Results {
			assert.Equal(t, c.Inputs[i], r.Input)
			assert.Equal(t, wantSources[i], r.Source)
			assert.Equal(t, wantHex[i], r.Hex.String())
		}
		assert.True(t, c.Results[0].CMYK.Equal(colorconv.NewCMYK(0, 100, 100, 0)))
		assert.Equal(t, uint8(100), c.Results[3].CMYK.Key())
	})

	t.Run("CMYK input keeps its channels", func(t *testing.T) {
		c := Client{Inputs: []string{"cmyk(20,40,60,10)"}}
		require.NoError(t, c.Convert())
		require.Len(t, c.Results, 1)
		r := c.Results[0]
		assert.True(t, r.CMYK.Equal(colorconv.NewCMYK(20, 40, 60, 10)))
		assert.Equal(t, "#B88A5C", r.Hex.String())
	})

	t.Run("appearance selects palette variant", func(t *testing.T) {
		c := Client{Inputs: []string{"surface"}, Palette: samplePalette(t)}
		require.NoError(t, c.Convert())
		assert.Equal(t, "#FFFFFF", c.Results[0].Hex.String())

		c.Appearance = colorconv.Dark
		require.NoError(t, c.Convert())
		require.Len(t, c.Results, 1)
		assert.Equal(t, "#1E1E1E", c.Results[0].Hex.String())
	})

	t.Run("errors are joined and good inputs kept", func(t *testing.T) {
		c := Client{Inputs: []string{"#12345", "#ABCDEF", "0x1000000", "nope"}}
		err := c.Convert()
		require.Error(t, err)
		assert.ErrorIs(t, err, colorconv.ErrFormat)
		assert.ErrorIs(t, err, colorconv.ErrRange)
		assert.ErrorIs(t, err, errUnrecognizedInput)
		assert.Contains(t, err.Error(), `input "nope"`)

		var rangeErr *colorconv.RangeError
		require.True(t, errors.As(err, &rangeErr))
		assert.Equal(t, uint32(0x1000000), rangeErr.Value)

		require.Len(t, c.Results, 1)
		assert.Equal(t, "#ABCDEF", c.Results[0].Hex.String())
	})

	t.Run("logs conversions", func(t *testing.T) {
		var buf bytes.Buffer
		c := Client{
			Inputs: []string{"#FFFFFF", "unknown"},
			Logger: zerolog.New(&buf).Level(zerolog.DebugLevel),
		}
		require.Error(t, c.Convert())

		logs := buf.String()
		assert.Contains(t, logs, `"pkg":"app"`)
		assert.Contains(t, logs, "Converted input")
		assert.Contains(t, logs, "No palette loaded")
		assert.Contains(t, logs, "Failed to convert input")
	})

	t.Run("zero logger is silent", func(t *testing.T) {
		c := Client{Inputs: []string{"#FFFFFF"}}
		assert.NotPanics(t, func() { _ = c.Convert() })
	})
}
