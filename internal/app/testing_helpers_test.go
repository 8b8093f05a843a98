package app

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/jkbrsn/colorconv"
	"github.com/jkbrsn/colorconv/internal/palette"
	"github.com/stretchr/testify/require"
)

func captureStdoutFrom(t *testing.T, fn func() error) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	original := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = original }()

	err = fn()
	require.NoError(t, err)
	require.NoError(t, w.Close())

	output, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(output)
}

func samplePalette(t *testing.T) *palette.Palette {
	t.Helper()
	p := palette.New()
	p.Set("brand", colorconv.Adaptive{
		Light: colorconv.MustParseHex("#FF6600"),
		Dark:  colorconv.MustParseHex("#FF6600"),
	})
	p.Set("surface", colorconv.Adaptive{
		Light: colorconv.MustParseHex("#FFFFFF"),
		Dark:  colorconv.MustParseHex("#1E1E1E"),
	})
	return p
}

func decodeJSONLines(t *testing.T, output string) []map[string]any {
	t.Helper()
	trimmed := strings.TrimSpace(output)
	require.NotEmpty(t, trimmed)
	var payloads []map[string]any
	for _, line := range strings.Split(trimmed, "\n") {
		var payload map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &payload))
		payloads = append(payloads, payload)
	}
	return payloads
}

func asSlice(t *testing.T, value any) []any {
	t.Helper()
	result, ok := value.([]any)
	require.Truef(t, ok, "expected []any, got %T", value)
	return result
}
