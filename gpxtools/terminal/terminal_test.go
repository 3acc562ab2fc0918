package terminal_test

import (
	"bytes"
	"errors"
	"gpx-tools/gpxtools/terminal"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	require := require.New(t)

	tests := map[string]struct {
		err  error
		want string
	}{
		"with_error":    {err: errors.New("boom"), want: "Failed to read 'a.gpx' [boom]\n"},
		"without_error": {err: nil, want: "Failed to read 'a.gpx'\n"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			terminal.Setup(&buf, true)

			terminal.Error(tc.err, "Failed to read '%s'", "a.gpx")
			require.Equal(tc.want, buf.String())
		})
	}
}

func TestInfo(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	terminal.Setup(&buf, true)

	terminal.Info("Points removed: %d", 3)
	require.Equal("Points removed: 3\n", buf.String())
}

func TestOperation(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	terminal.Setup(&buf, true)

	terminal.NewOperation("Loading '%s'", "a.gpx").Success("Loaded %d points", 4)
	terminal.NewOperation("Writing").Error(errors.New("disk full"), "Failed to write '%s'", "b.gpx")

	require.Equal("✓ Loaded 4 points\n✗ Failed to write 'b.gpx' [disk full]\n", buf.String())
}
