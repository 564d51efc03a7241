package integration_tests

import (
	"bytes"
	"testing"

	"github.com/specialistvlad/symbolgen/internal/cli"
	"github.com/specialistvlad/symbolgen/internal/glyph"
	"github.com/specialistvlad/symbolgen/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestCLI_FlagsReachTheSheet(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"main.yaml": `
sheet:
  columns: 2
  seed_offset: 7
rows:
  - resolution: 3
    symmetry: horizontal
  - resolution: 4
`,
	}
	cfg, shouldExit, err := cli.Parse([]string{"--format", "svg", "--symmetry", "vertical", "--seed-offset", "42"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, shouldExit)

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, *cfg)

	// --- Assert ---
	require.NoError(t, result.Err)
	s := result.App.Sheet()
	require.Equal(t, uint64(42), s.SeedOffset)
	for _, row := range s.Rows {
		require.Equal(t, glyph.Vertical, row.Alphabet.Symmetry, "row %s", row.Name)
	}
	require.Equal(t, "row-0", s.Rows[0].Name)
	require.Contains(t, string(result.Output), "<svg")
}
