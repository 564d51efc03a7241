package integration_tests

import (
	"testing"

	"github.com/specialistvlad/symbolgen/internal/app"
	"github.com/specialistvlad/symbolgen/internal/testutil"
	"github.com/stretchr/testify/require"
)

// Test for: output does not depend on the number of workers
func TestDeterminism_WorkerCountDoesNotChangeOutput(t *testing.T) {
	t.Parallel()

	// --- Act ---
	single := testutil.RunIntegrationTest(t, nil, app.Config{Workers: 1})
	many := testutil.RunIntegrationTest(t, nil, app.Config{Workers: 8})

	// --- Assert ---
	testutil.AssertSheetRendered(t, single, 1325, 225)
	testutil.AssertSheetRendered(t, many, 1325, 225)
	require.Equal(t, string(single.Output), string(many.Output))
	require.Positive(t, testutil.CountLines(single))
}

// Test for: PNG output is byte-identical between runs
func TestDeterminism_PNGIsRepeatable(t *testing.T) {
	t.Parallel()

	// --- Act ---
	first := testutil.RunIntegrationTest(t, nil, app.Config{Format: "png"})
	second := testutil.RunIntegrationTest(t, nil, app.Config{Format: "png"})

	// --- Assert ---
	require.NoError(t, first.Err)
	require.NoError(t, second.Err)
	require.NotEmpty(t, first.Output)
	require.Equal(t, first.Output, second.Output)
}

// Test for: symmetry mirrors the same base lines
func TestDeterminism_SymmetryMultipliesLines(t *testing.T) {
	t.Parallel()

	// --- Act ---
	plain := testutil.RunIntegrationTest(t, nil, app.Config{})
	mirrored := testutil.RunIntegrationTest(t, nil, app.Config{Symmetry: "horizontal"})
	both := testutil.RunIntegrationTest(t, nil, app.Config{Symmetry: "horizontalvertical"})

	// --- Assert ---
	require.NoError(t, plain.Err)
	require.NoError(t, mirrored.Err)
	require.NoError(t, both.Err)
	n := testutil.CountLines(plain)
	require.Equal(t, 2*n, testutil.CountLines(mirrored))
	require.Equal(t, 4*n, testutil.CountLines(both))
}
