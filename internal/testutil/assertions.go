package testutil

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertSheetRendered checks that the run succeeded and logged a finished
// render of the given size.
func AssertSheetRendered(t *testing.T, result *HarnessResult, width, height int) {
	t.Helper()

	require.NoError(t, result.Err)
	require.Contains(t, result.LogOutput, "Sheet rendered.")
	require.Contains(t, result.LogOutput, "width="+strconv.Itoa(width))
	require.Contains(t, result.LogOutput, "height="+strconv.Itoa(height))
}

// CountLines returns the number of SVG line elements in the rendered output.
func CountLines(result *HarnessResult) int {
	return strings.Count(string(result.Output), "<line ")
}
