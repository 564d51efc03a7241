package glyph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSymmetry(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input string
		want  Symmetry
	}{
		{"asymmetric", Asymmetric},
		{"horizontal", Horizontal},
		{"vertical", Vertical},
		{"horizontalvertical", HorizontalVertical},
		{"  Horizontal ", Horizontal},
		{"HORIZONTALVERTICAL", HorizontalVertical},
	}
	for _, tc := range testCases {
		got, err := ParseSymmetry(tc.input)
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.want, got, tc.input)
		assert.Equal(t, symmetryNames[tc.want], got.String())
	}

	_, err := ParseSymmetry("radial")
	require.EqualError(t, err, `could not parse symmetry "radial"`)
}

func TestSymmetry_TextRoundTrip(t *testing.T) {
	t.Parallel()

	var s Symmetry
	require.NoError(t, s.UnmarshalText([]byte("vertical")))
	assert.Equal(t, Vertical, s)
	assert.True(t, s.MirrorsY())
	assert.False(t, s.MirrorsX())

	text, err := HorizontalVertical.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "horizontalvertical", string(text))

	_, err = Symmetry(12).MarshalText()
	assert.Error(t, err)
	assert.Error(t, s.UnmarshalText([]byte("sideways")))
}

func TestParseMotif(t *testing.T) {
	t.Parallel()

	m, err := ParseMotif("Diagonal")
	require.NoError(t, err)
	assert.Equal(t, Diagonal, m)

	var parsed Motif
	require.NoError(t, parsed.UnmarshalText([]byte("orthogonal")))
	assert.Equal(t, Orthogonal, parsed)

	_, err = ParseMotif("curvy")
	require.EqualError(t, err, `could not parse motif "curvy"`)
}
