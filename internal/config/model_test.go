package config

import (
	"testing"

	"github.com/specialistvlad/symbolgen/internal/glyph"
	"github.com/specialistvlad/symbolgen/internal/sheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestAssemble_NoDocumentsIsDefault(t *testing.T) {
	s, err := Assemble()
	require.NoError(t, err)
	assert.Equal(t, sheet.Default(), s)
}

func TestAssemble_MergesSettingsAndRows(t *testing.T) {
	docs := []*Document{
		{
			Source:   "a.hcl",
			Settings: &Settings{Columns: ptr(8), LineWidth: ptr(2.5), SeedOffset: ptr(uint64(100))},
			Rows:     []*RowSpec{{Name: "first", Resolution: 3}},
		},
		{
			Source: "b.yaml",
			Rows: []*RowSpec{{
				Name:       "second",
				Resolution: 4,
				Density:    ptr(5),
				Symmetry:   ptr(glyph.Vertical),
				Motif:      ptr(glyph.Orthogonal),
				Unique:     ptr(true),
			}},
		},
	}

	s, err := Assemble(docs...)
	require.NoError(t, err)

	assert.Equal(t, 8, s.Columns)
	assert.Equal(t, 2.5, s.LineWidth)
	assert.Equal(t, uint64(100), s.SeedOffset)
	assert.Equal(t, sheet.DefaultScale, s.Scale, "unset settings keep their defaults")

	require.Len(t, s.Rows, 2)
	assert.Equal(t, sheet.Row{
		Name:     "first",
		Alphabet: glyph.Alphabet{Resolution: 3, Density: sheet.DefaultDensity, Symmetry: glyph.Asymmetric, Motif: glyph.Diagonal},
	}, s.Rows[0])
	assert.Equal(t, sheet.Row{
		Name:     "second",
		Alphabet: glyph.Alphabet{Resolution: 4, Density: 5, Symmetry: glyph.Vertical, Motif: glyph.Orthogonal, Unique: true},
	}, s.Rows[1])
}

func TestAssemble_DuplicateSettings(t *testing.T) {
	_, err := Assemble(
		&Document{Source: "one.hcl", Settings: &Settings{}},
		&Document{Source: "two.hcl", Settings: &Settings{}},
	)
	require.EqualError(t, err, "duplicate sheet settings in two.hcl, already defined in one.hcl")
}

func TestAssemble_DuplicateSettingsWithoutSource(t *testing.T) {
	_, err := Assemble(
		&Document{Settings: &Settings{Columns: ptr(2)}},
		&Document{Settings: &Settings{Columns: ptr(3)}},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate sheet settings")
}

func TestAssemble_Validates(t *testing.T) {
	_, err := Assemble(&Document{Source: "bad.hcl", Rows: []*RowSpec{{Name: "tiny", Resolution: 1}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 0 (tiny)")
}
