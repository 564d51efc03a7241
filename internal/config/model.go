package config

import (
	"fmt"

	"github.com/specialistvlad/symbolgen/internal/glyph"
	"github.com/specialistvlad/symbolgen/internal/sheet"
)

// Document is everything read from one sheet definition file. Nil fields were
// not present in the file.
type Document struct {
	Source   string
	Settings *Settings
	Rows     []*RowSpec
}

// Settings is the format-agnostic representation of a `sheet` block.
type Settings struct {
	Columns    *int
	Scale      *float64
	Spacing    *float64
	LineWidth  *float64
	SeedOffset *uint64
}

// RowSpec is the format-agnostic representation of a `row` block.
type RowSpec struct {
	Name       string
	Resolution int
	Density    *int
	Symmetry   *glyph.Symmetry
	Motif      *glyph.Motif
	Unique     *bool
}

// Assemble merges documents on top of sheet.Default. Rows from documents
// replace the default rows and keep their file order.
func Assemble(docs ...*Document) (*sheet.Sheet, error) {
	s := sheet.Default()
	var settingsSeen bool
	var settingsSource string
	var rows []sheet.Row

	for _, doc := range docs {
		if doc.Settings != nil {
			if settingsSeen {
				return nil, fmt.Errorf("duplicate sheet settings in %s, already defined in %s", doc.Source, settingsSource)
			}
			settingsSeen = true
			settingsSource = doc.Source
			applySettings(s, doc.Settings)
		}
		for _, spec := range doc.Rows {
			rows = append(rows, spec.row())
		}
	}

	if len(rows) > 0 {
		s.Rows = rows
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func applySettings(s *sheet.Sheet, set *Settings) {
	if set.Columns != nil {
		s.Columns = *set.Columns
	}
	if set.Scale != nil {
		s.Scale = *set.Scale
	}
	if set.Spacing != nil {
		s.Spacing = *set.Spacing
	}
	if set.LineWidth != nil {
		s.LineWidth = *set.LineWidth
	}
	if set.SeedOffset != nil {
		s.SeedOffset = *set.SeedOffset
	}
}

// row applies the row defaults: density 3, diagonal motif, no symmetry.
func (r *RowSpec) row() sheet.Row {
	a := glyph.Alphabet{
		Resolution: r.Resolution,
		Density:    sheet.DefaultDensity,
		Symmetry:   glyph.Asymmetric,
		Motif:      glyph.Diagonal,
	}
	if r.Density != nil {
		a.Density = *r.Density
	}
	if r.Symmetry != nil {
		a.Symmetry = *r.Symmetry
	}
	if r.Motif != nil {
		a.Motif = *r.Motif
	}
	if r.Unique != nil {
		a.Unique = *r.Unique
	}
	return sheet.Row{Name: r.Name, Alphabet: a}
}
