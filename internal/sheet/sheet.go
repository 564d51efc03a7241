// Package sheet describes how glyphs are arranged on a canvas: a grid with a
// fixed number of columns where every row draws from its own alphabet.
package sheet

import (
	"errors"
	"fmt"
	"math"

	"github.com/specialistvlad/symbolgen/internal/glyph"
)

// Defaults of the built-in sheet.
const (
	DefaultColumns   = 26
	DefaultScale     = 25.0
	DefaultSpacing   = 25.0
	DefaultLineWidth = 4.0
	DefaultDensity   = 3
)

// Upper bounds accepted by Validate.
const (
	MaxCells      = 1 << 16
	MaxCanvasSize = 16384 // pixels along either axis
)

// Row is one line of glyphs sharing an alphabet.
type Row struct {
	Name     string
	Alphabet glyph.Alphabet
}

// Sheet is the complete description of a rendered page.
type Sheet struct {
	Columns    int
	Scale      float64 // edge length of one glyph, in pixels
	Spacing    float64 // gap around glyphs, in pixels
	LineWidth  float64
	SeedOffset uint64
	Rows       []Row
}

// Default returns the built-in sheet: four rows of 26 diagonal glyphs whose
// grid resolution grows from 2 to 5.
func Default() *Sheet {
	s := &Sheet{
		Columns:   DefaultColumns,
		Scale:     DefaultScale,
		Spacing:   DefaultSpacing,
		LineWidth: DefaultLineWidth,
	}
	for resolution := 2; resolution <= 5; resolution++ {
		s.Rows = append(s.Rows, Row{
			Name: fmt.Sprintf("resolution-%d", resolution),
			Alphabet: glyph.Alphabet{
				Resolution: resolution,
				Density:    DefaultDensity,
				Symmetry:   glyph.Asymmetric,
				Motif:      glyph.Diagonal,
			},
		})
	}
	return s
}

// Validate reports every problem with the sheet at once.
func (s *Sheet) Validate() error {
	var errs []error
	if s.Columns < 1 || s.Columns > MaxCells {
		errs = append(errs, fmt.Errorf("columns must be between 1 and %d, got %d", MaxCells, s.Columns))
	}
	if len(s.Rows) == 0 {
		errs = append(errs, errors.New("sheet has no rows"))
	}
	if s.Columns >= 1 && s.Columns <= MaxCells && len(s.Rows) > MaxCells/s.Columns {
		errs = append(errs, fmt.Errorf("sheet has more than %d cells", MaxCells))
	}

	scaleOK := finite(s.Scale) && s.Scale > 0
	spacingOK := finite(s.Spacing) && s.Spacing >= 0
	if !scaleOK {
		errs = append(errs, fmt.Errorf("scale must be positive, got %g", s.Scale))
	}
	if !spacingOK {
		errs = append(errs, fmt.Errorf("spacing must not be negative, got %g", s.Spacing))
	}
	if !finite(s.LineWidth) || s.LineWidth <= 0 {
		errs = append(errs, fmt.Errorf("line width must be positive, got %g", s.LineWidth))
	}
	if scaleOK && spacingOK {
		if w := s.Spacing + (s.Scale+s.Spacing)*float64(s.Columns); w > MaxCanvasSize {
			errs = append(errs, fmt.Errorf("canvas width %g exceeds %d pixels", w, MaxCanvasSize))
		}
		if h := s.Spacing + (s.Scale+s.Spacing)*float64(len(s.Rows)); h > MaxCanvasSize {
			errs = append(errs, fmt.Errorf("canvas height %g exceeds %d pixels", h, MaxCanvasSize))
		}
	}

	for i := range s.Rows {
		if err := s.Rows[i].Alphabet.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("row %d (%s): %w", i, s.Rows[i].Name, err))
		}
	}
	return errors.Join(errs...)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ApplySymmetry forces every row to use sym.
func (s *Sheet) ApplySymmetry(sym glyph.Symmetry) {
	for i := range s.Rows {
		s.Rows[i].Alphabet.Symmetry = sym
	}
}

// Clone returns a deep copy that can be modified independently.
func (s *Sheet) Clone() *Sheet {
	c := *s
	c.Rows = append([]Row(nil), s.Rows...)
	return &c
}

// Width is the canvas width in pixels.
func (s *Sheet) Width() int {
	return extent(s.Spacing, s.Scale, s.Columns)
}

// Height is the canvas height in pixels.
func (s *Sheet) Height() int {
	return extent(s.Spacing, s.Scale, len(s.Rows))
}

// NumCells is the number of glyphs on the sheet.
func (s *Sheet) NumCells() int {
	return s.Columns * len(s.Rows)
}

// Seed returns the seed of the glyph at row, col.
func (s *Sheet) Seed(row, col int) uint64 {
	return s.SeedOffset + uint64(row*s.Columns+col)
}

// Offset returns the canvas position of the top left corner of the glyph at
// row, col.
func (s *Sheet) Offset(row, col int) glyph.Point {
	pitch := s.Scale + s.Spacing
	return glyph.Point{
		X: s.Spacing + pitch*float64(col),
		Y: s.Spacing + pitch*float64(row),
	}
}

func extent(spacing, scale float64, count int) int {
	return int(spacing) + int(scale+spacing)*count
}
