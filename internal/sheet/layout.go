package sheet

import "github.com/specialistvlad/symbolgen/internal/glyph"

// Cell is one generated glyph and its position on the sheet.
type Cell struct {
	Row    int
	Column int
	Seed   uint64
	Glyph  *glyph.Glyph
}

// Layout is a sheet together with all of its generated glyphs, ready to be
// rendered.
type Layout struct {
	Sheet *Sheet
	// Cells are stored in row-major order.
	Cells []Cell
}

// NewLayout allocates an empty cell for every position of s.
func NewLayout(s *Sheet) *Layout {
	cells := make([]Cell, 0, s.NumCells())
	for row := range s.Rows {
		for col := 0; col < s.Columns; col++ {
			cells = append(cells, Cell{Row: row, Column: col, Seed: s.Seed(row, col)})
		}
	}
	return &Layout{Sheet: s, Cells: cells}
}

// Generate fills every cell synchronously.
func (l *Layout) Generate() {
	for i := range l.Cells {
		l.Fill(i)
	}
}

// Fill generates the glyph of cell i. Distinct indices may be filled
// concurrently.
func (l *Layout) Fill(i int) {
	c := &l.Cells[i]
	c.Glyph = l.Sheet.Rows[c.Row].Alphabet.Generate(c.Seed)
}

// Segments returns every line of the layout in canvas coordinates.
func (l *Layout) Segments() []glyph.Line {
	var out []glyph.Line
	for _, c := range l.Cells {
		if c.Glyph == nil {
			continue
		}
		offset := l.Sheet.Offset(c.Row, c.Column)
		for _, line := range c.Glyph.Lines() {
			out = append(out, glyph.Line{
				Start: line.Start.Scale(l.Sheet.Scale, offset),
				End:   line.End.Scale(l.Sheet.Scale, offset),
			})
		}
	}
	return out
}
