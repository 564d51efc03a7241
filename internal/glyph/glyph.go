package glyph

// Glyph is one generated symbol.
type Glyph struct {
	seed  uint64
	lines []Line
}

// New wraps pre-computed lines into a Glyph.
func New(seed uint64, lines []Line) *Glyph {
	return &Glyph{seed: seed, lines: lines}
}

// Seed returns the seed the glyph was generated from.
func (g *Glyph) Seed() uint64 {
	return g.seed
}

// Lines returns the glyph's segments in unit coordinates. The slice must not
// be modified.
func (g *Glyph) Lines() []Line {
	return g.lines
}
