package glyph

// Point is a position in the unit square.
type Point struct {
	X float64
	Y float64
}

// Scale maps the point onto a canvas: each coordinate is multiplied by
// factor and then shifted by offset.
func (p Point) Scale(factor float64, offset Point) Point {
	return Point{X: p.X*factor + offset.X, Y: p.Y*factor + offset.Y}
}

// Line is a straight segment between two points.
type Line struct {
	Start Point
	End   Point
}

// Same reports whether two lines cover the same segment, ignoring direction.
func (l Line) Same(o Line) bool {
	return (l.Start == o.Start && l.End == o.End) || (l.Start == o.End && l.End == o.Start)
}

// cell is a grid intersection addressed by integer indices.
type cell struct {
	x, y int
}

// segment is a line between two grid cells. Generation works on segments so
// that boundary checks and duplicate detection never compare floats.
type segment struct {
	from, to cell
}

func (s segment) same(o segment) bool {
	return (s.from == o.from && s.to == o.to) || (s.from == o.to && s.to == o.from)
}

func containsSegment(segments []segment, s segment) bool {
	for _, existing := range segments {
		if existing.same(s) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
