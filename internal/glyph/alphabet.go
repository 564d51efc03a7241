package glyph

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

// Upper bounds accepted by Validate.
const (
	MaxResolution = 64
	MaxDensity    = 64
)

// Alphabet holds the parameters shared by every glyph of one family. Two
// calls to Generate with the same seed always return the same glyph.
type Alphabet struct {
	// Resolution is the number of grid points along each axis.
	Resolution int
	// Density is the number of lines attempted per unit of resolution.
	Density int
	// Symmetry mirrors the generated lines.
	Symmetry Symmetry
	// Motif restricts the directions lines may take.
	Motif Motif
	// Unique drops lines that repeat an already generated segment.
	Unique bool
}

// NewAlphabet returns a validated Alphabet.
func NewAlphabet(resolution, density int, symmetry Symmetry, motif Motif) (*Alphabet, error) {
	a := &Alphabet{
		Resolution: resolution,
		Density:    density,
		Symmetry:   symmetry,
		Motif:      motif,
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Validate checks that the alphabet can generate glyphs.
func (a *Alphabet) Validate() error {
	var errs []error
	if a.Resolution < 2 || a.Resolution > MaxResolution {
		errs = append(errs, fmt.Errorf("resolution must be between 2 and %d, got %d", MaxResolution, a.Resolution))
	}
	if a.Density < 0 || a.Density > MaxDensity {
		errs = append(errs, fmt.Errorf("density must be between 0 and %d, got %d", MaxDensity, a.Density))
	}
	if _, ok := symmetryNames[a.Symmetry]; !ok {
		errs = append(errs, fmt.Errorf("unknown symmetry %d", int(a.Symmetry)))
	}
	if a.Motif != Orthogonal && a.Motif != Diagonal {
		errs = append(errs, fmt.Errorf("unknown motif %d", int(a.Motif)))
	}
	return errors.Join(errs...)
}

// NumLines is the number of lines attempted before mirroring. It is zero when
// either factor is not positive and saturates at math.MaxInt.
func (a *Alphabet) NumLines() int {
	if a.Density <= 0 || a.Resolution <= 0 {
		return 0
	}
	if a.Density > math.MaxInt/a.Resolution {
		return math.MaxInt
	}
	return a.Density * a.Resolution
}

// Step is the distance between neighbouring grid points in unit coordinates.
func (a *Alphabet) Step() float64 {
	return 1 / float64(a.Resolution-1)
}

// Generate builds the glyph for seed. The alphabet must be valid.
func (a *Alphabet) Generate(seed uint64) *Glyph {
	r := newRand(seed)
	last := a.Resolution - 1
	segments := make([]segment, 0, min(a.NumLines(), MaxResolution*MaxDensity))

	for range a.NumLines() {
		flipX := coinFlip(r)
		flipY := coinFlip(r)

		start := cell{x: r.IntN(a.Resolution), y: r.IntN(a.Resolution)}
		dx, dy := 0, 0

		if a.Motif == Orthogonal {
			// Exactly one axis moves. Points on an edge always move inwards.
			if flipX {
				dx = edgeAdjustment(start.x, last, r)
			} else {
				dy = edgeAdjustment(start.y, last, r)
			}
		} else {
			if flipX {
				dx = adjustment(r)
			}
			if flipY {
				dy = adjustment(r)
			}
		}

		end := cell{x: clamp(start.x+dx, 0, last), y: clamp(start.y+dy, 0, last)}
		if start == end {
			continue
		}
		s := segment{from: start, to: end}
		if a.Unique && containsSegment(segments, s) {
			continue
		}
		segments = append(segments, s)
	}

	if a.Symmetry.MirrorsX() {
		segments = a.mirror(segments, func(c cell) cell { return cell{x: last - c.x, y: c.y} })
	}
	if a.Symmetry.MirrorsY() {
		segments = a.mirror(segments, func(c cell) cell { return cell{x: c.x, y: last - c.y} })
	}

	lines := make([]Line, len(segments))
	for i, s := range segments {
		lines[i] = Line{Start: a.toPoint(s.from), End: a.toPoint(s.to)}
	}
	return &Glyph{seed: seed, lines: lines}
}

// mirror appends the reflection of every segment.
func (a *Alphabet) mirror(segments []segment, reflect func(cell) cell) []segment {
	n := len(segments)
	for i := 0; i < n; i++ {
		m := segment{from: reflect(segments[i].from), to: reflect(segments[i].to)}
		if a.Unique && containsSegment(segments, m) {
			continue
		}
		segments = append(segments, m)
	}
	return segments
}

// toPoint divides rather than multiplying by Step so that the last grid
// index maps to exactly 1.
func (a *Alphabet) toPoint(c cell) Point {
	last := float64(a.Resolution - 1)
	return Point{X: float64(c.x) / last, Y: float64(c.y) / last}
}

// edgeAdjustment moves an index at either end of the grid inwards and
// otherwise draws a random adjustment.
func edgeAdjustment(index, last int, r *rand.Rand) int {
	switch index {
	case 0:
		return 1
	case last:
		return -1
	}
	return adjustment(r)
}
