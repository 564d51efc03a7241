package glyph

import (
	"fmt"
	"strings"
)

// Symmetry selects which axes a generated glyph is mirrored across.
type Symmetry int

const (
	// Asymmetric leaves generated lines untouched.
	Asymmetric Symmetry = iota
	// Horizontal mirrors every line about the vertical centre line (x = 0.5).
	Horizontal
	// Vertical mirrors every line about the horizontal centre line (y = 0.5).
	Vertical
	// HorizontalVertical applies Horizontal and then Vertical.
	HorizontalVertical
)

var symmetryNames = map[Symmetry]string{
	Asymmetric:         "asymmetric",
	Horizontal:         "horizontal",
	Vertical:           "vertical",
	HorizontalVertical: "horizontalvertical",
}

// ParseSymmetry converts a textual symmetry name into a Symmetry.
func ParseSymmetry(s string) (Symmetry, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for sym, n := range symmetryNames {
		if n == name {
			return sym, nil
		}
	}
	return Asymmetric, fmt.Errorf("could not parse symmetry %q", s)
}

func (s Symmetry) String() string {
	if n, ok := symmetryNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Symmetry(%d)", int(s))
}

// MirrorsX reports whether lines are reflected across x = 0.5.
func (s Symmetry) MirrorsX() bool {
	return s == Horizontal || s == HorizontalVertical
}

// MirrorsY reports whether lines are reflected across y = 0.5.
func (s Symmetry) MirrorsY() bool {
	return s == Vertical || s == HorizontalVertical
}

// MarshalText implements encoding.TextMarshaler.
func (s Symmetry) MarshalText() ([]byte, error) {
	if _, ok := symmetryNames[s]; !ok {
		return nil, fmt.Errorf("unknown symmetry %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Symmetry) UnmarshalText(text []byte) error {
	parsed, err := ParseSymmetry(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Motif selects the directions a line may take away from its start point.
type Motif int

const (
	// Orthogonal lines move along exactly one axis.
	Orthogonal Motif = iota
	// Diagonal lines may move along either axis, or both at once.
	Diagonal
)

// ParseMotif converts a textual motif name into a Motif.
func ParseMotif(s string) (Motif, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "orthogonal":
		return Orthogonal, nil
	case "diagonal":
		return Diagonal, nil
	}
	return Orthogonal, fmt.Errorf("could not parse motif %q", s)
}

func (m Motif) String() string {
	switch m {
	case Orthogonal:
		return "orthogonal"
	case Diagonal:
		return "diagonal"
	}
	return fmt.Sprintf("Motif(%d)", int(m))
}

// MarshalText implements encoding.TextMarshaler.
func (m Motif) MarshalText() ([]byte, error) {
	if m != Orthogonal && m != Diagonal {
		return nil, fmt.Errorf("unknown motif %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Motif) UnmarshalText(text []byte) error {
	parsed, err := ParseMotif(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
