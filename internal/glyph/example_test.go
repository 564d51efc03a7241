package glyph_test

import (
	"fmt"

	"github.com/specialistvlad/symbolgen/internal/glyph"
)

func ExampleParseSymmetry() {
	sym, err := glyph.ParseSymmetry("HorizontalVertical")
	if err != nil {
		panic(err)
	}
	fmt.Println(sym, sym.MirrorsX(), sym.MirrorsY())

	_, err = glyph.ParseSymmetry("radial")
	fmt.Println(err)
	// Output:
	// horizontalvertical true true
	// could not parse symmetry "radial"
}

func ExampleAlphabet_Generate() {
	a, err := glyph.NewAlphabet(3, 2, glyph.Horizontal, glyph.Orthogonal)
	if err != nil {
		panic(err)
	}

	first := a.Generate(42)
	again := a.Generate(42)

	inUnitSquare := true
	for _, l := range first.Lines() {
		for _, p := range []glyph.Point{l.Start, l.End} {
			inUnitSquare = inUnitSquare && p.X >= 0 && p.X <= 1 && p.Y >= 0 && p.Y <= 1
		}
	}

	fmt.Println("attempted lines:", a.NumLines())
	fmt.Println("same seed, same glyph:", fmt.Sprint(first.Lines()) == fmt.Sprint(again.Lines()))
	fmt.Println("mirrored pairs:", len(first.Lines())%2 == 0)
	fmt.Println("inside the unit square:", inUnitSquare)
	// Output:
	// attempted lines: 6
	// same seed, same glyph: true
	// mirrored pairs: true
	// inside the unit square: true
}
