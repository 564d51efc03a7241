package render_test

import (
	"context"
	"fmt"
	"os"

	"github.com/specialistvlad/symbolgen/internal/glyph"
	"github.com/specialistvlad/symbolgen/internal/render"
	"github.com/specialistvlad/symbolgen/internal/sheet"
)

func ExampleForFormat() {
	for _, format := range []string{"png", "SVG", "gif"} {
		r, err := render.ForFormat(format)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(r.ContentType())
	}
	// Output:
	// image/png
	// image/svg+xml
	// unsupported output format "gif": must be one of png, svg
}

func ExampleSVG_Render() {
	s := &sheet.Sheet{
		Columns:   1,
		Scale:     10,
		Spacing:   5,
		LineWidth: 2,
		Rows:      []sheet.Row{{Name: "one", Alphabet: glyph.Alphabet{Resolution: 2}}},
	}
	layout := sheet.NewLayout(s)
	layout.Cells[0].Glyph = glyph.New(0, []glyph.Line{{Start: glyph.Point{X: 0, Y: 0}, End: glyph.Point{X: 1, Y: 1}}})

	if err := (&render.SVG{}).Render(context.Background(), os.Stdout, layout); err != nil {
		panic(err)
	}
	// Output:
	// <svg xmlns="http://www.w3.org/2000/svg" width="20" height="20" viewBox="0 0 20 20">
	// <rect width="100%" height="100%" fill="white"/>
	// <g stroke="black" stroke-width="2" stroke-linecap="round" fill="none">
	// <line x1="5" y1="5" x2="15" y2="15"/>
	// </g>
	// </svg>
}
