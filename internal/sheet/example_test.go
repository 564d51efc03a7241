package sheet_test

import (
	"fmt"

	"github.com/specialistvlad/symbolgen/internal/sheet"
)

func ExampleDefault() {
	s := sheet.Default()
	s.SeedOffset = 1000

	fmt.Printf("%dx%d pixels, %d glyphs\n", s.Width(), s.Height(), s.NumCells())
	fmt.Println("seed of row 1, column 3:", s.Seed(1, 3))
	fmt.Println("first row:", s.Rows[0].Name)
	// Output:
	// 1325x225 pixels, 104 glyphs
	// seed of row 1, column 3: 1029
	// first row: resolution-2
}
