package render

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/specialistvlad/symbolgen/internal/sheet"
)

// SVG renders the layout as scalable vector markup.
type SVG struct{}

// ContentType implements Renderer.
func (s *SVG) ContentType() string {
	return "image/svg+xml"
}

// Render implements Renderer.
func (s *SVG) Render(ctx context.Context, w io.Writer, layout *sheet.Layout) error {
	sh := layout.Sheet
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		sh.Width(), sh.Height(), sh.Width(), sh.Height())
	fmt.Fprintf(bw, `<rect width="100%%" height="100%%" fill="white"/>`+"\n")
	fmt.Fprintf(bw, `<g stroke="black" stroke-width="%s" stroke-linecap="round" fill="none">`+"\n", num(sh.LineWidth))

	for i, line := range layout.Segments() {
		if i%256 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		fmt.Fprintf(bw, `<line x1="%s" y1="%s" x2="%s" y2="%s"/>`+"\n",
			num(line.Start.X), num(line.Start.Y), num(line.End.X), num(line.End.Y))
	}

	fmt.Fprint(bw, "</g>\n</svg>\n")
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write svg: %w", err)
	}
	return nil
}

// num formats a coordinate with the fewest digits that round-trip.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
