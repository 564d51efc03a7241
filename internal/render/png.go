package render

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/specialistvlad/symbolgen/internal/glyph"
	"github.com/specialistvlad/symbolgen/internal/sheet"
	"golang.org/x/image/vector"
)

// capSegments is the number of polygon edges used per semicircular line cap.
const capSegments = 12

// PNG renders black, round-capped strokes on a white canvas.
type PNG struct{}

// ContentType implements Renderer.
func (p *PNG) ContentType() string {
	return "image/png"
}

// Render implements Renderer.
func (p *PNG) Render(ctx context.Context, w io.Writer, layout *sheet.Layout) error {
	img, err := p.Rasterize(ctx, layout)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// Rasterize draws the layout into a new RGBA image.
func (p *PNG) Rasterize(ctx context.Context, layout *sheet.Layout) (*image.RGBA, error) {
	s := layout.Sheet
	width, height := s.Width(), s.Height()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("canvas has no area: %dx%d", width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	z := vector.NewRasterizer(width, height)
	radius := s.LineWidth / 2
	for _, line := range layout.Segments() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		strokeCapsule(z, line, radius)
	}
	z.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{})
	return img, nil
}

// strokeCapsule adds the outline of a round-capped stroke of line to z. Every
// capsule is wound in the same direction, so overlapping strokes merge.
func strokeCapsule(z *vector.Rasterizer, line glyph.Line, radius float64) {
	dx := line.End.X - line.Start.X
	dy := line.End.Y - line.Start.Y
	heading := math.Atan2(dy, dx)

	arc := func(centre glyph.Point, from float64, first bool) {
		for i := 0; i <= capSegments; i++ {
			t := from + math.Pi*float64(i)/capSegments
			x := float32(centre.X + radius*math.Cos(t))
			y := float32(centre.Y + radius*math.Sin(t))
			if first && i == 0 {
				z.MoveTo(x, y)
			} else {
				z.LineTo(x, y)
			}
		}
	}

	arc(line.End, heading-math.Pi/2, true)
	arc(line.Start, heading+math.Pi/2, false)
	z.ClosePath()
}
