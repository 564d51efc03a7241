// Package render turns a generated sheet layout into an image.
package render

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/symbolgen/internal/sheet"
)

// Renderer writes a layout in one output format.
type Renderer interface {
	Render(ctx context.Context, w io.Writer, layout *sheet.Layout) error
	ContentType() string
}

// Formats lists the supported output formats.
var Formats = []string{"png", "svg"}

// ForFormat returns the renderer for format.
func ForFormat(format string) (Renderer, error) {
	switch strings.ToLower(format) {
	case "png":
		return &PNG{}, nil
	case "svg":
		return &SVG{}, nil
	}
	return nil, fmt.Errorf("unsupported output format %q: must be one of %s", format, strings.Join(Formats, ", "))
}

// FormatFromPath infers the output format from a file extension, returning an
// empty string when the extension is not a known format.
func FormatFromPath(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	for _, f := range Formats {
		if f == ext {
			return f
		}
	}
	return ""
}
