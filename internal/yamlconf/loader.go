// Package yamlconf provides the YAML implementation of the config.Loader
// interface. A definition mirrors the HCL format:
//
//	sheet:
//	  columns: 12
//	  line_width: 3
//	rows:
//	  - name: crosses
//	    resolution: 3
//	    symmetry: horizontalvertical
//	    unique: true
package yamlconf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/symbolgen/internal/config"
	"github.com/specialistvlad/symbolgen/internal/ctxlog"
	"github.com/specialistvlad/symbolgen/internal/fsutil"
	"github.com/specialistvlad/symbolgen/internal/glyph"
	"gopkg.in/yaml.v3"
)

type fileRoot struct {
	Sheet *sheetNode `yaml:"sheet"`
	Rows  []*rowNode `yaml:"rows"`
}

type sheetNode struct {
	Columns    *int     `yaml:"columns"`
	Scale      *float64 `yaml:"scale"`
	Spacing    *float64 `yaml:"spacing"`
	LineWidth  *float64 `yaml:"line_width"`
	SeedOffset *uint64  `yaml:"seed_offset"`
}

type rowNode struct {
	Name       string          `yaml:"name"`
	Resolution *int            `yaml:"resolution"`
	Density    *int            `yaml:"density"`
	Symmetry   *glyph.Symmetry `yaml:"symmetry"`
	Motif      *glyph.Motif    `yaml:"motif"`
	Unique     *bool           `yaml:"unique"`
}

// Loader reads .yaml and .yml sheet definitions.
type Loader struct{}

// NewLoader creates a new YAML sheet loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements config.Loader.
func (l *Loader) Extensions() []string {
	return []string{".yaml", ".yml"}
}

// Load implements config.Loader.
func (l *Loader) Load(ctx context.Context, paths ...string) ([]*config.Document, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.FindFiles(paths, l.Extensions()...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered YAML files.", "count", len(files))

	docs := make([]*config.Document, 0, len(files))
	for _, file := range files {
		doc, err := loadFile(file)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func loadFile(file string) (*config.Document, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open YAML file %s: %w", file, err)
	}
	defer f.Close()

	var root fileRoot
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&root); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", file, err)
	}

	doc := &config.Document{Source: file}
	if s := root.Sheet; s != nil {
		doc.Settings = &config.Settings{
			Columns:    s.Columns,
			Scale:      s.Scale,
			Spacing:    s.Spacing,
			LineWidth:  s.LineWidth,
			SeedOffset: s.SeedOffset,
		}
	}
	for i, r := range root.Rows {
		if r == nil || r.Resolution == nil {
			return nil, fmt.Errorf("%s: row %d: resolution is required", file, i)
		}
		name := r.Name
		if name == "" {
			name = fmt.Sprintf("row-%d", i)
		}
		doc.Rows = append(doc.Rows, &config.RowSpec{
			Name:       name,
			Resolution: *r.Resolution,
			Density:    r.Density,
			Symmetry:   r.Symmetry,
			Motif:      r.Motif,
			Unique:     r.Unique,
		})
	}
	return doc, nil
}
