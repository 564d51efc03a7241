package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/symbolgen/internal/glyph"
	"github.com/specialistvlad/symbolgen/internal/render"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	SheetPath  string // .hcl/.yaml file or directory, empty for the built-in sheet
	OutputPath string // empty writes to the App's output stream
	Format     string // png or svg, inferred from OutputPath when empty

	// Symmetry, when set, overrides the symmetry of every row.
	Symmetry   string
	SeedOffset *uint64

	LogFormat string
	LogLevel  string
	TraceFile string
	Workers   int
	ServePort int
}

// NewConfig validates cfg, fills in derived values and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Format == "" {
		cfg.Format = render.FormatFromPath(cfg.OutputPath)
	}
	if cfg.Format == "" {
		cfg.Format = "png"
	}
	if _, err := render.ForFormat(cfg.Format); err != nil {
		return nil, err
	}
	if cfg.Symmetry != "" {
		if _, err := glyph.ParseSymmetry(cfg.Symmetry); err != nil {
			return nil, err
		}
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("workers must not be negative, got %d", cfg.Workers)
	}
	if cfg.ServePort < 0 || cfg.ServePort > 65535 {
		return nil, fmt.Errorf("serve port out of range: %d", cfg.ServePort)
	}
	if cfg.ServePort > 0 && cfg.OutputPath != "" {
		return nil, errors.New("an output path cannot be combined with serve mode")
	}
	return &cfg, nil
}
