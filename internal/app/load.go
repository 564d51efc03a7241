package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/symbolgen/internal/config"
	"github.com/specialistvlad/symbolgen/internal/ctxlog"
	"github.com/specialistvlad/symbolgen/internal/glyph"
)

// Load reads the configured sheet definition, or the built-in sheet when no
// path is configured, and applies the command line overrides.
func (a *App) Load(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading sheet...", "sheet_path", a.config.SheetPath)

	var docs []*config.Document
	if a.config.SheetPath != "" {
		for _, loader := range a.loaders {
			found, err := loader.Load(ctx, a.config.SheetPath)
			if err != nil {
				return fmt.Errorf("failed to load sheet: %w", err)
			}
			docs = append(docs, found...)
		}
		if len(docs) == 0 {
			return fmt.Errorf("no sheet definitions found at %s", a.config.SheetPath)
		}
	}

	s, err := config.Assemble(docs...)
	if err != nil {
		return fmt.Errorf("invalid sheet definition: %w", err)
	}

	if a.config.Symmetry != "" {
		sym, err := glyph.ParseSymmetry(a.config.Symmetry)
		if err != nil {
			return err
		}
		s.ApplySymmetry(sym)
	}
	if a.config.SeedOffset != nil {
		s.SeedOffset = *a.config.SeedOffset
	}

	a.sheet = s
	logger.Info("Sheet loaded successfully.", "documents", len(docs), "rows", len(s.Rows), "columns", s.Columns)
	return nil
}
