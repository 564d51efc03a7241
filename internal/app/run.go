package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/symbolgen/internal/render"
	"github.com/specialistvlad/symbolgen/internal/sheet"
)

// Run executes the main application logic based on the provided
// configuration: it either serves sheets over HTTP until ctx is cancelled or
// renders the sheet once.
func (a *App) Run(ctx context.Context) error {
	ctx = a.Context(ctx)
	a.logger.Debug("App.Run method started.")

	if err := a.Load(ctx); err != nil {
		return err
	}

	if a.config.ServePort > 0 {
		return a.Serve(ctx)
	}

	renderer, err := render.ForFormat(a.config.Format)
	if err != nil {
		return err
	}

	a.logger.Info("🚀 Generating sheet...", "cells", a.sheet.NumCells(), "workers", a.executor.Workers())
	layout, err := a.executor.Run(ctx, a.sheet)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if err := a.write(ctx, renderer, layout); err != nil {
		return err
	}
	a.logger.Info("🏁 Sheet rendered.", "format", a.config.Format, "output", a.outputName(), "width", a.sheet.Width(), "height", a.sheet.Height())

	a.logger.Debug("App.Run method finished.")
	return nil
}

// write renders layout to the configured output file, or to the App's
// output stream when no file is configured.
func (a *App) write(ctx context.Context, renderer render.Renderer, layout *sheet.Layout) (err error) {
	var w io.Writer = a.outW
	if a.config.OutputPath != "" {
		f, err := os.Create(a.config.OutputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("failed to close output file: %w", cerr)
			}
		}()
		w = f
	}

	if err := renderer.Render(ctx, w, layout); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	return nil
}

func (a *App) outputName() string {
	if a.config.OutputPath == "" {
		return "stdout"
	}
	return a.config.OutputPath
}
