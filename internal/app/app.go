package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/specialistvlad/symbolgen/internal/config"
	"github.com/specialistvlad/symbolgen/internal/ctxlog"
	"github.com/specialistvlad/symbolgen/internal/executor"
	"github.com/specialistvlad/symbolgen/internal/hcl"
	"github.com/specialistvlad/symbolgen/internal/sheet"
	"github.com/specialistvlad/symbolgen/internal/tracing"
	"github.com/specialistvlad/symbolgen/internal/yamlconf"
)

// Version is reported in traces.
var Version = "dev"

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	loaders  []config.Loader
	tracing  *tracing.Provider
	traceOut io.Closer
	executor *executor.Executor

	sheet      *sheet.Sheet
	httpServer *http.Server
}

// NewApp is the constructor for the main application. Rendered output that
// has no file destination goes to outW, logs go to logW. The returned App
// must be closed.
func NewApp(outW, logW io.Writer, cfg *Config, loaders ...config.Loader) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW).With("run_id", uuid.NewString())
	logger.Debug("Logger configured successfully.")

	if len(loaders) == 0 {
		loaders = []config.Loader{hcl.NewLoader(), yamlconf.NewLoader()}
	}

	a := &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		loaders: loaders,
		tracing: tracing.Noop(),
	}

	if cfg.TraceFile != "" {
		f, err := os.Create(cfg.TraceFile)
		if err != nil {
			return nil, fmt.Errorf("failed to create trace file: %w", err)
		}
		provider, err := tracing.New("symbolgen", Version, f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to configure tracing: %w", err)
		}
		a.tracing = provider
		a.traceOut = f
		logger.Debug("Tracing enabled.", "file", cfg.TraceFile)
	}

	a.executor = executor.New(cfg.Workers, a.tracing.Tracer())
	return a, nil
}

// Context returns ctx carrying the App's logger.
func (a *App) Context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}

// Sheet returns the loaded sheet, or nil before Load has run.
func (a *App) Sheet() *sheet.Sheet {
	return a.sheet
}

// Close flushes traces and releases the trace file.
func (a *App) Close() error {
	err := a.tracing.Shutdown(context.Background())
	if a.traceOut != nil {
		err = errors.Join(err, a.traceOut.Close())
	}
	return err
}
