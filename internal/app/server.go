package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/specialistvlad/symbolgen/internal/ctxlog"
	"github.com/specialistvlad/symbolgen/internal/glyph"
	"github.com/specialistvlad/symbolgen/internal/render"
	"github.com/specialistvlad/symbolgen/internal/sheet"
)

const shutdownTimeout = 5 * time.Second

// maxGlyphSize bounds the canvas of a single glyph request.
const maxGlyphSize = 4096

// Handler returns the HTTP routes served in serve mode. Load must have run.
func (a *App) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", a.healthHandler(ctx))
	mux.HandleFunc("GET /sheet/{format}", a.sheetHandler(ctx))
	mux.HandleFunc("GET /glyph/{seed}", a.glyphHandler(ctx))
	return mux
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down
// gracefully.
func (a *App) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", a.config.ServePort)

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return a.serve(ctx, listener)
}

func (a *App) serve(ctx context.Context, listener net.Listener) error {
	logger := ctxlog.FromContext(ctx)
	a.httpServer = &http.Server{
		Handler:           a.Handler(ctx),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("🩺 Server starting", "address", fmt.Sprintf("http://%s", listener.Addr()))
		// Serve returns http.ErrServerClosed on graceful shutdown.
		if err := a.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case err := <-errChan:
		if err != nil {
			logger.Error("Server failed unexpectedly", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	logger.Info("🩺 Shutting down server...")
	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
		return err
	}
	logger.Debug("Server shut down gracefully.")
	return nil
}

func (a *App) healthHandler(ctx context.Context) http.HandlerFunc {
	logger := ctxlog.FromContext(ctx)
	return func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "OK")
	}
}

// sheetHandler renders the loaded sheet. Query parameters `symmetry` and
// `seed_offset` override the loaded values for this request only.
func (a *App) sheetHandler(ctx context.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderer, err := render.ForFormat(r.PathValue("format"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		s := a.sheet.Clone()
		q := r.URL.Query()
		if v := q.Get("symmetry"); v != "" {
			sym, err := glyph.ParseSymmetry(v)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			s.ApplySymmetry(sym)
		}
		if v := q.Get("seed_offset"); v != "" {
			offset, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				http.Error(w, fmt.Sprintf("invalid seed_offset %q", v), http.StatusBadRequest)
				return
			}
			s.SeedOffset = offset
		}

		a.respond(ctx, w, r, renderer, s)
	}
}

// glyphHandler renders a single glyph on its own canvas.
func (a *App) glyphHandler(ctx context.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, format, err := glyphSheet(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		renderer, err := render.ForFormat(format)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		a.respond(ctx, w, r, renderer, s)
	}
}

func (a *App) respond(ctx context.Context, w http.ResponseWriter, r *http.Request, renderer render.Renderer, s *sheet.Sheet) {
	logger := ctxlog.FromContext(ctx).With("path", r.URL.Path)
	reqCtx := ctxlog.WithLogger(r.Context(), logger)

	layout, err := a.executor.Run(reqCtx, s)
	if err != nil {
		logger.Warn("Generation failed.", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	buf := &bytes.Buffer{}
	if err := renderer.Render(reqCtx, buf, layout); err != nil {
		logger.Error("Render failed.", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", renderer.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logger.Debug("Client went away.", "error", err)
	}
}

// glyphSheet builds a one-cell sheet from a /glyph/{seed} request.
func glyphSheet(r *http.Request) (*sheet.Sheet, string, error) {
	seed, err := strconv.ParseUint(r.PathValue("seed"), 10, 64)
	if err != nil {
		return nil, "", fmt.Errorf("invalid seed %q", r.PathValue("seed"))
	}

	q := r.URL.Query()
	alphabet := glyph.Alphabet{Resolution: 3, Density: sheet.DefaultDensity, Motif: glyph.Diagonal}
	size := 100

	ints := []struct {
		name string
		dst  *int
	}{
		{"resolution", &alphabet.Resolution},
		{"density", &alphabet.Density},
		{"size", &size},
	}
	for _, p := range ints {
		if v := q.Get(p.name); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, "", fmt.Errorf("invalid %s %q", p.name, v)
			}
			*p.dst = n
		}
	}
	if size < 1 || size > maxGlyphSize {
		return nil, "", fmt.Errorf("size must be between 1 and %d, got %d", maxGlyphSize, size)
	}
	if v := q.Get("symmetry"); v != "" {
		if alphabet.Symmetry, err = glyph.ParseSymmetry(v); err != nil {
			return nil, "", err
		}
	}
	if v := q.Get("motif"); v != "" {
		if alphabet.Motif, err = glyph.ParseMotif(v); err != nil {
			return nil, "", err
		}
	}
	if v := q.Get("unique"); v != "" {
		if alphabet.Unique, err = strconv.ParseBool(v); err != nil {
			return nil, "", fmt.Errorf("invalid unique %q", v)
		}
	}

	format := q.Get("format")
	if format == "" {
		format = "svg"
	}

	lineWidth := max(1, float64(size)/25)
	return &sheet.Sheet{
		Columns:    1,
		Scale:      float64(size),
		Spacing:    lineWidth,
		LineWidth:  lineWidth,
		SeedOffset: seed,
		Rows:       []sheet.Row{{Name: "glyph", Alphabet: alphabet}},
	}, format, nil
}
