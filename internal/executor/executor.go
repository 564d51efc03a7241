package executor

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/specialistvlad/symbolgen/internal/ctxlog"
	"github.com/specialistvlad/symbolgen/internal/sheet"
	"github.com/specialistvlad/symbolgen/internal/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Executor fills sheet layouts using a bounded worker pool.
type Executor struct {
	workers int
	tracer  trace.Tracer
}

// New creates an executor with the given number of workers. A non-positive
// count selects one worker per CPU.
func New(workers int, tracer trace.Tracer) *Executor {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if tracer == nil {
		tracer = tracing.Noop().Tracer()
	}
	return &Executor{workers: workers, tracer: tracer}
}

// Workers returns the size of the pool.
func (e *Executor) Workers() int {
	return e.workers
}

// Run validates s and generates every glyph on it.
func (e *Executor) Run(ctx context.Context, s *sheet.Sheet) (layout *sheet.Layout, err error) {
	logger := ctxlog.FromContext(ctx)

	ctx, span := tracing.StartSpan(ctx, e.tracer, "executor.run",
		attribute.Int("rows", len(s.Rows)),
		attribute.Int("columns", s.Columns),
		attribute.Int("workers", e.workers),
	)
	defer func() { tracing.EndSpan(span, err) }()

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sheet: %w", err)
	}

	layout = sheet.NewLayout(s)
	logger.Debug("Executor starting.", "cells", len(layout.Cells), "workers", e.workers)

	// One span per row, ended by the worker that completes the row's last cell.
	rows := make([]*rowTracker, len(s.Rows))
	for i, row := range s.Rows {
		_, rowSpan := tracing.StartSpan(ctx, e.tracer, "executor.row",
			attribute.Int("row", i),
			attribute.String("name", row.Name),
			attribute.Int("resolution", row.Alphabet.Resolution),
			attribute.String("symmetry", row.Alphabet.Symmetry.String()),
		)
		rows[i] = &rowTracker{span: rowSpan, remaining: s.Columns}
	}

	readyChan := make(chan int)
	var wg sync.WaitGroup
	for workerID := 0; workerID < e.workers; workerID++ {
		wg.Add(1)
		go e.worker(ctx, layout, readyChan, rows, workerID, &wg)
	}

feed:
	for i := range layout.Cells {
		select {
		case <-ctx.Done():
			break feed
		case readyChan <- i:
		}
	}
	close(readyChan)
	wg.Wait()

	if ctx.Err() != nil {
		for _, r := range rows {
			r.abort(ctx.Err())
		}
		logger.Warn("Executor cancelled.", "error", ctx.Err())
		return nil, ctx.Err()
	}

	logger.Debug("Executor finished.", "cells", len(layout.Cells))
	return layout, nil
}

// worker is the processing loop for a single concurrent worker.
func (e *Executor) worker(ctx context.Context, layout *sheet.Layout, readyChan <-chan int, rows []*rowTracker, workerID int, wg *sync.WaitGroup) {
	defer wg.Done()
	ctx = ctxlog.With(ctx, "workerID", workerID)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Worker started.")

	for i := range readyChan {
		if ctx.Err() != nil {
			continue
		}
		layout.Fill(i)
		rows[layout.Cells[i].Row].done()
	}
	logger.Debug("Worker finished.")
}

// rowTracker ends a row's span once all of its cells are generated.
type rowTracker struct {
	mu        sync.Mutex
	span      trace.Span
	remaining int
	ended     bool
}

func (r *rowTracker) done() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.remaining--
	if r.remaining == 0 && !r.ended {
		r.ended = true
		tracing.EndSpan(r.span, nil)
	}
}

func (r *rowTracker) abort(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.ended {
		r.ended = true
		tracing.EndSpan(r.span, err)
	}
}
