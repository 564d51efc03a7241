// Package tracing wraps the OpenTelemetry SDK so the rest of the code base
// only deals with a Provider that can hand out tracers and be shut down.
// Spans are exported as JSON through the stdout exporter to any writer; when
// no writer is configured a noop provider is used and spans cost nothing.
package tracing

import (
	"context"
	"io"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// InstrumentationName identifies spans produced by this module.
const InstrumentationName = "github.com/specialistvlad/symbolgen"

// Provider owns the tracer provider for one App.
type Provider struct {
	tracer   trace.Tracer
	shutdown func(context.Context) error
}

// New returns a provider exporting to w. A nil writer yields a noop provider.
func New(serviceName, serviceVersion string, w io.Writer) (*Provider, error) {
	if w == nil {
		return Noop(), nil
	}

	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return nil, err
	}
	res := resource.NewSchemaless(
		attribute.String("service.name", serviceName),
		attribute.String("service.version", serviceVersion),
	)
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithResource(res),
	)
	return &Provider{tracer: tp.Tracer(InstrumentationName), shutdown: tp.Shutdown}, nil
}

// Noop returns a provider whose spans are discarded.
func Noop() *Provider {
	return &Provider{
		tracer:   noop.NewTracerProvider().Tracer(InstrumentationName),
		shutdown: func(context.Context) error { return nil },
	}
}

// Tracer returns the provider's tracer.
func (p *Provider) Tracer() trace.Tracer {
	return p.tracer
}

// Shutdown flushes and stops the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	return p.shutdown(ctx)
}

// StartSpan starts a span named name on tracer with the given attributes.
func StartSpan(ctx context.Context, tracer trace.Tracer, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// EndSpan records err on span, if any, and ends it.
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
