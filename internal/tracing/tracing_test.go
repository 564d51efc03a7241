package tracing

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func TestProvider_ExportsSpans(t *testing.T) {
	buf := &bytes.Buffer{}
	p, err := New("symbolgen", "test", buf)
	require.NoError(t, err)

	ctx, span := StartSpan(context.Background(), p.Tracer(), "render", attribute.Int("cells", 4))
	_, child := StartSpan(ctx, p.Tracer(), "row")
	EndSpan(child, errors.New("row failed"))
	EndSpan(span, nil)

	require.NoError(t, p.Shutdown(context.Background()))

	out := buf.String()
	assert.Contains(t, out, `"Name":"render"`)
	assert.Contains(t, out, `"Name":"row"`)
	assert.Contains(t, out, "row failed")
	assert.Contains(t, out, "cells")
}

func TestProvider_NilWriterIsNoop(t *testing.T) {
	p, err := New("symbolgen", "test", nil)
	require.NoError(t, err)

	_, span := StartSpan(context.Background(), p.Tracer(), "render")
	assert.False(t, span.SpanContext().IsValid())
	EndSpan(span, nil)
	assert.NoError(t, p.Shutdown(context.Background()))
}
