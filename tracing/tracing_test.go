package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace/noop"
)

func TestInitWithoutEndpoint(t *testing.T) {
	shutdown, err := Init(context.Background(), "", "test")
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSpans(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr)))
	defer SetTracerProvider(noop.NewTracerProvider())

	_, span := StartSpan(context.Background(), "scan", attribute.String(AttrQuery, "ways"))
	EndSpan(span, nil, "")
	_, span = StartSpan(context.Background(), "scan")
	EndSpan(span, errors.New("boom"), "decode_error")

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "scan", spans[0].Name())
	assert.Equal(t, codes.Ok, spans[0].Status().Code)
	assert.Contains(t, spans[0].Attributes(), attribute.String(AttrQuery, "ways"))
	assert.Equal(t, codes.Error, spans[1].Status().Code)
	assert.Contains(t, spans[1].Attributes(), attribute.String(AttrErrorKind, "decode_error"))
}
