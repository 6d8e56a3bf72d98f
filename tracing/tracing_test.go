package tracing

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestInit_File(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "span_test.txt")

	require.NoError(t, Init("philo", "0.0.1", fname))
	f, ok := output.(*os.File)
	require.True(t, ok, "trace file must be owned by the provider")

	_, span := StartSpan(context.Background(), "philosopher.dine")
	span.WithAttributes(map[string]string{"k": "v"}).WithInt("seat", 3)
	span.AddEvent("forks")
	EndSpan(span, nil)

	require.NoError(t, Shutdown(context.Background()))
	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.Contains(t, string(data), "philosopher.dine")

	_, err = f.Write([]byte("late"))
	assert.ErrorIs(t, err, os.ErrClosed)
	assert.Nil(t, provider)
	assert.NoError(t, Shutdown(context.Background()))
}

func TestInitWithExporter(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	require.NoError(t, InitWithExporter("philo", "0.0.1", exporter))
	defer func() { assert.NoError(t, Shutdown(context.Background())) }()

	second := tracetest.NewInMemoryExporter()
	require.NoError(t, InitWithExporter("philo", "0.0.1", second), "an installed provider wins")

	_, span := StartSpan(context.Background(), "philosopher.dine")
	span.WithInt("seat", 1)
	EndSpan(span, nil)
	_, failed := StartSpan(context.Background(), "philosopher.dine")
	EndSpan(failed, errors.New("cancelled"))

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "philosopher.dine", spans[0].Name)
	assert.Equal(t, codes.Ok, spans[0].Status.Code)
	assert.Equal(t, codes.Error, spans[1].Status.Code)
	assert.Empty(t, second.GetSpans())
}

func TestNilSpan(t *testing.T) {
	var span *Span
	assert.Nil(t, span.WithAttributes(map[string]string{"k": "v"}))
	assert.Nil(t, span.WithInt("k", 1))
	span.AddEvent("noop")
	span.SetStatus(nil)
	EndSpan(span, nil)
}
