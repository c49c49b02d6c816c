package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExporterOptions(t *testing.T) {
	assert.Len(t, exporterOptions("http://collector:4318"), 1)
	assert.Len(t, exporterOptions("collector:4318"), 2)
}

func TestInit_WithEndpointURL(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4318")

	shutdown, err := Init(context.Background(), "ledger-integrations-api", "test")
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = shutdown(ctx)
}

func TestInit_Disabled(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	shutdown, err := Init(context.Background(), "ledger-integrations-api", "test")
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}
