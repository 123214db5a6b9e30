package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/MiguelCav2025/sitecav/internal/platform/config"
	"github.com/MiguelCav2025/sitecav/internal/platform/telemetry"
)

// Setup installs global providers, so these tests do not run in parallel.

func TestSetup_Disabled(t *testing.T) {
	p, err := telemetry.Setup(context.Background(), config.TelemetryConfig{Enabled: false}, "local")

	require.NoError(t, err)
	assert.Nil(t, p.Tracer)
	assert.Nil(t, p.Meter)
	assert.Nil(t, p.Metrics)
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestSetup_Exporters(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.TelemetryConfig
	}{
		{name: "stdout", cfg: config.TelemetryConfig{Exporter: telemetry.ExporterStdout}},
		{name: "otlp http", cfg: config.TelemetryConfig{Exporter: telemetry.ExporterOTLP, Endpoint: "http://localhost:4318"}},
		{name: "otlp https", cfg: config.TelemetryConfig{Exporter: telemetry.ExporterOTLP, Endpoint: "https://collector.cav.test"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			tt.cfg.Enabled = true
			tt.cfg.ServiceName = "sitecav-test"

			p, err := telemetry.Setup(ctx, tt.cfg, "test")
			require.NoError(t, err)
			t.Cleanup(func() {
				// No collector runs in unit tests, so OTLP flushes may fail.
				_ = p.Shutdown(ctx)
			})

			require.NotNil(t, p.Tracer)
			require.NotNil(t, p.Meter)
			require.NotNil(t, p.Metrics)
			assert.Same(t, p.Tracer, otel.GetTracerProvider())
			assert.ElementsMatch(t, []string{"traceparent", "tracestate", "baggage"}, otel.GetTextMapPropagator().Fields())
		})
	}
}

func TestSetup_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.TelemetryConfig
	}{
		{name: "unsupported exporter", cfg: config.TelemetryConfig{Exporter: "zipkin"}},
		{name: "otlp without endpoint", cfg: config.TelemetryConfig{Exporter: telemetry.ExporterOTLP}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.Enabled = true
			tt.cfg.ServiceName = "sitecav-test"

			_, err := telemetry.Setup(context.Background(), tt.cfg, "")

			require.Error(t, err)
		})
	}
}

func TestNewMetrics(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	m, err := telemetry.NewMetrics(mp, "sitecav-test")
	require.NoError(t, err)

	m.ServerRequestDuration.Record(ctx, 0.01)
	m.ServerRequestTotal.Add(ctx, 1)
	m.ClientRequestDuration.Record(ctx, 0.02)
	m.ClientRequestTotal.Add(ctx, 1)
	m.ReorderCommitTotal.Add(ctx, 1)
	m.UploadTotal.Add(ctx, 1)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)
	assert.Equal(t, "sitecav-test", rm.ScopeMetrics[0].Scope.Name)

	names := make([]string, 0, len(rm.ScopeMetrics[0].Metrics))
	for _, md := range rm.ScopeMetrics[0].Metrics {
		names = append(names, md.Name)
	}
	assert.ElementsMatch(t, []string{
		"http.server.request.duration",
		"http.server.request.total",
		"http.client.request.duration",
		"http.client.request.total",
		"content.reorder.commit.total",
		"content.upload.total",
	}, names)
}
