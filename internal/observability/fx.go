package observability

import (
	"github.com/armora/quote/internal/observability/logger"
	"github.com/armora/quote/internal/observability/metrics"
	"github.com/armora/quote/pkg/telemetry"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides the process logger, the global tracer provider, the otel
// quote metrics and the prometheus quiz counters.
var Module = fx.Module("observability",
	fx.Provide(
		LoadConfig,
		newLogger,
		newTracerProvider,
		newMetricsConfig,
		metrics.NewProvider,
		metrics.New,
		metrics.ProvideQuizMetrics,
	),
	// the provider installs itself as the otel global; services only call otel.Tracer
	fx.Invoke(func(*sdktrace.TracerProvider) {}),
)

func newLogger(lc fx.Lifecycle, cfg Config) (*zap.Logger, error) {
	return logger.New(lc, logger.Config{
		ServiceName:         cfg.ServiceName,
		Environment:         cfg.Environment,
		Version:             cfg.Version,
		Level:               cfg.LogLevel,
		Format:              cfg.LogFormat,
		IncludeCaller:       cfg.Debug(),
		IncludeStackOnError: cfg.Debug(),
	})
}

func newTracerProvider(lc fx.Lifecycle, cfg Config, log *zap.Logger) (*sdktrace.TracerProvider, error) {
	return telemetry.NewTracerProvider(lc, telemetry.TracingConfig{
		Enabled:          cfg.OtelEnabled,
		ServiceName:      cfg.ServiceName,
		ServiceVersion:   cfg.Version,
		Environment:      cfg.Environment,
		ExporterEndpoint: cfg.OtelExporterEndpoint,
		ExporterProtocol: cfg.OtelExporterProtocol,
		SamplingRatio:    cfg.OtelSamplingRatio,
	}, log.Named("telemetry"))
}

func newMetricsConfig(cfg Config) metrics.Config {
	return metrics.Config{
		Enabled:          cfg.OtelEnabled,
		ExporterEndpoint: cfg.OtelExporterEndpoint,
		ExporterProtocol: cfg.OtelExporterProtocol,
		ServiceName:      cfg.ServiceName,
		Environment:      cfg.Environment,
	}
}
