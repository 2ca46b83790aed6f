package metrics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Config configures the metrics provider.
type Config struct {
	Enabled          bool
	ExporterEndpoint string
	ExporterProtocol string
	ServiceName      string
	Environment      string
}

// Metrics exposes quote-engine instruments.
type Metrics struct {
	quotes      metric.Int64Counter
	unknownTier metric.Int64Counter
	venueQuotes metric.Int64Counter
	quoteValue  metric.Float64Histogram
}

// NewProvider configures and registers the meter provider.
func NewProvider(lc fx.Lifecycle, cfg Config, log *zap.Logger) (metric.MeterProvider, error) {
	if !cfg.Enabled {
		provider := noop.NewMeterProvider()
		otel.SetMeterProvider(provider)
		return provider, nil
	}

	exporter, err := newExporter(cfg.ExporterProtocol, cfg.ExporterEndpoint)
	if err != nil {
		return nil, err
	}

	reader := sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(10*time.Second))
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(provider)

	if lc != nil {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				if log != nil {
					log.Debug("shutting down meter provider")
				}
				return provider.Shutdown(ctx)
			},
		})
	}

	if log != nil {
		log.Debug("metrics initialized",
			zap.String("endpoint", cfg.ExporterEndpoint),
			zap.String("protocol", cfg.ExporterProtocol),
		)
	}

	return provider, nil
}

// New configures the domain metrics instruments.
func New(cfg Config, provider metric.MeterProvider) (*Metrics, error) {
	name := strings.TrimSpace(cfg.ServiceName)
	if name == "" {
		name = "armora-quote"
	}
	meter := provider.Meter(name)

	quotes, err := meter.Int64Counter("armora_quotes_total")
	if err != nil {
		return nil, err
	}
	unknownTier, err := meter.Int64Counter("armora_unknown_tier_total")
	if err != nil {
		return nil, err
	}
	venueQuotes, err := meter.Int64Counter("armora_venue_quotes_total")
	if err != nil {
		return nil, err
	}
	quoteValue, err := meter.Float64Histogram("armora_quote_final_price",
		metric.WithDescription("Final quoted price in whole currency units."),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		quotes:      quotes,
		unknownTier: unknownTier,
		venueQuotes: venueQuotes,
		quoteValue:  quoteValue,
	}, nil
}

// RecordQuote counts a priced quote and observes its final price.
func (m *Metrics) RecordQuote(ctx context.Context, mode, tierID string, finalPrice float64) {
	if m == nil {
		return
	}
	attrs := FilterAttributes(
		attribute.String("mode", strings.TrimSpace(mode)),
		attribute.String("tier", strings.TrimSpace(tierID)),
	)
	m.quotes.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.quoteValue.Record(ctx, finalPrice, metric.WithAttributes(attrs...))
}

// RecordUnknownTier counts quotes that hit the zero-breakdown sentinel.
func (m *Metrics) RecordUnknownTier(ctx context.Context, mode string) {
	if m == nil {
		return
	}
	attrs := FilterAttributes(attribute.String("mode", strings.TrimSpace(mode)))
	m.unknownTier.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordVenueQuote counts venue officer-block quotes.
func (m *Metrics) RecordVenueQuote(ctx context.Context, durationTier, riskType string) {
	if m == nil {
		return
	}
	attrs := FilterAttributes(
		attribute.String("duration_tier", strings.TrimSpace(durationTier)),
		attribute.String("risk_type", strings.TrimSpace(riskType)),
	)
	m.venueQuotes.Add(ctx, 1, metric.WithAttributes(attrs...))
}

func newExporter(protocol, endpoint string) (sdkmetric.Exporter, error) {
	protocol = strings.ToLower(strings.TrimSpace(protocol))
	switch protocol {
	case "http", "http/protobuf":
		opts := []otlpmetrichttp.Option{}
		if endpoint != "" {
			opts = append(opts, otlpmetrichttp.WithEndpoint(endpoint))
		}
		return otlpmetrichttp.New(context.Background(), opts...)
	case "grpc", "grpc/protobuf", "":
		opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithInsecure()}
		if endpoint != "" {
			opts = append(opts, otlpmetricgrpc.WithEndpoint(endpoint))
		}
		return otlpmetricgrpc.New(context.Background(), opts...)
	default:
		return nil, fmt.Errorf("unsupported OTLP protocol %q", protocol)
	}
}

var allowedLabelKeys = map[attribute.Key]struct{}{
	"mode":          {},
	"tier":          {},
	"duration_tier": {},
	"risk_type":     {},
	"reason":        {},
}

// FilterAttributes strips disallowed labels to keep metrics low-cardinality.
func FilterAttributes(attrs ...attribute.KeyValue) []attribute.KeyValue {
	filtered := make([]attribute.KeyValue, 0, len(attrs))
	for _, attr := range attrs {
		if _, ok := allowedLabelKeys[attr.Key]; !ok {
			continue
		}
		filtered = append(filtered, attr)
	}
	return filtered
}
