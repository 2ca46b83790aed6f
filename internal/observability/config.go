package observability

import (
	"strings"

	"github.com/armora/quote/internal/config"
	"github.com/spf13/viper"
)

// Config holds observability settings. Defaults suit an interactive CLI:
// quiet console logs on stderr and no span export unless OTEL_ENABLED is set.
type Config struct {
	ServiceName string
	Environment string
	Version     string

	LogLevel  string
	LogFormat string

	OtelEnabled          bool
	OtelExporterEndpoint string
	OtelExporterProtocol string
	OtelSamplingRatio    float64
}

func LoadConfig(app config.Config) Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("LOG_LEVEL", "warn")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("OTEL_ENABLED", false)
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", app.OTLPEndpoint)
	v.SetDefault("OTEL_EXPORTER_OTLP_PROTOCOL", "grpc")
	// one invocation is one trace, so keep all of them by default
	v.SetDefault("OTEL_SAMPLING_RATIO", 1.0)

	serviceName := strings.TrimSpace(app.AppName)
	if serviceName == "" {
		serviceName = "armora-quote"
	}

	return Config{
		ServiceName:          serviceName,
		Environment:          strings.TrimSpace(app.Environment),
		Version:              strings.TrimSpace(app.AppVersion),
		LogLevel:             normalize(v.GetString("LOG_LEVEL")),
		LogFormat:            normalize(v.GetString("LOG_FORMAT")),
		OtelEnabled:          v.GetBool("OTEL_ENABLED"),
		OtelExporterEndpoint: strings.TrimSpace(v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT")),
		OtelExporterProtocol: normalize(v.GetString("OTEL_EXPORTER_OTLP_PROTOCOL")),
		OtelSamplingRatio:    clampRatio(v.GetFloat64("OTEL_SAMPLING_RATIO")),
	}
}

// Debug reports whether verbose diagnostics such as error stack traces are on.
func (c Config) Debug() bool {
	return c.LogLevel == "debug"
}

func normalize(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

func clampRatio(r float64) float64 {
	switch {
	case r < 0:
		return 0
	case r > 1:
		return 1
	default:
		return r
	}
}
