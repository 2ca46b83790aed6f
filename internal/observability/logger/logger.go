package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/armora/quote/pkg/telemetry/correlation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config configures the zap logger. Output defaults to stderr so that command
// results on stdout stay machine-readable.
type Config struct {
	ServiceName string
	Environment string
	Version     string
	Level       string
	Format      string
	Output      io.Writer

	IncludeCaller       bool
	IncludeStackOnError bool
}

// New builds the process logger and syncs it when the app stops. A CLI run is
// short-lived, so entries are never sampled.
func New(lc fx.Lifecycle, cfg Config) (*zap.Logger, error) {
	level := zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if raw := strings.TrimSpace(cfg.Level); raw != "" {
		if err := level.UnmarshalText([]byte(raw)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", raw, err)
		}
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	core := zapcore.NewCore(newEncoder(cfg.Format), zapcore.Lock(zapcore.AddSync(out)), level)

	var options []zap.Option
	if cfg.IncludeCaller {
		options = append(options, zap.AddCaller())
	}
	if cfg.IncludeStackOnError {
		options = append(options, zap.AddStacktrace(zapcore.ErrorLevel))
	}

	serviceName := strings.TrimSpace(cfg.ServiceName)
	if serviceName == "" {
		serviceName = "armora-quote"
	}
	fields := []zap.Field{zap.String("service", serviceName)}
	if env := strings.TrimSpace(cfg.Environment); env != "" {
		fields = append(fields, zap.String("env", env))
	}
	if version := strings.TrimSpace(cfg.Version); version != "" {
		fields = append(fields, zap.String("version", version))
	}

	logger := zap.New(core, options...).With(fields...)

	if lc != nil {
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				_ = logger.Sync()
				return nil
			},
		})
	}
	return logger, nil
}

// newEncoder picks console output for humans by default and JSON for log
// shippers.
func newEncoder(format string) zapcore.Encoder {
	if strings.EqualFold(strings.TrimSpace(format), "json") {
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.TimeKey = "ts"
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewJSONEncoder(encCfg)
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	return zapcore.NewConsoleEncoder(encCfg)
}

// WithContext adds the run scope (correlation id, tier, quiz session) and the
// active span ids to base.
func WithContext(ctx context.Context, base *zap.Logger) *zap.Logger {
	if ctx == nil || base == nil {
		return base
	}

	scope := correlation.FromContext(ctx)
	fields := make([]zap.Field, 0, 5)
	if scope.ID != "" {
		fields = append(fields, zap.String("correlation_id", scope.ID))
	}
	if scope.TierID != "" {
		fields = append(fields, zap.String("tier", scope.TierID))
	}
	if scope.QuizSession != "" {
		fields = append(fields, zap.String("quiz_session_id", scope.QuizSession))
	}
	if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
		fields = append(fields,
			zap.String("trace_id", sc.TraceID().String()),
			zap.String("span_id", sc.SpanID().String()),
		)
	}
	if len(fields) == 0 {
		return base
	}
	return base.With(fields...)
}
