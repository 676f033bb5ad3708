// Package observability configures process-wide structured logging.
//
// The text and json formats write slog records directly. The otel format
// routes them through the OpenTelemetry log SDK so they can be shipped to a
// collector; OTLP endpoints are taken from the standard OTEL_EXPORTER_OTLP_*
// environment variables.
package observability

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/contrib/processors/minsev"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutlog"
	"go.opentelemetry.io/otel/log/global"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
)

// ServiceName is reported as service.name on OpenTelemetry log records.
const ServiceName = "eliqonline"

const instrumentationScope = "github.com/florianilch/eliqonline"

// Options selects the logging pipeline.
type Options struct {
	Level    slog.Level
	Format   string    // text, json or otel
	Exporter string    // stdout, otlphttp or otlpgrpc; otel format only
	Writer   io.Writer // defaults to os.Stderr
}

// ShutdownFunc flushes and releases the logging pipeline.
type ShutdownFunc func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// Instrument installs the default slog logger described by opts.
// The returned ShutdownFunc must be called before exit to flush buffered records.
func Instrument(ctx context.Context, opts Options) (ShutdownFunc, error) {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	handlerOpts := &slog.HandlerOptions{Level: opts.Level}

	switch opts.Format {
	case "", "text":
		slog.SetDefault(slog.New(slog.NewTextHandler(w, handlerOpts)))
		return noopShutdown, nil
	case "json":
		slog.SetDefault(slog.New(slog.NewJSONHandler(w, handlerOpts)))
		return noopShutdown, nil
	case "otel":
		return instrumentOTel(ctx, opts.Level, opts.Exporter, w)
	default:
		return nil, fmt.Errorf("unsupported log format: %q", opts.Format)
	}
}

func instrumentOTel(ctx context.Context, level slog.Level, exporterName string, w io.Writer) (ShutdownFunc, error) {
	exporter, err := newExporter(ctx, exporterName, w)
	if err != nil {
		return nil, fmt.Errorf("creating %s log exporter: %w", exporterName, err)
	}

	res, err := resource.Merge(resource.Default(), resource.NewSchemaless(
		attribute.String("service.name", ServiceName),
	))
	if err != nil {
		return nil, fmt.Errorf("building resource: %w", err)
	}

	processor := minsev.NewLogProcessor(sdklog.NewBatchProcessor(exporter), severityFor(level))
	provider := sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(processor),
	)
	global.SetLoggerProvider(provider)

	// Export failures cannot go through slog, they would re-enter the failing pipeline
	fallback := slog.New(slog.NewTextHandler(os.Stderr, nil))
	otel.SetErrorHandler(otel.ErrorHandlerFunc(func(err error) {
		fallback.Error("opentelemetry export failed", "error", err)
	}))

	slog.SetDefault(slog.New(otelslog.NewHandler(instrumentationScope, otelslog.WithLoggerProvider(provider))))

	return func(ctx context.Context) error {
		return errors.Join(provider.ForceFlush(ctx), provider.Shutdown(ctx))
	}, nil
}

func newExporter(ctx context.Context, name string, w io.Writer) (sdklog.Exporter, error) {
	switch name {
	case "", "stdout":
		return stdoutlog.New(stdoutlog.WithWriter(w))
	case "otlphttp":
		return otlploghttp.New(ctx)
	case "otlpgrpc":
		return otlploggrpc.New(ctx)
	default:
		return nil, fmt.Errorf("unsupported log exporter: %q", name)
	}
}

// severityFor maps a slog level onto the nearest OpenTelemetry minimum severity.
func severityFor(level slog.Level) minsev.Severity {
	switch {
	case level <= slog.LevelDebug:
		return minsev.SeverityDebug
	case level <= slog.LevelInfo:
		return minsev.SeverityInfo
	case level <= slog.LevelWarn:
		return minsev.SeverityWarn
	default:
		return minsev.SeverityError
	}
}
