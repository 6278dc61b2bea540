package observability

import (
	"context"
	stderrors "errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"

	"github.com/kbukum/unic/logger"
)

// Shutdown flushes and stops installed providers.
type Shutdown func(ctx context.Context) error

func noopShutdown(context.Context) error { return nil }

// Init installs OTLP meter and tracer providers when cfg is enabled and
// returns a function that flushes them. When disabled it installs nothing and
// returns a no-op Shutdown.
func Init(ctx context.Context, cfg Config, serviceName, serviceVersion string) (Shutdown, error) {
	if !cfg.Enabled() {
		return noopShutdown, nil
	}
	cfg.ApplyDefaults()
	otel.SetErrorHandler(otel.ErrorHandlerFunc(handleError))

	res, err := newResource(serviceName, serviceVersion)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	mp, err := InitMeter(ctx, cfg, res)
	if err != nil {
		return nil, err
	}
	tp, err := InitTracer(ctx, cfg, res)
	if err != nil {
		_ = mp.Shutdown(ctx)
		return nil, err
	}

	logger.Get("observability").Debug("telemetry initialized", logger.Fields(
		"endpoint", cfg.Endpoint,
		"interval", cfg.Interval.String(),
		"sample_rate", cfg.SampleRate,
	))

	return func(ctx context.Context) error {
		return stderrors.Join(tp.Shutdown(ctx), mp.Shutdown(ctx))
	}, nil
}

// handleError reports asynchronous export failures through the
// "observability" logger instead of the standard library log package.
func handleError(err error) {
	logger.Get("observability").Warn("telemetry export failed", logger.ErrorFields("export", err))
}

// newResource creates an OpenTelemetry resource with service metadata.
func newResource(serviceName, serviceVersion string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewSchemaless(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
		),
	)
}
