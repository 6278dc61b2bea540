package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
)

// InitMeter installs an OTLP/HTTP meter provider as the global provider.
// The caller must shut it down on exit.
func InitMeter(ctx context.Context, cfg Config, res *resource.Resource) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if cfg.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(cfg.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)
	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds the instruments recorded during a collapse pass.
// A nil *Metrics records nothing.
type Metrics struct {
	linesRead    metric.Int64Counter
	runsEmitted  metric.Int64Counter
	runLength    metric.Int64Histogram
	bytesWritten metric.Int64Counter
	passTotal    metric.Int64Counter
	passDuration metric.Float64Histogram
	errorTotal   metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	linesRead, err := meter.Int64Counter("unic.lines.read",
		metric.WithDescription("Lines read from the source"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating unic.lines.read counter: %w", err)
	}

	runsEmitted, err := meter.Int64Counter("unic.runs.emitted",
		metric.WithDescription("Runs written to the sink"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating unic.runs.emitted counter: %w", err)
	}

	runLength, err := meter.Int64Histogram("unic.run.length",
		metric.WithDescription("Number of lines per emitted run"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating unic.run.length histogram: %w", err)
	}

	bytesWritten, err := meter.Int64Counter("unic.bytes.written",
		metric.WithDescription("Bytes written to the sink"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating unic.bytes.written counter: %w", err)
	}

	passTotal, err := meter.Int64Counter("unic.pass.total",
		metric.WithDescription("Completed passes by status"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating unic.pass.total counter: %w", err)
	}

	passDuration, err := meter.Float64Histogram("unic.pass.duration",
		metric.WithDescription("Duration of a pass in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating unic.pass.duration histogram: %w", err)
	}

	errorTotal, err := meter.Int64Counter("unic.error.total",
		metric.WithDescription("Pass failures by error code"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating unic.error.total counter: %w", err)
	}

	return &Metrics{
		linesRead:    linesRead,
		runsEmitted:  runsEmitted,
		runLength:    runLength,
		bytesWritten: bytesWritten,
		passTotal:    passTotal,
		passDuration: passDuration,
		errorTotal:   errorTotal,
	}, nil
}

// RecordLine counts one line read.
func (m *Metrics) RecordLine(ctx context.Context) {
	if m == nil {
		return
	}
	m.linesRead.Add(ctx, 1)
}

// RecordRun counts one emitted run of length count.
func (m *Metrics) RecordRun(ctx context.Context, count int) {
	if m == nil {
		return
	}
	m.runsEmitted.Add(ctx, 1)
	m.runLength.Record(ctx, int64(count))
}

// RecordBytes counts n bytes written.
func (m *Metrics) RecordBytes(ctx context.Context, n int) {
	if m == nil || n == 0 {
		return
	}
	m.bytesWritten.Add(ctx, int64(n))
}

// RecordPass records a finished pass.
func (m *Metrics) RecordPass(ctx context.Context, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.passTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
	m.passDuration.Record(ctx, d.Seconds())
}

// RecordError records a pass failure by code.
func (m *Metrics) RecordError(ctx context.Context, code string) {
	if m == nil {
		return
	}
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("code", code)))
}
