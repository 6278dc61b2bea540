package collapse

import (
	"context"
	stderrors "errors"
	"io"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/unic/errors"
	"github.com/kbukum/unic/logger"
	"github.com/kbukum/unic/observability"
	"github.com/kbukum/unic/pipeline"
)

const tracerName = "github.com/kbukum/unic/collapse"

// Stats summarizes a completed pass.
type Stats struct {
	Lines int
	Runs  int
	Bytes int64
}

// Processor runs a single collapse pass from a line source to a sink.
type Processor struct {
	showCount bool
	log       *logger.Logger
	metrics   *observability.Metrics
	tracer    trace.Tracer
}

// Option configures a Processor.
type Option func(*Processor)

// WithShowCount prefixes every emitted line with its run length.
func WithShowCount(show bool) Option {
	return func(p *Processor) { p.showCount = show }
}

// WithLogger sets the logger used for pass diagnostics.
func WithLogger(l *logger.Logger) Option {
	return func(p *Processor) { p.log = l }
}

// WithMetrics records line, run and byte counters on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(p *Processor) { p.metrics = m }
}

// WithTracer sets the tracer used for the pass span.
func WithTracer(t trace.Tracer) Option {
	return func(p *Processor) { p.tracer = t }
}

// New creates a Processor. Without options it emits lines without counts,
// logs through the "collapse" logger and traces through the global provider.
func New(opts ...Option) *Processor {
	p := &Processor{}
	for _, opt := range opts {
		opt(p)
	}
	if p.log == nil {
		p.log = logger.Get("collapse")
	}
	if p.tracer == nil {
		p.tracer = otel.Tracer(tracerName)
	}
	return p
}

// Process reads every line from src and writes one rendered line per run to
// sink. It stops at the first read or write error; output already written
// stays written. src is closed before Process returns.
func (p *Processor) Process(ctx context.Context, src pipeline.Iterator[[]byte], sink io.Writer) (Stats, error) {
	ctx, span := p.tracer.Start(ctx, "collapse.process",
		trace.WithAttributes(attribute.Bool("collapse.show_count", p.showCount)))
	defer span.End()

	start := time.Now()
	var stats Stats

	lines := pipeline.Tap(pipeline.From(src), func(ctx context.Context, _ []byte) error {
		stats.Lines++
		p.metrics.RecordLine(ctx)
		return nil
	})
	runs := pipeline.Tap(Runs(lines), func(ctx context.Context, r Run) error {
		stats.Runs++
		p.metrics.RecordRun(ctx, r.Count)
		return nil
	})
	rendered := pipeline.Map(runs, func(_ context.Context, r Run) ([]byte, error) {
		return r.Render(p.showCount), nil
	})

	err := pipeline.Drain(rendered, func(ctx context.Context, b []byte) error {
		n, err := sink.Write(b)
		stats.Bytes += int64(n)
		p.metrics.RecordBytes(ctx, n)
		if err != nil {
			return errors.WriteFailed(err)
		}
		return nil
	}).Run(ctx)
	err = classify(err)

	elapsed := time.Since(start)
	span.SetAttributes(
		attribute.Int("collapse.lines", stats.Lines),
		attribute.Int("collapse.runs", stats.Runs),
		attribute.Int64("collapse.bytes", stats.Bytes),
	)
	fields := logger.Fields(
		logger.FieldLines, stats.Lines,
		logger.FieldRuns, stats.Runs,
		logger.FieldBytes, stats.Bytes,
		logger.FieldDuration, elapsed.Milliseconds(),
	)
	log := p.log.WithContext(ctx)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		p.metrics.RecordError(ctx, errorCode(err))
		p.metrics.RecordPass(ctx, "error", elapsed)
		log.WithError(err).Error("collapse pass failed", fields)
		return stats, err
	}
	p.metrics.RecordPass(ctx, "ok", elapsed)
	log.Debug("collapse pass complete", fields)
	return stats, nil
}

// classify gives bare source errors a READ_FAILED code. Context errors and
// errors that already carry a code pass through.
func classify(err error) error {
	if err == nil || errors.IsAppError(err) {
		return err
	}
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return errors.ReadFailed(err)
}

func errorCode(err error) string {
	if appErr, ok := errors.AsAppError(err); ok {
		return string(appErr.Code)
	}
	return "CANCELED"
}
