package collapse

import (
	"bytes"
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/kbukum/unic/errors"
	"github.com/kbukum/unic/logger"
	"github.com/kbukum/unic/observability"
	"github.com/kbukum/unic/pipeline"
	"github.com/kbukum/unic/testutil"
)

func splitLines(input string) [][]byte {
	var lines [][]byte
	for _, s := range strings.SplitAfter(input, "\n") {
		if s != "" {
			lines = append(lines, []byte(s))
		}
	}
	return lines
}

func source(input string) pipeline.Iterator[[]byte] {
	return testutil.Lines(input)
}

func collectRuns(t *testing.T, input string) []Run {
	t.Helper()
	var runs []Run
	err := pipeline.Drain(Runs(pipeline.From(source(input))), func(_ context.Context, r Run) error {
		runs = append(runs, r)
		return nil
	}).Run(context.Background())
	if err != nil {
		t.Fatalf("Drain: %v", err)
	}
	return runs
}

func run(t *testing.T, input string, opts ...Option) (string, Stats) {
	t.Helper()
	var out bytes.Buffer
	stats, err := New(opts...).Process(context.Background(), source(input), &out)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	return out.String(), stats
}

func TestProcess(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		showCount bool
		want      string
	}{
		{"collapses runs", "a\na\nb\nb\n\n\n", false, "a\nb\n\n"},
		{"with counts", "a\na\nb\nb\n\n\n", true, "   2 a\n   2 b\n   2 \n"},
		{"unterminated last line joins run", "a\na", false, "a\n"},
		{"carriage return is content", "a\r\na\n", false, "a\r\na\n"},
		{"empty input", "", false, ""},
		{"empty input with counts", "", true, ""},
		{"single line", "x\n", true, "   1 x\n"},
		{"single unterminated line", "x", false, "x"},
		{"unterminated distinct tail", "a\nb", true, "   1 a\n   1 b"},
		{"non-adjacent duplicates kept", "a\nb\na\n", false, "a\nb\na\n"},
		{"leading blank lines", "\n\na\n", true, "   2 \n   1 a\n"},
		{"trailing space differs", "a \na\n", false, "a \na\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, _ := run(t, tc.input, WithShowCount(tc.showCount))
			if got != tc.want {
				t.Errorf("output = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestProcess_Stats(t *testing.T) {
	out, stats := run(t, "a\na\nb\nb\n\n\n")
	if stats.Lines != 6 || stats.Runs != 3 {
		t.Errorf("unexpected stats %+v", stats)
	}
	if stats.Bytes != int64(len(out)) {
		t.Errorf("Bytes = %d, want %d", stats.Bytes, len(out))
	}
}

func TestProcess_Idempotent(t *testing.T) {
	inputs := []string{"a\na\nb\nc\nc\nc\n", "x\ny\nx\n", "\n\n\n", "q\nq"}
	for _, in := range inputs {
		once, _ := run(t, in)
		twice, _ := run(t, once)
		if once != twice {
			t.Errorf("second pass changed output for %q: %q -> %q", in, once, twice)
		}
	}
}

func TestProcess_AllDistinctUnchanged(t *testing.T) {
	in := "one\ntwo\nthree\nfour\n"
	if got, _ := run(t, in); got != in {
		t.Errorf("distinct input changed: %q", got)
	}
}

func TestProcess_WideCount(t *testing.T) {
	in := strings.Repeat("x\n", 10000)
	got, stats := run(t, in, WithShowCount(true))
	if got != "10000 x\n" {
		t.Errorf("output = %q", got)
	}
	if stats.Lines != 10000 || stats.Runs != 1 {
		t.Errorf("unexpected stats %+v", stats)
	}
}

func TestRuns_CountsSumToLines(t *testing.T) {
	const input = "a\na\nb\nc\nc\nc\nd\na\na"
	total := 0
	for _, r := range collectRuns(t, input) {
		total += r.Count
	}
	if want := testutil.Lines(input).Len(); total != want {
		t.Errorf("sum of counts = %d, want %d", total, want)
	}
}

func TestRuns_Order(t *testing.T) {
	runs := collectRuns(t, "b\nb\na\nc\nc\n")
	want := []Run{{[]byte("b\n"), 2}, {[]byte("a\n"), 1}, {[]byte("c\n"), 2}}
	if len(runs) != len(want) {
		t.Fatalf("got %d runs, want %d", len(runs), len(want))
	}
	for i := range want {
		if string(runs[i].Line) != string(want[i].Line) || runs[i].Count != want[i].Count {
			t.Errorf("run %d = %+v, want %+v", i, runs[i], want[i])
		}
	}
}

func TestProcess_WriteFailureAborts(t *testing.T) {
	cause := stderrors.New("broken pipe")
	w := &testutil.FailingWriter{Budget: 1, Err: cause}
	stats, err := New().Process(context.Background(), source("a\nb\nc\n"), w)
	if !errors.HasCode(err, errors.ErrCodeWrite) {
		t.Fatalf("expected WRITE_FAILED, got %v", err)
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected cause to be preserved")
	}
	if w.String() != "a\n" {
		t.Errorf("output before failure = %q, want %q", w.String(), "a\n")
	}
	if stats.Bytes != 2 {
		t.Errorf("Bytes = %d, want 2", stats.Bytes)
	}
}

type failingIter struct {
	lines  [][]byte
	err    error
	closed bool
}

func (it *failingIter) Next(context.Context) ([]byte, bool, error) {
	if len(it.lines) == 0 {
		return nil, false, it.err
	}
	line := it.lines[0]
	it.lines = it.lines[1:]
	return line, true, nil
}

func (it *failingIter) Close() error {
	it.closed = true
	return nil
}

func TestProcess_ReadFailure(t *testing.T) {
	cause := stderrors.New("input/output error")
	src := &failingIter{lines: splitLines("a\nb\nb\n"), err: cause}
	var out bytes.Buffer
	stats, err := New().Process(context.Background(), src, &out)
	if !errors.HasCode(err, errors.ErrCodeRead) {
		t.Fatalf("expected READ_FAILED, got %v", err)
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected cause to be preserved")
	}
	if out.String() != "a\n" {
		t.Errorf("output = %q, want only the run closed before the failure", out.String())
	}
	if stats.Lines != 3 {
		t.Errorf("Lines = %d, want 3", stats.Lines)
	}
	if !src.closed {
		t.Error("source was not closed")
	}
}

func TestProcess_ReadFailureKeepsCode(t *testing.T) {
	coded := errors.ReadFailed(stderrors.New("bad sector")).WithDetail("source", "in.txt")
	src := &failingIter{err: coded}
	_, err := New().Process(context.Background(), src, &bytes.Buffer{})
	appErr, ok := errors.AsAppError(err)
	if !ok || appErr != coded {
		t.Errorf("expected the source's own error, got %v", err)
	}
}

func TestProcess_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	_, err := New().Process(ctx, source("a\n"), &out)
	if !stderrors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if errors.IsAppError(err) {
		t.Error("cancellation should not be classified as a read failure")
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestProcess_Metrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })
	m, err := observability.NewMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}

	run(t, "a\na\nb\n", WithMetrics(m), WithShowCount(true))

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}
	sums := make(map[string]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, metric := range sm.Metrics {
			if sum, ok := metric.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range sum.DataPoints {
					sums[metric.Name] += dp.Value
				}
			}
		}
	}
	want := map[string]int64{
		"unic.lines.read":    3,
		"unic.runs.emitted":  2,
		"unic.bytes.written": int64(len("   2 a\n   1 b\n")),
		"unic.pass.total":    1,
	}
	for name, v := range want {
		if sums[name] != v {
			t.Errorf("%s = %d, want %d", name, sums[name], v)
		}
	}
	if sums["unic.error.total"] != 0 {
		t.Errorf("unexpected error count %d", sums["unic.error.total"])
	}
}

func TestProcess_Span(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	run(t, "a\na\nb\n", WithTracer(tp.Tracer("test")))

	spans := sr.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	span := spans[0]
	if span.Name() != "collapse.process" {
		t.Errorf("span name = %q", span.Name())
	}
	attrs := make(map[string]int64)
	for _, kv := range span.Attributes() {
		if kv.Value.Type() == attribute.INT64 {
			attrs[string(kv.Key)] = kv.Value.AsInt64()
		}
	}
	if attrs["collapse.lines"] != 3 || attrs["collapse.runs"] != 2 {
		t.Errorf("unexpected span attributes %v", span.Attributes())
	}
}

func TestProcess_DebugLog(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&logger.Config{Level: "debug", Format: "json"}, "unic", &buf)
	run(t, "a\na\n", WithLogger(log))
	if !strings.Contains(buf.String(), "collapse pass complete") {
		t.Errorf("expected completion log, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), `"runs":1`) {
		t.Errorf("expected runs field, got %q", buf.String())
	}
}
