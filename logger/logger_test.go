package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"
)

func jsonLogger(level string, buf *bytes.Buffer) *Logger {
	return NewWithWriter(&Config{Level: level, Format: "json"}, "unic", buf)
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	line := strings.TrimSpace(buf.String())
	if line == "" {
		t.Fatal("expected a log line, got none")
	}
	var m map[string]interface{}
	if err := json.Unmarshal([]byte(line), &m); err != nil {
		t.Fatalf("invalid JSON log line %q: %v", line, err)
	}
	return m
}

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "test-svc" {
		t.Errorf("expected service 'test-svc', got %q", l.service)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	var buf bytes.Buffer
	l := jsonLogger("invalid-level", &buf)
	l.Info("hello")
	if buf.Len() == 0 {
		t.Error("invalid level should fall back to info")
	}
}

func TestDisabledLevelWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	l := jsonLogger(LevelDisabled, &buf)
	l.Error("should not appear")
	l.Debug("nor this")
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := jsonLogger("warn", &buf)
	l.Info("dropped")
	if buf.Len() != 0 {
		t.Errorf("info should be filtered at warn, got %q", buf.String())
	}
	l.Warn("kept")
	m := decodeLine(t, &buf)
	if m["message"] != "kept" {
		t.Errorf("expected message 'kept', got %v", m["message"])
	}
}

func TestJSONFieldsAndService(t *testing.T) {
	var buf bytes.Buffer
	l := jsonLogger("debug", &buf)
	l.Debug("pass complete", Fields(FieldLines, 6, FieldRuns, 3))
	m := decodeLine(t, &buf)
	if m[FieldService] != "unic" {
		t.Errorf("expected service field, got %v", m[FieldService])
	}
	if m[FieldLines] != float64(6) || m[FieldRuns] != float64(3) {
		t.Errorf("unexpected fields %v", m)
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	cl := jsonLogger("info", &buf).WithComponent("collapse")
	if cl.service != "unic" {
		t.Errorf("service should be preserved, got %q", cl.service)
	}
	cl.Info("x")
	m := decodeLine(t, &buf)
	if m[FieldComponent] != "collapse" {
		t.Errorf("expected component field, got %v", m[FieldComponent])
	}
}

func TestWithContextCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	ctx := ContextWithCorrelationID(context.Background(), "abc123")
	if CorrelationID(ctx) != "abc123" {
		t.Fatalf("expected correlation id round trip")
	}
	jsonLogger("info", &buf).WithContext(ctx).Info("x")
	m := decodeLine(t, &buf)
	if m[FieldCorrelationID] != "abc123" {
		t.Errorf("expected correlation_id, got %v", m[FieldCorrelationID])
	}
}

func TestWithContextWithoutID(t *testing.T) {
	l := NewDefault("test")
	if l.WithContext(context.Background()) != l {
		t.Error("expected the same logger when ctx carries no correlation id")
	}
}

func TestWithFieldsAndError(t *testing.T) {
	var buf bytes.Buffer
	jsonLogger("info", &buf).
		WithFields(map[string]interface{}{"key": "value"}).
		WithError(fmt.Errorf("boom")).
		Error("failed")
	m := decodeLine(t, &buf)
	if m["key"] != "value" {
		t.Errorf("expected key=value, got %v", m["key"])
	}
	if m["error"] != "boom" {
		t.Errorf("expected error=boom, got %v", m["error"])
	}
}

func TestInitAndGlobal(t *testing.T) {
	defer SetGlobalLogger(nil)
	Init(&Config{Level: "debug", Format: "json"})
	if GetGlobalLogger() == nil {
		t.Fatal("expected global logger to be set after Init")
	}
	if !GetGlobalLogger().logger.Debug().Enabled() {
		t.Error("expected Init to apply the debug level")
	}

	l := NewDefault("custom")
	SetGlobalLogger(l)
	if GetGlobalLogger() != l {
		t.Error("expected SetGlobalLogger to set the global logger")
	}
}

func TestGetGlobalLoggerDefault(t *testing.T) {
	SetGlobalLogger(nil)
	if GetGlobalLogger() == nil {
		t.Fatal("expected default global logger to be created")
	}
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: "info", Format: "console", NoColor: true}, "unic", &buf)
	l.Warn("careful")
	out := buf.String()
	if !strings.Contains(out, "[WRN]") || !strings.Contains(out, "careful") {
		t.Errorf("unexpected console output %q", out)
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Level != LevelDisabled {
		t.Errorf("expected level %q, got %q", LevelDisabled, cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected format 'console', got %q", cfg.Format)
	}
	if cfg.Output != "stderr" {
		t.Errorf("expected output 'stderr', got %q", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("expected Timestamp to be true")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "info", Format: "json", Output: "stderr"}, false},
		{"valid disabled", Config{Level: "disabled", Format: "console", Output: "stderr"}, false},
		{"invalid level", Config{Level: "bad", Format: "json", Output: "stderr"}, true},
		{"invalid format", Config{Level: "info", Format: "xml", Output: "stderr"}, true},
		{"invalid output", Config{Level: "info", Format: "json", Output: "file"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestRegisterAndGet(t *testing.T) {
	defer Reset()
	l := NewDefault("custom-component")
	Register("my-component", l)

	if Get("my-component") != l {
		t.Error("expected Get to return the registered logger")
	}
	Reset()
	if Get("my-component") == l {
		t.Error("expected Reset to drop registered loggers")
	}
}

func TestFields(t *testing.T) {
	tests := []struct {
		name     string
		input    []interface{}
		expected map[string]interface{}
	}{
		{"key-value pairs", []interface{}{"op", "save", "id", 42}, map[string]interface{}{"op": "save", "id": 42}},
		{"odd number of args", []interface{}{"op", "save", "trailing"}, map[string]interface{}{"op": "save"}},
		{"non-string key skipped", []interface{}{123, "value", "key", "val"}, map[string]interface{}{"key": "val"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Fields(tc.input...)
			if len(result) != len(tc.expected) {
				t.Errorf("expected %d fields, got %d", len(tc.expected), len(result))
			}
			for k, v := range tc.expected {
				if result[k] != v {
					t.Errorf("Fields[%q] = %v, expected %v", k, result[k], v)
				}
			}
		})
	}
}

func TestErrorAndDurationFields(t *testing.T) {
	ef := ErrorFields("open", fmt.Errorf("something broke"))
	if ef[FieldOperation] != "open" || ef[FieldError] != "something broke" {
		t.Errorf("unexpected error fields %v", ef)
	}
	df := DurationFields("process", 150*time.Millisecond)
	if df[FieldDuration] != int64(150) {
		t.Errorf("expected duration 150, got %v", df[FieldDuration])
	}
}
