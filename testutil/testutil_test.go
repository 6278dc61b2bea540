package testutil

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kbukum/unic/component"
)

func TestRecorderLifecycle(t *testing.T) {
	var events Events
	r := NewRecorder("source", &events)
	ctx := context.Background()

	if h := r.Health(ctx); h.Status != component.StatusStopped {
		t.Errorf("expected stopped before start, got %s", h.Status)
	}
	cleanup, err := Setup(r)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if !r.Started() || r.Health(ctx).Status != component.StatusHealthy {
		t.Error("expected started and healthy")
	}
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if got := strings.Join(events.List(), ","); got != "start source,stop source" {
		t.Errorf("events = %q", got)
	}
	if starts, stops := r.Calls(); starts != 1 || stops != 1 {
		t.Errorf("calls = %d/%d", starts, stops)
	}
}

func TestRecorderFailures(t *testing.T) {
	startErr := errors.New("open failed")
	if _, err := Setup(NewRecorder("a", nil).FailStart(startErr)); !errors.Is(err, startErr) {
		t.Errorf("expected start error, got %v", err)
	}

	stopErr := errors.New("flush failed")
	r := NewRecorder("b", nil).FailStop(stopErr)
	cleanup, err := Setup(r)
	if err != nil {
		t.Fatal(err)
	}
	if err := cleanup(); !errors.Is(err, stopErr) {
		t.Errorf("expected stop error, got %v", err)
	}
	if r.Started() {
		t.Error("recorder should be stopped even when Stop fails")
	}
}

func TestRecorderSnapshotRestore(t *testing.T) {
	r := NewRecorder("sink", nil)
	h := T(t)
	h.Setup(r)
	snap := h.Snapshot(r)
	h.Reset(r)
	if r.Started() {
		t.Error("expected reset to clear started")
	}
	h.Restore(r, snap)
	if !r.Started() {
		t.Error("expected restore to bring back started")
	}
	if err := r.Restore(context.Background(), "bogus"); err == nil {
		t.Error("expected error for foreign snapshot")
	}
}

func TestFailingWriter(t *testing.T) {
	cause := errors.New("disk full")
	w := &FailingWriter{Budget: 1, Err: cause}
	if _, err := w.Write([]byte("ok")); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if _, err := w.Write([]byte("no")); !errors.Is(err, cause) {
		t.Errorf("expected cause, got %v", err)
	}
	if w.String() != "ok" {
		t.Errorf("buffer = %q", w.String())
	}
}

func TestFailingReader(t *testing.T) {
	cause := errors.New("eio")
	if _, err := (FailingReader{Err: cause}).Read(make([]byte, 1)); !errors.Is(err, cause) {
		t.Errorf("expected cause, got %v", err)
	}
}

func TestWriteAndReadFile(t *testing.T) {
	dir := t.TempDir()
	path := WriteFile(t, dir, filepath.Join("nested", "in.txt"), "a\n")
	if got := ReadFile(t, path); got != "a\n" {
		t.Errorf("ReadFile = %q", got)
	}
}

func TestLines(t *testing.T) {
	src := Lines("a\n\nb")
	if src.Len() != 3 {
		t.Fatalf("Len = %d, want 3", src.Len())
	}
	var got []string
	for {
		line, ok, err := src.Next(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			break
		}
		got = append(got, string(line))
	}
	if strings.Join(got, "|") != "a\n|\n|b" {
		t.Errorf("lines = %q", got)
	}
	_ = src.Close()
	if src.Closed() != 1 {
		t.Errorf("Closed = %d, want 1", src.Closed())
	}
}

func TestLinesCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := Lines("a\n").Next(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
