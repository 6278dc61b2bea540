package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/kbukum/unic/component"
)

// TestComponent extends component.Component with testing-specific lifecycle methods.
type TestComponent interface {
	component.Component

	// Reset restores the component to its initial state.
	Reset(ctx context.Context) error

	// Snapshot captures the current state of the component.
	Snapshot(ctx context.Context) (interface{}, error)

	// Restore restores the component to a previously captured state.
	Restore(ctx context.Context, snapshot interface{}) error
}

// Events is an ordered, concurrency-safe log of lifecycle events shared by
// several Recorders.
type Events struct {
	mu   sync.Mutex
	list []string
}

// Add appends an event.
func (e *Events) Add(event string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.list = append(e.list, event)
}

// List returns a copy of the events in order.
func (e *Events) List() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.list...)
}

// Recorder is a TestComponent that records "start <name>" and "stop <name>"
// events and reports healthy only while started.
type Recorder struct {
	name     string
	events   *Events
	startErr error
	stopErr  error

	mu      sync.Mutex
	started bool
	starts  int
	stops   int
}

// NewRecorder creates a Recorder. events may be nil.
func NewRecorder(name string, events *Events) *Recorder {
	return &Recorder{name: name, events: events}
}

// FailStart makes Start return err.
func (r *Recorder) FailStart(err error) *Recorder {
	r.startErr = err
	return r
}

// FailStop makes Stop return err after stopping.
func (r *Recorder) FailStop(err error) *Recorder {
	r.stopErr = err
	return r
}

func (r *Recorder) Name() string { return r.name }

func (r *Recorder) Start(_ context.Context) error {
	r.record("start")
	r.mu.Lock()
	defer r.mu.Unlock()
	r.starts++
	if r.startErr != nil {
		return r.startErr
	}
	r.started = true
	return nil
}

func (r *Recorder) Stop(_ context.Context) error {
	r.record("stop")
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stops++
	r.started = false
	return r.stopErr
}

func (r *Recorder) Health(_ context.Context) component.Health {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.started {
		return component.Health{Name: r.name, Status: component.StatusStopped}
	}
	return component.Health{Name: r.name, Status: component.StatusHealthy}
}

// Started reports whether the recorder is currently started.
func (r *Recorder) Started() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.started
}

// Calls returns how many times Start and Stop were called.
func (r *Recorder) Calls() (starts, stops int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.starts, r.stops
}

type recorderState struct {
	started       bool
	starts, stops int
}

func (r *Recorder) Reset(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started, r.starts, r.stops = false, 0, 0
	return nil
}

func (r *Recorder) Snapshot(_ context.Context) (interface{}, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return recorderState{started: r.started, starts: r.starts, stops: r.stops}, nil
}

func (r *Recorder) Restore(_ context.Context, snapshot interface{}) error {
	s, ok := snapshot.(recorderState)
	if !ok {
		return fmt.Errorf("testutil: unexpected snapshot %T", snapshot)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started, r.starts, r.stops = s.started, s.starts, s.stops
	return nil
}

func (r *Recorder) record(op string) {
	if r.events != nil {
		r.events.Add(op + " " + r.name)
	}
}
