package lineio

import (
	"context"
	"io"
	"sync"

	"github.com/kbukum/unic/component"
)

// Component names used for registration.
const (
	SourceName = "source"
	SinkName   = "sink"
)

// SourceComponent opens the configured source on Start and closes it on Stop.
type SourceComponent struct {
	path  string
	stdin io.Reader

	mu  sync.RWMutex
	src *ReaderSource
}

// NewSourceComponent creates a source bound to path ("-" for stdin).
func NewSourceComponent(path string, stdin io.Reader) *SourceComponent {
	return &SourceComponent{path: path, stdin: stdin}
}

// Name implements component.Component.
func (c *SourceComponent) Name() string { return SourceName }

// Start opens the source.
func (c *SourceComponent) Start(_ context.Context) error {
	src, err := OpenSource(c.path, c.stdin)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.src = src
	c.mu.Unlock()
	return nil
}

// Stop closes the source.
func (c *SourceComponent) Stop(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.src == nil {
		return nil
	}
	err := c.src.Close()
	c.src = nil
	return err
}

// Health reports whether the source is open.
func (c *SourceComponent) Health(_ context.Context) component.Health {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.src == nil {
		return component.Health{Name: SourceName, Status: component.StatusStopped}
	}
	return component.Health{Name: SourceName, Status: component.StatusHealthy, Message: c.src.Name()}
}

// Describe implements component.Describable.
func (c *SourceComponent) Describe() component.Description {
	details := "file " + c.path
	if c.path == StdinPath {
		details = "stdin"
	}
	return component.Description{Name: "Line source", Type: "source", Details: details}
}

// Source returns the open source, or nil before Start and after Stop.
func (c *SourceComponent) Source() *ReaderSource {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.src
}

// SinkComponent creates the configured sink on Start and flushes and closes
// it on Stop.
type SinkComponent struct {
	path   string
	stdout io.Writer

	mu   sync.RWMutex
	sink *WriterSink
}

// NewSinkComponent creates a sink bound to path ("" for stdout).
func NewSinkComponent(path string, stdout io.Writer) *SinkComponent {
	return &SinkComponent{path: path, stdout: stdout}
}

// Name implements component.Component.
func (c *SinkComponent) Name() string { return SinkName }

// Start creates the sink.
func (c *SinkComponent) Start(_ context.Context) error {
	sink, err := OpenSink(c.path, c.stdout)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.sink = sink
	c.mu.Unlock()
	return nil
}

// Stop flushes and closes the sink. A flush failure is returned.
func (c *SinkComponent) Stop(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sink == nil {
		return nil
	}
	err := c.sink.Close()
	c.sink = nil
	return err
}

// Health reports whether the sink is open.
func (c *SinkComponent) Health(_ context.Context) component.Health {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.sink == nil {
		return component.Health{Name: SinkName, Status: component.StatusStopped}
	}
	return component.Health{Name: SinkName, Status: component.StatusHealthy, Message: c.sink.Name()}
}

// Describe implements component.Describable.
func (c *SinkComponent) Describe() component.Description {
	details := "file " + c.path
	if c.path == "" {
		details = "stdout"
	}
	return component.Description{Name: "Line sink", Type: "sink", Details: details}
}

// Sink returns the open sink, or nil before Start and after Stop.
func (c *SinkComponent) Sink() *WriterSink {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sink
}
