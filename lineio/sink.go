package lineio

import (
	"bufio"
	"io"
	"os"

	"github.com/kbukum/unic/errors"
)

// Sink accepts rendered output. Writes are buffered until Close.
type Sink interface {
	io.Writer
	// Close flushes buffered output and releases the underlying file, if any.
	Close() error
}

// WriterSink buffers writes to an io.Writer.
type WriterSink struct {
	name   string
	w      *bufio.Writer
	closer io.Closer
	closed bool
}

// NewWriterSink wraps w. closer, if non-nil, is closed by Close.
func NewWriterSink(name string, w io.Writer, closer io.Closer) *WriterSink {
	return &WriterSink{name: name, w: bufio.NewWriter(w), closer: closer}
}

// OpenSink creates path for writing. An empty path writes to stdout, which
// is flushed but never closed.
func OpenSink(path string, stdout io.Writer) (*WriterSink, error) {
	if path == "" {
		return NewWriterSink("stdout", stdout, nil), nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.SinkOpenFailed(path, err)
	}
	return NewWriterSink(path, f, f), nil
}

// Name returns "stdout" or the file path.
func (s *WriterSink) Name() string { return s.name }

// Write buffers p.
func (s *WriterSink) Write(p []byte) (int, error) {
	if s.closed {
		return 0, os.ErrClosed
	}
	return s.w.Write(p)
}

// Close flushes buffered output and closes the underlying file. It is safe
// to call more than once; only the first call does any work.
func (s *WriterSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	flushErr := s.w.Flush()
	var closeErr error
	if s.closer != nil {
		closeErr = s.closer.Close()
	}
	if flushErr != nil {
		return errors.WriteFailed(flushErr).WithDetail("sink", s.name)
	}
	if closeErr != nil {
		return errors.WriteFailed(closeErr).WithDetail("sink", s.name)
	}
	return nil
}
