package lineio

import (
	"bufio"
	"context"
	stderrors "errors"
	"io"
	"os"

	"github.com/kbukum/unic/errors"
)

// StdinPath is the source path that selects standard input.
const StdinPath = "-"

// Source yields raw lines one at a time. It has the shape of
// pipeline.Iterator[[]byte].
type Source interface {
	// Next returns the next line with its terminator, if it had one.
	// Returns (nil, false, nil) at end of input.
	Next(ctx context.Context) ([]byte, bool, error)
	// Close releases the underlying file, if any.
	Close() error
}

// ReaderSource reads newline-terminated lines from an io.Reader.
type ReaderSource struct {
	name   string
	r      *bufio.Reader
	closer io.Closer
	eof    bool
}

// NewReaderSource wraps r. closer, if non-nil, is closed by Close.
func NewReaderSource(name string, r io.Reader, closer io.Closer) *ReaderSource {
	return &ReaderSource{name: name, r: bufio.NewReader(r), closer: closer}
}

// OpenSource opens path for reading. StdinPath reads from stdin, which is
// never closed.
func OpenSource(path string, stdin io.Reader) (*ReaderSource, error) {
	if path == StdinPath {
		return NewReaderSource("stdin", stdin, nil), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.SourceOpenFailed(path, err)
	}
	return NewReaderSource(path, f, f), nil
}

// Name returns "stdin" or the file path.
func (s *ReaderSource) Name() string { return s.name }

// Next returns the next raw line. A final line without a terminator is
// returned as-is before end of input is reported.
func (s *ReaderSource) Next(ctx context.Context) ([]byte, bool, error) {
	if s.eof {
		return nil, false, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	line, err := s.r.ReadBytes('\n')
	if err != nil {
		if !stderrors.Is(err, io.EOF) {
			return nil, false, errors.ReadFailed(err).WithDetail("source", s.name)
		}
		s.eof = true
		if len(line) == 0 {
			return nil, false, nil
		}
	}
	return line, true, nil
}

// Close closes the underlying file. It is safe to call more than once.
func (s *ReaderSource) Close() error {
	if s.closer == nil {
		return nil
	}
	err := s.closer.Close()
	s.closer = nil
	return err
}
