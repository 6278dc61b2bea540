package testutil

import (
	"context"
	"strings"
)

// LineSource is an in-memory line iterator over a string. Every line keeps
// its "\n"; a final line without one is yielded as-is.
type LineSource struct {
	lines  []string
	next   int
	closed int
}

// Lines returns a LineSource over input.
func Lines(input string) *LineSource {
	var lines []string
	for _, s := range strings.SplitAfter(input, "\n") {
		if s != "" {
			lines = append(lines, s)
		}
	}
	return &LineSource{lines: lines}
}

// Len returns the number of lines in the source.
func (s *LineSource) Len() int { return len(s.lines) }

func (s *LineSource) Next(ctx context.Context) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	if s.next >= len(s.lines) {
		return nil, false, nil
	}
	line := []byte(s.lines[s.next])
	s.next++
	return line, true, nil
}

func (s *LineSource) Close() error {
	s.closed++
	return nil
}

// Closed reports how many times Close was called.
func (s *LineSource) Closed() int { return s.closed }
