package testutil

import "bytes"

// FailingWriter accepts Budget writes, then fails every write with Err.
type FailingWriter struct {
	Budget int
	Err    error

	buf bytes.Buffer
}

func (w *FailingWriter) Write(p []byte) (int, error) {
	if w.Budget <= 0 {
		return 0, w.Err
	}
	w.Budget--
	return w.buf.Write(p)
}

// String returns everything written before the first failure.
func (w *FailingWriter) String() string { return w.buf.String() }

// FailingReader fails every read with Err.
type FailingReader struct {
	Err error
}

func (r FailingReader) Read([]byte) (int, error) { return 0, r.Err }
