package collapse

import "bytes"

// Terminator is the line terminator removed before comparison.
const Terminator = '\n'

// Strip returns line without a single trailing "\n". Any other trailing
// bytes, a carriage return included, are kept.
func Strip(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == Terminator {
		return line[:n-1]
	}
	return line
}

// Equal reports whether a and b compare equal after stripping the terminator.
func Equal(a, b []byte) bool {
	return bytes.Equal(Strip(a), Strip(b))
}
