// Package collapse implements the run-collapsing pass at the heart of unic.
//
// A run is a maximal sequence of adjacent lines that compare equal once a
// single trailing "\n" is removed. Each run is emitted exactly once, as the
// raw bytes of its first line, optionally prefixed with the run length
// right-aligned in a four-column field:
//
//	input  "a\na\nb\n"
//	plain  "a\nb\n"
//	count  "   2 a\n   1 b\n"
//
// Only the terminator is ignored. A carriage return before the newline is
// part of the content, so "a\r\n" and "a\n" start separate runs.
//
// The pass holds one pending run at a time (Collapser) and is exposed both as
// a pipeline operator (Runs) and as a complete source-to-sink pass
// (Processor).
package collapse
