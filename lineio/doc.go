// Package lineio binds unic's line source and line sink to standard streams
// or files.
//
// The source path "-" selects standard input; any other path is opened as a
// file. An empty sink path selects standard output; any other path is
// created (truncated) as a file. Lines are passed through byte-for-byte,
// terminators included.
package lineio
