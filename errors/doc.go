// Package errors provides the structured error kinds used across unic.
//
// Every failure the filter can report is an *AppError carrying an ErrorCode,
// a human-readable message and an optional cause. The command layer turns an
// error into the single stderr line and exit status with UserMessage and
// ExitCode.
package errors
