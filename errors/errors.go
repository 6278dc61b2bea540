package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// Is reports whether target is an *AppError with the same code.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// --- Constructors ---

// SourceOpenFailed reports that the input at path could not be opened.
func SourceOpenFailed(path string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeSourceOpen, Message: fmt.Sprintf("%s: %v", path, bareCause(cause)),
		Details: map[string]any{"path": path}, Cause: cause,
	}
}

// SinkOpenFailed reports that the output at path could not be created.
func SinkOpenFailed(path string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeSinkOpen, Message: fmt.Sprintf("%s: %v", path, bareCause(cause)),
		Details: map[string]any{"path": path}, Cause: cause,
	}
}

// ReadFailed reports a failure while reading input.
func ReadFailed(cause error) *AppError {
	return &AppError{
		Code: ErrCodeRead, Message: fmt.Sprintf("read error: %v", cause),
		Cause: cause,
	}
}

// WriteFailed reports a failure while writing or flushing output.
func WriteFailed(cause error) *AppError {
	return &AppError{
		Code: ErrCodeWrite, Message: fmt.Sprintf("write error: %v", cause),
		Cause: cause,
	}
}

// InvalidConfig reports a configuration field that failed validation.
func InvalidConfig(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	msg := reason
	if field != "" {
		msg = field + ": " + reason
	}
	return &AppError{
		Code: ErrCodeInvalidConfig, Message: msg, Details: details,
	}
}

// Validation creates an INVALID_CONFIG error from an already formatted message.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidConfig, Message: message}
}

// Internal wraps an unexpected error.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: fmt.Sprintf("unexpected error: %v", cause),
		Cause: cause,
	}
}

// bareCause drops the operation and path from *fs.PathError so the path is
// not repeated in messages that already lead with it.
func bareCause(err error) error {
	var pe *fs.PathError
	if stderrors.As(err, &pe) {
		return pe.Err
	}
	return err
}
