package errors

import (
	stderrors "errors"
)

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err wraps an AppError with the given code.
func HasCode(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}

// UserMessage returns the text shown to the user for err. For an AppError
// this is its message without the code; anything else is printed as-is.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if appErr, ok := AsAppError(err); ok {
		return appErr.Message
	}
	return err.Error()
}

// ExitCode returns the process exit status for err: 0 for nil, otherwise
// the status mapped from the error's code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if appErr, ok := AsAppError(err); ok {
		return ExitCodeFor(appErr.Code)
	}
	return 1
}
