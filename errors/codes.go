package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Open errors, reported before any line is processed.
const (
	// ErrCodeSourceOpen indicates the input could not be opened.
	ErrCodeSourceOpen ErrorCode = "SOURCE_OPEN_FAILED"
	// ErrCodeSinkOpen indicates the output could not be created.
	ErrCodeSinkOpen ErrorCode = "SINK_OPEN_FAILED"
)

// Stream errors, reported mid-pass.
const (
	// ErrCodeRead indicates reading the next line failed.
	ErrCodeRead ErrorCode = "READ_FAILED"
	// ErrCodeWrite indicates writing or flushing output failed.
	ErrCodeWrite ErrorCode = "WRITE_FAILED"
)

// Configuration errors
const (
	// ErrCodeInvalidConfig indicates a configuration value failed validation.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// exitCodes maps codes to process exit statuses. Every failure currently
// exits with 1; the table keeps the mapping in one place.
var exitCodes = map[ErrorCode]int{
	ErrCodeSourceOpen:    1,
	ErrCodeSinkOpen:      1,
	ErrCodeRead:          1,
	ErrCodeWrite:         1,
	ErrCodeInvalidConfig: 1,
	ErrCodeInternal:      1,
}

// ExitCodeFor returns the process exit status for a code.
func ExitCodeFor(code ErrorCode) int {
	if c, ok := exitCodes[code]; ok {
		return c
	}
	return 1
}
