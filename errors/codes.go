// Package errors provides the error handling system for pathkit.
// It extends Go's standard error handling with structured error codes, retry
// classification, context preservation, and JSON serialization, so that
// callers match on a stable tag instead of parsing message strings.
package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// Path construction errors.

	// CodeInvalidPath indicates a path could not be constructed because the
	// input was empty or not absolute.
	CodeInvalidPath ErrorCode = "INVALID_PATH"

	// Filesystem entry errors.

	// CodeNotFound indicates no entry exists at the requested path.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeAlreadyExists indicates an entry already exists at the destination
	// and the operation was not forced.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// CodeNotDirectory indicates a directory operation was attempted on a
	// path whose entry is not a directory.
	CodeNotDirectory ErrorCode = "NOT_DIRECTORY"

	// System errors.

	// CodeOSFailure indicates an OS-level filesystem call failed for a
	// reason other than the conditions above.
	CodeOSFailure ErrorCode = "OS_FAILURE"

	// CodeUnknown indicates an unclassified error.
	CodeUnknown ErrorCode = "UNKNOWN_ERROR"
)

// IsValid returns true if the error code is one of the defined constants.
func (c ErrorCode) IsValid() bool {
	switch c {
	case CodeInvalidPath, CodeNotFound, CodeAlreadyExists,
		CodeNotDirectory, CodeOSFailure, CodeUnknown:
		return true
	default:
		return false
	}
}

// String returns the string representation of the error code.
func (c ErrorCode) String() string {
	return string(c)
}
