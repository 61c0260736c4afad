package errors

import "fmt"

// New creates a new Error with the given code and message.
// The error classification is determined by the error code using default mappings.
//
// Example:
//
//	err := errors.New(errors.CodeInvalidPath, "path must be absolute")
func New(code ErrorCode, message string) Error {
	return &taggedError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        message,
		context:        nil,
		cause:          nil,
	}
}

// Newf creates a new Error with a formatted message.
// The error classification is determined by the error code using default mappings.
//
// Example:
//
//	err := errors.Newf(errors.CodeAlreadyExists, "destination %q exists", dest)
func Newf(code ErrorCode, format string, args ...interface{}) Error {
	return &taggedError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        fmt.Sprintf(format, args...),
		context:        nil,
		cause:          nil,
	}
}
