package errors

import (
	"errors"
	"fmt"
)

// Wrap wraps an error with additional context while preserving the original error.
// The wrapped error is accessible via Unwrap() and compatible with errors.Is and errors.As.
//
// If the wrapped error is an Error, its classification is preserved.
// Otherwise, the default classification for the error code is used.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := os.Rename(src, dst); err != nil {
//	    return errors.Wrap(err, errors.CodeOSFailure, "rename failed")
//	}
func Wrap(err error, code ErrorCode, message string) Error {
	if err == nil {
		return nil
	}

	// Preserve classification if wrapping a tagged Error
	classification := getDefaultClassification(code)
	var tagged Error
	if errors.As(err, &tagged) {
		classification = tagged.Classification()
	}

	return &taggedError{
		code:           code,
		classification: classification,
		message:        message,
		context:        nil,
		cause:          err,
	}
}

// Wrapf wraps an error with a formatted message while preserving the original error.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := os.Symlink(target, link); err != nil {
//	    return errors.Wrapf(err, errors.CodeOSFailure, "symlink %s", link)
//	}
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) Error {
	if err == nil {
		return nil
	}

	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps an error and attaches context metadata in a single operation.
//
// Returns nil if err is nil.
//
// Example:
//
//	err = errors.WrapWithContext(err, errors.CodeOSFailure, "copy failed", map[string]interface{}{
//	    "source":      src,
//	    "destination": dst,
//	})
func WrapWithContext(err error, code ErrorCode, message string, ctx map[string]interface{}) Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, code, message)
	return WithContextMap(wrapped, ctx)
}
