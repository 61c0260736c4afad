package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the ErrorCode from an error.
// Returns CodeUnknown if the error is nil or not an Error.
//
// This function handles the error chain and will extract the code from
// the outermost Error in the chain.
//
// Example:
//
//	if errors.GetCode(err) == errors.CodeNotFound {
//	    // Handle not found
//	}
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var tagged Error
	if stderrors.As(err, &tagged) {
		return tagged.Code()
	}

	return CodeUnknown
}

// HasCode reports whether err carries the given code.
// Returns false for nil errors.
func HasCode(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}
	return GetCode(err) == code
}

// GetClassification extracts the ErrorClassification from an error.
// Returns ClassificationPermanent if the error is nil or not an Error.
// This is a safe default that prevents inappropriate retry attempts.
func GetClassification(err error) ErrorClassification {
	if err == nil {
		return ClassificationPermanent
	}

	var tagged Error
	if stderrors.As(err, &tagged) {
		return tagged.Classification()
	}

	return ClassificationPermanent
}

// GetContext extracts the context map from an error.
// Returns nil if the error is nil, not an Error, or has no context.
func GetContext(err error) map[string]interface{} {
	if err == nil {
		return nil
	}

	var tagged Error
	if stderrors.As(err, &tagged) {
		return tagged.Context()
	}

	return nil
}

// Swallow discards err if it carries one of the given codes, returning nil.
// Any other error passes through unchanged. This supports call sites where
// a specific failure is an acceptable outcome, such as removing a path that
// may not exist:
//
//	err := errors.Swallow(doRemove(p), errors.CodeNotFound)
//
// A nil err returns nil.
func Swallow(err error, codes ...ErrorCode) error {
	if err == nil {
		return nil
	}
	for _, code := range codes {
		if HasCode(err, code) {
			return nil
		}
	}
	return err
}
