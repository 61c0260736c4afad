package errors

import "errors"

// WithContext adds a single context field to an error.
// Returns a new Error with the context field added.
// Existing context fields are preserved.
//
// If err is not an Error, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	err := errors.New(errors.CodeOSFailure, "move failed")
//	err = errors.WithContext(err, "destination", dst)
func WithContext(err error, key string, value interface{}) Error {
	if err == nil {
		return nil
	}

	tagged := asTagged(err)

	// Create new context with existing fields plus new field
	newContext := make(map[string]interface{})
	if existing := tagged.Context(); existing != nil {
		for k, v := range existing {
			newContext[k] = v
		}
	}
	newContext[key] = value

	return &taggedError{
		code:           tagged.Code(),
		classification: tagged.Classification(),
		message:        tagged.Message(),
		context:        newContext,
		cause:          tagged.Unwrap(),
	}
}

// WithContextMap adds multiple context fields to an error.
// Returns a new Error with the context fields merged.
// Existing context fields are preserved; new fields override existing ones
// with the same key.
//
// If err is not an Error, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
func WithContextMap(err error, ctx map[string]interface{}) Error {
	if err == nil {
		return nil
	}

	tagged := asTagged(err)

	newContext := make(map[string]interface{})
	if existing := tagged.Context(); existing != nil {
		for k, v := range existing {
			newContext[k] = v
		}
	}
	for k, v := range ctx {
		newContext[k] = v
	}

	return &taggedError{
		code:           tagged.Code(),
		classification: tagged.Classification(),
		message:        tagged.Message(),
		context:        newContext,
		cause:          tagged.Unwrap(),
	}
}

// asTagged extracts the Error from err's chain, converting plain errors
// to a CodeUnknown Error that wraps the original.
func asTagged(err error) Error {
	var tagged Error
	if errors.As(err, &tagged) {
		return tagged
	}
	return &taggedError{
		code:           CodeUnknown,
		classification: ClassificationPermanent,
		message:        err.Error(),
		context:        nil,
		cause:          err,
	}
}
