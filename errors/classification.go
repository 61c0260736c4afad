package errors

// ErrorClassification indicates whether an error should trigger a retry.
// Callers running against flaky media (network mounts, removable storage)
// use this to decide if an operation is worth reattempting.
type ErrorClassification string

const (
	// ClassificationRetryable indicates temporary failures that may succeed on retry.
	// Example: a transient I/O error from a network-backed filesystem.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates failures that will not succeed on retry.
	// Examples: invalid path input, missing entries, existing destinations.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps error codes to their default classification.
// This determines the default retry behavior for each error type.
var defaultClassifications = map[ErrorCode]ErrorClassification{
	// Permanent errors (will not succeed on retry)
	CodeInvalidPath:   ClassificationPermanent,
	CodeNotFound:      ClassificationPermanent,
	CodeAlreadyExists: ClassificationPermanent,
	CodeNotDirectory:  ClassificationPermanent,
	CodeUnknown:       ClassificationPermanent,

	// OS failures may be transient (EINTR, EAGAIN, network mounts), so they
	// default to retryable and callers decide how many attempts make sense.
	CodeOSFailure: ClassificationRetryable,
}

// getDefaultClassification returns the default classification for an error code.
// Unknown codes default to permanent, which is the safe choice: it prevents
// inappropriate retry attempts.
func getDefaultClassification(code ErrorCode) ErrorClassification {
	if classification, ok := defaultClassifications[code]; ok {
		return classification
	}
	return ClassificationPermanent
}
