package errors

import (
	"encoding/json"
)

// ErrorResponse represents the JSON structure for serialized errors.
// It provides a flat representation without exposing internal error chains.
//
// The wrapped error chain is intentionally excluded: chains may contain
// absolute filesystem paths or other details that should not leave the
// process boundary unreviewed.
type ErrorResponse struct {
	// Code is the error code identifying the type of error.
	Code string `json:"code"`

	// Message is the human-readable error message.
	Message string `json:"message"`

	// Classification indicates whether the error is retryable or permanent.
	Classification string `json:"classification"`

	// Context contains optional metadata about the error.
	// Omitted from JSON if empty.
	Context map[string]interface{} `json:"context,omitempty"`
}

// ToJSON converts any error to an ErrorResponse suitable for JSON serialization.
// Returns nil if err is nil.
//
// For Error instances, extracts code, message, classification, and context.
// For standard errors, uses CodeUnknown, ClassificationPermanent, and the
// error message.
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	code := GetCode(err)
	classification := GetClassification(err)

	message := err.Error()
	var context map[string]interface{}

	var tagged Error
	if As(err, &tagged) {
		message = tagged.Message()
		context = tagged.Context()
	}

	return &ErrorResponse{
		Code:           string(code),
		Message:        message,
		Classification: string(classification),
		Context:        context,
	}
}

// MarshalJSON implements json.Marshaler for taggedError.
// This allows Error instances to be marshaled directly with json.Marshal
// without calling ToJSON explicitly.
func (e *taggedError) MarshalJSON() ([]byte, error) {
	return json.Marshal(ToJSON(e))
}
