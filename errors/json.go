package errors

import (
	"encoding/json"
)

// ErrorResponse is the flat JSON representation of an error, used by the
// command-line tool when printing failures in machine-readable form.
//
// The wrapped error chain is reduced to its string form in Cause.
type ErrorResponse struct {
	// Code is the error code identifying the type of error.
	Code string `json:"code"`

	// Category is the cause category of the code.
	Category string `json:"category"`

	// Op is the operation that failed. Omitted from JSON if empty.
	Op string `json:"op,omitempty"`

	// Path is the path the operation acted on. Omitted from JSON if empty.
	Path string `json:"path,omitempty"`

	// Message is the human-readable error message.
	Message string `json:"message"`

	// Cause is the text of the underlying error. Omitted from JSON if empty.
	Cause string `json:"cause,omitempty"`

	// Context contains optional metadata about the error.
	// Omitted from JSON if empty.
	Context map[string]interface{} `json:"context,omitempty"`
}

// ToJSON converts any error to an ErrorResponse suitable for JSON serialization.
// Returns nil if err is nil.
//
// For OpError instances, extracts code, category, operation, path, message and context.
// For standard errors, uses CodeUnknown and the error message.
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	var opErr OpError
	if !As(err, &opErr) {
		return &ErrorResponse{
			Code:     string(CodeUnknown),
			Category: string(CategoryInternal),
			Message:  err.Error(),
		}
	}

	return responseOf(opErr)
}

func responseOf(e OpError) *ErrorResponse {
	resp := &ErrorResponse{
		Code:     string(e.Code()),
		Category: string(e.Category()),
		Op:       e.Op(),
		Path:     e.Path(),
		Message:  e.Message(),
		Context:  e.Context(),
	}
	if cause := e.Unwrap(); cause != nil {
		resp.Cause = cause.Error()
	}
	return resp
}

// MarshalJSON implements json.Marshaler for opError.
func (e *opError) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(responseOf(e))
	if err != nil {
		return nil, &opError{
			code:    CodeInternal,
			message: "failed to marshal error response",
			cause:   err,
		}
	}
	return data, nil
}
