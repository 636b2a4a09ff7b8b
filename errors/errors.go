package errors

// OpError extends the standard error interface with the structured information
// a file operation needs to report a failure.
//
// OpError carries the operation name and the path it acted on, an error code
// for categorization, the cause category used for diagnostics, contextual
// metadata, and compatibility with standard library error handling
// (errors.Is, errors.As, errors.Unwrap).
type OpError interface {
	error

	// Code returns the error code identifying the type of error.
	Code() ErrorCode

	// Category returns the cause category the code belongs to.
	Category() Category

	// Op returns the name of the operation that failed (e.g. "create_file").
	// Returns an empty string if no operation has been attached.
	Op() string

	// Path returns the path the operation acted on.
	// Returns an empty string if no path has been attached.
	Path() string

	// Message returns the human-readable error message.
	Message() string

	// Context returns attached metadata as a read-only map.
	// Returns nil if no context has been attached.
	Context() map[string]interface{}

	// Unwrap returns the wrapped error for errors.Is and errors.As compatibility.
	// Returns nil if this error does not wrap another error.
	Unwrap() error
}
