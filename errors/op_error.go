package errors

import "fmt"

// opError is the concrete implementation of OpError.
// It is private to enforce construction through package functions.
type opError struct {
	op      string
	path    string
	code    ErrorCode
	message string
	context map[string]interface{}
	cause   error
}

// Error returns the string representation of the error.
// Format: "[CODE] message", prefixed with "op path: " when an operation is
// attached and suffixed with ": cause" when a cause is present.
func (e *opError) Error() string {
	s := fmt.Sprintf("[%s] %s", e.code, e.message)
	if e.cause != nil {
		s = fmt.Sprintf("%s: %v", s, e.cause)
	}
	switch {
	case e.op != "" && e.path != "":
		return fmt.Sprintf("%s %s: %s", e.op, e.path, s)
	case e.op != "":
		return fmt.Sprintf("%s: %s", e.op, s)
	default:
		return s
	}
}

// Code returns the error code.
func (e *opError) Code() ErrorCode {
	return e.code
}

// Category returns the cause category derived from the code.
func (e *opError) Category() Category {
	return CategoryOf(e.code)
}

// Op returns the operation name.
func (e *opError) Op() string {
	return e.op
}

// Path returns the path the operation acted on.
func (e *opError) Path() string {
	return e.path
}

// Message returns the error message.
func (e *opError) Message() string {
	return e.message
}

// Context returns a copy of the context map.
// Returns nil if no context has been attached.
func (e *opError) Context() map[string]interface{} {
	return copyContext(e.context)
}

// Unwrap returns the wrapped error for standard library compatibility.
func (e *opError) Unwrap() error {
	return e.cause
}

// clone returns a shallow copy of e with its own context map.
func (e *opError) clone() *opError {
	c := *e
	c.context = copyContext(e.context)
	return &c
}

func copyContext(ctx map[string]interface{}) map[string]interface{} {
	if ctx == nil {
		return nil
	}
	out := make(map[string]interface{}, len(ctx))
	for k, v := range ctx {
		out[k] = v
	}
	return out
}
