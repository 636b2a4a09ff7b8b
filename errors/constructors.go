package errors

import "fmt"

// New creates a new OpError with the given code and message.
//
// Example:
//
//	err := errors.New(errors.CodeNotRegular, "path is a directory")
func New(code ErrorCode, message string) OpError {
	return &opError{
		code:    code,
		message: message,
	}
}

// Newf creates a new OpError with a formatted message.
//
// Example:
//
//	err := errors.Newf(errors.CodeInvalidPattern, "pattern %q is malformed", pattern)
func Newf(code ErrorCode, format string, args ...interface{}) OpError {
	return New(code, fmt.Sprintf(format, args...))
}

// WithOp attaches the operation name and path to an error.
// Returns a new OpError; the code, message, context and cause are preserved.
//
// If err is not an OpError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	return errors.WithOp(err, "copy_file", src)
func WithOp(err error, op, path string) OpError {
	if err == nil {
		return nil
	}

	e := convert(err)
	e.op = op
	e.path = path
	return e
}
