package errors

import (
	"errors"
	"fmt"
)

// Wrap wraps an error with a code and message while preserving the original error.
// The wrapped error is accessible via Unwrap() and compatible with errors.Is and errors.As.
//
// If the wrapped error is an OpError, its operation and path are preserved.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := fsys.MkdirAll(dir, 0o755); err != nil {
//	    return errors.Wrap(err, errors.CodeInvalidPath, "cannot create parent directory")
//	}
func Wrap(err error, code ErrorCode, message string) OpError {
	return WrapWithContext(err, code, message, nil)
}

// Wrapf wraps an error with a formatted message while preserving the original error.
//
// Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) OpError {
	if err == nil {
		return nil
	}

	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps an error and attaches context metadata in a single operation.
// The context map is copied to prevent external mutation.
//
// Returns nil if err is nil.
//
// Example:
//
//	return errors.WrapWithContext(err, errors.CodeEncoding, "content is not valid UTF-8", map[string]interface{}{
//	    "charset": detected,
//	})
func WrapWithContext(err error, code ErrorCode, message string, ctx map[string]interface{}) OpError {
	if err == nil {
		return nil
	}

	e := &opError{
		code:    code,
		message: message,
		context: copyContext(ctx),
		cause:   err,
	}

	var inner OpError
	if errors.As(err, &inner) {
		e.op = inner.Op()
		e.path = inner.Path()
	}

	return e
}
