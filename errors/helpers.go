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
// Returns CodeUnknown if the error is nil or not an OpError.
//
// The code is taken from the outermost OpError in the chain.
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

	var opErr OpError
	if stderrors.As(err, &opErr) {
		return opErr.Code()
	}

	return CodeUnknown
}

// GetCategory extracts the cause Category from an error.
// Returns CategoryInternal if the error is nil or not an OpError.
func GetCategory(err error) Category {
	return CategoryOf(GetCode(err))
}

// GetOp extracts the operation name from an error.
// Returns an empty string if the error is nil or carries no operation.
func GetOp(err error) string {
	var opErr OpError
	if err != nil && stderrors.As(err, &opErr) {
		return opErr.Op()
	}
	return ""
}

// IsNotFound reports whether err was caused by a missing file or directory.
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}
