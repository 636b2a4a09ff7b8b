package errors

import (
	stderrors "errors"
	"io/fs"
	"syscall"
)

// defaultMessages holds the message used when an OS error is classified.
var defaultMessages = map[ErrorCode]string{
	CodeNotFound:      "no such file or directory",
	CodeAlreadyExists: "path already exists",
	CodePermission:    "permission denied",
	CodeInvalidPath:   "invalid path",
	CodeNotDirectory:  "path component is not a directory",
	CodeNotRegular:    "not a regular file",
	CodeNoSpace:       "no space left on device",
	CodeTooManyFiles:  "too many open files",
	CodeUnsupported:   "operation not supported",
	CodeUnknown:       "file system error",
}

// FromOS converts an error returned by a file system primitive into an OpError
// attributed to op and path.
//
// io/fs sentinel errors and common syscall errnos are mapped onto error codes;
// anything else becomes CodeUnknown. If err already is an OpError its code is
// kept and only a missing operation is filled in.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := fsys.Remove(path); err != nil {
//	    return errors.FromOS("delete_file", path, err)
//	}
func FromOS(op, path string, err error) OpError {
	if err == nil {
		return nil
	}

	if existing, ok := err.(OpError); ok {
		if existing.Op() != "" {
			return existing
		}
		return WithOp(existing, op, path)
	}

	code := classify(err)
	return &opError{
		op:      op,
		path:    path,
		code:    code,
		message: defaultMessages[code],
		cause:   err,
	}
}

// classify maps an OS error onto an error code.
func classify(err error) ErrorCode {
	switch {
	case stderrors.Is(err, fs.ErrNotExist):
		return CodeNotFound
	case stderrors.Is(err, fs.ErrExist):
		return CodeAlreadyExists
	case stderrors.Is(err, fs.ErrPermission), stderrors.Is(err, syscall.EROFS):
		return CodePermission
	case stderrors.Is(err, syscall.ENOTDIR):
		return CodeNotDirectory
	case stderrors.Is(err, syscall.EISDIR):
		return CodeNotRegular
	case stderrors.Is(err, syscall.ENOSPC):
		return CodeNoSpace
	case stderrors.Is(err, syscall.EMFILE), stderrors.Is(err, syscall.ENFILE):
		return CodeTooManyFiles
	case stderrors.Is(err, fs.ErrInvalid),
		stderrors.Is(err, syscall.EINVAL),
		stderrors.Is(err, syscall.ENAMETOOLONG),
		stderrors.Is(err, syscall.ELOOP):
		return CodeInvalidPath
	case stderrors.Is(err, stderrors.ErrUnsupported):
		return CodeUnsupported
	default:
		return CodeUnknown
	}
}
