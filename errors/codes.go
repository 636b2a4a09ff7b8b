package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// Existence errors.

	// CodeNotFound indicates the file or directory does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeAlreadyExists indicates the path already exists.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Permission errors.

	// CodePermission indicates the caller lacks the rights to read, write or delete the path.
	CodePermission ErrorCode = "PERMISSION_DENIED"

	// Path errors.

	// CodeInvalidPath indicates the path is malformed, too long, or contains invalid characters.
	CodeInvalidPath ErrorCode = "INVALID_PATH"

	// CodeNotDirectory indicates a path component that must be a directory is not one.
	CodeNotDirectory ErrorCode = "NOT_DIRECTORY"

	// CodeNotRegular indicates the path exists but is not a regular file.
	CodeNotRegular ErrorCode = "NOT_REGULAR_FILE"

	// Resource errors.

	// CodeNoSpace indicates the device has no space left.
	CodeNoSpace ErrorCode = "NO_SPACE"

	// CodeTooManyFiles indicates the process or system ran out of file handles.
	CodeTooManyFiles ErrorCode = "TOO_MANY_OPEN_FILES"

	// CodeEncoding indicates text content is not valid UTF-8.
	CodeEncoding ErrorCode = "ENCODING_ERROR"

	// Internal errors.

	// CodeInvalidPattern indicates a glob pattern is malformed.
	CodeInvalidPattern ErrorCode = "INVALID_PATTERN"

	// CodeUnsupported indicates the backend does not support the operation.
	CodeUnsupported ErrorCode = "UNSUPPORTED"

	// CodeInternal indicates an internal error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// Generic errors.

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)
