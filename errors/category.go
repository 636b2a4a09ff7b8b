package errors

// Category groups error codes by their cause.
// Callers of the boolean API never see it; it is attached to diagnostics and
// available to callers of the checked API.
type Category string

const (
	// CategoryPath covers malformed paths, over-long names and non-directory parents.
	CategoryPath Category = "PATH"

	// CategoryPermission covers insufficient rights to read, write or delete.
	CategoryPermission Category = "PERMISSION"

	// CategoryExistence covers missing sources and already-present targets.
	CategoryExistence Category = "EXISTENCE"

	// CategoryResource covers exhausted disk space and file handles.
	CategoryResource Category = "RESOURCE"

	// CategoryEncoding covers text that is not valid UTF-8.
	CategoryEncoding Category = "ENCODING"

	// CategoryInternal covers everything that is not caused by the file system itself.
	CategoryInternal Category = "INTERNAL"
)

// defaultCategories maps error codes to their cause category.
var defaultCategories = map[ErrorCode]Category{
	CodeNotFound:      CategoryExistence,
	CodeAlreadyExists: CategoryExistence,

	CodePermission: CategoryPermission,

	CodeInvalidPath:  CategoryPath,
	CodeNotDirectory: CategoryPath,
	CodeNotRegular:   CategoryPath,

	CodeNoSpace:      CategoryResource,
	CodeTooManyFiles: CategoryResource,

	CodeEncoding: CategoryEncoding,

	CodeInvalidPattern: CategoryInternal,
	CodeUnsupported:    CategoryInternal,
	CodeInternal:       CategoryInternal,
	CodeUnknown:        CategoryInternal,
}

// CategoryOf returns the cause category for an error code.
// Returns CategoryInternal if the code is not known.
func CategoryOf(code ErrorCode) Category {
	if c, ok := defaultCategories[code]; ok {
		return c
	}
	return CategoryInternal
}
