// Package errors provides structured errors for file operations.
//
// The boolean API of the fileops package never returns errors to its callers;
// it logs them. Internally, and for callers of the checked API, every failure
// is an OpError carrying:
//
//   - an ErrorCode (NOT_FOUND, PERMISSION_DENIED, NO_SPACE, ...)
//   - a Category derived from the code (path, permission, existence, resource, internal)
//   - the operation name and path it happened on
//   - optional context metadata and the underlying cause
//
// OpError values are immutable and compatible with the standard library
// errors package (errors.Is, errors.As, errors.Unwrap).
//
// # Quick Start
//
// Classifying an OS error:
//
//	if err := fsys.Remove(path); err != nil {
//	    return errors.FromOS("delete_file", path, err)
//	}
//
// Creating and wrapping errors:
//
//	err := errors.New(errors.CodeNotRegular, "path is a directory")
//	err = errors.WithOp(err, "copy_file", src)
//	err = errors.WithContext(err, "dst", dst)
//
// Inspecting errors:
//
//	switch errors.GetCategory(err) {
//	case errors.CategoryExistence:
//	    // missing source or target already present
//	case errors.CategoryResource:
//	    // disk full or out of handles
//	case errors.CategoryEncoding:
//	    // text is not valid UTF-8
//	}
//
// Serializing errors:
//
//	json.NewEncoder(os.Stdout).Encode(errors.ToJSON(err))
//
// # Error Codes
//
//   - Existence errors: CodeNotFound, CodeAlreadyExists
//   - Permission errors: CodePermission
//   - Path errors: CodeInvalidPath, CodeNotDirectory, CodeNotRegular
//   - Resource errors: CodeNoSpace, CodeTooManyFiles
//   - Encoding errors: CodeEncoding
//   - Internal errors: CodeInvalidPattern, CodeUnsupported, CodeInternal
//   - Generic: CodeUnknown
package errors
