// Package fileops provides simple, non-failing file operations: create,
// read, copy, move, delete, list, directory creation, existence checks and
// metadata lookup.
//
// Every operation reports success as a bool (or a safe empty value) and
// writes a diagnostic to its logger when something goes wrong. Callers that
// need the reason use the Checked view, which returns typed errors from the
// errors package instead.
//
// Usage:
//
//	// Package-level functions work on the local disk.
//	fileops.CreateFile("out/report.custom", "hello")
//	content := fileops.ReadFile("out/report.custom")
//
//	// A configured instance, here backed by memory.
//	ops := fileops.New(
//	    fileops.WithFS(billy.NewMemory()),
//	    fileops.WithLogger(logger),
//	)
//	ops.CopyFile("/a.txt", "/backup/")
//	files := ops.ListFiles("/backup", "*.txt")
//
//	// Typed errors.
//	if err := ops.Checked().MoveFile("/a.txt", "/b.txt"); err != nil {
//	    if errors.GetCode(err) == errors.CodeNotFound { ... }
//	}
//
// # Diagnostics
//
// Failures are logged at warn level with the message "<op> failed" and the
// fields op, path (or src and dst), code, category and error. Two outcomes
// return false without a diagnostic: DeleteFile on a path where nothing
// exists, and CreateDirectory on a path that already exists. GetFileInfo is
// also silent for missing paths and non-regular files.
package fileops
