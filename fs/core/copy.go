package core

import (
	"io"
	"io/fs"
)

// Copy copies the contents of srcName in src to dstName in dst and returns the
// number of bytes copied. The destination is created or truncated; its parent
// directory must already exist. The two filesystems may be the same.
//
// Only contents are copied. Permission bits and timestamps are the caller's
// concern (see MetadataFS).
//
// Example:
//
//	memFS := billy.NewMemory()
//	n, err := core.Copy(memFS, "backup/report.txt", billy.NewLocal(), "/tmp/report.txt")
func Copy(dst WriteFS, dstName string, src ReadFS, srcName string) (int64, error) {
	in, err := src.Open(srcName)
	if err != nil {
		return 0, err
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return 0, err
	}
	if !info.Mode().IsRegular() {
		return 0, &fs.PathError{Op: "copy", Path: srcName, Err: fs.ErrInvalid}
	}

	out, err := dst.Create(dstName)
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(out, in)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	return n, err
}
