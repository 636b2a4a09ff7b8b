package fileops

import (
	"go.uber.org/zap"

	"github.com/jmgilman/fileops/errors"
)

// CreateFile writes content to path, creating missing parent directories and
// truncating any existing file. It returns false and logs a diagnostic on
// failure, including when content is not valid UTF-8.
func (o *FileOps) CreateFile(path, content string) bool {
	if err := o.Checked().CreateFile(path, content); err != nil {
		o.Report(err)
		return false
	}
	o.log.Debug("file created", zap.String("path", path), zap.Int("bytes", len(content)))
	return true
}

// ReadFile returns the full UTF-8 content of path. It returns "" both for an
// empty file and on failure; only failures are logged.
func (o *FileOps) ReadFile(path string) string {
	content, err := o.Checked().ReadFile(path)
	if err != nil {
		o.Report(err)
		return ""
	}
	return content
}

// CopyFile copies src to dst together with its permission bits and
// timestamps where the backend supports them. Missing parents of dst are
// created and an existing dst file is overwritten. If dst is a directory the
// copy is placed inside it under src's base name.
func (o *FileOps) CopyFile(src, dst string) bool {
	if err := o.Checked().CopyFile(src, dst); err != nil {
		o.Report(err)
		return false
	}
	o.log.Debug("file copied", zap.String("src", src), zap.String("dst", dst))
	return true
}

// MoveFile moves src to dst, creating missing parents of dst. If dst is a
// directory the entry is moved inside it. A regular file that cannot be
// renamed across devices is copied and then removed.
func (o *FileOps) MoveFile(src, dst string) bool {
	if err := o.Checked().MoveFile(src, dst); err != nil {
		o.Report(err)
		return false
	}
	o.log.Debug("file moved", zap.String("src", src), zap.String("dst", dst))
	return true
}

// DeleteFile removes path. It returns false without a diagnostic when
// nothing exists at path, and false with a diagnostic when removal fails.
func (o *FileOps) DeleteFile(path string) bool {
	removed, err := o.Checked().DeleteFile(path)
	if err != nil {
		o.Report(err)
		return false
	}
	if removed {
		o.log.Debug("file deleted", zap.String("path", path))
	}
	return removed
}

// ListFiles returns the entries of directory whose names match the shell
// glob pattern (default "*"), each prefixed with directory as given. An
// empty directory lists the working directory. Hidden entries are
// left out unless the pattern itself names them. A missing directory or a
// malformed pattern yields an empty result and a diagnostic.
func (o *FileOps) ListFiles(directory string, pattern ...string) []string {
	p := DefaultPattern
	if len(pattern) > 0 && pattern[0] != "" {
		p = pattern[0]
	}

	matches, err := o.Checked().ListFiles(directory, p)
	if err != nil {
		o.Report(err)
		return []string{}
	}
	return matches
}

// CreateDirectory creates path and any missing parents. It returns false
// without a diagnostic if something already exists at path.
func (o *FileOps) CreateDirectory(path string) bool {
	created, err := o.Checked().CreateDirectory(path)
	if err != nil {
		o.Report(err)
		return false
	}
	if created {
		o.log.Debug("directory created", zap.String("path", path))
	}
	return created
}

// FileExists reports whether path names a regular file, following symbolic
// links. It never fails; errors other than absence are logged and reported
// as false.
func (o *FileOps) FileExists(path string) bool {
	exists, err := o.Checked().FileExists(path)
	if err != nil {
		o.Report(err)
		return false
	}
	return exists
}

// GetFileInfo describes the regular file at path. Missing paths and
// non-regular files yield (FileInfo{}, false) silently; other failures are
// logged.
func (o *FileOps) GetFileInfo(path string) (FileInfo, bool) {
	info, err := o.Checked().GetFileInfo(path)
	if err != nil {
		switch errors.GetCode(err) {
		case errors.CodeNotFound, errors.CodeNotRegular:
			// not a file: silent
		default:
			o.Report(err)
		}
		return FileInfo{}, false
	}
	return info, true
}

// Report logs err as a "<op> failed" warning, the diagnostic the boolean
// operations emit. It is meant for callers of Checked that still want the
// standard diagnostic.
func (o *FileOps) Report(err error) {
	op := errors.GetOp(err)
	if op == "" {
		op = "fileops"
	}

	fields := []zap.Field{
		zap.String("op", op),
		zap.String("code", string(errors.GetCode(err))),
		zap.String("category", string(errors.GetCategory(err))),
		zap.Error(err),
	}

	var opErr errors.OpError
	if errors.As(err, &opErr) {
		if dst, ok := opErr.Context()["dst"].(string); ok {
			fields = append(fields, zap.String("src", opErr.Path()), zap.String("dst", dst))
		} else if opErr.Path() != "" {
			fields = append(fields, zap.String("path", opErr.Path()))
		}
		if charset, ok := opErr.Context()["charset"].(string); ok {
			fields = append(fields, zap.String("charset", charset))
		}
	}

	o.log.Warn(op+" failed", fields...)
}
