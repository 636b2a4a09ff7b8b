package fileops

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/jmgilman/fileops/errors"
	"github.com/jmgilman/fileops/fs/core"
)

// Checked exposes the operations of a FileOps with typed errors instead of
// booleans and diagnostics. Every returned error is an errors.OpError
// carrying a code, the operation name and the path involved; copy and move
// errors also carry the destination under the "dst" context key.
//
// Checked logs nothing.
type Checked struct {
	ops *FileOps
}

// Checked returns the error-returning view of o.
func (o *FileOps) Checked() Checked {
	return Checked{ops: o}
}

// CreateFile writes content to path, creating missing parent directories.
func (c Checked) CreateFile(path, content string) error {
	if err := requirePath(OpCreateFile, path); err != nil {
		return err
	}

	data := []byte(content)
	if err := validateUTF8(data); err != nil {
		return encodingError(OpCreateFile, path, data, err)
	}
	if info, err := c.ops.fs.Stat(path); err == nil && info.IsDir() {
		return errors.WithOp(errors.New(errors.CodeNotRegular, "path is a directory"), OpCreateFile, path)
	}
	if err := c.mkdirParent(path); err != nil {
		return errors.FromOS(OpCreateFile, path, err)
	}
	if err := c.ops.fs.WriteFile(path, data, c.ops.fileMode); err != nil {
		return errors.FromOS(OpCreateFile, path, err)
	}
	return nil
}

// ReadFile returns the content of the regular file at path.
func (c Checked) ReadFile(path string) (string, error) {
	if err := requirePath(OpReadFile, path); err != nil {
		return "", err
	}

	info, err := c.ops.fs.Stat(path)
	if err != nil {
		return "", errors.FromOS(OpReadFile, path, err)
	}
	if !info.Mode().IsRegular() {
		return "", errors.WithOp(errors.New(errors.CodeNotRegular, "not a regular file"), OpReadFile, path)
	}

	data, err := c.ops.fs.ReadFile(path)
	if err != nil {
		return "", errors.FromOS(OpReadFile, path, err)
	}
	if err := validateUTF8(data); err != nil {
		return "", encodingError(OpReadFile, path, data, err)
	}
	return string(data), nil
}

// CopyFile copies the regular file src to dst, then its permission bits and
// timestamps where the backend supports them.
func (c Checked) CopyFile(src, dst string) error {
	fail := func(err error) error {
		return errors.WithContext(errors.FromOS(OpCopyFile, src, err), "dst", dst)
	}

	if err := requirePaths(src, dst); err != nil {
		return fail(err)
	}

	srcInfo, err := c.ops.fs.Stat(src)
	if err != nil {
		return fail(err)
	}
	if !srcInfo.Mode().IsRegular() {
		return fail(errors.New(errors.CodeNotRegular, "source is not a regular file"))
	}

	target, targetInfo := c.destination(src, dst)
	if targetInfo != nil {
		if c.samePath(src, target, srcInfo, targetInfo) {
			return fail(errors.New(errors.CodeInvalidPath, "source and destination are the same file"))
		}
		if targetInfo.IsDir() {
			return fail(errors.Newf(errors.CodeNotRegular, "destination %s is a directory", target))
		}
	}

	if err := c.mkdirParent(target); err != nil {
		return fail(err)
	}
	if err := c.copyWithMetadata(src, target, srcInfo); err != nil {
		return fail(err)
	}
	return nil
}

// MoveFile renames src to dst. A regular file that cannot be renamed across
// devices is copied with its metadata and the source removed.
func (c Checked) MoveFile(src, dst string) error {
	fail := func(err error) error {
		return errors.WithContext(errors.FromOS(OpMoveFile, src, err), "dst", dst)
	}

	if err := requirePaths(src, dst); err != nil {
		return fail(err)
	}

	srcInfo, err := c.ops.fs.Stat(src)
	if err != nil {
		return fail(err)
	}

	target, targetInfo := c.destination(src, dst)
	if targetInfo != nil {
		if c.samePath(src, target, srcInfo, targetInfo) {
			return nil
		}
		if target != dst {
			return fail(errors.Newf(errors.CodeAlreadyExists, "destination %s already exists", target))
		}
	}

	if err := c.mkdirParent(target); err != nil {
		return fail(err)
	}

	err = c.ops.fs.Rename(src, target)
	if err == nil {
		return nil
	}
	if !errors.Is(err, syscall.EXDEV) || !srcInfo.Mode().IsRegular() {
		return fail(err)
	}

	if err := c.copyWithMetadata(src, target, srcInfo); err != nil {
		return fail(err)
	}
	if err := c.ops.fs.Remove(src); err != nil {
		return fail(err)
	}
	return nil
}

// DeleteFile removes the entry at path. It reports (false, nil) when nothing
// exists there. Directories are refused. Symbolic links are not followed, so
// a dangling link is removed like any other entry.
func (c Checked) DeleteFile(path string) (bool, error) {
	if err := requirePath(OpDeleteFile, path); err != nil {
		return false, err
	}

	info, err := c.lstat(path)
	if err != nil {
		if isAbsent(err) {
			return false, nil
		}
		return false, errors.FromOS(OpDeleteFile, path, err)
	}
	if info.IsDir() {
		return false, errors.WithOp(errors.New(errors.CodeNotRegular, "path is a directory"), OpDeleteFile, path)
	}

	if err := c.ops.fs.Remove(path); err != nil {
		if isAbsent(err) {
			return false, nil
		}
		return false, errors.FromOS(OpDeleteFile, path, err)
	}
	return true, nil
}

// CreateDirectory creates path and any missing parents. It reports
// (false, nil) when something already exists at path.
func (c Checked) CreateDirectory(path string) (bool, error) {
	if err := requirePath(OpCreateDirectory, path); err != nil {
		return false, err
	}

	if _, err := c.lstat(path); err == nil {
		return false, nil
	} else if !isAbsent(err) {
		return false, errors.FromOS(OpCreateDirectory, path, err)
	}

	if err := c.ops.fs.MkdirAll(path, c.ops.dirMode); err != nil {
		return false, errors.FromOS(OpCreateDirectory, path, err)
	}
	return true, nil
}

// FileExists reports whether path names a regular file, following symbolic
// links. Absence is not an error.
func (c Checked) FileExists(path string) (bool, error) {
	if path == "" {
		return false, nil
	}

	info, err := c.ops.fs.Stat(path)
	if err != nil {
		if isAbsent(err) {
			return false, nil
		}
		return false, errors.FromOS(OpFileExists, path, err)
	}
	return info.Mode().IsRegular(), nil
}

// destination resolves where src ends up when copied or moved to dst, and
// returns the current info of that target if something is already there.
// A dst naming an existing directory, or ending in a separator, receives src
// under its base name.
func (c Checked) destination(src, dst string) (string, fs.FileInfo) {
	target := dst
	if strings.HasSuffix(dst, "/") || strings.HasSuffix(dst, string(filepath.Separator)) {
		target = filepath.Join(dst, filepath.Base(src))
	} else if info, err := c.ops.fs.Stat(dst); err == nil && info.IsDir() {
		target = filepath.Join(dst, filepath.Base(src))
	}

	info, err := c.ops.fs.Stat(target)
	if err != nil {
		return target, nil
	}
	return target, info
}

// samePath reports whether a and b name the same file.
func (c Checked) samePath(a, b string, ai, bi fs.FileInfo) bool {
	if os.SameFile(ai, bi) {
		return true
	}
	return c.canonical(a) == c.canonical(b)
}

// canonical returns the absolute, cleaned form of p as the backend resolves it.
func (c Checked) canonical(p string) string {
	if c.ops.fs.Type() == core.FSTypeLocal {
		if abs, err := filepath.Abs(p); err == nil {
			return abs
		}
		return filepath.Clean(p)
	}
	return path.Clean("/" + filepath.ToSlash(p))
}

// mkdirParent creates the parent directories of p.
func (c Checked) mkdirParent(p string) error {
	dir := filepath.Dir(p)
	if dir == "." || dir == p {
		return nil
	}
	return c.ops.fs.MkdirAll(dir, c.ops.dirMode)
}

// lstat stats p without following a final symbolic link when the backend
// can, so dangling links count as present.
func (c Checked) lstat(p string) (fs.FileInfo, error) {
	if mfs, ok := c.ops.fs.(core.MetadataFS); ok {
		return mfs.Lstat(p)
	}
	return c.ops.fs.Stat(p)
}

// copyWithMetadata copies the contents of src to dst and then carries over
// permission bits and access/modification times. Backends that cannot store
// metadata are tolerated.
func (c Checked) copyWithMetadata(src, dst string, srcInfo fs.FileInfo) error {
	if _, err := core.Copy(c.ops.fs, dst, c.ops.fs, src); err != nil {
		return err
	}

	mfs, ok := c.ops.fs.(core.MetadataFS)
	if !ok {
		return nil
	}

	if err := mfs.Chmod(dst, srcInfo.Mode().Perm()); err != nil && !errors.Is(err, core.ErrUnsupported) {
		return err
	}

	mtime := srcInfo.ModTime()
	atime := mtime
	if tfs, ok := c.ops.fs.(core.TimesFS); ok {
		if ts, err := tfs.Times(src); err == nil && !ts.Accessed.IsZero() {
			atime = ts.Accessed
		}
	}
	if err := mfs.Chtimes(dst, atime, mtime); err != nil && !errors.Is(err, core.ErrUnsupported) {
		return err
	}
	return nil
}

// isAbsent reports whether err means nothing exists at the path, including
// a parent component that is not a directory.
func isAbsent(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}

// requirePath rejects empty paths.
func requirePath(op, p string) error {
	if p == "" {
		return errors.WithOp(errors.New(errors.CodeInvalidPath, "path is empty"), op, p)
	}
	return nil
}

// requirePaths rejects empty source or destination paths.
func requirePaths(src, dst string) error {
	if src == "" || dst == "" {
		return errors.New(errors.CodeInvalidPath, "source and destination must not be empty")
	}
	return nil
}
