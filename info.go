package fileops

import (
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/jmgilman/fileops/errors"
	"github.com/jmgilman/fileops/fs/core"
)

// FileInfo describes a regular file at the time it was inspected.
type FileInfo struct {
	// Name is the base name of the file.
	Name string `json:"name" yaml:"name"`

	// Path is the path exactly as it was passed in.
	Path string `json:"path" yaml:"path"`

	Size int64 `json:"size" yaml:"size"`

	// Created is the birth time when the platform records one, otherwise
	// the status-change time, otherwise the modification time.
	Created time.Time `json:"created" yaml:"created"`

	Modified time.Time `json:"modified" yaml:"modified"`

	// Extension is the suffix starting at the last dot of Name, ignoring
	// leading dots ("archive.tar.gz" gives ".gz", ".bashrc" gives "").
	Extension string `json:"extension" yaml:"extension"`

	// Mode holds the permission bits.
	Mode fs.FileMode `json:"mode" yaml:"mode"`

	// ContentType is the detected MIME type, or "" if detection failed.
	ContentType string `json:"content_type,omitempty" yaml:"content_type,omitempty"`
}

// GetFileInfo describes the regular file at path. It returns an error with
// CodeNotFound when nothing exists there and CodeNotRegular when the entry
// is not a regular file.
func (c Checked) GetFileInfo(path string) (FileInfo, error) {
	if err := requirePath(OpGetFileInfo, path); err != nil {
		return FileInfo{}, err
	}

	info, err := c.ops.fs.Stat(path)
	if err != nil {
		if isAbsent(err) {
			return FileInfo{}, errors.WithOp(errors.Wrap(err, errors.CodeNotFound, "no such file"), OpGetFileInfo, path)
		}
		return FileInfo{}, errors.FromOS(OpGetFileInfo, path, err)
	}
	if !info.Mode().IsRegular() {
		return FileInfo{}, errors.WithOp(errors.New(errors.CodeNotRegular, "not a regular file"), OpGetFileInfo, path)
	}

	times := core.Times{Modified: info.ModTime()}
	if tfs, ok := c.ops.fs.(core.TimesFS); ok {
		if ts, err := tfs.Times(path); err == nil {
			times = ts
		}
	}

	name := filepath.Base(path)
	return FileInfo{
		Name:        name,
		Path:        path,
		Size:        info.Size(),
		Created:     times.Created(),
		Modified:    times.Modified,
		Extension:   Extension(name),
		Mode:        info.Mode().Perm(),
		ContentType: c.contentType(path),
	}, nil
}

// contentType sniffs the MIME type of the file at path.
func (c Checked) contentType(path string) string {
	f, err := c.ops.fs.Open(path)
	if err != nil {
		return ""
	}
	defer func() { _ = f.Close() }()

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return ""
	}
	return mtype.String()
}

// Extension returns the suffix of name from its last dot, including the dot.
// Leading dots are not treated as a separator, so dot files without another
// dot have no extension. Only the base name of a path is considered.
//
//	Extension("report.final.pdf") // ".pdf"
//	Extension(".bashrc")          // ""
//	Extension("..config.json")    // ".json"
//	Extension("Makefile")         // ""
func Extension(name string) string {
	name = filepath.Base(name)
	rest := strings.TrimLeft(name, ".")
	if i := strings.LastIndexByte(rest, '.'); i >= 0 {
		return rest[i:]
	}
	return ""
}
