package core

import (
	"fmt"
	"io"
	"io/fs"
	"strings"
	"time"
)

// FSType represents the underlying type of filesystem implementation.
type FSType int

const (
	// FSTypeUnknown indicates the filesystem type is unknown or unspecified.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates a local, disk-backed filesystem.
	FSTypeLocal
	// FSTypeMemory indicates an in-memory filesystem.
	FSTypeMemory
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// ParseFSType converts a name produced by FSType.String back to an FSType.
// Matching is case-insensitive.
func ParseFSType(s string) (FSType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "local":
		return FSTypeLocal, nil
	case "memory":
		return FSTypeMemory, nil
	default:
		return FSTypeUnknown, fmt.Errorf("unknown filesystem type %q", s)
	}
}

// FS is the filesystem interface file operations run against.
// FS explicitly embeds fs.FS for stdlib compatibility.
//
// Providers MUST implement this interface, which is composed of four
// sub-interfaces: ReadFS, WriteFS, ManageFS and ChrootFS.
type FS interface {
	fs.FS // Ensures stdlib compatibility (provides Open returning fs.File)
	ReadFS
	WriteFS
	ManageFS
	ChrootFS

	// Type returns the underlying filesystem type.
	Type() FSType
}

// ReadFS defines read-only filesystem operations.
type ReadFS interface {
	// Open opens the named file for reading.
	// The returned file should be closed when no longer needed.
	Open(name string) (fs.File, error)

	// Stat returns file metadata, following symbolic links.
	// If there is an error, it will be of type *fs.PathError.
	Stat(name string) (fs.FileInfo, error)

	// ReadDir reads the named directory and returns its entries sorted by filename.
	ReadDir(name string) ([]fs.DirEntry, error)

	// ReadFile reads the named file and returns its contents.
	ReadFile(name string) ([]byte, error)

	// Exists reports whether the named file or directory exists.
	// A false result with a non-nil error means existence could not be
	// determined, not that the path is absent.
	Exists(name string) (bool, error)
}

// WriteFS defines write operations.
type WriteFS interface {
	// Create creates or truncates the named file for writing.
	// The parent directory must exist.
	Create(name string) (File, error)

	// WriteFile writes data to the named file, creating it if necessary
	// and truncating it otherwise. The parent directory must exist.
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// MkdirAll creates a directory named path, along with any necessary parents.
	// If path is already a directory, MkdirAll does nothing and returns nil.
	MkdirAll(path string, perm fs.FileMode) error
}

// ManageFS defines file and directory management operations.
type ManageFS interface {
	// Remove removes the named file or empty directory.
	// If the path does not exist, Remove returns an error wrapping ErrNotExist.
	Remove(name string) error

	// Rename renames (moves) oldpath to newpath.
	// If newpath already exists and is not a directory, Rename replaces it.
	// Local providers use the platform rename, which fails across devices.
	Rename(oldpath, newpath string) error
}

// ChrootFS defines the ability to create scoped filesystem views.
type ChrootFS interface {
	// Chroot returns a filesystem scoped to the given directory.
	// All operations on the returned FS are relative to dir.
	//
	// The directory dir must exist and be a directory, or Chroot returns an error.
	Chroot(dir string) (FS, error)
}

// File represents an open file handle.
// File extends fs.File with write operations.
type File interface {
	fs.File // Embeds: Read([]byte) (int, error), Close() error, Stat() (fs.FileInfo, error)

	// Write writes len(p) bytes from p to the underlying data stream.
	io.Writer

	// Name returns the name of the file as provided to Open or Create.
	Name() string
}

// MetadataFS defines metadata operations (typically local and memory filesystems only).
//
// Use type assertion to check if a filesystem supports metadata operations:
//
//	if mfs, ok := filesystem.(MetadataFS); ok {
//	    err := mfs.Chmod("file.txt", 0600)
//	}
//
// Implementations return an error wrapping ErrUnsupported when the backing
// store cannot honour a call.
type MetadataFS interface {
	// Lstat returns file info without following symbolic links.
	Lstat(name string) (fs.FileInfo, error)

	// Chmod changes the mode/permissions of the named file.
	Chmod(name string, mode fs.FileMode) error

	// Chtimes changes the access and modification times of the named file.
	Chtimes(name string, atime, mtime time.Time) error
}

// Times holds the timestamps a filesystem reports for a file.
// Fields the filesystem cannot report are the zero time.
type Times struct {
	Modified time.Time
	Accessed time.Time
	Changed  time.Time
	Born     time.Time
}

// Created returns the best available creation timestamp: the birth time
// when known, otherwise the status-change time, otherwise the modification time.
func (t Times) Created() time.Time {
	switch {
	case !t.Born.IsZero():
		return t.Born
	case !t.Changed.IsZero():
		return t.Changed
	default:
		return t.Modified
	}
}

// TimesFS reports file timestamps beyond the modification time
// (typically local filesystems only).
//
// Use type assertion to check if a filesystem supports it:
//
//	if tfs, ok := filesystem.(TimesFS); ok {
//	    ts, err := tfs.Times("file.txt")
//	}
type TimesFS interface {
	// Times returns the timestamps of the named file, following symbolic links.
	Times(name string) (Times, error)
}
