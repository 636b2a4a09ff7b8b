package fileops

import (
	"io/fs"
	"sync"

	"go.uber.org/zap"

	"github.com/jmgilman/fileops/config"
	"github.com/jmgilman/fileops/fs/billy"
	"github.com/jmgilman/fileops/fs/core"
	"github.com/jmgilman/fileops/internal/logging"
)

// Operation names used in diagnostics and errors.
const (
	OpCreateFile      = "create_file"
	OpReadFile        = "read_file"
	OpCopyFile        = "copy_file"
	OpMoveFile        = "move_file"
	OpDeleteFile      = "delete_file"
	OpListFiles       = "list_files"
	OpCreateDirectory = "create_directory"
	OpFileExists      = "file_exists"
	OpGetFileInfo     = "get_file_info"
)

// Default permission bits for created files and directories.
const (
	DefaultFileMode fs.FileMode = 0o644
	DefaultDirMode  fs.FileMode = 0o755
)

// FileOps runs file operations against a filesystem backend.
//
// A FileOps is immutable once built and safe for concurrent use as long as
// its backend is.
type FileOps struct {
	fs       core.FS
	log      *zap.Logger
	fileMode fs.FileMode
	dirMode  fs.FileMode
}

// Option configures a FileOps.
type Option func(*FileOps)

// WithFS sets the filesystem backend. Defaults to the local disk.
func WithFS(fsys core.FS) Option {
	return func(o *FileOps) {
		o.fs = fsys
	}
}

// WithLogger sets the logger diagnostics are written to.
// Defaults to a console logger on stderr.
func WithLogger(logger *zap.Logger) Option {
	return func(o *FileOps) {
		o.log = logger
	}
}

// WithFileMode sets the permission bits of files created by CreateFile.
func WithFileMode(mode fs.FileMode) Option {
	return func(o *FileOps) {
		o.fileMode = mode.Perm()
	}
}

// WithDirMode sets the permission bits of directories created on demand.
func WithDirMode(mode fs.FileMode) Option {
	return func(o *FileOps) {
		o.dirMode = mode.Perm()
	}
}

// New creates a FileOps.
//
// Example:
//
//	ops := fileops.New(fileops.WithFS(billy.NewMemory()))
//	ops.CreateFile("notes/todo.md", "- ship it\n")
func New(opts ...Option) *FileOps {
	o := &FileOps{
		fileMode: DefaultFileMode,
		dirMode:  DefaultDirMode,
	}
	for _, opt := range opts {
		opt(o)
	}

	if o.fs == nil {
		o.fs = billy.NewLocal()
	}
	if o.log == nil {
		o.log = logging.NewDefault()
	}
	return o
}

// FromConfig creates a FileOps from loaded configuration. A nil logger is
// replaced by one built from cfg.
func FromConfig(cfg *config.Config, logger *zap.Logger) (*FileOps, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if logger == nil {
		l, err := logging.New(cfg.Logging())
		if err != nil {
			return nil, err
		}
		logger = l
	}

	var fsys core.FS
	switch cfg.FSType() {
	case core.FSTypeMemory:
		fsys = billy.NewMemory()
	default:
		fsys = billy.NewLocal()
	}

	return New(
		WithFS(fsys),
		WithLogger(logger),
		WithFileMode(cfg.FileMode),
		WithDirMode(cfg.DirMode),
	), nil
}

// FS returns the backend o operates on.
func (o *FileOps) FS() core.FS {
	return o.fs
}

// Logger returns the logger diagnostics are written to.
func (o *FileOps) Logger() *zap.Logger {
	return o.log
}

var defaultOps = sync.OnceValue(func() *FileOps { return New() })

// Default returns the process-wide FileOps used by the package-level
// functions. It operates on the local disk and logs to stderr.
func Default() *FileOps {
	return defaultOps()
}

// CreateFile writes content to path using the default FileOps.
func CreateFile(path, content string) bool {
	return Default().CreateFile(path, content)
}

// ReadFile returns the content of path using the default FileOps.
func ReadFile(path string) string {
	return Default().ReadFile(path)
}

// CopyFile copies src to dst using the default FileOps.
func CopyFile(src, dst string) bool {
	return Default().CopyFile(src, dst)
}

// MoveFile moves src to dst using the default FileOps.
func MoveFile(src, dst string) bool {
	return Default().MoveFile(src, dst)
}

// DeleteFile removes path using the default FileOps.
func DeleteFile(path string) bool {
	return Default().DeleteFile(path)
}

// ListFiles lists the entries of directory matching pattern using the
// default FileOps.
func ListFiles(directory string, pattern ...string) []string {
	return Default().ListFiles(directory, pattern...)
}

// CreateDirectory creates path using the default FileOps.
func CreateDirectory(path string) bool {
	return Default().CreateDirectory(path)
}

// FileExists reports whether path is a regular file using the default FileOps.
func FileExists(path string) bool {
	return Default().FileExists(path)
}

// GetFileInfo describes path using the default FileOps.
func GetFileInfo(path string) (FileInfo, bool) {
	return Default().GetFileInfo(path)
}
