package billy

import (
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/djherbis/times"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/jmgilman/fileops/fs/core"
)

// LocalFS wraps billy's osfs for local filesystem access.
//
// A LocalFS created with NewLocal is rooted at "/" and resolves relative
// names against the process working directory, so paths behave exactly as
// they do with the os package. Views returned by Chroot resolve every name
// inside their directory.
type LocalFS struct {
	*adapter
	root string // OS directory the billy filesystem is rooted at
}

// MemoryFS wraps billy's memfs for in-memory filesystem access.
// Relative names are resolved against "/".
type MemoryFS struct {
	*adapter
}

// Option configures filesystem creation.
type Option func(*config)

type config struct {
	root string
}

// WithRoot roots a LocalFS at dir instead of the working directory.
// Every name, absolute or relative, is then resolved inside dir.
func WithRoot(dir string) Option {
	return func(c *config) {
		c.root = dir
	}
}

// NewLocal creates a go-billy-backed local filesystem.
func NewLocal(opts ...Option) *LocalFS {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.root == "" {
		return &LocalFS{
			adapter: &adapter{bfs: osfs.New("/"), resolve: resolveAgainstWorkingDir},
			root:    "/",
		}
	}

	root := cfg.root
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return &LocalFS{
		adapter: &adapter{bfs: osfs.New(root), resolve: normalize},
		root:    root,
	}
}

// NewMemory creates a go-billy-backed in-memory filesystem.
// The filesystem is initially empty.
func NewMemory(_ ...Option) *MemoryFS {
	return &MemoryFS{
		adapter: &adapter{bfs: memfs.New(), resolve: resolveAgainstRoot},
	}
}

// Unwrap returns the underlying billy.Filesystem.
func (a *adapter) Unwrap() billy.Filesystem {
	return a.bfs
}

// normalize converts paths to use forward slashes consistently.
// This is a simplified path normalization since billy handles security.
func normalize(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

// resolveAgainstWorkingDir makes name absolute relative to the working directory.
func resolveAgainstWorkingDir(name string) string {
	if !filepath.IsAbs(name) {
		if abs, err := filepath.Abs(name); err == nil {
			name = abs
		}
	}
	return normalize(name)
}

// resolveAgainstRoot makes name absolute relative to "/".
func resolveAgainstRoot(name string) string {
	return path.Clean("/" + filepath.ToSlash(name))
}

// adapter implements the operations LocalFS and MemoryFS share on top of a
// billy.Filesystem. Every name is passed through resolve before use.
type adapter struct {
	bfs     billy.Filesystem
	resolve func(string) string
}

// dirEntry wraps fs.FileInfo to implement fs.DirEntry.
type dirEntry struct {
	info fs.FileInfo
}

func (d *dirEntry) Name() string               { return d.info.Name() }
func (d *dirEntry) IsDir() bool                { return d.info.IsDir() }
func (d *dirEntry) Type() fs.FileMode          { return d.info.Mode().Type() }
func (d *dirEntry) Info() (fs.FileInfo, error) { return d.info, nil }

// Open opens the named file for reading.
// Returns a File that also implements fs.File.
func (a *adapter) Open(name string) (fs.File, error) {
	name = a.resolve(name)
	f, err := a.bfs.Open(name)
	if err != nil {
		return nil, err
	}
	return &File{file: f, fs: a.bfs, name: name}, nil
}

// Stat returns file metadata for the named file, following symbolic links.
func (a *adapter) Stat(name string) (fs.FileInfo, error) {
	return a.bfs.Stat(a.resolve(name))
}

// Lstat returns file metadata without following symbolic links.
func (a *adapter) Lstat(name string) (fs.FileInfo, error) {
	return a.bfs.Lstat(a.resolve(name))
}

// ReadDir reads the named directory and returns its entries sorted by filename.
func (a *adapter) ReadDir(name string) ([]fs.DirEntry, error) {
	// Billy's ReadDir returns []fs.FileInfo, we need to convert to []fs.DirEntry
	infos, err := a.bfs.ReadDir(a.resolve(name))
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = &dirEntry{info: info}
	}
	return entries, nil
}

// ReadFile reads the named file and returns its contents.
func (a *adapter) ReadFile(name string) ([]byte, error) {
	f, err := a.bfs.Open(a.resolve(name))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return io.ReadAll(f)
}

// Exists reports whether the named file or directory exists.
func (a *adapter) Exists(name string) (bool, error) {
	_, err := a.bfs.Stat(a.resolve(name))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Create creates or truncates the named file for writing.
func (a *adapter) Create(name string) (core.File, error) {
	name = a.resolve(name)
	f, err := a.bfs.Create(name)
	if err != nil {
		return nil, err
	}
	return &File{file: f, fs: a.bfs, name: name}, nil
}

// WriteFile writes data to the named file, creating it if necessary.
func (a *adapter) WriteFile(name string, data []byte, perm fs.FileMode) error {
	f, err := a.bfs.OpenFile(a.resolve(name), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	_, err = f.Write(data)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (a *adapter) MkdirAll(name string, perm fs.FileMode) error {
	return a.bfs.MkdirAll(a.resolve(name), perm)
}

// Remove removes the named file or empty directory.
func (a *adapter) Remove(name string) error {
	return a.bfs.Remove(a.resolve(name))
}

// Rename renames (moves) oldpath to newpath.
func (a *adapter) Rename(oldpath, newpath string) error {
	return a.bfs.Rename(a.resolve(oldpath), a.resolve(newpath))
}

// chroot resolves dir, verifies it is a directory and returns a billy view of it.
func (a *adapter) chroot(dir string) (string, billy.Filesystem, error) {
	name := a.resolve(dir)
	info, err := a.bfs.Stat(name)
	if err != nil {
		return "", nil, err
	}
	if !info.IsDir() {
		return "", nil, &fs.PathError{Op: "chroot", Path: dir, Err: syscall.ENOTDIR}
	}
	sub, err := a.bfs.Chroot(name)
	if err != nil {
		return "", nil, err
	}
	return name, sub, nil
}

// LocalFS ChrootFS, MetadataFS and TimesFS implementation

// Chroot returns a filesystem scoped to the given directory.
func (lfs *LocalFS) Chroot(dir string) (core.FS, error) {
	name, sub, err := lfs.chroot(dir)
	if err != nil {
		return nil, err
	}
	return &LocalFS{
		adapter: &adapter{bfs: sub, resolve: normalize},
		root:    filepath.Join(lfs.root, filepath.FromSlash(name)),
	}, nil
}

// Type returns FSTypeLocal for local filesystem implementations.
func (lfs *LocalFS) Type() core.FSType {
	return core.FSTypeLocal
}

// osPath maps a name onto the path the operating system sees.
// The name is cleaned as if rooted so it cannot climb out of root.
func (lfs *LocalFS) osPath(name string) string {
	return filepath.Join(lfs.root, filepath.FromSlash(path.Clean("/"+lfs.resolve(name))))
}

// Chmod changes the permission bits of the named file.
func (lfs *LocalFS) Chmod(name string, mode fs.FileMode) error {
	return os.Chmod(lfs.osPath(name), mode)
}

// Chtimes changes the access and modification times of the named file.
func (lfs *LocalFS) Chtimes(name string, atime, mtime time.Time) error {
	return os.Chtimes(lfs.osPath(name), atime, mtime)
}

// Times returns the modification, access, change and (where the platform
// records it) birth time of the named file.
func (lfs *LocalFS) Times(name string) (core.Times, error) {
	ts, err := times.Stat(lfs.osPath(name))
	if err != nil {
		return core.Times{}, err
	}

	out := core.Times{
		Modified: ts.ModTime(),
		Accessed: ts.AccessTime(),
	}
	if ts.HasChangeTime() {
		out.Changed = ts.ChangeTime()
	}
	if ts.HasBirthTime() {
		out.Born = ts.BirthTime()
	}
	return out, nil
}

// MemoryFS ChrootFS, MetadataFS and TimesFS implementation

// Chroot returns a filesystem scoped to the given directory.
func (mfs *MemoryFS) Chroot(dir string) (core.FS, error) {
	_, sub, err := mfs.chroot(dir)
	if err != nil {
		return nil, err
	}
	return &MemoryFS{
		adapter: &adapter{bfs: sub, resolve: resolveAgainstRoot},
	}, nil
}

// Rename moves oldpath to newpath. Directories are moved with their
// contents. Entries that merely share oldpath as a name prefix, such as
// "notes.txt.bak" next to "notes.txt", stay where they are.
func (mfs *MemoryFS) Rename(oldpath, newpath string) error {
	from, to := mfs.resolve(oldpath), mfs.resolve(newpath)
	info, err := mfs.bfs.Lstat(from)
	if err != nil {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: err}
	}
	if from == to {
		return nil
	}
	if strings.HasPrefix(to, from+"/") {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: syscall.EINVAL}
	}
	if err := mfs.move(from, to, info); err != nil {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: err}
	}
	return nil
}

// move relocates one entry, recursing into directories.
func (mfs *MemoryFS) move(from, to string, info fs.FileInfo) error {
	switch {
	case info.IsDir():
		if err := mfs.bfs.MkdirAll(to, info.Mode().Perm()); err != nil {
			return err
		}
		children, err := mfs.bfs.ReadDir(from)
		if err != nil {
			return err
		}
		for _, child := range children {
			if err := mfs.move(path.Join(from, child.Name()), path.Join(to, child.Name()), child); err != nil {
				return err
			}
		}
	case info.Mode()&fs.ModeSymlink != 0:
		target, err := mfs.bfs.Readlink(from)
		if err != nil {
			return err
		}
		if err := mfs.bfs.Remove(to); err != nil && !os.IsNotExist(err) {
			return err
		}
		if err := mfs.bfs.Symlink(target, to); err != nil {
			return err
		}
	default:
		if err := mfs.copyFile(from, to, info.Mode().Perm()); err != nil {
			return err
		}
	}
	return mfs.bfs.Remove(from)
}

// copyFile copies the content of from over to.
func (mfs *MemoryFS) copyFile(from, to string, perm fs.FileMode) error {
	src, err := mfs.bfs.Open(from)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	dst, err := mfs.bfs.OpenFile(to, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	_, err = io.Copy(dst, src)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	return err
}

// Type returns FSTypeMemory for in-memory filesystem implementations.
func (mfs *MemoryFS) Type() core.FSType {
	return core.FSTypeMemory
}

// Chmod changes the permission bits of the named file when the underlying
// billy filesystem supports it.
func (mfs *MemoryFS) Chmod(name string, mode fs.FileMode) error {
	ch, ok := mfs.bfs.(billy.Change)
	if !ok {
		return &fs.PathError{Op: "chmod", Path: name, Err: core.ErrUnsupported}
	}
	return ch.Chmod(mfs.resolve(name), mode)
}

// Chtimes changes the access and modification times of the named file when
// the underlying billy filesystem supports it.
func (mfs *MemoryFS) Chtimes(name string, atime, mtime time.Time) error {
	ch, ok := mfs.bfs.(billy.Change)
	if !ok {
		return &fs.PathError{Op: "chtimes", Path: name, Err: core.ErrUnsupported}
	}
	return ch.Chtimes(mfs.resolve(name), atime, mtime)
}

// Times returns the modification time of the named file. Memory files keep
// no other timestamps, so Created reports the modification time.
func (mfs *MemoryFS) Times(name string) (core.Times, error) {
	info, err := mfs.Stat(name)
	if err != nil {
		return core.Times{}, err
	}
	return core.Times{Modified: info.ModTime()}, nil
}

// Compile-time interface checks.
var (
	_ core.FS         = (*LocalFS)(nil)
	_ core.FS         = (*MemoryFS)(nil)
	_ core.MetadataFS = (*LocalFS)(nil)
	_ core.MetadataFS = (*MemoryFS)(nil)
	_ core.TimesFS    = (*LocalFS)(nil)
	_ core.TimesFS    = (*MemoryFS)(nil)
)
