package billy

import (
	iofs "io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/fileops/fs/core"
	"github.com/jmgilman/fileops/fs/fstest"
)

// newLocalSandbox returns a LocalFS chrooted into a fresh temporary directory.
func newLocalSandbox(t *testing.T) core.FS {
	t.Helper()
	dir, err := os.MkdirTemp(t.TempDir(), "fs")
	require.NoError(t, err)

	sandbox, err := NewLocal().Chroot(dir)
	require.NoError(t, err)
	return sandbox
}

// TestLocalFS runs the conformance suite against a chrooted temp directory.
func TestLocalFS(t *testing.T) {
	fstest.TestSuiteWithConfig(t, func() core.FS { return newLocalSandbox(t) }, fstest.LocalTestConfig())
}

// TestMemoryFS runs the conformance suite against an in-memory filesystem.
func TestMemoryFS(t *testing.T) {
	fstest.TestSuiteWithConfig(t, func() core.FS { return NewMemory() }, fstest.MemoryTestConfig())
}

// TestLocalFS_WithRoot verifies WithRoot confines names to the root directory.
func TestLocalFS_WithRoot(t *testing.T) {
	dir := t.TempDir()
	fsys := NewLocal(WithRoot(dir))

	require.NoError(t, fsys.WriteFile("/notes.txt", []byte("rooted"), 0o644))

	data, err := os.ReadFile(filepath.Join(dir, "notes.txt"))
	require.NoError(t, err)
	assert.Equal(t, "rooted", string(data))
	assert.Equal(t, core.FSTypeLocal, fsys.Type())
}

// TestLocalFS_RelativeNames verifies relative names resolve against the working directory.
func TestLocalFS_RelativeNames(t *testing.T) {
	dir := t.TempDir()
	testChdir(t, dir)

	fsys := NewLocal()
	require.NoError(t, fsys.WriteFile("relative.txt", []byte("cwd"), 0o644))

	data, err := os.ReadFile(filepath.Join(dir, "relative.txt"))
	require.NoError(t, err)
	assert.Equal(t, "cwd", string(data))

	exists, err := fsys.Exists(filepath.Join(dir, "relative.txt"))
	require.NoError(t, err)
	assert.True(t, exists)
}

// TestLocalFS_ChrootOnFile verifies Chroot reports ENOTDIR-style errors for files.
func TestLocalFS_ChrootOnFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := NewLocal().Chroot(file)
	var pathErr *iofs.PathError
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, "chroot", pathErr.Op)
}

// TestLocalFS_MetadataOutsideRootIsClamped verifies Chmod cannot reach above a chroot.
func TestLocalFS_MetadataOutsideRootIsClamped(t *testing.T) {
	parent := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(parent, "secret.txt"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(parent, "jail"), 0o755))

	jail, err := NewLocal().Chroot(filepath.Join(parent, "jail"))
	require.NoError(t, err)

	mfs, ok := jail.(core.MetadataFS)
	require.True(t, ok)
	require.Error(t, mfs.Chmod("../secret.txt", 0o600))

	info, err := os.Stat(filepath.Join(parent, "secret.txt"))
	require.NoError(t, err)
	assert.Equal(t, iofs.FileMode(0o644), info.Mode().Perm())
}

// TestLocalFS_Times verifies timestamps come back for local files.
func TestLocalFS_Times(t *testing.T) {
	fsys := NewLocal()
	name := filepath.Join(t.TempDir(), "stamp.txt")
	require.NoError(t, fsys.WriteFile(name, []byte("x"), 0o644))

	mtime := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, fsys.Chtimes(name, mtime, mtime))

	ts, err := fsys.Times(name)
	require.NoError(t, err)
	assert.True(t, ts.Modified.Equal(mtime))
	assert.False(t, ts.Created().IsZero())
}

// TestMemoryFS_MetadataUnsupported verifies memfs reports ErrUnsupported for Chmod/Chtimes.
func TestMemoryFS_MetadataUnsupported(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, fsys.WriteFile("a.txt", []byte("x"), 0o644))

	require.ErrorIs(t, fsys.Chmod("a.txt", 0o600), core.ErrUnsupported)
	require.ErrorIs(t, fsys.Chtimes("a.txt", time.Now(), time.Now()), core.ErrUnsupported)
}

// TestMemoryFS_RelativeAndAbsoluteAgree verifies "a.txt" and "/a.txt" name the same file.
func TestMemoryFS_RelativeAndAbsoluteAgree(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, fsys.WriteFile("a.txt", []byte("same"), 0o644))

	data, err := fsys.ReadFile("/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "same", string(data))
	assert.Equal(t, core.FSTypeMemory, fsys.Type())
}

// TestUnwrap verifies the underlying billy filesystem is exposed.
func TestMemoryFS_Rename(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, fsys.WriteFile("/dir/a.txt", []byte("a"), 0o600))
	require.NoError(t, fsys.WriteFile("/dir.txt", []byte("keep"), 0o644))

	t.Run("onto itself", func(t *testing.T) {
		require.NoError(t, fsys.Rename("/dir/a.txt", "dir/a.txt"))
		got, err := fsys.ReadFile("/dir/a.txt")
		require.NoError(t, err)
		assert.Equal(t, "a", string(got))
	})

	t.Run("into own subtree", func(t *testing.T) {
		err := fsys.Rename("/dir", "/dir/nested")
		var linkErr *os.LinkError
		require.ErrorAs(t, err, &linkErr)
		assert.Equal(t, "rename", linkErr.Op)
	})

	t.Run("keeps permissions", func(t *testing.T) {
		require.NoError(t, fsys.Rename("/dir", "/moved"))
		info, err := fsys.Stat("/moved/a.txt")
		require.NoError(t, err)
		assert.Equal(t, iofs.FileMode(0o600), info.Mode().Perm())

		exists, err := fsys.Exists("/dir.txt")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("missing source", func(t *testing.T) {
		err := fsys.Rename("/ghost", "/anywhere")
		assert.ErrorIs(t, err, iofs.ErrNotExist)
	})
}

func TestUnwrap(t *testing.T) {
	assert.NotNil(t, NewLocal().Unwrap())
	assert.NotNil(t, NewMemory().Unwrap())
}

// TestNormalize verifies path normalization.
func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"a/b/../c": "a/c",
		"./a":      "a",
		"/x//y/":   "/x/y",
		".":        ".",
	}
	for in, want := range tests {
		assert.Equal(t, want, normalize(in), "normalize(%q)", in)
	}
}

// TestResolveAgainstRoot verifies memory names are rooted and cannot climb above "/".
func TestResolveAgainstRoot(t *testing.T) {
	tests := map[string]string{
		"":         "/",
		".":        "/",
		"a/b":      "/a/b",
		"/a/b":     "/a/b",
		"../../up": "/up",
	}
	for in, want := range tests {
		assert.Equal(t, want, resolveAgainstRoot(in), "resolveAgainstRoot(%q)", in)
	}
}

// TestDirEntry_Methods verifies dirEntry mirrors its FileInfo.
func TestDirEntry_Methods(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, fsys.MkdirAll("/dir/sub", 0o755))
	require.NoError(t, fsys.WriteFile("/dir/file.txt", []byte("x"), 0o644))

	entries, err := fsys.ReadDir("/dir")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "file.txt", entries[0].Name())
	assert.False(t, entries[0].IsDir())
	assert.True(t, entries[0].Type().IsRegular())

	assert.Equal(t, "sub", entries[1].Name())
	assert.True(t, entries[1].IsDir())

	info, err := entries[1].Info()
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

// testChdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent to testing.T.Chdir from Go 1.24).
func testChdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
