package fileops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/fileops/errors"
	"github.com/jmgilman/fileops/fs/billy"
)

func newCheckedMemory(t *testing.T) Checked {
	t.Helper()
	return newHarness(t, billy.NewMemory(), "/").Checked()
}

func TestChecked_CreateDirectorySignal(t *testing.T) {
	c := newCheckedMemory(t)

	created, err := c.CreateDirectory("/projects/new")
	require.NoError(t, err)
	assert.True(t, created)

	// Existing path: distinguishable from failure through the nil error.
	created, err = c.CreateDirectory("/projects/new")
	require.NoError(t, err)
	assert.False(t, created)
}

func TestChecked_DeleteMissing(t *testing.T) {
	c := newCheckedMemory(t)

	removed, err := c.DeleteFile("/nothing/here.txt")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestChecked_ErrorsCarryOpAndPaths(t *testing.T) {
	c := newCheckedMemory(t)

	err := c.CopyFile("/missing.txt", "/out/copy.txt")
	require.Error(t, err)

	var opErr errors.OpError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, OpCopyFile, opErr.Op())
	assert.Equal(t, "/missing.txt", opErr.Path())
	assert.Equal(t, "/out/copy.txt", opErr.Context()["dst"])
	assert.Equal(t, errors.CodeNotFound, opErr.Code())
	assert.True(t, errors.IsNotFound(err))
}

func TestChecked_GetFileInfoCodes(t *testing.T) {
	c := newCheckedMemory(t)
	require.NoError(t, c.CreateFile("/dir/file.txt", "x"))

	_, err := c.GetFileInfo("/dir/absent.txt")
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))

	_, err = c.GetFileInfo("/dir")
	assert.Equal(t, errors.CodeNotRegular, errors.GetCode(err))
	assert.Equal(t, errors.CategoryPath, errors.GetCategory(err))

	info, err := c.GetFileInfo("/dir/file.txt")
	require.NoError(t, err)
	assert.Equal(t, "file.txt", info.Name)
}

func TestChecked_EncodingCharsetHint(t *testing.T) {
	c := newCheckedMemory(t)

	latin1 := "Les na\xefves fran\xe7aises aiment le caf\xe9 et la cr\xe8me br\xfbl\xe9e chaque matin."
	err := c.CreateFile("/latin1.txt", latin1)
	require.Error(t, err)
	assert.Equal(t, errors.CodeEncoding, errors.GetCode(err))
	assert.Equal(t, errors.CategoryEncoding, errors.GetCategory(err))

	var opErr errors.OpError
	require.True(t, errors.As(err, &opErr))
	assert.NotEmpty(t, opErr.Context()["charset"])
}

func TestChecked_ListFilesDefaultPattern(t *testing.T) {
	c := newCheckedMemory(t)
	require.NoError(t, c.CreateFile("/l/one.txt", "1"))

	got, err := c.ListFiles("/l", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"/l/one.txt"}, got)
}

func TestChecked_ListFilesEmptyDirectory(t *testing.T) {
	c := newCheckedMemory(t)
	require.NoError(t, c.CreateFile("/top.txt", "t"))
	require.NoError(t, c.CreateFile("/nested/deep.txt", "d"))

	got, err := c.ListFiles("", "*.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"top.txt"}, got)
}

func TestChecked_FileExistsEmptyPath(t *testing.T) {
	c := newCheckedMemory(t)

	exists, err := c.FileExists("")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestValidateUTF8(t *testing.T) {
	require.NoError(t, validateUTF8([]byte("plain ascii")))
	require.NoError(t, validateUTF8([]byte("ünïcödé ✓")))
	require.NoError(t, validateUTF8(nil))
	require.Error(t, validateUTF8([]byte{0xc3, 0x28}))
}

func TestHasDotSegment(t *testing.T) {
	tests := map[string]bool{
		"*.txt":          false,
		".*":             true,
		"sub/.git/x":     true,
		"**/*.go":        false,
		"./a.txt":        false,
		"../up.txt":      false,
		".hidden":        true,
		"dir/.config.js": true,
	}
	for in, want := range tests {
		assert.Equal(t, want, hasDotSegment(in), in)
	}
}
