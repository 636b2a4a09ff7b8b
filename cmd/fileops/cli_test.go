package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/yaml.v3"

	"github.com/jmgilman/fileops"
	"github.com/jmgilman/fileops/fs/billy"
)

type cli struct {
	ops    *fileops.FileOps
	logs   *observer.ObservedLogs
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	color.NoColor = true
	zcore, logs := observer.New(zapcore.DebugLevel)
	return &cli{
		ops:    fileops.New(fileops.WithFS(billy.NewMemory()), fileops.WithLogger(zap.New(zcore))),
		logs:   logs,
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}
}

// run executes one command line with fresh output buffers.
func (c *cli) run(stdin string, args ...string) error {
	c.stdout.Reset()
	c.stderr.Reset()
	cmd := newRootCmd(&app{ops: c.ops, stdout: c.stdout, stderr: c.stderr})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	return cmd.Execute()
}

func (c *cli) warnings() []observer.LoggedEntry {
	return c.logs.FilterLevelExact(zapcore.WarnLevel).All()
}

func TestCreateAndRead(t *testing.T) {
	c := newCLI(t)

	require.NoError(t, c.run("", "create", "/notes/todo.md", "- ship it"))
	require.NoError(t, c.run("", "read", "/notes/todo.md"))
	assert.Equal(t, "- ship it", c.stdout.String())

	require.NoError(t, c.run("from stdin", "create", "/greeting.custom", "--stdin"))
	require.NoError(t, c.run("", "read", "/greeting.custom"))
	assert.Equal(t, "from stdin", c.stdout.String())
}

func TestReadMissingFails(t *testing.T) {
	c := newCLI(t)

	err := c.run("", "read", "/missing.txt")
	assert.ErrorIs(t, err, errFailed)
	assert.Empty(t, c.stdout.String())

	w := c.warnings()
	require.Len(t, w, 1)
	assert.Equal(t, "read_file failed", w[0].Message)
	assert.Equal(t, "NOT_FOUND", w[0].ContextMap()["code"])
}

func TestCopyMoveDelete(t *testing.T) {
	c := newCLI(t)
	require.NoError(t, c.run("", "create", "/a.txt", "hello"))

	require.NoError(t, c.run("", "copy", "/a.txt", "/b.txt"))
	require.NoError(t, c.run("", "move", "/b.txt", "/sub/c.txt"))
	assert.True(t, c.ops.FileExists("/sub/c.txt"))
	assert.False(t, c.ops.FileExists("/b.txt"))

	require.NoError(t, c.run("", "delete", "/sub/c.txt"))
	assert.ErrorIs(t, c.run("", "delete", "/sub/c.txt"), errFailed)
	assert.Empty(t, c.warnings(), "deleting an absent file is not a failure worth reporting")
}

func TestMkdirAndExists(t *testing.T) {
	c := newCLI(t)

	require.NoError(t, c.run("", "mkdir", "/x/y"))
	assert.ErrorIs(t, c.run("", "mkdir", "/x/y"), errFailed)

	assert.ErrorIs(t, c.run("", "exists", "/x/y"), errFailed)
	assert.Equal(t, "false\n", c.stdout.String())

	require.NoError(t, c.run("", "create", "/x/y/z.txt", ""))
	require.NoError(t, c.run("", "exists", "/x/y/z.txt"))
	assert.Equal(t, "true\n", c.stdout.String())
}

func TestList(t *testing.T) {
	c := newCLI(t)
	for _, name := range []string{"/d/a.txt", "/d/b.log", "/d/.hidden"} {
		require.True(t, c.ops.CreateFile(name, "x"))
	}

	require.NoError(t, c.run("", "list", "/d"))
	assert.Equal(t, "/d/a.txt\n/d/b.log\n", c.stdout.String())

	require.NoError(t, c.run("", "list", "/d", "*.txt"))
	assert.Equal(t, "/d/a.txt\n", c.stdout.String())

	assert.ErrorIs(t, c.run("", "list", "/nope"), errFailed)
	require.Len(t, c.warnings(), 1)
	assert.Equal(t, "list_files failed", c.warnings()[0].Message)
}

func TestInfo(t *testing.T) {
	c := newCLI(t)
	require.True(t, c.ops.CreateFile("/data.xyz", "plain text"))

	t.Run("text", func(t *testing.T) {
		require.NoError(t, c.run("", "info", "/data.xyz"))
		out := c.stdout.String()
		assert.Contains(t, out, "Name:         data.xyz")
		assert.Contains(t, out, "Size:         10 bytes")
		assert.Contains(t, out, "Extension:    .xyz")
	})

	t.Run("yaml", func(t *testing.T) {
		require.NoError(t, c.run("", "info", "/data.xyz", "--output", "yaml"))
		var doc map[string]interface{}
		require.NoError(t, yaml.Unmarshal(c.stdout.Bytes(), &doc))
		assert.Equal(t, "data.xyz", doc["name"])
		assert.Equal(t, ".xyz", doc["extension"])
		assert.Equal(t, 10, doc["size"])
		assert.Equal(t, "0644", doc["mode"])
	})

	t.Run("json", func(t *testing.T) {
		require.NoError(t, c.run("", "info", "/data.xyz", "-o", "json"))
		var info fileops.FileInfo
		require.NoError(t, json.Unmarshal(c.stdout.Bytes(), &info))
		assert.Equal(t, "/data.xyz", info.Path)
		assert.Equal(t, int64(10), info.Size)
	})

	t.Run("json error", func(t *testing.T) {
		assert.ErrorIs(t, c.run("", "info", "/missing", "-o", "json"), errFailed)
		var doc map[string]interface{}
		require.NoError(t, json.Unmarshal(c.stdout.Bytes(), &doc))
		assert.Equal(t, "NOT_FOUND", doc["code"])
	})

	t.Run("missing is not a diagnostic", func(t *testing.T) {
		assert.ErrorIs(t, c.run("", "info", "/missing"), errFailed)
		assert.Contains(t, c.stderr.String(), "not a regular file")
		assert.Empty(t, c.warnings())
	})

	t.Run("unknown format", func(t *testing.T) {
		err := c.run("", "info", "/data.xyz", "-o", "xml")
		require.Error(t, err)
		assert.NotErrorIs(t, err, errFailed)
	})
}

func TestDemo(t *testing.T) {
	c := newCLI(t)

	require.NoError(t, c.run("", "demo"))
	out := c.stdout.String()
	assert.Contains(t, out, "Working directory: /demo")
	assert.Contains(t, out, "Demo finished.")
	assert.NotContains(t, out, "✗")
	assert.Empty(t, c.warnings())

	assert.True(t, c.ops.FileExists("/demo/subdir/moved_example.txt"))
	assert.True(t, c.ops.FileExists("/demo/config.myapp"))
	assert.False(t, c.ops.FileExists("/demo/example.txt"))
	assert.False(t, c.ops.FileExists("/demo/example_copy.txt"))
}
