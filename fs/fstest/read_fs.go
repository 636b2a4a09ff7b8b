package fstest

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/jmgilman/fileops/fs/core"
)

// TestReadFSWithConfig tests read-only operations: Open, Stat, ReadDir,
// ReadFile and Exists.
func TestReadFSWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	testContent := []byte("test file content")

	if err := filesystem.MkdirAll("testdir", 0o755); err != nil {
		t.Fatalf("MkdirAll(testdir): setup failed: %v", err)
	}
	if err := filesystem.WriteFile("testdir/testfile.txt", testContent, 0o644); err != nil {
		t.Fatalf("WriteFile(testdir/testfile.txt): setup failed: %v", err)
	}

	run(t, config, "ReadFS", "Open", func(t *testing.T) {
		f, err := filesystem.Open("testdir/testfile.txt")
		if err != nil {
			t.Fatalf("Open(%q): got error %v, want nil", "testdir/testfile.txt", err)
		}
		defer func() { _ = f.Close() }()

		data, err := io.ReadAll(f)
		if err != nil {
			t.Fatalf("ReadAll(): got error %v, want nil", err)
		}
		if !bytes.Equal(data, testContent) {
			t.Errorf("Read(): got %q, want %q", data, testContent)
		}
	})

	run(t, config, "ReadFS", "StatFile", func(t *testing.T) {
		info, err := filesystem.Stat("testdir/testfile.txt")
		if err != nil {
			t.Fatalf("Stat(%q): got error %v, want nil", "testdir/testfile.txt", err)
		}
		if !info.Mode().IsRegular() {
			t.Errorf("Stat(%q): Mode() = %v, want regular file", "testdir/testfile.txt", info.Mode())
		}
		if info.Size() != int64(len(testContent)) {
			t.Errorf("Stat(%q): Size() = %d, want %d", "testdir/testfile.txt", info.Size(), len(testContent))
		}
		if info.Name() != "testfile.txt" {
			t.Errorf("Stat(%q): Name() = %q, want %q", "testdir/testfile.txt", info.Name(), "testfile.txt")
		}
	})

	run(t, config, "ReadFS", "StatDir", func(t *testing.T) {
		info, err := filesystem.Stat("testdir")
		if err != nil {
			t.Fatalf("Stat(%q): got error %v, want nil", "testdir", err)
		}
		if !info.IsDir() {
			t.Errorf("Stat(%q): IsDir() = false, want true", "testdir")
		}
	})

	run(t, config, "ReadFS", "ReadDir", func(t *testing.T) {
		entries, err := filesystem.ReadDir("testdir")
		if err != nil {
			t.Fatalf("ReadDir(%q): got error %v, want nil", "testdir", err)
		}
		if len(entries) != 1 {
			t.Fatalf("ReadDir(%q): got %d entries, want 1", "testdir", len(entries))
		}
		if entries[0].Name() != "testfile.txt" || entries[0].IsDir() {
			t.Errorf("ReadDir(%q): got entry %q (dir=%v), want file %q",
				"testdir", entries[0].Name(), entries[0].IsDir(), "testfile.txt")
		}
	})

	run(t, config, "ReadFS", "ReadFile", func(t *testing.T) {
		data, err := filesystem.ReadFile("testdir/testfile.txt")
		if err != nil {
			t.Fatalf("ReadFile(%q): got error %v, want nil", "testdir/testfile.txt", err)
		}
		if !bytes.Equal(data, testContent) {
			t.Errorf("ReadFile(%q): got %q, want %q", "testdir/testfile.txt", data, testContent)
		}
	})

	run(t, config, "ReadFS", "OpenNotExist", func(t *testing.T) {
		_, err := filesystem.Open("nonexistent")
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Open(%q): got error %v, want fs.ErrNotExist", "nonexistent", err)
		}
	})

	run(t, config, "ReadFS", "Exists", func(t *testing.T) {
		for name, want := range map[string]bool{
			"testdir/testfile.txt": true,
			"testdir":              true,
			"nonexistent":          false,
		} {
			got, err := filesystem.Exists(name)
			if err != nil {
				t.Errorf("Exists(%q): got error %v, want nil", name, err)
				continue
			}
			if got != want {
				t.Errorf("Exists(%q): got %v, want %v", name, got, want)
			}
		}
	})

	run(t, config, "ReadFS", "StdlibGlob", func(t *testing.T) {
		matches, err := fs.Glob(filesystem, "testdir/*.txt")
		if err != nil {
			t.Fatalf("fs.Glob(): got error %v, want nil", err)
		}
		if len(matches) != 1 {
			t.Errorf("fs.Glob(): got %v, want one match", matches)
		}
	})
}
