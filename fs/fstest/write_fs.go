package fstest

import (
	"bytes"
	"io"
	"testing"

	"github.com/jmgilman/fileops/fs/core"
)

// TestWriteFSWithConfig tests write operations: Create, WriteFile and MkdirAll.
func TestWriteFSWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	run(t, config, "WriteFS", "Create", func(t *testing.T) {
		f, err := filesystem.Create("create-test.txt")
		if err != nil {
			t.Fatalf("Create(%q): got error %v, want nil", "create-test.txt", err)
		}
		data := []byte("created via Create")
		if _, err := f.Write(data); err != nil {
			t.Fatalf("Write(): got error %v, want nil", err)
		}
		if err := f.Close(); err != nil {
			t.Fatalf("Close(): got error %v, want nil", err)
		}

		got, err := filesystem.ReadFile("create-test.txt")
		if err != nil {
			t.Fatalf("ReadFile(%q): got error %v, want nil", "create-test.txt", err)
		}
		if !bytes.Equal(got, data) {
			t.Errorf("ReadFile(%q): got %q, want %q", "create-test.txt", got, data)
		}
	})

	run(t, config, "WriteFS", "CreateTruncates", func(t *testing.T) {
		if err := filesystem.WriteFile("truncate.txt", []byte("a much longer original body"), 0o644); err != nil {
			t.Fatalf("WriteFile(truncate.txt): setup failed: %v", err)
		}
		f, err := filesystem.Create("truncate.txt")
		if err != nil {
			t.Fatalf("Create(%q): got error %v, want nil", "truncate.txt", err)
		}
		if _, err := io.WriteString(f, "short"); err != nil {
			t.Fatalf("Write(): got error %v, want nil", err)
		}
		_ = f.Close()

		got, _ := filesystem.ReadFile("truncate.txt")
		if string(got) != "short" {
			t.Errorf("ReadFile(%q) after Create: got %q, want %q", "truncate.txt", got, "short")
		}
	})

	run(t, config, "WriteFS", "WriteFileOverwrites", func(t *testing.T) {
		for _, body := range []string{"first version of the file", "second"} {
			if err := filesystem.WriteFile("overwrite.txt", []byte(body), 0o644); err != nil {
				t.Fatalf("WriteFile(%q): got error %v, want nil", "overwrite.txt", err)
			}
		}
		got, err := filesystem.ReadFile("overwrite.txt")
		if err != nil {
			t.Fatalf("ReadFile(%q): got error %v, want nil", "overwrite.txt", err)
		}
		if string(got) != "second" {
			t.Errorf("ReadFile(%q): got %q, want %q", "overwrite.txt", got, "second")
		}
	})

	run(t, config, "WriteFS", "WriteEmptyFile", func(t *testing.T) {
		if err := filesystem.WriteFile("empty.txt", nil, 0o644); err != nil {
			t.Fatalf("WriteFile(%q): got error %v, want nil", "empty.txt", err)
		}
		info, err := filesystem.Stat("empty.txt")
		if err != nil {
			t.Fatalf("Stat(%q): got error %v, want nil", "empty.txt", err)
		}
		if info.Size() != 0 {
			t.Errorf("Stat(%q): Size() = %d, want 0", "empty.txt", info.Size())
		}
	})

	run(t, config, "WriteFS", "MkdirAll", func(t *testing.T) {
		if err := filesystem.MkdirAll("a/b/c", 0o755); err != nil {
			t.Fatalf("MkdirAll(%q): got error %v, want nil", "a/b/c", err)
		}
		for _, dir := range []string{"a", "a/b", "a/b/c"} {
			info, err := filesystem.Stat(dir)
			if err != nil {
				t.Errorf("Stat(%q): got error %v, want nil", dir, err)
				continue
			}
			if !info.IsDir() {
				t.Errorf("Stat(%q): IsDir() = false, want true", dir)
			}
		}

		// Existing directories are not an error.
		if err := filesystem.MkdirAll("a/b", 0o755); err != nil {
			t.Errorf("MkdirAll(%q) on existing dir: got error %v, want nil", "a/b", err)
		}
	})

	run(t, config, "WriteFS", "MkdirAllOverFile", func(t *testing.T) {
		if err := filesystem.WriteFile("blocker", []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile(blocker): setup failed: %v", err)
		}
		if err := filesystem.MkdirAll("blocker", 0o755); err == nil {
			t.Errorf("MkdirAll(%q) over a file: got nil, want error", "blocker")
		}
	})
}
