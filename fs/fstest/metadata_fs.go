package fstest

import (
	"errors"
	"io/fs"
	"testing"
	"time"

	"github.com/jmgilman/fileops/fs/core"
)

// TestMetadataFSWithConfig tests metadata operations (Lstat, Chmod, Chtimes).
// Skips if the filesystem doesn't implement core.MetadataFS. Chmod and
// Chtimes may report core.ErrUnsupported instead of succeeding.
func TestMetadataFSWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	mfs, ok := filesystem.(core.MetadataFS)
	if !ok {
		t.Skip("MetadataFS not supported")
		return
	}

	testData := []byte("metadata test file")
	if err := filesystem.WriteFile("meta.txt", testData, 0o644); err != nil {
		t.Fatalf("WriteFile(meta.txt): setup failed: %v", err)
	}
	if err := filesystem.MkdirAll("meta-dir", 0o755); err != nil {
		t.Fatalf("MkdirAll(meta-dir): setup failed: %v", err)
	}

	run(t, config, "MetadataFS", "Lstat", func(t *testing.T) {
		info, err := mfs.Lstat("meta.txt")
		if err != nil {
			t.Fatalf("Lstat(meta.txt): got error %v, want nil", err)
		}
		if info.IsDir() || info.Size() != int64(len(testData)) {
			t.Errorf("Lstat(meta.txt): got dir=%v size=%d, want file of %d bytes",
				info.IsDir(), info.Size(), len(testData))
		}

		dirInfo, err := mfs.Lstat("meta-dir")
		if err != nil {
			t.Fatalf("Lstat(meta-dir): got error %v, want nil", err)
		}
		if !dirInfo.IsDir() {
			t.Errorf("Lstat(meta-dir): IsDir() = false, want true")
		}

		if _, err := mfs.Lstat("nonexistent-lstat.txt"); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Lstat(nonexistent-lstat.txt): got error %v, want fs.ErrNotExist", err)
		}
	})

	run(t, config, "MetadataFS", "Chmod", func(t *testing.T) {
		err := mfs.Chmod("meta.txt", 0o600)
		if errors.Is(err, core.ErrUnsupported) {
			t.Skip("Chmod not supported by provider")
		}
		if err != nil {
			t.Fatalf("Chmod(meta.txt, 0600): got error %v, want nil", err)
		}
		if config.PreservesModes {
			info, err := filesystem.Stat("meta.txt")
			if err != nil {
				t.Fatalf("Stat(meta.txt) after Chmod: got error %v, want nil", err)
			}
			if info.Mode().Perm() != 0o600 {
				t.Errorf("Stat(meta.txt) after Chmod: Perm() = %v, want %v", info.Mode().Perm(), fs.FileMode(0o600))
			}
		}

		if err := mfs.Chmod("nonexistent-chmod.txt", 0o644); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Chmod(nonexistent-chmod.txt): got error %v, want fs.ErrNotExist", err)
		}
	})

	run(t, config, "MetadataFS", "Chtimes", func(t *testing.T) {
		atime := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
		mtime := time.Date(2024, 2, 20, 14, 45, 30, 0, time.UTC)

		err := mfs.Chtimes("meta.txt", atime, mtime)
		if errors.Is(err, core.ErrUnsupported) {
			t.Skip("Chtimes not supported by provider")
		}
		if err != nil {
			t.Fatalf("Chtimes(meta.txt): got error %v, want nil", err)
		}
		info, err := filesystem.Stat("meta.txt")
		if err != nil {
			t.Fatalf("Stat(meta.txt) after Chtimes: got error %v, want nil", err)
		}
		if !info.ModTime().Equal(mtime) {
			t.Errorf("Stat(meta.txt) after Chtimes: ModTime() = %v, want %v", info.ModTime(), mtime)
		}

		if err := mfs.Chtimes("nonexistent-chtimes.txt", atime, mtime); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Chtimes(nonexistent-chtimes.txt): got error %v, want fs.ErrNotExist", err)
		}
	})
}

// TestTimesFSWithConfig tests timestamp reporting.
// Skips if the filesystem doesn't implement core.TimesFS.
func TestTimesFSWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	tfs, ok := filesystem.(core.TimesFS)
	if !ok {
		t.Skip("TimesFS not supported")
		return
	}

	if err := filesystem.WriteFile("times.txt", []byte("tick"), 0o644); err != nil {
		t.Fatalf("WriteFile(times.txt): setup failed: %v", err)
	}

	run(t, config, "TimesFS", "Times", func(t *testing.T) {
		ts, err := tfs.Times("times.txt")
		if err != nil {
			t.Fatalf("Times(times.txt): got error %v, want nil", err)
		}
		if ts.Modified.IsZero() {
			t.Errorf("Times(times.txt): Modified is zero")
		}
		if ts.Created().IsZero() {
			t.Errorf("Times(times.txt): Created() is zero")
		}
	})

	run(t, config, "TimesFS", "TimesNotExist", func(t *testing.T) {
		if _, err := tfs.Times("nonexistent-times.txt"); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Times(nonexistent-times.txt): got error %v, want fs.ErrNotExist", err)
		}
	})
}
