package fstest

import (
	"bytes"
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/fileops/fs/core"
)

// TestChrootFSWithConfig tests scoped filesystem views and boundary enforcement.
func TestChrootFSWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	// root/
	//   chroot-dir/
	//     inside.txt
	//     nested/
	//       deep.txt
	//   outside.txt
	setup := map[string]string{
		"chroot-dir/inside.txt":      "inside content",
		"chroot-dir/nested/deep.txt": "deep content",
		"outside.txt":                "outside content",
	}
	if err := filesystem.MkdirAll("chroot-dir/nested", 0o755); err != nil {
		t.Fatalf("MkdirAll(chroot-dir/nested): setup failed: %v", err)
	}
	for name, body := range setup {
		if err := filesystem.WriteFile(name, []byte(body), 0o644); err != nil {
			t.Fatalf("WriteFile(%s): setup failed: %v", name, err)
		}
	}

	run(t, config, "ChrootFS", "ChrootToSubdirectory", func(t *testing.T) {
		chrootFS, err := filesystem.Chroot("chroot-dir")
		if err != nil {
			t.Fatalf("Chroot(chroot-dir): got error %v, want nil", err)
		}

		data, err := chrootFS.ReadFile("inside.txt")
		if err != nil {
			t.Errorf("chrootFS.ReadFile(inside.txt): got error %v, want nil", err)
		} else if !bytes.Equal(data, []byte("inside content")) {
			t.Errorf("chrootFS.ReadFile(inside.txt): got %q, want %q", data, "inside content")
		}

		if _, err := chrootFS.ReadFile("outside.txt"); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("chrootFS.ReadFile(outside.txt): got error %v, want fs.ErrNotExist", err)
		}

		if err := chrootFS.WriteFile("new-inside.txt", []byte("new content"), 0o644); err != nil {
			t.Fatalf("chrootFS.WriteFile(new-inside.txt): got error %v, want nil", err)
		}
		data, err = filesystem.ReadFile("chroot-dir/new-inside.txt")
		if err != nil {
			t.Errorf("filesystem.ReadFile(chroot-dir/new-inside.txt): got error %v, want nil", err)
		} else if !bytes.Equal(data, []byte("new content")) {
			t.Errorf("filesystem.ReadFile(chroot-dir/new-inside.txt): got %q, want %q", data, "new content")
		}
	})

	run(t, config, "ChrootFS", "PathTraversal", func(t *testing.T) {
		chrootFS, err := filesystem.Chroot("chroot-dir")
		if err != nil {
			t.Fatalf("Chroot(chroot-dir): got error %v, want nil", err)
		}

		// Providers may reject the name or clamp it to the root; either way
		// the outside file must stay unreachable.
		data, err := chrootFS.ReadFile("../outside.txt")
		if err == nil && bytes.Equal(data, []byte("outside content")) {
			t.Errorf("chrootFS.ReadFile(../outside.txt): escaped the chroot boundary")
		}
	})

	run(t, config, "ChrootFS", "ChrootOnChroot", func(t *testing.T) {
		outer, err := filesystem.Chroot("chroot-dir")
		if err != nil {
			t.Fatalf("Chroot(chroot-dir): got error %v, want nil", err)
		}
		inner, err := outer.Chroot("nested")
		if err != nil {
			t.Fatalf("Chroot(nested): got error %v, want nil", err)
		}
		data, err := inner.ReadFile("deep.txt")
		if err != nil {
			t.Fatalf("inner.ReadFile(deep.txt): got error %v, want nil", err)
		}
		if string(data) != "deep content" {
			t.Errorf("inner.ReadFile(deep.txt): got %q, want %q", data, "deep content")
		}
	})

	run(t, config, "ChrootFS", "ChrootNotExist", func(t *testing.T) {
		if _, err := filesystem.Chroot("missing-dir"); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Chroot(missing-dir): got error %v, want fs.ErrNotExist", err)
		}
	})

	run(t, config, "ChrootFS", "ChrootOnFile", func(t *testing.T) {
		if _, err := filesystem.Chroot("outside.txt"); err == nil {
			t.Errorf("Chroot(outside.txt): got nil, want error")
		}
	})
}
