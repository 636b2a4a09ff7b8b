package fstest

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/fileops/fs/core"
)

// TestManageFSWithConfig tests management operations: Remove and Rename.
func TestManageFSWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	run(t, config, "ManageFS", "RemoveFile", func(t *testing.T) {
		if err := filesystem.WriteFile("remove-me.txt", []byte("bye"), 0o644); err != nil {
			t.Fatalf("WriteFile(remove-me.txt): setup failed: %v", err)
		}
		if err := filesystem.Remove("remove-me.txt"); err != nil {
			t.Fatalf("Remove(%q): got error %v, want nil", "remove-me.txt", err)
		}
		if exists, _ := filesystem.Exists("remove-me.txt"); exists {
			t.Errorf("Exists(%q) after Remove: got true, want false", "remove-me.txt")
		}
	})

	run(t, config, "ManageFS", "RemoveEmptyDir", func(t *testing.T) {
		if err := filesystem.MkdirAll("empty-dir", 0o755); err != nil {
			t.Fatalf("MkdirAll(empty-dir): setup failed: %v", err)
		}
		if err := filesystem.Remove("empty-dir"); err != nil {
			t.Errorf("Remove(%q): got error %v, want nil", "empty-dir", err)
		}
	})

	run(t, config, "ManageFS", "RemoveNonEmptyDir", func(t *testing.T) {
		if err := filesystem.MkdirAll("full-dir", 0o755); err != nil {
			t.Fatalf("MkdirAll(full-dir): setup failed: %v", err)
		}
		if err := filesystem.WriteFile("full-dir/child.txt", []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile(full-dir/child.txt): setup failed: %v", err)
		}
		if err := filesystem.Remove("full-dir"); err == nil {
			t.Errorf("Remove(%q) on non-empty dir: got nil, want error", "full-dir")
		}
	})

	run(t, config, "ManageFS", "RemoveNotExist", func(t *testing.T) {
		err := filesystem.Remove("never-existed.txt")
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Remove(%q): got error %v, want fs.ErrNotExist", "never-existed.txt", err)
		}
	})

	run(t, config, "ManageFS", "Rename", func(t *testing.T) {
		if err := filesystem.WriteFile("old-name.txt", []byte("moving"), 0o644); err != nil {
			t.Fatalf("WriteFile(old-name.txt): setup failed: %v", err)
		}
		if err := filesystem.MkdirAll("moved", 0o755); err != nil {
			t.Fatalf("MkdirAll(moved): setup failed: %v", err)
		}
		if err := filesystem.Rename("old-name.txt", "moved/new-name.txt"); err != nil {
			t.Fatalf("Rename(): got error %v, want nil", err)
		}
		if exists, _ := filesystem.Exists("old-name.txt"); exists {
			t.Errorf("Exists(%q) after Rename: got true, want false", "old-name.txt")
		}
		got, err := filesystem.ReadFile("moved/new-name.txt")
		if err != nil {
			t.Fatalf("ReadFile(%q): got error %v, want nil", "moved/new-name.txt", err)
		}
		if string(got) != "moving" {
			t.Errorf("ReadFile(%q): got %q, want %q", "moved/new-name.txt", got, "moving")
		}
	})

	run(t, config, "ManageFS", "RenameReplaces", func(t *testing.T) {
		if err := filesystem.WriteFile("src.txt", []byte("new"), 0o644); err != nil {
			t.Fatalf("WriteFile(src.txt): setup failed: %v", err)
		}
		if err := filesystem.WriteFile("dst.txt", []byte("old"), 0o644); err != nil {
			t.Fatalf("WriteFile(dst.txt): setup failed: %v", err)
		}
		if err := filesystem.Rename("src.txt", "dst.txt"); err != nil {
			t.Fatalf("Rename(): got error %v, want nil", err)
		}
		got, _ := filesystem.ReadFile("dst.txt")
		if string(got) != "new" {
			t.Errorf("ReadFile(%q) after Rename: got %q, want %q", "dst.txt", got, "new")
		}
	})

	run(t, config, "ManageFS", "RenameLeavesPrefixedSiblings", func(t *testing.T) {
		for name, data := range map[string]string{"notes.txt": "move me", "notes.txt.bak": "stay"} {
			if err := filesystem.WriteFile(name, []byte(data), 0o644); err != nil {
				t.Fatalf("WriteFile(%s): setup failed: %v", name, err)
			}
		}
		if err := filesystem.MkdirAll("archive", 0o755); err != nil {
			t.Fatalf("MkdirAll(archive): setup failed: %v", err)
		}
		if err := filesystem.Rename("notes.txt", "archive/notes.txt"); err != nil {
			t.Fatalf("Rename(): got error %v, want nil", err)
		}
		got, err := filesystem.ReadFile("notes.txt.bak")
		if err != nil || string(got) != "stay" {
			t.Errorf("ReadFile(%q) after Rename: got %q, %v, want %q", "notes.txt.bak", got, err, "stay")
		}
		if exists, _ := filesystem.Exists("archive/notes.txt.bak"); exists {
			t.Errorf("Exists(%q) after Rename: got true, want false", "archive/notes.txt.bak")
		}
	})

	run(t, config, "ManageFS", "RenameDirectory", func(t *testing.T) {
		if err := filesystem.MkdirAll("tree/inner", 0o755); err != nil {
			t.Fatalf("MkdirAll(tree/inner): setup failed: %v", err)
		}
		if err := filesystem.WriteFile("tree/inner/leaf.txt", []byte("leaf"), 0o644); err != nil {
			t.Fatalf("WriteFile(tree/inner/leaf.txt): setup failed: %v", err)
		}
		if err := filesystem.WriteFile("tree-sibling.txt", []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile(tree-sibling.txt): setup failed: %v", err)
		}
		if err := filesystem.Rename("tree", "forest"); err != nil {
			t.Fatalf("Rename(): got error %v, want nil", err)
		}
		got, err := filesystem.ReadFile("forest/inner/leaf.txt")
		if err != nil || string(got) != "leaf" {
			t.Errorf("ReadFile(%q) after Rename: got %q, %v, want %q", "forest/inner/leaf.txt", got, err, "leaf")
		}
		if exists, _ := filesystem.Exists("tree"); exists {
			t.Errorf("Exists(%q) after Rename: got true, want false", "tree")
		}
		if exists, _ := filesystem.Exists("tree-sibling.txt"); !exists {
			t.Errorf("Exists(%q) after Rename: got false, want true", "tree-sibling.txt")
		}
	})

	run(t, config, "ManageFS", "RenameNotExist", func(t *testing.T) {
		if err := filesystem.Rename("ghost.txt", "anywhere.txt"); err == nil {
			t.Errorf("Rename(%q): got nil, want error", "ghost.txt")
		}
	})
}
