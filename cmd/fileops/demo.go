package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jmgilman/fileops"
	"github.com/jmgilman/fileops/fs/core"
)

var (
	okMark   = color.New(color.FgGreen, color.Bold).SprintFunc()
	failMark = color.New(color.FgRed, color.Bold).SprintFunc()
	heading  = color.New(color.FgCyan, color.Bold).SprintFunc()
)

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo [DIR]",
		Short: "Walk through every operation in a scratch directory",
		Long: `Walk through every operation: create files with custom extensions, read,
copy, move into a subdirectory, list, inspect and delete.

Without DIR a temporary directory is used on the local backend and /demo on
the memory backend.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := optionalArg(args, 0)
			if dir == "" {
				var err error
				if dir, err = scratchDir(a.ops); err != nil {
					return err
				}
			}
			return runDemo(cmd.OutOrStdout(), a.ops, dir)
		},
	}
}

// scratchDir picks a fresh working directory for the demo.
func scratchDir(ops *fileops.FileOps) (string, error) {
	if ops.FS().Type() == core.FSTypeMemory {
		return "/demo", nil
	}
	return os.MkdirTemp("", "fileops-demo-")
}

// runDemo performs the walkthrough in dir and reports each step on w.
// It fails if any step that should succeed did not.
func runDemo(w io.Writer, ops *fileops.FileOps, dir string) error {
	failed := 0
	step := func(ok bool, format string, args ...interface{}) {
		mark := okMark("✓")
		if !ok {
			mark = failMark("✗")
			failed++
		}
		fmt.Fprintf(w, "  %s %s\n", mark, fmt.Sprintf(format, args...))
	}
	section := func(n int, title string) {
		fmt.Fprintf(w, "\n%s\n", heading(fmt.Sprintf("%d. %s", n, title)))
	}

	fmt.Fprintf(w, "Working directory: %s\n", dir)

	section(1, "Create a file")
	example := filepath.Join(dir, "example.txt")
	step(ops.CreateFile(example, "This is an example file."), "created %s", example)

	section(2, "Create files with custom extensions")
	for _, name := range []string{"data.xyz", "config.myapp", "backup.old"} {
		p := filepath.Join(dir, name)
		step(ops.CreateFile(p, "Contents of "+name), "created %s", p)
	}

	section(3, "Read a file")
	content := ops.ReadFile(example)
	step(content != "", "read %q", content)

	section(4, "Copy a file")
	copied := filepath.Join(dir, "example_copy.txt")
	step(ops.CopyFile(example, copied), "copied to %s", copied)

	section(5, "Move a file")
	moved := filepath.Join(dir, "subdir", "moved_example.txt")
	step(ops.MoveFile(example, moved), "moved to %s", moved)

	section(6, "List files")
	files := ops.ListFiles(dir)
	step(len(files) > 0, "%d entries", len(files))
	for _, f := range files {
		fmt.Fprintf(w, "      %s\n", f)
	}

	section(7, "Inspect files")
	shown := 0
	for _, f := range files {
		if shown == 3 {
			break
		}
		info, ok := ops.GetFileInfo(f)
		if !ok {
			continue
		}
		shown++
		step(true, "%s: %d bytes, extension %s, %s", info.Name, info.Size, orNone(info.Extension), orNone(info.ContentType))
	}

	section(8, "Delete a file")
	step(ops.DeleteFile(copied), "deleted %s", copied)

	fmt.Fprintln(w)
	if failed > 0 {
		fmt.Fprintf(w, "%s %d step(s) failed\n", failMark("Demo finished:"), failed)
		return errFailed
	}
	fmt.Fprintf(w, "%s\n", okMark("Demo finished."))
	return nil
}
