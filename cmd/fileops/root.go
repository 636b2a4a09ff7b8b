package main

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/jmgilman/fileops"
)

// errFailed is returned by commands whose operation reported false.
// The diagnostic has already been logged, so nothing more is printed.
var errFailed = errors.New("operation failed")

// app carries what every command needs.
type app struct {
	ops    *fileops.FileOps
	stdout io.Writer
	stderr io.Writer
}

// result converts a boolean outcome into a command error.
func result(ok bool) error {
	if !ok {
		return errFailed
	}
	return nil
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "fileops",
		Short: "Create, read, copy, move, delete and inspect files",
		Long: `fileops runs simple file operations and reports failures as diagnostics.

Every command exits 0 on success and 1 when the operation reports false.
Configure the backend and logging with FILEOPS_BACKEND, FILEOPS_FILE_MODE,
FILEOPS_DIR_MODE, FILEOPS_LOG_LEVEL and FILEOPS_LOG_DEV.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	root.AddCommand(
		newCreateCmd(a),
		newReadCmd(a),
		newCopyCmd(a),
		newMoveCmd(a),
		newDeleteCmd(a),
		newListCmd(a),
		newMkdirCmd(a),
		newExistsCmd(a),
		newInfoCmd(a),
		newDemoCmd(a),
	)
	return root
}
