package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newCreateCmd(a *app) *cobra.Command {
	var fromStdin bool

	cmd := &cobra.Command{
		Use:   "create PATH [CONTENT]",
		Short: "Create or overwrite a file with any extension",
		Example: `  fileops create notes/todo.md "- ship it"
  echo hello | fileops create greeting.custom --stdin`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			content := ""
			switch {
			case fromStdin:
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				content = string(data)
			case len(args) == 2:
				content = args[1]
			}
			return result(a.ops.CreateFile(args[0], content))
		},
	}
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "read the content from standard input")
	return cmd
}

func newReadCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "read PATH",
		Short: "Print the content of a UTF-8 text file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := a.ops.Checked().ReadFile(args[0])
			if err != nil {
				a.ops.Report(err)
				return errFailed
			}
			_, err = io.WriteString(cmd.OutOrStdout(), content)
			return err
		},
	}
}

func newCopyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "copy SRC DST",
		Short: "Copy a file with its permissions and timestamps",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return result(a.ops.CopyFile(args[0], args[1]))
		},
	}
}

func newMoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "move SRC DST",
		Short: "Move or rename a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return result(a.ops.MoveFile(args[0], args[1]))
		},
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete PATH",
		Short: "Delete a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return result(a.ops.DeleteFile(args[0]))
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list DIR [PATTERN]",
		Short: "List directory entries matching a glob pattern",
		Example: `  fileops list .
  fileops list src '**/*.go'`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			matches, err := a.ops.Checked().ListFiles(args[0], optionalArg(args, 1))
			if err != nil {
				a.ops.Report(err)
				return errFailed
			}
			for _, m := range matches {
				fmt.Fprintln(cmd.OutOrStdout(), m)
			}
			return nil
		},
	}
}

func newMkdirCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mkdir PATH",
		Short: "Create a directory and its parents",
		Long:  "Create a directory and its parents. Exits 1 if the path already exists.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return result(a.ops.CreateDirectory(args[0]))
		},
	}
}

func newExistsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "exists PATH",
		Short: "Report whether PATH is a regular file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok := a.ops.FileExists(args[0])
			fmt.Fprintln(cmd.OutOrStdout(), ok)
			return result(ok)
		},
	}
}

// optionalArg returns args[i] or "" when it is absent.
func optionalArg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
