package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jmgilman/fileops"
	"github.com/jmgilman/fileops/errors"
)

// Output formats accepted by --output.
const (
	outputText = "text"
	outputYAML = "yaml"
	outputJSON = "json"
)

func newInfoCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "info PATH",
		Short: "Show size, timestamps, extension and type of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch output {
			case outputText, outputYAML, outputJSON:
			default:
				return fmt.Errorf("unknown output format %q (want text, yaml or json)", output)
			}

			info, err := a.ops.Checked().GetFileInfo(args[0])
			if err != nil {
				if output == outputJSON {
					if encErr := writeJSON(cmd.OutOrStdout(), errors.ToJSON(err)); encErr != nil {
						return encErr
					}
				} else {
					switch errors.GetCode(err) {
					case errors.CodeNotFound, errors.CodeNotRegular:
						fmt.Fprintf(cmd.ErrOrStderr(), "%s: not a regular file\n", args[0])
					default:
						a.ops.Report(err)
					}
				}
				return errFailed
			}

			return writeInfo(cmd.OutOrStdout(), info, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text, yaml or json")
	return cmd
}

// writeInfo renders info in the requested format.
func writeInfo(w io.Writer, info fileops.FileInfo, format string) error {
	switch format {
	case outputJSON:
		return writeJSON(w, info)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(infoDocument(info)); err != nil {
			return err
		}
		return enc.Close()
	default:
		fmt.Fprintf(w, "Name:         %s\n", info.Name)
		fmt.Fprintf(w, "Path:         %s\n", info.Path)
		fmt.Fprintf(w, "Size:         %d bytes\n", info.Size)
		fmt.Fprintf(w, "Extension:    %s\n", orNone(info.Extension))
		fmt.Fprintf(w, "Mode:         %s\n", info.Mode)
		fmt.Fprintf(w, "Content-Type: %s\n", orNone(info.ContentType))
		fmt.Fprintf(w, "Created:      %s\n", info.Created.Format(time.RFC3339))
		fmt.Fprintf(w, "Modified:     %s\n", info.Modified.Format(time.RFC3339))
		return nil
	}
}

// infoYAML is the YAML shape of a FileInfo, with the mode in octal.
type infoYAML struct {
	Name        string    `yaml:"name"`
	Path        string    `yaml:"path"`
	Size        int64     `yaml:"size"`
	Created     time.Time `yaml:"created"`
	Modified    time.Time `yaml:"modified"`
	Extension   string    `yaml:"extension"`
	Mode        string    `yaml:"mode"`
	ContentType string    `yaml:"content_type,omitempty"`
}

func infoDocument(info fileops.FileInfo) infoYAML {
	return infoYAML{
		Name:        info.Name,
		Path:        info.Path,
		Size:        info.Size,
		Created:     info.Created,
		Modified:    info.Modified,
		Extension:   info.Extension,
		Mode:        fmt.Sprintf("%#o", uint32(info.Mode)),
		ContentType: info.ContentType,
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
