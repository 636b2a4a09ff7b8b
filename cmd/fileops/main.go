// Command fileops exposes the fileops library on the command line.
//
// The backend, permission bits and logging are configured through FILEOPS_*
// environment variables (see package config). Operations that report false
// exit with status 1.
package main

import (
	"fmt"
	"os"

	"github.com/jmgilman/fileops"
	"github.com/jmgilman/fileops/config"
	"github.com/jmgilman/fileops/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fileops: %v\n", err)
		os.Exit(2)
	}

	logger, err := logging.New(cfg.Logging())
	if err != nil {
		fmt.Fprintf(os.Stderr, "fileops: %v\n", err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	ops, err := fileops.FromConfig(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fileops: %v\n", err)
		os.Exit(2)
	}

	cmd := newRootCmd(&app{ops: ops, stdout: os.Stdout, stderr: os.Stderr})
	if err := cmd.Execute(); err != nil {
		if err != errFailed {
			fmt.Fprintf(os.Stderr, "fileops: %v\n", err)
		}
		_ = logger.Sync()
		os.Exit(1)
	}
}
