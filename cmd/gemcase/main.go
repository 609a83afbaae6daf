// SPDX-FileCopyrightText: 2025 The Gemcase Authors
// SPDX-License-Identifier: EUPL-1.2

// Package main provides the CLI entry point for gemcase.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/jwahlstedt/gemcase/internal/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Acquire process lock to prevent multiple gemcase instances
	lockPath := filepath.Join(os.TempDir(), "gemcase.lock")
	lock := flock.New(lockPath)

	locked, err := lock.TryLock()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to acquire process lock: %v\n", err)

		return cli.ExitSystemError
	}

	if !locked {
		fmt.Fprintf(os.Stderr, "Another gemcase instance is already running\n")

		return cli.ExitGeneralError
	}

	defer func() {
		if unlockErr := lock.Unlock(); unlockErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to release process lock: %v\n", unlockErr)
		}
	}()

	app := cli.App()

	ctx := context.Background()
	if err := app.Run(ctx, os.Args); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			// Error message to stderr only
			fmt.Fprintf(os.Stderr, "%s\n", exitErr.Message)

			return exitErr.Code
		}
		// Fallback for unexpected errors (should not happen)
		fmt.Fprintf(os.Stderr, "Unexpected error: %v\n", err)

		return cli.ExitGeneralError
	}

	return cli.ExitSuccess
}
