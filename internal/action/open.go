// SPDX-FileCopyrightText: 2025 The Gemcase Authors
// SPDX-License-Identifier: EUPL-1.2

package action

import (
	"context"
	"os/exec"
	"runtime"
)

// BrowserNavigator launches the platform URL handler.
type BrowserNavigator struct{}

// Open hands the URL to the default browser and returns once the handler
// starts.
func (BrowserNavigator) Open(ctx context.Context, url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.CommandContext(ctx, "open", url)
	case "windows":
		cmd = exec.CommandContext(ctx, "rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.CommandContext(ctx, "xdg-open", url)
	}

	return cmd.Start()
}
