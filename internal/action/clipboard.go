// SPDX-FileCopyrightText: 2025 The Gemcase Authors
// SPDX-License-Identifier: EUPL-1.2

package action

import "github.com/atotto/clipboard"

// SystemClipboard writes through the platform clipboard tool (xclip,
// wl-copy, pbcopy, or the Windows API).
type SystemClipboard struct{}

// Write places text on the system clipboard.
func (SystemClipboard) Write(text string) error {
	return clipboard.WriteAll(text)
}
