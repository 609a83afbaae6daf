// SPDX-FileCopyrightText: 2025 The Gemcase Authors
// SPDX-License-Identifier: EUPL-1.2

// Package action performs a gem's primary action: open its external link
// when one exists, otherwise fetch its content and place it on the
// clipboard. Side effects sit behind ports so the browser and the tests
// can swap them out.
package action

import (
	"context"
	"errors"
)

// Action failure kinds. The presentation layer keys its transient
// notifications on these, so each failure reads differently.
var (
	// ErrFetch indicates the content reference could not be resolved.
	ErrFetch = errors.New("content fetch failed")
	// ErrClipboard indicates the clipboard rejected the write.
	ErrClipboard = errors.New("clipboard write failed")
	// ErrOpen indicates the link could not be handed to the browser.
	ErrOpen = errors.New("link open failed")
	// ErrNoContent indicates the gem offers nothing to copy.
	ErrNoContent = errors.New("gem has no content reference")
	// ErrNoLink indicates the gem offers nothing to open.
	ErrNoLink = errors.New("gem has no external link")
)

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	Write(text string) error
}

// Navigator opens a URL in the user's default browser. The browser's
// fate is not consulted beyond launch.
type Navigator interface {
	Open(ctx context.Context, url string) error
}

// ContentFetcher resolves a content reference into text. Resolution is
// lazy; nothing is prefetched or cached.
type ContentFetcher interface {
	Fetch(ctx context.Context, ref string) (string, error)
}
