// SPDX-FileCopyrightText: 2025 The Gemcase Authors
// SPDX-License-Identifier: EUPL-1.2

package action

import (
	"context"
	"fmt"

	"github.com/jwahlstedt/gemcase/internal/catalog"
	"github.com/jwahlstedt/gemcase/internal/logging"
)

// Outcome says what the primary action did.
type Outcome int

// Primary action outcomes.
const (
	OutcomeNone Outcome = iota
	OutcomeCopied
	OutcomeOpened
)

// String returns the outcome name for logs and structured output.
func (o Outcome) String() string {
	switch o {
	case OutcomeCopied:
		return "copied"
	case OutcomeOpened:
		return "opened"
	default:
		return "none"
	}
}

// Runner executes gem actions through its ports.
type Runner struct {
	fetcher   ContentFetcher
	clipboard Clipboard
	navigator Navigator
}

// NewRunner wires a runner with its three ports.
func NewRunner(fetcher ContentFetcher, clipboard Clipboard, navigator Navigator) *Runner {
	return &Runner{
		fetcher:   fetcher,
		clipboard: clipboard,
		navigator: navigator,
	}
}

// Primary runs the gem's primary action: a link wins over content, and a
// gem with neither is a deliberate no-op.
func (r *Runner) Primary(ctx context.Context, gem catalog.Gem) (Outcome, error) {
	if gem.HasLink() {
		if err := r.OpenLink(ctx, gem); err != nil {
			return OutcomeNone, err
		}

		return OutcomeOpened, nil
	}

	if gem.HasContent() {
		if err := r.Copy(ctx, gem); err != nil {
			return OutcomeNone, err
		}

		return OutcomeCopied, nil
	}

	return OutcomeNone, nil
}

// Copy resolves the gem's content and places it on the clipboard. Fetch
// and clipboard failures come back as distinct kinds.
func (r *Runner) Copy(ctx context.Context, gem catalog.Gem) error {
	if !gem.HasContent() {
		return fmt.Errorf("%w: %s", ErrNoContent, gem.ID)
	}

	content, err := r.fetcher.Fetch(ctx, gem.ContentReference)
	if err != nil {
		logging.ForComponent("action").WithError(err).WithField("gem", gem.ID).
			Warn("content fetch failed")

		return fmt.Errorf("%w: %w", ErrFetch, err)
	}

	if err := r.clipboard.Write(content); err != nil {
		logging.ForComponent("action").WithError(err).WithField("gem", gem.ID).
			Warn("clipboard write failed")

		return fmt.Errorf("%w: %w", ErrClipboard, err)
	}

	logging.ForComponent("action").WithField("gem", gem.ID).Debug("content copied")

	return nil
}

// OpenLink opens the gem's external link in the browser.
func (r *Runner) OpenLink(ctx context.Context, gem catalog.Gem) error {
	if !gem.HasLink() {
		return fmt.Errorf("%w: %s", ErrNoLink, gem.ID)
	}

	if err := r.navigator.Open(ctx, gem.ExternalLink); err != nil {
		logging.ForComponent("action").WithError(err).WithField("gem", gem.ID).
			Warn("link open failed")

		return fmt.Errorf("%w: %w", ErrOpen, err)
	}

	logging.ForComponent("action").WithField("gem", gem.ID).Debug("link opened")

	return nil
}
