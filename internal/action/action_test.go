// SPDX-FileCopyrightText: 2025 The Gemcase Authors
// SPDX-License-Identifier: EUPL-1.2

package action_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwahlstedt/gemcase/internal/action"
	"github.com/jwahlstedt/gemcase/internal/catalog"
	"github.com/jwahlstedt/gemcase/internal/testutil"
)

var errBoom = errors.New("boom")

func newRunner() (*action.Runner, *testutil.MockFetcher, *testutil.MockClipboard, *testutil.MockNavigator) {
	fetcher := new(testutil.MockFetcher)
	clip := new(testutil.MockClipboard)
	nav := new(testutil.MockNavigator)

	return action.NewRunner(fetcher, clip, nav), fetcher, clip, nav
}

// TestPrimaryLinkWinsOverContent: a gem carrying both a link and content
// navigates; the clipboard is never touched.
func TestPrimaryLinkWinsOverContent(t *testing.T) {
	t.Parallel()

	runner, fetcher, clip, nav := newRunner()
	ctx := context.Background()

	gem := catalog.Gem{
		ID:               "both",
		ContentReference: "snippets/both.md",
		ExternalLink:     "https://example.com/both",
	}

	nav.On("Open", ctx, "https://example.com/both").Return(nil)

	outcome, err := runner.Primary(ctx, gem)

	require.NoError(t, err)
	assert.Equal(t, action.OutcomeOpened, outcome)

	nav.AssertExpectations(t)
	fetcher.AssertNotCalled(t, "Fetch", ctx, "snippets/both.md")
	clip.AssertNotCalled(t, "Write", "anything")
}

// TestPrimaryCopiesContent: no link, content present.
func TestPrimaryCopiesContent(t *testing.T) {
	t.Parallel()

	runner, fetcher, clip, _ := newRunner()
	ctx := context.Background()

	gem := catalog.Gem{ID: "snippet", ContentReference: "snippets/jq.md"}

	fetcher.On("Fetch", ctx, "snippets/jq.md").Return("jq '.[]'", nil)
	clip.On("Write", "jq '.[]'").Return(nil)

	outcome, err := runner.Primary(ctx, gem)

	require.NoError(t, err)
	assert.Equal(t, action.OutcomeCopied, outcome)

	fetcher.AssertExpectations(t)
	clip.AssertExpectations(t)
}

// TestPrimaryNoAffordances: neither link nor content is a silent no-op.
func TestPrimaryNoAffordances(t *testing.T) {
	t.Parallel()

	runner, fetcher, clip, nav := newRunner()

	outcome, err := runner.Primary(context.Background(), catalog.Gem{ID: "bare"})

	require.NoError(t, err)
	assert.Equal(t, action.OutcomeNone, outcome)

	fetcher.AssertNotCalled(t, "Fetch")
	clip.AssertNotCalled(t, "Write")
	nav.AssertNotCalled(t, "Open")
}

// TestCopyFailureKinds: fetch and clipboard failures are distinct.
func TestCopyFailureKinds(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	gem := catalog.Gem{ID: "snippet", ContentReference: "snippets/jq.md"}

	t.Run("fetch_failure", func(t *testing.T) {
		t.Parallel()

		runner, fetcher, clip, _ := newRunner()

		fetcher.On("Fetch", ctx, "snippets/jq.md").Return("", errBoom)

		err := runner.Copy(ctx, gem)

		require.ErrorIs(t, err, action.ErrFetch)
		assert.NotErrorIs(t, err, action.ErrClipboard)
		clip.AssertNotCalled(t, "Write", "anything")
	})

	t.Run("clipboard_failure", func(t *testing.T) {
		t.Parallel()

		runner, fetcher, clip, _ := newRunner()

		fetcher.On("Fetch", ctx, "snippets/jq.md").Return("text", nil)
		clip.On("Write", "text").Return(errBoom)

		err := runner.Copy(ctx, gem)

		require.ErrorIs(t, err, action.ErrClipboard)
		assert.NotErrorIs(t, err, action.ErrFetch)
	})
}

func TestCopyWithoutContent(t *testing.T) {
	t.Parallel()

	runner, _, _, _ := newRunner()

	err := runner.Copy(context.Background(), catalog.Gem{ID: "bare"})

	require.ErrorIs(t, err, action.ErrNoContent)
}

func TestOpenLinkFailure(t *testing.T) {
	t.Parallel()

	runner, _, _, nav := newRunner()
	ctx := context.Background()

	gem := catalog.Gem{ID: "link", ExternalLink: "https://example.com"}

	nav.On("Open", ctx, "https://example.com").Return(errBoom)

	err := runner.OpenLink(ctx, gem)

	require.ErrorIs(t, err, action.ErrOpen)

	outcome, err := runner.Primary(ctx, gem)

	require.ErrorIs(t, err, action.ErrOpen)
	assert.Equal(t, action.OutcomeNone, outcome)
}

func TestOpenLinkWithoutLink(t *testing.T) {
	t.Parallel()

	runner, _, _, _ := newRunner()

	err := runner.OpenLink(context.Background(), catalog.Gem{ID: "bare"})

	require.ErrorIs(t, err, action.ErrNoLink)
}

func TestOutcomeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "copied", action.OutcomeCopied.String())
	assert.Equal(t, "opened", action.OutcomeOpened.String())
	assert.Equal(t, "none", action.OutcomeNone.String())
}
