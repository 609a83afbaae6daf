// SPDX-FileCopyrightText: 2025 The Gemcase Authors
// SPDX-License-Identifier: EUPL-1.2

package action_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwahlstedt/gemcase/internal/action"
)

func TestFetcherReadsRelativeFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(root, "snippets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "snippets", "jq.md"), []byte("jq '.[]'"), 0o644))

	fetcher := action.NewFetcher(root)

	content, err := fetcher.Fetch(context.Background(), "snippets/jq.md")

	require.NoError(t, err)
	assert.Equal(t, "jq '.[]'", content)
}

func TestFetcherReadsAbsoluteFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("note"), 0o644))

	// Root must not interfere with absolute references.
	fetcher := action.NewFetcher(t.TempDir())

	content, err := fetcher.Fetch(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, "note", content)
}

func TestFetcherMissingFile(t *testing.T) {
	t.Parallel()

	fetcher := action.NewFetcher(t.TempDir())

	_, err := fetcher.Fetch(context.Background(), "absent.md")

	require.Error(t, err)
}

func TestFetcherEmptyReference(t *testing.T) {
	t.Parallel()

	fetcher := action.NewFetcher("")

	_, err := fetcher.Fetch(context.Background(), "   ")

	require.ErrorIs(t, err, action.ErrNoContent)
}

func TestFetcherHTTP(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("remote content"))
	}))
	defer server.Close()

	fetcher := action.NewFetcher("")

	content, err := fetcher.Fetch(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, "remote content", content)
}

func TestFetcherHTTPStatusFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer server.Close()

	fetcher := action.NewFetcher("")

	_, err := fetcher.Fetch(context.Background(), server.URL)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}
