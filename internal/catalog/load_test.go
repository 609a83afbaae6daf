// SPDX-FileCopyrightText: 2025 The Gemcase Authors
// SPDX-License-Identifier: EUPL-1.2

package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwahlstedt/gemcase/internal/catalog"
)

const validDocument = `{
	// personal gems, comments and trailing commas welcome
	"version": 1,
	"gems": [
		{
			"id": "jq-cheat",
			"name": "jq cheatsheet",
			"description": "filters for JSON wrangling",
			"category": "Tools",
			"tier": "essentials",
			"workClassification": "work",
			"contentReference": "snippets/jq.md",
		},
		{
			"id": "regex-ref",
			"name": "Regex reference",
			"category": "Tools",
			"tier": "miscellaneous",
			"workClassification": "none",
			"externalLink": "https://regex101.com",
			"isSensitive": true,
		},
	],
}`

func TestParseValidDocument(t *testing.T) {
	t.Parallel()

	doc, err := catalog.Parse([]byte(validDocument))
	require.NoError(t, err)

	assert.Equal(t, 1, doc.Version)
	require.Len(t, doc.Gems, 2)

	assert.Equal(t, "jq-cheat", doc.Gems[0].ID)
	assert.Equal(t, catalog.TierEssentials, doc.Gems[0].Tier)
	assert.Equal(t, catalog.ClassWork, doc.Gems[0].Classification)
	assert.True(t, doc.Gems[0].HasContent())

	assert.Equal(t, catalog.ClassNone, doc.Gems[1].Classification)
	assert.True(t, doc.Gems[1].Sensitive)
	assert.True(t, doc.Gems[1].HasLink())
}

func TestParseMalformedDocument(t *testing.T) {
	t.Parallel()

	_, err := catalog.Parse([]byte(`{"gems": [`))

	require.ErrorIs(t, err, catalog.ErrParse)
}

// TestParseSchemaViolations: structural problems are load failures with
// per-location messages.
func TestParseSchemaViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		document string
	}{
		{
			name:     "gems_missing",
			document: `{"version": 1}`,
		},
		{
			name:     "gem_missing_id",
			document: `{"gems": [{"name": "x", "category": "c", "tier": "toolkit", "workClassification": "work"}]}`,
		},
		{
			name:     "gem_with_unknown_field",
			document: `{"gems": [{"id": "x", "name": "x", "category": "c", "tier": "toolkit", "workClassification": "work", "rating": 5}]}`,
		},
		{
			name:     "gems_not_an_array",
			document: `{"gems": {"id": "x"}}`,
		},
		{
			name:     "empty_id",
			document: `{"gems": [{"id": "", "name": "x", "category": "c", "tier": "toolkit", "workClassification": "work"}]}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := catalog.Parse([]byte(tc.document))

			require.ErrorIs(t, err, catalog.ErrSchema)
		})
	}
}

func TestParseDuplicateID(t *testing.T) {
	t.Parallel()

	document := `{"gems": [
		{"id": "dup", "name": "a", "category": "c", "tier": "toolkit", "workClassification": "work"},
		{"id": "dup", "name": "b", "category": "c", "tier": "toolkit", "workClassification": "work"}
	]}`

	_, err := catalog.Parse([]byte(document))

	require.ErrorIs(t, err, catalog.ErrDuplicateID)
	assert.Contains(t, err.Error(), `"dup"`)
}

func TestParseUnknownClassification(t *testing.T) {
	t.Parallel()

	document := `{"gems": [
		{"id": "x", "name": "a", "category": "c", "tier": "toolkit", "workClassification": "personal"}
	]}`

	_, err := catalog.Parse([]byte(document))

	require.ErrorIs(t, err, catalog.ErrClassification)
	assert.Contains(t, err.Error(), `"x"`)
}

// TestParseUnknownTierAccepted: a tier outside the closed set is not a
// load failure; the gem stays in the model and the drop happens at
// grouping time.
func TestParseUnknownTierAccepted(t *testing.T) {
	t.Parallel()

	document := `{"gems": [
		{"id": "x", "name": "a", "category": "c", "tier": "legendary", "workClassification": "work"}
	]}`

	doc, err := catalog.Parse([]byte(document))
	require.NoError(t, err)
	require.Len(t, doc.Gems, 1)

	assert.False(t, doc.Gems[0].Tier.Known())

	grouping := catalog.GroupByTier(doc.Gems)
	assert.Equal(t, []string{"x"}, grouping.DroppedIDs())
}

func TestParseEmptyGemList(t *testing.T) {
	t.Parallel()

	doc, err := catalog.Parse([]byte(`{"gems": []}`))
	require.NoError(t, err)

	assert.Empty(t, doc.Gems)
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "gems.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(validDocument), 0o644))

	cat, err := catalog.Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, path, cat.Source)
	assert.Equal(t, 2, cat.Len())
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := catalog.Load(context.Background(), filepath.Join(t.TempDir(), "absent.jsonc"))

	require.ErrorIs(t, err, catalog.ErrSourceRead)
}

func TestLoadFromHTTP(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(validDocument))
	}))
	defer server.Close()

	cat, err := catalog.Load(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, server.URL, cat.Source)
	assert.Equal(t, 2, cat.Len())
}

func TestLoadHTTPFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	_, err := catalog.Load(context.Background(), server.URL)

	require.ErrorIs(t, err, catalog.ErrSourceRead)
}
