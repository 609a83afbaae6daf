// SPDX-FileCopyrightText: 2025 The Gemcase Authors
// SPDX-License-Identifier: EUPL-1.2

package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwahlstedt/gemcase/internal/catalog"
)

// TestGroupByTierPartition: every gem lands in exactly one section or in
// Dropped, sections follow render order, and input order survives within
// each section.
func TestGroupByTierPartition(t *testing.T) {
	t.Parallel()

	gems := testGems()
	grouping := catalog.GroupByTier(gems)

	require.Len(t, grouping.Sections, len(catalog.Tiers()))

	for i, tier := range catalog.Tiers() {
		assert.Equal(t, tier, grouping.Sections[i].Tier)
	}

	total := len(grouping.Dropped)
	seen := make(map[string]int)

	for _, section := range grouping.Sections {
		total += len(section.Gems)

		for _, gem := range section.Gems {
			assert.Equal(t, section.Tier, gem.Tier)

			seen[gem.ID]++
		}
	}

	for _, gem := range grouping.Dropped {
		seen[gem.ID]++
	}

	assert.Equal(t, len(gems), total)

	for id, count := range seen {
		assert.Equal(t, 1, count, "gem %q appears in %d groups", id, count)
	}

	// Input order within a section.
	assert.Equal(t, []string{"jq-cheat", "psql-notes"}, gemIDs(grouping.Sections[0].Gems))
}

// TestGroupByTierUnknownTierDropped: gems outside the closed tier set
// render nowhere but stay identifiable for logging.
func TestGroupByTierUnknownTierDropped(t *testing.T) {
	t.Parallel()

	grouping := catalog.GroupByTier(testGems())

	assert.Equal(t, []string{"oncall-runbook"}, grouping.DroppedIDs())

	for _, section := range grouping.Sections {
		assert.False(t, containsID(section.Gems, "oncall-runbook"))
	}
}

// TestGroupByTierEmptySignal: empty tiers report Empty so the
// presentation layer can hide their headers; an empty input yields all
// tiers empty with no error.
func TestGroupByTierEmptySignal(t *testing.T) {
	t.Parallel()

	onlyEssentials := []catalog.Gem{
		{ID: "a", Name: "a", Category: "x", Tier: catalog.TierEssentials, Classification: catalog.ClassWork},
	}

	grouping := catalog.GroupByTier(onlyEssentials)

	assert.False(t, grouping.Sections[0].Empty())
	assert.True(t, grouping.Sections[1].Empty())
	assert.True(t, grouping.Sections[2].Empty())
	assert.True(t, grouping.Visible())

	empty := catalog.GroupByTier(nil)

	require.Len(t, empty.Sections, len(catalog.Tiers()))

	for _, section := range empty.Sections {
		assert.True(t, section.Empty())
	}

	assert.False(t, empty.Visible())
	assert.Empty(t, empty.Dropped)
}

// TestGroupByTierAfterFilter: grouping composes with the filter without
// disturbing relative order.
func TestGroupByTierAfterFilter(t *testing.T) {
	t.Parallel()

	visible := catalog.Filter(testGems(), catalog.DefaultView())
	grouping := catalog.GroupByTier(visible)

	assert.Equal(t, []string{"jq-cheat", "psql-notes"}, gemIDs(grouping.Sections[0].Gems))
	assert.True(t, grouping.Sections[1].Empty())
	assert.Equal(t, []string{"regex-ref"}, gemIDs(grouping.Sections[2].Gems))
	assert.Equal(t, []string{"oncall-runbook"}, grouping.DroppedIDs())
}
