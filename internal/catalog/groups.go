// SPDX-FileCopyrightText: 2025 The Gemcase Authors
// SPDX-License-Identifier: EUPL-1.2

package catalog

// TierSection is one display group of the filtered list.
type TierSection struct {
	Tier Tier
	Gems []Gem
}

// Empty reports whether the section should be hidden.
func (s TierSection) Empty() bool {
	return len(s.Gems) == 0
}

// Grouping is the tier partition of a filtered gem list. Sections always
// cover the full closed tier set in render order so the presentation layer
// gets an explicit empty signal per tier. Gems whose tier is outside the
// closed set land in Dropped and render nowhere.
type Grouping struct {
	Sections []TierSection
	Dropped  []Gem
}

// Visible reports whether any section has gems to show.
func (g Grouping) Visible() bool {
	for _, section := range g.Sections {
		if !section.Empty() {
			return true
		}
	}

	return false
}

// DroppedIDs returns the ids of gems omitted for an unknown tier.
func (g Grouping) DroppedIDs() []string {
	ids := make([]string, 0, len(g.Dropped))
	for _, gem := range g.Dropped {
		ids = append(ids, gem.ID)
	}

	return ids
}

// GroupByTier partitions gems into the closed tier set. The partition is
// stable: within a section, gems keep their input order. Every gem lands
// in exactly one section or in Dropped.
func GroupByTier(gems []Gem) Grouping {
	tiers := Tiers()

	index := make(map[Tier]int, len(tiers))
	sections := make([]TierSection, len(tiers))

	for i, tier := range tiers {
		index[tier] = i
		sections[i] = TierSection{Tier: tier}
	}

	var dropped []Gem

	for _, gem := range gems {
		i, ok := index[gem.Tier]
		if !ok {
			dropped = append(dropped, gem)

			continue
		}

		sections[i].Gems = append(sections[i].Gems, gem)
	}

	return Grouping{Sections: sections, Dropped: dropped}
}
