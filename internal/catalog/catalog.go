// SPDX-FileCopyrightText: 2025 The Gemcase Authors
// SPDX-License-Identifier: EUPL-1.2

// Package catalog holds the gem catalog model and the filtering rules
// that decide which gems are visible for a given view state.
package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Classification governs gem visibility under the work-mode toggle.
type Classification string

// Work classifications accepted in catalog documents.
const (
	ClassWork     Classification = "work"
	ClassWorkOnly Classification = "work-only"
	ClassNone     Classification = "none"
)

// Valid reports whether the classification is one of the defined values.
func (c Classification) Valid() bool {
	switch c {
	case ClassWork, ClassWorkOnly, ClassNone:
		return true
	default:
		return false
	}
}

// Tier is the display group a gem renders into. The display set is closed;
// unknown tiers stay in the model but never reach a tier section.
type Tier string

// Display tiers, in render order.
const (
	TierEssentials    Tier = "essentials"
	TierToolkit       Tier = "toolkit"
	TierMiscellaneous Tier = "miscellaneous"
)

// Known reports whether the tier belongs to the closed display set.
func (t Tier) Known() bool {
	switch t {
	case TierEssentials, TierToolkit, TierMiscellaneous:
		return true
	default:
		return false
	}
}

// Tiers returns the closed tier set in render order.
func Tiers() []Tier {
	return []Tier{TierEssentials, TierToolkit, TierMiscellaneous}
}

// Gem is a single catalog entry: a snippet, command, prompt, or link the
// user wants within reach.
type Gem struct {
	ID               string         `json:"id"                         yaml:"id"`
	Name             string         `json:"name"                       yaml:"name"`
	Description      string         `json:"description"                yaml:"description"`
	Category         string         `json:"category"                   yaml:"category"`
	Tier             Tier           `json:"tier"                       yaml:"tier"`
	Classification   Classification `json:"workClassification"         yaml:"workClassification"`
	ContentReference string         `json:"contentReference,omitempty" yaml:"contentReference,omitempty"`
	ExternalLink     string         `json:"externalLink,omitempty"     yaml:"externalLink,omitempty"`
	Sensitive        bool           `json:"isSensitive,omitempty"      yaml:"isSensitive,omitempty"`
}

// HasContent reports whether the gem offers copyable content.
func (g Gem) HasContent() bool {
	return strings.TrimSpace(g.ContentReference) != ""
}

// HasLink reports whether the gem's primary action is navigation.
func (g Gem) HasLink() bool {
	return strings.TrimSpace(g.ExternalLink) != ""
}

// Catalog is the immutable gem list for one session, in author order.
type Catalog struct {
	Source string
	Gems   []Gem
}

// New wraps gems loaded from source into a catalog.
func New(source string, gems []Gem) *Catalog {
	return &Catalog{Source: source, Gems: gems}
}

// Len returns the number of gems in the catalog.
func (c *Catalog) Len() int {
	return len(c.Gems)
}

// Get looks up a gem by id.
func (c *Catalog) Get(id string) (Gem, bool) {
	for _, gem := range c.Gems {
		if gem.ID == id {
			return gem, true
		}
	}

	return Gem{}, false
}

// Categories returns the distinct categories in first-appearance order.
// Duplicates that differ only in case collapse onto the first spelling.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool, len(c.Gems))

	var categories []string

	for _, gem := range c.Gems {
		key := strings.ToLower(gem.Category)
		if key == "" || seen[key] {
			continue
		}

		seen[key] = true

		categories = append(categories, gem.Category)
	}

	return categories
}

// TitleCategory renders a category name for display.
func TitleCategory(category string) string {
	return cases.Title(language.Und).String(category)
}
