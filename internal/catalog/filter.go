// SPDX-FileCopyrightText: 2025 The Gemcase Authors
// SPDX-License-Identifier: EUPL-1.2

package catalog

import (
	"strings"

	"github.com/jwahlstedt/gemcase/internal/stringutil"
)

// CategoryAll is the sentinel category meaning no category constraint.
const CategoryAll = "all"

// ViewState is the complete filter input: one category (or CategoryAll),
// free search text, and the work-mode toggle. The zero value plus
// CategoryAll is the default view; DefaultView returns it.
type ViewState struct {
	Category string
	Search   string
	WorkMode bool
}

// DefaultView returns the state every session starts from.
func DefaultView() ViewState {
	return ViewState{Category: CategoryAll}
}

// WithCategory returns a copy with the category replaced.
func (v ViewState) WithCategory(category string) ViewState {
	v.Category = category

	return v
}

// WithSearch returns a copy with the search text replaced.
func (v ViewState) WithSearch(search string) ViewState {
	v.Search = search

	return v
}

// ToggleWorkMode returns a copy with the work toggle flipped.
func (v ViewState) ToggleWorkMode() ViewState {
	v.WorkMode = !v.WorkMode

	return v
}

// Filter returns the gems visible under state. The result is a subsequence
// of gems: author order preserved, nothing duplicated, nothing added. The
// three rules are conjunctive; inputs are never mutated.
func Filter(gems []Gem, state ViewState) []Gem {
	query := strings.TrimSpace(state.Search)

	visible := make([]Gem, 0, len(gems))

	for _, gem := range gems {
		if !passesWorkFilter(gem, state.WorkMode) {
			continue
		}

		if !passesCategoryFilter(gem, state.Category) {
			continue
		}

		if !passesSearchFilter(gem, query) {
			continue
		}

		visible = append(visible, gem)
	}

	return visible
}

// passesWorkFilter applies the work-mode trichotomy: gems classified
// "work" pass regardless of the toggle, "none" only while the toggle is
// off, "work-only" only while it is on.
func passesWorkFilter(gem Gem, workMode bool) bool {
	if workMode {
		return gem.Classification != ClassNone
	}

	return gem.Classification != ClassWorkOnly
}

// passesCategoryFilter matches the selected category case-insensitively;
// CategoryAll passes everything.
func passesCategoryFilter(gem Gem, category string) bool {
	if category == "" || strings.EqualFold(category, CategoryAll) {
		return true
	}

	return strings.EqualFold(gem.Category, category)
}

// passesSearchFilter matches the trimmed query as a literal substring of
// the gem name or description, case-insensitively. No tokenization, no
// fuzzy matching.
func passesSearchFilter(gem Gem, query string) bool {
	if query == "" {
		return true
	}

	return stringutil.ContainsIgnoreCase(gem.Name, query) ||
		stringutil.ContainsIgnoreCase(gem.Description, query)
}
