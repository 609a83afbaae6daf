// SPDX-FileCopyrightText: 2025 The Gemcase Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/jwahlstedt/gemcase/internal/catalog"
)

func getLinkStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("75")).
		Underline(true)
}

// consentDescription previews what the open action is about to do.
// Sensitive gems keep their description hidden.
func consentDescription(gem catalog.Gem) string {
	link := getLinkStyle().Render(gem.ExternalLink)
	if gem.Description != "" && !gem.Sensitive {
		return gem.Description + "\n" + link
	}

	return link
}

// confirmOpenLink asks before handing a gem's link to the browser.
// Aborting the form (ctrl+c, esc) counts as declining.
func confirmOpenLink(gem catalog.Gem) (bool, error) {
	var confirmed bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Open %s in the browser?", gem.Name)).
				Description(consentDescription(gem)).
				Affirmative("Open").
				Negative("Cancel").
				Value(&confirmed),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}

		return false, fmt.Errorf("consent form: %w", err)
	}

	return confirmed, nil
}
