// SPDX-FileCopyrightText: 2025 The Gemcase Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jwahlstedt/gemcase/internal/catalog"
)

func TestConsentDescription(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		gem         catalog.Gem
		wantBody    string
		hideDetails bool
	}{
		{
			name: "description precedes the link",
			gem: catalog.Gem{
				Name:         "Status page",
				Description:  "Production status dashboard",
				ExternalLink: "https://status.example.com",
			},
			wantBody: "Production status dashboard",
		},
		{
			name: "sensitive gems hide the description",
			gem: catalog.Gem{
				Name:         "Admin console",
				Description:  "Internal admin entry point",
				ExternalLink: "https://admin.example.com",
				Sensitive:    true,
			},
			hideDetails: true,
		},
		{
			name: "gems without description only show the link",
			gem: catalog.Gem{
				Name:         "Docs",
				ExternalLink: "https://docs.example.com",
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := consentDescription(testCase.gem)

			require.Contains(t, got, testCase.gem.ExternalLink)

			if testCase.hideDetails {
				require.NotContains(t, got, testCase.gem.Description)
			} else if testCase.wantBody != "" {
				require.Contains(t, got, testCase.wantBody)
			}
		})
	}
}

func TestGetLinkStyle(t *testing.T) {
	t.Parallel()

	rendered := getLinkStyle().Render("https://example.com")
	require.Contains(t, rendered, "https://example.com")
}
