// SPDX-FileCopyrightText: 2025 The Gemcase Authors
// SPDX-License-Identifier: EUPL-1.2

// Package models implements error display and recovery UI.
package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jwahlstedt/gemcase/internal/catalog"
	"github.com/jwahlstedt/gemcase/internal/tui/styles"
)

// loadFailureDetails is the user-facing shape of one catalog load failure.
type loadFailureDetails struct {
	Kind        string
	Icon        string
	Title       string
	Suggestions []string
}

// LoadError is the screen shown when the catalog cannot be loaded.
// A broken catalog leaves nothing to browse, so this screen replaces
// the whole UI until the user retries or quits.
type LoadError struct {
	styles   *styles.Styles
	failure  CatalogFailure
	details  loadFailureDetails
	width    int
	height   int
	quitting bool
	keyMap   ErrorKeyMap
}

// ErrorKeyMap defines key bindings for the error screen.
type ErrorKeyMap struct {
	Retry key.Binding
	Quit  key.Binding
}

// DefaultErrorKeyMap returns the default key bindings.
func DefaultErrorKeyMap() ErrorKeyMap {
	return ErrorKeyMap{
		Retry: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r/enter", "retry loading"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// NewLoadError creates the error screen for a catalog load failure.
func NewLoadError(styleConfig *styles.Styles, failure CatalogFailure) *LoadError {
	return &LoadError{
		styles:  styleConfig,
		failure: failure,
		details: classifyLoadFailure(failure),
		keyMap:  DefaultErrorKeyMap(),
	}
}

// classifyLoadFailure maps catalog sentinel errors to titles and fixes.
func classifyLoadFailure(failure CatalogFailure) loadFailureDetails {
	switch {
	case errors.Is(failure.Err, catalog.ErrSourceRead):
		return loadFailureDetails{
			Kind:  "Source Error",
			Icon:  "📄",
			Title: "Catalog File Unreadable",
			Suggestions: []string{
				"Check that the file exists: " + failure.Source,
				"Verify the path in GEMCASE_CATALOG or the --catalog flag",
				"Check file permissions on the catalog and its directory",
				"Create a starter catalog with 'gemcase schema' as a reference",
			},
		}

	case errors.Is(failure.Err, catalog.ErrParse):
		return loadFailureDetails{
			Kind:  "Syntax Error",
			Icon:  "📝",
			Title: "Catalog Is Not Valid JSONC",
			Suggestions: []string{
				"Run 'gemcase validate' for the exact position of the problem",
				"Look for missing commas, quotes, or brackets near the reported offset",
				"Comments and trailing commas are fine; stray text outside strings is not",
			},
		}

	case errors.Is(failure.Err, catalog.ErrDuplicateID):
		return loadFailureDetails{
			Kind:  "Schema Error",
			Icon:  "📝",
			Title: "Duplicate Gem ID",
			Suggestions: []string{
				"Every gem needs a unique 'id'; rename one of the duplicates",
				"Run 'gemcase validate' to list every duplicate at once",
			},
		}

	case errors.Is(failure.Err, catalog.ErrClassification):
		return loadFailureDetails{
			Kind:  "Schema Error",
			Icon:  "📝",
			Title: "Unknown Work Classification",
			Suggestions: []string{
				"'workClassification' must be one of: work, work-only, none",
				"Run 'gemcase validate' to list every affected gem",
			},
		}

	case errors.Is(failure.Err, catalog.ErrSchema):
		return loadFailureDetails{
			Kind:  "Schema Error",
			Icon:  "📝",
			Title: "Catalog Failed Validation",
			Suggestions: []string{
				"Run 'gemcase validate' for a full report of every problem",
				"Check that every gem has id, name, description, category, tier, and workClassification",
				"Print the expected structure with 'gemcase schema'",
			},
		}

	default:
		return loadFailureDetails{
			Kind:  "Load Error",
			Icon:  "❌",
			Title: "Catalog Could Not Be Loaded",
			Suggestions: []string{
				"Run 'gemcase validate' to inspect the catalog",
				"Check the catalog path and file contents",
			},
		}
	}
}

// Init initializes the error screen model.
func (m *LoadError) Init() tea.Cmd {
	return nil
}

// Update handles messages for the LoadError model.
func (m *LoadError) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keyMap.Quit):
			m.quitting = true

			return m, tea.Quit

		case key.Matches(msg, m.keyMap.Retry):
			// A fresh browse screen reloads the catalog from scratch
			return m, func() tea.Msg {
				return NavigateMsg{Screen: BrowseScreen, Data: ReloadCatalogData}
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the error screen.
func (m *LoadError) View() string {
	if m.quitting {
		return GoodbyeMessage
	}

	var builder strings.Builder

	header := m.renderHeader()
	builder.WriteString(header)
	builder.WriteString("\n\n")

	errorDisplay := m.renderErrorDisplay()
	builder.WriteString(errorDisplay)
	builder.WriteString("\n\n")

	footer := m.renderFooter()
	builder.WriteString(footer)

	return builder.String()
}

// GetFailure returns the underlying load failure (for testing).
func (m *LoadError) GetFailure() CatalogFailure {
	return m.failure
}

// GetKind returns the classified failure kind (for testing).
func (m *LoadError) GetKind() string {
	return m.details.Kind
}

// renderHeader creates the header with clean style matching other screens.
func (m *LoadError) renderHeader() string {
	// Left side: App name » Current location
	location := "Gemcase » Error"
	leftSide := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.styles.Error).
		Render(location)

	// Right side: failure kind with icon
	status := fmt.Sprintf("%s %s", m.details.Icon, m.details.Kind)
	rightSide := lipgloss.NewStyle().
		Foreground(m.styles.Muted).
		Render(status)

	// Calculate spacing
	totalWidth := m.width
	leftWidth := lipgloss.Width(leftSide)
	rightWidth := lipgloss.Width(rightSide)
	spacerWidth := totalWidth - leftWidth - rightWidth - 4 // Account for padding

	if spacerWidth < 1 {
		spacerWidth = 1
	}

	spacer := strings.Repeat(" ", spacerWidth)

	headerLine := leftSide + spacer + rightSide

	return lipgloss.NewStyle().
		Padding(0, 2).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(m.styles.Error).
		Width(m.width).
		Render(headerLine)
}

// renderErrorDisplay creates the main error information display.
func (m *LoadError) renderErrorDisplay() string {
	containerStyle := m.styles.Card.
		Width(m.width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.styles.Error)

	var content strings.Builder

	content.WriteString(m.styles.Title.Render(m.details.Title))
	content.WriteString("\n\n")

	messageStyle := lipgloss.NewStyle().
		Foreground(m.styles.Error).
		Bold(true)
	content.WriteString(messageStyle.Render(m.failure.Err.Error()))
	content.WriteString("\n\n")

	if m.failure.Source != "" {
		content.WriteString(m.styles.Title.Render("Catalog Source"))
		content.WriteString("\n")

		sourceStyle := lipgloss.NewStyle().
			Foreground(m.styles.Muted).
			MarginLeft(2)
		content.WriteString(sourceStyle.Render(m.failure.Source))
		content.WriteString("\n\n")
	}

	if len(m.details.Suggestions) > 0 {
		content.WriteString(m.styles.Title.Render("💡 Suggested Fixes"))
		content.WriteString("\n")

		for i, suggestion := range m.details.Suggestions {
			suggestionStyle := lipgloss.NewStyle().
				Foreground(m.styles.Success).
				MarginLeft(2)
			line := fmt.Sprintf("%d. %s", i+1, suggestion)
			content.WriteString(suggestionStyle.Render(line))
			content.WriteString("\n")
		}

		content.WriteString("\n")
	}

	retryStyle := lipgloss.NewStyle().
		Foreground(m.styles.Success).
		Bold(true)
	content.WriteString(retryStyle.Render("🔄 Fix the catalog, then press 'r' or Enter to reload."))

	return containerStyle.Render(content.String())
}

// renderFooter creates the footer with clean style matching other screens.
func (m *LoadError) renderFooter() string {
	actions := []FooterAction{
		{Key: "Enter", Action: "Retry"},
		{Key: "q", Action: "Quit"},
	}

	return RenderFooter(m.styles, m.width, actions, false)
}
