// SPDX-FileCopyrightText: 2025 The Gemcase Authors
// SPDX-License-Identifier: EUPL-1.2

// Package models implements contextual help and keyboard shortcut UI.
package models

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/jwahlstedt/gemcase/internal/tui/styles"
)

// HelpSection represents a help documentation section.
type HelpSection struct {
	Title   string
	Content string
}

// Help represents the help screen model.
type Help struct {
	styles         *styles.Styles
	width          int
	height         int
	sections       []HelpSection
	viewport       viewport.Model
	renderer       *glamour.TermRenderer
	currentSection int
	quitting       bool
	keyMap         HelpKeyMap
}

// HelpKeyMap defines key bindings for the help screen.
type HelpKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Tab      key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// DefaultHelpKeyMap returns the default key bindings.
func DefaultHelpKeyMap() HelpKeyMap {
	return HelpKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous section"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next section"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup/b", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "f"),
			key.WithHelp("pgdn/f", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home/g", "go to top"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end/G", "go to bottom"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next section"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back to browse"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewHelp creates a new help model.
//
//nolint:maintidx // Large help content strings are acceptable for documentation
func NewHelp(styleConfig *styles.Styles) *Help {
	// Create help sections with markdown content
	sections := []HelpSection{
		{
			Title: "Getting Started",
			Content: `# Getting Started with Gemcase

## Welcome to Gemcase! 💎

Gemcase is a terminal browser for your personal catalog of gems:
prompts, snippets, links, and other small reusable artifacts.

### Quick Start

1. **Launch the browser**: Run ` + "`" + `gemcase` + "`" + ` (or ` + "`" + `gemcase browse` + "`" + `)
2. **Filter**: Cycle categories with **Tab**, search with **/**
3. **Act**: Press **Enter** on a gem to copy its content or open its link
4. **Inspect**: Press **v** to see a gem's full detail view

### The Catalog

Your catalog is a single JSONC file (JSON with comments and trailing
commas). Gemcase looks for it at ` + "`" + `~/.config/gemcase/catalog.jsonc` + "`" + `,
or wherever ` + "`" + `--catalog` + "`" + ` / ` + "`" + `GEMCASE_CATALOG` + "`" + ` points. The file is read
once per session; edit it and restart (or press **r** after a load
error) to pick up changes.

### Navigation

| Key | Action |
|-----|--------|
| ↑/↓ or j/k | Move selection |
| Tab / Shift+Tab | Next / previous category |
| / | Focus search field |
| w | Cycle work filter |
| Enter | Run primary action |
| v | Open detail view |
| Esc | Clear search / go back |
| q | Quit |

Press **?** anywhere in the browser to return to this help.`,
		},
		{
			Title: "Browsing & Filtering",
			Content: `# Browsing & Filtering

## Tiers

Gems are grouped into three tiers, always shown in the same order:

| Tier | Marker | Meaning |
|------|--------|---------|
| Essentials | ★ | Daily drivers you reach for constantly |
| Toolkit | ◆ | Solid tools for specific situations |
| Miscellaneous | ○ | Everything else worth keeping |

A gem whose tier is not one of these is dropped from the view (it is
still in the file, and ` + "`" + `gemcase validate` + "`" + ` will point at it).

## Filters

All active filters combine: a gem is shown only when it passes every
one of them. Each filter change re-evaluates the whole catalog, so
relaxing a filter brings gems back.

### Category (Tab / Shift+Tab)

Cycles through **All** plus every category found in your catalog.
Matching ignores case; **All** shows everything.

### Search ( / )

Literal, case-insensitive substring match over each gem's name and
description. No fuzzy matching, no regular expressions: searching
` + "`" + `git` + "`" + ` finds "Git aliases" and "digital garden" alike. **Esc**
clears the query, **Enter** keeps it and returns focus to the list.

### Work filter ( w )

Cycles three states:

- **off**: every gem is eligible
- **Work: ON**: only gems classified ` + "`" + `work` + "`" + ` or ` + "`" + `work-only` + "`" + `
- back to **off**

Gems classified ` + "`" + `none` + "`" + ` never match while the work filter is on.

## Empty Results

When nothing matches you'll see exactly which constraints are active.
Clear the search, switch the category to All, or turn the work filter
off to widen the view.`,
		},
		{
			Title: "Actions",
			Content: `# Gem Actions

## Primary Action (Enter)

Every gem has at most one primary action, resolved in this order:

1. **External link** ↗ opens the link in your browser
2. **Content reference** ❐ fetches the content and copies it to the clipboard
3. Neither: nothing happens (the gem is informational)

A gem that carries both a link and content opens the link; use **c**
when you want the content instead.

## Explicit Actions

| Key | Action | Requires |
|-----|--------|----------|
| c | Copy content to clipboard | ` + "`" + `contentReference` + "`" + ` |
| o | Open link in browser | ` + "`" + `externalLink` + "`" + ` |

Pressing **c** on a gem without content (or **o** without a link)
shows a short failure notice instead of doing nothing silently.

## Notices

Action results appear as a one-line notice under the gem list:

- ✓ success notices stay for 2 seconds
- ✗ failure notices stay for 3 seconds

Action failures never take down the browser; only a catalog that
cannot be loaded does.

## Sensitive Gems

Gems marked ` + "`" + `"isSensitive": true` + "`" + ` mask their description in the
list until selected. Their content still copies normally, so be
mindful of where you paste.

## Content Sources

A ` + "`" + `contentReference` + "`" + ` is resolved against the content root
(by default the directory of the catalog file). Fetches happen when
you act, never at load time, so a missing content file only surfaces
when you actually copy that gem.`,
		},
		{
			Title: "CLI Reference",
			Content: `# Command Line Interface Reference

## Core Commands 💻

` + "```bash" + `
# Interactive browser (default when run with no command)
gemcase
gemcase browse

# List gems, with the same filters the browser has
gemcase list
gemcase list --category prompts --search review --work

# Show one gem in full
gemcase show git-aliases

# Act on a gem without opening the browser
gemcase copy git-aliases
gemcase open go-blog

# List every category in the catalog
gemcase categories
` + "```" + `

## Catalog Commands

` + "```bash" + `
# Check the catalog file and report every problem found
gemcase validate

# Print the catalog JSON schema
gemcase schema

# Export the catalog for use elsewhere
gemcase export --format json  -o gems.json
gemcase export --format yaml  -o gems.yaml
gemcase export --format xlsx  -o gems.xlsx

# Show version information
gemcase version
` + "```" + `

## Global Options

| Option | Description |
|--------|-------------|
| ` + "`" + `--catalog PATH` + "`" + ` | Catalog file to load (overrides config and ` + "`" + `GEMCASE_CATALOG` + "`" + `) |
| ` + "`" + `--verbose` + "`" + ` | Show detailed progress messages |
| ` + "`" + `--json` + "`" + ` | Output structured JSON results |
| ` + "`" + `--plain` + "`" + ` | Plain text output for scripts |
| ` + "`" + `--quiet` + "`" + ` | Suppress non-essential output |
| ` + "`" + `--no-color` + "`" + ` | Disable colored output |
| ` + "`" + `--yes` + "`" + ` | Skip confirmation prompts |

## Exit Codes

| Code | Meaning |
|------|---------|
| 0 | Success |
| 1 | General error |
| 2 | Usage error |
| 3 | Configuration error |
| 5 | Gem not found |
| 20 | Catalog could not be loaded or is invalid |
| 21 | Gem action failed |
| 22 | Export failed |

## Scripting Support

Gemcase is designed to be script-friendly:

` + "```bash" + `
# Machine-readable output
gemcase list --json | jq '.[].id'
gemcase categories --plain

# Copy without prompts
gemcase copy git-aliases --quiet

# Error handling
if ! gemcase validate --plain; then
    echo "catalog needs fixing"
    exit 1
fi
` + "```" + `

> 💡 **Tip**: Use ` + "`" + `gemcase <command> --help` + "`" + ` for detailed help on any command.`,
		},
	}

	// Create Glamour renderer with Tokyo Night style
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// Fallback to default renderer
		renderer, _ = glamour.NewTermRenderer()
	}

	// Create viewport for scrolling
	viewPort := viewport.New(80, 20)
	viewPort.Style = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styleConfig.Primary).
		Padding(1)

	helpModel := &Help{
		styles:         styleConfig,
		sections:       sections,
		viewport:       viewPort,
		renderer:       renderer,
		currentSection: 0,
		keyMap:         DefaultHelpKeyMap(),
	}

	// Render initial content
	helpModel.updateContent()

	return helpModel
}

// Init initializes the help model.
func (m *Help) Init() tea.Cmd {
	return nil
}

// Update handles messages for the Help model.
func (m *Help) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)
	}

	return m, nil
}

// View renders the help screen.
func (m *Help) View() string {
	if m.quitting {
		return GoodbyeMessage
	}

	var builder strings.Builder

	// Header with navigation
	header := m.renderHeader()
	builder.WriteString(header)
	builder.WriteString("\n\n")

	// Main content viewport
	builder.WriteString(m.viewport.View())
	builder.WriteString("\n\n")

	// Footer with keybindings
	footer := m.renderFooter()
	builder.WriteString(footer)

	return builder.String()
}

// GetCurrentSection returns the active section index (for testing).
func (m *Help) GetCurrentSection() int {
	return m.currentSection
}

// GetSectionCount returns the number of help sections (for testing).
func (m *Help) GetSectionCount() int {
	return len(m.sections)
}

func (m *Help) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		m.quitting = true

		return m, tea.Quit
	case key.Matches(msg, m.keyMap.Back):
		return m, func() tea.Msg {
			return NavigateMsg{Screen: BrowseScreen}
		}
	case key.Matches(msg, m.keyMap.Left):
		return m.handleSectionNavigation(-1)
	case key.Matches(msg, m.keyMap.Right), key.Matches(msg, m.keyMap.Tab):
		return m.handleSectionNavigation(1)
	case key.Matches(msg, m.keyMap.Home):
		m.viewport.GotoTop()

		return m, nil
	case key.Matches(msg, m.keyMap.End):
		m.viewport.GotoBottom()

		return m, nil
	default:
		var cmd tea.Cmd

		m.viewport, cmd = m.viewport.Update(msg)

		return m, cmd
	}
}

// handleSectionNavigation moves between help sections.
func (m *Help) handleSectionNavigation(direction int) (tea.Model, tea.Cmd) {
	newSection := m.currentSection + direction
	if newSection >= 0 && newSection < len(m.sections) {
		m.currentSection = newSection
		m.updateContent()
	}

	return m, nil
}

// handleWindowSizeMsg processes window resize messages.
func (m *Help) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	// Update viewport size
	header := m.renderHeader()
	footer := m.renderFooter()
	verticalMargins := lipgloss.Height(header) + lipgloss.Height(footer)

	m.viewport.Width = msg.Width
	m.viewport.Height = msg.Height - verticalMargins

	// Update content with new dimensions
	m.updateContent()

	return m, nil
}

// renderHeader creates the header with section navigation.
func (m *Help) renderHeader() string {
	var builder strings.Builder

	// Title
	title := m.styles.Title.Render("❓ Help & Documentation")
	builder.WriteString(title)
	builder.WriteString("\n")

	// Section tabs
	tabs := make([]string, 0, len(m.sections))

	for i, section := range m.sections {
		var style lipgloss.Style
		if i == m.currentSection {
			style = m.styles.Selected.
				Padding(0, 1).
				MarginRight(1)
		} else {
			style = m.styles.Unselected.
				Padding(0, 1).
				MarginRight(1).
				Faint(true)
		}

		tabs = append(tabs, style.Render(section.Title))
	}

	tabsLine := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	builder.WriteString(tabsLine)

	return builder.String()
}

// renderFooter creates the footer with keybindings.
func (m *Help) renderFooter() string {
	var keybindings []string

	keybindings = append(keybindings, m.styles.Keybinding("↑↓/jk", "scroll"))
	keybindings = append(keybindings, m.styles.Keybinding("←→/hl", "sections"))
	keybindings = append(keybindings, m.styles.Keybinding("tab", "next section"))
	keybindings = append(keybindings, m.styles.Keybinding("g/G", "top/bottom"))
	keybindings = append(keybindings, m.styles.Keybinding("esc", "back"))
	keybindings = append(keybindings, m.styles.Keybinding("q", "quit"))

	footer := strings.Join(keybindings, "  ")

	return m.styles.Footer.Render(footer)
}

// updateContent renders the current section content and updates the viewport.
func (m *Help) updateContent() {
	if m.currentSection >= len(m.sections) {
		return
	}

	section := m.sections[m.currentSection]

	// Render markdown content using Glamour
	rendered, err := m.renderer.Render(section.Content)
	if err != nil {
		// Fallback to plain text if rendering fails
		rendered = section.Content
	}

	// Set content in viewport
	m.viewport.SetContent(rendered)
}
