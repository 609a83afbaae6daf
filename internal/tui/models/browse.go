// SPDX-FileCopyrightText: 2025 The Gemcase Authors
// SPDX-License-Identifier: EUPL-1.2

// Package models implements TUI screen models using Bubble Tea.
package models

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/jwahlstedt/gemcase/internal/action"
	"github.com/jwahlstedt/gemcase/internal/catalog"
	"github.com/jwahlstedt/gemcase/internal/tui/styles"
)

// Row markers showing what a gem's primary action does.
const (
	MarkLink    = "↗" // opens the external link
	MarkContent = "❐" // copies resolved content
	MarkInert   = "·" // neither link nor content
)

const (
	searchFieldWidth   = 15
	sensitiveMaskWidth = 12
)

// BrowseOptions carries the launch configuration for the browse screen.
type BrowseOptions struct {
	Source string
	View   catalog.ViewState
	Runner *action.Runner
}

// BrowseModel implements the catalog browsing screen using a Bubble Tea
// viewport: the full tier-sectioned list is rendered and the viewport
// scrolls to keep the selection visible.
//
//nolint:containedctx // propagated to gem actions for cancellation
type BrowseModel struct {
	styles *styles.Styles
	ctx    context.Context

	source string
	runner *action.Runner

	catalog *catalog.Catalog
	view    catalog.ViewState

	categories  []string // CategoryAll plus catalog categories, cycle order
	categoryIdx int

	visible  []catalog.Gem    // rebuilt from the full catalog on every state change
	grouping catalog.Grouping // tier partition of visible
	cursor   int              // index into the rendered (known-tier) gems

	searchHasFocus bool

	spinner spinner.Model
	loading bool

	toast toastState

	viewport viewport.Model
	width    int
	height   int
	ready    bool
	quitting bool

	keyMap BrowseKeyMap
}

// BrowseKeyMap defines key bindings for the browse screen.
type BrowseKeyMap struct {
	Up           key.Binding
	Down         key.Binding
	NextCategory key.Binding
	PrevCategory key.Binding
	Search       key.Binding
	WorkMode     key.Binding
	Primary      key.Binding
	Copy         key.Binding
	Open         key.Binding
	Detail       key.Binding
	Help         key.Binding
}

// DefaultBrowseKeyMap returns the default key bindings.
func DefaultBrowseKeyMap() BrowseKeyMap {
	return BrowseKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		NextCategory: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next category"),
		),
		PrevCategory: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous category"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		WorkMode: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "toggle work mode"),
		),
		Primary: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run primary action"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy content"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open link"),
		),
		Detail: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "view details"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// NewBrowse creates the browse screen model.
func NewBrowse(ctx context.Context, styleConfig *styles.Styles, opts BrowseOptions) *BrowseModel {
	return NewBrowseWithSize(ctx, styleConfig, opts, 0, 0)
}

// NewBrowseWithSize creates the browse screen model with known dimensions.
func NewBrowseWithSize(ctx context.Context, styleConfig *styles.Styles, opts BrowseOptions, width, height int) *BrowseModel {
	loadSpinner := spinner.New()
	loadSpinner.Spinner = spinner.Dot
	loadSpinner.Style = lipgloss.NewStyle().Foreground(styleConfig.Primary)

	view := opts.View
	if view.Category == "" {
		view.Category = catalog.CategoryAll
	}

	return &BrowseModel{
		styles:     styleConfig,
		ctx:        ctx,
		source:     opts.Source,
		runner:     opts.Runner,
		view:       view,
		categories: []string{catalog.CategoryAll},
		spinner:    loadSpinner,
		loading:    true,
		viewport:   viewport.New(width, height),
		width:      width,
		height:     height,
		keyMap:     DefaultBrowseKeyMap(),
	}
}

// LoadCatalogCmd loads the catalog off the update loop.
func LoadCatalogCmd(ctx context.Context, source string) tea.Cmd {
	return func() tea.Msg {
		loaded, err := catalog.Load(ctx, source)
		if err != nil {
			return CatalogErrorMsg{Source: source, Err: err}
		}

		return CatalogLoadedMsg{Catalog: loaded}
	}
}

// Init starts the spinner and the async catalog load.
func (m *BrowseModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, LoadCatalogCmd(m.ctx, m.source))
}

// Update handles messages for the BrowseModel.
func (m *BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}

		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case CatalogLoadedMsg:
		m.loading = false
		m.catalog = msg.Catalog
		m.categories = append([]string{catalog.CategoryAll}, msg.Catalog.Categories()...)
		m.categoryIdx = m.indexOfCategory(m.view.Category)
		m.applyView()

		return m, nil

	case CatalogErrorMsg:
		m.loading = false

		return m, func() tea.Msg {
			return NavigateMsg{
				Screen: ErrorScreen,
				Data:   CatalogFailure{Source: msg.Source, Err: msg.Err},
			}
		}

	case ActionDoneMsg:
		return m, m.handleActionDone(msg)

	case ToastExpiredMsg:
		m.toast.expire(msg.Seq)

		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMessage(msg)
	}

	return m, nil
}

// View renders the browse screen.
func (m *BrowseModel) View() string {
	if m.quitting {
		return GoodbyeMessage
	}

	if !m.ready {
		return "Loading..."
	}

	header := m.renderHeader()

	if m.loading {
		loadingLine := fmt.Sprintf("  %s Loading catalog from %s", m.spinner.View(), m.source)

		return lipgloss.JoinVertical(lipgloss.Top, header, m.styles.Logo(), "", loadingLine)
	}

	m.viewport.SetContent(m.renderSections())

	return lipgloss.JoinVertical(lipgloss.Top,
		header,
		m.viewport.View(),
		m.toast.render(m.styles),
		m.renderFooter(),
	)
}

// GetViewState returns the current filter state (for testing).
func (m *BrowseModel) GetViewState() catalog.ViewState {
	return m.view
}

// GetSearchHasFocus returns whether the search field currently has focus.
func (m *BrowseModel) GetSearchHasFocus() bool {
	return m.searchHasFocus
}

// GetSearchQuery returns the current search query.
func (m *BrowseModel) GetSearchQuery() string {
	return m.view.Search
}

// GetCursor returns the selection index into the rendered gems.
func (m *BrowseModel) GetCursor() int {
	return m.cursor
}

// GetToast returns the current toast text and kind (for testing).
func (m *BrowseModel) GetToast() (string, string) {
	return m.toast.text, m.toast.kind
}

// GetShownGemsForTesting returns the gems currently rendered, in order.
func (m *BrowseModel) GetShownGemsForTesting() []catalog.Gem {
	return m.shownGems()
}

// GetGroupingForTesting returns the current tier partition.
func (m *BrowseModel) GetGroupingForTesting() catalog.Grouping {
	return m.grouping
}

// SelectedGem returns the gem under the cursor.
func (m *BrowseModel) SelectedGem() (catalog.Gem, bool) {
	shown := m.shownGems()
	if m.cursor < 0 || m.cursor >= len(shown) {
		return catalog.Gem{}, false
	}

	return shown[m.cursor], true
}

// Unexported methods

func (m *BrowseModel) resize(width, height int) {
	m.width = width
	m.height = height

	// Reserve space for our own chrome: header, toast line, footer.
	chrome := lipgloss.Height(m.renderHeader()) + 1 + lipgloss.Height(m.renderFooter())

	viewportHeight := height - chrome
	if viewportHeight < 1 {
		viewportHeight = 1
	}

	if !m.ready {
		m.viewport = viewport.New(width, viewportHeight)
		m.viewport.SetContent(m.renderSections())
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = viewportHeight
	}
}

// handleKeyMessage processes keyboard input with vim-like navigation.
// Global quit is handled by the main App.
//
//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (m *BrowseModel) handleKeyMessage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the search field has focus it captures every key.
	if m.searchHasFocus {
		m.handleSearchInput(msg)

		return m, nil
	}

	switch {
	case key.Matches(msg, m.keyMap.Search):
		m.searchHasFocus = true

		return m, nil

	case msg.String() == "esc":
		if m.view.Search != "" {
			m.setView(m.view.WithSearch(""))
		}

		return m, nil

	case key.Matches(msg, m.keyMap.Up):
		m.moveCursor(-1)

		return m, nil

	case key.Matches(msg, m.keyMap.Down):
		m.moveCursor(1)

		return m, nil

	case key.Matches(msg, m.keyMap.NextCategory):
		m.cycleCategory(1)

		return m, nil

	case key.Matches(msg, m.keyMap.PrevCategory):
		m.cycleCategory(-1)

		return m, nil

	case key.Matches(msg, m.keyMap.WorkMode):
		m.setView(m.view.ToggleWorkMode())

		return m, nil

	case key.Matches(msg, m.keyMap.Primary):
		return m, m.primaryCmd()

	case key.Matches(msg, m.keyMap.Copy):
		return m, m.copyCmd()

	case key.Matches(msg, m.keyMap.Open):
		return m, m.openCmd()

	case key.Matches(msg, m.keyMap.Detail):
		if gem, ok := m.SelectedGem(); ok {
			return m, func() tea.Msg {
				return NavigateMsg{Screen: DetailScreen, Data: gem}
			}
		}

		return m, nil

	case key.Matches(msg, m.keyMap.Help):
		return m, func() tea.Msg {
			return NavigateMsg{Screen: HelpScreen}
		}
	}

	return m, nil
}

// handleSearchInput processes keys while the search field has focus.
// Escape clears the query and defocuses; enter defocuses keeping it.
func (m *BrowseModel) handleSearchInput(msg tea.KeyMsg) {
	switch msg.String() {
	case "esc":
		m.searchHasFocus = false
		m.setView(m.view.WithSearch(""))
	case "enter":
		m.searchHasFocus = false
	case "backspace":
		if query := m.view.Search; query != "" {
			m.setView(m.view.WithSearch(query[:len(query)-1]))
		}
	default:
		// Append printable characters only (excludes control keys)
		keyStr := msg.String()
		if len(keyStr) == 1 && keyStr >= " " && keyStr <= "~" {
			m.setView(m.view.WithSearch(m.view.Search + keyStr))
		}
	}
}

// setView replaces the view state and rebuilds the visible list from the
// full catalog. Filtering never runs on an already-filtered list.
func (m *BrowseModel) setView(view catalog.ViewState) {
	m.view = view
	m.applyView()
}

func (m *BrowseModel) applyView() {
	if m.catalog == nil {
		return
	}

	m.visible = catalog.Filter(m.catalog.Gems, m.view)
	m.grouping = catalog.GroupByTier(m.visible)

	shown := m.shownGems()
	if m.cursor >= len(shown) {
		m.cursor = len(shown) - 1
	}

	if m.cursor < 0 {
		m.cursor = 0
	}

	if m.ready {
		m.viewport.SetContent(m.renderSections())
		m.ensureSelectionVisible()
	}
}

// shownGems flattens the tier sections into render order. Gems dropped for
// an unknown tier are not part of it.
func (m *BrowseModel) shownGems() []catalog.Gem {
	var gems []catalog.Gem

	for _, section := range m.grouping.Sections {
		gems = append(gems, section.Gems...)
	}

	return gems
}

func (m *BrowseModel) moveCursor(delta int) {
	shown := m.shownGems()
	if len(shown) == 0 {
		return
	}

	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}

	if m.cursor > len(shown)-1 {
		m.cursor = len(shown) - 1
	}

	m.ensureSelectionVisible()
}

func (m *BrowseModel) cycleCategory(delta int) {
	if len(m.categories) == 0 {
		return
	}

	m.categoryIdx = (m.categoryIdx + delta + len(m.categories)) % len(m.categories)
	m.setView(m.view.WithCategory(m.categories[m.categoryIdx]))
}

func (m *BrowseModel) indexOfCategory(category string) int {
	for i, candidate := range m.categories {
		if strings.EqualFold(candidate, category) {
			return i
		}
	}

	return 0
}

// ensureSelectionVisible calculates the exact line position of the
// selection in the rendered content and scrolls the viewport so it stays
// within a buffered window.
func (m *BrowseModel) ensureSelectionVisible() {
	if !m.ready || len(m.shownGems()) == 0 {
		return
	}

	selectionLine := m.calculateSelectionLine()

	viewportTop := m.viewport.YOffset
	viewportBottom := viewportTop + m.viewport.Height - 1

	// Buffer zones - scroll when the selection gets close to the edges
	topBuffer := 3
	bottomBuffer := 2

	if selectionLine <= viewportTop+topBuffer {
		newOffset := selectionLine - topBuffer
		if newOffset < 0 {
			newOffset = 0
		}

		m.viewport.SetYOffset(newOffset)
	} else if selectionLine >= viewportBottom-bottomBuffer {
		newOffset := selectionLine - m.viewport.Height + bottomBuffer + 1

		maxOffset := m.viewport.TotalLineCount() - m.viewport.Height
		if maxOffset < 0 {
			maxOffset = 0
		}

		if newOffset > maxOffset {
			newOffset = maxOffset
		}

		m.viewport.SetYOffset(newOffset)
	}
}

// calculateSelectionLine maps the cursor to its line in renderSections
// output. Each section renders a title line, a blank line, its gem rows,
// and a trailing blank line before the next section.
func (m *BrowseModel) calculateSelectionLine() int {
	line := 0
	remaining := m.cursor

	for _, section := range m.grouping.Sections {
		if section.Empty() {
			continue
		}

		if remaining < len(section.Gems) {
			return line + 2 + remaining
		}

		line += 2 + len(section.Gems) + 1
		remaining -= len(section.Gems)
	}

	return line
}

// Action commands

func (m *BrowseModel) primaryCmd() tea.Cmd {
	gem, ok := m.SelectedGem()
	if !ok || m.runner == nil {
		return nil
	}

	ctx, runner := m.ctx, m.runner

	return func() tea.Msg {
		outcome, err := runner.Primary(ctx, gem)

		return ActionDoneMsg{GemID: gem.ID, Outcome: outcome, Err: err}
	}
}

func (m *BrowseModel) copyCmd() tea.Cmd {
	gem, ok := m.SelectedGem()
	if !ok || m.runner == nil {
		return nil
	}

	ctx, runner := m.ctx, m.runner

	return func() tea.Msg {
		err := runner.Copy(ctx, gem)

		return ActionDoneMsg{GemID: gem.ID, Outcome: action.OutcomeCopied, Err: err}
	}
}

func (m *BrowseModel) openCmd() tea.Cmd {
	gem, ok := m.SelectedGem()
	if !ok || m.runner == nil {
		return nil
	}

	ctx, runner := m.ctx, m.runner

	return func() tea.Msg {
		err := runner.OpenLink(ctx, gem)

		return ActionDoneMsg{GemID: gem.ID, Outcome: action.OutcomeOpened, Err: err}
	}
}

func (m *BrowseModel) handleActionDone(msg ActionDoneMsg) tea.Cmd {
	if msg.Err != nil {
		return m.toast.show(actionFailureText(msg.Err), toastError)
	}

	switch msg.Outcome {
	case action.OutcomeCopied:
		return m.toast.show("Copied to clipboard", toastSuccess)
	case action.OutcomeOpened:
		return m.toast.show("Opened in browser", toastSuccess)
	default:
		// Gem had neither link nor content: deliberate no-op, no toast.
		return nil
	}
}

// actionFailureText maps action errors to their distinct toast messages.
func actionFailureText(err error) string {
	switch {
	case errors.Is(err, action.ErrFetch):
		return "Copy failed: content could not be fetched"
	case errors.Is(err, action.ErrClipboard):
		return "Copy failed: clipboard unavailable"
	case errors.Is(err, action.ErrOpen):
		return "Open failed: browser did not start"
	case errors.Is(err, action.ErrNoContent):
		return "Nothing to copy for this gem"
	case errors.Is(err, action.ErrNoLink):
		return "No link to open for this gem"
	default:
		return "Action failed"
	}
}

// Rendering

// renderHeader renders the always-visible title, category pills, search
// field and work-mode indicator.
func (m *BrowseModel) renderHeader() string {
	titleLine := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.styles.Primary).
		Render("Gemcase » Browse")

	controlsLine := fmt.Sprintf("%s  %s  %s",
		m.renderSearchField(),
		m.renderWorkIndicator(),
		m.renderCounts(),
	)

	headerContent := lipgloss.JoinVertical(lipgloss.Left,
		titleLine,
		"",
		m.renderCategoryPills(),
		controlsLine,
	)

	return lipgloss.NewStyle().
		Padding(1, 2).
		Border(lipgloss.RoundedBorder(), false, false, true, false).
		BorderForeground(m.styles.Primary).
		Render(headerContent)
}

func (m *BrowseModel) renderCategoryPills() string {
	pills := make([]string, 0, len(m.categories))

	for i, category := range m.categories {
		var style lipgloss.Style
		if i == m.categoryIdx {
			style = m.styles.Selected.MarginRight(1)
		} else {
			style = m.styles.Unselected.MarginRight(1).Faint(true)
		}

		pills = append(pills, style.Render(catalog.TitleCategory(category)))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, pills...)
}

func (m *BrowseModel) renderSearchField() string {
	query := m.view.Search

	if !m.searchHasFocus && query == "" {
		return fmt.Sprintf("Search: [%s] /", strings.Repeat("_", searchFieldWidth))
	}

	searchText := query

	padding := searchFieldWidth - len(searchText)
	if padding > 0 {
		searchText += strings.Repeat("_", padding)
	} else if len(searchText) > searchFieldWidth {
		searchText = searchText[:searchFieldWidth-3] + "..."
	}

	// Cursor marks the focused field
	if m.searchHasFocus {
		if strings.HasSuffix(searchText, "_") {
			searchText = searchText[:len(searchText)-1] + "│"
		} else {
			searchText += "│"
		}
	}

	searchStyle := lipgloss.NewStyle()
	if m.searchHasFocus {
		searchStyle = searchStyle.
			Background(m.styles.Secondary).
			Foreground(lipgloss.Color("#1a1b26")).
			Bold(true)
	} else {
		searchStyle = searchStyle.Foreground(m.styles.Primary)
	}

	return "Search: [" + searchStyle.Render(searchText) + "]"
}

func (m *BrowseModel) renderWorkIndicator() string {
	if m.view.WorkMode {
		return m.styles.WarningText.Bold(true).Render("Work: ON")
	}

	return m.styles.MutedText.Render("Work: off")
}

func (m *BrowseModel) renderCounts() string {
	if m.catalog == nil {
		return ""
	}

	shown := len(m.shownGems())

	return m.styles.MutedText.Render(fmt.Sprintf("%d of %d gems", shown, m.catalog.Len()))
}

// renderSections renders ALL tier sections for the viewport to handle
// scrolling. Empty tiers render nothing, not an empty header.
func (m *BrowseModel) renderSections() string {
	if m.catalog == nil {
		return ""
	}

	if !m.grouping.Visible() {
		return m.renderEmptyState()
	}

	maxNameWidth := m.maxNameWidth()

	sectionViews := make([]string, 0, len(m.grouping.Sections)*2)
	offset := 0

	for _, section := range m.grouping.Sections {
		if section.Empty() {
			continue
		}

		sectionViews = append(sectionViews, m.renderSection(section, offset, maxNameWidth), "")
		offset += len(section.Gems)
	}

	// Drop the trailing blank line
	if len(sectionViews) > 0 {
		sectionViews = sectionViews[:len(sectionViews)-1]
	}

	return lipgloss.JoinVertical(lipgloss.Top, sectionViews...)
}

// renderSection renders one tier: a title line, a blank line, gem rows.
func (m *BrowseModel) renderSection(section catalog.TierSection, offset, maxNameWidth int) string {
	title := fmt.Sprintf("── %s %s ── [%d]",
		m.styles.TierIcon(string(section.Tier)),
		catalog.TitleCategory(string(section.Tier)),
		len(section.Gems),
	)

	styledTitle := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.styles.Primary).
		Render(title)

	rows := make([]string, 0, len(section.Gems))
	for i, gem := range section.Gems {
		rows = append(rows, m.renderGemRow(gem, maxNameWidth, offset+i == m.cursor))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		styledTitle,
		"",
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderGemRow formats one gem as aligned columns: marker, name,
// description, category. The row stays plain text and is styled as a
// whole so the selection background covers it without nested escapes.
func (m *BrowseModel) renderGemRow(gem catalog.Gem, maxNameWidth int, selected bool) string {
	description := gem.Description
	if gem.Sensitive && !selected {
		description = strings.Repeat("•", sensitiveMaskWidth)
	}

	if limit := m.width - maxNameWidth - 24; limit > 10 {
		description = runewidth.Truncate(description, limit, "…")
	}

	line := fmt.Sprintf("%s %s  %s  %s",
		m.gemMarker(gem),
		padToWidth(gem.Name, maxNameWidth),
		description,
		catalog.TitleCategory(gem.Category),
	)

	if selected {
		return m.styles.Selected.Render(line)
	}

	return m.styles.Unselected.Render(line)
}

// gemMarker returns the primary-action marker: a link wins over content.
func (m *BrowseModel) gemMarker(gem catalog.Gem) string {
	switch {
	case gem.HasLink():
		return MarkLink
	case gem.HasContent():
		return MarkContent
	default:
		return MarkInert
	}
}

func (m *BrowseModel) maxNameWidth() int {
	maxWidth := 0

	for _, gem := range m.shownGems() {
		if w := runewidth.StringWidth(gem.Name); w > maxWidth {
			maxWidth = w
		}
	}

	return maxWidth
}

// padToWidth pads text with spaces to the target display width. Unlike
// fmt's %-*s it counts cells, not bytes, so wide runes stay aligned.
func padToWidth(text string, width int) string {
	gap := width - runewidth.StringWidth(text)
	if gap <= 0 {
		return text
	}

	return text + strings.Repeat(" ", gap)
}

// renderEmptyState names the active constraints when nothing matches.
func (m *BrowseModel) renderEmptyState() string {
	lines := []string{m.styles.WarningText.Render("No gems match the current view.")}

	if m.view.Category != "" && !strings.EqualFold(m.view.Category, catalog.CategoryAll) {
		lines = append(lines, fmt.Sprintf("  category: %s", catalog.TitleCategory(m.view.Category)))
	}

	if strings.TrimSpace(m.view.Search) != "" {
		lines = append(lines, fmt.Sprintf("  search: %q", m.view.Search))
	}

	if m.view.WorkMode {
		lines = append(lines, "  work mode: on")
	}

	lines = append(lines, "",
		m.styles.MutedText.Render("Press esc to clear the search, tab to change category, w to toggle work mode."))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *BrowseModel) renderFooter() string {
	actions := []FooterAction{
		{Key: "enter", Action: "Primary"},
		{Key: "c", Action: "Copy"},
		{Key: "o", Action: "Open"},
		{Key: "v", Action: "Detail"},
		{Key: "/", Action: "Search"},
		{Key: "w", Action: "Work"},
		{Key: "q", Action: "Quit"},
	}

	return RenderFooter(m.styles, m.width, actions, true)
}
