// SPDX-FileCopyrightText: 2025 The Gemcase Authors
// SPDX-License-Identifier: EUPL-1.2

// Package models implements the gem detail screen.
package models

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/jwahlstedt/gemcase/internal/action"
	"github.com/jwahlstedt/gemcase/internal/catalog"
	"github.com/jwahlstedt/gemcase/internal/tui/styles"
)

// contentFetchedMsg delivers lazily resolved gem content.
type contentFetchedMsg struct {
	gemID   string
	content string
	err     error
}

// Detail shows one gem's full metadata with a rendered content preview.
// Content is fetched when the screen opens, never earlier.
//
//nolint:containedctx // propagated to fetch and gem actions for cancellation
type Detail struct {
	styles  *styles.Styles
	ctx     context.Context
	gem     catalog.Gem
	runner  *action.Runner
	fetcher action.ContentFetcher

	renderer *glamour.TermRenderer
	viewport viewport.Model

	spinner  spinner.Model
	fetching bool
	fetchErr error

	toast toastState

	width    int
	height   int
	ready    bool
	quitting bool

	keyMap DetailKeyMap
}

// DetailKeyMap defines key bindings for the detail screen.
type DetailKeyMap struct {
	Primary key.Binding
	Copy    key.Binding
	Open    key.Binding
	Home    key.Binding
	End     key.Binding
	Back    key.Binding
}

// DefaultDetailKeyMap returns the default key bindings.
func DefaultDetailKeyMap() DetailKeyMap {
	return DetailKeyMap{
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
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home/g", "go to top"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end/G", "go to bottom"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back to browse"),
		),
	}
}

// NewDetail creates a detail model for one gem.
func NewDetail(ctx context.Context, styleConfig *styles.Styles, gem catalog.Gem, runner *action.Runner, fetcher action.ContentFetcher) *Detail {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// Fallback to default renderer
		renderer, _ = glamour.NewTermRenderer()
	}

	viewPort := viewport.New(80, 20)
	viewPort.Style = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styleConfig.Muted).
		Padding(0, 1)

	fetchSpinner := spinner.New()
	fetchSpinner.Spinner = spinner.Dot
	fetchSpinner.Style = lipgloss.NewStyle().Foreground(styleConfig.Primary)

	model := &Detail{
		styles:   styleConfig,
		ctx:      ctx,
		gem:      gem,
		runner:   runner,
		fetcher:  fetcher,
		renderer: renderer,
		viewport: viewPort,
		spinner:  fetchSpinner,
		fetching: gem.HasContent() && fetcher != nil,
		keyMap:   DefaultDetailKeyMap(),
	}

	if !gem.HasContent() {
		model.viewport.SetContent(styleConfig.MutedText.Render("This gem has no copyable content."))
	}

	return model
}

// Init starts the spinner and the lazy content fetch.
func (m *Detail) Init() tea.Cmd {
	if !m.fetching {
		return nil
	}

	return tea.Batch(m.spinner.Tick, m.fetchContentCmd())
}

// Update handles messages for the Detail model.
func (m *Detail) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

		return m, nil

	case spinner.TickMsg:
		if !m.fetching {
			return m, nil
		}

		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case contentFetchedMsg:
		if msg.gemID != m.gem.ID {
			return m, nil
		}

		m.fetching = false
		m.fetchErr = msg.err

		if msg.err != nil {
			m.viewport.SetContent(m.styles.ErrorText.Render("Content could not be fetched: " + msg.err.Error()))
		} else {
			m.viewport.SetContent(m.renderPreview(msg.content))
		}

		return m, nil

	case ActionDoneMsg:
		return m, m.handleActionDone(msg)

	case ToastExpiredMsg:
		m.toast.expire(msg.Seq)

		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// View renders the detail screen.
func (m *Detail) View() string {
	if m.quitting {
		return GoodbyeMessage
	}

	body := m.viewport.View()
	if m.fetching {
		body = fmt.Sprintf("\n  %s Fetching content from %s\n", m.spinner.View(), m.gem.ContentReference)
	}

	return lipgloss.JoinVertical(lipgloss.Top,
		m.renderHeader(),
		m.renderMetadata(),
		body,
		m.toast.render(m.styles),
		m.renderFooter(),
	)
}

// GetGem returns the displayed gem (for testing).
func (m *Detail) GetGem() catalog.Gem {
	return m.gem
}

// IsFetching returns whether the content fetch is still running.
func (m *Detail) IsFetching() bool {
	return m.fetching
}

// GetFetchError returns the content fetch error, if any (for testing).
func (m *Detail) GetFetchError() error {
	return m.fetchErr
}

// GetToast returns the current toast text and kind (for testing).
func (m *Detail) GetToast() (string, string) {
	return m.toast.text, m.toast.kind
}

// Unexported methods

func (m *Detail) resize(width, height int) {
	m.width = width
	m.height = height

	chrome := lipgloss.Height(m.renderHeader()) +
		lipgloss.Height(m.renderMetadata()) +
		1 + // toast line
		lipgloss.Height(m.renderFooter())

	viewportHeight := height - chrome - 2 // viewport border
	if viewportHeight < 1 {
		viewportHeight = 1
	}

	m.viewport.Width = width - 2
	m.viewport.Height = viewportHeight
	m.ready = true
}

func (m *Detail) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Back):
		return m, func() tea.Msg {
			return NavigateMsg{Screen: BrowseScreen}
		}

	case key.Matches(msg, m.keyMap.Primary):
		return m, m.actionCmd(func(ctx context.Context, runner *action.Runner) ActionDoneMsg {
			outcome, err := runner.Primary(ctx, m.gem)

			return ActionDoneMsg{GemID: m.gem.ID, Outcome: outcome, Err: err}
		})

	case key.Matches(msg, m.keyMap.Copy):
		return m, m.actionCmd(func(ctx context.Context, runner *action.Runner) ActionDoneMsg {
			return ActionDoneMsg{GemID: m.gem.ID, Outcome: action.OutcomeCopied, Err: runner.Copy(ctx, m.gem)}
		})

	case key.Matches(msg, m.keyMap.Open):
		return m, m.actionCmd(func(ctx context.Context, runner *action.Runner) ActionDoneMsg {
			return ActionDoneMsg{GemID: m.gem.ID, Outcome: action.OutcomeOpened, Err: runner.OpenLink(ctx, m.gem)}
		})

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

func (m *Detail) actionCmd(run func(context.Context, *action.Runner) ActionDoneMsg) tea.Cmd {
	if m.runner == nil {
		return nil
	}

	ctx, runner := m.ctx, m.runner

	return func() tea.Msg {
		return run(ctx, runner)
	}
}

func (m *Detail) handleActionDone(msg ActionDoneMsg) tea.Cmd {
	if msg.Err != nil {
		return m.toast.show(actionFailureText(msg.Err), toastError)
	}

	switch msg.Outcome {
	case action.OutcomeCopied:
		return m.toast.show("Copied to clipboard", toastSuccess)
	case action.OutcomeOpened:
		return m.toast.show("Opened in browser", toastSuccess)
	default:
		return nil
	}
}

// renderPreview renders fetched content through glamour. Anything that is
// not markdown goes inside a code fence so snippets keep their shape.
func (m *Detail) renderPreview(content string) string {
	body := content

	ref := strings.ToLower(strings.TrimSpace(m.gem.ContentReference))
	if !strings.HasSuffix(ref, ".md") && !strings.HasSuffix(ref, ".markdown") {
		body = "```\n" + content + "\n```"
	}

	rendered, err := m.renderer.Render(body)
	if err != nil {
		return content
	}

	return rendered
}

func (m *Detail) renderHeader() string {
	headerContent := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.styles.Primary).
		Render("Gemcase » Detail")

	return lipgloss.NewStyle().
		Padding(0, 2).
		Border(lipgloss.RoundedBorder(), false, false, true, false).
		BorderForeground(m.styles.Primary).
		Render(headerContent)
}

func (m *Detail) renderMetadata() string {
	gem := m.gem

	lines := []string{
		m.styles.Title.Render(gem.Name),
		m.styles.Subtitle.Render(catalog.TitleCategory(gem.Category)),
		"",
		fmt.Sprintf("%s %s %s", m.styles.MutedText.Render("Tier:"), m.styles.TierIcon(string(gem.Tier)), string(gem.Tier)),
		fmt.Sprintf("%s %s", m.styles.MutedText.Render("Work:"), string(gem.Classification)),
	}

	if gem.HasLink() {
		lines = append(lines, fmt.Sprintf("%s %s %s", m.styles.MutedText.Render("Link:"), MarkLink, gem.ExternalLink))
	}

	if gem.HasContent() {
		lines = append(lines, fmt.Sprintf("%s %s %s", m.styles.MutedText.Render("Content:"), MarkContent, gem.ContentReference))
	}

	if gem.Sensitive {
		lines = append(lines, m.styles.WarningText.Render("! Sensitive: description is masked in lists"))
	}

	lines = append(lines, "", gem.Description)

	return m.styles.Card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m *Detail) renderFooter() string {
	actions := []FooterAction{
		{Key: "enter", Action: "Primary"},
		{Key: "c", Action: "Copy"},
		{Key: "o", Action: "Open"},
		{Key: "j/k", Action: "Scroll"},
		{Key: "esc", Action: "Back"},
		{Key: "q", Action: "Quit"},
	}

	return RenderFooter(m.styles, m.width, actions, false)
}

func (m *Detail) fetchContentCmd() tea.Cmd {
	ctx, fetcher, gem := m.ctx, m.fetcher, m.gem

	return func() tea.Msg {
		content, err := fetcher.Fetch(ctx, gem.ContentReference)

		return contentFetchedMsg{gemID: gem.ID, content: content, err: err}
	}
}
