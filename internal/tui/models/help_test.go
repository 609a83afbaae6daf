// SPDX-FileCopyrightText: 2025 The Gemcase Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwahlstedt/gemcase/internal/tui/styles"
)

func sendHelpMsg(t *testing.T, model *Help, msg tea.Msg) (*Help, tea.Cmd) {
	t.Helper()

	updated, cmd := model.Update(msg)

	helpModel, ok := updated.(*Help)
	if !ok {
		t.Fatal("expected *Help")
	}

	return helpModel, cmd
}

func TestHelpSections(t *testing.T) {
	t.Parallel()

	model := NewHelp(styles.New())

	if model.GetSectionCount() != 4 {
		t.Errorf("Section count = %d, want 4", model.GetSectionCount())
	}

	if model.GetCurrentSection() != 0 {
		t.Errorf("Initial section = %d, want 0", model.GetCurrentSection())
	}

	view := model.View()
	for _, title := range []string{"Getting Started", "Browsing & Filtering", "Actions", "CLI Reference"} {
		if !strings.Contains(view, title) {
			t.Errorf("View missing section tab %q", title)
		}
	}
}

func TestHelpSectionNavigation(t *testing.T) {
	t.Parallel()

	model := NewHelp(styles.New())

	// Tab moves forward
	model, _ = sendHelpMsg(t, model, tea.KeyMsg{Type: tea.KeyTab})
	if model.GetCurrentSection() != 1 {
		t.Errorf("Section after tab = %d, want 1", model.GetCurrentSection())
	}

	// Right arrow too
	model, _ = sendHelpMsg(t, model, tea.KeyMsg{Type: tea.KeyRight})
	if model.GetCurrentSection() != 2 {
		t.Errorf("Section after right = %d, want 2", model.GetCurrentSection())
	}

	// Clamped at the last section
	for range 5 {
		model, _ = sendHelpMsg(t, model, tea.KeyMsg{Type: tea.KeyTab})
	}

	if model.GetCurrentSection() != model.GetSectionCount()-1 {
		t.Errorf("Section = %d, want last", model.GetCurrentSection())
	}

	// Left moves back and clamps at zero
	for range 10 {
		model, _ = sendHelpMsg(t, model, tea.KeyMsg{Type: tea.KeyLeft})
	}

	if model.GetCurrentSection() != 0 {
		t.Errorf("Section = %d, want 0", model.GetCurrentSection())
	}
}

func TestHelpEscNavigatesToBrowse(t *testing.T) {
	t.Parallel()

	model := NewHelp(styles.New())

	_, cmd := sendHelpMsg(t, model, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("Esc should produce a navigation command")
	}

	msg, ok := cmd().(NavigateMsg)
	if !ok || msg.Screen != BrowseScreen {
		t.Errorf("Navigate = %+v, want BrowseScreen", msg)
	}
}

func TestHelpQuit(t *testing.T) {
	t.Parallel()

	model := NewHelp(styles.New())

	model, cmd := sendHelpMsg(t, model, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("'q' should produce a quit command")
	}

	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}

	if model.View() != GoodbyeMessage {
		t.Error("View after quit should be the goodbye message")
	}
}

func TestHelpResize(t *testing.T) {
	t.Parallel()

	model := NewHelp(styles.New())

	model, _ = sendHelpMsg(t, model, tea.WindowSizeMsg{Width: 120, Height: 50})

	if model.viewport.Width != 120 {
		t.Errorf("Viewport width = %d, want 120", model.viewport.Width)
	}

	if model.View() == "" {
		t.Error("View should render after resize")
	}
}
