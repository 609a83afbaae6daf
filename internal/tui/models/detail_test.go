// SPDX-FileCopyrightText: 2025 The Gemcase Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwahlstedt/gemcase/internal/action"
	"github.com/jwahlstedt/gemcase/internal/catalog"
	"github.com/jwahlstedt/gemcase/internal/tui/styles"
)

var errFetchFailed = errors.New("fetch failed")

func detailContentGem() catalog.Gem {
	return catalog.Gem{
		ID: "git-aliases", Name: "Git Aliases",
		Description: "Shortcuts for everyday version control",
		Category:    "snippets", Tier: catalog.TierEssentials,
		Classification:   catalog.ClassWork,
		ContentReference: "snippets/git-aliases.txt",
	}
}

func detailLinkGem() catalog.Gem {
	return catalog.Gem{
		ID: "go-blog", Name: "Go Blog",
		Description: "The Go project blog",
		Category:    "links", Tier: catalog.TierToolkit,
		Classification: catalog.ClassNone,
		ExternalLink:   "https://go.dev/blog",
	}
}

func sendDetailMsg(t *testing.T, model *Detail, msg tea.Msg) (*Detail, tea.Cmd) {
	t.Helper()

	updated, cmd := model.Update(msg)

	detailModel, ok := updated.(*Detail)
	if !ok {
		t.Fatal("expected *Detail")
	}

	return detailModel, cmd
}

func TestDetailFetchesContentLazily(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{content: "alias st=status"}
	model := NewDetail(context.Background(), styles.New(), detailContentGem(), nil, fetcher)

	if !model.IsFetching() {
		t.Fatal("Detail with content should start fetching")
	}

	if model.Init() == nil {
		t.Fatal("Init should start the fetch command")
	}

	view := model.View()
	if !strings.Contains(view, "Fetching content from") {
		t.Error("View should show fetch progress")
	}

	// Deliver the fetched content
	model, _ = sendDetailMsg(t, model, contentFetchedMsg{gemID: "git-aliases", content: "alias st=status"})

	if model.IsFetching() {
		t.Error("Fetch delivery should stop the spinner")
	}

	if model.GetFetchError() != nil {
		t.Errorf("Fetch error = %v, want nil", model.GetFetchError())
	}
}

func TestDetailIgnoresStaleFetchResult(t *testing.T) {
	t.Parallel()

	model := NewDetail(context.Background(), styles.New(), detailContentGem(), nil, &stubFetcher{})

	// Result for a different gem must not touch this screen
	model, _ = sendDetailMsg(t, model, contentFetchedMsg{gemID: "someone-else", content: "x"})

	if !model.IsFetching() {
		t.Error("Stale fetch result must be ignored")
	}
}

func TestDetailFetchFailureShowsError(t *testing.T) {
	t.Parallel()

	model := NewDetail(context.Background(), styles.New(), detailContentGem(), nil, &stubFetcher{err: errFetchFailed})

	model, _ = sendDetailMsg(t, model, contentFetchedMsg{gemID: "git-aliases", err: errFetchFailed})

	if model.GetFetchError() == nil {
		t.Fatal("Fetch error should be recorded")
	}

	if !strings.Contains(model.View(), "Content could not be fetched") {
		t.Error("View should surface the fetch failure")
	}
}

func TestDetailWithoutContentSkipsFetch(t *testing.T) {
	t.Parallel()

	model := NewDetail(context.Background(), styles.New(), detailLinkGem(), nil, &stubFetcher{})

	if model.IsFetching() {
		t.Error("Detail without content must not fetch")
	}

	if model.Init() != nil {
		t.Error("Init should be a no-op without content")
	}

	if !strings.Contains(model.View(), "no copyable content") {
		t.Error("View should say the gem has nothing to copy")
	}
}

func TestDetailEscNavigatesBack(t *testing.T) {
	t.Parallel()

	model := NewDetail(context.Background(), styles.New(), detailLinkGem(), nil, nil)

	_, cmd := sendDetailMsg(t, model, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("Esc should produce a navigation command")
	}

	msg, ok := cmd().(NavigateMsg)
	if !ok || msg.Screen != BrowseScreen {
		t.Errorf("Navigate = %+v, want BrowseScreen", msg)
	}
}

func TestDetailPrimaryAction(t *testing.T) {
	t.Parallel()

	navigator := &stubNavigator{}
	runner := action.NewRunner(&stubFetcher{}, &stubClipboard{}, navigator)
	model := NewDetail(context.Background(), styles.New(), detailLinkGem(), runner, nil)

	model, cmd := sendDetailMsg(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("Primary action should produce a command")
	}

	done, ok := cmd().(ActionDoneMsg)
	if !ok {
		t.Fatal("expected ActionDoneMsg")
	}

	if done.Outcome != action.OutcomeOpened || done.Err != nil {
		t.Errorf("ActionDoneMsg = %+v, want opened", done)
	}

	if navigator.opened != "https://go.dev/blog" {
		t.Errorf("Opened URL = %q, want the gem link", navigator.opened)
	}

	// Feeding the result back raises a success toast
	model, _ = sendDetailMsg(t, model, done)

	text, kind := model.GetToast()
	if text != "Opened in browser" || kind != toastSuccess {
		t.Errorf("Toast = (%q, %q), want success open notice", text, kind)
	}
}

func TestDetailCopyFailureToast(t *testing.T) {
	t.Parallel()

	runner := action.NewRunner(&stubFetcher{content: "body"}, &stubClipboard{err: errFetchFailed}, &stubNavigator{})
	model := NewDetail(context.Background(), styles.New(), detailContentGem(), runner, nil)

	model, cmd := sendDetailMsg(t, model, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	if cmd == nil {
		t.Fatal("Copy should produce a command")
	}

	done, ok := cmd().(ActionDoneMsg)
	if !ok {
		t.Fatal("expected ActionDoneMsg")
	}

	if done.Err == nil {
		t.Fatal("Copy with a broken clipboard should fail")
	}

	model, _ = sendDetailMsg(t, model, done)

	text, kind := model.GetToast()
	if kind != toastError {
		t.Errorf("Toast kind = %q, want error", kind)
	}

	if !strings.Contains(text, "clipboard unavailable") {
		t.Errorf("Toast = %q, want the clipboard failure message", text)
	}
}

func TestDetailActionsWithoutRunnerAreInert(t *testing.T) {
	t.Parallel()

	model := NewDetail(context.Background(), styles.New(), detailLinkGem(), nil, nil)

	_, cmd := sendDetailMsg(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("Action keys must be inert without a runner")
	}
}

func TestDetailMetadataRendering(t *testing.T) {
	t.Parallel()

	gem := detailContentGem()
	gem.Sensitive = true

	model := NewDetail(context.Background(), styles.New(), gem, nil, nil)
	model, _ = sendDetailMsg(t, model, tea.WindowSizeMsg{Width: 100, Height: 40})

	view := model.View()

	for _, fragment := range []string{
		"Gemcase » Detail",
		"Git Aliases",
		"Snippets",
		"essentials",
		"work",
		"snippets/git-aliases.txt",
		"Sensitive",
	} {
		if !strings.Contains(view, fragment) {
			t.Errorf("View missing %q", fragment)
		}
	}
}

func TestDetailLinkGemShowsLinkLine(t *testing.T) {
	t.Parallel()

	model := NewDetail(context.Background(), styles.New(), detailLinkGem(), nil, nil)

	view := model.View()

	if !strings.Contains(view, "https://go.dev/blog") {
		t.Error("View should show the external link")
	}

	if !strings.Contains(view, MarkLink) {
		t.Error("View should mark the link action")
	}
}
