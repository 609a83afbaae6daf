// SPDX-FileCopyrightText: 2025 The Gemcase Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwahlstedt/gemcase/internal/tui/styles"
)

// Toast kinds and durations. Success toasts clear faster than failures.
const (
	toastSuccess = "success"
	toastError   = "error"

	successToastDuration = 2 * time.Second
	failureToastDuration = 3 * time.Second
)

// toastState is the transient status line screens share. Toasts replace
// each other, auto-dismiss on a timer and never block input.
type toastState struct {
	text string
	kind string
	seq  int
}

// show replaces the toast and returns the command that expires it.
func (t *toastState) show(text, kind string) tea.Cmd {
	t.text = text
	t.kind = kind
	t.seq++

	seq := t.seq

	duration := successToastDuration
	if kind == toastError {
		duration = failureToastDuration
	}

	return tea.Tick(duration, func(time.Time) tea.Msg {
		return ToastExpiredMsg{Seq: seq}
	})
}

// expire clears the toast unless a newer one replaced it.
func (t *toastState) expire(seq int) {
	if seq == t.seq {
		t.text = ""
		t.kind = ""
	}
}

// render returns the toast line, or an empty line to keep layout stable.
func (t *toastState) render(s *styles.Styles) string {
	if t.text == "" {
		return ""
	}

	if t.kind == toastError {
		return "  " + s.StatusIcon("error") + " " + s.ErrorText.Render(t.text)
	}

	return "  " + s.StatusIcon("success") + " " + s.SuccessText.Render(t.text)
}
