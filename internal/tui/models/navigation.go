// SPDX-FileCopyrightText: 2025 The Gemcase Authors
// SPDX-License-Identifier: EUPL-1.2

// Package models defines shared navigation messages between UI screens.
package models

import (
	"github.com/jwahlstedt/gemcase/internal/action"
	"github.com/jwahlstedt/gemcase/internal/catalog"
)

// NavigateMsg is a message sent to request navigation to a specific screen.
type NavigateMsg struct {
	Screen int
	Data   any // Optional data to pass to the new screen
}

// Screen constants for navigation.
const (
	BrowseScreen = iota
	DetailScreen
	HelpScreen
	ErrorScreen
)

// ReloadCatalogData asks for a fresh browse screen that loads the catalog
// again. Sent as NavigateMsg data from the error screen's retry key.
const ReloadCatalogData = "reload_catalog"

// GoodbyeMessage is shown when the user quits any screen.
const GoodbyeMessage = "Goodbye!\n"

// CatalogLoadedMsg delivers the catalog once the async load finishes.
type CatalogLoadedMsg struct {
	Catalog *catalog.Catalog
}

// CatalogErrorMsg reports a failed catalog load.
type CatalogErrorMsg struct {
	Source string
	Err    error
}

// CatalogFailure describes a failed load for the error screen. It travels
// as NavigateMsg data from the browse screen to the error screen.
type CatalogFailure struct {
	Source string
	Err    error
}

// ActionDoneMsg reports the result of a gem action (primary, copy, open).
// A none outcome with a nil error means the gem had nothing to do.
type ActionDoneMsg struct {
	GemID   string
	Outcome action.Outcome
	Err     error
}

// ToastExpiredMsg clears the status line when its timer fires. Seq guards
// against a stale timer wiping a newer toast.
type ToastExpiredMsg struct {
	Seq int
}
