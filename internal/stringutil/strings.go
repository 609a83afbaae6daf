// SPDX-FileCopyrightText: 2025 The Gemcase Authors
// SPDX-License-Identifier: EUPL-1.2

// Package stringutil provides string utility functions for Gemcase.
package stringutil

import "strings"

// ContainsIgnoreCase checks if text contains substr (case-insensitive).
func ContainsIgnoreCase(text, substr string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(substr))
}
