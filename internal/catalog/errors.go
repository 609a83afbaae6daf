// SPDX-FileCopyrightText: 2025 The Gemcase Authors
// SPDX-License-Identifier: EUPL-1.2

package catalog

import "errors"

var (
	// ErrSourceRead indicates the catalog source could not be read.
	ErrSourceRead = errors.New("catalog source unreadable")
	// ErrParse indicates the catalog document is not valid JSONC.
	ErrParse = errors.New("catalog document malformed")
	// ErrSchema indicates the catalog document failed schema validation.
	ErrSchema = errors.New("catalog document invalid")
	// ErrDuplicateID indicates two gems share an id.
	ErrDuplicateID = errors.New("duplicate gem id")
	// ErrClassification indicates a gem carries an unknown work classification.
	ErrClassification = errors.New("unknown work classification")
	// ErrGemNotFound indicates no gem has the requested id.
	ErrGemNotFound = errors.New("gem not found")
)
