// SPDX-FileCopyrightText: 2025 The Gemcase Authors
// SPDX-License-Identifier: EUPL-1.2

// Package testutil provides mock implementations of the action ports.
package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockClipboard mocks the action.Clipboard port.
type MockClipboard struct {
	mock.Mock
}

// Write mocks a clipboard write.
func (m *MockClipboard) Write(text string) error {
	args := m.Called(text)

	return args.Error(0)
}

// MockNavigator mocks the action.Navigator port.
type MockNavigator struct {
	mock.Mock
}

// Open mocks opening a URL in the browser.
func (m *MockNavigator) Open(ctx context.Context, url string) error {
	args := m.Called(ctx, url)

	return args.Error(0)
}

// MockFetcher mocks the action.ContentFetcher port.
type MockFetcher struct {
	mock.Mock
}

// Fetch mocks content resolution.
func (m *MockFetcher) Fetch(ctx context.Context, ref string) (string, error) {
	args := m.Called(ctx, ref)

	return args.String(0), args.Error(1)
}
