// SPDX-FileCopyrightText: 2025 The Gemcase Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCLI(t *testing.T) {
	t.Parallel()

	cliApp := NewCLI()

	require.NotNil(t, cliApp)
	require.NotNil(t, cliApp.app)
	require.Equal(t, "gemcase", cliApp.app.Name)
	require.NotEmpty(t, cliApp.app.Usage)
	require.NotEmpty(t, cliApp.app.Description)
	require.NotEmpty(t, cliApp.app.Commands)
}

func TestCLICreateAllCommands(t *testing.T) {
	t.Parallel()

	cliApp := NewCLI()
	commands := cliApp.createAllCommands()

	require.NotEmpty(t, commands)

	commandNames := make(map[string]bool)
	for _, cmd := range commands {
		commandNames[cmd.Name] = true
	}

	expectedCommands := []string{
		"browse", "list", "categories", "show", "copy",
		"open", "export", "validate", "schema", "version",
	}
	for _, expected := range expectedCommands {
		require.True(t, commandNames[expected], "command %s should exist", expected)
	}
}

func TestApp(t *testing.T) {
	t.Parallel()

	app := App()

	require.NotNil(t, app)
	require.Equal(t, "gemcase", app.Name)
	require.NotEmpty(t, app.Usage)
	require.NotEmpty(t, app.Description)
	require.NotEmpty(t, app.Commands)
	require.NotNil(t, app.Action)
	require.NotNil(t, app.Before)
}

func TestExitError(t *testing.T) {
	t.Parallel()

	wrapped := errors.New("boom")

	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{
			name: "message only",
			err:  NewExitError(ExitUsageError, "bad usage", nil),
			want: "bad usage",
		},
		{
			name: "wrapped error",
			err:  NewExitError(ExitCatalogError, "load failed", wrapped),
			want: "load failed: boom",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, testCase.want, testCase.err.Error())
		})
	}
}

func TestExitErrorUnwrapsThroughChains(t *testing.T) {
	t.Parallel()

	cause := errors.New("no such file")
	err := error(NewExitError(ExitCatalogError, "catalog could not be loaded", cause))

	var exitErr *ExitError

	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, ExitCatalogError, exitErr.Code)
	require.Equal(t, "catalog could not be loaded", exitErr.Message)
	require.ErrorIs(t, err, cause)
}

func TestInitConfigRejectsConflictingModes(t *testing.T) {
	t.Parallel()

	cliApp := NewCLI()
	cliApp.json = true
	cliApp.plain = true

	_, err := cliApp.initConfig(context.Background(), nil)

	var exitErr *ExitError

	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, ExitUsageError, exitErr.Code)
}

func TestConfigFallsBackToEmpty(t *testing.T) {
	t.Parallel()

	cliApp := &CLI{}

	require.NotNil(t, cliApp.config())
	require.Empty(t, cliApp.config().Catalog)
}

func TestVersionDefaults(t *testing.T) {
	t.Parallel()

	require.NotEmpty(t, version)
	require.NotEmpty(t, commit)
	require.NotEmpty(t, date)
}
