// SPDX-FileCopyrightText: 2025 The Gemcase Authors
// SPDX-License-Identifier: EUPL-1.2

package console

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureStderr(f func()) string {
	r, w, _ := os.Pipe()
	old := os.Stderr
	os.Stderr = w

	f()

	_ = w.Close()
	os.Stderr = old

	out, _ := io.ReadAll(r)

	return string(out)
}

func captureStdout(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	_ = w.Close()
	os.Stdout = old

	out, _ := io.ReadAll(r)

	return string(out)
}

func TestOutputStateSetMode(t *testing.T) {
	o := &OutputState{}

	o.SetMode(true, false, true, false)
	assert.True(t, o.Verbose)
	assert.False(t, o.JSON)
	assert.True(t, o.Plain)
	assert.False(t, o.Quiet)

	o.SetMode(false, true, false, true)
	assert.False(t, o.Verbose)
	assert.True(t, o.JSON)
	assert.False(t, o.Plain)
	assert.True(t, o.Quiet)
}

func TestOutputStateBold(t *testing.T) {
	tests := []struct {
		name     string
		state    OutputState
		envVars  map[string]string
		input    string
		expected string
	}{
		{
			name:     "plain mode returns unformatted",
			state:    OutputState{Plain: true},
			input:    "test",
			expected: "test",
		},
		{
			name:     "json mode returns unformatted",
			state:    OutputState{JSON: true},
			input:    "test",
			expected: "test",
		},
		{
			name:     "NO_COLOR env disables formatting",
			state:    OutputState{},
			envVars:  map[string]string{"NO_COLOR": "1"},
			input:    "test",
			expected: "test",
		},
		{
			name:     "dumb terminal disables formatting",
			state:    OutputState{},
			envVars:  map[string]string{"TERM": "dumb"},
			input:    "test",
			expected: "test",
		},
		{
			name:     "non-TTY returns uppercase",
			state:    OutputState{},
			input:    "test",
			expected: "TEST",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			assert.Equal(t, tt.expected, tt.state.Bold(tt.input))
		})
	}
}

func TestOutputStateHeader(t *testing.T) {
	o := &OutputState{}
	// Header just delegates to Bold
	assert.Equal(t, o.Bold("HEADER"), o.Header("header"))
}

func TestOutputStateProgressf(t *testing.T) {
	tests := []struct {
		name         string
		state        OutputState
		expectOutput bool
	}{
		{
			name:         "verbose mode outputs",
			state:        OutputState{Verbose: true},
			expectOutput: true,
		},
		{
			name:         "non-verbose suppresses output",
			state:        OutputState{Verbose: false},
			expectOutput: false,
		},
		{
			name:         "json mode suppresses output",
			state:        OutputState{Verbose: true, JSON: true},
			expectOutput: false,
		},
		{
			name:         "plain mode suppresses output",
			state:        OutputState{Verbose: true, Plain: true},
			expectOutput: false,
		},
		{
			name:         "quiet mode suppresses output",
			state:        OutputState{Verbose: true, Quiet: true},
			expectOutput: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureStderr(func() {
				tt.state.Progressf("loading %s", "catalog")
			})

			if tt.expectOutput {
				assert.Contains(t, output, "loading catalog")
			} else {
				assert.Empty(t, output)
			}
		})
	}
}

func TestOutputStateSuccessf(t *testing.T) {
	tests := []struct {
		name         string
		state        OutputState
		expectOutput bool
	}{
		{
			name:         "normal mode outputs with checkmark",
			state:        OutputState{},
			expectOutput: true,
		},
		{
			name:         "json mode suppresses output",
			state:        OutputState{JSON: true},
			expectOutput: false,
		},
		{
			name:         "plain mode suppresses output",
			state:        OutputState{Plain: true},
			expectOutput: false,
		},
		{
			name:         "quiet mode suppresses output",
			state:        OutputState{Quiet: true},
			expectOutput: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureStderr(func() {
				tt.state.Successf("copied %s", "jq-cheat")
			})

			if tt.expectOutput {
				assert.Contains(t, output, "✓ copied jq-cheat")
			} else {
				assert.Empty(t, output)
			}
		})
	}
}

func TestOutputStateWarningf(t *testing.T) {
	tests := []struct {
		name     string
		state    OutputState
		expected string
	}{
		{
			name:     "normal mode uses warning symbol",
			state:    OutputState{},
			expected: "⚠ test warning",
		},
		{
			name:     "plain mode uses text prefix",
			state:    OutputState{Plain: true},
			expected: "warning: test warning",
		},
		{
			name:     "quiet mode silences warnings",
			state:    OutputState{Quiet: true},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureStderr(func() {
				tt.state.Warningf("test %s", "warning")
			})

			if tt.expected == "" {
				assert.Empty(t, output)
			} else {
				assert.Contains(t, output, tt.expected)
			}
		})
	}
}

func TestOutputStateErrorf(t *testing.T) {
	tests := []struct {
		name     string
		state    OutputState
		expected string
	}{
		{
			name:     "normal mode uses error symbol",
			state:    OutputState{},
			expected: "✗ test error",
		},
		{
			name:     "plain mode uses text prefix",
			state:    OutputState{Plain: true},
			expected: "error: test error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureStderr(func() {
				tt.state.Errorf("test %s", "error")
			})

			assert.Contains(t, output, tt.expected)
		})
	}
}

func TestOutputStateResult(t *testing.T) {
	o := &OutputState{}

	output := captureStdout(func() {
		o.Result("test result")
	})

	assert.Equal(t, "test result\n", output)
}

func TestOutputStateJSONResult(t *testing.T) {
	o := &OutputState{}

	output := captureStdout(func() {
		o.JSONResult("success", map[string]any{
			"key": "value",
		})
	})

	var result map[string]any

	err := json.Unmarshal([]byte(output), &result)
	require.NoError(t, err)
	assert.Equal(t, "success", result["status"])
	assert.Equal(t, "value", result["key"])
}

func TestOutputStateErrorResult(t *testing.T) {
	o := &OutputState{JSON: true}

	stdout := captureStdout(func() {
		_ = captureStderr(func() {
			o.ErrorResult(errors.New("gem not found"), 2)
		})
	})

	var result map[string]any

	err := json.Unmarshal([]byte(stdout), &result)
	require.NoError(t, err)
	assert.Equal(t, "error", result["status"])
	assert.Equal(t, "gem not found", result["error"])
	assert.InEpsilon(t, float64(2), result["code"], 0.0001)
}

func TestOutputStatePlainHelpers(t *testing.T) {
	o := &OutputState{Plain: true}

	output := captureStdout(func() {
		o.PlainKeyValue("tools", "3")
		o.PlainList([]string{"jq-cheat", "regex-ref"})
	})

	assert.Equal(t, "tools:3\njq-cheat\nregex-ref\n", output)
}
