// SPDX-FileCopyrightText: 2025 The Gemcase Authors
// SPDX-License-Identifier: EUPL-1.2

// Package logging provides per-component loggers backed by one shared
// sink. Logs land in a dated file under the XDG state directory; stderr
// echo stays off while a TTY is attached so the browser screen stays
// clean, and turns on when output is piped or GEMCASE_DEBUG is set.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"github.com/jwahlstedt/gemcase/internal/platform"
)

var (
	shared     *logrus.Logger
	sharedOnce sync.Once

	entries   = make(map[string]*logrus.Entry)
	entriesMu sync.Mutex
)

// ForComponent returns the logger entry for a component, creating it on
// first use. Entries are singletons per component.
func ForComponent(component string) *logrus.Entry {
	entriesMu.Lock()
	defer entriesMu.Unlock()

	if entry, exists := entries[component]; exists {
		return entry
	}

	entry := sharedLogger().WithField("component", component)
	entries[component] = entry

	return entry
}

// SetLevel adjusts the shared logger level after configuration loads.
// Unparseable names are ignored and the current level stays.
func SetLevel(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return
	}

	sharedLogger().SetLevel(parsed)
}

func sharedLogger() *logrus.Logger {
	sharedOnce.Do(func() {
		shared = newLogger()
	})

	return shared
}

func newLogger() *logrus.Logger {
	logger := logrus.New()

	level := logrus.InfoLevel
	if levelStr := os.Getenv("GEMCASE_LOG_LEVEL"); levelStr != "" {
		if parsed, err := logrus.ParseLevel(levelStr); err == nil {
			level = parsed
		}
	}

	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	var writers []io.Writer

	if file := openLogFile(); file != nil {
		writers = append(writers, file)
	}

	if shouldLogToStderr(logger) {
		writers = append(writers, os.Stderr)
	}

	switch len(writers) {
	case 0:
		logger.SetOutput(io.Discard)
	case 1:
		logger.SetOutput(writers[0])
	default:
		logger.SetOutput(io.MultiWriter(writers...))
	}

	return logger
}

func openLogFile() io.Writer {
	dir := platform.GetLogDir()
	if dir == "" {
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil
	}

	name := fmt.Sprintf("gemcase-%s.log", time.Now().Format("2006-01-02"))

	file, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil
	}

	return file
}

// shouldLogToStderr echoes logs to stderr in debug mode or when stderr is
// not an interactive terminal (piped output, CI).
func shouldLogToStderr(logger *logrus.Logger) bool {
	if os.Getenv("GEMCASE_DEBUG") == "1" || logger.GetLevel() == logrus.DebugLevel {
		return true
	}

	interactive := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())

	return !interactive
}
