// SPDX-FileCopyrightText: 2025 The Gemcase Authors
// SPDX-License-Identifier: EUPL-1.2

package action

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jwahlstedt/gemcase/internal/platform"
)

const (
	fetchTimeout   = 10 * time.Second
	maxContentSize = 2 << 20
)

// Fetcher resolves content references. An http(s) reference is fetched
// with a time-limited, size-capped GET; anything else is a file path,
// joined to Root when relative.
type Fetcher struct {
	Root string
}

// NewFetcher returns a fetcher resolving relative paths against root.
func NewFetcher(root string) *Fetcher {
	return &Fetcher{Root: root}
}

// Fetch resolves ref into its text content.
func (f *Fetcher) Fetch(ctx context.Context, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", ErrNoContent
	}

	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return f.fetchURL(ctx, ref)
	}

	return f.readFile(ref)
}

func (f *Fetcher) readFile(ref string) (string, error) {
	path := platform.ExpandPath(ref)
	if !filepath.IsAbs(path) && f.Root != "" {
		path = filepath.Join(f.Root, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	return string(data), nil
}

func (f *Fetcher) fetchURL(ctx context.Context, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("request %s: %w", url, err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: %s", url, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxContentSize+1))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", url, err)
	}

	if len(data) > maxContentSize {
		return "", fmt.Errorf("fetch %s: content exceeds %d bytes", url, maxContentSize)
	}

	return string(data), nil
}
