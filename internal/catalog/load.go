// SPDX-FileCopyrightText: 2025 The Gemcase Authors
// SPDX-License-Identifier: EUPL-1.2

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/tidwall/jsonc"

	"github.com/jwahlstedt/gemcase/internal/logging"
	"github.com/jwahlstedt/gemcase/internal/platform"
)

const (
	sourceTimeout = 10 * time.Second
	maxSourceSize = 8 << 20
)

// Document is the on-disk shape of a catalog file.
type Document struct {
	Version int   `json:"version,omitempty" yaml:"version,omitempty"`
	Gems    []Gem `json:"gems"              yaml:"gems"`
}

var defaultValidator = sync.OnceValues(NewValidator)

// Load reads, validates, and decodes the catalog at source, which is a
// file path or an http(s) URL. Any failure is fatal for the session;
// there is no partial catalog.
func Load(ctx context.Context, source string) (*Catalog, error) {
	data, err := readSource(ctx, source)
	if err != nil {
		return nil, err
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	logging.ForComponent("catalog").
		WithField("source", source).
		Debugf("loaded %d gems", len(doc.Gems))

	flagUnknownTiers(doc.Gems)

	return New(source, doc.Gems), nil
}

// Parse strips JSONC comments and trailing commas from data, checks the
// result against the embedded schema, and decodes it. Schema-valid
// documents additionally need unique ids and defined work
// classifications.
func Parse(data []byte) (*Document, error) {
	stripped := jsonc.ToJSON(data)

	var raw any
	if err := json.Unmarshal(stripped, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	validator, err := defaultValidator()
	if err != nil {
		return nil, err
	}

	if err := validator.Validate(raw); err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(stripped, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	if err := checkGems(doc.Gems); err != nil {
		return nil, err
	}

	return &doc, nil
}

// checkGems enforces the constraints the schema cannot express: id
// uniqueness across the document and the closed classification set.
func checkGems(gems []Gem) error {
	seen := make(map[string]bool, len(gems))

	for _, gem := range gems {
		if seen[gem.ID] {
			return fmt.Errorf("%w: %q", ErrDuplicateID, gem.ID)
		}

		seen[gem.ID] = true

		if !gem.Classification.Valid() {
			return fmt.Errorf("%w: gem %q has %q", ErrClassification, gem.ID, gem.Classification)
		}
	}

	return nil
}

// flagUnknownTiers logs gems that will never reach a tier section. The
// gems stay in the catalog; only their display is affected.
func flagUnknownTiers(gems []Gem) {
	var ids []string

	for _, gem := range gems {
		if !gem.Tier.Known() {
			ids = append(ids, gem.ID)
		}
	}

	if len(ids) == 0 {
		return
	}

	log := logging.ForComponent("catalog")
	log.Warnf("%d gem(s) carry an unrecognized tier and will not be displayed", len(ids))
	log.WithField("ids", ids).Debug("gems omitted from tier sections")
}

func readSource(ctx context.Context, source string) ([]byte, error) {
	if isURL(source) {
		return fetchURL(ctx, source)
	}

	data, err := os.ReadFile(platform.ExpandPath(source))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceRead, err)
	}

	return data, nil
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func fetchURL(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, sourceTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceRead, err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceRead, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned %s", ErrSourceRead, url, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSourceSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceRead, err)
	}

	if len(data) > maxSourceSize {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrSourceRead, url, maxSourceSize)
	}

	return data, nil
}
