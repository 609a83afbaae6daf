// SPDX-FileCopyrightText: 2025 The Gemcase Authors
// SPDX-License-Identifier: EUPL-1.2

// Package export writes gem lists to interchange formats for use
// outside gemcase: JSON, YAML, and XLSX spreadsheets.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/jwahlstedt/gemcase/internal/catalog"
)

// Format selects the output encoding.
type Format string

// Supported export formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatXLSX Format = "xlsx"
)

// ErrUnknownFormat indicates a format name outside the supported set.
var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat maps a user-supplied format name to a Format. The empty
// string defaults to JSON.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "xlsx", "excel":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q (expected json, yaml, or xlsx)", ErrUnknownFormat, name)
	}
}

// Binary reports whether the format is unfit for a terminal stream.
func (f Format) Binary() bool {
	return f == FormatXLSX
}

// Write encodes gems to w in the given format. Gems keep their list
// order in every format.
func Write(w io.Writer, gems []catalog.Gem, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, gems)
	case FormatYAML:
		return writeYAML(w, gems)
	case FormatXLSX:
		return writeXLSX(w, gems)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func writeJSON(w io.Writer, gems []catalog.Gem) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(gems); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	return nil
}

func writeYAML(w io.Writer, gems []catalog.Gem) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(gems); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return fmt.Errorf("flush yaml: %w", err)
	}

	return nil
}

const sheetName = "Gems"

// xlsxColumns pairs each spreadsheet column with its width.
var xlsxColumns = []struct { //nolint:gochecknoglobals
	title string
	width float64
}{
	{"id", 20},
	{"name", 26},
	{"description", 48},
	{"category", 16},
	{"tier", 16},
	{"classification", 16},
	{"content reference", 36},
	{"external link", 44},
	{"sensitive", 10},
}

func writeXLSX(w io.Writer, gems []catalog.Gem) error {
	file := excelize.NewFile()

	defer func() {
		_ = file.Close()
	}()

	if err := file.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	stream, err := file.NewStreamWriter(sheetName)
	if err != nil {
		return fmt.Errorf("open stream writer: %w", err)
	}

	// Column widths must be set before the first row is streamed.
	for i, column := range xlsxColumns {
		if err := stream.SetColWidth(i+1, i+1, column.width); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}

	header := make([]any, len(xlsxColumns))
	for i, column := range xlsxColumns {
		header[i] = column.title
	}

	if err := stream.SetRow("A1", header); err != nil {
		return fmt.Errorf("write header row: %w", err)
	}

	for i, gem := range gems {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("locate row %d: %w", i+2, err)
		}

		row := []any{
			gem.ID,
			gem.Name,
			gem.Description,
			gem.Category,
			string(gem.Tier),
			string(gem.Classification),
			gem.ContentReference,
			gem.ExternalLink,
			gem.Sensitive,
		}

		if err := stream.SetRow(cell, row); err != nil {
			return fmt.Errorf("write row for gem %s: %w", gem.ID, err)
		}
	}

	if err := stream.Flush(); err != nil {
		return fmt.Errorf("flush spreadsheet: %w", err)
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("write spreadsheet: %w", err)
	}

	return nil
}
