// SPDX-FileCopyrightText: 2025 The Gemcase Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-runewidth"
	cli "github.com/urfave/cli/v3"

	"github.com/jwahlstedt/gemcase/internal/catalog"
	"github.com/jwahlstedt/gemcase/internal/console"
	"github.com/jwahlstedt/gemcase/internal/export"
	"github.com/jwahlstedt/gemcase/internal/platform"
)

// sensitiveMask replaces descriptions of sensitive gems in shared output.
const sensitiveMask = "••••••••••••"

// filterFlags returns the flag set shared by every command that narrows
// the catalog: list, categories, and export.
func filterFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "category",
			Aliases: []string{"c"},
			Usage:   "only gems in this category (case-insensitive)",
			Value:   catalog.CategoryAll,
		},
		&cli.StringFlag{
			Name:    "search",
			Aliases: []string{"s"},
			Usage:   "only gems whose name or description contains this text",
		},
		&cli.BoolFlag{
			Name:    "work",
			Aliases: []string{"w"},
			Usage:   "work mode: hide private gems, reveal work-only gems",
		},
	}
}

// viewFromFlags builds the view state a command's filter flags describe.
func viewFromFlags(cmd *cli.Command) catalog.ViewState {
	view := catalog.DefaultView()

	if category := cmd.String("category"); category != "" {
		view = view.WithCategory(category)
	}

	view = view.WithSearch(cmd.String("search"))
	view.WorkMode = cmd.Bool("work")

	return view
}

// createBrowseCommand creates the interactive browser command.
func (app *CLI) createBrowseCommand() *cli.Command {
	return &cli.Command{
		Name:  "browse",
		Usage: "Browse the catalog interactively",
		Description: `Open the full-screen catalog browser. This is also what plain
'gemcase' does.

KEYS:
  tab / shift+tab   Cycle categories
  /                 Search (esc clears)
  w                 Toggle work mode
  enter             Primary action (open link, else copy content)
  c / o / v         Copy, open, view details
  q                 Quit`,
		Action: func(ctx context.Context, _ *cli.Command) error {
			return app.launchBrowser(ctx)
		},
	}
}

// createListCommand creates the list command.
func (app *CLI) createListCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "Print the catalog, filtered and grouped by tier",
		Description: `Print the gems that pass the given filters, grouped into the
essentials, toolkit, and miscellaneous tiers.

EXAMPLES:
  gemcase list                        Everything visible off-work
  gemcase list --work --category git  Work view narrowed to one category
  gemcase list --search undo --json   Machine-readable filter results

With --json the filtered gems are emitted as a JSON array in catalog
order, including gems whose tier is not part of the display set.`,
		Flags:  filterFlags(),
		Action: app.runList,
	}
}

// runList prints the filtered catalog.
func (app *CLI) runList(ctx context.Context, cmd *cli.Command) error {
	loaded, err := app.loadCatalog(ctx)
	if err != nil {
		return err
	}

	view := viewFromFlags(cmd)
	visible := catalog.Filter(loaded.Gems, view)

	if app.json {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		if err := encoder.Encode(visible); err != nil {
			return NewExitError(ExitGeneralError, fmt.Sprintf("failed to encode gems: %v", err), err)
		}

		return nil
	}

	if app.plain {
		for _, gem := range visible {
			console.DefaultOutput.PlainKeyValue(gem.ID, gem.Name)
		}

		return nil
	}

	grouping := catalog.GroupByTier(visible)
	if !grouping.Visible() {
		console.DefaultOutput.Warningf("no gems match the current filters")

		return nil
	}

	app.printTierSections(grouping)

	if dropped := grouping.DroppedIDs(); len(dropped) > 0 {
		console.DefaultOutput.Warningf("%d gem(s) hidden by unrecognized tiers: %s",
			len(dropped), strings.Join(dropped, ", "))
	}

	return nil
}

// printTierSections renders tier-grouped gems as aligned text columns.
func (app *CLI) printTierSections(grouping catalog.Grouping) {
	idWidth, nameWidth := 0, 0

	for _, section := range grouping.Sections {
		for _, gem := range section.Gems {
			idWidth = max(idWidth, runewidth.StringWidth(gem.ID))
			nameWidth = max(nameWidth, runewidth.StringWidth(gem.Name))
		}
	}

	for _, section := range grouping.Sections {
		if section.Empty() {
			continue
		}

		title := catalog.TitleCategory(string(section.Tier))
		fmt.Printf("%s (%d)\n", console.DefaultOutput.Header(title), len(section.Gems))

		for _, gem := range section.Gems {
			description := gem.Description
			if gem.Sensitive {
				description = sensitiveMask
			}

			fmt.Printf("  %s  %s  %s\n",
				runewidth.FillRight(gem.ID, idWidth),
				runewidth.FillRight(gem.Name, nameWidth),
				description)
		}

		fmt.Println()
	}
}

// createCategoriesCommand creates the categories command.
func (app *CLI) createCategoriesCommand() *cli.Command {
	return &cli.Command{
		Name:  "categories",
		Usage: "List distinct categories with gem counts",
		Description: `List every category in the catalog, in first-appearance order,
with the number of gems each one holds. With --work the counts only
include gems visible in work mode.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "work",
				Aliases: []string{"w"},
				Usage:   "count only gems visible in work mode",
			},
		},
		Action: app.runCategories,
	}
}

// runCategories prints the catalog's categories and their counts.
func (app *CLI) runCategories(ctx context.Context, cmd *cli.Command) error {
	loaded, err := app.loadCatalog(ctx)
	if err != nil {
		return err
	}

	view := catalog.DefaultView()
	view.WorkMode = cmd.Bool("work")

	visible := catalog.Filter(loaded.Gems, view)

	counts := make(map[string]int, len(visible))
	for _, gem := range visible {
		counts[strings.ToLower(gem.Category)]++
	}

	type categoryCount struct {
		Category string `json:"category"`
		Count    int    `json:"count"`
	}

	rows := make([]categoryCount, 0, len(counts))

	for _, category := range loaded.Categories() {
		if count := counts[strings.ToLower(category)]; count > 0 {
			rows = append(rows, categoryCount{Category: category, Count: count})
		}
	}

	if app.json {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		if err := encoder.Encode(rows); err != nil {
			return NewExitError(ExitGeneralError, fmt.Sprintf("failed to encode categories: %v", err), err)
		}

		return nil
	}

	if app.plain {
		for _, row := range rows {
			console.DefaultOutput.PlainKeyValue(row.Category, fmt.Sprintf("%d", row.Count))
		}

		return nil
	}

	if len(rows) == 0 {
		console.DefaultOutput.Warningf("the catalog has no categories")

		return nil
	}

	width := 0
	for _, row := range rows {
		width = max(width, runewidth.StringWidth(row.Category))
	}

	fmt.Printf("%s (%d)\n", console.DefaultOutput.Header("Categories"), len(rows))

	for _, row := range rows {
		fmt.Printf("  %s  %d\n", runewidth.FillRight(catalog.TitleCategory(row.Category), width), row.Count)
	}

	return nil
}

// createShowCommand creates the show command.
func (app *CLI) createShowCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Print one gem with its resolved content",
		ArgsUsage: "<id>",
		Description: `Print a gem's details and, when it references content, the content
itself. Markdown content renders styled on a terminal and passes
through untouched when piped or with --plain.`,
		Action: app.runShow,
	}
}

// runShow prints a single gem.
func (app *CLI) runShow(ctx context.Context, cmd *cli.Command) error {
	loaded, gem, err := app.requireGem(ctx, cmd, "show")
	if err != nil {
		return err
	}

	var content string

	if gem.HasContent() {
		fetcher := app.newFetcher(loaded.Source)

		content, err = fetcher.Fetch(ctx, gem.ContentReference)
		if err != nil {
			console.DefaultOutput.Warningf("content could not be resolved: %v", err)
		}
	}

	if app.json {
		console.DefaultOutput.JSONResult("ok", map[string]any{
			"gem":     gem,
			"content": content,
		})

		return nil
	}

	app.printGemCard(gem)

	if content != "" {
		fmt.Println(app.renderContent(gem, content))
	}

	return nil
}

// printGemCard prints a gem's metadata in label-value rows.
func (app *CLI) printGemCard(gem catalog.Gem) {
	if app.plain {
		console.DefaultOutput.PlainKeyValue("id", gem.ID)
		console.DefaultOutput.PlainKeyValue("name", gem.Name)
		console.DefaultOutput.PlainKeyValue("category", gem.Category)
		console.DefaultOutput.PlainKeyValue("tier", string(gem.Tier))
		console.DefaultOutput.PlainKeyValue("classification", string(gem.Classification))

		if gem.HasLink() {
			console.DefaultOutput.PlainKeyValue("link", gem.ExternalLink)
		}

		return
	}

	fmt.Printf("%s\n", console.DefaultOutput.Header(gem.Name))

	if gem.Description != "" {
		fmt.Printf("%s\n", gem.Description)
	}

	fmt.Println()
	fmt.Printf("  %-16s%s\n", "id", gem.ID)
	fmt.Printf("  %-16s%s\n", "category", catalog.TitleCategory(gem.Category))
	fmt.Printf("  %-16s%s\n", "tier", catalog.TitleCategory(string(gem.Tier)))
	fmt.Printf("  %-16s%s\n", "classification", string(gem.Classification))

	if gem.HasLink() {
		fmt.Printf("  %-16s%s\n", "link", gem.ExternalLink)
	}

	if gem.HasContent() {
		fmt.Printf("  %-16s%s\n", "content", gem.ContentReference)
	}

	fmt.Println()
}

// renderContent styles gem content for terminal reading. Non-markdown
// references are fenced so they render as a code block.
func (app *CLI) renderContent(gem catalog.Gem, content string) string {
	if app.plain || !console.DefaultOutput.IsTTY(os.Stdout.Fd()) {
		return content
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return content
	}

	body := content
	if !isMarkdownReference(gem.ContentReference) {
		body = "```\n" + strings.TrimRight(content, "\n") + "\n```"
	}

	rendered, err := renderer.Render(body)
	if err != nil {
		return content
	}

	return strings.TrimRight(rendered, "\n")
}

func isMarkdownReference(ref string) bool {
	lower := strings.ToLower(strings.TrimSpace(ref))

	return strings.HasSuffix(lower, ".md") || strings.HasSuffix(lower, ".markdown")
}

// createCopyCommand creates the copy command.
func (app *CLI) createCopyCommand() *cli.Command {
	return &cli.Command{
		Name:      "copy",
		Usage:     "Put a gem's content on the clipboard",
		ArgsUsage: "<id>",
		Description: `Resolve the gem's content reference and place the content on the
system clipboard, exactly as the browser's copy action does.`,
		Action: app.runCopy,
	}
}

// runCopy copies a gem's resolved content to the clipboard.
func (app *CLI) runCopy(ctx context.Context, cmd *cli.Command) error {
	loaded, gem, err := app.requireGem(ctx, cmd, "copy")
	if err != nil {
		return err
	}

	runner := app.newRunner(app.newFetcher(loaded.Source))

	if err := runner.Copy(ctx, gem); err != nil {
		return NewExitError(ExitActionError, fmt.Sprintf("copy failed: %v", err), err)
	}

	console.DefaultOutput.Successf("Copied %s to the clipboard", gem.Name)

	if app.json {
		console.DefaultOutput.JSONResult("copied", map[string]any{"id": gem.ID})
	}

	return nil
}

// createOpenCommand creates the open command.
func (app *CLI) createOpenCommand() *cli.Command {
	return &cli.Command{
		Name:      "open",
		Usage:     "Open a gem's external link in the browser",
		ArgsUsage: "<id>",
		Description: `Hand the gem's external link to the system browser. On a terminal
gemcase asks for confirmation first; pass --yes (or pipe stdin) to
skip the prompt.`,
		Action: app.runOpen,
	}
}

// runOpen opens a gem's external link after consent.
func (app *CLI) runOpen(ctx context.Context, cmd *cli.Command) error {
	loaded, gem, err := app.requireGem(ctx, cmd, "open")
	if err != nil {
		return err
	}

	if !gem.HasLink() {
		return NewExitError(ExitUsageError, fmt.Sprintf("gem %q has no external link", gem.ID), nil)
	}

	if app.needsConsent() {
		confirmed, err := confirmOpenLink(gem)
		if err != nil {
			return NewExitError(ExitGeneralError, fmt.Sprintf("confirmation failed: %v", err), err)
		}

		if !confirmed {
			console.DefaultOutput.Warningf("open cancelled")

			return nil
		}
	}

	runner := app.newRunner(app.newFetcher(loaded.Source))

	if err := runner.OpenLink(ctx, gem); err != nil {
		return NewExitError(ExitActionError, fmt.Sprintf("open failed: %v", err), err)
	}

	console.DefaultOutput.Successf("Opened %s", gem.ExternalLink)

	if app.json {
		console.DefaultOutput.JSONResult("opened", map[string]any{
			"id":   gem.ID,
			"link": gem.ExternalLink,
		})
	}

	return nil
}

// needsConsent reports whether the open command should ask first.
// Non-interactive callers (pipes, scripts) already made their choice.
func (app *CLI) needsConsent() bool {
	return !app.yes && console.DefaultOutput.IsTTY(os.Stdin.Fd())
}

// requireGem loads the catalog and resolves the command's id argument.
func (app *CLI) requireGem(ctx context.Context, cmd *cli.Command, command string) (*catalog.Catalog, catalog.Gem, error) {
	id := cmd.Args().First()
	if id == "" {
		return nil, catalog.Gem{}, NewExitError(ExitUsageError, fmt.Sprintf("usage: gemcase %s <id>", command), nil)
	}

	loaded, err := app.loadCatalog(ctx)
	if err != nil {
		return nil, catalog.Gem{}, err
	}

	gem, ok := loaded.Get(id)
	if !ok {
		return nil, catalog.Gem{}, NewExitError(ExitNotFound,
			fmt.Sprintf("no gem with id %q (try 'gemcase list' to see ids)", id), catalog.ErrGemNotFound)
	}

	return loaded, gem, nil
}

// createExportCommand creates the export command.
func (app *CLI) createExportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Write the catalog to json, yaml, or xlsx",
		Description: `Write the filtered catalog to a file or stdout.

EXAMPLES:
  gemcase export --format yaml                 YAML to stdout
  gemcase export --format xlsx -o gems.xlsx    Spreadsheet for sharing
  gemcase export --work -o work-gems.json      Work view as JSON`,
		Flags: append(filterFlags(),
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "output format: json, yaml, or xlsx",
				Value:   string(export.FormatJSON),
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "destination file (default stdout)",
			},
		),
		Action: app.runExport,
	}
}

// runExport writes the filtered catalog in the chosen format.
func (app *CLI) runExport(ctx context.Context, cmd *cli.Command) error {
	format, err := export.ParseFormat(cmd.String("format"))
	if err != nil {
		return NewExitError(ExitUsageError, err.Error(), err)
	}

	loaded, err := app.loadCatalog(ctx)
	if err != nil {
		return err
	}

	visible := catalog.Filter(loaded.Gems, viewFromFlags(cmd))

	destination := cmd.String("output")
	if destination == "" {
		if format.Binary() && console.DefaultOutput.IsTTY(os.Stdout.Fd()) {
			return NewExitError(ExitUsageError, "refusing to write xlsx to a terminal, use --output", nil)
		}

		if err := export.Write(os.Stdout, visible, format); err != nil {
			return NewExitError(ExitExportError, fmt.Sprintf("export failed: %v", err), err)
		}

		return nil
	}

	file, err := os.Create(platform.ExpandPath(destination))
	if err != nil {
		return NewExitError(ExitSystemError, fmt.Sprintf("cannot create %s: %v", destination, err), err)
	}

	if err := export.Write(file, visible, format); err != nil {
		_ = file.Close()

		return NewExitError(ExitExportError, fmt.Sprintf("export failed: %v", err), err)
	}

	if err := file.Close(); err != nil {
		return NewExitError(ExitSystemError, fmt.Sprintf("cannot finish %s: %v", destination, err), err)
	}

	console.DefaultOutput.Successf("Exported %d gems to %s", len(visible), destination)

	if app.json {
		console.DefaultOutput.JSONResult("exported", map[string]any{
			"count":  len(visible),
			"format": string(format),
			"output": destination,
		})
	}

	return nil
}

// createValidateCommand creates the validate command.
func (app *CLI) createValidateCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "Check a catalog document against the schema",
		ArgsUsage: "[source]",
		Description: `Load a catalog document and report every schema violation, duplicate
id, and unknown work classification. Without an argument the
configured catalog is checked.`,
		Action: app.runValidate,
	}
}

// runValidate checks a catalog document and reports what is wrong.
func (app *CLI) runValidate(ctx context.Context, cmd *cli.Command) error {
	source := cmd.Args().First()
	if source == "" {
		source = app.config().CatalogSource(app.catalog)
	}

	loaded, err := catalog.Load(ctx, source)
	if err != nil {
		messages := validationMessages(err)

		if app.json {
			console.DefaultOutput.JSONResult("invalid", map[string]any{
				"source": source,
				"errors": messages,
			})
		}

		text := fmt.Sprintf("catalog %s is invalid:", source)
		for _, message := range messages {
			text += "\n  • " + message
		}

		return NewExitError(ExitCatalogError, text, err)
	}

	switch {
	case app.json:
		console.DefaultOutput.JSONResult("valid", map[string]any{
			"source": source,
			"gems":   loaded.Len(),
		})
	case app.plain:
		console.DefaultOutput.PlainKeyValue("valid", source)
	default:
		console.DefaultOutput.Successf("catalog %s is valid (%d gems)", source, loaded.Len())
	}

	return nil
}

// validationMessages flattens a load error into one line per problem.
func validationMessages(err error) []string {
	if err == nil {
		return nil
	}

	lines := strings.Split(err.Error(), "\n")
	messages := make([]string, 0, len(lines))

	for _, line := range lines {
		if line = strings.TrimPrefix(strings.TrimSpace(line), "- "); line != "" {
			messages = append(messages, line)
		}
	}

	return messages
}

// createSchemaCommand creates the schema command.
func (app *CLI) createSchemaCommand() *cli.Command {
	return &cli.Command{
		Name:  "schema",
		Usage: "Print the catalog JSON Schema",
		Description: `Print the JSON Schema catalog documents are validated against.
Useful for editor integration and for generating catalogs elsewhere.`,
		Action: app.runSchema,
	}
}

// runSchema prints the generated catalog schema.
func (app *CLI) runSchema(_ context.Context, _ *cli.Command) error {
	data, err := catalog.GenerateSchema()
	if err != nil {
		return NewExitError(ExitGeneralError, fmt.Sprintf("schema generation failed: %v", err), err)
	}

	fmt.Println(string(data))

	return nil
}

// createVersionCommand creates the version command.
func (app *CLI) createVersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show version information",
		Action: func(_ context.Context, _ *cli.Command) error {
			return app.runVersion()
		},
	}
}

// runVersion prints the build's version metadata.
func (app *CLI) runVersion() error {
	if app.json {
		console.DefaultOutput.JSONResult("ok", map[string]any{
			"version": version,
			"commit":  commit,
			"date":    date,
		})

		return nil
	}

	if app.plain {
		console.DefaultOutput.PlainKeyValue("version", version)

		return nil
	}

	console.DefaultOutput.Result(fmt.Sprintf("gemcase %s (commit %s, built %s)", version, commit, date))

	return nil
}
