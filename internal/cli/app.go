// SPDX-FileCopyrightText: 2025 The Gemcase Authors
// SPDX-License-Identifier: EUPL-1.2

// Package cli provides the gemcase command-line interface.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/jwahlstedt/gemcase/internal/action"
	"github.com/jwahlstedt/gemcase/internal/catalog"
	"github.com/jwahlstedt/gemcase/internal/config"
	"github.com/jwahlstedt/gemcase/internal/console"
	"github.com/jwahlstedt/gemcase/internal/logging"
	"github.com/jwahlstedt/gemcase/internal/tui"
)

// Exit codes follow standard Unix conventions for better scripting support.
// Range 0-125 are safe to use (126+ have special meaning in shells).
const (
	// Standard Unix exit codes (0-10).
	ExitSuccess      = 0 // Operation completed successfully
	ExitGeneralError = 1 // Generic failure (catch-all)
	ExitUsageError   = 2 // Invalid command line usage
	ExitConfigError  = 3 // Configuration file error
	ExitNotFound     = 5 // Requested gem not found

	// Network and system errors (10-19).
	ExitNetworkError   = 11 // Network operation failed
	ExitSystemError    = 12 // System call failed (lock, filesystem)
	ExitInterruptError = 14 // User interrupted (Ctrl+C)

	// Application-specific errors (20-29).
	ExitCatalogError = 20 // Catalog load or validation failed
	ExitActionError  = 21 // Copy or open action failed
	ExitExportError  = 22 // Export failed

	// CLI flags.
	HelpFlag = "--help"
)

// Version metadata, injected at build time via -ldflags:
//
//	-X github.com/jwahlstedt/gemcase/internal/cli.version=v1.2.3
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ExitError carries a specific process exit code with a user-facing
// message. cmd/gemcase unwraps it with errors.As and exits accordingly.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// NewExitError creates an ExitError with the specified code and message.
func NewExitError(code int, message string, err error) *ExitError {
	return &ExitError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// CLI is the gemcase command tree plus the global flag state every
// command shares. One instance serves one process.
type CLI struct {
	app *cli.Command
	cfg *config.Config

	catalog string // --catalog override of the catalog source
	verbose bool
	json    bool
	quiet   bool
	plain   bool
	noColor bool
	yes     bool // Auto-accept consent prompts
}

// NewCLI creates the gemcase command-line interface.
func NewCLI() *CLI {
	app := &CLI{}

	app.app = &cli.Command{
		Name:    "gemcase",
		Usage:   "Browse your personal catalog of gems from the terminal",
		Version: version,
		Suggest: true, // Enable command and flag suggestions
		Description: `Gemcase keeps your curated gems - prompts, snippets, commands, links -
one keystroke away. It loads a JSONC catalog, lets you filter by
category, search text, and the work-mode toggle, and copies gem
content to the clipboard or opens gem links in the browser.

ESSENTIAL COMMANDS:
  browse                      Full-screen interactive browser (default)
  list --category tools       Print the filtered catalog
  copy <id>                   Put a gem's content on the clipboard
  open <id>                   Open a gem's link in the browser

QUICK START:
  gemcase validate            # Check the catalog before browsing
  gemcase                     # Launch the browser
  gemcase list --work         # Work-mode view, non-interactive

The catalog is looked up in this order: --catalog flag, the
GEMCASE_CATALOG environment variable, the 'catalog' key in
$XDG_CONFIG_HOME/gemcase/config.toml, and finally
$XDG_DATA_HOME/gemcase/gems.jsonc.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "help",
				Usage:   "show help information",
				Aliases: []string{"h"},
			},
			&cli.StringFlag{
				Name:        "catalog",
				Usage:       "catalog source: a file path or an http(s) URL",
				Destination: &app.catalog,
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Usage:       "show progress messages to stderr",
				Aliases:     []string{"v"},
				Destination: &app.verbose,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output structured JSON results",
				Aliases:     []string{"j"},
				Destination: &app.json,
			},
			&cli.BoolFlag{
				Name:        "quiet",
				Usage:       "suppress non-essential output",
				Aliases:     []string{"q"},
				Destination: &app.quiet,
			},
			&cli.BoolFlag{
				Name:        "plain",
				Usage:       "output plain text without formatting for scripts",
				Destination: &app.plain,
			},
			&cli.BoolFlag{
				Name:        "no-color",
				Usage:       "disable colored output",
				Destination: &app.noColor,
			},
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "automatically answer yes to consent prompts",
				Destination: &app.yes,
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return app.initConfig(ctx, cmd)
		},
		Action:          app.defaultAction,
		Commands:        app.createAllCommands(),
		CommandNotFound: app.commandNotFound,
	}

	return app
}

// Run executes the CLI application.
func (app *CLI) Run(ctx context.Context, args []string) error {
	return app.app.Run(ctx, args)
}

// createAllCommands builds the full command tree.
func (app *CLI) createAllCommands() []*cli.Command {
	return []*cli.Command{
		app.createBrowseCommand(),
		app.createListCommand(),
		app.createCategoriesCommand(),
		app.createShowCommand(),
		app.createCopyCommand(),
		app.createOpenCommand(),
		app.createExportCommand(),
		app.createValidateCommand(),
		app.createSchemaCommand(),
		app.createVersionCommand(),
	}
}

// initConfig validates the global flags, configures output, and loads the
// optional config file before any command runs.
func (app *CLI) initConfig(ctx context.Context, _ *cli.Command) (context.Context, error) {
	if app.json && app.plain {
		return ctx, NewExitError(ExitUsageError, "cannot use both --json and --plain flags simultaneously", nil)
	}

	if app.noColor {
		_ = os.Setenv("NO_COLOR", "1")
	}

	// Configure output utilities based on flags
	console.DefaultOutput.SetMode(app.verbose, app.json, app.plain, app.quiet)

	cfg, err := config.LoadDefault()
	if err != nil {
		return ctx, NewExitError(ExitConfigError, fmt.Sprintf("configuration unreadable: %v", err), err)
	}

	app.cfg = cfg

	if cfg.LogLevel != "" {
		logging.SetLevel(cfg.LogLevel)
	}

	return ctx, nil
}

// defaultAction runs when no command is provided: it launches the
// browser, unless help was requested or arguments were left over.
func (app *CLI) defaultAction(ctx context.Context, cmd *cli.Command) error {
	// Check if help flags are present anywhere in arguments
	args := os.Args[1:] // Skip program name
	for _, arg := range args {
		if arg == "-h" || arg == HelpFlag {
			app.showConciseHelp()

			return nil
		}
	}

	// Leftover non-flag arguments mean a mistyped invocation; show help
	// instead of dropping the user into the full-screen browser. Global
	// flags alone (e.g. `gemcase --catalog x.jsonc`) still browse.
	if cmd.Args().Len() > 0 {
		app.showConciseHelp()
		fmt.Fprintf(os.Stderr, "\nFor complete help, use: gemcase --help\n")

		return nil
	}

	return app.launchBrowser(ctx)
}

// launchBrowser starts the full-screen catalog browser.
func (app *CLI) launchBrowser(ctx context.Context) error {
	source := app.config().CatalogSource(app.catalog)
	fetcher := app.newFetcher(source)

	view := catalog.DefaultView()
	view.WorkMode = app.config().WorkMode

	if app.config().Category != "" {
		view = view.WithCategory(app.config().Category)
	}

	opts := tui.Options{
		Source:  source,
		View:    view,
		Runner:  app.newRunner(fetcher),
		Fetcher: fetcher,
	}

	if err := tui.Launch(ctx, opts); err != nil {
		if app.verbose {
			return NewExitError(ExitGeneralError, fmt.Sprintf("failed to launch the browser: %v", err), err)
		}

		return NewExitError(ExitGeneralError, "failed to launch the browser (terminal required)", nil)
	}

	return nil
}

// commandNotFound handles unknown commands.
func (app *CLI) commandNotFound(_ context.Context, _ *cli.Command, command string) {
	// Check if help flags are present anywhere in arguments
	args := os.Args[1:] // Skip program name
	for _, arg := range args {
		if arg == "-h" || arg == HelpFlag {
			app.showConciseHelp()
			os.Exit(ExitSuccess)
		}
	}

	console.DefaultOutput.Errorf("'%s' is not a command.", command)
	fmt.Fprintf(os.Stderr, "\nRun 'gemcase --help' to see available commands.\n")

	os.Exit(ExitNotFound)
}

// showConciseHelp displays user-friendly help when no command matches.
func (app *CLI) showConciseHelp() {
	fmt.Printf("gemcase %s - your gems, one keystroke away\n\n", version)
	fmt.Printf("USAGE:\n")
	fmt.Printf("  gemcase                      Launch the interactive browser\n")
	fmt.Printf("  gemcase <command> [options]\n\n")
	fmt.Printf("COMMANDS:\n")
	fmt.Printf("  browse       Interactive full-screen browser\n")
	fmt.Printf("  list         Print the catalog, filtered and grouped by tier\n")
	fmt.Printf("  categories   List distinct categories with gem counts\n")
	fmt.Printf("  show         Print one gem with its content\n")
	fmt.Printf("  copy         Put a gem's content on the clipboard\n")
	fmt.Printf("  open         Open a gem's external link in the browser\n")
	fmt.Printf("  export       Write the catalog to json, yaml, or xlsx\n")
	fmt.Printf("  validate     Check a catalog document against the schema\n")
	fmt.Printf("  schema       Print the catalog JSON Schema\n")
	fmt.Printf("  version      Show version information\n")
}

// config returns the loaded configuration, falling back to an empty one
// when a command runs without the Before hook (tests).
func (app *CLI) config() *config.Config {
	if app.cfg == nil {
		app.cfg = &config.Config{}
	}

	return app.cfg
}

// loadCatalog loads the resolved catalog source, converting failures
// into the catalog exit code.
func (app *CLI) loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	source := app.config().CatalogSource(app.catalog)

	loaded, err := catalog.Load(ctx, source)
	if err != nil {
		return nil, NewExitError(ExitCatalogError, fmt.Sprintf("catalog could not be loaded: %v", err), err)
	}

	return loaded, nil
}

// newFetcher builds the content resolver for the given catalog source.
func (app *CLI) newFetcher(source string) *action.Fetcher {
	return action.NewFetcher(app.config().ResolveContentRoot(source))
}

// newRunner wires the action runner with the real side-effect ports.
func (app *CLI) newRunner(fetcher action.ContentFetcher) *action.Runner {
	return action.NewRunner(fetcher, action.SystemClipboard{}, action.BrowserNavigator{})
}

// App provides the root command for cmd/gemcase.
func App() *cli.Command {
	app := NewCLI()

	return app.app
}
