// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"taskrun-cli/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// newRootCommand builds the command tree around app.
func newRootCommand(app *App) *cobra.Command {
	var chdir string

	rootCmd := &cobra.Command{
		Use:   "taskrun",
		Short: "Run the project's type checker, linter and tests",
		Long: TitleStyle.Render("taskrun") + SubtitleStyle.Render(" - Run the project's type checker, linter and tests") + `

taskrun wraps the three routine development checks behind one
entry point. Each check exits with a status a CI job can gate on.

` + SubtitleStyle.Render("Examples:") + `
  taskrun typecheck              Type-check the source and test directories
  taskrun lint -l ruff src       Lint src with ruff instead of the default linter
  taskrun test --suite unit -v   Run only the unit tests, one line per test`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if app.debug {
				app.logger.SetLevel(log.DebugLevel)
			}
			if chdir == "" {
				return nil
			}
			if err := os.Chdir(chdir); err != nil {
				return issue.NewErrorContext().
					WithOperation("change directory").
					WithResource(chdir).
					WithSuggestion("Check that the directory exists and is accessible").
					Wrap(err).
					Build()
			}
			app.logger.Debug("changed working directory", "dir", chdir)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				app.logger.Debug("no such subcommand, showing help", "name", args[0])
			}
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&chdir, "chdir", "C", "", "change to `DIR` before doing anything")
	rootCmd.PersistentFlags().BoolVar(&app.debug, "debug", false, "enable debug logging")
	rootCmd.SetFlagErrorFunc(flagError)
	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	rootCmd.AddCommand(newTypecheckCommand(app))
	rootCmd.AddCommand(newLintCommand(app))
	rootCmd.AddCommand(newTestCommand(app))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute builds the command tree and runs it. This is called by main.main().
func Execute() {
	app, err := NewApp(Dependencies{})
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+err.Error())
		os.Exit(1)
	}

	// fang prints raw errors itself when stderr is not a terminal; hiding the file
	// descriptor routes every error through renderError instead.
	app.styledErrors = term.IsTerminal(int(os.Stderr.Fd()))
	rootCmd := newRootCommand(app)
	rootCmd.SetErr(errWriter{os.Stderr})

	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(app.renderError),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// errWriter hides the Fd method of the wrapped writer.
type errWriter struct{ io.Writer }

// renderError prints err unless it only carries an exit status.
func (a *App) renderError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}
	var ae *issue.ActionableError
	if errors.As(err, &ae) || !a.styledErrors {
		fmt.Fprintln(w, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, a.debug))
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
