// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"taskrun-cli/pkg/types"

	"github.com/spf13/cobra"
)

const (
	// DefaultChecker is the type checker typecheck runs without --checker.
	DefaultChecker types.ToolName = "mypy"
	// DefaultLinter is the linter lint runs without --linter.
	DefaultLinter types.ToolName = "flake8"
)

// toolCommand describes one of the commands that hand paths to an external tool.
type toolCommand struct {
	use       string
	short     string
	flag      string
	shorthand string
	tool      types.ToolName
	role      string
}

func newTypecheckCommand(app *App) *cobra.Command {
	return newToolCommand(app, toolCommand{
		use:       "typecheck [PATH ...]",
		short:     "Run the static type checker",
		flag:      "checker",
		shorthand: "c",
		tool:      DefaultChecker,
		role:      "type checker",
	})
}

func newLintCommand(app *App) *cobra.Command {
	return newToolCommand(app, toolCommand{
		use:       "lint [PATH ...]",
		short:     "Run the linter",
		flag:      "linter",
		shorthand: "l",
		tool:      DefaultLinter,
		role:      "linter",
	})
}

func newToolCommand(app *App, spec toolCommand) *cobra.Command {
	var tool string

	cmd := &cobra.Command{
		Use:   spec.use,
		Short: spec.short,
		Long: fmt.Sprintf(`Run the %s over the given paths.

Without paths, the %s checks the source and test directories:
  %s

The command exits with the tool's own exit status.`, spec.role, spec.role, CmdStyle.Render(fmt.Sprint(app.defaultPaths()))),
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := types.ToolName(tool)
			if err := name.Validate(); err != nil {
				return usageError(err)
			}

			paths := args
			if len(paths) == 0 {
				paths = app.defaultPaths()
			}

			code, err := app.Tools.Invoke(cmd.Context(), name, paths)
			if err != nil {
				return err
			}
			if !code.IsSuccess() {
				return &ExitError{Code: code}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&tool, spec.flag, spec.shorthand, spec.tool.String(), fmt.Sprintf("%s executable to run", spec.role))

	return cmd
}
