// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"taskrun-cli/internal/suite"
	"taskrun-cli/pkg/types"

	"github.com/spf13/cobra"
)

func newTestCommand(app *App) *cobra.Command {
	var (
		selector = suiteValue(suite.SelectorAll)
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "test",
		Short: "Run the test suite",
		Long: `Discover and run the tests under the selected suite's directory.

Suites:
  all          ` + suite.RootAll + `
  unit         ` + suite.RootUnit + `
  integration  ` + suite.RootIntegration + `

The command exits 0 when every test passed or was skipped and 1 otherwise.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := suite.Options{Selector: suite.Selector(selector), Verbose: verbose}
			app.logger.Debug("running tests", "suite", opts.Selector, "root", opts.Selector.Root())

			summary, err := app.Tests.Run(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if !summary.WasSuccessful() {
				return &ExitError{Code: types.ExitFailure}
			}
			return nil
		},
	}

	cmd.Flags().Var(&selector, "suite", "test suite to run (all, unit, integration)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print each test's name and outcome")
	_ = cmd.RegisterFlagCompletionFunc("suite", completeSuite)

	return cmd
}
