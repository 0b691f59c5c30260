// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"taskrun-cli/pkg/types"

	"github.com/spf13/cobra"
)

// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
// An ExitError without Err is silent: the exit status is the whole message, as
// when a linter reports violations on its own output.
type ExitError struct {
	Code types.ExitCode
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// usageError marks err as a malformed invocation.
func usageError(err error) error {
	return &ExitError{Code: types.ExitUsage, Err: err}
}

// flagError is installed as the root FlagErrorFunc so every flag parsing failure,
// in any subcommand, exits with the usage status.
func flagError(_ *cobra.Command, err error) error {
	return usageError(err)
}

// usageArgs wraps a positional-argument validator so its failures exit with the
// usage status.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return usageError(err)
		}
		return nil
	}
}
