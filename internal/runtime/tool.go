// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"taskrun-cli/pkg/types"

	"github.com/charmbracelet/log"
)

// ToolRuntime executes an external tool against a list of paths.
type ToolRuntime struct {
	// Stdin, Stdout and Stderr are handed to the child process unchanged.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	logger *log.Logger
}

// NewToolRuntime creates a runtime wired to the process's standard streams.
// A nil logger discards log output.
func NewToolRuntime(logger *log.Logger) *ToolRuntime {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &ToolRuntime{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		logger: logger,
	}
}

// Invoke runs tool with paths as its positional arguments and blocks until it exits.
//
// An empty paths list is a no-op: nothing is spawned and ExitSuccess is returned.
// A child that runs and exits non-zero is not an error; its status is returned as
// the exit code. The error is non-nil only when the process could not be started or
// waited on, and it is the error returned by os/exec.
func (r *ToolRuntime) Invoke(ctx context.Context, tool types.ToolName, paths []string) (types.ExitCode, error) {
	if len(paths) == 0 {
		r.logger.Debug("no paths to check, skipping tool", "tool", tool)
		return types.ExitSuccess, nil
	}

	r.logger.Debug("invoking tool", "tool", tool, "paths", paths)

	cmd := exec.CommandContext(ctx, tool.String(), paths...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code := types.ExitCode(exitErr.ExitCode()).Normalize()
			r.logger.Debug("tool exited with non-zero status", "tool", tool, "code", code)
			return code, nil
		}
		return types.ExitFailure, err
	}

	return types.ExitSuccess, nil
}
