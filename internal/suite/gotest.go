// SPDX-License-Identifier: MPL-2.0

package suite

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"taskrun-cli/internal/issue"
	"taskrun-cli/pkg/types"

	"github.com/charmbracelet/log"
)

type (
	// Engine executes discovered packages and reports test2json events.
	// Implementations run packages one at a time in the given order.
	Engine interface {
		Run(ctx context.Context, pkgs []Package, emit func(Event)) error
	}

	// GoTest is the Engine backed by the go toolchain.
	GoTest struct {
		// Binary is the go executable. Empty means "go" resolved on PATH.
		Binary string
		// Dir is the working directory for go test. Empty means the current directory.
		Dir string
		// Stderr receives the toolchain's stderr and any non-JSON stdout lines.
		Stderr io.Writer

		logger *log.Logger
	}

	// ExitStatusError reports that the engine process exited non-zero.
	// go test does this whenever a test fails, so callers decide whether the
	// status is already explained by the collected results.
	ExitStatusError struct {
		Code types.ExitCode
	}
)

// Error implements the error interface.
func (e *ExitStatusError) Error() string {
	return fmt.Sprintf("go test exited with status %d", e.Code)
}

// NewGoTest creates a go test engine writing diagnostics to os.Stderr.
// A nil logger discards log output.
func NewGoTest(logger *log.Logger) *GoTest {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &GoTest{Stderr: os.Stderr, logger: logger}
}

// Args returns the go command line for pkgs. Packages, and tests within each
// package, run sequentially; results are never served from the test cache.
func (g *GoTest) Args(pkgs []Package) []string {
	args := []string{"test", "-json", "-p", "1", "-parallel", "1", "-count", "1"}
	for _, p := range pkgs {
		args = append(args, p.Target())
	}
	return args
}

// Run executes go test over pkgs and streams its events to emit.
func (g *GoTest) Run(ctx context.Context, pkgs []Package, emit func(Event)) error {
	bin := g.Binary
	if bin == "" {
		bin = "go"
	}
	stderr := g.Stderr
	if stderr == nil {
		stderr = io.Discard
	}

	args := g.Args(pkgs)
	g.logger.Debug("running go test", "binary", bin, "args", args, "dir", g.Dir)

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = g.Dir
	cmd.Stderr = stderr
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return err
	}

	if err := cmd.Start(); err != nil {
		ectx := issue.NewErrorContext().
			WithOperation("run test suite").
			WithResource(bin).
			Wrap(err)
		if errors.Is(err, exec.ErrNotFound) {
			ectx = ectx.WithSuggestion("Install the Go toolchain and make sure 'go' is on PATH")
		}
		return ectx.Build()
	}

	decodeErr := DecodeEvents(stdout, emit, stderr)
	if decodeErr != nil {
		// Keep draining so the child never blocks on a full pipe.
		_, _ = io.Copy(io.Discard, stdout)
	}
	waitErr := cmd.Wait()

	if decodeErr != nil {
		return fmt.Errorf("read go test events: %w", decodeErr)
	}
	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			code := types.ExitCode(exitErr.ExitCode()).Normalize()
			g.logger.Debug("go test exited non-zero", "code", code)
			return &ExitStatusError{Code: code}
		}
		return waitErr
	}
	return nil
}
