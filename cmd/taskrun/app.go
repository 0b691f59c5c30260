// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"taskrun-cli/internal/runtime"
	"taskrun-cli/internal/suite"
	"taskrun-cli/pkg/types"

	"github.com/charmbracelet/log"
)

var (
	// SourceCode is the path group holding the project's application code.
	SourceCode = []string{"addrservice"}
	// TestCode is the path group holding the project's tests.
	TestCode = []string{"tests"}
)

type (
	// App wires CLI services and shared dependencies. It is the composition root for
	// the CLI layer: all Cobra command handlers receive an App reference and delegate
	// through its service interfaces (Tools, Tests).
	App struct {
		Tools  ToolInvoker
		Tests  TestRunner
		paths  PathGroups
		logger *log.Logger
		stdout io.Writer
		stderr io.Writer
		debug  bool
		// styledErrors is set when stderr is a terminal.
		styledErrors bool
	}

	// Dependencies defines the injection points for building an App. Nil fields are
	// replaced with production defaults by NewApp. Tests can supply fakes to observe
	// what a command would have run without spawning anything.
	Dependencies struct {
		Tools ToolInvoker
		Tests TestRunner
		// Paths overrides the default path groups. Nil means SourceCode and TestCode.
		Paths  *PathGroups
		Logger *log.Logger
		Stdout io.Writer
		Stderr io.Writer
	}

	// PathGroups are the directories checked when typecheck or lint get no paths.
	PathGroups struct {
		Source []string
		Test   []string
	}

	// ToolInvoker runs an external tool over a list of paths and reports its exit
	// status. An empty path list must not spawn anything.
	ToolInvoker interface {
		Invoke(ctx context.Context, tool types.ToolName, paths []string) (types.ExitCode, error)
	}

	// TestRunner discovers and runs a test suite, printing a unittest-style report.
	TestRunner interface {
		Run(ctx context.Context, opts suite.Options) (suite.Summary, error)
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) (*App, error) {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Logger == nil {
		deps.Logger = log.NewWithOptions(deps.Stderr, log.Options{
			Prefix: "taskrun",
			Level:  log.WarnLevel,
		})
	}
	if deps.Paths == nil {
		deps.Paths = &PathGroups{Source: SourceCode, Test: TestCode}
	}
	if deps.Tools == nil {
		deps.Tools = runtime.NewToolRuntime(deps.Logger)
	}
	if deps.Tests == nil {
		styles := reportStyles()
		deps.Tests = suite.NewRunner(suite.Config{
			Stdout: deps.Stdout,
			Styles: &styles,
			Logger: deps.Logger,
		})
	}

	return &App{
		Tools:  deps.Tools,
		Tests:  deps.Tests,
		paths:  *deps.Paths,
		logger: deps.Logger,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
	}, nil
}

// defaultPaths returns a fresh concatenation of the source and test groups, in
// that order. Callers may modify the result.
func (a *App) defaultPaths() []string {
	paths := make([]string, 0, len(a.paths.Source)+len(a.paths.Test))
	paths = append(paths, a.paths.Source...)
	return append(paths, a.paths.Test...)
}
