// SPDX-License-Identifier: MPL-2.0

package suite

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

type (
	// Options selects what a run executes and how much it prints.
	Options struct {
		Selector Selector
		Verbose  bool
	}

	// Clock supplies the run's elapsed time.
	Clock interface {
		Now() time.Time
		Since(t time.Time) time.Duration
	}

	// Config holds the collaborators for a Runner. Nil fields get defaults.
	Config struct {
		// FS is the project filesystem. Defaults to the current directory.
		FS fs.FS
		// Pattern overrides DefaultPattern.
		Pattern string
		// Engine defaults to a GoTest engine.
		Engine Engine
		// Stdout receives the progress stream and summary.
		Stdout io.Writer
		// Styles defaults to PlainStyles.
		Styles *Styles
		Clock  Clock
		Logger *log.Logger
	}

	// Runner discovers, executes and reports one test suite.
	Runner struct {
		discoverer *Discoverer
		engine     Engine
		stdout     io.Writer
		styles     Styles
		clock      Clock
		logger     *log.Logger
	}

	systemClock struct{}
)

func (systemClock) Now() time.Time                  { return time.Now() }
func (systemClock) Since(t time.Time) time.Duration { return time.Since(t) }

// NewRunner creates a Runner from cfg.
func NewRunner(cfg Config) *Runner {
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.FS == nil {
		// Relative to the working directory at open time, so a later chdir applies.
		cfg.FS = os.DirFS(".")
	}
	if cfg.Engine == nil {
		cfg.Engine = NewGoTest(cfg.Logger)
	}
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Clock == nil {
		cfg.Clock = systemClock{}
	}
	styles := PlainStyles()
	if cfg.Styles != nil {
		styles = *cfg.Styles
	}

	return &Runner{
		discoverer: &Discoverer{FS: cfg.FS, Pattern: cfg.Pattern},
		engine:     cfg.Engine,
		stdout:     cfg.Stdout,
		styles:     styles,
		clock:      cfg.Clock,
		logger:     cfg.Logger,
	}
}

// Run executes the suite chosen by opts and prints its results.
//
// The returned Summary reflects every discovered test; failing tests never stop the
// run. The error is non-nil only when the suite could not be run at all (discovery
// failed, the engine could not start, the context was cancelled), in which case no
// summary is printed.
func (r *Runner) Run(ctx context.Context, opts Options) (Summary, error) {
	root := opts.Selector.Root()
	if err := opts.Selector.Validate(); err != nil {
		r.logger.Warn("unknown suite, using default root", "suite", opts.Selector, "root", root)
	}

	if _, err := fs.Stat(r.discoverer.FS, root); errors.Is(err, fs.ErrNotExist) {
		r.logger.Warn("test directory does not exist", "root", root)
	}

	pkgs, err := r.discoverer.Discover(root)
	if err != nil {
		return Summary{}, err
	}
	r.logger.Debug("discovered test packages", "root", root, "packages", len(pkgs))

	reporter := NewReporter(r.stdout, opts.Verbose, r.styles)
	collector := NewCollector(reporter.CaseFinished)
	start := r.clock.Now()

	if len(pkgs) > 0 {
		if err := r.engine.Run(ctx, pkgs, collector.Handle); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return Summary{}, ctxErr
			}
			var statusErr *ExitStatusError
			if !errors.As(err, &statusErr) {
				return Summary{}, err
			}
			collector.Flush()
			if !collector.HasProblems() {
				collector.AddError("go test", fmt.Sprintf("%v without reporting a test failure", statusErr))
			}
		}
	}

	summary := Summarize(collector.Results(), r.clock.Since(start))
	reporter.Summary(summary)
	return summary, nil
}
