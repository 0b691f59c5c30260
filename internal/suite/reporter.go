// SPDX-License-Identifier: MPL-2.0

package suite

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const separatorWidth = 70

type (
	// Styles controls how outcome words are rendered.
	Styles struct {
		Pass  lipgloss.Style
		Fail  lipgloss.Style
		Skip  lipgloss.Style
		Muted lipgloss.Style
	}

	// Reporter prints the per-test progress stream and the final summary.
	//
	// Non-verbose mode prints one marker per test (. F E s) on a single line.
	// Verbose mode prints one "label ... outcome" line per test.
	Reporter struct {
		w       io.Writer
		verbose bool
		styles  Styles
		marks   int
	}
)

// PlainStyles returns styles that render text unchanged.
func PlainStyles() Styles {
	return Styles{
		Pass:  lipgloss.NewStyle(),
		Fail:  lipgloss.NewStyle(),
		Skip:  lipgloss.NewStyle(),
		Muted: lipgloss.NewStyle(),
	}
}

// NewReporter creates a Reporter writing to w.
func NewReporter(w io.Writer, verbose bool, styles Styles) *Reporter {
	return &Reporter{w: w, verbose: verbose, styles: styles}
}

// CaseFinished prints the progress entry for one result.
func (r *Reporter) CaseFinished(res CaseResult) {
	if r.verbose {
		fmt.Fprintf(r.w, "%s ... %s\n", res.Label(), r.style(res.Outcome).Render(res.Outcome.String()))
		return
	}
	fmt.Fprint(r.w, r.style(res.Outcome).Render(res.Outcome.Mark()))
	r.marks++
}

// Summary prints failure details followed by the totals line.
func (r *Reporter) Summary(s Summary) {
	if r.marks > 0 {
		fmt.Fprintln(r.w)
		r.marks = 0
	}

	for _, p := range s.Problems {
		fmt.Fprintln(r.w, strings.Repeat("=", separatorWidth))
		fmt.Fprintf(r.w, "%s: %s\n", r.style(p.Outcome).Render(p.Outcome.String()), p.Label())
		fmt.Fprintln(r.w, strings.Repeat("-", separatorWidth))
		output := p.Output
		if output == "" {
			output = r.styles.Muted.Render("(no output)")
		}
		fmt.Fprintln(r.w, output)
		fmt.Fprintln(r.w)
	}

	fmt.Fprintln(r.w, strings.Repeat("-", separatorWidth))
	noun := "tests"
	if s.Total == 1 {
		noun = "test"
	}
	fmt.Fprintf(r.w, "Ran %d %s in %.3fs\n\n", s.Total, noun, s.Elapsed.Seconds())

	status := r.styles.Pass.Render("OK")
	if !s.WasSuccessful() {
		status = r.styles.Fail.Render("FAILED")
	}
	fmt.Fprintf(r.w, "%s (passed=%d, failed=%d, errors=%d, skipped=%d)\n",
		status, s.Passed, s.Failed, s.Errors, s.Skipped)
}

func (r *Reporter) style(o Outcome) lipgloss.Style {
	switch o {
	case OutcomePass:
		return r.styles.Pass
	case OutcomeSkip:
		return r.styles.Skip
	default:
		return r.styles.Fail
	}
}
