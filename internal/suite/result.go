// SPDX-License-Identifier: MPL-2.0

package suite

import "time"

const (
	// OutcomePass means the test ran and passed.
	OutcomePass Outcome = iota
	// OutcomeFail means the test reported a failure.
	OutcomeFail
	// OutcomeError means the test or its package could not complete
	// (panic, timeout, build failure).
	OutcomeError
	// OutcomeSkip means the test was skipped.
	OutcomeSkip
)

type (
	// Outcome is the final state of one test case.
	Outcome int

	// CaseResult is the result of one top-level test, or of a package that failed
	// before any of its tests could report.
	CaseResult struct {
		// Package is the import path reported by go test.
		Package string
		// Name is the top-level test name; empty for package-level errors.
		Name    string
		Outcome Outcome
		Elapsed time.Duration
		// Output is the test's log output with go test's framing lines removed.
		Output string
	}

	// Summary aggregates the results of one run.
	Summary struct {
		Total   int
		Passed  int
		Failed  int
		Errors  int
		Skipped int
		Elapsed time.Duration
		// Problems lists failed and errored results in the order they finished.
		Problems []CaseResult
	}
)

// String returns the verbose-mode label for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomePass:
		return "ok"
	case OutcomeFail:
		return "FAIL"
	case OutcomeError:
		return "ERROR"
	case OutcomeSkip:
		return "skipped"
	default:
		return "unknown"
	}
}

// Mark returns the single-character progress marker for the outcome.
func (o Outcome) Mark() string {
	switch o {
	case OutcomePass:
		return "."
	case OutcomeFail:
		return "F"
	case OutcomeError:
		return "E"
	case OutcomeSkip:
		return "s"
	default:
		return "?"
	}
}

// IsProblem reports whether the outcome makes a run unsuccessful.
func (o Outcome) IsProblem() bool { return o == OutcomeFail || o == OutcomeError }

// Label identifies the result in progress lines and failure details.
func (r CaseResult) Label() string {
	switch {
	case r.Name == "":
		return r.Package
	case r.Package == "":
		return r.Name
	default:
		return r.Name + " (" + r.Package + ")"
	}
}

// Summarize tallies results into a Summary.
func Summarize(results []CaseResult, elapsed time.Duration) Summary {
	s := Summary{Total: len(results), Elapsed: elapsed}
	for _, r := range results {
		switch r.Outcome {
		case OutcomePass:
			s.Passed++
		case OutcomeFail:
			s.Failed++
		case OutcomeError:
			s.Errors++
		case OutcomeSkip:
			s.Skipped++
		}
		if r.Outcome.IsProblem() {
			s.Problems = append(s.Problems, r)
		}
	}
	return s
}

// WasSuccessful reports whether no test failed or errored.
func (s Summary) WasSuccessful() bool { return s.Failed == 0 && s.Errors == 0 }
