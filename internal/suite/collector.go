// SPDX-License-Identifier: MPL-2.0

package suite

import (
	"regexp"
	"strings"
	"time"
)

var (
	boundaryLinePrefix = regexp.MustCompile(`^(=== RUN|=== PAUSE|=== CONT|=== NAME|--- PASS:|--- FAIL:|--- SKIP:)`)
	packageLinePrefix  = regexp.MustCompile(`^(ok|FAIL|\?)\s+`)
)

type (
	// Collector folds test2json events into per-test results. Subtests are folded
	// into their top-level test: their output is kept, their outcomes are not
	// counted separately.
	//
	// A failed test is held back until the next unrelated event, because go test
	// prints a panic trace after the test's "--- FAIL" line. Call Flush once the
	// event stream ends.
	Collector struct {
		onCase func(CaseResult)

		pending    *CaseResult
		pendingOut strings.Builder

		results  []CaseResult
		testOut  map[caseKey]*strings.Builder
		pkgOut   map[string]*strings.Builder
		buildOut map[string]*strings.Builder
		// problemPkgs records packages that already produced a failed or errored result.
		problemPkgs map[string]bool
	}

	caseKey struct {
		pkg  string
		test string
	}
)

// NewCollector creates a Collector. onCase, if non-nil, is called for every result
// as soon as it is known.
func NewCollector(onCase func(CaseResult)) *Collector {
	return &Collector{
		onCase:      onCase,
		testOut:     make(map[caseKey]*strings.Builder),
		pkgOut:      make(map[string]*strings.Builder),
		buildOut:    make(map[string]*strings.Builder),
		problemPkgs: make(map[string]bool),
	}
}

// Handle consumes one event.
func (c *Collector) Handle(ev Event) {
	if c.pending != nil {
		if c.continuesPending(ev) {
			c.pendingOut.WriteString(ev.Output)
			return
		}
		c.Flush()
	}

	switch ev.Action {
	case ActionBuildOutput:
		appendOutput(c.buildOut, ev.ImportPath, ev.Output)
	case ActionOutput:
		if ev.Test == "" {
			appendOutput(c.pkgOut, ev.Package, ev.Output)
			return
		}
		key := caseKey{pkg: ev.Package, test: topLevel(ev.Test)}
		b, ok := c.testOut[key]
		if !ok {
			b = &strings.Builder{}
			c.testOut[key] = b
		}
		b.WriteString(ev.Output)
	case ActionPass, ActionFail, ActionSkip:
		if ev.Test == "" {
			c.finishPackage(ev)
			return
		}
		if strings.Contains(ev.Test, "/") {
			return
		}
		c.finishTest(ev)
	}
}

// Flush records a held-back failed test, if any.
func (c *Collector) Flush() {
	if c.pending == nil {
		return
	}
	r := *c.pending
	out := r.Output + c.pendingOut.String()
	if isCrash(out) {
		r.Outcome = OutcomeError
	}
	r.Output = cleanOutput(out)
	c.pending = nil
	c.pendingOut.Reset()
	c.record(r)
}

func (c *Collector) continuesPending(ev Event) bool {
	if ev.Action != ActionOutput || ev.Package != c.pending.Package {
		return false
	}
	return ev.Test == "" || topLevel(ev.Test) == c.pending.Name
}

// AddError records an error that is not tied to a single test, such as the
// go toolchain exiting before reporting results.
func (c *Collector) AddError(name, output string) {
	c.record(CaseResult{Name: name, Outcome: OutcomeError, Output: output})
}

// HasProblems reports whether any failed or errored result was recorded.
// Held-back failures count.
func (c *Collector) HasProblems() bool {
	if c.pending != nil {
		return true
	}
	for _, r := range c.results {
		if r.Outcome.IsProblem() {
			return true
		}
	}
	return false
}

// Results flushes any held-back failure and returns the recorded results in
// completion order.
func (c *Collector) Results() []CaseResult {
	c.Flush()
	return c.results
}

func (c *Collector) finishTest(ev Event) {
	key := caseKey{pkg: ev.Package, test: ev.Test}
	var output string
	if b, ok := c.testOut[key]; ok {
		output = b.String()
		delete(c.testOut, key)
	}

	r := CaseResult{
		Package: ev.Package,
		Name:    ev.Test,
		Outcome: OutcomePass,
		Elapsed: seconds(ev.Elapsed),
	}
	switch ev.Action {
	case ActionFail:
		r.Outcome = OutcomeFail
		r.Output = output
		c.pending = &r
		return
	case ActionSkip:
		r.Outcome = OutcomeSkip
	}
	r.Output = cleanOutput(output)
	c.record(r)
}

// finishPackage turns a package-level failure into an error result unless one of
// the package's tests already accounts for it.
func (c *Collector) finishPackage(ev Event) {
	var output strings.Builder
	if ev.FailedBuild != "" {
		if b, ok := c.buildOut[ev.FailedBuild]; ok {
			output.WriteString(b.String())
		}
	}
	if b, ok := c.pkgOut[ev.Package]; ok {
		output.WriteString(b.String())
		delete(c.pkgOut, ev.Package)
	}

	if ev.Action != ActionFail || c.problemPkgs[ev.Package] {
		return
	}

	text := cleanOutput(output.String())
	if text == "" {
		text = "package failed without reporting a test failure (build or setup error)"
	}
	c.record(CaseResult{
		Package: ev.Package,
		Outcome: OutcomeError,
		Elapsed: seconds(ev.Elapsed),
		Output:  text,
	})
}

func (c *Collector) record(r CaseResult) {
	c.results = append(c.results, r)
	if r.Outcome.IsProblem() && r.Package != "" {
		c.problemPkgs[r.Package] = true
	}
	if c.onCase != nil {
		c.onCase(r)
	}
}

func appendOutput(m map[string]*strings.Builder, key, s string) {
	b, ok := m[key]
	if !ok {
		b = &strings.Builder{}
		m[key] = b
	}
	b.WriteString(s)
}

// cleanOutput drops the framing lines go test writes around each test and
// package, keeping only what the tests logged.
func cleanOutput(raw string) string {
	var kept []string
	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "PASS" || trimmed == "FAIL" {
			continue
		}
		if boundaryLinePrefix.MatchString(trimmed) || packageLinePrefix.MatchString(trimmed) {
			continue
		}
		kept = append(kept, strings.TrimRight(line, " \r"))
	}
	return strings.Join(kept, "\n")
}

func isCrash(output string) bool {
	return strings.Contains(output, "panic: ") || strings.Contains(output, "test timed out")
}

func topLevel(test string) string {
	if i := strings.IndexByte(test, '/'); i >= 0 {
		return test[:i]
	}
	return test
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
