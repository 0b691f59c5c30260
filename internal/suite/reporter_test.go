// SPDX-License-Identifier: MPL-2.0

package suite

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestReporter_NonVerbose(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := NewReporter(&buf, false, PlainStyles())
	results := []CaseResult{
		{Name: "TestA", Package: "p", Outcome: OutcomePass},
		{Name: "TestB", Package: "p", Outcome: OutcomeFail, Output: "    b_test.go:7: boom"},
		{Name: "TestC", Package: "p", Outcome: OutcomeSkip},
		{Name: "TestD", Package: "p", Outcome: OutcomeError},
	}
	for _, res := range results {
		r.CaseFinished(res)
	}
	r.Summary(Summarize(results, 1500*time.Millisecond))

	got := buf.String()
	sep := strings.Repeat("-", separatorWidth)
	want := ".FsE\n" +
		strings.Repeat("=", separatorWidth) + "\n" +
		"FAIL: TestB (p)\n" +
		sep + "\n" +
		"    b_test.go:7: boom\n\n" +
		strings.Repeat("=", separatorWidth) + "\n" +
		"ERROR: TestD (p)\n" +
		sep + "\n" +
		"(no output)\n\n" +
		sep + "\n" +
		"Ran 4 tests in 1.500s\n\n" +
		"FAILED (passed=1, failed=1, errors=1, skipped=1)\n"
	if got != want {
		t.Errorf("output mismatch\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestReporter_Verbose(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := NewReporter(&buf, true, PlainStyles())
	results := []CaseResult{
		{Name: "TestParse", Package: "taskrun-cli/tests/unit", Outcome: OutcomePass},
		{Name: "TestFormat", Package: "taskrun-cli/tests/unit", Outcome: OutcomePass},
		{Name: "TestLegacy", Package: "taskrun-cli/tests/unit", Outcome: OutcomeSkip},
	}
	for _, res := range results {
		r.CaseFinished(res)
	}
	r.Summary(Summarize(results, 12*time.Millisecond))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	wantPrefix := []string{
		"TestParse (taskrun-cli/tests/unit) ... ok",
		"TestFormat (taskrun-cli/tests/unit) ... ok",
		"TestLegacy (taskrun-cli/tests/unit) ... skipped",
		strings.Repeat("-", separatorWidth),
		"Ran 3 tests in 0.012s",
		"",
		"OK (passed=2, failed=0, errors=0, skipped=1)",
	}
	if len(lines) != len(wantPrefix) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(wantPrefix), buf.String())
	}
	for i := range wantPrefix {
		if lines[i] != wantPrefix[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], wantPrefix[i])
		}
	}
}

func TestReporter_EmptyRun(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := NewReporter(&buf, false, PlainStyles())
	r.Summary(Summarize(nil, 0))

	want := strings.Repeat("-", separatorWidth) + "\n" +
		"Ran 0 tests in 0.000s\n\n" +
		"OK (passed=0, failed=0, errors=0, skipped=0)\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestReporter_SingularTest(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := NewReporter(&buf, true, PlainStyles())
	r.Summary(Summarize([]CaseResult{{Name: "TestOnly", Outcome: OutcomePass}}, 0))
	if !strings.Contains(buf.String(), "Ran 1 test in") {
		t.Errorf("expected singular noun, got:\n%s", buf.String())
	}
}
