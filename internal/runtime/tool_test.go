// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	goruntime "runtime"
	"strings"
	"testing"

	"taskrun-cli/pkg/types"
)

func newTestRuntime() (*ToolRuntime, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	rt := NewToolRuntime(nil)
	rt.Stdin = strings.NewReader("")
	rt.Stdout = &stdout
	rt.Stderr = &stderr
	return rt, &stdout, &stderr
}

func skipOnWindows(t *testing.T) {
	t.Helper()
	if goruntime.GOOS == "windows" {
		t.Skip("skipping: relies on POSIX echo/sh")
	}
}

func TestToolRuntime_EmptyPathsIsNoop(t *testing.T) {
	t.Parallel()

	rt, stdout, stderr := newTestRuntime()

	// The tool does not exist: any spawn attempt would surface as an error.
	for _, paths := range [][]string{nil, {}} {
		code, err := rt.Invoke(context.Background(), "taskrun-no-such-tool-7f3a", paths)
		if err != nil {
			t.Fatalf("Invoke(%v) error = %v, want nil", paths, err)
		}
		if code != types.ExitSuccess {
			t.Errorf("Invoke(%v) code = %d, want 0", paths, code)
		}
	}

	if stdout.Len() != 0 || stderr.Len() != 0 {
		t.Errorf("Invoke with no paths produced output: stdout=%q stderr=%q", stdout.String(), stderr.String())
	}
}

func TestToolRuntime_PassesPathsAsArguments(t *testing.T) {
	t.Parallel()
	skipOnWindows(t)

	rt, stdout, _ := newTestRuntime()

	code, err := rt.Invoke(context.Background(), "echo", []string{"addrservice", "tests"})
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if code != types.ExitSuccess {
		t.Errorf("Invoke() code = %d, want 0", code)
	}
	if got := strings.TrimSpace(stdout.String()); got != "addrservice tests" {
		t.Errorf("child stdout = %q, want %q", got, "addrservice tests")
	}
}

func TestToolRuntime_PropagatesExitStatus(t *testing.T) {
	t.Parallel()
	skipOnWindows(t)

	tests := []struct {
		name  string
		paths []string
		want  types.ExitCode
	}{
		{"success", []string{"-c", "exit 0"}, 0},
		{"lint violations", []string{"-c", "exit 1"}, 1},
		{"custom status", []string{"-c", "exit 3"}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rt, _, _ := newTestRuntime()
			code, err := rt.Invoke(context.Background(), "sh", tt.paths)
			if err != nil {
				t.Fatalf("Invoke() error = %v, want nil for a child that ran", err)
			}
			if code != tt.want {
				t.Errorf("Invoke() code = %d, want %d", code, tt.want)
			}
		})
	}
}

func TestToolRuntime_StderrIsInherited(t *testing.T) {
	t.Parallel()
	skipOnWindows(t)

	rt, stdout, stderr := newTestRuntime()
	if _, err := rt.Invoke(context.Background(), "sh", []string{"-c", "echo oops >&2"}); err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty", stdout.String())
	}
	if got := strings.TrimSpace(stderr.String()); got != "oops" {
		t.Errorf("stderr = %q, want %q", got, "oops")
	}
}

func TestToolRuntime_LaunchErrorIsNotTranslated(t *testing.T) {
	t.Parallel()

	rt, _, _ := newTestRuntime()
	_, err := rt.Invoke(context.Background(), "taskrun-no-such-tool-7f3a", []string{"."})
	if err == nil {
		t.Fatal("Invoke() error = nil, want launch error")
	}
	if !errors.Is(err, exec.ErrNotFound) {
		t.Errorf("Invoke() error = %v, want one wrapping exec.ErrNotFound", err)
	}
	var execErr *exec.Error
	if !errors.As(err, &execErr) {
		t.Errorf("Invoke() error type = %T, want *exec.Error", err)
	}
}
