// SPDX-License-Identifier: MPL-2.0

// Package integration contains CLI integration tests using testscript.
//
// These tests build the taskrun binary once and drive it through the
// scripts under testdata, each in its own scratch directory.
package integration

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var (
	// binaryPath is the path to the built taskrun binary.
	binaryPath string
	// projectRoot is the path to the taskrun project root.
	projectRoot string
	// goEnv carries the toolchain cache locations into scripts that run go test.
	goEnv map[string]string
)

func TestMain(m *testing.M) {
	// Find project root (where go.mod is located)
	wd, err := os.Getwd()
	if err != nil {
		panic("failed to get working directory: " + err.Error())
	}

	// Walk up to find go.mod
	projectRoot = wd
	for {
		if _, err := os.Stat(filepath.Join(projectRoot, "go.mod")); err == nil {
			break
		}
		parent := filepath.Dir(projectRoot)
		if parent == projectRoot {
			panic("could not find project root (go.mod)")
		}
		projectRoot = parent
	}

	// Build the binary
	binDir := filepath.Join(projectRoot, "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		panic("failed to create bin directory: " + err.Error())
	}

	binaryName := "taskrun"
	if runtime.GOOS == "windows" {
		binaryName = "taskrun.exe"
	}
	binaryPath = filepath.Join(binDir, binaryName)

	cmd := exec.CommandContext(context.Background(), "go", "build", "-o", binaryPath, ".")
	cmd.Dir = projectRoot
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic("failed to build taskrun: " + err.Error())
	}

	goEnv = readGoEnv("GOCACHE", "GOMODCACHE", "GOPATH")

	os.Exit(m.Run())
}

// readGoEnv asks the toolchain for the named variables. Missing values are
// left out; scripts that need go test skip themselves when go is unavailable.
func readGoEnv(names ...string) map[string]string {
	out, err := exec.CommandContext(context.Background(), "go", append([]string{"env"}, names...)...).Output()
	if err != nil {
		return nil
	}
	env := make(map[string]string, len(names))
	for i, line := range strings.Split(strings.TrimRight(string(out), "\n"), "\n") {
		if i < len(names) && line != "" {
			env[names[i]] = line
		}
	}
	return env
}

// TestCLI runs all testscript tests in the testdata directory.
func TestCLI(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata",
		Setup: func(env *testscript.Env) error {
			// Add the binary directory to PATH
			binDir := filepath.Dir(binaryPath)
			env.Setenv("PATH", binDir+string(os.PathListSeparator)+env.Getenv("PATH"))

			for k, v := range goEnv {
				env.Setenv(k, v)
			}
			env.Setenv("GOTOOLCHAIN", "local")
			env.Setenv("GOPROXY", "off")
			env.Setenv("GOFLAGS", "-mod=mod")

			return nil
		},
		// Continue running all tests even if one fails
		ContinueOnError: true,
	})
}
