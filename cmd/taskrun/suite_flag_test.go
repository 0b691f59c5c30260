// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"strings"
	"testing"

	"taskrun-cli/internal/suite"

	"github.com/spf13/cobra"
)

func TestSuiteValue_Set(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    suite.Selector
		wantErr bool
	}{
		{"all", suite.SelectorAll, false},
		{"unit", suite.SelectorUnit, false},
		{"integration", suite.SelectorIntegration, false},
		{"Unit", suite.SelectorAll, true},
		{"", suite.SelectorAll, true},
		{"e2e", suite.SelectorAll, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			v := suiteValue(suite.SelectorAll)
			err := v.Set(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Set(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, suite.ErrInvalidSelector) {
				t.Errorf("Set(%q) error = %v, want ErrInvalidSelector", tt.in, err)
			}
			if suite.Selector(v) != tt.want {
				t.Errorf("value after Set(%q) = %q, want %q", tt.in, v, tt.want)
			}
		})
	}
}

func TestSuiteValue_TypeAndDefault(t *testing.T) {
	t.Parallel()

	v := suiteValue(suite.SelectorAll)
	if v.Type() != "suite" {
		t.Errorf("Type() = %q, want %q", v.Type(), "suite")
	}

	cmd := newTestCommand(&App{})
	flag := cmd.Flags().Lookup("suite")
	if flag == nil {
		t.Fatal("--suite flag not registered")
	}
	if flag.DefValue != "all" {
		t.Errorf("--suite default = %q, want %q", flag.DefValue, "all")
	}
}

func TestCompleteSuite(t *testing.T) {
	t.Parallel()

	got, directive := completeSuite(nil, nil, "")
	if directive != cobra.ShellCompDirectiveNoFileComp {
		t.Errorf("directive = %v, want NoFileComp", directive)
	}
	if len(got) != 3 {
		t.Fatalf("completions = %q, want 3 entries", got)
	}
	for i, want := range []string{"all\t", "unit\t", "integration\t"} {
		if !strings.HasPrefix(got[i], want) {
			t.Errorf("completion[%d] = %q, want prefix %q", i, got[i], want)
		}
	}
}
