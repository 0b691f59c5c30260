// SPDX-License-Identifier: MPL-2.0

package suite

import (
	"errors"
	"testing"
)

func TestSelector_Root(t *testing.T) {
	t.Parallel()

	tests := []struct {
		selector Selector
		want     string
	}{
		{SelectorAll, "tests"},
		{SelectorUnit, "tests/unit"},
		{SelectorIntegration, "tests/integration"},
		{Selector("smoke"), "tests"},
		{Selector(""), "tests"},
	}

	for _, tt := range tests {
		t.Run(string(tt.selector), func(t *testing.T) {
			t.Parallel()
			if got := tt.selector.Root(); got != tt.want {
				t.Errorf("Selector(%q).Root() = %q, want %q", tt.selector, got, tt.want)
			}
		})
	}
}

func TestSelector_Validate(t *testing.T) {
	t.Parallel()

	for _, s := range Selectors() {
		if err := s.Validate(); err != nil {
			t.Errorf("Selector(%q).Validate() = %v, want nil", s, err)
		}
	}

	for _, bad := range []Selector{"", "All", "e2e", "unit "} {
		err := bad.Validate()
		if err == nil {
			t.Errorf("Selector(%q).Validate() = nil, want error", bad)
			continue
		}
		if !errors.Is(err, ErrInvalidSelector) {
			t.Errorf("Selector(%q).Validate() error should wrap ErrInvalidSelector, got: %v", bad, err)
		}
	}
}

func TestSelectors_Order(t *testing.T) {
	t.Parallel()

	got := Selectors()
	want := []Selector{"all", "unit", "integration"}
	if len(got) != len(want) {
		t.Fatalf("Selectors() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Selectors()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
