// SPDX-License-Identifier: MPL-2.0

package suite

import (
	"errors"
	"fmt"
)

const (
	// SelectorAll runs every test under the tests directory.
	SelectorAll Selector = "all"
	// SelectorUnit runs tests under tests/unit.
	SelectorUnit Selector = "unit"
	// SelectorIntegration runs tests under tests/integration.
	SelectorIntegration Selector = "integration"

	// RootAll is the discovery root for SelectorAll and for unknown selectors.
	RootAll = "tests"
	// RootUnit is the discovery root for SelectorUnit.
	RootUnit = "tests/unit"
	// RootIntegration is the discovery root for SelectorIntegration.
	RootIntegration = "tests/integration"
)

// ErrInvalidSelector is the sentinel error wrapped by InvalidSelectorError.
var ErrInvalidSelector = errors.New("invalid suite selector")

type (
	// Selector names which test suite to run.
	Selector string

	// InvalidSelectorError is returned when a Selector is not one of the known values.
	InvalidSelectorError struct {
		Value Selector
	}
)

// Selectors returns the accepted selector values in display order.
func Selectors() []Selector {
	return []Selector{SelectorAll, SelectorUnit, SelectorIntegration}
}

// String returns the string representation of the Selector.
func (s Selector) String() string { return string(s) }

// Validate returns an error if s is not one of Selectors().
func (s Selector) Validate() error {
	switch s {
	case SelectorAll, SelectorUnit, SelectorIntegration:
		return nil
	default:
		return &InvalidSelectorError{Value: s}
	}
}

// Root returns the discovery root for s. Values that fail Validate resolve to
// RootAll so programmatic callers that skip flag validation still get a
// well-defined run.
func (s Selector) Root() string {
	switch s {
	case SelectorUnit:
		return RootUnit
	case SelectorIntegration:
		return RootIntegration
	default:
		return RootAll
	}
}

// Error implements the error interface for InvalidSelectorError.
func (e *InvalidSelectorError) Error() string {
	return fmt.Sprintf("invalid suite %q (valid: all, unit, integration)", e.Value)
}

// Unwrap returns ErrInvalidSelector for errors.Is() compatibility.
func (e *InvalidSelectorError) Unwrap() error { return ErrInvalidSelector }
