// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidToolName is the sentinel error wrapped by InvalidToolNameError.
var ErrInvalidToolName = errors.New("invalid tool name")

type (
	// ToolName is the name (or path) of an external executable such as a linter
	// or a static type checker. It is resolved against PATH at launch time.
	// The zero value is invalid.
	ToolName string

	// InvalidToolNameError is returned when a ToolName is empty or whitespace-only.
	InvalidToolNameError struct {
		Value ToolName
	}
)

// String returns the string representation of the ToolName.
func (n ToolName) String() string { return string(n) }

// Validate returns an error if the ToolName is empty or whitespace-only.
func (n ToolName) Validate() error {
	if strings.TrimSpace(string(n)) == "" {
		return &InvalidToolNameError{Value: n}
	}
	return nil
}

// Error implements the error interface for InvalidToolNameError.
func (e *InvalidToolNameError) Error() string {
	return fmt.Sprintf("invalid tool name %q: must not be empty", e.Value)
}

// Unwrap returns ErrInvalidToolName for errors.Is() compatibility.
func (e *InvalidToolNameError) Unwrap() error { return ErrInvalidToolName }
