// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// An ActionableError records what taskrun was doing, which resource was involved,
// and how the user can fix the problem. It is used for failures that happen around
// the executors (changing into the project directory, starting the go toolchain);
// errors produced by external tools themselves are never wrapped.
package issue
