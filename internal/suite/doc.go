// SPDX-License-Identifier: MPL-2.0

// Package suite discovers and runs the project's Go test suites.
//
// A run has four stages:
//   - selection: a Selector (all, unit, integration) resolves to one discovery root
//   - discovery: the root is walked for files matching *_test.go, grouped by package
//     directory in lexical order
//   - execution: an Engine runs the discovered packages sequentially; the default
//     GoTest engine drives `go test -json -p 1 -parallel 1`
//   - reporting: a Collector turns test2json events into per-test results and a
//     Reporter prints a progress stream and a final summary
//
// Go compiles tests at build time, so "loading" a discovered test module means
// handing its package directory to the go toolchain. Discovery still happens at run
// time against the filesystem, which keeps the selection contract identical: the set
// and order of executed tests depends only on which *_test.go files exist under the
// selected root.
package suite
