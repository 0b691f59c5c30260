// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for taskrun.
//
// The command tree is small and fixed:
//
//	taskrun typecheck [-c|--checker NAME] [PATH ...]
//	taskrun lint      [-l|--linter NAME] [PATH ...]
//	taskrun test      [--suite {all,unit,integration}] [-v|--verbose]
//
// Each subcommand's RunE is the handler for one operation and delegates to a
// service on App: ToolInvoker for typecheck and lint, TestRunner for test. Running
// taskrun with no subcommand, or with a token that names none, prints help.
package cmd
