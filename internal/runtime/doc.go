// SPDX-License-Identifier: MPL-2.0

// Package runtime launches external developer tools (linters, static type
// checkers) as child processes.
//
// A ToolRuntime spawns exactly one process per Invoke call, connects it to the
// parent's standard streams, and waits for it to finish. The child's own output and
// exit status are the only user-visible result: the runtime does not capture output,
// retry, or time out. Launch failures (tool not found, not executable) are returned
// exactly as os/exec reports them.
package runtime
