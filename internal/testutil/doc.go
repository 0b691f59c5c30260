// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate and ensuring consistent error handling.
//
// Common helpers include directory operations (MustChdir, MustMkdirAll), file tree
// fixtures (MustWriteFile, WriteTree, FakeTool) and a FakeClock for deterministic
// elapsed-time reporting.
package testutil
