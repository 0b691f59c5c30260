// SPDX-License-Identifier: MPL-2.0

package main

import "taskrun-cli/cmd/taskrun"

func main() {
	cmd.Execute()
}
