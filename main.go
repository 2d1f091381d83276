// SPDX-License-Identifier: MIT

package main

import "github.com/katalvlaran/sqtile/cmd"

// main is the entry point of the sqtile CLI.
func main() {
	cmd.Execute()
}
