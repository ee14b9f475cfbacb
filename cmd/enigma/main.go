// SPDX-License-Identifier: MIT
// Command enigma is the command-line front end of the simulator.
package main

import (
	"os"

	"github.com/katalvlaran/enigma/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
