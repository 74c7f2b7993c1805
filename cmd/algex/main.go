// SPDX-License-Identifier: MIT

// Command algex is the command-line front end of the algex library:
// determinant, matrix multiply, and matrix sum over text-encoded matrices,
// with selectable numeric mode and output format.
package main

import (
	"os"

	"github.com/katalvlaran/algex/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
