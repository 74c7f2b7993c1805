// SPDX-License-Identifier: MIT

package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algex/algebra"
)

var mulCmd = &cobra.Command{
	Use:   "mul <matrixA> <matrixB>",
	Short: "Multiply two matrices (cols of A must equal rows of B)",
	Example: `  algex mul '[[1,2],[3,4]]' '[[2,0],[0,2]]'
  algex mul '[[1,2,3],[4,5,6]]' '[[1],[1],[1]]'`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rc, err := prepare(cmd)
		if err != nil {
			return err
		}

		res := algebra.Multiply(args[0], args[1], rc.mode, rc.opts...)
		if !res.OK {
			return errors.New(res.Err)
		}

		printGrid(cmd, res.Formatted)
		if rc.trace != nil {
			printSteps(cmd, res.Steps)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(mulCmd)
}
