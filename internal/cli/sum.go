// SPDX-License-Identifier: MIT

package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algex/algebra"
)

var sumCmd = &cobra.Command{
	Use:   "sum <matrixA> <matrixB>",
	Short: "Add two matrices of identical dimensions",
	Example: `  algex sum '[[1,2],[3,4]]' '[[5,6],[7,8]]'
  algex sum '[1, 2]' '[3, 4]'`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rc, err := prepare(cmd)
		if err != nil {
			return err
		}

		res := algebra.Sum(args[0], args[1], rc.mode, rc.opts...)
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
	rootCmd.AddCommand(sumCmd)
}
