// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algex/algebra"
)

var detCmd = &cobra.Command{
	Use:   "det <matrix>",
	Short: "Compute the determinant of a square matrix",
	Example: `  algex det '[[2,3],[1,4]]'
  algex det '[[1/2,0],[0,1/3]]' --format fraction
  algex det '[[0.5,0],[0,0.5]]' --mode approximate --steps`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rc, err := prepare(cmd)
		if err != nil {
			return err
		}

		res := algebra.Determinant(args[0], rc.mode, rc.opts...)
		if !res.OK {
			return errors.New(res.Err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), res.Formatted)
		if rc.trace != nil {
			printSteps(cmd, res.Steps)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(detCmd)
}
