// SPDX-License-Identifier: MIT

// Package cli implements the algex command tree.
// Global flags choose the numeric policy and output format; a YAML config
// file supplies defaults that explicit flags override. Subcommands live in
// their own files and register themselves in init.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/algex/algebra"
	"github.com/katalvlaran/algex/config"
	"github.com/katalvlaran/algex/numeric"
)

var (
	flagConfig    string
	flagMode      string
	flagPlaces    int
	flagTolerance float64
	flagFormat    string
	flagSteps     bool
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "algex",
	Short: "Exact and approximate matrix algebra from the command line",
	Long: `algex evaluates matrix operations over text-encoded matrices.

Matrices are written as nested bracket literals; every cell accepts the
expression grammar (fractions, powers, sqrt):

  algex det '[[2,3],[1,4]]'
  algex mul '[[1,2],[3,4]]' '[[2,0],[0,2]]'
  algex sum '[[1/2]]' '[[(1/2)^2]]' --format fraction

The numeric mode decides how cells are carried: "exact" keeps rationals,
"approximate" rounds to the configured decimal places and compares within
a tolerance.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagConfig, "config", "c", "", "path to a YAML config file")
	pf.StringVarP(&flagMode, "mode", "m", "", `numeric mode: "exact" or "approximate"`)
	pf.IntVarP(&flagPlaces, "places", "p", numeric.DefaultDecimalPlaces, "decimal digit budget")
	pf.Float64VarP(&flagTolerance, "tolerance", "t", numeric.DefaultTolerance, "approximate-mode equality tolerance")
	pf.StringVarP(&flagFormat, "format", "f", "", `output format: "auto", "fraction", or "float"`)
	pf.BoolVarP(&flagSteps, "steps", "s", false, "print the recorded computation steps")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "stream steps as structured log events")
}

// Execute runs the command tree; errors are printed once, here.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "algex:", err)
	}

	return err
}

// settings resolves the effective configuration: config file (or defaults)
// overlaid with every flag the user set explicitly.
func settings(cmd *cobra.Command) (config.Settings, error) {
	s := config.Default()
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return config.Settings{}, err
		}
		s = loaded
	}

	fl := cmd.Flags()
	if fl.Changed("mode") {
		s.Mode = flagMode
	}
	if fl.Changed("places") {
		s.DecimalPlaces = flagPlaces
	}
	if fl.Changed("tolerance") {
		s.Tolerance = flagTolerance
	}
	if fl.Changed("format") {
		s.Format = flagFormat
	}
	if err := s.Validate(); err != nil {
		return config.Settings{}, err
	}

	return s, nil
}

// runContext is everything a subcommand needs to execute an operation.
type runContext struct {
	mode  numeric.Mode
	opts  []algebra.Option
	trace *algebra.Trace
}

// prepare converts the resolved settings into operation inputs, attaching
// the requested step sink.
func prepare(cmd *cobra.Command) (runContext, error) {
	s, err := settings(cmd)
	if err != nil {
		return runContext{}, err
	}

	mode, err := s.NumericMode()
	if err != nil {
		return runContext{}, err
	}
	fm, err := s.FormatMode()
	if err != nil {
		return runContext{}, err
	}

	rc := runContext{
		mode: mode,
		opts: []algebra.Option{
			algebra.WithFormat(fm),
			algebra.WithPlaces(s.DecimalPlaces),
		},
	}

	switch {
	case flagVerbose:
		log := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
			With().Timestamp().Logger()
		rc.opts = append(rc.opts, algebra.WithRecorder(algebra.NewLogSink(log)))
	case flagSteps:
		rc.trace = algebra.NewTrace()
		rc.opts = append(rc.opts, algebra.WithRecorder(rc.trace))
	}

	return rc, nil
}

// printSteps renders a collected trace in a readable one-line-per-step form.
func printSteps(cmd *cobra.Command, steps []algebra.Step) {
	out := cmd.OutOrStdout()
	for _, s := range steps {
		fmt.Fprintf(out, "  [%s/%s] %s", s.Op, s.Stage, s.Msg)
		for k, v := range s.State {
			fmt.Fprintf(out, " %s=%s", k, v)
		}
		fmt.Fprintln(out)
	}
}

// printGrid renders a formatted matrix one row per line.
func printGrid(cmd *cobra.Command, grid [][]string) {
	out := cmd.OutOrStdout()
	for _, row := range grid {
		fmt.Fprint(out, "[")
		for j, cell := range row {
			if j > 0 {
				fmt.Fprint(out, ", ")
			}
			fmt.Fprint(out, cell)
		}
		fmt.Fprintln(out, "]")
	}
}
