// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/enigma/alphabet"
	"github.com/katalvlaran/enigma/catalog"
	"github.com/katalvlaran/enigma/config"
	"github.com/katalvlaran/enigma/cycles"
	"github.com/katalvlaran/enigma/render"
	"github.com/katalvlaran/enigma/simulator"
)

// NewStatusCommand returns the wiring-diagram view.
func NewStatusCommand() *cobra.Command {
	var (
		cfgPath   string
		key       string
		showCycle bool
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Draw the wiring of the configured machine",
		Long: `Status draws every component in signal order. With --key the key is
pressed first and its path through the machine is highlighted. With
--cycles the cycle structure of the current substitution is printed too.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sim, err := openMachine(newLogger(cmd), cfgPath)
			if err != nil {
				return err
			}

			var res *simulator.Result
			if key != "" {
				if len(key) != 1 || !alphabet.Valid(alphabet.Upper(key[0])) {
					return fmt.Errorf("--key %q: want a single letter", key)
				}
				r := sim.Press(key[0])
				res = &r
			}

			out := cmd.OutOrStdout()
			rd := render.New(out)
			st := sim.Status()
			_, _ = fmt.Fprintln(out, rd.Summary(st))
			if showCycle {
				cs, err := cycles.Decompose(sim.Permutation())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(out, "cycles (%s) %v\n", strings.Join(cs, ")("), cycles.Characteristic(cs))
			}
			_, err = fmt.Fprintln(out, rd.Diagram(st, res))

			return err
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Configuration file (JSON or YAML)")
	cmd.Flags().StringVarP(&key, "key", "k", "", "Press this key and highlight its path")
	cmd.Flags().BoolVar(&showCycle, "cycles", false, "Print the cycle structure of the current substitution")

	return cmd
}

// NewConfigCommand returns the command that prints or saves the effective
// configuration.
func NewConfigCommand() *cobra.Command {
	var (
		cfgPath string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: `Config merges the given file over the factory setup, validates it and
prints the complete result. With --out the result is written to a file
that run, encode and status accept.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sim, err := openMachine(newLogger(cmd), cfgPath)
			if err != nil {
				return err
			}
			if outPath != "" {
				return config.Save(outPath, sim.Config())
			}
			data, err := config.Encode(sim.Config())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Configuration file (JSON or YAML)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the configuration to this file")

	return cmd
}

// NewModelsCommand returns the catalog listing.
func NewModelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List machine models with their rotors and reflectors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), render.New(cmd.OutOrStdout()).Catalog(catalog.Historical()))

			return err
		},
	}
}
