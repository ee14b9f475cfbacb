// SPDX-License-Identifier: MIT
// Package cli implements the enigma command line: an interactive keyboard
// session, batch encoding, a wiring-diagram view and the model catalog.
package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/enigma"
	"github.com/katalvlaran/enigma/config"
	"github.com/katalvlaran/enigma/internal/logging"
	"github.com/katalvlaran/enigma/simulator"
)

// NewRootCommand returns the enigma command with every subcommand attached.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enigma",
		Short: "Enigma rotor cipher machine simulator",
		Long: `Simulate the Enigma family of rotor cipher machines.

Machines are set up from a JSON or YAML file with the optional keys
model, reflector, rotors, rings, plugboard and position. Missing keys keep
the factory setting (Enigma I, reflector C, rotors V I III, rings S R E,
plugboard CS ER, position E H S).`,
		Version:       enigma.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().Bool("debug", false, "Log configuration changes and every signal trail to stderr")

	cmd.AddCommand(
		NewRunCommand(),
		NewEncodeCommand(),
		NewStatusCommand(),
		NewConfigCommand(),
		NewModelsCommand(),
	)

	return cmd
}

// Execute runs the root command with the process arguments and reports
// failures on stderr. It returns the exit code.
func Execute() int {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		_, _ = fmt.Fprintln(root.ErrOrStderr(), "enigma:", err)

		return 1
	}

	return 0
}

// newLogger honours the persistent --debug flag.
func newLogger(cmd *cobra.Command) *log.Logger {
	debug, _ := cmd.Flags().GetBool("debug")

	return logging.New(cmd.ErrOrStderr(), debug)
}

// openMachine builds a simulator from the first readable file in paths.
// Files that fail to load are logged and skipped; no paths (or none
// readable) yields the factory setup.
func openMachine(logger *log.Logger, paths ...string) (*simulator.Simulator, error) {
	var p config.Partial
	for _, path := range paths {
		if path == "" {
			continue
		}
		loaded, err := config.Load(path)
		if err != nil {
			logger.Error("skipping configuration file", "path", path, "err", err)

			continue
		}
		p = loaded

		break
	}

	s, err := enigma.Create(p, simulator.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	logger.Debug("machine ready", "config", s.Config().String(), "etw", s.ETW())

	return s, nil
}
