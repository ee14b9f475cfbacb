// SPDX-License-Identifier: MIT
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/enigma/alphabet"
	"github.com/katalvlaran/enigma/simulator"
)

const (
	keyInterrupt = 0x03 // Ctrl-C in raw mode
	keyReturn    = '\r'
)

// NewRunCommand returns the interactive keyboard session.
func NewRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run [config-file...]",
		Short: "Type on the machine key by key",
		Long: `Run reads keystrokes and lights the lamp for each one.

On a terminal the input is switched to raw mode and the cumulative cipher
text is redrawn after every key; Ctrl-C or Enter ends the session. When
stdin is not a terminal the stream is read until EOF or a carriage return
and the cipher text is printed once.

The first config file that loads is used; unreadable ones are skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd)
			sim, err := openMachine(logger, args...)
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
				state, err := term.MakeRaw(int(f.Fd()))
				if err != nil {
					return fmt.Errorf("raw mode: %w", err)
				}
				defer func() { _ = term.Restore(int(f.Fd()), state) }()

				return session(in, cmd.OutOrStdout(), sim, logger, true)
			}

			return session(in, cmd.OutOrStdout(), sim, logger, false)
		},
	}
}

// session feeds every letter of r to sim, one key press each.
// Non-letters are ignored; Ctrl-C, carriage return and EOF end the session.
// In raw mode the cumulative output is redrawn after every key.
func session(r io.Reader, w io.Writer, sim *simulator.Simulator, logger *log.Logger, raw bool) error {
	br := bufio.NewReader(r)
	var out []byte
	for {
		b, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		if b == keyInterrupt || b == keyReturn {
			break
		}
		if !alphabet.Valid(alphabet.Upper(b)) {
			continue
		}

		res := sim.Press(b)
		logger.Debug("key", "windows", sim.Windows(), "trail", res.Trail())
		out = append(out, res.Output...)
		if raw {
			_, _ = fmt.Fprintf(w, "\r%s", out)
		}
	}

	if raw {
		_, _ = fmt.Fprint(w, "\r\n")

		return nil
	}
	_, err := fmt.Fprintf(w, "%s\n", out)

	return err
}
