// SPDX-License-Identifier: MIT
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var errNoInput = errors.New("no input text: use --text, --file or pipe to stdin")

// NewEncodeCommand returns the batch encoder.
func NewEncodeCommand() *cobra.Command {
	var (
		cfgPath string
		text    string
		file    string
		group   int
	)

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encipher (or decipher) a message",
		Long: `Encode presses every letter of the message on a freshly set up machine.

Non-letters are dropped. Because the machine is its own inverse, encoding
the cipher text with the same configuration gives back the plain text.

  enigma encode --text "attack at dawn"
  enigma encode --config m4.yaml --file message.txt --group 5
  echo BAAOBCPFUKER | enigma encode`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, text, file)
			if err != nil {
				return err
			}
			sim, err := openMachine(newLogger(cmd), cfgPath)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), groupLetters(sim.Type(input), group))

			return err
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Configuration file (JSON or YAML)")
	cmd.Flags().StringVarP(&text, "text", "t", "", "Message text")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the message from a file")
	cmd.Flags().IntVarP(&group, "group", "g", 0, "Split the output into groups of N letters")

	return cmd
}

// readInput takes --text, then --file, then piped stdin.
func readInput(cmd *cobra.Command, text, file string) (string, error) {
	if text != "" {
		return text, nil
	}
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", file, err)
		}

		return string(data), nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok {
		if st, err := f.Stat(); err != nil || st.Mode()&os.ModeCharDevice != 0 {
			return "", errNoInput
		}
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	if len(data) == 0 {
		return "", errNoInput
	}

	return string(data), nil
}

// groupLetters splits s into space-separated blocks of n; n <= 0 keeps s.
func groupLetters(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i += n {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(s[i:min(i+n, len(s))])
	}

	return sb.String()
}
