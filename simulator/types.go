// SPDX-License-Identifier: MIT
package simulator

import (
	"strings"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/enigma/config"
	"github.com/katalvlaran/enigma/generator"
	"github.com/katalvlaran/enigma/rotor"
	"github.com/katalvlaran/enigma/wiring"
)

// Result is the outcome of one Input.
type Result struct {
	// Input is the key after case folding.
	Input string `json:"input"`
	// Output is the cipher letter, or "" when the path was broken.
	Output string `json:"output"`
	// Positions is the slot index after each stage: entry wheel, every
	// forward rotor pass, reflector, every backward rotor pass.
	Positions []int `json:"position"`
	// Letters holds one contact letter per Positions entry.
	Letters string `json:"position_str"`
}

// OK reports whether the key made it through the whole path.
func (r Result) OK() bool { return r.Output != "" }

// Trail renders the path as "A>I>X>...>B".
func (r Result) Trail() string {
	var sb strings.Builder
	for i := 0; i < len(r.Letters); i++ {
		if i > 0 {
			sb.WriteByte('>')
		}
		sb.WriteByte(r.Letters[i])
	}
	if r.Output != "" {
		sb.WriteByte('>')
		sb.WriteString(r.Output)
	}

	return sb.String()
}

func (r *Result) trace(position int, letter byte) {
	r.Positions = append(r.Positions, position)
	r.Letters += string(letter)
}

// Status is a read-only snapshot of the machine.
type Status struct {
	// Plugboard holds the non-identity plugboard entries, both directions.
	Plugboard map[string]string `json:"plugboard"`
	// Rotors lists rotor snapshots leftmost first.
	Rotors []rotor.Status `json:"rotors"`
	// Reflector is the reflector table snapshot.
	Reflector wiring.Status `json:"reflector"`
	// ETW is the entry-wheel contact order.
	ETW string `json:"etw"`
	// Windows holds the window letter of each rotor, leftmost first.
	Windows string `json:"windows"`
}

// Option configures a Simulator at construction.
type Option func(*Simulator)

// WithConfig starts the simulator from cfg instead of config.Default.
func WithConfig(cfg config.Configuration) Option {
	return func(s *Simulator) {
		s.cfg = cfg
	}
}

// WithGenerator builds components with g. A nil generator is ignored.
func WithGenerator(g *generator.Generator) Option {
	return func(s *Simulator) {
		if g != nil {
			s.gen = g
		}
	}
}

// WithLogger sets the logger for reconfiguration events. A nil logger is
// ignored. When no generator is given, the default one logs here too.
func WithLogger(l *log.Logger) Option {
	return func(s *Simulator) {
		if l != nil {
			s.logger = l
		}
	}
}
