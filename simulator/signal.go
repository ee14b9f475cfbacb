// SPDX-License-Identifier: MIT
package simulator

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/enigma/alphabet"
	"github.com/katalvlaran/enigma/wiring"
)

// Rotate steps the rightmost rotor and carries turnover leftwards while the
// previous rotor reported a notch.
func (s *Simulator) Rotate() {
	for i := len(s.rotors) - 1; i >= 0; i-- {
		if !s.rotors[i].Step() {
			return
		}
	}
}

// Input sends key through the machine without stepping. Lower-case keys
// are folded. See Result for the trail layout.
//
// Complexity: O(26 * (2*rotors + 1)).
func (s *Simulator) Input(key byte) Result {
	key = alphabet.Upper(key)
	res := Result{Input: string(key), Positions: make([]int, 0, 2*len(s.rotors)+2)}

	plugged := s.plugboard.Convert(key)
	pos := strings.IndexByte(s.etw, plugged)
	if pos < 0 {
		return res
	}
	res.trace(pos, plugged)

	for i := len(s.rotors) - 1; i >= 0; i-- {
		if pos = s.rotors[i].Forward(pos); pos == wiring.NotFound {
			return res
		}
		e, _ := s.rotors[i].Entry(pos)
		res.trace(pos, e.Out)
	}

	if pos = s.reflector.Forward(pos); pos == wiring.NotFound {
		return res
	}
	e, _ := s.reflector.Entry(pos)
	res.trace(pos, e.Out)

	for i := 0; i < len(s.rotors); i++ {
		if pos = s.rotors[i].Backward(pos); pos == wiring.NotFound {
			return res
		}
		e, _ := s.rotors[i].Entry(pos)
		res.trace(pos, e.In)
	}

	res.Output = string(s.plugboard.Convert(s.etw[pos]))

	return res
}

// Press rotates, then inputs key: one physical key press.
func (s *Simulator) Press(key byte) Result {
	s.Rotate()

	return s.Input(key)
}

// Type presses every letter of text and returns the cipher text.
// Characters outside the alphabet are dropped.
func (s *Simulator) Type(text string) string {
	text = alphabet.Normalize(text)
	var sb strings.Builder
	sb.Grow(len(text))
	for i := 0; i < len(text); i++ {
		sb.WriteString(s.Press(text[i]).Output)
	}

	return sb.String()
}

// Reset winds every rotor back to its configured start position.
// Plugboard, reflector and entry wheel are left as they are.
func (s *Simulator) Reset() error {
	for i, r := range s.rotors {
		if err := r.Reset(s.cfg.Position(i), s.cfg.Ring(i)); err != nil {
			return fmt.Errorf("Reset: rotors[%d]: %w", i, err)
		}
	}

	return nil
}

// Permutation returns the substitution of the current state: byte i is the
// output for key Letter(i). Nothing steps. A broken path shows as '?'.
func (s *Simulator) Permutation() string {
	out := make([]byte, alphabet.Size)
	for i := range out {
		res := s.Input(alphabet.Letter(i))
		if !res.OK() {
			out[i] = '?'

			continue
		}
		out[i] = res.Output[0]
	}

	return string(out)
}
