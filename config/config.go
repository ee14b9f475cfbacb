// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/enigma/catalog"
)

// Configuration is a validated, immutable machine setup.
// The zero value is not valid; use Default or a Builder.
type Configuration struct {
	model     catalog.Model
	reflector catalog.ReflectorType
	rotors    []catalog.RotorType
	rings     string   // one letter per rotor
	positions string   // one letter per rotor
	plugboard []string // upper-case two-letter pairs
}

// Partial is the wire shape of a configuration. Nil fields are "not set".
type Partial struct {
	Model     *catalog.Model         `yaml:"model,omitempty" json:"model,omitempty"`
	Reflector *catalog.ReflectorType `yaml:"reflector,omitempty" json:"reflector,omitempty"`
	Rotors    []catalog.RotorType    `yaml:"rotors,omitempty" json:"rotors,omitempty"`
	Rings     []string               `yaml:"rings,omitempty" json:"rings,omitempty"`
	Plugboard []string               `yaml:"plugboard" json:"plugboard"`
	Position  []string               `yaml:"position,omitempty" json:"position,omitempty"`
}

// IsEmpty reports whether no field is set.
func (p Partial) IsEmpty() bool {
	return p.Model == nil && p.Reflector == nil && p.Rotors == nil &&
		p.Rings == nil && p.Plugboard == nil && p.Position == nil
}

// Default returns the factory setup: Enigma I, reflector C, rotors V I III,
// rings S R E, plugboard CS ER, start positions E H S.
func Default() Configuration {
	return Configuration{
		model:     catalog.EnigmaI,
		reflector: catalog.ReflectorC,
		rotors:    []catalog.RotorType{catalog.RotorV, catalog.RotorI, catalog.RotorIII},
		rings:     "SRE",
		positions: "EHS",
		plugboard: []string{"CS", "ER"},
	}
}

// Model returns the machine model.
func (c Configuration) Model() catalog.Model { return c.model }

// Reflector returns the reflector type.
func (c Configuration) Reflector() catalog.ReflectorType { return c.reflector }

// Rotors returns a copy of the rotor list, leftmost first.
func (c Configuration) Rotors() []catalog.RotorType {
	return append([]catalog.RotorType(nil), c.rotors...)
}

// Len returns the number of rotors.
func (c Configuration) Len() int { return len(c.rotors) }

// Rotor returns rotor index i (0 = leftmost).
func (c Configuration) Rotor(i int) (catalog.RotorType, bool) {
	if i < 0 || i >= len(c.rotors) {
		return 0, false
	}

	return c.rotors[i], true
}

// Rings returns the ring letters, one per rotor.
func (c Configuration) Rings() string { return c.rings }

// Positions returns the start window letters, one per rotor.
func (c Configuration) Positions() string { return c.positions }

// Ring returns the ring letter of rotor i, or 0 when out of range.
func (c Configuration) Ring(i int) byte {
	if i < 0 || i >= len(c.rings) {
		return 0
	}

	return c.rings[i]
}

// Position returns the start letter of rotor i, or 0 when out of range.
func (c Configuration) Position(i int) byte {
	if i < 0 || i >= len(c.positions) {
		return 0
	}

	return c.positions[i]
}

// Plugboard returns a copy of the plugboard pairs.
func (c Configuration) Plugboard() []string {
	return append([]string(nil), c.plugboard...)
}

// Partial returns the configuration with every field set.
func (c Configuration) Partial() Partial {
	model, reflector := c.model, c.reflector

	return Partial{
		Model:     &model,
		Reflector: &reflector,
		Rotors:    c.Rotors(),
		Rings:     splitLetters(c.rings),
		Plugboard: c.Plugboard(),
		Position:  splitLetters(c.positions),
	}
}

// Equal reports whether two configurations describe the same setup.
func (c Configuration) Equal(o Configuration) bool {
	return c.String() == o.String()
}

// String renders a compact one-line description, e.g.
// "EnigmaI C [V I III] rings=SRE pos=EHS plugs=CS ER".
func (c Configuration) String() string {
	names := make([]string, len(c.rotors))
	for i, r := range c.rotors {
		names[i] = r.String()
	}

	return fmt.Sprintf("%s %s [%s] rings=%s pos=%s plugs=%s",
		c.model, c.reflector, strings.Join(names, " "), c.rings, c.positions, strings.Join(c.plugboard, " "))
}

func splitLetters(s string) []string {
	out := make([]string, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = s[i : i+1]
	}

	return out
}
