// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/enigma/alphabet"
	"github.com/katalvlaran/enigma/catalog"
)

// Builder assembles a Configuration from a base value plus overrides.
// Setters never fail; the first problem is reported by Build.
//
// Example:
//
//	cfg, err := config.NewBuilder(config.Default()).
//		Rotors(catalog.RotorI, catalog.RotorII, catalog.RotorIII).
//		Rings("AAA").
//		Positions("AAA").
//		Build()
type Builder struct {
	catalog   catalog.Catalog
	model     catalog.Model
	reflector catalog.ReflectorType
	rotors    []catalog.RotorType
	rings     string
	positions string
	plugboard []string
	err       error
}

// NewBuilder starts from base and validates against catalog.Historical.
func NewBuilder(base Configuration) *Builder {
	return &Builder{
		catalog:   catalog.Historical(),
		model:     base.model,
		reflector: base.reflector,
		rotors:    base.Rotors(),
		rings:     base.rings,
		positions: base.positions,
		plugboard: base.Plugboard(),
	}
}

// Catalog validates against c instead of the historical tables. Nil is ignored.
func (b *Builder) Catalog(c catalog.Catalog) *Builder {
	if c != nil {
		b.catalog = c
	}

	return b
}

// Model sets the machine model.
func (b *Builder) Model(m catalog.Model) *Builder {
	b.model = m

	return b
}

// Reflector sets the reflector type.
func (b *Builder) Reflector(r catalog.ReflectorType) *Builder {
	b.reflector = r

	return b
}

// Rotors replaces the rotor list, leftmost first.
func (b *Builder) Rotors(rotors ...catalog.RotorType) *Builder {
	b.rotors = append([]catalog.RotorType(nil), rotors...)

	return b
}

// Rings sets one ring letter per rotor, e.g. "SRE".
func (b *Builder) Rings(letters string) *Builder {
	b.rings = letters

	return b
}

// Positions sets one start window letter per rotor, e.g. "EHS".
func (b *Builder) Positions(letters string) *Builder {
	b.positions = letters

	return b
}

// Plugboard replaces the plugboard pairs, e.g. "CS", "ER".
func (b *Builder) Plugboard(pairs ...string) *Builder {
	b.plugboard = append([]string(nil), pairs...)

	return b
}

// Apply merges every field set in p.
func (b *Builder) Apply(p Partial) *Builder {
	if p.Model != nil {
		b.Model(*p.Model)
	}
	if p.Reflector != nil {
		b.Reflector(*p.Reflector)
	}
	if p.Rotors != nil {
		b.Rotors(p.Rotors...)
	}
	if p.Rings != nil {
		b.Rings(b.joinLetters("rings", p.Rings, ErrInvalidRing))
	}
	if p.Plugboard != nil {
		b.Plugboard(p.Plugboard...)
	}
	if p.Position != nil {
		b.Positions(b.joinLetters("position", p.Position, ErrInvalidPosition))
	}

	return b
}

// joinLetters concatenates single-letter entries, recording the first
// malformed entry.
func (b *Builder) joinLetters(field string, list []string, sentinel error) string {
	var sb strings.Builder
	for i, s := range list {
		s = strings.TrimSpace(s)
		if len(s) != 1 {
			b.fail(fmt.Errorf("Apply: %s[%d]=%q: %w", field, i, s, sentinel))

			continue
		}
		sb.WriteString(s)
	}

	return sb.String()
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Build validates the accumulated values and returns the Configuration.
//
// Errors (first failure wins, in this order):
//   - any error recorded by Apply
//   - catalog.ErrUnknownModel
//   - ErrNoRotors, ErrLengthMismatch
//   - ErrInvalidRing, ErrInvalidPosition
//   - ErrInvalidPlug, ErrDuplicatePlug
//   - catalog.ErrUnknownReflector, catalog.ErrUnknownRotor
func (b *Builder) Build() (Configuration, error) {
	if b.err != nil {
		return Configuration{}, b.err
	}
	cfg := Configuration{
		model:     b.model,
		reflector: b.reflector,
		rotors:    append([]catalog.RotorType(nil), b.rotors...),
		rings:     upperLetters(b.rings),
		positions: upperLetters(b.positions),
	}
	pairs, err := normalizePlugboard(b.plugboard)
	if err != nil {
		return Configuration{}, err
	}
	cfg.plugboard = pairs

	if err := Validate(cfg, b.catalog); err != nil {
		return Configuration{}, err
	}

	return cfg, nil
}

func upperLetters(s string) string {
	out := []byte(s)
	for i := range out {
		out[i] = alphabet.Upper(out[i])
	}

	return string(out)
}
