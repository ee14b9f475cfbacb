// SPDX-License-Identifier: MIT
package catalog

import (
	"sort"

	"github.com/katalvlaran/enigma/alphabet"
)

// RotorSpec is the historical definition of one rotor.
type RotorSpec struct {
	// Wiring maps contact A..Z to the letters of this string.
	Wiring string
	// Notches lists the turnover letters: the window letters that, when
	// stepped away from, advance the next rotor to the left.
	Notches string
	// Stationary marks rotors that never step (M4 Greek wheels).
	Stationary bool
}

// ReflectorSpec is the historical definition of one reflector.
type ReflectorSpec struct {
	Wiring string
}

// Catalog resolves (model, type) combinations to wiring definitions.
type Catalog interface {
	Rotor(m Model, t RotorType) (RotorSpec, bool)
	Reflector(m Model, t ReflectorType) (ReflectorSpec, bool)
	// EntryWheel returns the entry-wheel contact order of m
	// (alphabet.Letters when the model has no special order).
	EntryWheel(m Model) string
}

// modelSpec groups everything a model shipped with.
type modelSpec struct {
	rotors     map[RotorType]RotorSpec
	reflectors map[ReflectorType]ReflectorSpec
	etw        string
}

// Table is a mutable in-memory Catalog.
type Table struct {
	models map[Model]*modelSpec
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{models: make(map[Model]*modelSpec)}
}

func (c *Table) model(m Model) *modelSpec {
	spec, ok := c.models[m]
	if !ok {
		spec = &modelSpec{
			rotors:     make(map[RotorType]RotorSpec),
			reflectors: make(map[ReflectorType]ReflectorSpec),
			etw:        alphabet.Letters,
		}
		c.models[m] = spec
	}

	return spec
}

// AddRotor registers a rotor for model m, replacing any previous entry.
func (c *Table) AddRotor(m Model, t RotorType, spec RotorSpec) *Table {
	c.model(m).rotors[t] = spec

	return c
}

// AddReflector registers a reflector for model m, replacing any previous entry.
func (c *Table) AddReflector(m Model, t ReflectorType, spec ReflectorSpec) *Table {
	c.model(m).reflectors[t] = spec

	return c
}

// SetEntryWheel sets the entry-wheel contact order of model m.
func (c *Table) SetEntryWheel(m Model, order string) *Table {
	c.model(m).etw = order

	return c
}

// Rotor implements Catalog.
func (c *Table) Rotor(m Model, t RotorType) (RotorSpec, bool) {
	spec, ok := c.models[m]
	if !ok {
		return RotorSpec{}, false
	}
	r, ok := spec.rotors[t]

	return r, ok
}

// Reflector implements Catalog.
func (c *Table) Reflector(m Model, t ReflectorType) (ReflectorSpec, bool) {
	spec, ok := c.models[m]
	if !ok {
		return ReflectorSpec{}, false
	}
	r, ok := spec.reflectors[t]

	return r, ok
}

// EntryWheel implements Catalog.
func (c *Table) EntryWheel(m Model) string {
	if spec, ok := c.models[m]; ok {
		return spec.etw
	}

	return alphabet.Letters
}

// HasModel reports whether m has any entry in the table.
func (c *Table) HasModel(m Model) bool {
	_, ok := c.models[m]

	return ok
}

// Models lists the models of the table in enum order.
func (c *Table) Models() []Model {
	out := make([]Model, 0, len(c.models))
	for m := range c.models {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// RotorTypes lists the rotors of model m in enum order.
func (c *Table) RotorTypes(m Model) []RotorType {
	spec, ok := c.models[m]
	if !ok {
		return nil
	}
	out := make([]RotorType, 0, len(spec.rotors))
	for t := range spec.rotors {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// ReflectorTypes lists the reflectors of model m in enum order.
func (c *Table) ReflectorTypes(m Model) []ReflectorType {
	spec, ok := c.models[m]
	if !ok {
		return nil
	}
	out := make([]ReflectorType, 0, len(spec.reflectors))
	for t := range spec.reflectors {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
