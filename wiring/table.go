// SPDX-License-Identifier: MIT
package wiring

import (
	"fmt"

	"github.com/katalvlaran/enigma/alphabet"
)

// Table is a bijection between two 26-symbol contact sets, rotatable by an
// offset. It is the base of rotor.Rotor and rotor.Reflector.
//
// The zero value is not usable; construct with New.
type Table struct {
	name   string // component kind, e.g. "Rotor"
	typ    string // catalog type, e.g. "III"
	offset int    // ring offset applied by Generate

	inputs  [alphabet.Size]byte // wired contacts, construction order
	outputs [alphabet.Size]byte // entry-side contacts, alphabet order
	slots   [alphabet.Size]Entry
}

// New builds a Table named name/typ from a wiring string.
//
// Implementation:
//   - Stage 1: Normalize wiring (upper-case, drop non-letters).
//   - Stage 2: Reject anything that is not a permutation of the alphabet.
//   - Stage 3: Generate the slots at offset 0.
//
// Errors:
//   - ErrMalformedWiring: normalized length != 26 or a repeated letter.
//
// Complexity: O(len(wiring)).
func New(name, typ, wiring string) (*Table, error) {
	normalized := alphabet.Normalize(wiring)
	if len(normalized) != alphabet.Size {
		return nil, fmt.Errorf("%s(%s): length %d: %w", name, typ, len(normalized), ErrMalformedWiring)
	}
	if !alphabet.IsPermutation(normalized) {
		return nil, fmt.Errorf("%s(%s): %q is not a permutation: %w", name, typ, normalized, ErrMalformedWiring)
	}

	t := &Table{name: name, typ: typ}
	for i := 0; i < alphabet.Size; i++ {
		t.inputs[i] = normalized[i]
		t.outputs[i] = alphabet.Letters[i]
	}
	t.Generate(0)

	return t, nil
}

// Generate recomputes every slot at the given offset and restores the
// construction order of the slots. Negative offsets are clamped to 0.
//
// Slot i becomes (Letter(Index(in_i)+offset), Letter(Index(out_i)+offset)).
func (t *Table) Generate(offset int) {
	if offset < 0 {
		offset = 0
	}
	t.offset = offset
	for i := 0; i < alphabet.Size; i++ {
		t.slots[i] = Entry{
			In:  alphabet.Shift(t.inputs[i], offset),
			Out: alphabet.Shift(t.outputs[i], offset),
		}
	}
}

// Entry returns slot position.
//
// Errors:
//   - ErrOutOfRange: position outside 0..25.
func (t *Table) Entry(position int) (Entry, error) {
	if position < 0 || position >= alphabet.Size {
		return Entry{}, fmt.Errorf("%s: Entry(%d): %w", t.FullName(), position, ErrOutOfRange)
	}

	return t.slots[position], nil
}

// Front returns slot 0, the slot facing the window.
func (t *Table) Front() Entry { return t.slots[0] }

// Forward returns the index of the slot whose Out equals the In of slot
// position, or NotFound.
func (t *Table) Forward(position int) int {
	if position < 0 || position >= alphabet.Size {
		return NotFound
	}
	search := t.slots[position].In
	for i := range t.slots {
		if t.slots[i].Out == search {
			return i
		}
	}

	return NotFound
}

// Backward returns the index of the slot whose In equals the Out of slot
// position, or NotFound.
func (t *Table) Backward(position int) int {
	if position < 0 || position >= alphabet.Size {
		return NotFound
	}
	search := t.slots[position].Out
	for i := range t.slots {
		if t.slots[i].In == search {
			return i
		}
	}

	return NotFound
}

// Rotate moves the front slot to the back and returns it.
func (t *Table) Rotate() Entry {
	front := t.slots[0]
	copy(t.slots[:], t.slots[1:])
	t.slots[alphabet.Size-1] = front

	return front
}

// Offset returns the offset of the last Generate call.
func (t *Table) Offset() int { return t.offset }

// Name returns the component kind.
func (t *Table) Name() string { return t.name }

// Type returns the catalog type label.
func (t *Table) Type() string { return t.typ }

// FullName renders "Name(Type)[Offset]".
func (t *Table) FullName() string {
	return fmt.Sprintf("%s(%s)[%d]", t.name, t.typ, t.offset)
}

// Wiring returns the normalized wiring string the table was built from.
func (t *Table) Wiring() string { return string(t.inputs[:]) }

// Status returns a deep copy of the current table state.
func (t *Table) Status() Status {
	table := make([]Entry, alphabet.Size)
	copy(table, t.slots[:])

	return Status{Table: table, Offset: t.offset, Name: t.FullName()}
}
