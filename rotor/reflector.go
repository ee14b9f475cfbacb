// SPDX-License-Identifier: MIT
package rotor

import (
	"github.com/katalvlaran/enigma/alphabet"
	"github.com/katalvlaran/enigma/wiring"
)

// Reflector is a wiring table whose offset is fixed at construction and
// which never steps. Only the read side of the table is exposed.
type Reflector struct {
	table *wiring.Table
}

// NewReflector builds a Reflector of catalog type typ.
//
// Errors:
//   - wiring.ErrMalformedWiring: wiring is not a permutation.
func NewReflector(typ, wiringStr string) (*Reflector, error) {
	tbl, err := wiring.New("Reflector", typ, wiringStr)
	if err != nil {
		return nil, err
	}

	return &Reflector{table: tbl}, nil
}

// Entry returns slot position (wiring.ErrOutOfRange outside 0..25).
func (r *Reflector) Entry(position int) (wiring.Entry, error) { return r.table.Entry(position) }

// Forward returns the reflected slot index, or wiring.NotFound.
func (r *Reflector) Forward(position int) int { return r.table.Forward(position) }

// Backward is the inverse search of Forward.
func (r *Reflector) Backward(position int) int { return r.table.Backward(position) }

// Offset is always the construction offset.
func (r *Reflector) Offset() int { return r.table.Offset() }

// Type returns the catalog type label.
func (r *Reflector) Type() string { return r.table.Type() }

// FullName renders "Reflector(Type)[Offset]".
func (r *Reflector) FullName() string { return r.table.FullName() }

// Wiring returns the normalized wiring string.
func (r *Reflector) Wiring() string { return r.table.Wiring() }

// Status returns a snapshot of the table.
func (r *Reflector) Status() wiring.Status { return r.table.Status() }

// IsInvolution reports whether the wiring pairs letters (X↔Y) with no
// letter wired to itself.
func (r *Reflector) IsInvolution() bool {
	w := r.Wiring()
	for i := 0; i < alphabet.Size; i++ {
		j := alphabet.Index(w[i])
		if j == i || alphabet.Index(w[j]) != i {
			return false
		}
	}

	return true
}
