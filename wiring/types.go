// SPDX-License-Identifier: MIT
package wiring

import (
	"encoding/json"
	"fmt"
)

// NotFound is returned by Forward and Backward when no slot matches.
const NotFound = -1

// Entry is one slot of a Table.
//
// In is the wired contact, Out the entry-side contact. Both are alphabet
// symbols already shifted by the table offset.
type Entry struct {
	In  byte
	Out byte
}

// String renders the slot as "In>Out".
func (e Entry) String() string { return fmt.Sprintf("%c>%c", e.In, e.Out) }

// MarshalJSON encodes the slot as {"in":"E","out":"A"}.
func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		In  string `json:"in"`
		Out string `json:"out"`
	}{string(e.In), string(e.Out)})
}

// Status is a read-only snapshot of a Table.
type Status struct {
	// Table holds the 26 slots in current rotation order.
	Table []Entry `json:"table"`
	// Offset is the ring offset the table was generated with.
	Offset int `json:"offset"`
	// Name identifies the component, e.g. "Rotor(III)[4]".
	Name string `json:"name"`
}

// Front returns the slot at position 0, or the zero Entry for an empty snapshot.
func (s Status) Front() Entry {
	if len(s.Table) == 0 {
		return Entry{}
	}

	return s.Table[0]
}
