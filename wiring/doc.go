// SPDX-License-Identifier: MIT
// Package wiring implements the rotating substitution table shared by rotors
// and reflectors.
//
// A Table is an ordered list of 26 slots. Slot i pairs the wired contact
// (In) with the entry-side contact (Out); both endpoints are shifted by the
// table's offset modulo 26 whenever Generate is called. Rotation moves the
// front slot to the back, which is how a rotor advances one window letter.
//
// The signal path never indexes letters directly: it carries a slot
// position from stage to stage.
//
//   - Forward(p)  ("inout") finds the slot whose Out equals slot p's In.
//   - Backward(p) ("outin") finds the slot whose In equals slot p's Out.
//
// Both return NotFound (-1) instead of an error; with a true bijection that
// never happens, and the simulator turns it into an empty output.
//
// Errors:
//
//	ErrMalformedWiring - wiring is not a permutation of the alphabet.
//	ErrOutOfRange      - slot index outside 0..25 passed to Entry.
//
// Complexity: construction and Generate are O(26); Forward/Backward are
// O(26) linear searches; Rotate is O(26) (array shift).
package wiring
