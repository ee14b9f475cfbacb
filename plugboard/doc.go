// SPDX-License-Identifier: MIT
// Package plugboard implements the symmetric pre/post substitution layer
// (Steckerbrett) applied before the signal enters the entry wheel and after
// it leaves.
//
// The board is a 26-entry mapping that starts as the identity. Set(a, b)
// wires a↔b; the last write for a letter wins, and any previous partner of a
// or b falls back to itself so the mapping stays symmetric at all times.
// Unpaired letters are fixed points.
package plugboard

import "github.com/katalvlaran/enigma/internal/errkind"

// ErrInvalidLetter indicates a plug letter outside the alphabet.
var ErrInvalidLetter = errkind.Kind(errkind.ErrConfiguration, "plugboard: invalid letter")
