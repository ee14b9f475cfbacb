// SPDX-License-Identifier: MIT
package wiring

import "github.com/katalvlaran/enigma/internal/errkind"

var (
	// ErrMalformedWiring indicates a wiring string whose normalized form is
	// not 26 letters long or repeats a letter.
	ErrMalformedWiring = errkind.Kind(errkind.ErrConfiguration, "wiring: malformed wiring")

	// ErrOutOfRange indicates a slot index outside 0..25.
	ErrOutOfRange = errkind.Kind(errkind.ErrRange, "wiring: slot index out of range")
)
