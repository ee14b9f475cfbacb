// SPDX-License-Identifier: MIT
package rotor

import "github.com/katalvlaran/enigma/internal/errkind"

var (
	// ErrInvalidNotch indicates a notch letter outside the alphabet.
	ErrInvalidNotch = errkind.Kind(errkind.ErrConfiguration, "rotor: invalid notch letter")

	// ErrInvalidRing indicates a ring letter outside the alphabet.
	ErrInvalidRing = errkind.Kind(errkind.ErrConfiguration, "rotor: invalid ring letter")

	// ErrPositionUnreachable indicates Reset never saw the requested window letter.
	ErrPositionUnreachable = errkind.Kind(errkind.ErrConfiguration, "rotor: position not reachable")
)
