// SPDX-License-Identifier: MIT
package config

import "github.com/katalvlaran/enigma/internal/errkind"

var (
	// ErrNoRotors indicates an empty rotor list.
	ErrNoRotors = errkind.Kind(errkind.ErrConfiguration, "config: at least one rotor is required")

	// ErrLengthMismatch indicates rotors, rings and positions differ in length.
	ErrLengthMismatch = errkind.Kind(errkind.ErrConfiguration, "config: rotors, rings and positions differ in length")

	// ErrInvalidRing indicates a ring setting that is not a single letter.
	ErrInvalidRing = errkind.Kind(errkind.ErrConfiguration, "config: invalid ring setting")

	// ErrInvalidPosition indicates a start position that is not a single letter.
	ErrInvalidPosition = errkind.Kind(errkind.ErrConfiguration, "config: invalid start position")

	// ErrInvalidPlug indicates a plugboard pair that is not two distinct letters.
	ErrInvalidPlug = errkind.Kind(errkind.ErrConfiguration, "config: invalid plugboard pair")

	// ErrDuplicatePlug indicates a letter used by more than one plugboard pair.
	ErrDuplicatePlug = errkind.Kind(errkind.ErrConfiguration, "config: letter plugged twice")

	// ErrDecode indicates a configuration document that could not be parsed.
	ErrDecode = errkind.Kind(errkind.ErrConfiguration, "config: cannot decode configuration")
)
