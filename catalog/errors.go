// SPDX-License-Identifier: MIT
package catalog

import "github.com/katalvlaran/enigma/internal/errkind"

var (
	// ErrUnknownModel indicates a model name outside the catalog.
	ErrUnknownModel = errkind.Kind(errkind.ErrConfiguration, "catalog: unknown model")

	// ErrUnknownRotor indicates a rotor type unknown by name or for a model.
	ErrUnknownRotor = errkind.Kind(errkind.ErrConfiguration, "catalog: unknown rotor")

	// ErrUnknownReflector indicates a reflector type unknown by name or for a model.
	ErrUnknownReflector = errkind.Kind(errkind.ErrConfiguration, "catalog: unknown reflector")
)
