// SPDX-License-Identifier: MIT
// Package enigma simulates the Enigma family of rotor cipher machines.
//
// The signal path is modelled stage by stage, the way the electrical
// contacts of the real machines are wired:
//
//	keyboard → plugboard → entry wheel → rotors → reflector → rotors → entry wheel → plugboard → lamp
//
// Every stage is a bijection on 26 letters and the reflector is an
// involution, so a machine is its own inverse: typing the cipher text on an
// identically configured machine gives back the plain text.
//
// Packages:
//
//	alphabet/  - the 26-letter index space and text normalization
//	wiring/    - rotatable substitution table shared by rotors and reflectors
//	rotor/     - stepping Rotor with turnover notches, fixed Reflector
//	plugboard/ - symmetric letter pairs
//	catalog/   - historical wiring tables per model (Enigma I, M3, M4, K, ...)
//	generator/ - builds rotors and reflectors from a catalog
//	config/    - immutable Configuration, validating Builder, YAML/JSON files
//	simulator/ - the machine: Rotate, Input, Press, Type, Status
//	cycles/    - cycle decomposition of machine permutations
//	render/    - terminal wiring diagram
//
// Quick start:
//
//	m, err := enigma.Create(config.Partial{Position: []string{"A", "B", "C"}})
//	if err != nil {
//		return err
//	}
//	cipher := m.Type("ATTACK AT DAWN")
//
// Errors from every package match one of two kinds with errors.Is:
// ErrConfiguration (a setup that cannot be built) or ErrRange (an index
// outside the alphabet).
package enigma
