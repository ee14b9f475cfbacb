// SPDX-License-Identifier: MIT
// Package simulator wires plugboard, entry wheel, rotor stack and reflector
// into one machine and drives the signal path for each key press.
//
// A Simulator is always Configured: New builds every component from the
// default (or given) configuration, and SetConfig/UpdateConfig replace them
// all at once or not at all.
//
// Signal path for one key (Input):
//
//	key ─▶ plugboard ─▶ entry wheel ─▶ rotors right→left (Forward)
//	    ─▶ reflector (Forward) ─▶ rotors left→right (Backward)
//	    ─▶ entry wheel ─▶ plugboard ─▶ output
//
// Input only reads state; Rotate steps the rightmost rotor and carries the
// turnover leftwards while each Step reports a notch. Press is Rotate
// followed by Input, which is what a real key press does. Because every
// stage is a bijection and the reflector is an involution, pressing the
// cipher text on an identically configured machine yields the plain text.
//
// Input never fails: a key outside the entry wheel (or a broken table)
// produces an empty Output with the partial trail recorded so far.
//
// Errors:
//
//	config errors          - SetConfig validation failures (errkind.ErrConfiguration).
//	catalog.ErrUnknownReflector - the generator has no such reflector.
//	wiring.ErrMalformedWiring   - SetETW order is not a permutation.
//
// A Simulator is not safe for concurrent use; callers serialize calls.
package simulator
