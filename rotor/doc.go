// SPDX-License-Identifier: MIT
// Package rotor specializes wiring.Table into the two moving parts of the
// signal path: the stepping Rotor and the fixed Reflector.
//
// Rotor adds a notch (turnover) letter set and a window. Step rotates the
// slot order by one and reports whether the letter that was in the window
// before the step is a turnover letter; the simulator uses that signal to
// drive the next rotor to the left. Reset selects a ring setting and winds
// the rotor until a given letter shows in the window.
//
// Reflector never steps. Historical reflectors are involutions (X↔Y, no
// fixed points); IsInvolution checks that property but construction does
// not enforce it.
//
// Errors:
//
//	ErrInvalidNotch        - notch letter outside the alphabet.
//	ErrInvalidRing         - ring letter outside the alphabet.
//	ErrPositionUnreachable - Reset exhausted 26 steps without the window letter.
package rotor
