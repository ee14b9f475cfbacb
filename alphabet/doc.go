// SPDX-License-Identifier: MIT
// Package alphabet defines the fixed 26-symbol index space used by every
// wiring table, rotor, reflector and plugboard in the engine.
//
// Symbols are the ASCII upper-case letters 'A'..'Z' held as bytes. The
// alphabet is used only for indexing: Index maps a symbol to 0..25, Letter
// maps an index (taken modulo Size) back to a symbol.
//
// Usage:
//
//	i := alphabet.Index('C')         // 2
//	b := alphabet.Shift('Y', 3)      // 'B'
//	w := alphabet.Normalize("ekmf lg") // "EKMFLG"
//
// Complexity: every function is O(1) except Normalize and IsPermutation,
// which are O(len(s)).
package alphabet
