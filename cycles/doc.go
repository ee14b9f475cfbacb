// SPDX-License-Identifier: MIT
// Package cycles decomposes letter permutations into disjoint cycles.
//
// A machine state is a permutation of the alphabet (Simulator.Permutation).
// Its cycle structure, and that of products of such permutations, is what
// the classic cryptanalysis of the Enigma was built on: the multiset of
// cycle lengths does not depend on the plugboard.
//
// Functions:
//
//   - Decompose(perm) lists the cycles, each rotated to start at its
//     smallest letter, sorted by that letter.
//   - Characteristic(cycles) returns the cycle lengths, longest first.
//   - Compose(a, b) returns the permutation "a, then b".
//   - IsInvolution(perm) reports whether every cycle has length 2.
//
// Errors:
//
//	ErrNotPermutation - input is not 26 distinct letters.
//
// Complexity: every function is O(26).
package cycles
