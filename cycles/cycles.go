// SPDX-License-Identifier: MIT
package cycles

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/enigma/alphabet"
	"github.com/katalvlaran/enigma/internal/errkind"
)

// ErrNotPermutation indicates an input that is not a permutation of the alphabet.
var ErrNotPermutation = errkind.Kind(errkind.ErrConfiguration, "cycles: not a permutation")

// Decompose returns the cycles of perm, where perm[i] is the image of
// letter i. Fixed points are cycles of length 1.
//
// Implementation:
//   - Stage 1: walk i → perm[i] from every unvisited letter in alphabet
//     order, marking letters as visited.
//   - Stage 2: each walk starts at its smallest letter, so cycles come out
//     already in canonical rotation and sorted.
func Decompose(perm string) ([]string, error) {
	if !alphabet.IsPermutation(perm) {
		return nil, fmt.Errorf("Decompose(%q): %w", perm, ErrNotPermutation)
	}

	var (
		visited [alphabet.Size]bool
		out     []string
	)
	for start := 0; start < alphabet.Size; start++ {
		if visited[start] {
			continue
		}
		cycle := make([]byte, 0, alphabet.Size)
		for i := start; !visited[i]; i = alphabet.Index(perm[i]) {
			visited[i] = true
			cycle = append(cycle, alphabet.Letter(i))
		}
		out = append(out, string(cycle))
	}

	return out, nil
}

// Characteristic returns the cycle lengths, longest first.
func Characteristic(cycles []string) []int {
	lengths := make([]int, len(cycles))
	for i, c := range cycles {
		lengths[i] = len(c)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(lengths)))

	return lengths
}

// Compose returns the permutation that applies a, then b.
func Compose(a, b string) (string, error) {
	if !alphabet.IsPermutation(a) {
		return "", fmt.Errorf("Compose: first %q: %w", a, ErrNotPermutation)
	}
	if !alphabet.IsPermutation(b) {
		return "", fmt.Errorf("Compose: second %q: %w", b, ErrNotPermutation)
	}
	out := make([]byte, alphabet.Size)
	for i := range out {
		out[i] = b[alphabet.Index(a[i])]
	}

	return string(out), nil
}

// IsInvolution reports whether perm swaps letters in pairs with no fixed
// point. Non-permutations report false.
func IsInvolution(perm string) bool {
	cs, err := Decompose(perm)
	if err != nil {
		return false
	}
	for _, c := range cs {
		if len(c) != 2 {
			return false
		}
	}

	return true
}
