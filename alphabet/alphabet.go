// SPDX-License-Identifier: MIT
package alphabet

import "strings"

// Letters is the canonical symbol order.
const Letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Size is the number of symbols in the alphabet.
const Size = len(Letters)

// NotFound is returned by index searches that find no symbol.
const NotFound = -1

// Index returns the position of b in Letters, or NotFound.
func Index(b byte) int {
	if b < 'A' || b > 'Z' {
		return NotFound
	}

	return int(b - 'A')
}

// Valid reports whether b is a symbol of the alphabet.
func Valid(b byte) bool { return Index(b) != NotFound }

// Letter returns the symbol at index i modulo Size. Negative indices wrap.
func Letter(i int) byte {
	return Letters[Mod(i)]
}

// Mod reduces i into 0..Size-1.
func Mod(i int) int {
	i %= Size
	if i < 0 {
		i += Size
	}

	return i
}

// Shift moves symbol b by offset positions around the alphabet.
// A byte outside the alphabet is returned unchanged.
func Shift(b byte, offset int) byte {
	i := Index(b)
	if i == NotFound {
		return b
	}

	return Letter(i + offset)
}

// Upper folds an ASCII lower-case letter to upper case.
func Upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}

	return b
}

// Normalize upper-cases s and drops every byte that is not a letter.
// Grouped notation such as "EKMFL GDQVZ" therefore collapses to "EKMFLGDQVZ".
func Normalize(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		b := Upper(s[i])
		if Valid(b) {
			sb.WriteByte(b)
		}
	}

	return sb.String()
}

// IsPermutation reports whether s holds every symbol exactly once.
func IsPermutation(s string) bool {
	if len(s) != Size {
		return false
	}
	var seen [Size]bool
	for i := 0; i < len(s); i++ {
		idx := Index(s[i])
		if idx == NotFound || seen[idx] {
			return false
		}
		seen[idx] = true
	}

	return true
}
