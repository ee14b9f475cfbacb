// SPDX-License-Identifier: MIT
package plugboard

import (
	"fmt"

	"github.com/katalvlaran/enigma/alphabet"
)

// Plugboard is a symmetric letter substitution.
type Plugboard struct {
	table [alphabet.Size]byte
}

// New returns an identity plugboard.
func New() *Plugboard {
	p := &Plugboard{}
	p.Reset()

	return p
}

// Reset clears every pair.
func (p *Plugboard) Reset() {
	for i := range p.table {
		p.table[i] = alphabet.Letter(i)
	}
}

// Set wires a↔b. Earlier pairs involving a or b are undone first.
// Set(a, a) simply unplugs a.
//
// Errors:
//   - ErrInvalidLetter: a or b is not an alphabet letter.
func (p *Plugboard) Set(a, b byte) error {
	ia, ib := alphabet.Index(a), alphabet.Index(b)
	if ia == alphabet.NotFound || ib == alphabet.NotFound {
		return fmt.Errorf("Set(%q, %q): %w", a, b, ErrInvalidLetter)
	}
	p.unplug(ia)
	p.unplug(ib)
	p.table[ia] = b
	p.table[ib] = a

	return nil
}

// unplug restores idx and its current partner to identity.
func (p *Plugboard) unplug(idx int) {
	partner := alphabet.Index(p.table[idx])
	p.table[partner] = alphabet.Letter(partner)
	p.table[idx] = alphabet.Letter(idx)
}

// Convert returns the partner of b, or b when it is unpaired or not a letter.
func (p *Plugboard) Convert(b byte) byte {
	idx := alphabet.Index(b)
	if idx == alphabet.NotFound {
		return b
	}

	return p.table[idx]
}

// Status returns the non-identity part of the mapping, both directions.
func (p *Plugboard) Status() map[string]string {
	out := make(map[string]string)
	for i, b := range p.table {
		if b != alphabet.Letter(i) {
			out[string(alphabet.Letter(i))] = string(b)
		}
	}

	return out
}

// Pairs returns each wired pair once as a two-letter string, lower letter
// first, in alphabet order.
func (p *Plugboard) Pairs() []string {
	var pairs []string
	for i, b := range p.table {
		if j := alphabet.Index(b); j > i {
			pairs = append(pairs, string([]byte{alphabet.Letter(i), b}))
		}
	}

	return pairs
}
