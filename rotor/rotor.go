// SPDX-License-Identifier: MIT
package rotor

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/enigma/alphabet"
	"github.com/katalvlaran/enigma/wiring"
)

// Rotor is a stepping wiring table with a turnover notch set.
type Rotor struct {
	*wiring.Table

	notches    [alphabet.Size]bool
	stationary bool
}

// Option configures a Rotor at construction.
type Option func(*Rotor)

// WithStationary marks the rotor as one that never steps (M4 Greek wheels).
func WithStationary() Option {
	return func(r *Rotor) { r.stationary = true }
}

// Status extends the table snapshot with the window letter and notches.
type Status struct {
	wiring.Status
	Window     string `json:"window"`
	Notches    string `json:"notches"`
	Stationary bool   `json:"stationary,omitempty"`
}

// New builds a Rotor of catalog type typ from wiring and a notch letter set.
//
// Errors:
//   - wiring.ErrMalformedWiring: wiring is not a permutation.
//   - ErrInvalidNotch: a notch byte is not an alphabet letter.
func New(typ, wiringStr, notches string, opts ...Option) (*Rotor, error) {
	tbl, err := wiring.New("Rotor", typ, wiringStr)
	if err != nil {
		return nil, err
	}

	r := &Rotor{Table: tbl}
	for i := 0; i < len(notches); i++ {
		idx := alphabet.Index(alphabet.Upper(notches[i]))
		if idx == alphabet.NotFound {
			return nil, fmt.Errorf("Rotor(%s): notch %q: %w", typ, notches[i], ErrInvalidNotch)
		}
		r.notches[idx] = true
	}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Step advances the rotor one position and reports turnover: true iff the
// window letter before the step is in the notch set. A stationary rotor
// neither moves nor turns over.
func (r *Rotor) Step() bool {
	if r.stationary {
		return false
	}
	front := r.Rotate()

	return r.notches[alphabet.Index(front.Out)]
}

// Reset applies ring setting ring and winds the rotor until position shows
// in the window.
//
// Implementation:
//   - Stage 1: offset = Index(ring); regenerate the table at that offset.
//   - Stage 2: rotate (without turnover) until Front().Out == position,
//     at most 26 times.
//
// Errors:
//   - ErrInvalidRing: ring is not an alphabet letter.
//   - ErrPositionUnreachable: position never reached the window.
func (r *Rotor) Reset(position, ring byte) error {
	offset := alphabet.Index(ring)
	if offset == alphabet.NotFound {
		return fmt.Errorf("%s: Reset(%q, %q): %w", r.FullName(), position, ring, ErrInvalidRing)
	}
	r.Generate(offset)
	for i := 0; i < alphabet.Size; i++ {
		if r.Front().Out == position {
			return nil
		}
		r.Rotate()
	}

	return fmt.Errorf("%s: Reset(%q, %q): %w", r.FullName(), position, ring, ErrPositionUnreachable)
}

// Window returns the letter currently facing the window.
func (r *Rotor) Window() byte { return r.Front().Out }

// Notches returns the turnover letters in alphabet order.
func (r *Rotor) Notches() string {
	var sb strings.Builder
	for i, ok := range r.notches {
		if ok {
			sb.WriteByte(alphabet.Letter(i))
		}
	}

	return sb.String()
}

// IsNotch reports whether b is a turnover letter of the rotor.
func (r *Rotor) IsNotch(b byte) bool {
	idx := alphabet.Index(b)

	return idx != alphabet.NotFound && r.notches[idx]
}

// Stationary reports whether the rotor never steps.
func (r *Rotor) Stationary() bool { return r.stationary }

// RotorStatus returns the table snapshot plus window and notches.
func (r *Rotor) RotorStatus() Status {
	return Status{
		Status:     r.Status(),
		Window:     string(r.Window()),
		Notches:    r.Notches(),
		Stationary: r.stationary,
	}
}
