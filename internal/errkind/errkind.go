// SPDX-License-Identifier: MIT
// Package errkind holds the error kinds shared by every engine package.
//
// Each package keeps its own sentinel errors (see wiring/errors.go,
// config/errors.go, ...). A sentinel is built with Kind so that it matches
// both itself and its kind under errors.Is:
//
//	var ErrMalformedWiring = errkind.Kind(errkind.ErrConfiguration, "wiring: malformed wiring")
//
//	errors.Is(err, wiring.ErrMalformedWiring)   // true
//	errors.Is(err, errkind.ErrConfiguration)    // true
package errkind

import "errors"

var (
	// ErrConfiguration classifies every configuration-time failure:
	// malformed wiring, invalid rotor/ring/position reference, unreachable
	// reset position, unknown reflector.
	ErrConfiguration = errors.New("enigma: configuration error")

	// ErrRange classifies out-of-bounds slot indices.
	ErrRange = errors.New("enigma: range error")
)

// kindError is a sentinel that also unwraps to its kind.
type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

// Kind returns a new sentinel error with message msg classified as kind.
func Kind(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}
