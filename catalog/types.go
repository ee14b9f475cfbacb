// SPDX-License-Identifier: MIT
package catalog

import (
	"fmt"
	"strings"
)

// Model identifies a machine variant. The zero value is invalid.
type Model int

// Machine variants.
const (
	CommercialEnigma Model = iota + 1
	GermanRailway
	SwissK
	EnigmaI
	M3Army
	M4Naval
)

var modelNames = [...]string{
	CommercialEnigma: "CommercialEnigma",
	GermanRailway:    "GermanRailway",
	SwissK:           "SwissK",
	EnigmaI:          "EnigmaI",
	M3Army:           "M3Army",
	M4Naval:          "M4Naval",
}

// String returns the canonical model name.
func (m Model) String() string { return enumName(modelNames[:], int(m)) }

// MarshalText implements encoding.TextMarshaler.
func (m Model) MarshalText() ([]byte, error) { return marshalEnum(m.String(), int(m), ErrUnknownModel) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Model) UnmarshalText(text []byte) error {
	v, err := ParseModel(string(text))
	if err != nil {
		return err
	}
	*m = v

	return nil
}

// ParseModel resolves a model name, ignoring case.
func ParseModel(s string) (Model, error) {
	i, err := parseEnum(modelNames[:], s, ErrUnknownModel)

	return Model(i), err
}

// RotorType identifies a rotor by its historical label. The zero value is invalid.
type RotorType int

// Rotor labels.
const (
	RotorI RotorType = iota + 1
	RotorII
	RotorIII
	RotorIV
	RotorV
	RotorVI
	RotorVII
	RotorVIII
	RotorBeta
	RotorGamma
)

var rotorNames = [...]string{
	RotorI:     "I",
	RotorII:    "II",
	RotorIII:   "III",
	RotorIV:    "IV",
	RotorV:     "V",
	RotorVI:    "VI",
	RotorVII:   "VII",
	RotorVIII:  "VIII",
	RotorBeta:  "Beta",
	RotorGamma: "Gamma",
}

// String returns the historical label.
func (t RotorType) String() string { return enumName(rotorNames[:], int(t)) }

// MarshalText implements encoding.TextMarshaler.
func (t RotorType) MarshalText() ([]byte, error) {
	return marshalEnum(t.String(), int(t), ErrUnknownRotor)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *RotorType) UnmarshalText(text []byte) error {
	v, err := ParseRotorType(string(text))
	if err != nil {
		return err
	}
	*t = v

	return nil
}

// ParseRotorType resolves a rotor label, ignoring case.
func ParseRotorType(s string) (RotorType, error) {
	i, err := parseEnum(rotorNames[:], s, ErrUnknownRotor)

	return RotorType(i), err
}

// ReflectorType identifies a reflector (Umkehrwalze). The zero value is invalid.
type ReflectorType int

// Reflector labels.
const (
	ReflectorA ReflectorType = iota + 1
	ReflectorB
	ReflectorC
	ReflectorThinB
	ReflectorThinC
	ReflectorUKW
)

var reflectorNames = [...]string{
	ReflectorA:     "A",
	ReflectorB:     "B",
	ReflectorC:     "C",
	ReflectorThinB: "ThinB",
	ReflectorThinC: "ThinC",
	ReflectorUKW:   "UKW",
}

// String returns the reflector label.
func (t ReflectorType) String() string { return enumName(reflectorNames[:], int(t)) }

// MarshalText implements encoding.TextMarshaler.
func (t ReflectorType) MarshalText() ([]byte, error) {
	return marshalEnum(t.String(), int(t), ErrUnknownReflector)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ReflectorType) UnmarshalText(text []byte) error {
	v, err := ParseReflectorType(string(text))
	if err != nil {
		return err
	}
	*t = v

	return nil
}

// ParseReflectorType resolves a reflector label, ignoring case.
func ParseReflectorType(s string) (ReflectorType, error) {
	i, err := parseEnum(reflectorNames[:], s, ErrUnknownReflector)

	return ReflectorType(i), err
}

// enumName returns names[i], or a placeholder for out-of-range values.
func enumName(names []string, i int) string {
	if i <= 0 || i >= len(names) {
		return fmt.Sprintf("Unknown(%d)", i)
	}

	return names[i]
}

func marshalEnum(name string, i int, sentinel error) ([]byte, error) {
	if strings.HasPrefix(name, "Unknown(") {
		return nil, fmt.Errorf("MarshalText(%d): %w", i, sentinel)
	}

	return []byte(name), nil
}

func parseEnum(names []string, s string, sentinel error) (int, error) {
	s = strings.TrimSpace(s)
	for i := 1; i < len(names); i++ {
		if strings.EqualFold(names[i], s) {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, sentinel)
}
