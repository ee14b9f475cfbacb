// SPDX-License-Identifier: MIT
// Package catalog holds the historical wiring tables of the Enigma family as
// statically known lookup tables keyed by tagged enums.
//
// A rotor is identified by (Model, RotorType), a reflector by
// (Model, ReflectorType). Lookups never allocate and never fail loudly: they
// return (spec, false) for combinations the model did not ship with. Callers
// decide the policy (the generator degrades rotors and rejects reflectors).
//
// Model coverage:
//
//	EnigmaI           rotors I–V            reflectors A, B, C        ETW ABC…
//	M3Army            rotors I–V            reflectors B, C           ETW ABC…
//	M4Naval           rotors I–VIII, Beta, Gamma (stationary)
//	                                        reflectors ThinB, ThinC   ETW ABC…
//	CommercialEnigma  rotors I–III          reflector UKW             ETW QWERTZ…
//	GermanRailway     rotors I–III          reflector UKW             ETW QWERTZ…
//	SwissK            rotors I–III          reflector UKW             ETW QWERTZ…
//
// Enum values implement encoding.TextMarshaler/TextUnmarshaler, so
// configuration files decode straight into them.
package catalog
