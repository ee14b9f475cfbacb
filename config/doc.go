// SPDX-License-Identifier: MIT
// Package config models the machine configuration: model, reflector, the
// ordered rotor list with one ring and one start position per rotor, and the
// plugboard pairs.
//
// A Configuration is an immutable value. The only way to obtain one is
// Default or a Builder, and Build validates the whole value at once, so every
// Configuration in circulation is internally consistent:
//
//   - len(rotors) == len(rings) == len(positions) >= 1
//   - ring and position letters are alphabet letters
//   - plugboard pairs are two distinct letters, each letter used once
//   - model, reflector and rotors exist in the catalog for that model
//
// Partial is the wire shape of a configuration (all fields optional). It is
// what configuration files decode into and what Builder.Apply merges:
// only the fields that are set replace the base value.
//
// Files are read with Load/Decode and written with Save through
// gopkg.in/yaml.v3. JSON is a subset of YAML, so the same decoder reads both.
package config
