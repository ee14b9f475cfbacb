// SPDX-License-Identifier: MIT
// Package generator is the factory that turns catalog entries into fresh
// rotor.Rotor and rotor.Reflector instances.
//
// The two lookups follow deliberately different failure policies:
//
//   - Rotor degrades. An unknown (model, type) yields an identity-wired
//     rotor, an error log line and a Resolution with Fallback set, so the
//     caller can detect a degraded machine without the build failing.
//   - Reflector fails. An unknown (model, type) returns an error matching
//     catalog.ErrUnknownReflector and errkind.ErrConfiguration.
//
// Every call returns a new instance; generators hold no per-machine state and
// may be shared by many simulators.
package generator
