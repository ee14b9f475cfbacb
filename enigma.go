// SPDX-License-Identifier: MIT
package enigma

import (
	"fmt"

	"github.com/katalvlaran/enigma/config"
	"github.com/katalvlaran/enigma/internal/errkind"
	"github.com/katalvlaran/enigma/simulator"
)

// Version of the module.
const Version = "0.3.0"

var (
	// ErrConfiguration is matched by every error describing a setup that
	// cannot be built: unknown model or rotor, malformed wiring, bad ring,
	// position or plugboard pair.
	ErrConfiguration = errkind.ErrConfiguration

	// ErrRange is matched by errors for slot indices outside 0..25.
	ErrRange = errkind.ErrRange
)

// Create returns a simulator with the fields set in p applied on top of the
// factory setup (or on top of simulator.WithConfig when given).
func Create(p config.Partial, opts ...simulator.Option) (*simulator.Simulator, error) {
	s, err := simulator.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("Create: %w", err)
	}
	if p.IsEmpty() {
		return s, nil
	}
	if err := s.SetConfig(p); err != nil {
		return nil, fmt.Errorf("Create: %w", err)
	}

	return s, nil
}

// Open reads a JSON or YAML configuration file and creates a simulator
// from it.
func Open(path string, opts ...simulator.Option) (*simulator.Simulator, error) {
	p, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("Open: %w", err)
	}

	return Create(p, opts...)
}
