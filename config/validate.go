// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/enigma/alphabet"
	"github.com/katalvlaran/enigma/catalog"
)

// Validate checks a configuration against c. It does not mutate cfg.
// See Builder.Build for the error order.
func Validate(cfg Configuration, c catalog.Catalog) error {
	if _, err := catalog.ParseModel(cfg.model.String()); err != nil {
		return fmt.Errorf("Validate: model: %w", err)
	}

	if len(cfg.rotors) == 0 {
		return fmt.Errorf("Validate: %w", ErrNoRotors)
	}
	if len(cfg.rings) != len(cfg.rotors) || len(cfg.positions) != len(cfg.rotors) {
		return fmt.Errorf("Validate: rotors=%d rings=%d positions=%d: %w",
			len(cfg.rotors), len(cfg.rings), len(cfg.positions), ErrLengthMismatch)
	}
	for i := 0; i < len(cfg.rotors); i++ {
		if !alphabet.Valid(cfg.rings[i]) {
			return fmt.Errorf("Validate: rings[%d]=%q: %w", i, cfg.rings[i], ErrInvalidRing)
		}
		if !alphabet.Valid(cfg.positions[i]) {
			return fmt.Errorf("Validate: position[%d]=%q: %w", i, cfg.positions[i], ErrInvalidPosition)
		}
	}

	if _, err := normalizePlugboard(cfg.plugboard); err != nil {
		return err
	}

	if _, ok := c.Reflector(cfg.model, cfg.reflector); !ok {
		return fmt.Errorf("Validate: reflector %s for %s: %w", cfg.reflector, cfg.model, catalog.ErrUnknownReflector)
	}
	for i, r := range cfg.rotors {
		if _, ok := c.Rotor(cfg.model, r); !ok {
			return fmt.Errorf("Validate: rotors[%d]=%s for %s: %w", i, r, cfg.model, catalog.ErrUnknownRotor)
		}
	}

	return nil
}

// normalizePlugboard upper-cases pairs and rejects malformed or
// overlapping ones.
func normalizePlugboard(pairs []string) ([]string, error) {
	out := make([]string, 0, len(pairs))
	used := make(map[byte]string, 2*len(pairs))
	for i, raw := range pairs {
		pair := strings.ToUpper(strings.TrimSpace(raw))
		if len(pair) != 2 || !alphabet.Valid(pair[0]) || !alphabet.Valid(pair[1]) || pair[0] == pair[1] {
			return nil, fmt.Errorf("Validate: plugboard[%d]=%q: %w", i, raw, ErrInvalidPlug)
		}
		for j := 0; j < 2; j++ {
			if prev, ok := used[pair[j]]; ok {
				return nil, fmt.Errorf("Validate: plugboard[%d]=%q: %c already in %q: %w", i, raw, pair[j], prev, ErrDuplicatePlug)
			}
			used[pair[j]] = pair
		}
		out = append(out, pair)
	}

	return out, nil
}
