// SPDX-License-Identifier: MIT
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a JSON or YAML configuration file into a Partial.
func Load(path string) (Partial, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Partial{}, fmt.Errorf("Load(%s): %w", path, err)
	}
	p, err := Decode(data)
	if err != nil {
		return Partial{}, fmt.Errorf("Load(%s): %w", path, err)
	}

	return p, nil
}

// Decode parses a JSON or YAML document. Unknown keys are rejected; an
// empty document yields an empty Partial.
func Decode(data []byte) (Partial, error) {
	var p Partial
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return Partial{}, nil
		}

		return Partial{}, fmt.Errorf("Decode: %w: %w", ErrDecode, err)
	}

	return p, nil
}

// Encode renders a complete configuration as YAML.
func Encode(cfg Configuration) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg.Partial()); err != nil {
		return nil, fmt.Errorf("Encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("Encode: %w", err)
	}

	return buf.Bytes(), nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg Configuration) error {
	data, err := Encode(cfg)
	if err != nil {
		return fmt.Errorf("Save(%s): %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("Save(%s): %w", path, err)
	}

	return nil
}
