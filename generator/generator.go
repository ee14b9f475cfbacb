// SPDX-License-Identifier: MIT
package generator

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/enigma/alphabet"
	"github.com/katalvlaran/enigma/catalog"
	"github.com/katalvlaran/enigma/internal/logging"
	"github.com/katalvlaran/enigma/rotor"
)

// fallbackNotches matches the single turnover a bare rotor carries.
const fallbackNotches = "A"

// Resolution is the tagged result of a rotor lookup.
type Resolution struct {
	// Rotor is never nil: either the catalog rotor or an identity rotor.
	Rotor *rotor.Rotor
	Model catalog.Model
	Type  catalog.RotorType
	// Fallback is true when Rotor is the identity substitute.
	Fallback bool
	// Err explains the fallback; nil when resolved.
	Err error
}

// Generator builds rotors and reflectors from a catalog.
type Generator struct {
	catalog catalog.Catalog
	logger  *log.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithCatalog replaces the historical tables. A nil catalog is ignored.
func WithCatalog(c catalog.Catalog) Option {
	return func(g *Generator) {
		if c != nil {
			g.catalog = c
		}
	}
}

// WithLogger sets the logger used for fallback reports. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// New returns a Generator over catalog.Historical unless overridden.
func New(opts ...Option) *Generator {
	g := &Generator{
		catalog: catalog.Historical(),
		logger:  logging.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Catalog returns the catalog the generator resolves against.
func (g *Generator) Catalog() catalog.Catalog { return g.catalog }

// Rotor builds the rotor (model, typ). Unknown combinations and broken
// catalog entries fall back to an identity rotor; see Resolution.
func (g *Generator) Rotor(model catalog.Model, typ catalog.RotorType) Resolution {
	res := Resolution{Model: model, Type: typ}

	spec, ok := g.catalog.Rotor(model, typ)
	if ok {
		var opts []rotor.Option
		if spec.Stationary {
			opts = append(opts, rotor.WithStationary())
		}
		r, err := rotor.New(typ.String(), spec.Wiring, spec.Notches, opts...)
		if err == nil {
			res.Rotor = r

			return res
		}
		res.Err = fmt.Errorf("Rotor(%s, %s): %w", model, typ, err)
	} else {
		res.Err = fmt.Errorf("Rotor(%s, %s): %w", model, typ, catalog.ErrUnknownRotor)
	}

	g.logger.Error("rotor falls back to identity wiring", "model", model, "rotor", typ, "err", res.Err)
	// Identity wiring is a permutation by definition.
	res.Rotor, _ = rotor.New(typ.String(), alphabet.Letters, fallbackNotches)
	res.Fallback = true

	return res
}

// Reflector builds the reflector (model, typ).
//
// Errors:
//   - catalog.ErrUnknownReflector: the model has no such reflector.
//   - wiring.ErrMalformedWiring: the catalog entry is broken.
func (g *Generator) Reflector(model catalog.Model, typ catalog.ReflectorType) (*rotor.Reflector, error) {
	spec, ok := g.catalog.Reflector(model, typ)
	if !ok {
		return nil, fmt.Errorf("Reflector(%s, %s): %w", model, typ, catalog.ErrUnknownReflector)
	}
	ref, err := rotor.NewReflector(typ.String(), spec.Wiring)
	if err != nil {
		return nil, fmt.Errorf("Reflector(%s, %s): %w", model, typ, err)
	}

	return ref, nil
}

// EntryWheel returns the entry-wheel order of model.
func (g *Generator) EntryWheel(model catalog.Model) string {
	return g.catalog.EntryWheel(model)
}
