// SPDX-License-Identifier: MIT
package simulator

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/enigma/alphabet"
	"github.com/katalvlaran/enigma/config"
	"github.com/katalvlaran/enigma/generator"
	"github.com/katalvlaran/enigma/internal/logging"
	"github.com/katalvlaran/enigma/plugboard"
	"github.com/katalvlaran/enigma/rotor"
	"github.com/katalvlaran/enigma/wiring"
)

// Simulator is one configured rotor machine.
type Simulator struct {
	cfg    config.Configuration
	gen    *generator.Generator
	logger *log.Logger

	plugboard   *plugboard.Plugboard
	rotors      []*rotor.Rotor // leftmost first
	reflector   *rotor.Reflector
	etw         string
	customETW   bool
	resolutions []generator.Resolution
}

// New returns a configured Simulator.
//
// Errors: anything UpdateConfig returns for the starting configuration.
func New(opts ...Option) (*Simulator, error) {
	s := &Simulator{cfg: config.Default()}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.Default()
	}
	if s.gen == nil {
		s.gen = generator.New(generator.WithLogger(s.logger))
	}
	if err := s.UpdateConfig(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	return s, nil
}

// SetConfig merges the fields set in p into the current configuration,
// validates the result against the generator's catalog and rebuilds the
// machine. On error nothing changes.
func (s *Simulator) SetConfig(p config.Partial) error {
	cfg, err := config.NewBuilder(s.cfg).
		Catalog(s.gen.Catalog()).
		Apply(p).
		Build()
	if err != nil {
		return fmt.Errorf("SetConfig: %w", err)
	}

	return s.apply(cfg)
}

// UpdateConfig rebuilds every component from the stored configuration.
//
// Implementation:
//   - Stage 1: build plugboard, rotors (reset to position and ring),
//     reflector and entry wheel into locals.
//   - Stage 2: commit all of them; a failure in stage 1 leaves the
//     previous machine untouched.
func (s *Simulator) UpdateConfig() error {
	return s.apply(s.cfg)
}

func (s *Simulator) apply(cfg config.Configuration) error {
	pb := plugboard.New()
	for _, pair := range cfg.Plugboard() {
		if err := pb.Set(pair[0], pair[1]); err != nil {
			return fmt.Errorf("UpdateConfig: plugboard %s: %w", pair, err)
		}
	}

	types := cfg.Rotors()
	rotors := make([]*rotor.Rotor, len(types))
	resolutions := make([]generator.Resolution, len(types))
	for i, typ := range types {
		res := s.gen.Rotor(cfg.Model(), typ)
		if err := res.Rotor.Reset(cfg.Position(i), cfg.Ring(i)); err != nil {
			return fmt.Errorf("UpdateConfig: rotors[%d]: %w", i, err)
		}
		rotors[i], resolutions[i] = res.Rotor, res
	}

	ref, err := s.gen.Reflector(cfg.Model(), cfg.Reflector())
	if err != nil {
		return fmt.Errorf("UpdateConfig: %w", err)
	}

	etw := s.etw
	if !s.customETW {
		etw = s.gen.EntryWheel(cfg.Model())
	}

	s.cfg = cfg
	s.plugboard = pb
	s.rotors = rotors
	s.resolutions = resolutions
	s.reflector = ref
	s.etw = etw
	s.logger.Debug("configuration applied", "config", cfg.String(), "etw", etw, "degraded", s.Degraded())

	return nil
}

// Config returns the configuration currently applied.
func (s *Simulator) Config() config.Configuration { return s.cfg }

// ETW returns the entry-wheel contact order.
func (s *Simulator) ETW() string { return s.etw }

// SetETW replaces the entry-wheel order. The order survives later
// reconfiguration; the model default is no longer used.
//
// Errors:
//   - wiring.ErrMalformedWiring: order is not a permutation of the alphabet.
func (s *Simulator) SetETW(order string) error {
	order = alphabet.Normalize(order)
	if !alphabet.IsPermutation(order) {
		return fmt.Errorf("SetETW(%q): %w", order, wiring.ErrMalformedWiring)
	}
	s.etw = order
	s.customETW = true

	return nil
}

// Rotor returns rotor i (0 = leftmost).
func (s *Simulator) Rotor(i int) (*rotor.Rotor, bool) {
	if i < 0 || i >= len(s.rotors) {
		return nil, false
	}

	return s.rotors[i], true
}

// Resolutions returns how each rotor was resolved, leftmost first.
func (s *Simulator) Resolutions() []generator.Resolution {
	return append([]generator.Resolution(nil), s.resolutions...)
}

// Degraded reports whether any rotor is an identity fallback.
func (s *Simulator) Degraded() bool {
	for _, r := range s.resolutions {
		if r.Fallback {
			return true
		}
	}

	return false
}

// Windows returns the window letters, leftmost first.
func (s *Simulator) Windows() string {
	out := make([]byte, len(s.rotors))
	for i, r := range s.rotors {
		out[i] = r.Window()
	}

	return string(out)
}

// Status returns a snapshot of every component. It does not mutate state.
func (s *Simulator) Status() Status {
	rotors := make([]rotor.Status, len(s.rotors))
	for i, r := range s.rotors {
		rotors[i] = r.RotorStatus()
	}

	return Status{
		Plugboard: s.plugboard.Status(),
		Rotors:    rotors,
		Reflector: s.reflector.Status(),
		ETW:       s.etw,
		Windows:   s.Windows(),
	}
}
