// SPDX-License-Identifier: MIT
package simulator_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/enigma/catalog"
	"github.com/katalvlaran/enigma/config"
	"github.com/katalvlaran/enigma/cycles"
	"github.com/katalvlaran/enigma/generator"
	"github.com/katalvlaran/enigma/internal/errkind"
	"github.com/katalvlaran/enigma/internal/logging"
	"github.com/katalvlaran/enigma/simulator"
	"github.com/katalvlaran/enigma/wiring"
)

const qwertz = "QWERTZUIOASDFGHJKPYXCVBNML"

func ptr[T any](v T) *T { return &v }

// newSim builds a simulator from overrides applied to the default setup.
func newSim(t *testing.T, p config.Partial, opts ...simulator.Option) *simulator.Simulator {
	t.Helper()
	cfg, err := config.NewBuilder(config.Default()).Apply(p).Build()
	require.NoError(t, err)
	opts = append([]simulator.Option{simulator.WithConfig(cfg), simulator.WithLogger(logging.Discard())}, opts...)
	s, err := simulator.New(opts...)
	require.NoError(t, err)

	return s
}

func enigmaIAAA() config.Partial {
	return config.Partial{
		Reflector: ptr(catalog.ReflectorB),
		Rotors:    []catalog.RotorType{catalog.RotorI, catalog.RotorII, catalog.RotorIII},
		Rings:     []string{"A", "A", "A"},
		Position:  []string{"A", "A", "A"},
		Plugboard: []string{},
	}
}

func TestNew_Default(t *testing.T) {
	s, err := simulator.New(simulator.WithLogger(logging.Discard()))
	require.NoError(t, err)

	assert.True(t, s.Config().Equal(config.Default()))
	assert.Equal(t, "EHS", s.Windows())
	assert.Equal(t, "ABCDEFGHIJKLMNOPQRSTUVWXYZ", s.ETW())
	assert.False(t, s.Degraded())
	assert.Len(t, s.Resolutions(), 3)
}

// TestInput_Regression pins the trail of the first key on the default machine.
func TestInput_Regression(t *testing.T) {
	s := newSim(t, config.Partial{})
	s.Rotate()
	assert.Equal(t, "EHT", s.Windows())

	res := s.Input('A')
	assert.Equal(t, "A", res.Input)
	assert.Equal(t, "B", res.Output)
	assert.Equal(t, []int{0, 15, 16, 15, 2, 9, 19, 1}, res.Positions)
	assert.Equal(t, "AIXTCGQM", res.Letters)
	assert.Equal(t, "A>I>X>T>C>G>Q>M>B", res.Trail())
	assert.True(t, res.OK())
}

func TestInput_PureRead(t *testing.T) {
	s := newSim(t, config.Partial{})
	a := s.Input('A')
	b := s.Input('a')
	assert.Equal(t, a, b, "Input neither steps nor depends on case")
	assert.Equal(t, "EHS", s.Windows())
}

func TestInput_InvalidKey(t *testing.T) {
	s := newSim(t, config.Partial{})
	res := s.Input('1')
	assert.Equal(t, "", res.Output)
	assert.False(t, res.OK())
	assert.Empty(t, res.Positions)
	assert.Equal(t, "", res.Trail())
}

func TestType_Vectors(t *testing.T) {
	cases := []struct {
		name  string
		p     config.Partial
		plain string
		want  string
	}{
		{"default", config.Partial{}, "HELLOWORLD", "WXECLVTJNP"},
		{"I II III AAA", enigmaIAAA(), "AAAAA", "BDZGO"},
		{"I II III AAA hello", enigmaIAAA(), "hello, world", "ILBDAAMTAZ"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, newSim(t, tc.p).Type(tc.plain))
		})
	}
}

// TestType_M4MatchesM3 checks that the thin reflector with Beta at A equals
// reflector B on a three-rotor machine.
func TestType_M4MatchesM3(t *testing.T) {
	m4 := newSim(t, config.Partial{
		Model:     ptr(catalog.M4Naval),
		Reflector: ptr(catalog.ReflectorThinB),
		Rotors:    []catalog.RotorType{catalog.RotorBeta, catalog.RotorI, catalog.RotorII, catalog.RotorIII},
		Rings:     []string{"A", "A", "A", "A"},
		Position:  []string{"A", "A", "A", "A"},
		Plugboard: []string{},
	})
	p := enigmaIAAA()
	p.Model = ptr(catalog.M3Army)
	m3 := newSim(t, p)

	const text = "THEQUICKBROWNFOX"
	got := m4.Type(text)
	assert.Equal(t, "OPCILLAZFXLQTDNL", got)
	assert.Equal(t, got, m3.Type(text))
	assert.Equal(t, "AAAQ", m4.Windows(), "Beta never steps")
}

func TestType_SelfReciprocal(t *testing.T) {
	cases := []struct {
		name string
		p    config.Partial
	}{
		{"default", config.Partial{}},
		{"I II III", enigmaIAAA()},
		{"railway qwertz", config.Partial{
			Model:     ptr(catalog.GermanRailway),
			Reflector: ptr(catalog.ReflectorUKW),
			Rotors:    []catalog.RotorType{catalog.RotorI, catalog.RotorII, catalog.RotorIII},
			Rings:     []string{"A", "B", "C"},
			Position:  []string{"X", "Y", "Z"},
			Plugboard: []string{},
		}},
		{"m4 plugged", config.Partial{
			Model:     ptr(catalog.M4Naval),
			Reflector: ptr(catalog.ReflectorThinC),
			Rotors:    []catalog.RotorType{catalog.RotorGamma, catalog.RotorVI, catalog.RotorVII, catalog.RotorVIII},
			Rings:     []string{"C", "D", "E", "F"},
			Position:  []string{"Q", "Z", "Z", "M"},
			Plugboard: []string{"AQ", "BW", "LN", "TX"},
		}},
		{"single rotor", config.Partial{
			Reflector: ptr(catalog.ReflectorA),
			Rotors:    []catalog.RotorType{catalog.RotorIV},
			Rings:     []string{"K"},
			Position:  []string{"J"},
		}},
	}
	const plain = "ATTACKATDAWNXTHEQUICKBROWNFOXJUMPSOVERTHELAZYDOG"
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cipher := newSim(t, tc.p).Type(plain)
			require.Len(t, cipher, len(plain))
			assert.Equal(t, plain, newSim(t, tc.p).Type(cipher))
			for i := range plain {
				assert.NotEqual(t, plain[i], cipher[i], "a letter never encrypts to itself")
			}
		})
	}
}

func TestType_RailwayVector(t *testing.T) {
	s := newSim(t, config.Partial{
		Model:     ptr(catalog.GermanRailway),
		Reflector: ptr(catalog.ReflectorUKW),
		Rotors:    []catalog.RotorType{catalog.RotorI, catalog.RotorII, catalog.RotorIII},
		Rings:     []string{"A", "B", "C"},
		Position:  []string{"X", "Y", "Z"},
		Plugboard: []string{},
	})
	assert.Equal(t, qwertz, s.ETW())
	assert.Equal(t, "XHNWFEOMFDXA", s.Type("ATTACKATDAWN"))
}

func TestType_Deterministic(t *testing.T) {
	a := newSim(t, config.Partial{})
	b := newSim(t, config.Partial{})
	const text = "DETERMINISMACROSSINSTANCES"
	assert.Equal(t, a.Type(text), b.Type(text))
	assert.Equal(t, a.Windows(), b.Windows())
}

func TestRotate_Period(t *testing.T) {
	s := newSim(t, config.Partial{
		Reflector: ptr(catalog.ReflectorB),
		Rotors:    []catalog.RotorType{catalog.RotorI},
		Rings:     []string{"A"},
		Position:  []string{"A"},
		Plugboard: []string{},
	})
	out := make([]string, 52)
	for i := range out {
		out[i] = s.Press('A').Output
	}
	assert.Equal(t, out[:26], out[26:])
	assert.Equal(t, "A", s.Windows())
}

func TestRotate_Turnover(t *testing.T) {
	p := enigmaIAAA()
	p.Position = []string{"A", "A", "U"}
	s := newSim(t, p)

	want := []string{"AAV", "ABW", "ABX"}
	for _, w := range want {
		s.Rotate()
		assert.Equal(t, w, s.Windows())
	}

	// II at E with III at V: middle and left both carry.
	p.Position = []string{"A", "E", "V"}
	s = newSim(t, p)
	s.Rotate()
	assert.Equal(t, "BFW", s.Windows())
}

func TestReset(t *testing.T) {
	s := newSim(t, config.Partial{})
	first := s.Type("ENIGMA")
	assert.Equal(t, "ZUHTSR", first)
	assert.NotEqual(t, "EHS", s.Windows())

	require.NoError(t, s.Reset())
	assert.Equal(t, "EHS", s.Windows())
	assert.Equal(t, first, s.Type("ENIGMA"))
}

func TestSetConfig(t *testing.T) {
	s := newSim(t, config.Partial{})
	s.Type("XYZ")

	require.NoError(t, s.SetConfig(enigmaIAAA()))
	assert.Equal(t, "AAA", s.Windows())
	assert.Equal(t, "BDZGO", s.Type("AAAAA"))

	require.NoError(t, s.SetConfig(config.Partial{Position: []string{"a", "a", "a"}}))
	assert.Equal(t, "BDZGO", s.Type("AAAAA"), "unset fields are kept")
}

func TestSetConfig_FailureKeepsState(t *testing.T) {
	s := newSim(t, config.Partial{})
	s.Rotate()
	before := s.Config()

	cases := []struct {
		name string
		p    config.Partial
		want error
	}{
		{"length", config.Partial{Rings: []string{"A"}}, config.ErrLengthMismatch},
		{"reflector", config.Partial{Reflector: ptr(catalog.ReflectorThinB)}, catalog.ErrUnknownReflector},
		{"rotor", config.Partial{Rotors: []catalog.RotorType{catalog.RotorVI, catalog.RotorI, catalog.RotorII}}, catalog.ErrUnknownRotor},
		{"plug", config.Partial{Plugboard: []string{"CS", "CE"}}, config.ErrDuplicatePlug},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := s.SetConfig(tc.p)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, errkind.ErrConfiguration)
			assert.True(t, before.Equal(s.Config()))
			assert.Equal(t, "EHT", s.Windows(), "rotors are not rebuilt")
		})
	}

	assert.Equal(t, "B", s.Input('A').Output)
}

func TestUpdateConfig(t *testing.T) {
	s := newSim(t, config.Partial{})
	s.Type("SOMETEXT")
	require.NoError(t, s.UpdateConfig())
	assert.Equal(t, "EHS", s.Windows())
}

func TestETW(t *testing.T) {
	s := newSim(t, config.Partial{})

	err := s.SetETW("ABC")
	assert.ErrorIs(t, err, wiring.ErrMalformedWiring)
	assert.ErrorIs(t, err, errkind.ErrConfiguration)
	assert.Equal(t, "ABCDEFGHIJKLMNOPQRSTUVWXYZ", s.ETW())

	require.NoError(t, s.SetETW("qwertz uiopas dfghjk pyxcvb nml"))
	assert.Equal(t, qwertz, s.ETW())

	// A custom order survives reconfiguration.
	require.NoError(t, s.SetConfig(enigmaIAAA()))
	assert.Equal(t, qwertz, s.ETW())

	cipher := s.Type("KEYBOARDORDER")
	require.NoError(t, s.Reset())
	assert.Equal(t, "KEYBOARDORDER", s.Type(cipher))
}

func TestDegraded(t *testing.T) {
	partial := catalog.NewTable().
		AddRotor(catalog.EnigmaI, catalog.RotorI, catalog.RotorSpec{Wiring: "EKMFLGDQVZNTOWYHXUSPAIBRCJ", Notches: "Q"}).
		AddRotor(catalog.EnigmaI, catalog.RotorII, catalog.RotorSpec{Wiring: "AJDKSIRUXBLHWTMCQGZNPYFVOE", Notches: "E"}).
		AddReflector(catalog.EnigmaI, catalog.ReflectorB, catalog.ReflectorSpec{Wiring: "YRUHQSLDPXNGOKMIEBFZCWVJAT"})

	var buf bytes.Buffer
	gen := generator.New(generator.WithCatalog(partial), generator.WithLogger(logging.New(&buf, false)))
	s := newSim(t, enigmaIAAA(), simulator.WithGenerator(gen))

	require.True(t, s.Degraded())
	res := s.Resolutions()
	require.Len(t, res, 3)
	assert.False(t, res[0].Fallback)
	assert.True(t, res[2].Fallback)
	assert.ErrorIs(t, res[2].Err, catalog.ErrUnknownRotor)
	assert.Contains(t, buf.String(), "rotor falls back to identity wiring")

	const plain = "DEGRADEDSTILLRECIPROCAL"
	cipher := s.Type(plain)
	require.NoError(t, s.Reset())
	assert.Equal(t, plain, s.Type(cipher))
}

func TestNew_UnknownReflector(t *testing.T) {
	gen := generator.New(generator.WithCatalog(catalog.NewTable()), generator.WithLogger(logging.Discard()))
	_, err := simulator.New(simulator.WithGenerator(gen), simulator.WithLogger(logging.Discard()))
	assert.ErrorIs(t, err, catalog.ErrUnknownReflector)
}

func TestStatus(t *testing.T) {
	s := newSim(t, config.Partial{})
	st := s.Status()

	assert.Equal(t, "EHS", st.Windows)
	assert.Equal(t, map[string]string{"C": "S", "S": "C", "E": "R", "R": "E"}, st.Plugboard)
	require.Len(t, st.Rotors, 3)
	assert.Equal(t, "Rotor(V)[18]", st.Rotors[0].Name)
	assert.Equal(t, "E", st.Rotors[0].Window)
	assert.Equal(t, "Z", st.Rotors[0].Notches)
	assert.Equal(t, "Reflector(C)[0]", st.Reflector.Name)
	assert.Len(t, st.Reflector.Table, 26)

	// Snapshots are copies.
	st.Rotors[0].Table[0].Out = '?'
	assert.Equal(t, "EHS", s.Windows())

	raw, err := json.Marshal(st)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"windows":"EHS"`)
}

func TestRotor(t *testing.T) {
	s := newSim(t, config.Partial{})
	r, ok := s.Rotor(2)
	require.True(t, ok)
	assert.Equal(t, "III", r.Type())
	_, ok = s.Rotor(3)
	assert.False(t, ok)
}

func TestResult_JSON(t *testing.T) {
	s := newSim(t, config.Partial{})
	raw, err := json.Marshal(s.Press('A'))
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"input":"A","output":"B","position":[0,15,16,15,2,9,19,1],"position_str":"AIXTCGQM"}`,
		string(raw))
}

func TestPermutation(t *testing.T) {
	s := newSim(t, config.Partial{})
	perm := s.Permutation()
	assert.Equal(t, "EHS", s.Windows(), "Permutation does not step")

	cs, err := cycles.Decompose(perm)
	require.NoError(t, err)
	assert.Len(t, cs, 13)
	assert.True(t, cycles.IsInvolution(perm))

	s.Rotate()
	assert.Equal(t, byte('B'), s.Permutation()[0])
}
