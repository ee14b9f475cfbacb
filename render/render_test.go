// SPDX-License-Identifier: MIT
package render_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/enigma/catalog"
	"github.com/katalvlaran/enigma/internal/logging"
	"github.com/katalvlaran/enigma/render"
	"github.com/katalvlaran/enigma/simulator"
)

func newSim(t *testing.T) *simulator.Simulator {
	t.Helper()
	s, err := simulator.New(simulator.WithLogger(logging.Discard()))
	require.NoError(t, err)

	return s
}

func TestDiagram_Idle(t *testing.T) {
	var buf bytes.Buffer
	out := render.New(&buf).Diagram(newSim(t).Status(), nil)

	for _, want := range []string{"UKW", "Reflector(C)[0]", "Rotor(V)[18]", "Rotor(I)[17]", "Rotor(III)[4]", "ETW", "PB"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, ">", "no trail without a result")
	assert.NotContains(t, out, "\x1b[", "no escape codes for a plain writer")
}

func TestDiagram_Trail(t *testing.T) {
	s := newSim(t)
	res := s.Press('A')

	var buf bytes.Buffer
	out := render.New(&buf).Diagram(s.Status(), &res)

	assert.Contains(t, out, "A -> B")
	assert.Contains(t, out, "(A>I>X>T>C>G>Q>M>B)")
	// Plugboard rows of the key and of the output letter.
	assert.Contains(t, out, ">A A")
	assert.Contains(t, out, ">B B")
}

func TestResult_NoOutput(t *testing.T) {
	var buf bytes.Buffer
	res := newSim(t).Input('7')
	assert.Equal(t, "7 -> (no output)", render.New(&buf).Result(res))
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	out := render.New(&buf).Summary(newSim(t).Status())
	assert.Equal(t, "windows EHS  plugs CS ER", out)
}

func TestCatalog(t *testing.T) {
	var buf bytes.Buffer
	out := render.New(&buf).Catalog(catalog.Historical())

	for _, want := range []string{"MODEL", "EnigmaI", "M4Naval", "Beta Gamma", "ThinB ThinC", "QWERTZUIOASDFGHJKPYXCVBNML"} {
		assert.Contains(t, out, want)
	}
}
