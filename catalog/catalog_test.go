// SPDX-License-Identifier: MIT
package catalog_test

import (
	"encoding/json"
	"testing"

	"github.com/katalvlaran/enigma/alphabet"
	"github.com/katalvlaran/enigma/catalog"
	"github.com/katalvlaran/enigma/internal/errkind"
	"github.com/katalvlaran/enigma/rotor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	m, err := catalog.ParseModel("enigmai")
	require.NoError(t, err)
	assert.Equal(t, catalog.EnigmaI, m)

	r, err := catalog.ParseRotorType(" viii ")
	require.NoError(t, err)
	assert.Equal(t, catalog.RotorVIII, r)

	f, err := catalog.ParseReflectorType("thinb")
	require.NoError(t, err)
	assert.Equal(t, catalog.ReflectorThinB, f)

	_, err = catalog.ParseModel("Typex")
	assert.ErrorIs(t, err, catalog.ErrUnknownModel)
	assert.ErrorIs(t, err, errkind.ErrConfiguration)

	_, err = catalog.ParseRotorType("IX")
	assert.ErrorIs(t, err, catalog.ErrUnknownRotor)

	_, err = catalog.ParseReflectorType("D")
	assert.ErrorIs(t, err, catalog.ErrUnknownReflector)
}

func TestText_RoundTrip(t *testing.T) {
	type doc struct {
		Model     catalog.Model         `json:"model"`
		Reflector catalog.ReflectorType `json:"reflector"`
		Rotors    []catalog.RotorType   `json:"rotors"`
	}
	in := doc{Model: catalog.M4Naval, Reflector: catalog.ReflectorThinC, Rotors: []catalog.RotorType{catalog.RotorBeta, catalog.RotorVI}}

	raw, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"model":"M4Naval","reflector":"ThinC","rotors":["Beta","VI"]}`, string(raw))

	var out doc
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, in, out)

	_, err = json.Marshal(doc{})
	assert.ErrorIs(t, err, catalog.ErrUnknownModel, "zero values do not marshal")
	assert.Equal(t, "Unknown(0)", catalog.Model(0).String())
}

// TestHistorical_Wiring checks every catalog rotor builds and every reflector
// is an involution.
func TestHistorical_Wiring(t *testing.T) {
	c := catalog.Historical()
	require.Len(t, c.Models(), 6)

	for _, m := range c.Models() {
		assert.True(t, alphabet.IsPermutation(c.EntryWheel(m)), "%s entry wheel", m)

		for _, typ := range c.RotorTypes(m) {
			spec, ok := c.Rotor(m, typ)
			require.True(t, ok)
			_, err := rotor.New(typ.String(), spec.Wiring, spec.Notches)
			assert.NoError(t, err, "%s rotor %s", m, typ)
			if !spec.Stationary {
				assert.NotEmpty(t, spec.Notches, "%s rotor %s needs a turnover", m, typ)
			}
		}

		require.NotEmpty(t, c.ReflectorTypes(m), "%s has a reflector", m)
		for _, typ := range c.ReflectorTypes(m) {
			spec, ok := c.Reflector(m, typ)
			require.True(t, ok)
			ref, err := rotor.NewReflector(typ.String(), spec.Wiring)
			require.NoError(t, err)
			assert.True(t, ref.IsInvolution(), "%s reflector %s", m, typ)
		}
	}
}

func TestHistorical_Coverage(t *testing.T) {
	c := catalog.Historical()

	assert.Equal(t, []catalog.RotorType{catalog.RotorI, catalog.RotorII, catalog.RotorIII, catalog.RotorIV, catalog.RotorV}, c.RotorTypes(catalog.EnigmaI))
	assert.Equal(t, []catalog.ReflectorType{catalog.ReflectorA, catalog.ReflectorB, catalog.ReflectorC}, c.ReflectorTypes(catalog.EnigmaI))
	assert.Equal(t, []catalog.ReflectorType{catalog.ReflectorThinB, catalog.ReflectorThinC}, c.ReflectorTypes(catalog.M4Naval))
	assert.Len(t, c.RotorTypes(catalog.M4Naval), 10)

	beta, ok := c.Rotor(catalog.M4Naval, catalog.RotorBeta)
	require.True(t, ok)
	assert.True(t, beta.Stationary)

	_, ok = c.Rotor(catalog.EnigmaI, catalog.RotorVI)
	assert.False(t, ok, "rotor VI is naval only")
	_, ok = c.Reflector(catalog.M3Army, catalog.ReflectorA)
	assert.False(t, ok, "reflector A was withdrawn before the M3")
	_, ok = c.Rotor(catalog.Model(99), catalog.RotorI)
	assert.False(t, ok)

	assert.Equal(t, alphabet.Letters, c.EntryWheel(catalog.EnigmaI))
	assert.Equal(t, "QWERTZUIOASDFGHJKPYXCVBNML", c.EntryWheel(catalog.SwissK))
	assert.Equal(t, alphabet.Letters, c.EntryWheel(catalog.Model(99)))
	assert.Nil(t, c.RotorTypes(catalog.Model(99)))
}

func TestTable_Custom(t *testing.T) {
	c := catalog.NewTable().
		AddRotor(catalog.EnigmaI, catalog.RotorI, catalog.RotorSpec{Wiring: alphabet.Letters, Notches: "A"})

	assert.True(t, c.HasModel(catalog.EnigmaI))
	assert.False(t, c.HasModel(catalog.M3Army))
	assert.Empty(t, c.ReflectorTypes(catalog.EnigmaI))

	// Historical returns independent tables.
	h1 := catalog.Historical()
	h1.AddRotor(catalog.EnigmaI, catalog.RotorVI, catalog.RotorSpec{Wiring: alphabet.Letters})
	_, ok := catalog.Historical().Rotor(catalog.EnigmaI, catalog.RotorVI)
	assert.False(t, ok)
}
