// SPDX-License-Identifier: MIT
package catalog

// Historical wiring. Rotor strings map contact A..Z; notch letters are the
// window letters at turnover.
const (
	wiringI    = "EKMFLGDQVZNTOWYHXUSPAIBRCJ"
	wiringII   = "AJDKSIRUXBLHWTMCQGZNPYFVOE"
	wiringIII  = "BDFHJLCPRTXVZNYEIWGAKMUSQO"
	wiringIV   = "ESOVPZJAYQUIRHXLNFTGKDCMWB"
	wiringV    = "VZBRGITYUPSDNHLXAWMJQOFECK"
	wiringVI   = "JPGVOUMFYQBENHZRDKASXLICTW"
	wiringVII  = "NZJHGRCXMYSWBOUFAIVLPEKQDT"
	wiringVIII = "FKQHTLXOCBJSPDZRAMEWNIUYGV"
	wiringBeta = "LEYJVCNIXWPBQMDRTAKZGFUHOS"
	wiringGam  = "FSOKANUERHMBTIYCWLQPZXVGJD"

	wiringCommercialI   = "DMTWSILRUYQNKFEJCAZBPGXOHV"
	wiringCommercialII  = "HQZGPJTMOBLNCIFDYAWVEUSRKX"
	wiringCommercialIII = "UQNTLSZFMREHDPXKIBVYGJCWOA"

	wiringRailwayI   = "JGDQOXUSCAMIFRVTPNEWKBLZYH"
	wiringRailwayII  = "NTZPSFBOKMWRCJDIVLAEYUXHGQ"
	wiringRailwayIII = "JVIUBHTCDYAKEQZPOSGXNRMWFL"
	wiringRailwayUKW = "QYHOGNECVPUZTFDJAXWMKISRBL"

	wiringSwissI   = "PEZUOHXSCVFMTBGLRINQJWAYDK"
	wiringSwissII  = "ZOUESYDKFWPCIQXHMVBLGNJRAT"
	wiringSwissIII = "EHRVXGAOBQUSIMZFLYNWKTPDJC"
	wiringSwissUKW = "IMETCGFRAYSQBZXWLHKDVUPOJN"

	wiringReflectorA     = "EJMZALYXVBWFCRQUONTSPIKHGD"
	wiringReflectorB     = "YRUHQSLDPXNGOKMIEBFZCWVJAT"
	wiringReflectorC     = "FVPJIAOYEDRZXWGCTKUQSBNMHL"
	wiringReflectorThinB = "ENKQAUYWJICOPBLMDXZVFTHRGS"
	wiringReflectorThinC = "RDOBJNTKVEHMLFCWZAXGYIPSUQ"

	// entryQWERTZ is the keyboard-order entry wheel of the commercial line.
	entryQWERTZ = "QWERTZUIOASDFGHJKPYXCVBNML"
)

// Historical returns a fresh Table holding every model's historical wiring.
func Historical() *Table {
	t := NewTable()

	military := map[RotorType]RotorSpec{
		RotorI:   {Wiring: wiringI, Notches: "Q"},
		RotorII:  {Wiring: wiringII, Notches: "E"},
		RotorIII: {Wiring: wiringIII, Notches: "V"},
		RotorIV:  {Wiring: wiringIV, Notches: "J"},
		RotorV:   {Wiring: wiringV, Notches: "Z"},
	}
	for _, m := range []Model{EnigmaI, M3Army, M4Naval} {
		for typ, spec := range military {
			t.AddRotor(m, typ, spec)
		}
	}

	t.AddReflector(EnigmaI, ReflectorA, ReflectorSpec{Wiring: wiringReflectorA}).
		AddReflector(EnigmaI, ReflectorB, ReflectorSpec{Wiring: wiringReflectorB}).
		AddReflector(EnigmaI, ReflectorC, ReflectorSpec{Wiring: wiringReflectorC})

	t.AddReflector(M3Army, ReflectorB, ReflectorSpec{Wiring: wiringReflectorB}).
		AddReflector(M3Army, ReflectorC, ReflectorSpec{Wiring: wiringReflectorC})

	t.AddRotor(M4Naval, RotorVI, RotorSpec{Wiring: wiringVI, Notches: "ZM"}).
		AddRotor(M4Naval, RotorVII, RotorSpec{Wiring: wiringVII, Notches: "ZM"}).
		AddRotor(M4Naval, RotorVIII, RotorSpec{Wiring: wiringVIII, Notches: "ZM"}).
		AddRotor(M4Naval, RotorBeta, RotorSpec{Wiring: wiringBeta, Stationary: true}).
		AddRotor(M4Naval, RotorGamma, RotorSpec{Wiring: wiringGam, Stationary: true}).
		AddReflector(M4Naval, ReflectorThinB, ReflectorSpec{Wiring: wiringReflectorThinB}).
		AddReflector(M4Naval, ReflectorThinC, ReflectorSpec{Wiring: wiringReflectorThinC})

	// The commercial rotors IC-IIIC have no surviving notch record; they
	// share the Y/E/N turnovers of the K-series wheels.
	t.AddRotor(CommercialEnigma, RotorI, RotorSpec{Wiring: wiringCommercialI, Notches: "Y"}).
		AddRotor(CommercialEnigma, RotorII, RotorSpec{Wiring: wiringCommercialII, Notches: "E"}).
		AddRotor(CommercialEnigma, RotorIII, RotorSpec{Wiring: wiringCommercialIII, Notches: "N"}).
		AddReflector(CommercialEnigma, ReflectorUKW, ReflectorSpec{Wiring: wiringSwissUKW}).
		SetEntryWheel(CommercialEnigma, entryQWERTZ)

	t.AddRotor(GermanRailway, RotorI, RotorSpec{Wiring: wiringRailwayI, Notches: "N"}).
		AddRotor(GermanRailway, RotorII, RotorSpec{Wiring: wiringRailwayII, Notches: "E"}).
		AddRotor(GermanRailway, RotorIII, RotorSpec{Wiring: wiringRailwayIII, Notches: "Y"}).
		AddReflector(GermanRailway, ReflectorUKW, ReflectorSpec{Wiring: wiringRailwayUKW}).
		SetEntryWheel(GermanRailway, entryQWERTZ)

	t.AddRotor(SwissK, RotorI, RotorSpec{Wiring: wiringSwissI, Notches: "Y"}).
		AddRotor(SwissK, RotorII, RotorSpec{Wiring: wiringSwissII, Notches: "E"}).
		AddRotor(SwissK, RotorIII, RotorSpec{Wiring: wiringSwissIII, Notches: "N"}).
		AddReflector(SwissK, ReflectorUKW, ReflectorSpec{Wiring: wiringSwissUKW}).
		SetEntryWheel(SwissK, entryQWERTZ)

	return t
}
