package circom

import (
	"testing"

	qt "github.com/frankban/quicktest"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
)

// generatorProof builds a snarkjs-shaped proof from the curve generators, the
// smallest points guaranteed to be on the curve.
func generatorProof() (*Proof, curve.G1Affine, curve.G2Affine) {
	_, _, g1, g2 := curve.Generators()
	return &Proof{
		PiA: []string{g1.X.String(), g1.Y.String(), "1"},
		PiB: [][]string{
			{g2.X.A0.String(), g2.X.A1.String()},
			{g2.Y.A0.String(), g2.Y.A1.String()},
			{"1", "0"},
		},
		PiC:      []string{g1.X.String(), g1.Y.String(), "1"},
		Protocol: "groth16",
	}, g1, g2
}

func TestProofToGnark(t *testing.T) {
	c := qt.New(t)

	proof, g1, g2 := generatorProof()
	gp, err := proof.ToGnark()
	c.Assert(err, qt.IsNil)
	c.Assert(gp.Ar.Equal(&g1), qt.IsTrue)
	c.Assert(gp.Bs.Equal(&g2), qt.IsTrue)
	c.Assert(gp.Krs.Equal(&g1), qt.IsTrue)
}

func TestUnmarshalProof(t *testing.T) {
	c := qt.New(t)

	proof, g1, _ := generatorProof()
	raw := `{
		"pi_a": ["` + proof.PiA[0] + `", "` + proof.PiA[1] + `", "1"],
		"pi_b": [
			["` + proof.PiB[0][0] + `", "` + proof.PiB[0][1] + `"],
			["` + proof.PiB[1][0] + `", "` + proof.PiB[1][1] + `"],
			["1", "0"]
		],
		"pi_c": ["` + proof.PiC[0] + `", "` + proof.PiC[1] + `", "1"],
		"protocol": "groth16"
	}`
	parsed, err := UnmarshalProof([]byte(raw))
	c.Assert(err, qt.IsNil)
	c.Assert(parsed.Protocol, qt.Equals, "groth16")

	gp, err := parsed.ToGnark()
	c.Assert(err, qt.IsNil)
	c.Assert(gp.Ar.Equal(&g1), qt.IsTrue)

	_, err = UnmarshalProof([]byte("not json"))
	c.Assert(err, qt.IsNotNil)
}

func TestUnmarshalPublicSignals(t *testing.T) {
	c := qt.New(t)

	signals, err := UnmarshalPublicSignals([]byte(`["1", "42", "12345"]`))
	c.Assert(err, qt.IsNil)
	c.Assert(signals, qt.DeepEquals, []string{"1", "42", "12345"})

	_, err = UnmarshalPublicSignals([]byte(`{"a": 1}`))
	c.Assert(err, qt.IsNotNil)
}

func TestStringToG1(t *testing.T) {
	c := qt.New(t)

	_, _, g1, _ := curve.Generators()

	c.Run("affine point", func(c *qt.C) {
		p, err := stringToG1([]string{g1.X.String(), g1.Y.String(), "1"})
		c.Assert(err, qt.IsNil)
		c.Assert(p.Equal(&g1), qt.IsTrue)
	})

	c.Run("hex coordinates", func(c *qt.C) {
		p, err := stringToG1([]string{"0x1", "0x2", "1"})
		c.Assert(err, qt.IsNil)
		c.Assert(p.Equal(&g1), qt.IsTrue)
	})

	c.Run("point at infinity", func(c *qt.C) {
		p, err := stringToG1([]string{"0", "0", "0"})
		c.Assert(err, qt.IsNil)
		c.Assert(p.IsInfinity(), qt.IsTrue)
	})

	c.Run("non-normalized z rejected", func(c *qt.C) {
		_, err := stringToG1([]string{g1.X.String(), g1.Y.String(), "2"})
		c.Assert(err, qt.IsNotNil)
	})

	c.Run("wrong arity", func(c *qt.C) {
		_, err := stringToG1([]string{"1", "2"})
		c.Assert(err, qt.IsNotNil)
	})

	c.Run("not on curve", func(c *qt.C) {
		_, err := stringToG1([]string{"1", "3", "1"})
		c.Assert(err, qt.IsNotNil)
	})
}

func TestStringToG2(t *testing.T) {
	c := qt.New(t)

	_, _, _, g2 := curve.Generators()
	coords := [][]string{
		{g2.X.A0.String(), g2.X.A1.String()},
		{g2.Y.A0.String(), g2.Y.A1.String()},
		{"1", "0"},
	}

	c.Run("affine point", func(c *qt.C) {
		p, err := stringToG2(coords)
		c.Assert(err, qt.IsNil)
		c.Assert(p.Equal(&g2), qt.IsTrue)
	})

	c.Run("point at infinity", func(c *qt.C) {
		p, err := stringToG2([][]string{{"0", "0"}, {"0", "0"}, {"0", "0"}})
		c.Assert(err, qt.IsNil)
		c.Assert(p.IsInfinity(), qt.IsTrue)
	})

	c.Run("non-normalized z rejected", func(c *qt.C) {
		bad := [][]string{coords[0], coords[1], {"2", "0"}}
		_, err := stringToG2(bad)
		c.Assert(err, qt.IsNotNil)
	})

	c.Run("wrong arity", func(c *qt.C) {
		_, err := stringToG2([][]string{{"1"}, {"2", "3"}, {"1", "0"}})
		c.Assert(err, qt.IsNotNil)
	})
}
