package prover

import (
	"testing"

	qt "github.com/frankban/quicktest"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark/backend/groth16"
	groth16_bn254 "github.com/consensys/gnark/backend/groth16/bn254"
)

func generatorProof() *groth16_bn254.Proof {
	_, _, g1, g2 := curve.Generators()
	return &groth16_bn254.Proof{Ar: g1, Bs: g2, Krs: g1}
}

func TestSerializeProof(t *testing.T) {
	c := qt.New(t)

	c.Run("fixed length layout", func(c *qt.C) {
		proof := generatorProof()
		out, err := SerializeProof(proof)
		c.Assert(err, qt.IsNil)
		c.Assert(out, qt.HasLen, ProofLen)

		ar := proof.Ar.Bytes()
		bs := proof.Bs.Bytes()
		krs := proof.Krs.Bytes()
		c.Assert([]byte(out[:32]), qt.DeepEquals, ar[:])
		c.Assert([]byte(out[32:96]), qt.DeepEquals, bs[:])
		c.Assert([]byte(out[96:]), qt.DeepEquals, krs[:])
	})

	c.Run("deterministic for the same proof", func(c *qt.C) {
		proof := generatorProof()
		a, err := SerializeProof(proof)
		c.Assert(err, qt.IsNil)
		b, err := SerializeProof(proof)
		c.Assert(err, qt.IsNil)
		c.Assert(a, qt.DeepEquals, b)
	})

	c.Run("commitments rejected", func(c *qt.C) {
		_, _, g1, _ := curve.Generators()
		proof := generatorProof()
		proof.Commitments = []curve.G1Affine{g1}
		_, err := SerializeProof(proof)
		c.Assert(err, qt.ErrorIs, ErrSerialization)
	})

	c.Run("foreign proof type rejected", func(c *qt.C) {
		_, err := SerializeProof(groth16.Proof(nil))
		c.Assert(err, qt.ErrorIs, ErrSerialization)
	})
}
