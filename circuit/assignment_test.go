package circuit

import (
	"math/big"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/orbinum/groth16-prover/witness"
)

func testWitness(values ...uint64) witness.Witness {
	w := make(witness.Witness, len(values))
	for i, v := range values {
		w[i].SetUint64(v)
	}
	return w
}

func TestNew(t *testing.T) {
	c := qt.New(t)

	c.Run("valid assignment", func(c *qt.C) {
		a, err := New(testWitness(1, 10, 20, 30), 2)
		c.Assert(err, qt.IsNil)
		c.Assert(a.NumPublic, qt.Equals, 2)
		c.Assert(a.Witness, qt.HasLen, 4)
	})

	c.Run("short witness rejected", func(c *qt.C) {
		_, err := New(testWitness(1, 10), 5)
		c.Assert(err, qt.ErrorIs, witness.ErrInsufficientWitness)
	})
}

func TestGnarkWitness(t *testing.T) {
	c := qt.New(t)

	a, err := New(testWitness(1, 10, 20, 30, 40), 2)
	c.Assert(err, qt.IsNil)

	w, err := a.GnarkWitness()
	c.Assert(err, qt.IsNil)

	// The public sub-witness must carry exactly the two public signals, in
	// order and without the constant wire.
	pub, err := w.Public()
	c.Assert(err, qt.IsNil)
	vec, ok := pub.Vector().(fr.Vector)
	c.Assert(ok, qt.IsTrue)
	c.Assert(vec, qt.HasLen, 2)
	c.Assert(vec[0].BigInt(new(big.Int)).Uint64(), qt.Equals, uint64(10))
	c.Assert(vec[1].BigInt(new(big.Int)).Uint64(), qt.Equals, uint64(20))
}

func TestWTNS(t *testing.T) {
	c := qt.New(t)

	a, err := New(testWitness(1, 10, 20), 2)
	c.Assert(err, qt.IsNil)

	data, err := a.WTNS()
	c.Assert(err, qt.IsNil)
	c.Assert(string(data[:4]), qt.Equals, "wtns")
	// Global header (12) + section 1 (12 + 40) + section 2 header (12) +
	// three 32-byte values.
	c.Assert(data, qt.HasLen, 76+3*32)
}
