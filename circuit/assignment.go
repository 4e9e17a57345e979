// Package circuit marshals decoded witness vectors into the instance formats
// the proving backends expect. It performs no cryptographic computation: the
// constraints themselves are baked into the proving key by the circuit
// compilation step, which happens elsewhere.
package circuit

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	gnarkwitness "github.com/consensys/gnark/backend/witness"

	"github.com/orbinum/groth16-prover/circom"
	"github.com/orbinum/groth16-prover/log"
	"github.com/orbinum/groth16-prover/witness"
)

// Assignment is a witness vector bound to an explicit public-signal count.
// The count is never inferred from the witness size: a wrong guess silently
// proves the wrong statement, so callers must always resolve it explicitly.
type Assignment struct {
	Witness   witness.Witness
	NumPublic int
}

// New validates the witness against the public-signal count and wraps it as a
// backend-ready assignment.
func New(w witness.Witness, numPublic int) (*Assignment, error) {
	if _, err := witness.Split(w, numPublic); err != nil {
		return nil, err
	}
	if !w.ConstantWireIsOne() {
		log.Warnw("witness constant wire is not 1", "len", len(w))
	}
	return &Assignment{Witness: w, NumPublic: numPublic}, nil
}

// GnarkWitness builds the gnark witness vector for the assignment. The
// constant wire is excluded: gnark's constraint systems provide wire 0
// implicitly. Order is preserved, public signals first.
func (a *Assignment) GnarkWitness() (gnarkwitness.Witness, error) {
	w, err := gnarkwitness.New(ecc.BN254.ScalarField())
	if err != nil {
		return nil, fmt.Errorf("failed to create witness: %w", err)
	}
	signals := a.Witness[1:]
	values := make(chan any, len(signals))
	for _, elem := range signals {
		values <- elem
	}
	close(values)
	if err := w.Fill(a.NumPublic, len(signals)-a.NumPublic, values); err != nil {
		return nil, fmt.Errorf("failed to fill witness: %w", err)
	}
	return w, nil
}

// WTNS serializes the assignment for the rapidsnark backend. The circom
// encoding carries the full vector, constant wire included; the public/private
// split is fixed by the zkey, not the wtns.
func (a *Assignment) WTNS() ([]byte, error) {
	return circom.MarshalWTNS(a.Witness)
}
