package prover

import (
	"fmt"
	"sync"

	"github.com/consensys/gnark/backend/groth16"
	rapidsnark "github.com/iden3/go-rapidsnark/prover"

	"github.com/orbinum/groth16-prover/circom"
	"github.com/orbinum/groth16-prover/circuit"
)

// rapidsnarkMu serializes calls to the rapidsnark Groth16 prover, which is
// not safe for concurrent use.
var rapidsnarkMu sync.Mutex

// RapidsnarkBackend proves circom-compiled circuits through the rapidsnark
// Groth16 prover. Its proving material is a single snarkjs zkey; no separate
// constraint system is needed. The circom-format proof is converted to gnark
// BN254 points so that both backends share the same wire encoding.
type RapidsnarkBackend struct{}

type rapidsnarkKey struct {
	zkey []byte
}

func (rapidsnarkKey) BackendName() string { return "rapidsnark" }

// Name returns the backend identifier.
func (RapidsnarkBackend) Name() string { return "rapidsnark" }

// LoadKey reads the zkey bytes. Deserialization happens inside the prover on
// each call, so a corrupt zkey surfaces as ErrProver rather than here.
func (RapidsnarkBackend) LoadKey(src KeySource) (ProvingKey, error) {
	zkey, err := readAll(src.KeyBytes, src.KeyPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyLoad, err)
	}
	return &rapidsnarkKey{zkey: zkey}, nil
}

// Prove serializes the assignment as wtns, runs rapidsnark, and converts the
// resulting circom proof into a gnark BN254 proof.
func (RapidsnarkBackend) Prove(a *circuit.Assignment, key ProvingKey) (groth16.Proof, error) {
	k, ok := key.(*rapidsnarkKey)
	if !ok {
		return nil, fmt.Errorf("%w: proving key belongs to backend %s", ErrProver, key.BackendName())
	}
	wtns, err := a.WTNS()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProver, err)
	}
	rapidsnarkMu.Lock()
	proofJSON, _, err := rapidsnark.Groth16ProverRaw(k.zkey, wtns)
	rapidsnarkMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProver, err)
	}
	circomProof, err := circom.UnmarshalProof([]byte(proofJSON))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProver, err)
	}
	proof, err := circomProof.ToGnark()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProver, err)
	}
	return proof, nil
}
