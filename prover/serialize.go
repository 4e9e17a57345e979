package prover

import (
	"fmt"

	"github.com/consensys/gnark/backend/groth16"
	groth16_bn254 "github.com/consensys/gnark/backend/groth16/bn254"

	"github.com/orbinum/groth16-prover/types"
)

// ProofLen is the fixed serialized proof size: the three proof points in
// compressed form (G1 + G2 + G1 = 32 + 64 + 32 bytes).
const ProofLen = 128

// SerializeProof encodes a BN254 Groth16 proof into its fixed 128-byte
// compressed transport form. Proofs carrying Pedersen commitments cannot fit
// the fixed envelope and are rejected; the circuits this prover serves never
// produce them.
func SerializeProof(proof groth16.Proof) (types.HexBytes, error) {
	p, ok := proof.(*groth16_bn254.Proof)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected proof type %T", ErrSerialization, proof)
	}
	if len(p.Commitments) > 0 {
		return nil, fmt.Errorf("%w: proof carries %d commitments", ErrSerialization, len(p.Commitments))
	}
	ar := p.Ar.Bytes()
	bs := p.Bs.Bytes()
	krs := p.Krs.Bytes()

	out := make(types.HexBytes, 0, ProofLen)
	out = append(out, ar[:]...)
	out = append(out, bs[:]...)
	out = append(out, krs[:]...)
	if len(out) != ProofLen {
		return nil, fmt.Errorf("%w: serialized %d bytes, want %d", ErrSerialization, len(out), ProofLen)
	}
	return out, nil
}
