// Package circom bridges circom/snarkjs artifacts and the gnark BN254
// backend: it parses snarkjs proof JSON into gnark curve points and
// serializes witness vectors into the circom wtns binary format.
package circom

import (
	"encoding/json"
	"fmt"

	groth16_bn254 "github.com/consensys/gnark/backend/groth16/bn254"
)

// Proof represents the proof structure output by SnarkJS. Points are
// projective coordinate triples of decimal strings.
type Proof struct {
	PiA      []string   `json:"pi_a"`
	PiB      [][]string `json:"pi_b"`
	PiC      []string   `json:"pi_c"`
	Protocol string     `json:"protocol"`
}

// UnmarshalProof parses JSON-encoded snarkjs proof data.
func UnmarshalProof(data []byte) (*Proof, error) {
	var proof Proof
	if err := json.Unmarshal(data, &proof); err != nil {
		return nil, fmt.Errorf("failed to parse proof JSON: %w", err)
	}
	return &proof, nil
}

// UnmarshalPublicSignals parses JSON-encoded snarkjs public signals into a
// slice of strings.
func UnmarshalPublicSignals(data []byte) ([]string, error) {
	var publicSignals []string
	if err := json.Unmarshal(data, &publicSignals); err != nil {
		return nil, fmt.Errorf("error parsing public signals: %w", err)
	}
	return publicSignals, nil
}

// ToGnark converts the snarkjs proof into a gnark BN254 proof so it can be
// serialized with the same fixed-width encoding as natively generated proofs.
func (p *Proof) ToGnark() (*groth16_bn254.Proof, error) {
	arG1, err := stringToG1(p.PiA)
	if err != nil {
		return nil, fmt.Errorf("failed to convert pi_a: %w", err)
	}
	bsG2, err := stringToG2(p.PiB)
	if err != nil {
		return nil, fmt.Errorf("failed to convert pi_b: %w", err)
	}
	krsG1, err := stringToG1(p.PiC)
	if err != nil {
		return nil, fmt.Errorf("failed to convert pi_c: %w", err)
	}
	return &groth16_bn254.Proof{
		Ar:  *arG1,
		Bs:  *bsG2,
		Krs: *krsG1,
	}, nil
}
