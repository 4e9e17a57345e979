package prover

import (
	"bufio"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"

	"github.com/orbinum/groth16-prover/circuit"
	"github.com/orbinum/groth16-prover/log"
)

// keyReadBufSize is the buffered-reader size for proving material, which can
// reach several GiB for large circuits.
const keyReadBufSize = 1024 * 1024

// GnarkBackend proves with gnark's native Groth16 over BN254. Its proving
// material is a compiled constraint system plus the matching proving key,
// both in gnark's serialization.
type GnarkBackend struct{}

type gnarkKey struct {
	cs constraint.ConstraintSystem
	pk groth16.ProvingKey
	// nbPublic is the circuit's declared public-input count, constant wire
	// excluded.
	nbPublic int
}

func (gnarkKey) BackendName() string { return "gnark" }

// Name returns the backend identifier.
func (GnarkBackend) Name() string { return "gnark" }

// LoadKey deserializes the constraint system and proving key from the source.
func (GnarkBackend) LoadKey(src KeySource) (ProvingKey, error) {
	csReader, csClose, err := open(src.ConstraintSystemBytes, src.ConstraintSystemPath)
	if err != nil {
		return nil, fmt.Errorf("%w: constraint system: %v", ErrKeyLoad, err)
	}
	defer func() {
		if err := csClose(); err != nil {
			log.Warnw("failed to close constraint system source", "error", err)
		}
	}()
	cs := groth16.NewCS(ecc.BN254)
	if _, err := cs.ReadFrom(bufio.NewReaderSize(csReader, keyReadBufSize)); err != nil {
		return nil, fmt.Errorf("%w: constraint system: %v", ErrKeyLoad, err)
	}

	pkReader, pkClose, err := open(src.KeyBytes, src.KeyPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyLoad, err)
	}
	defer func() {
		if err := pkClose(); err != nil {
			log.Warnw("failed to close proving key source", "error", err)
		}
	}()
	pk := groth16.NewProvingKey(ecc.BN254)
	if _, err := pk.UnsafeReadFrom(bufio.NewReaderSize(pkReader, keyReadBufSize)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyLoad, err)
	}

	return &gnarkKey{
		cs:       cs,
		pk:       pk,
		nbPublic: cs.GetNbPublicVariables() - 1,
	}, nil
}

// Prove builds the gnark witness from the assignment and runs groth16.Prove.
// The assignment's public-signal count is cross-checked against the
// constraint system's declared inputs so that a wrong count fails here
// instead of producing a proof of the wrong statement.
func (GnarkBackend) Prove(a *circuit.Assignment, key ProvingKey) (groth16.Proof, error) {
	k, ok := key.(*gnarkKey)
	if !ok {
		return nil, fmt.Errorf("%w: proving key belongs to backend %s", ErrProver, key.BackendName())
	}
	if a.NumPublic != k.nbPublic {
		return nil, fmt.Errorf("%w: %d public signals requested, circuit declares %d",
			ErrProver, a.NumPublic, k.nbPublic)
	}
	w, err := a.GnarkWitness()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProver, err)
	}
	proof, err := groth16.Prove(k.cs, k.pk, w)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProver, err)
	}
	return proof, nil
}
