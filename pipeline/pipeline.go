// Package pipeline orchestrates one witness-to-proof request end to end:
// decode witness, load proving key, build the circuit instance, prove,
// serialize, and derive the public signals for the response envelope. The
// pipeline is synchronous and single-shot; every invocation owns its inputs
// exclusively, so concurrent runs need no coordination.
package pipeline

import (
	"errors"
	"time"

	"github.com/orbinum/groth16-prover/circuit"
	"github.com/orbinum/groth16-prover/log"
	"github.com/orbinum/groth16-prover/prover"
	"github.com/orbinum/groth16-prover/types"
	"github.com/orbinum/groth16-prover/witness"
)

// Request is one fully resolved proof request. The public-signal count must
// already be resolved by the adapter (explicit > embedded > default); the
// pipeline never guesses it.
type Request struct {
	WitnessValues    []string
	Encoding         witness.Encoding
	Key              prover.KeySource
	NumPublicSignals int
}

// Pipeline generates proofs with a fixed backend. Zero-value is not usable;
// construct with New.
type Pipeline struct {
	backend prover.Backend
	keys    prover.KeyLoader
}

// New creates a pipeline over the given backend. A nil loader means proving
// material is loaded fresh from the backend on every run; pass a
// prover.KeyCache to reuse material across runs.
func New(backend prover.Backend, loader prover.KeyLoader) *Pipeline {
	if loader == nil {
		loader = backend
	}
	return &Pipeline{backend: backend, keys: loader}
}

// Run executes the pipeline for a single request. Each step fails fast: the
// first error aborts the run and is returned wrapped in that step's error
// kind; no partial proof is ever returned.
func (p *Pipeline) Run(req *Request) (*types.ProofResponse, error) {
	w, err := witness.Parse(req.WitnessValues, req.Encoding)
	if err != nil {
		return nil, err
	}

	key, err := p.keys.LoadKey(req.Key)
	if err != nil {
		return nil, err
	}

	a, err := circuit.New(w, req.NumPublicSignals)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	proof, err := p.backend.Prove(a, key)
	if err != nil {
		return nil, err
	}
	log.Debugw("proof generated",
		"backend", p.backend.Name(),
		"witness", len(w),
		"publicSignals", req.NumPublicSignals,
		"took", time.Since(start).String())

	proofBytes, err := prover.SerializeProof(proof)
	if err != nil {
		return nil, err
	}

	// Public signals are re-derived from the witness rather than taken from
	// the prover output, so the signal extraction stays decoupled from the
	// proof bytes.
	split, err := witness.Split(w, req.NumPublicSignals)
	if err != nil {
		if !errors.Is(err, witness.ErrInsufficientWitness) {
			return nil, err
		}
		log.Warnw("public signal mismatch",
			"requested", req.NumPublicSignals, "available", len(split.Public))
	}
	signals := make([]types.HexBytes, len(split.Public))
	for i, elem := range split.Public {
		signals[i] = witness.EncodeHex(elem)
	}

	return &types.ProofResponse{
		Proof:         proofBytes,
		PublicSignals: signals,
	}, nil
}

// RunWithCircuitType is a convenience for adapters that address circuits by
// family discriminant instead of an explicit count.
func (p *Pipeline) RunWithCircuitType(ct types.CircuitType, witnessValues []string, enc witness.Encoding, key prover.KeySource) (*types.ProofResponse, error) {
	count, err := ct.NumPublicSignals()
	if err != nil {
		return nil, err
	}
	return p.Run(&Request{
		WitnessValues:    witnessValues,
		Encoding:         enc,
		Key:              key,
		NumPublicSignals: count,
	})
}
