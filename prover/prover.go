// Package prover drives the Groth16 proving backends over pre-computed
// witness assignments and serializes the resulting proofs into the fixed
// 128-byte transport encoding.
package prover

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/consensys/gnark/backend/groth16"

	"github.com/orbinum/groth16-prover/circuit"
)

var (
	// ErrKeyLoad reports unreadable or undeserializable proving material.
	// Never retried: retrying with the same bytes cannot succeed.
	ErrKeyLoad = errors.New("proving key load failed")
	// ErrProver reports a backend-internal proving failure, typically a wire
	// layout mismatch between the assignment and the proving key.
	ErrProver = errors.New("proof generation failed")
	// ErrSerialization reports an output encoding failure. Under correct
	// usage this is a programming-invariant violation.
	ErrSerialization = errors.New("proof serialization failed")
)

// ProvingKey is deserialized proving material, owned and interpreted by the
// backend that loaded it. It is loaded fresh per request unless the caller
// opts into a KeyCache.
type ProvingKey interface {
	BackendName() string
}

// KeyLoader supplies deserialized proving material from a KeySource.
type KeyLoader interface {
	LoadKey(src KeySource) (ProvingKey, error)
}

// Backend is the external Groth16 proving capability. Prove consumes a
// satisfiable-but-unverified assignment and proving material previously
// returned by LoadKey; randomness is drawn internally from crypto/rand per
// invocation, so repeated calls with identical input yield different,
// equally valid proofs.
type Backend interface {
	KeyLoader
	Name() string
	Prove(a *circuit.Assignment, key ProvingKey) (groth16.Proof, error)
}

// KeySource locates caller-supplied proving material, either raw bytes or a
// filesystem path. Bytes take precedence when both are set. The constraint
// system fields are only used by the gnark backend; the rapidsnark backend
// reads everything from the zkey.
type KeySource struct {
	KeyPath  string
	KeyBytes []byte

	ConstraintSystemPath  string
	ConstraintSystemBytes []byte
}

// cacheKey identifies path-backed sources for caching. Byte-backed sources
// are never cached: the caller owns those buffers.
func (s KeySource) cacheKey() string {
	if len(s.KeyBytes) > 0 || len(s.ConstraintSystemBytes) > 0 || s.KeyPath == "" {
		return ""
	}
	return s.KeyPath + "|" + s.ConstraintSystemPath
}

// open returns a reader over bytes or path, plus a close function.
func open(raw []byte, path string) (io.Reader, func() error, error) {
	if len(raw) > 0 {
		return bytes.NewReader(raw), func() error { return nil }, nil
	}
	if path == "" {
		return nil, nil, fmt.Errorf("no bytes nor path provided")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

// readAll loads the full content from bytes or path.
func readAll(raw []byte, path string) ([]byte, error) {
	if len(raw) > 0 {
		return raw, nil
	}
	if path == "" {
		return nil, fmt.Errorf("no bytes nor path provided")
	}
	return os.ReadFile(path)
}
