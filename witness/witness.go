package witness

import (
	"errors"
	"fmt"

	bn254fr "github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

var (
	// ErrDecode reports a malformed textual witness value.
	ErrDecode = errors.New("malformed witness value")
	// ErrInsufficientWitness reports a witness shorter than the resolved
	// public-signal count demands.
	ErrInsufficientWitness = errors.New("insufficient witness")
)

// Witness is the full wire assignment of a constraint system in circuit
// order: index 0 is the constant wire (value 1), indices 1..N the signal
// values. It is built once per proof request and not mutated afterwards.
type Witness []bn254fr.Element

// Parse decodes the textual witness values with the given encoding. The
// offending index is reported on failure.
func Parse(values []string, enc Encoding) (Witness, error) {
	w := make(Witness, len(values))
	for i, s := range values {
		elem, err := enc.Decode(s)
		if err != nil {
			return nil, fmt.Errorf("witness[%d]: %w", i, err)
		}
		w[i] = elem
	}
	return w, nil
}

// ConstantWireIsOne reports whether index 0 carries the conventional
// rank-1 constraint system constant.
func (w Witness) ConstantWireIsOne() bool {
	return len(w) > 0 && w[0].IsOne()
}
