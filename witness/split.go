package witness

import (
	"fmt"

	bn254fr "github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// DefaultNumPublicSignals is the fallback public-signal count. It matches the
// most common circuit family this prover serves (unshield/transfer) and is a
// domain convention, not a structural property; adapters may configure a
// different fallback.
const DefaultNumPublicSignals = 5

// SignalSplit is the public/private view over a witness. Public holds
// Witness[1..=count] in order, Private the remainder; the constant wire
// belongs to neither.
type SignalSplit struct {
	Public  []bn254fr.Element
	Private []bn254fr.Element
}

// Split partitions the witness for the given public-signal count. When the
// witness is shorter than count+1 it returns ErrInsufficientWitness together
// with the partial split that does exist, so the caller can decide whether
// the mismatch is fatal.
func Split(w Witness, count int) (SignalSplit, error) {
	if count < 0 {
		return SignalSplit{}, fmt.Errorf("%w: negative public-signal count %d", ErrInsufficientWitness, count)
	}
	if len(w) < count+1 {
		partial := SignalSplit{}
		if len(w) > 1 {
			partial.Public = w[1:]
		}
		return partial, fmt.Errorf("%w: witness has %d values, %d public signals requested",
			ErrInsufficientWitness, len(w), count)
	}
	return SignalSplit{
		Public:  w[1 : count+1],
		Private: w[count+1:],
	}, nil
}

// ResolveCount applies the strict count-resolution priority: an explicit
// caller-supplied count overrides a count embedded in the request payload,
// which overrides the fallback.
func ResolveCount(explicit, embedded *int, fallback int) int {
	if explicit != nil {
		return *explicit
	}
	if embedded != nil {
		return *embedded
	}
	return fallback
}
