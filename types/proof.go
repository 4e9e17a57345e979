package types

import "fmt"

// ProofRequest is the envelope consumed by the CLI and HTTP adapters. Witness
// values are textual field elements, either little-endian hexadecimal or
// decimal depending on the declared encoding. The public-signal count is
// optional; when absent the caller-supplied count or the configured default
// applies.
type ProofRequest struct {
	Witness          []string `json:"witness"`
	NumPublicSignals *int     `json:"num_public_signals,omitempty"`
}

// ProofResponse is the envelope emitted after a successful proof generation.
// The proof is the 128-byte compressed Groth16 encoding; public signals are
// fixed-width little-endian field elements, one per entry.
type ProofResponse struct {
	Proof         HexBytes   `json:"proof"`
	PublicSignals []HexBytes `json:"public_signals"`
}

// WasmProofResponse is the browser-facing variant of ProofResponse. It carries
// the same data under the camelCase key the web clients expect.
type WasmProofResponse struct {
	Proof         HexBytes   `json:"proof"`
	PublicSignals []HexBytes `json:"publicSignals"`
}

// CircuitType discriminates the circuit families supported by the embeddable
// adapter. Each family has a fixed number of public signals.
type CircuitType string

const (
	CircuitUnshield   CircuitType = "unshield"
	CircuitTransfer   CircuitType = "transfer"
	CircuitDisclosure CircuitType = "disclosure"
)

// NumPublicSignals returns the public-signal count for the circuit type, or an
// error naming the unrecognized discriminant.
func (c CircuitType) NumPublicSignals() (int, error) {
	switch c {
	case CircuitUnshield, CircuitTransfer:
		return 5, nil
	case CircuitDisclosure:
		return 4, nil
	default:
		return 0, fmt.Errorf("unknown circuit type: %s", c)
	}
}
