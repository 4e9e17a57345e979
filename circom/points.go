package circom

import (
	"fmt"
	"math/big"
	"strings"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
)

const coordLen = 32

// coordToBytes converts a single affine coordinate, decimal or 0x-hex encoded,
// to its fixed-width big-endian representation.
func coordToBytes(s string) ([]byte, error) {
	base := 10
	if strings.HasPrefix(s, "0x") {
		s, base = s[2:], 16
	}
	bi, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, fmt.Errorf("invalid point coordinate %q", s)
	}
	if bi.BitLen() > coordLen*8 {
		return nil, fmt.Errorf("point coordinate %q out of range", s)
	}
	return bi.FillBytes(make([]byte, coordLen)), nil
}

// stringToG1 parses a snarkjs projective G1 point [x, y, z] into an affine
// gnark point. Valid snarkjs output always carries z == 1 (affine) or z == 0
// (infinity); anything else is rejected rather than normalized.
func stringToG1(h []string) (*curve.G1Affine, error) {
	if len(h) != 3 {
		return nil, fmt.Errorf("expected 3 G1 coordinates, got %d", len(h))
	}
	p := new(curve.G1Affine)
	switch h[2] {
	case "0":
		return p, nil // point at infinity
	case "1":
	default:
		return nil, fmt.Errorf("non-normalized G1 point (z = %q)", h[2])
	}
	b := make([]byte, 0, 2*coordLen)
	for _, coord := range h[:2] {
		cb, err := coordToBytes(coord)
		if err != nil {
			return nil, err
		}
		b = append(b, cb...)
	}
	if err := p.Unmarshal(b); err != nil {
		return nil, err
	}
	return p, nil
}

// stringToG2 parses a snarkjs projective G2 point [[x0,x1],[y0,y1],[z0,z1]]
// into an affine gnark point. The gnark encoding expects each Fp2 coordinate
// with its components swapped relative to snarkjs order.
func stringToG2(h [][]string) (*curve.G2Affine, error) {
	if len(h) != 3 {
		return nil, fmt.Errorf("expected 3 G2 coordinates, got %d", len(h))
	}
	for _, coord := range h {
		if len(coord) != 2 {
			return nil, fmt.Errorf("expected 2 components per G2 coordinate, got %d", len(coord))
		}
	}
	p := new(curve.G2Affine)
	if h[2][0] == "0" && h[2][1] == "0" {
		return p, nil // point at infinity
	}
	if h[2][0] != "1" || h[2][1] != "0" {
		return nil, fmt.Errorf("non-normalized G2 point (z = [%q, %q])", h[2][0], h[2][1])
	}
	b := make([]byte, 0, 4*coordLen)
	for _, coord := range h[:2] {
		for j := 1; j >= 0; j-- {
			cb, err := coordToBytes(coord[j])
			if err != nil {
				return nil, err
			}
			b = append(b, cb...)
		}
	}
	if err := p.Unmarshal(b); err != nil {
		return nil, err
	}
	return p, nil
}
