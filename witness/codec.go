// Package witness decodes textual witness material into BN254 scalar field
// elements and derives the public/private signal partition used for proof
// generation.
package witness

import (
	"fmt"
	"math/big"

	bn254fr "github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/orbinum/groth16-prover/types"
)

// FieldElemLen is the fixed byte width of an encoded BN254 scalar field
// element.
const FieldElemLen = bn254fr.Bytes

// Encoding selects how textual witness values are decoded into field
// elements. Selection is always declared by the caller, never inferred from
// the string contents.
type Encoding string

const (
	// EncodingHex is an optionally 0x-prefixed hexadecimal string holding a
	// little-endian byte sequence.
	EncodingHex Encoding = "hex"
	// EncodingDecimal is an unsigned base-10 integer string of arbitrary
	// length.
	EncodingDecimal Encoding = "dec"
)

// ParseEncoding validates a textual encoding tag as received from config or
// request envelopes.
func ParseEncoding(s string) (Encoding, error) {
	switch e := Encoding(s); e {
	case EncodingHex, EncodingDecimal:
		return e, nil
	default:
		return "", fmt.Errorf("%w: unknown encoding %q", ErrDecode, s)
	}
}

// Decode parses a single textual value according to the encoding tag. Values
// at or above the field prime are reduced, never rejected: an out-of-range
// encoded value is the caller's responsibility, not this layer's.
func (e Encoding) Decode(s string) (bn254fr.Element, error) {
	switch e {
	case EncodingHex:
		return DecodeHex(s)
	case EncodingDecimal:
		return DecodeDecimal(s)
	default:
		return bn254fr.Element{}, fmt.Errorf("%w: unknown encoding %q", ErrDecode, e)
	}
}

// DecodeHex decodes an optionally 0x-prefixed hexadecimal string representing
// a little-endian byte sequence into a field element, reducing modulo the
// field prime. Odd-length digit strings are left-padded with a zero nibble,
// which preserves the encoded value.
func DecodeHex(s string) (bn254fr.Element, error) {
	var elem bn254fr.Element
	b, err := types.HexStringToHexBytes(s)
	if err != nil {
		return elem, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	// Interpret as little-endian: reverse into big-endian for big.Int.
	be := make([]byte, len(b))
	for i, v := range b {
		be[len(b)-1-i] = v
	}
	elem.SetBigInt(new(big.Int).SetBytes(be))
	return elem, nil
}

// DecodeDecimal decodes an unsigned base-10 integer string into a field
// element, reducing modulo the field prime. Signs, separators and empty
// strings are rejected.
func DecodeDecimal(s string) (bn254fr.Element, error) {
	var elem bn254fr.Element
	if len(s) == 0 {
		return elem, fmt.Errorf("%w: empty decimal string", ErrDecode)
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return elem, fmt.Errorf("%w: invalid decimal string %q", ErrDecode, s)
		}
	}
	bi, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return elem, fmt.Errorf("%w: invalid decimal string %q", ErrDecode, s)
	}
	elem.SetBigInt(bi)
	return elem, nil
}

// EncodeHex serializes a field element's canonical little-endian byte
// representation at fixed width, 0x-prefixed. DecodeHex(EncodeHex(x)) == x
// for every canonical x.
func EncodeHex(elem bn254fr.Element) types.HexBytes {
	be := elem.Bytes()
	le := make(types.HexBytes, FieldElemLen)
	for i, v := range be {
		le[FieldElemLen-1-i] = v
	}
	return le
}
