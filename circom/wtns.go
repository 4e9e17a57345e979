package circom

import (
	"bytes"
	"encoding/binary"
	"fmt"

	bn254fr "github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// wtns binary format (version 2), as produced by snarkjs and consumed by
// rapidsnark: a magic header followed by two sections, the field description
// and the little-endian witness values. The vector includes the constant wire
// at index 0.
const (
	wtnsVersion   = 2
	wtnsNSections = 2

	wtnsSectionHeader = 1
	wtnsSectionData   = 2
)

var wtnsMagic = [4]byte{'w', 't', 'n', 's'}

// MarshalWTNS serializes a full witness vector into the circom wtns binary
// encoding.
func MarshalWTNS(values []bn254fr.Element) ([]byte, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("empty witness vector")
	}

	var buf bytes.Buffer
	buf.Write(wtnsMagic[:])
	writeU32(&buf, wtnsVersion)
	writeU32(&buf, wtnsNSections)

	// Section 1: field size, prime (little-endian), witness count.
	writeU32(&buf, wtnsSectionHeader)
	writeU64(&buf, 4+bn254fr.Bytes+4)
	writeU32(&buf, bn254fr.Bytes)
	prime := bn254fr.Modulus().FillBytes(make([]byte, bn254fr.Bytes))
	buf.Write(reverse(prime))
	writeU32(&buf, uint32(len(values)))

	// Section 2: the values, fixed-width little-endian.
	writeU32(&buf, wtnsSectionData)
	writeU64(&buf, uint64(len(values))*bn254fr.Bytes)
	for _, v := range values {
		be := v.Bytes()
		buf.Write(reverse(be[:]))
	}
	return buf.Bytes(), nil
}

func writeU32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func writeU64(buf *bytes.Buffer, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	buf.Write(b[:])
}

func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}
