package circom

import (
	"encoding/binary"
	"testing"

	qt "github.com/frankban/quicktest"

	bn254fr "github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

func TestMarshalWTNS(t *testing.T) {
	c := qt.New(t)

	values := make([]bn254fr.Element, 3)
	values[0].SetOne()
	values[1].SetUint64(10)
	values[2].SetUint64(0x0102)

	data, err := MarshalWTNS(values)
	c.Assert(err, qt.IsNil)

	// Global header: magic, version, section count.
	c.Assert(data[:4], qt.DeepEquals, []byte("wtns"))
	c.Assert(binary.LittleEndian.Uint32(data[4:8]), qt.Equals, uint32(2))
	c.Assert(binary.LittleEndian.Uint32(data[8:12]), qt.Equals, uint32(2))

	// Section 1: id, length, field width, prime, witness count.
	c.Assert(binary.LittleEndian.Uint32(data[12:16]), qt.Equals, uint32(1))
	c.Assert(binary.LittleEndian.Uint64(data[16:24]), qt.Equals, uint64(4+32+4))
	c.Assert(binary.LittleEndian.Uint32(data[24:28]), qt.Equals, uint32(32))
	primeLE := data[28:60]
	prime := bn254fr.Modulus().FillBytes(make([]byte, 32))
	c.Assert(primeLE, qt.DeepEquals, reverse(prime))
	c.Assert(binary.LittleEndian.Uint32(data[60:64]), qt.Equals, uint32(3))

	// Section 2: id, length, then the values in fixed-width little-endian.
	c.Assert(binary.LittleEndian.Uint32(data[64:68]), qt.Equals, uint32(2))
	c.Assert(binary.LittleEndian.Uint64(data[68:76]), qt.Equals, uint64(3*32))
	c.Assert(data, qt.HasLen, 76+3*32)

	c.Assert(data[76], qt.Equals, byte(1))
	c.Assert(data[76+32], qt.Equals, byte(10))
	// 0x0102 little-endian starts with the low byte.
	c.Assert(data[76+64], qt.Equals, byte(0x02))
	c.Assert(data[76+65], qt.Equals, byte(0x01))

	_, err = MarshalWTNS(nil)
	c.Assert(err, qt.IsNotNil)
}
