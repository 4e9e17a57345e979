package types

import (
	"encoding/json"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestHexBytes(t *testing.T) {
	c := qt.New(t)

	c.Run("String", func(c *qt.C) {
		c.Assert(HexBytes(nil).String(), qt.Equals, "0x")
		c.Assert(HexBytes{0x00, 0xAB, 0xCD}.String(), qt.Equals, "0x00abcd")
	})

	c.Run("Equal", func(c *qt.C) {
		c.Assert(HexBytes{0x01}.Equal(HexBytes{0x01}), qt.IsTrue)
		c.Assert(HexBytes{0x01}.Equal(HexBytes{0x02}), qt.IsFalse)
		c.Assert(HexBytes{0x01}.Equal(HexBytes{0x01, 0x02}), qt.IsFalse)
	})

	c.Run("JSON round trip", func(c *qt.C) {
		in := HexBytes{0xDE, 0xAD, 0xBE, 0xEF}
		data, err := json.Marshal(in)
		c.Assert(err, qt.IsNil)
		c.Assert(string(data), qt.Equals, `"0xdeadbeef"`)

		var out HexBytes
		c.Assert(json.Unmarshal(data, &out), qt.IsNil)
		c.Assert(out.Equal(in), qt.IsTrue)
	})

	c.Run("unmarshal without prefix", func(c *qt.C) {
		var out HexBytes
		c.Assert(json.Unmarshal([]byte(`"deadbeef"`), &out), qt.IsNil)
		c.Assert(out.String(), qt.Equals, "0xdeadbeef")
	})

	c.Run("unmarshal rejects junk", func(c *qt.C) {
		var out HexBytes
		c.Assert(json.Unmarshal([]byte(`"0xzz"`), &out), qt.IsNotNil)
	})
}

func TestHexStringToHexBytes(t *testing.T) {
	c := qt.New(t)

	b, err := HexStringToHexBytes("0x0102")
	c.Assert(err, qt.IsNil)
	c.Assert(b, qt.DeepEquals, HexBytes{0x01, 0x02})

	// Odd nibble counts are left padded, so 0x1 and 0x01 are the same value.
	odd, err := HexStringToHexBytes("0x1")
	c.Assert(err, qt.IsNil)
	even, err := HexStringToHexBytes("0x01")
	c.Assert(err, qt.IsNil)
	c.Assert(odd.Equal(even), qt.IsTrue)

	noPrefix, err := HexStringToHexBytes("0102")
	c.Assert(err, qt.IsNil)
	c.Assert(noPrefix, qt.DeepEquals, HexBytes{0x01, 0x02})

	_, err = HexStringToHexBytes("0xGGGG")
	c.Assert(err, qt.IsNotNil)
}
