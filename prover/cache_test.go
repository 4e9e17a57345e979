package prover

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

type stubKey struct{ id int }

func (stubKey) BackendName() string { return "stub" }

type countingLoader struct{ loads int }

func (l *countingLoader) LoadKey(src KeySource) (ProvingKey, error) {
	l.loads++
	return stubKey{id: l.loads}, nil
}

func TestKeyCache(t *testing.T) {
	c := qt.New(t)

	c.Run("path-backed sources are cached", func(c *qt.C) {
		loader := &countingLoader{}
		cache, err := NewKeyCache(loader, 2)
		c.Assert(err, qt.IsNil)

		src := KeySource{KeyPath: "/keys/a.pk"}
		first, err := cache.LoadKey(src)
		c.Assert(err, qt.IsNil)
		second, err := cache.LoadKey(src)
		c.Assert(err, qt.IsNil)
		c.Assert(loader.loads, qt.Equals, 1)
		c.Assert(first, qt.Equals, second)
	})

	c.Run("constraint system path is part of the key", func(c *qt.C) {
		loader := &countingLoader{}
		cache, err := NewKeyCache(loader, 4)
		c.Assert(err, qt.IsNil)

		_, err = cache.LoadKey(KeySource{KeyPath: "/keys/a.pk", ConstraintSystemPath: "/keys/a.r1cs"})
		c.Assert(err, qt.IsNil)
		_, err = cache.LoadKey(KeySource{KeyPath: "/keys/a.pk", ConstraintSystemPath: "/keys/b.r1cs"})
		c.Assert(err, qt.IsNil)
		c.Assert(loader.loads, qt.Equals, 2)
	})

	c.Run("byte-backed sources pass through", func(c *qt.C) {
		loader := &countingLoader{}
		cache, err := NewKeyCache(loader, 2)
		c.Assert(err, qt.IsNil)

		src := KeySource{KeyBytes: []byte{0x01}}
		_, err = cache.LoadKey(src)
		c.Assert(err, qt.IsNil)
		_, err = cache.LoadKey(src)
		c.Assert(err, qt.IsNil)
		c.Assert(loader.loads, qt.Equals, 2)
	})

	c.Run("eviction reloads", func(c *qt.C) {
		loader := &countingLoader{}
		cache, err := NewKeyCache(loader, 1)
		c.Assert(err, qt.IsNil)

		a := KeySource{KeyPath: "/keys/a.pk"}
		b := KeySource{KeyPath: "/keys/b.pk"}
		_, err = cache.LoadKey(a)
		c.Assert(err, qt.IsNil)
		_, err = cache.LoadKey(b)
		c.Assert(err, qt.IsNil)
		_, err = cache.LoadKey(a)
		c.Assert(err, qt.IsNil)
		c.Assert(loader.loads, qt.Equals, 3)
	})
}
