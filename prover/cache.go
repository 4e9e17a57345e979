package prover

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/orbinum/groth16-prover/log"
)

// KeyCache is an LRU of deserialized proving material keyed by source path.
// Loading a multi-GiB proving key dominates small-circuit request latency, so
// long-running adapters (the HTTP API) wrap their backend with one. Only
// path-backed sources are cached; byte-backed sources pass through.
type KeyCache struct {
	loader KeyLoader
	cache  *lru.Cache[string, ProvingKey]
}

// NewKeyCache wraps a loader with an LRU of the given size.
func NewKeyCache(loader KeyLoader, size int) (*KeyCache, error) {
	cache, err := lru.New[string, ProvingKey](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create key cache: %w", err)
	}
	return &KeyCache{loader: loader, cache: cache}, nil
}

// LoadKey returns cached material when available, loading and caching it
// otherwise.
func (c *KeyCache) LoadKey(src KeySource) (ProvingKey, error) {
	ck := src.cacheKey()
	if ck == "" {
		return c.loader.LoadKey(src)
	}
	if key, ok := c.cache.Get(ck); ok {
		log.Debugw("proving key cache hit", "source", ck)
		return key, nil
	}
	key, err := c.loader.LoadKey(src)
	if err != nil {
		return nil, err
	}
	c.cache.Add(ck, key)
	return key, nil
}
