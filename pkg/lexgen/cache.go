package lexgen

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of tokenizers kept by NewCache when size is not positive.
const DefaultCacheSize = 128

// Cache keeps recently compiled tokenizers, keyed by their definitions.
// It is safe for concurrent use.
type Cache struct {
	tokenizers *lru.Cache[[sha256.Size]byte, Tokenizer]
}

// NewCache creates a cache holding up to size tokenizers.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	tokenizers, err := lru.New[[sha256.Size]byte, Tokenizer](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}
	return &Cache{tokenizers: tokenizers}, nil
}

// Compile returns the cached tokenizer for defs, compiling it on a miss.
// Failed compilations are not cached.
func (c *Cache) Compile(defs []Definition) (Tokenizer, error) {
	key, err := cacheKey(defs)
	if err != nil {
		return nil, err
	}
	if t, ok := c.tokenizers.Get(key); ok {
		return t, nil
	}

	t, err := Compile(defs)
	if err != nil {
		return nil, err
	}
	c.tokenizers.Add(key, t)
	return t, nil
}

// Len returns the number of cached tokenizers.
func (c *Cache) Len() int {
	return c.tokenizers.Len()
}

// Purge drops every cached tokenizer.
func (c *Cache) Purge() {
	c.tokenizers.Purge()
}

func cacheKey(defs []Definition) ([sha256.Size]byte, error) {
	data, err := json.Marshal(defs)
	if err != nil {
		return [sha256.Size]byte{}, fmt.Errorf("failed to encode definitions: %w", err)
	}
	return sha256.Sum256(data), nil
}
